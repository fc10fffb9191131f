// Package api HTTP API服务
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/LENAX/autoflow-engine/pkg/api/handler"
	"github.com/LENAX/autoflow-engine/pkg/api/middleware"
	"github.com/LENAX/autoflow-engine/pkg/core/graph"
	"github.com/LENAX/autoflow-engine/pkg/core/serializer"
)

// SetupRouter 设置路由
func SetupRouter(s *serializer.Serializer, registry *graph.Registry, mode, version string) *gin.Engine {
	// 设置gin模式
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	router := gin.New()

	// 全局中间件
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	// 创建handlers
	workflowHandler := handler.NewWorkflowHandler(s)
	templateHandler := handler.NewTemplateHandler(registry)
	healthHandler := handler.NewHealthHandler(version)

	// 健康检查路由（不带前缀）
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// API v1 路由组
	v1 := router.Group("/api/v1")
	{
		workflows := v1.Group("/workflows")
		{
			workflows.POST("/serialize", workflowHandler.Serialize)
			workflows.POST("/validate", workflowHandler.Validate)
			workflows.POST("/deserialize", workflowHandler.Deserialize)
		}

		v1.GET("/templates", templateHandler.List)
	}

	return router
}
