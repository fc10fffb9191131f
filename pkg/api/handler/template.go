package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LENAX/autoflow-engine/pkg/api/dto"
	"github.com/LENAX/autoflow-engine/pkg/core/graph"
)

// TemplateHandler 节点模板API处理器
// 编辑器据此绘制节点的端口，注册表是端口契约的唯一来源
type TemplateHandler struct {
	registry *graph.Registry
}

// NewTemplateHandler 创建TemplateHandler
func NewTemplateHandler(registry *graph.Registry) *TemplateHandler {
	return &TemplateHandler{registry: registry}
}

// List 列出所有节点模板
// GET /api/v1/templates
func (h *TemplateHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(h.registry.List()))
}
