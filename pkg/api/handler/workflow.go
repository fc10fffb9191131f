package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LENAX/autoflow-engine/pkg/api/dto"
	"github.com/LENAX/autoflow-engine/pkg/core/serializer"
)

// WorkflowHandler 工作流序列化API处理器
type WorkflowHandler struct {
	serializer *serializer.Serializer
}

// NewWorkflowHandler 创建WorkflowHandler
func NewWorkflowHandler(s *serializer.Serializer) *WorkflowHandler {
	return &WorkflowHandler{serializer: s}
}

// Serialize 序列化画布图
// POST /api/v1/workflows/serialize
func (h *WorkflowHandler) Serialize(c *gin.Context) {
	var req dto.SerializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(400, fmt.Sprintf("请求体格式错误: %v", err)))
		return
	}

	wf, err := h.serializer.Serialize(req.Nodes, req.Edges, req.Name)
	if err != nil {
		// 循环依赖/缺少入口节点：该次调用整体失败，无部分结果
		var cycleErr *serializer.CycleError
		var entryErr *serializer.NoEntryPointError
		if errors.As(err, &cycleErr) || errors.As(err, &entryErr) {
			c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(422, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(500, fmt.Sprintf("序列化失败: %v", err)))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(wf))
}

// Validate 校验工作流结构完整性
// POST /api/v1/workflows/validate
func (h *WorkflowHandler) Validate(c *gin.Context) {
	var req dto.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(400, fmt.Sprintf("请求体格式错误: %v", err)))
		return
	}

	// 校验永远完成并返回全部问题，HTTP层面恒为200
	result := h.serializer.Validate(&req.Workflow)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// Deserialize 还原编辑器画布图
// POST /api/v1/workflows/deserialize
func (h *WorkflowHandler) Deserialize(c *gin.Context) {
	var req dto.DeserializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(400, fmt.Sprintf("请求体格式错误: %v", err)))
		return
	}

	nodes, edges := h.serializer.Deserialize(&req.Workflow)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DeserializeResponse{
		Nodes: nodes,
		Edges: edges,
	}))
}
