package dto

import (
	"github.com/LENAX/autoflow-engine/pkg/core/graph"
	"github.com/LENAX/autoflow-engine/pkg/core/serializer"
)

// SerializeRequest 序列化请求（编辑器画布图）
type SerializeRequest struct {
	Name  string          `json:"name" binding:"omitempty"`
	Nodes []graph.RawNode `json:"nodes" binding:"required"`
	Edges []graph.RawEdge `json:"edges"`
}

// ValidateRequest 校验请求
type ValidateRequest struct {
	Workflow serializer.SerializedWorkflow `json:"workflow" binding:"required"`
}

// DeserializeRequest 反序列化请求
type DeserializeRequest struct {
	Workflow serializer.SerializedWorkflow `json:"workflow" binding:"required"`
}
