package serializer

import (
	"time"

	"github.com/LENAX/autoflow-engine/pkg/core/graph"
	"github.com/LENAX/autoflow-engine/pkg/ident"
)

const (
	// DefaultWorkflowName 未命名工作流的默认名称
	DefaultWorkflowName = "Untitled Workflow"

	// SchemaVersion 序列化格式版本
	SchemaVersion = "1.0"
)

// Serializer 工作流序列化引擎（对外导出）
// 无内部状态，多个Serialize调用互不影响，可并发使用
type Serializer struct {
	registry    *graph.Registry
	idGen       ident.Generator
	defaultName string
	version     string
}

// New 创建序列化引擎
func New(registry *graph.Registry, idGen ident.Generator) *Serializer {
	return &Serializer{
		registry:    registry,
		idGen:       idGen,
		defaultName: DefaultWorkflowName,
		version:     SchemaVersion,
	}
}

// WithDefaultName 设置默认工作流名称（链式配置）
func (s *Serializer) WithDefaultName(name string) *Serializer {
	if name != "" {
		s.defaultName = name
	}
	return s
}

// WithVersion 设置序列化格式版本（链式配置）
func (s *Serializer) WithVersion(version string) *Serializer {
	if version != "" {
		s.version = version
	}
	return s
}

// Serialize 把画布图序列化为可执行工作流
// 检测到循环依赖或缺少入口节点时整体失败，不产生部分结果
func (s *Serializer) Serialize(nodes []graph.RawNode, edges []graph.RawEdge, name string) (*SerializedWorkflow, error) {
	if name == "" {
		name = s.defaultName
	}

	sNodes, sEdges := s.transform(nodes, edges)

	order, err := resolveExecutionOrder(sNodes)
	if err != nil {
		return nil, err
	}

	workflowID := s.idGen.WorkflowID()
	now := time.Now()

	return &SerializedWorkflow{
		ID:             workflowID,
		Name:           name,
		Nodes:          sNodes,
		Edges:          sEdges,
		ExecutionOrder: order,
		DataFlow:       s.buildDataFlow(sNodes, workflowID),
		Metadata: WorkflowMeta{
			Version:      s.version,
			CreatedAt:    now,
			LastModified: now,
			NodeCount:    len(sNodes),
			EdgeCount:    len(sEdges),
		},
	}, nil
}

// copyConfig 浅拷贝节点配置，避免序列化结果与编辑器共享底层map
func copyConfig(config map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(config))
	for k, v := range config {
		result[k] = v
	}
	return result
}
