// Package serializer 把编辑器画布的节点/边图转换为可执行的序列化工作流：
// 解析端口连接、计算执行顺序、生成初始数据流上下文，并提供校验与反序列化
package serializer

import (
	"time"

	"github.com/LENAX/autoflow-engine/pkg/core/graph"
)

// PortConnection 端口连接状态（每次序列化全量重算，不做原地修改）
type PortConnection struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Direction   graph.Direction `json:"direction"`
	DataType    graph.DataType  `json:"dataType"`
	Required    bool            `json:"required,omitempty"` // 仅输入端口
	Connected   bool            `json:"connected"`
	ConnectedTo []string        `json:"connectedTo"` // 对端节点ID，按边的声明顺序
}

// SerializedNode 解析后的工作流节点
type SerializedNode struct {
	ID           string                 `json:"id"`
	Type         string                 `json:"type"`
	Label        string                 `json:"label"`
	Position     graph.Position         `json:"position"`
	Config       map[string]interface{} `json:"config"`
	Template     *graph.NodeTemplate    `json:"template,omitempty"` // 未注册类型为nil
	Inputs       []PortConnection       `json:"inputs"`
	Outputs      []PortConnection       `json:"outputs"`
	Dependencies []string               `json:"dependencies"` // 上游节点ID，去重，保持边序
}

// SerializedEdge 解析后的工作流连线
type SerializedEdge struct {
	ID           string         `json:"id"`
	Source       string         `json:"source"`
	Target       string         `json:"target"`
	SourceHandle string         `json:"sourceHandle,omitempty"`
	TargetHandle string         `json:"targetHandle,omitempty"`
	DataType     graph.DataType `json:"dataType"`
}

// WorkflowMeta 工作流元数据
type WorkflowMeta struct {
	Version      string    `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
	NodeCount    int       `json:"nodeCount"`
	EdgeCount    int       `json:"edgeCount"`
}

// SerializedWorkflow 序列化工作流快照
// 每次Serialize调用生成全新实例，消费方不得原地修改
type SerializedWorkflow struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Nodes          []SerializedNode       `json:"nodes"`
	Edges          []SerializedEdge       `json:"edges"`
	ExecutionOrder []string               `json:"executionOrder"`
	DataFlow       map[string]*DataPacket `json:"dataFlow"`
	Metadata       WorkflowMeta           `json:"metadata"`
}

// TriggerInfo 触发描述（占位值，执行引擎运行时覆盖）
type TriggerInfo struct {
	Type      string    `json:"type"` // manual / schedule
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// DataInfo 数据描述
type DataInfo struct {
	Type   graph.DataType         `json:"type"`
	Value  map[string]interface{} `json:"value"`  // 节点原始配置
	Format string                 `json:"format"` // 固定为structured
}

// ContextInfo 执行上下文描述
type ContextInfo struct {
	WorkflowID   string `json:"workflowId"`
	ExecutionID  string `json:"executionId"`
	NodeID       string `json:"nodeId"`
	ParentNodeID string `json:"parentNodeId,omitempty"` // 首个依赖，入口节点为空
}

// MetaInfo 执行元信息（占位值，执行引擎运行时覆盖）
type MetaInfo struct {
	Success    bool   `json:"success"`
	DurationMS int64  `json:"duration_ms"`
	NodeType   string `json:"nodeType"`
}

// DataPacket 节点的初始数据流包
type DataPacket struct {
	Trigger TriggerInfo `json:"trigger"`
	Data    DataInfo    `json:"data"`
	Context ContextInfo `json:"context"`
	Meta    MetaInfo    `json:"metadata"`
}

// ValidationResult 校验结果
// 校验永不抛错，所有问题一次性收集返回
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
