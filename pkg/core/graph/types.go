// Package graph 定义编辑器画布的原始节点/边模型与节点模板注册表
package graph

// Position 画布坐标
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RawNode 编辑器画布上的原始节点（引擎只读）
type RawNode struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`     // 节点类型（模板注册表的key）
	Label    string                 `json:"label"`    // 展示名称
	Position Position               `json:"position"` // 画布坐标
	Config   map[string]interface{} `json:"config"`   // 节点配置（编辑器所有）
}

// RawEdge 编辑器画布上的原始连线
type RawEdge struct {
	ID           string `json:"id"`
	Source       string `json:"source"`                 // 源节点ID
	Target       string `json:"target"`                 // 目标节点ID
	SourceHandle string `json:"sourceHandle,omitempty"` // 源端口ID
	TargetHandle string `json:"targetHandle,omitempty"` // 目标端口ID
}

// DataType 端口数据类型（封闭集合）
type DataType string

const (
	DataTypeCoordinates DataType = "coordinates" // 坐标（点击类节点）
	DataTypeText        DataType = "text"        // 文本
	DataTypeImage       DataType = "image"       // 图像（截图/OCR）
	DataTypeBoolean     DataType = "boolean"     // 布尔（条件节点）
	DataTypeObject      DataType = "object"      // 通用对象
	DataTypeAny         DataType = "any"         // 未知/未解析
)

// 内置节点类型
const (
	NodeManualTrigger     = "manual_trigger"
	NodeScheduleTrigger   = "schedule_trigger"
	NodeClickAction       = "click_action"
	NodeTextInput         = "text_input"
	NodeScreenshotCapture = "screenshot_capture"
	NodeOCRExtract        = "ocr_extract"
	NodeCondition         = "condition"
	NodeHTTPRequest       = "http_request"
	NodeDelay             = "delay"
)

// Direction 端口方向
type Direction string

const (
	DirectionInput  Direction = "input"
	DirectionOutput Direction = "output"
)
