package graph

// PortSpec 模板声明的端口契约
type PortSpec struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	DataType DataType `yaml:"data_type" json:"dataType"`
	Required bool     `yaml:"required" json:"required"` // 仅输入端口有意义
}

// NodeTemplate 节点类型的端口/形状契约
type NodeTemplate struct {
	Type    string     `yaml:"type" json:"type"`
	Name    string     `yaml:"name" json:"name"`
	Inputs  []PortSpec `yaml:"inputs" json:"inputs"`
	Outputs []PortSpec `yaml:"outputs" json:"outputs"`
}

// builtinTemplates 内置节点模板（编辑器画布默认节点集）
func builtinTemplates() []NodeTemplate {
	return []NodeTemplate{
		{
			Type: NodeManualTrigger,
			Name: "手动触发",
			Outputs: []PortSpec{
				{ID: "trigger_out", Name: "触发输出", DataType: DataTypeObject},
			},
		},
		{
			Type: NodeScheduleTrigger,
			Name: "定时触发",
			Outputs: []PortSpec{
				{ID: "trigger_out", Name: "触发输出", DataType: DataTypeObject},
			},
		},
		{
			Type: NodeClickAction,
			Name: "点击操作",
			Inputs: []PortSpec{
				{ID: "trigger_in", Name: "触发输入", DataType: DataTypeAny},
				{ID: "coords_in", Name: "坐标输入", DataType: DataTypeCoordinates},
			},
			Outputs: []PortSpec{
				{ID: "click_out", Name: "点击结果", DataType: DataTypeCoordinates},
			},
		},
		{
			Type: NodeTextInput,
			Name: "文本输入",
			Inputs: []PortSpec{
				{ID: "trigger_in", Name: "触发输入", DataType: DataTypeAny},
				{ID: "text_in", Name: "文本内容", DataType: DataTypeText},
			},
			Outputs: []PortSpec{
				{ID: "text_out", Name: "输入结果", DataType: DataTypeText},
			},
		},
		{
			Type: NodeScreenshotCapture,
			Name: "屏幕截图",
			Inputs: []PortSpec{
				{ID: "trigger_in", Name: "触发输入", DataType: DataTypeAny},
			},
			Outputs: []PortSpec{
				{ID: "image_out", Name: "截图图像", DataType: DataTypeImage},
			},
		},
		{
			Type: NodeOCRExtract,
			Name: "OCR识别",
			Inputs: []PortSpec{
				{ID: "image_in", Name: "图像输入", DataType: DataTypeImage, Required: true},
			},
			Outputs: []PortSpec{
				{ID: "text_out", Name: "识别文本", DataType: DataTypeText},
			},
		},
		{
			Type: NodeCondition,
			Name: "条件判断",
			Inputs: []PortSpec{
				{ID: "value_in", Name: "判断输入", DataType: DataTypeAny, Required: true},
			},
			Outputs: []PortSpec{
				{ID: "true_out", Name: "条件成立", DataType: DataTypeBoolean},
				{ID: "false_out", Name: "条件不成立", DataType: DataTypeBoolean},
			},
		},
		{
			Type: NodeHTTPRequest,
			Name: "HTTP请求",
			Inputs: []PortSpec{
				{ID: "trigger_in", Name: "触发输入", DataType: DataTypeAny},
			},
			Outputs: []PortSpec{
				{ID: "response_out", Name: "响应数据", DataType: DataTypeObject},
			},
		},
		{
			Type: NodeDelay,
			Name: "延时等待",
			Inputs: []PortSpec{
				{ID: "trigger_in", Name: "触发输入", DataType: DataTypeAny},
			},
			Outputs: []PortSpec{
				{ID: "trigger_out", Name: "触发输出", DataType: DataTypeObject},
			},
		},
	}
}
