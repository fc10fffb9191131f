package graph

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry 节点模板注册表（只读，构造完成后不再修改）
type Registry struct {
	templates map[string]*NodeTemplate
	order     []string // 注册顺序，用于稳定的列表输出
}

// templatesFile 模板文件的YAML结构
type templatesFile struct {
	Templates []NodeTemplate `yaml:"templates"`
}

// NewRegistry 创建注册表并加载内置模板
func NewRegistry() *Registry {
	r := &Registry{
		templates: make(map[string]*NodeTemplate),
	}
	for _, tpl := range builtinTemplates() {
		r.register(tpl)
	}
	return r
}

// register 注册或覆盖模板
func (r *Registry) register(tpl NodeTemplate) {
	if _, exists := r.templates[tpl.Type]; !exists {
		r.order = append(r.order, tpl.Type)
	}
	t := tpl
	r.templates[tpl.Type] = &t
}

// LoadFile 从YAML文件叠加模板（同类型覆盖内置定义）
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取模板文件失败: %w", err)
	}

	var file templatesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("解析模板文件失败: %w", err)
	}

	for _, tpl := range file.Templates {
		if tpl.Type == "" {
			return fmt.Errorf("模板type不能为空")
		}
		r.register(tpl)
	}
	return nil
}

// Lookup 按节点类型查找模板
// 未注册的类型返回(nil, false)，调用方按无端口处理，不报错
func (r *Registry) Lookup(nodeType string) (*NodeTemplate, bool) {
	tpl, ok := r.templates[nodeType]
	return tpl, ok
}

// List 按注册顺序返回所有模板
func (r *Registry) List() []NodeTemplate {
	result := make([]NodeTemplate, 0, len(r.order))
	for _, typ := range r.order {
		result = append(result, *r.templates[typ])
	}
	return result
}

// IsTriggerType 判断是否触发类节点类型
func IsTriggerType(nodeType string) bool {
	return strings.HasSuffix(nodeType, "_trigger")
}

// InferDataType 按节点类型推断其产出数据的类型（固定映射表）
func InferDataType(nodeType string) DataType {
	switch nodeType {
	case NodeClickAction:
		return DataTypeCoordinates
	case NodeTextInput:
		return DataTypeText
	case NodeScreenshotCapture, NodeOCRExtract:
		return DataTypeImage
	case NodeCondition:
		return DataTypeBoolean
	default:
		return DataTypeObject
	}
}
