package graph

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegistry_LookupBuiltin(t *testing.T) {
	r := NewRegistry()

	tpl, ok := r.Lookup(NodeClickAction)
	if !ok {
		t.Fatal("内置模板click_action应已注册")
	}
	if len(tpl.Inputs) == 0 || len(tpl.Outputs) == 0 {
		t.Errorf("click_action应声明端口: %d输入/%d输出", len(tpl.Inputs), len(tpl.Outputs))
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r := NewRegistry()

	tpl, ok := r.Lookup("no_such_type")
	if ok || tpl != nil {
		t.Error("未注册类型应返回(nil, false)")
	}
}

func TestRegistry_LoadFileOverlay(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "templates.yaml")
	content := `
templates:
  - type: custom_scroll
    name: 滚动操作
    inputs:
      - id: trigger_in
        name: 触发输入
        data_type: any
        required: true
    outputs:
      - id: scroll_out
        name: 滚动结果
        data_type: object
  - type: click_action
    name: 覆盖的点击
    outputs:
      - id: click_out
        name: 点击结果
        data_type: coordinates
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("创建测试模板文件失败: %v", err)
	}

	r := NewRegistry()
	before := len(r.List())

	if err := r.LoadFile(path); err != nil {
		t.Fatalf("加载模板文件失败: %v", err)
	}

	// 新类型追加
	tpl, ok := r.Lookup("custom_scroll")
	if !ok {
		t.Fatal("叠加的custom_scroll应已注册")
	}
	if !tpl.Inputs[0].Required {
		t.Error("required标记应从YAML载入")
	}

	// 同类型覆盖内置，不重复计数
	overridden, _ := r.Lookup(NodeClickAction)
	if overridden.Name != "覆盖的点击" {
		t.Errorf("同类型应覆盖内置定义: %s", overridden.Name)
	}
	if len(r.List()) != before+1 {
		t.Errorf("覆盖不应增加模板数量: %d -> %d", before, len(r.List()))
	}
}

func TestRegistry_LoadFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	// 文件不存在
	r := NewRegistry()
	if err := r.LoadFile(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("文件不存在应报错")
	}

	// 模板缺少type
	path := filepath.Join(tmpDir, "bad.yaml")
	os.WriteFile(path, []byte("templates:\n  - name: 无类型\n"), 0644)
	if err := r.LoadFile(path); err == nil {
		t.Error("缺少type的模板应报错")
	}
}

func TestIsTriggerType(t *testing.T) {
	if !IsTriggerType(NodeManualTrigger) || !IsTriggerType(NodeScheduleTrigger) {
		t.Error("内置触发类型判定错误")
	}
	if IsTriggerType(NodeClickAction) || IsTriggerType("custom_unknown") {
		t.Error("非触发类型不应判定为触发")
	}
}

func TestInferDataType(t *testing.T) {
	tests := []struct {
		nodeType string
		want     DataType
	}{
		{NodeClickAction, DataTypeCoordinates},
		{NodeTextInput, DataTypeText},
		{NodeScreenshotCapture, DataTypeImage},
		{NodeOCRExtract, DataTypeImage},
		{NodeCondition, DataTypeBoolean},
		{NodeHTTPRequest, DataTypeObject},
		{"custom_unknown", DataTypeObject},
	}

	for _, tt := range tests {
		if got := InferDataType(tt.nodeType); got != tt.want {
			t.Errorf("InferDataType(%s) = %s, 期望 %s", tt.nodeType, got, tt.want)
		}
	}
}
