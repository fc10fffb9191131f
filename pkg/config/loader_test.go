package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// 创建临时配置文件
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")
	configContent := `
mode: debug
http_port: 9090
registry:
  templates_file: "./templates.yaml"
serializer:
  default_name: "新建工作流"
  version: "2.0"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("创建测试配置文件失败: %v", err)
	}

	// 测试加载配置
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	// 验证配置值
	if cfg.Mode != "debug" {
		t.Errorf("期望mode为debug，实际为%s", cfg.Mode)
	}
	if cfg.HTTPPort != 9090 {
		t.Errorf("期望http_port为9090，实际为%d", cfg.HTTPPort)
	}
	if cfg.Registry.TemplatesFile != "./templates.yaml" {
		t.Errorf("期望templates_file为./templates.yaml，实际为%s", cfg.Registry.TemplatesFile)
	}
	if cfg.Serializer.DefaultName != "新建工作流" {
		t.Errorf("期望default_name为新建工作流，实际为%s", cfg.Serializer.DefaultName)
	}
	if cfg.Serializer.Version != "2.0" {
		t.Errorf("期望version为2.0，实际为%s", cfg.Serializer.Version)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("./no_such_config.yaml")
	if err != nil {
		t.Fatalf("文件不存在应返回默认配置: %v", err)
	}

	if cfg.Mode != "release" || cfg.HTTPPort != 8080 {
		t.Errorf("默认配置错误: mode=%s port=%d", cfg.Mode, cfg.HTTPPort)
	}
	if cfg.Serializer.DefaultName == "" || cfg.Serializer.Version == "" {
		t.Error("默认配置应填充serializer字段")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(configPath, []byte("mode: [broken"), 0644); err != nil {
		t.Fatalf("创建测试配置文件失败: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("非法YAML应报错")
	}
}
