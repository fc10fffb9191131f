package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load 加载配置文件
func Load(path string) (*Config, error) {
	// 读取配置文件
	data, err := os.ReadFile(path)
	if err != nil {
		// 若文件不存在，返回默认配置
		return Default(), nil
	}

	// 解析YAML
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default 默认配置
func Default() *Config {
	cfg := &Config{
		Mode:     "release",
		HTTPPort: 8080,
	}
	cfg.Serializer.DefaultName = "Untitled Workflow"
	cfg.Serializer.Version = "1.0"
	return cfg
}
