// Package config 引擎配置
package config

// Config 引擎核心配置
type Config struct {
	Mode     string `yaml:"mode"` // gin运行模式: debug/release
	HTTPPort int    `yaml:"http_port"`
	Registry struct {
		TemplatesFile string `yaml:"templates_file"` // 可选的模板叠加文件
	} `yaml:"registry"`
	Serializer struct {
		DefaultName string `yaml:"default_name"`
		Version     string `yaml:"version"`
	} `yaml:"serializer"`
}
