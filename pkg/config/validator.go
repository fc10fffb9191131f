package config

import (
	"fmt"
)

// Validate 校验配置合法性
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("配置不能为空")
	}

	if cfg.Mode != "" {
		validModes := map[string]bool{
			"debug":   true,
			"release": true,
			"test":    true,
		}
		if !validModes[cfg.Mode] {
			return fmt.Errorf("mode必须是debug/release/test之一")
		}
	}

	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return fmt.Errorf("http_port必须在1-65535之间")
	}

	if cfg.Serializer.DefaultName == "" {
		return fmt.Errorf("serializer.default_name不能为空")
	}

	if cfg.Serializer.Version == "" {
		return fmt.Errorf("serializer.version不能为空")
	}

	return nil
}
