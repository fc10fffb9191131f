package config

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name:    "默认配置",
			cfg:     Default(),
			wantErr: false,
		},
		{
			name:    "空配置",
			cfg:     nil,
			wantErr: true,
		},
		{
			name: "无效的mode",
			cfg: func() *Config {
				cfg := Default()
				cfg.Mode = "invalid"
				return cfg
			}(),
			wantErr: true,
		},
		{
			name: "端口越界",
			cfg: func() *Config {
				cfg := Default()
				cfg.HTTPPort = 70000
				return cfg
			}(),
			wantErr: true,
		},
		{
			name: "缺少默认名称",
			cfg: func() *Config {
				cfg := Default()
				cfg.Serializer.DefaultName = ""
				return cfg
			}(),
			wantErr: true,
		},
		{
			name: "缺少版本",
			cfg: func() *Config {
				cfg := Default()
				cfg.Serializer.Version = ""
				return cfg
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
