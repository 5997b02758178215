package config

import "errors"

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	Auth      Auth            `mapstructure:",squash" json:"auth" yaml:"auth"`
	Langfuse  Langfuse        `mapstructure:",squash" json:"langfuse" yaml:"langfuse"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
}

// Normalize 補上未設定欄位的預設值
func (c *Configuration) Normalize() {
	if c.App.Port == 0 {
		c.App.Port = 8000
	}
	if c.App.Name == "" {
		c.App.Name = "lensboard"
	}
	if c.App.Version == "" {
		c.App.Version = "1.0.0"
	}
	c.Auth.applyDefaults()
}

// Validate 啟動前檢查；SECRET_KEY 缺少時直接讓啟動失敗
func (c *Configuration) Validate() error {
	if c.Auth.SecretKey == "" {
		return errors.New("SECRET_KEY environment variable is required but not set")
	}
	return nil
}
