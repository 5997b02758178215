package config

type Langfuse struct {
	Host      string `mapstructure:"LANGFUSE_HOST" json:"host" yaml:"host"`
	PublicKey string `mapstructure:"LANGFUSE_PUBLIC_KEY" json:"-" yaml:"public_key"`
	SecretKey string `mapstructure:"LANGFUSE_SECRET_KEY" json:"-" yaml:"secret_key"`
}

// Configured 三項缺一不可，缺少時 fetcher 不會發出任何網路請求
func (l *Langfuse) Configured() bool {
	return l.Host != "" && l.PublicKey != "" && l.SecretKey != ""
}
