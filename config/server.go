package config

// ServerConfig HTTP 服务器相关配置。
type ServerConfig struct {
	ListenAddr     string `mapstructure:"listen_addr" json:"listen_addr" yaml:"listen_addr"` // 监听地址，例如 ":8080"
	RequestTimeout int    `mapstructure:"request_timeout" json:"request_timeout" yaml:"request_timeout"` // 单请求超时（秒）
}
