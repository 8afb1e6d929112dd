package config

// COSConfig 腾讯云对象存储配置，用于附件镜像。
// - Enabled 为 false 时附件仅存数据库，服务其余功能不受影响。
type COSConfig struct {
	Enabled   bool   `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	BucketURL string `mapstructure:"bucket_url" json:"bucket_url" yaml:"bucket_url"`
	SecretID  string `mapstructure:"secret_id" json:"secret_id" yaml:"secret_id"`
	SecretKey string `mapstructure:"secret_key" json:"secret_key" yaml:"secret_key"`
}
