package config

// BlogConfig 是服务的根配置，按基础设施分节。
type BlogConfig struct {
	ZapConfig      ZapConfig      `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig  GormLogConfig  `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig   ServerConfig   `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig   TracerConfig   `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	ViewSyncConfig ViewSyncConfig `mapstructure:"viewSyncConfig" json:"viewSyncConfig" yaml:"viewSyncConfig"`
	MySQLConfig    MySQLConfig    `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig    RedisConfig    `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig    KafkaConfig    `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig      COSConfig      `mapstructure:"attachmentCosConfig" json:"attachmentCosConfig" yaml:"attachmentCosConfig"`
}
