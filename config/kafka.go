package config

// KafkaConfig 事件发布配置。本服务只做生产者，不消费。
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics  Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
}

// Topics 各领域事件对应的主题名。
type Topics struct {
	PostCreated       string `mapstructure:"postCreated" yaml:"postCreated"`             // 帖子创建
	PostStatusChanged string `mapstructure:"postStatusChanged" yaml:"postStatusChanged"` // 审核状态变更
	PostDeleted       string `mapstructure:"postDeleted" yaml:"postDeleted"`             // 帖子删除
}
