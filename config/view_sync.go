package config

// ViewSyncConfig 浏览量回刷任务配置。
type ViewSyncConfig struct {
	// BatchSize 单条 UPDATE 语句（CASE WHEN 批量形式）覆盖的帖子数量。
	BatchSize int `mapstructure:"batchSize" json:"batchSize" yaml:"batchSize"`

	// ConcurrencyLevel 并发执行数据库批次的 worker 数量。
	ConcurrencyLevel int `mapstructure:"concurrencyLevel" json:"concurrencyLevel" yaml:"concurrencyLevel"`

	// ScanBatchSize 传给 Redis SCAN 命令的 COUNT 建议值。
	ScanBatchSize int64 `mapstructure:"scanBatchSize" json:"scanBatchSize" yaml:"scanBatchSize"`
}
