package config

// ZapConfig 结构化日志配置。
type ZapConfig struct {
	Level    string `mapstructure:"level" json:"level" yaml:"level"`       // debug/info/warn/error
	Encoding string `mapstructure:"encoding" json:"encoding" yaml:"encoding"` // json 或 console
}

// GormLogConfig GORM 日志配置。
type GormLogConfig struct {
	Level                     string `mapstructure:"level" json:"level" yaml:"level"` // silent/error/warn/info
	SlowThresholdMs           int    `mapstructure:"slow_threshold_ms" json:"slow_threshold_ms" yaml:"slow_threshold_ms"`
	IgnoreRecordNotFoundError bool   `mapstructure:"ignore_record_not_found_error" json:"ignore_record_not_found_error" yaml:"ignore_record_not_found_error"`
}
