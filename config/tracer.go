package config

// TracerConfig OTLP 追踪导出配置。
type TracerConfig struct {
	Enabled      bool    `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Endpoint     string  `mapstructure:"endpoint" json:"endpoint" yaml:"endpoint"` // OTLP/HTTP collector 地址，例如 "localhost:4318"
	SamplerRatio float64 `mapstructure:"sampler_ratio" json:"sampler_ratio" yaml:"sampler_ratio"`
}
