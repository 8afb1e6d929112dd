package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig 从给定路径加载 YAML 配置并反序列化为 BlogConfig。
// - 环境变量可覆盖任意配置项，层级用下划线分隔，例如
//   BLOG_MYSQLCONFIG_WRITE_DSN 覆盖 mysqlConfig.write.dsn。
func LoadConfig(path string) (*BlogConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}

	var cfg BlogConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	return &cfg, nil
}
