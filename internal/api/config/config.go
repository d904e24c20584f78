package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultJWTSecret 未配置签名密钥时的开发用兜底值，生产环境必须覆盖
const DefaultJWTSecret = "atrium-dev-secret-change-in-production"

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg，环境变量（ATRIUM_ 前缀）优先于文件
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetEnvPrefix("ATRIUM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "members.db")
	viper.SetDefault("database.max_idle", 4)
	viper.SetDefault("database.max_open", 16)
	viper.SetDefault("database.max_lifetime", 60)
	viper.SetDefault("jwt.secret", DefaultJWTSecret)

	if err := viper.ReadInConfig(); err != nil {
		// 配置文件缺失时仅依赖默认值和环境变量
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}
