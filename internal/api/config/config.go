package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Analytics.Validate(); err != nil {
		return fmt.Errorf("invalid analytics config: %w", err)
	}

	Cfg = &cfg

	return nil
}

// setDefaults 集中声明一次所有默认值，避免魔法数散落各处
func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("analytics.reach_multiplier", 3.5)
	viper.SetDefault("analytics.impressions_multiplier", 1.6)
	viper.SetDefault("analytics.profile_view_rate", 0.2)
	viper.SetDefault("analytics.website_click_rate", 0.1)
	viper.SetDefault("analytics.trending_size", 20)
}
