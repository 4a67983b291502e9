package config

import "errors"

// Config 配置主体
type Config struct {
	Server                 ServerConfig           `mapstructure:"server"`
	DB                     DBConfig               `mapstructure:"database"`
	Redis                  RedisConfig            `mapstructure:"redis"`
	Log                    LogConfig              `mapstructure:"log"`
	Analytics              AnalyticsConfig        `mapstructure:"analytics"`
	Predictor              PredictorConfig        `mapstructure:"predictor"`
	Kafka                  KafkaConfig            `mapstructure:"kafka"`
	KafkaInteractionEvents KafkaConsumerBinding   `mapstructure:"kafka_interaction_consumer"`
	KafkaContentEvents     KafkaConsumerBinding   `mapstructure:"kafka_content_consumer"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port      int    `mapstructure:"port"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogConfig 日志收集配置，CollectorAddr 为空时仅输出到 stdout
type LogConfig struct {
	CollectorAddr string `mapstructure:"collector_addr"`
	Index         string `mapstructure:"index"`
}

// AnalyticsConfig 指标推导参数。
// reach/impressions 原型中是随机倍率模拟，这里收敛为显式可配置的确定性倍率。
type AnalyticsConfig struct {
	ReachMultiplier       float64 `mapstructure:"reach_multiplier"`
	ImpressionsMultiplier float64 `mapstructure:"impressions_multiplier"`
	ProfileViewRate       float64 `mapstructure:"profile_view_rate"`
	WebsiteClickRate      float64 `mapstructure:"website_click_rate"`
	TrendingSize          int     `mapstructure:"trending_size"`
}

func (c AnalyticsConfig) Validate() error {
	if c.ReachMultiplier <= 0 || c.ImpressionsMultiplier <= 0 {
		return errors.New("reach/impressions multiplier must be positive")
	}
	if c.ProfileViewRate < 0 || c.WebsiteClickRate < 0 {
		return errors.New("view/click rate must not be negative")
	}
	if c.TrendingSize <= 0 {
		return errors.New("trending size must be positive")
	}
	return nil
}

// PredictorConfig 外部互动率预测模型服务
type PredictorConfig struct {
	URL     string `mapstructure:"url"`
	ApiKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

// KafkaConsumerBinding 单个消费者的主题与消费组绑定
type KafkaConsumerBinding struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}
