package config

// Config 配置主体
type Config struct {
	Server            ServerConfig      `mapstructure:"server"`
	DB                DBConfig          `mapstructure:"database"`
	Redis             RedisConfig       `mapstructure:"redis"`
	Mongo             MongoConfig       `mapstructure:"mongo"`
	Elastic           ElasticConfig     `mapstructure:"elastic"`
	MinIO             MinIOConfig       `mapstructure:"minio"`
	LLM               LLMConfig         `mapstructure:"llm"`
	OAuth             OAuthConfig       `mapstructure:"oauth"`
	Cleanup           CleanupConfig     `mapstructure:"cleanup"`
	ShareCard         ShareCardConfig   `mapstructure:"share_card"`
	Logstash          LogstashConfig    `mapstructure:"logstash"`
	Site              SiteConfig        `mapstructure:"site"`
	Kafka             KafkaConfig       `mapstructure:"kafka"`
	KafkaViewConsumer KafkaViewConsumer `mapstructure:"kafka_view_consumer"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Env  string `mapstructure:"env"` // production 环境开启清理接口鉴权
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

// MongoConfig Mongo配置
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// ElasticConfig Elastic配置
type ElasticConfig struct {
	Address  string         `mapstructure:"address"`
	Username string         `mapstructure:"username"`
	Password string         `mapstructure:"password"`
	Indices  ElasticIndices `mapstructure:"indices"`
}

// ElasticIndices Elastic索引
type ElasticIndices struct {
	PostIndex string `mapstructure:"post_index"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	MainBucket string `mapstructure:"main_bucket"`
	UseSSL     bool   `mapstructure:"use_ssl"`
}

type LLMConfig struct {
	URL         string           `mapstructure:"url"`
	TextModel   string           `mapstructure:"text_model"`
	ApiKey      string           `mapstructure:"api_key"`
	PromptsPath PromptPathConfig `mapstructure:"prompts_path"`
}

type PromptPathConfig struct {
	WeeklyInsight string `mapstructure:"weekly_insight"`
}

// OAuthConfig 第三方登录配置
type OAuthConfig struct {
	Kakao OAuthProviderConfig `mapstructure:"kakao"`
}

type OAuthProviderConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURI  string `mapstructure:"redirect_uri"`
	TokenURL     string `mapstructure:"token_url"`
	UserInfoURL  string `mapstructure:"user_info_url"`
}

// CleanupConfig 社区内容清理配置
type CleanupConfig struct {
	Token         string `mapstructure:"token"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// ShareCardConfig 周报分享卡片渲染配置
type ShareCardConfig struct {
	Enable bool `mapstructure:"enable"`
	Width  int  `mapstructure:"width"`
	Height int  `mapstructure:"height"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// SiteConfig 站点对外信息 (sitemap/robots 使用)
type SiteConfig struct {
	BaseURL string `mapstructure:"base_url"`
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

type KafkaViewConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}
