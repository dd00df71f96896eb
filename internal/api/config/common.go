package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	Logstash  LogstashConfig  `mapstructure:"logstash"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Instagram InstagramConfig `mapstructure:"instagram"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
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

// MongoConfig Mongo配置，存放AI生成审计日志
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// LogstashConfig 远程日志上报配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type LLMConfig struct {
	URL         string           `mapstructure:"url"`
	Model       string           `mapstructure:"model"`
	ApiKey      string           `mapstructure:"api_key"`
	PromptsPath PromptPathConfig `mapstructure:"prompts_path"`
}

type PromptPathConfig struct {
	SentimentClassify string `mapstructure:"sentiment_classify"`
	ReplyDraft        string `mapstructure:"reply_draft"`
	ReplyTemplate     string `mapstructure:"reply_template"`
}

// InstagramConfig Instagram Graph API配置
type InstagramConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	MediaLimit int    `mapstructure:"media_limit"`
	Timeout    int    `mapstructure:"timeout"`
}

// SchedulerConfig 定时轮询配置
type SchedulerConfig struct {
	PollSpec string `mapstructure:"poll_spec"`
}
