package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Intent engine
	Intent   IntentConfig
	Storage  StorageConfig
	Mining   MiningConfig
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// IntentConfig tunes classification and learning. MinConfidenceScore is
// the score reported for results that fail the trust threshold.
// LearningRate and UpdateThreshold are carried for compatibility and have
// no effect.
type IntentConfig struct {
	OverlayPath          string
	WatchOverlay         bool
	Timezone             string
	WeekStart            string
	TrustThreshold       float64
	MinConfidenceScore   float64
	CacheSize            int
	MaxKeywordsPerIntent int
	MinKeywordLength     int
	MaxKeywordLength     int
	LearningRate         float64
	UpdateThreshold      float64
}

type StorageConfig struct {
	SQLitePath string
}

type MiningConfig struct {
	Enabled      bool
	Interval     time.Duration
	Lookback     time.Duration
	MinFrequency int
	MinScore     float64
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	NgrokAPIURL string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/intent-engine/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/intent-engine/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Intent engine
	cfg.Intent.OverlayPath = viper.GetString("intent.overlay_path")
	cfg.Intent.WatchOverlay = viper.GetBool("intent.watch_overlay")
	cfg.Intent.Timezone = viper.GetString("intent.timezone")
	cfg.Intent.WeekStart = viper.GetString("intent.week_start")
	cfg.Intent.TrustThreshold = viper.GetFloat64("intent.trust_threshold")
	cfg.Intent.MinConfidenceScore = viper.GetFloat64("intent.min_confidence_score")
	cfg.Intent.CacheSize = viper.GetInt("intent.cache_size")
	cfg.Intent.MaxKeywordsPerIntent = viper.GetInt("intent.max_keywords_per_intent")
	cfg.Intent.MinKeywordLength = viper.GetInt("intent.min_keyword_length")
	cfg.Intent.MaxKeywordLength = viper.GetInt("intent.max_keyword_length")
	cfg.Intent.LearningRate = viper.GetFloat64("intent.learning_rate")
	cfg.Intent.UpdateThreshold = viper.GetFloat64("intent.update_threshold")

	cfg.Storage.SQLitePath = viper.GetString("storage.sqlite_path")

	cfg.Mining.Enabled = viper.GetBool("mining.enabled")
	cfg.Mining.Interval = viper.GetDuration("mining.interval")
	cfg.Mining.Lookback = viper.GetDuration("mining.lookback")
	cfg.Mining.MinFrequency = viper.GetInt("mining.min_frequency")
	cfg.Mining.MinScore = viper.GetFloat64("mining.min_score")

	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPIURL = viper.GetString("telegram.ngrok_api_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	// Intent engine defaults
	viper.SetDefault("intent.overlay_path", "data/learned_keywords.json")
	viper.SetDefault("intent.watch_overlay", true)
	viper.SetDefault("intent.timezone", "UTC")
	viper.SetDefault("intent.week_start", "monday")
	viper.SetDefault("intent.trust_threshold", 15.0)
	viper.SetDefault("intent.min_confidence_score", 0.5)
	viper.SetDefault("intent.cache_size", 1024)
	viper.SetDefault("intent.max_keywords_per_intent", 20)
	viper.SetDefault("intent.min_keyword_length", 2)
	viper.SetDefault("intent.max_keyword_length", 30)
	viper.SetDefault("intent.learning_rate", 0.1)
	viper.SetDefault("intent.update_threshold", 0.3)

	viper.SetDefault("storage.sqlite_path", "data/intent.db")

	viper.SetDefault("mining.enabled", false)
	viper.SetDefault("mining.interval", "1h")
	viper.SetDefault("mining.lookback", "168h")
	viper.SetDefault("mining.min_frequency", 3)
	viper.SetDefault("mining.min_score", 15.0)

	viper.SetDefault("telegram.ngrok_api_url", "http://ngrok:4040")
}

func validate(cfg *Config) error {
	if cfg.Intent.MinKeywordLength > cfg.Intent.MaxKeywordLength {
		return fmt.Errorf("intent.min_keyword_length (%d) exceeds intent.max_keyword_length (%d)",
			cfg.Intent.MinKeywordLength, cfg.Intent.MaxKeywordLength)
	}
	if cfg.Intent.MaxKeywordsPerIntent <= 0 {
		return fmt.Errorf("intent.max_keywords_per_intent must be positive")
	}
	if cfg.Mining.Enabled && cfg.Mining.Interval <= 0 {
		return fmt.Errorf("mining.interval must be positive when mining is enabled")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		return os.Getenv(envVar)
	}
	return value
}
