package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig
	Vision      VisionConfig
	Providers   ProvidersConfig
	Recognition RecognitionConfig
	Nutrition   NutritionConfig
	Cache       CacheConfig
	RateLimit   RateLimitConfig
	Log         LogConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// VisionConfig holds the optional vision extractor credentials. No key
// means recognition runs in simulation mode.
type VisionConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// ProvidersConfig holds the nutrition provider chain configuration. Every
// credential is optional; a provider without credentials is skipped.
type ProvidersConfig struct {
	Timeout     time.Duration     `mapstructure:"timeout"`
	USDA        USDAConfig        `mapstructure:"usda"`
	Edamam      EdamamConfig      `mapstructure:"edamam"`
	Spoonacular SpoonacularConfig `mapstructure:"spoonacular"`
}

// USDAConfig holds USDA FoodData Central configuration.
type USDAConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// EdamamConfig holds Edamam API configuration.
type EdamamConfig struct {
	AppID   string `mapstructure:"app_id"`
	AppKey  string `mapstructure:"app_key"`
	BaseURL string `mapstructure:"base_url"`
}

// SpoonacularConfig holds Spoonacular API configuration.
type SpoonacularConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// RecognitionConfig holds recognition limits.
type RecognitionConfig struct {
	MaxCandidates int     `mapstructure:"max_candidates"`
	MinConfidence float64 `mapstructure:"min_confidence"`
	MaxImageBytes int64   `mapstructure:"max_image_bytes"`
}

// NutritionConfig holds the nutrition boundary behavior.
type NutritionConfig struct {
	RequireRealSource bool `mapstructure:"require_real_source"`
}

// CacheConfig holds cache-related configuration.
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory", "redis" or "none"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
	MockTTL  time.Duration `mapstructure:"mock_ttl"`
}

// RateLimitConfig holds per-client rate limiting configuration.
type RateLimitConfig struct {
	PerIPRPS   float64 `mapstructure:"per_ip_rps"`
	PerIPBurst int     `mapstructure:"per_ip_burst"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from environment variables and config files.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/snackscan/")

	v.SetEnvPrefix("SNACKSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("vision.api_key", "")
	v.SetDefault("vision.base_url", "https://vision.googleapis.com")

	// Empty credential defaults keep the env bindings visible to Unmarshal.
	v.SetDefault("providers.timeout", "8s")
	v.SetDefault("providers.usda.api_key", "")
	v.SetDefault("providers.usda.base_url", "https://api.nal.usda.gov/fdc")
	v.SetDefault("providers.edamam.app_id", "")
	v.SetDefault("providers.edamam.app_key", "")
	v.SetDefault("providers.edamam.base_url", "https://api.edamam.com/api/nutrition-data/v2")
	v.SetDefault("providers.spoonacular.api_key", "")
	v.SetDefault("providers.spoonacular.base_url", "https://api.spoonacular.com/food")

	v.SetDefault("recognition.max_candidates", 10)
	v.SetDefault("recognition.min_confidence", 0.3)
	v.SetDefault("recognition.max_image_bytes", 16*1024*1024) // 16MB

	v.SetDefault("nutrition.require_real_source", false)

	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "24h")
	v.SetDefault("cache.mock_ttl", "5m")

	v.SetDefault("ratelimit.per_ip_rps", 5)
	v.SetDefault("ratelimit.per_ip_burst", 10)

	v.SetDefault("log.level", "info")
}

// validate validates the configuration.
func validate(config *Config) error {
	switch config.Cache.Type {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("cache type must be 'memory', 'redis' or 'none', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("redis URL is required when cache type is 'redis'")
	}

	if config.Recognition.MinConfidence < 0 || config.Recognition.MinConfidence > 1 {
		return fmt.Errorf("recognition min_confidence must be in [0,1], got: %v", config.Recognition.MinConfidence)
	}

	if config.Recognition.MaxCandidates <= 0 {
		return fmt.Errorf("recognition max_candidates must be positive, got: %d", config.Recognition.MaxCandidates)
	}

	if config.Recognition.MaxImageBytes <= 0 {
		return fmt.Errorf("recognition max_image_bytes must be positive, got: %d", config.Recognition.MaxImageBytes)
	}

	if config.Providers.Timeout <= 0 {
		return fmt.Errorf("providers timeout must be positive, got: %v", config.Providers.Timeout)
	}

	return nil
}
