package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string        `mapstructure:"APP_PORT"`
	DatabaseURL       string        `mapstructure:"DATABASE_URL"`
	DatabaseName      string        `mapstructure:"DATABASE_NAME"`
	Env               string        `mapstructure:"ENV"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	TokenTTL          time.Duration `mapstructure:"TOKEN_TTL"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int           `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       []string      `mapstructure:"CORS_ORIGINS"`

	// Redis configuration.
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int           `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int           `mapstructure:"REDIS_QUEUE_DB"`
	CacheEnabled  bool          `mapstructure:"CACHE_ENABLED"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`

	// Booking lifecycle.
	StrictTransitions bool `mapstructure:"BOOKING_STRICT_TRANSITIONS"`

	// Rating reconciliation worker.
	ReconcileEnabled bool   `mapstructure:"RECONCILE_ENABLED"`
	ReconcileCron    string `mapstructure:"RECONCILE_CRON"`
}

var AppConfig Config

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("CORS_ORIGINS", []string{"http://localhost:3000"})
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "sevagram")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", 30*24*time.Hour)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 3)
	v.SetDefault("CACHE_ENABLED", true)
	v.SetDefault("CACHE_TTL", 10*time.Minute)
	v.SetDefault("BOOKING_STRICT_TRANSITIONS", true)
	v.SetDefault("RECONCILE_ENABLED", false)
	v.SetDefault("RECONCILE_CRON", "@daily")
}

// Load reads configuration from an optional config.yaml and the environment.
func Load(v *viper.Viper) (Config, error) {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	// Comma separated origins are accepted from the environment.
	if len(cfg.CORSOrigins) == 1 && strings.Contains(cfg.CORSOrigins[0], ",") {
		cfg.CORSOrigins = strings.Split(cfg.CORSOrigins[0], ",")
	}
	return cfg, nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			log.Fatal("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "sevagram-dev-secret"
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
