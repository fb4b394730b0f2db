package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Store     StoreConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	MinIO     MinIOConfig
	RateLimit RateLimitConfig
	Market    MarketConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// Store backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type StoreConfig struct {
	Backend   string
	KeyPrefix string
}

type MongoDBConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port for the Redis client.
func (r RedisConfig) Addr() string { return r.Host + ":" + r.Port }

// MinIOConfig holds the object storage used for uploaded document files.
// Uploads are disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	UseSSL     bool
	Bucket     string
	PreviewTTL time.Duration
}

// Enabled reports whether an object store is configured.
func (m MinIOConfig) Enabled() bool { return m.Endpoint != "" }

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

// MarketConfig tunes the marketplace rules.
type MarketConfig struct {
	SeedVersion string
	FeeRate     float64
	// Guards enforced by the data service on top of the purchase-before-review rule.
	GuardSelfPurchase    bool
	GuardDuplicateReview bool
}

// DefaultSeedVersion is the version of the bundled demo dataset.
const DefaultSeedVersion = "2025-11-13"

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "5001")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("STORE_BACKEND", BackendMemory)
	v.SetDefault("STORE_KEY_PREFIX", "nordnotes_")
	v.SetDefault("MONGODB_DATABASE", "nordnotes")
	v.SetDefault("MONGODB_COLLECTION", "kv")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("MINIO_BUCKET", "nordnotes-documents")
	v.SetDefault("MINIO_PREVIEW_TTL_MINUTES", 60)
	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_USE_REDIS", false)
	v.SetDefault("RATE_LIMIT_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	v.SetDefault("SEED_VERSION", DefaultSeedVersion)
	v.SetDefault("PLATFORM_FEE_RATE", 0.10)
	v.SetDefault("MARKET_GUARD_SELF_PURCHASE", true)
	v.SetDefault("MARKET_GUARD_DUPLICATE_REVIEW", true)

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("SERVER_PORT"),
			Host:         v.GetString("SERVER_HOST"),
			Environment:  v.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Store: StoreConfig{
			Backend:   strings.ToLower(strings.TrimSpace(v.GetString("STORE_BACKEND"))),
			KeyPrefix: v.GetString("STORE_KEY_PREFIX"),
		},
		MongoDB: MongoDBConfig{
			URI:        v.GetString("MONGODB_URI"),
			Database:   v.GetString("MONGODB_DATABASE"),
			Collection: v.GetString("MONGODB_COLLECTION"),
			Timeout:    time.Duration(v.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		MinIO: MinIOConfig{
			Endpoint:   v.GetString("MINIO_ENDPOINT"),
			AccessKey:  v.GetString("MINIO_ACCESS_KEY"),
			SecretKey:  os.Getenv("MINIO_SECRET_KEY"),
			UseSSL:     v.GetBool("MINIO_USE_SSL"),
			Bucket:     v.GetString("MINIO_BUCKET"),
			PreviewTTL: time.Duration(v.GetInt("MINIO_PREVIEW_TTL_MINUTES")) * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Enabled:       v.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      v.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         v.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: v.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		Market: MarketConfig{
			SeedVersion:          v.GetString("SEED_VERSION"),
			FeeRate:              v.GetFloat64("PLATFORM_FEE_RATE"),
			GuardSelfPurchase:    v.GetBool("MARKET_GUARD_SELF_PURCHASE"),
			GuardDuplicateReview: v.GetBool("MARKET_GUARD_DUPLICATE_REVIEW"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Redis.Host == "" {
			return fmt.Errorf("STORE_BACKEND=redis requires REDIS_HOST")
		}
	case BackendMongo:
		if c.MongoDB.URI == "" {
			return fmt.Errorf("STORE_BACKEND=mongo requires MONGODB_URI")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}
	if c.MinIO.Enabled() && c.MinIO.Bucket == "" {
		return fmt.Errorf("MINIO_BUCKET must be set when MINIO_ENDPOINT is configured")
	}
	if c.Market.FeeRate <= 0 || c.Market.FeeRate >= 1 {
		return fmt.Errorf("PLATFORM_FEE_RATE must be in (0,1), got %v", c.Market.FeeRate)
	}
	return nil
}
