package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/zizouhuweidi/trivia/internal/database"
)

// Storage drivers
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds everything the API needs at startup
type Config struct {
	Env      string
	HTTPAddr string
	Storage  string

	Postgres       database.PostgresConfig
	SeedCategories bool

	Redis            database.RedisConfig
	CacheEnabled     bool
	CategoryCacheTTL time.Duration
}

// IsProduction reports whether the API runs with production logging
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads config.yaml from the working directory when present and lets
// environment variables override every key.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("STORAGE", StoragePostgres)
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "trivia")
	v.SetDefault("POSTGRES_SSLMODE", "")
	v.SetDefault("SEED_CATEGORIES", true)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_ENABLED", true)
	v.SetDefault("CATEGORY_CACHE_TTL", "10m")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// viper's typed getters turn malformed values into zero values, so typed keys are parsed strictly
	redisDB, err := cast.ToIntE(v.Get("REDIS_DB"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	seedCategories, err := cast.ToBoolE(v.Get("SEED_CATEGORIES"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_CATEGORIES: %w", err)
	}
	cacheEnabled, err := cast.ToBoolE(v.Get("CACHE_ENABLED"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := cast.ToDurationE(v.Get("CATEGORY_CACHE_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATEGORY_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		Env:      v.GetString("APP_ENV"),
		HTTPAddr: v.GetString("HTTP_ADDR"),
		Storage:  v.GetString("STORAGE"),
		Postgres: database.PostgresConfig{
			Host:     v.GetString("POSTGRES_HOST"),
			Port:     v.GetString("POSTGRES_PORT"),
			User:     v.GetString("POSTGRES_USER"),
			Password: v.GetString("POSTGRES_PASSWORD"),
			DBName:   v.GetString("POSTGRES_DB"),
			SSLMode:  v.GetString("POSTGRES_SSLMODE"),
		},
		SeedCategories: seedCategories,
		Redis: database.RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		CacheEnabled:     cacheEnabled,
		CategoryCacheTTL: cacheTTL,
	}

	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage)
	}
	if cfg.CategoryCacheTTL <= 0 {
		return nil, fmt.Errorf("CATEGORY_CACHE_TTL must be positive, got %s", cfg.CategoryCacheTTL)
	}

	return cfg, nil
}
