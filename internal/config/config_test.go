package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, "trivia", cfg.Postgres.DBName)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.True(t, cfg.SeedCategories)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, 10*time.Minute, cfg.CategoryCacheTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("STORAGE", "memory")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CATEGORY_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "db", cfg.Postgres.Host)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, 30*time.Second, cfg.CategoryCacheTTL)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/config.yaml", []byte("postgres_db: quiz\nhttp_addr: \":7000\"\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "quiz", cfg.Postgres.DBName)
	assert.Equal(t, ":7000", cfg.HTTPAddr)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("storage", func(t *testing.T) {
		t.Setenv("STORAGE", "sqlite")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("ttl", func(t *testing.T) {
		t.Setenv("CATEGORY_CACHE_TTL", "0s")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("malformed ttl", func(t *testing.T) {
		t.Setenv("CATEGORY_CACHE_TTL", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "CATEGORY_CACHE_TTL")
	})

	t.Run("redis db", func(t *testing.T) {
		t.Setenv("REDIS_DB", "primary")
		_, err := Load()
		assert.ErrorContains(t, err, "REDIS_DB")
	})

	t.Run("cache flag", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "maybe")
		_, err := Load()
		assert.ErrorContains(t, err, "CACHE_ENABLED")
	})
}
