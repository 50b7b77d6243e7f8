package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitbeam/internal/storage/memory"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SPLITBEAM_STORAGE", "SPLITBEAM_DB_PATH", "SPLITBEAM_REDIS_ADDR",
		"SPLITBEAM_REDIS_PASSWORD", "SPLITBEAM_REDIS_DB", "SPLITBEAM_REDIS_PREFIX",
		"SPLITBEAM_METRICS_ADDR", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "./data/splitbeam.db", cfg.Storage.DBPath)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, "splitbeam:", cfg.Redis.Prefix)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SPLITBEAM_STORAGE", "Redis")
	t.Setenv("SPLITBEAM_REDIS_ADDR", "cache:6380")
	t.Setenv("SPLITBEAM_REDIS_DB", "4")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 4, cfg.Redis.DB)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("SPLITBEAM_STORAGE", "memory")
	t.Setenv("SPLITBEAM_REDIS_DB", "two")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{Storage: StorageConfig{Backend: BackendMemory}}, false},
		{"none", Config{Storage: StorageConfig{Backend: BackendNone}}, false},
		{"sqlite", Config{Storage: StorageConfig{Backend: BackendSQLite, DBPath: "x.db"}}, false},
		{"sqlite without path", Config{Storage: StorageConfig{Backend: BackendSQLite}}, true},
		{"redis without addr", Config{Storage: StorageConfig{Backend: BackendRedis}}, true},
		{"unknown", Config{Storage: StorageConfig{Backend: "etcd"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOpenKV(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		cfg := Config{Storage: StorageConfig{Backend: BackendMemory}}
		kv, err := cfg.OpenKV()
		require.NoError(t, err)
		assert.IsType(t, &memory.Store{}, kv)
	})

	t.Run("none", func(t *testing.T) {
		cfg := Config{Storage: StorageConfig{Backend: BackendNone}}
		kv, err := cfg.OpenKV()
		require.NoError(t, err)
		assert.Nil(t, kv)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := Config{Storage: StorageConfig{Backend: BackendSQLite, DBPath: filepath.Join(t.TempDir(), "kv.db")}}
		kv, err := cfg.OpenKV()
		require.NoError(t, err)
		defer kv.Close()

		require.NoError(t, kv.Set(ctx, "k", "v"))
		got, ok, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", got)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := Config{
			Storage: StorageConfig{Backend: BackendRedis},
			Redis:   RedisConfig{Addr: mr.Addr(), Prefix: "test:"},
		}
		kv, err := cfg.OpenKV()
		require.NoError(t, err)
		defer kv.Close()

		require.NoError(t, kv.Set(ctx, "k", "v"))
		got, err := mr.Get("test:k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})
}
