package config

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnvVars = []string{
	EnvEnvironment, EnvLogLevel, EnvLogFormat, EnvServiceName, EnvVersion,
	EnvMetricsAddr, EnvDevMode, EnvDefaultAttackSpeed, EnvTickRate,
	EnvItemCatalogPath, EnvColorCacheSize,
}

// clearEnvVars unsets every config variable for the duration of the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, DefaultServiceName, cfg.ServiceName)
		assert.Empty(t, cfg.MetricsAddr)
		assert.False(t, cfg.DevMode)
		assert.InDelta(t, 4.0, cfg.DefaultAttackSpeed, 1e-9)
		assert.Equal(t, 20, cfg.TickRate)
		assert.Equal(t, ConfigPathItems, cfg.ItemCatalogPath)
		assert.Equal(t, DefaultColorCacheSize, cfg.ColorCacheSize)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvMetricsAddr, "localhost:9090")
		t.Setenv(EnvDevMode, "true")
		t.Setenv(EnvDefaultAttackSpeed, "1.6")
		t.Setenv(EnvTickRate, "10")
		t.Setenv(EnvColorCacheSize, "32")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "localhost:9090", cfg.MetricsAddr)
		assert.True(t, cfg.DevMode)
		assert.InDelta(t, 1.6, cfg.DefaultAttackSpeed, 1e-9)
		assert.Equal(t, 10, cfg.TickRate)
		assert.Equal(t, 32, cfg.ColorCacheSize)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("returns error for unparseable tick rate", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvTickRate, "fast")

		cfg, err := Load()
		assert.Nil(t, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvTickRate)
	})

	t.Run("returns error for unparseable attack speed", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvDefaultAttackSpeed, "quick")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvDefaultAttackSpeed)
	})

	t.Run("returns error for non-finite attack speed", func(t *testing.T) {
		for _, raw := range []string{"NaN", "Inf", "+Inf", "-Inf"} {
			clearEnvVars(t)
			t.Setenv(EnvDefaultAttackSpeed, raw)

			cfg, err := Load()
			assert.Nil(t, cfg, raw)
			require.Error(t, err, raw)
			assert.Contains(t, err.Error(), EnvDefaultAttackSpeed)
		}
	})

	t.Run("falls back to default for unparseable cache size", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvColorCacheSize, "lots")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultColorCacheSize, cfg.ColorCacheSize)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment:        "dev",
			LogLevel:           "info",
			LogFormat:          "text",
			ServiceName:        "svc",
			Version:            "1",
			DefaultAttackSpeed: 4,
			TickRate:           20,
			ItemCatalogPath:    ConfigPathItems,
			ColorCacheSize:     16,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantEnv string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad environment", func(c *Config) { c.Environment = "moon" }, EnvEnvironment},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, EnvLogFormat},
		{"zero attack speed", func(c *Config) { c.DefaultAttackSpeed = 0 }, EnvDefaultAttackSpeed},
		{"attack speed above attribute cap", func(c *Config) { c.DefaultAttackSpeed = 2048 }, EnvDefaultAttackSpeed},
		{"infinite attack speed", func(c *Config) { c.DefaultAttackSpeed = math.Inf(1) }, EnvDefaultAttackSpeed},
		{"NaN attack speed", func(c *Config) { c.DefaultAttackSpeed = math.NaN() }, EnvDefaultAttackSpeed},
		{"tick rate too high", func(c *Config) { c.TickRate = 1000 }, EnvTickRate},
		{"bad metrics addr", func(c *Config) { c.MetricsAddr = "not an address" }, EnvMetricsAddr},
		{"good metrics addr", func(c *Config) { c.MetricsAddr = ":9090" }, ""},
		{"zero cache size", func(c *Config) { c.ColorCacheSize = 0 }, EnvColorCacheSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantEnv == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantEnv)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT_VAR", "100")
	assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))

	t.Setenv("TEST_INT_VAR", "not-a-number")
	assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))

	t.Setenv("TEST_BOOL_VAR", "1")
	assert.True(t, getEnvAsBool("TEST_BOOL_VAR", false))

	t.Setenv("TEST_BOOL_VAR", "maybe")
	assert.True(t, getEnvAsBool("TEST_BOOL_VAR", true))
}
