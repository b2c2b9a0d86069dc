package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string `validate:"oneof=dev development staging prod production test"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`

	// MetricsAddr is the listen address for /metrics and /healthz; empty disables it
	MetricsAddr string `validate:"omitempty,hostname_port"`

	// Cooldown settings
	DevMode            bool
	DefaultAttackSpeed float64 `validate:"gt=0,lte=1024"`
	TickRate           int     `validate:"min=1,max=100"`

	ItemCatalogPath string `validate:"required"`
	ColorCacheSize  int    `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		LogLevel:        strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:       strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		MetricsAddr:     getEnv(EnvMetricsAddr, ""),
		DevMode:         getEnvAsBool(EnvDevMode, false),
		ItemCatalogPath: getEnv(EnvItemCatalogPath, ConfigPathItems),
		ColorCacheSize:  getEnvAsInt(EnvColorCacheSize, DefaultColorCacheSize),
	}

	var err error
	if cfg.DefaultAttackSpeed, err = parseFloatEnv(EnvDefaultAttackSpeed, DefaultAttackSpeed); err != nil {
		return nil, err
	}
	if cfg.TickRate, err = parseIntEnv(EnvTickRate, DefaultTickRate); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether source locations should be logged
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt is lenient: unparseable values fall back to the default
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// parseIntEnv is strict: a set but unparseable value is an error
func parseIntEnv(key string, defaultValue int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

func parseFloatEnv(key string, defaultValue float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	// ParseFloat accepts "NaN" and "Inf"
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("invalid %s value: %q is not finite", key, raw)
	}
	return value, nil
}
