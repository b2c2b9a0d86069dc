package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks a Config against its struct tags and reports every
// failing field with the environment variable that sets it
func Validate(cfg *Config) error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s=%v fails %s", envNameFor(e.Field()), e.Value(), describeTag(e)))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

func describeTag(e validator.FieldError) string {
	if e.Param() != "" {
		return e.Tag() + "=" + e.Param()
	}
	return e.Tag()
}

var envNames = map[string]string{
	"Environment":        EnvEnvironment,
	"LogLevel":           EnvLogLevel,
	"LogFormat":          EnvLogFormat,
	"ServiceName":        EnvServiceName,
	"Version":            EnvVersion,
	"MetricsAddr":        EnvMetricsAddr,
	"DefaultAttackSpeed": EnvDefaultAttackSpeed,
	"TickRate":           EnvTickRate,
	"ItemCatalogPath":    EnvItemCatalogPath,
	"ColorCacheSize":     EnvColorCacheSize,
}

func envNameFor(field string) string {
	if name, ok := envNames[field]; ok {
		return name
	}
	return field
}
