package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// LookupPath is appended to the configured base URL for every lookup
const LookupPath = "/api/lookup"

type Config struct {
	APIBaseURL     string        `env:"LOOKUP_API_URL" envDefault:"http://localhost:4000" json:"api_base_url" validate:"required,http_url"`
	RequestTimeout time.Duration `json:"request_timeout" validate:"gt=0"`
	LogFile        string        `json:"log_file" validate:"required"`
	LogLevel       string        `json:"log_level" validate:"oneof=debug info warn error"`
	MetricsAddr    string        `json:"metrics_addr,omitempty" validate:"omitempty,hostname_port"`
}

var DefaultConfig = Config{
	APIBaseURL:     "http://localhost:4000",
	RequestTimeout: 10 * time.Second,
	LogFile:        filepath.Join(os.TempDir(), "ip-geo-lookup.log"),
	LogLevel:       "info",
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig starts from DefaultConfig and applies an optional .env file and
// the process environment. Flags are layered on top by the caller.
func LoadConfig() (*Config, error) {
	// A missing .env is the normal case outside local development
	_ = godotenv.Load()

	cfg := DefaultConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	if c.LogLevel == "" {
		c.LogLevel = DefaultConfig.LogLevel
	}

	if c.LogFile == "" {
		c.LogFile = DefaultConfig.LogFile
	}

	if err := configValidator.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ConfigError{Field: jsonFieldName(fe.StructField()), Message: describeTag(fe)}
		}
		return &ConfigError{Field: "config", Message: err.Error()}
	}

	return nil
}

// LookupURL is the absolute endpoint lookups are posted to
func (c *Config) LookupURL() string {
	return c.APIBaseURL + LookupPath
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

func jsonFieldName(structField string) string {
	switch structField {
	case "APIBaseURL":
		return "api_base_url"
	case "RequestTimeout":
		return "request_timeout"
	case "LogFile":
		return "log_file"
	case "LogLevel":
		return "log_level"
	case "MetricsAddr":
		return "metrics_addr"
	}
	return structField
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value is required"
	case "http_url":
		return fmt.Sprintf("%q is not an http(s) URL", fe.Value())
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "hostname_port":
		return fmt.Sprintf("%q is not a host:port address", fe.Value())
	}
	return "failed '" + fe.Tag() + "' validation"
}
