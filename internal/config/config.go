// Package config manages environment variables.
//
// It reads variables from the process environment (and from a `.env`
// file when one exists), loads them into structured Go types, and
// validates that required values are present so they can be reused
// across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any of the providers below read it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix VIRTUOSO_.

	Keys are normalized (prefix removed, lowercased) and a double underscore
	marks nesting, so that single underscores can stay inside key names:

	  VIRTUOSO_SERVER__PORT          -> server.port          -> Config.Server.Port
	  VIRTUOSO_SERVER__READ_TIMEOUT  -> server.read_timeout  -> Config.Server.ReadTimeout

	The store is configured through the bare DATABASE_URL and DATABASE_NAME
	variables, which deployments of this site already provide.
*/

// EnvPrefix is the prefix every application variable carries.
const EnvPrefix = "VIRTUOSO_"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database"`
	Redis         RedisConfig          `koanf:"redis"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// RateLimit is the number of requests per second allowed per client IP.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
}

// DatabaseConfig contains the MongoDB connection parameters.
//
// URL is optional on purpose: without it the process runs in degraded mode,
// where the health endpoint reports the store as unavailable.
type DatabaseConfig struct {
	URL            string `koanf:"url"`
	Name           string `koanf:"name" validate:"required"`
	ConnectTimeout int    `koanf:"connect_timeout" validate:"min=1"`
}

// Configured reports whether a connection string was supplied.
func (d DatabaseConfig) Configured() bool {
	return d.URL != ""
}

// RedisConfig contains Redis connection details.
// Address is "host:port"; empty disables Redis and background jobs.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// IntegrationConfig holds third-party integration settings.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`

	// EmailFrom is the sender address used for outgoing mail.
	EmailFrom string `koanf:"email_from" validate:"required,email"`

	// ContactInbox receives a copy of every contact form submission.
	ContactInbox string `koanf:"contact_inbox" validate:"omitempty,email"`
}

// EmailEnabled reports whether outgoing mail can be sent at all.
func (i IntegrationConfig) EmailEnabled() bool {
	return i.ResendAPIKey != ""
}

// DefaultConfig returns the configuration used before any env var is applied.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "8000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			RateLimit:          20,
		},
		Database: DatabaseConfig{
			Name:           "virtuoso",
			ConnectTimeout: 10,
		},
		Integration: IntegrationConfig{
			EmailFrom: "studio@lazyvirtuoso.art",
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it, applies defaults, and returns the result.
func LoadConfig() (*Config, error) {
	return load(koanf.New("."))
}

func load(k *koanf.Koanf) (*Config, error) {
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// DATABASE_URL -> database.url, DATABASE_NAME -> database.name
	err = k.Load(env.Provider("DATABASE_", ".", func(s string) string {
		return strings.ToLower(strings.Replace(s, "_", ".", 1))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load database env variables: %w", err)
	}

	// Unmarshal on top of the defaults; keys that are absent keep their value.
	// Env values are plain strings, so lists are split on commas and
	// durations such as "100ms" are parsed by the decode hooks.
	mainConfig := DefaultConfig()
	err = k.UnmarshalWithConf("", mainConfig, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           mainConfig,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config so that
	// logs and traces are consistently labelled.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
