// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when present), loads them into structured Go types, and validates
// that required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process environment
	// before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read with the PORTFOLIO_ prefix. After the prefix is
	removed the key is lowercased and every double underscore becomes a
	"." so koanf can map it onto nested structs:

		PORTFOLIO_SERVER__PORT          -> server.port
		PORTFOLIO_AUTH__ADMIN_EMAIL     -> auth.admin_email
		PORTFOLIO_STORAGE__ACCESS_KEY   -> storage.access_key
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "PORTFOLIO_"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Storage       StorageConfig        `koanf:"storage" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration" validate:"required"`
	Portfolio     PortfolioConfig      `koanf:"portfolio" validate:"required"`
	RateLimit     RateLimitConfig      `koanf:"rate_limit"`
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
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores the admin identity and the session secrets.
//
// The admin credentials are compared verbatim at login: there is exactly
// one admin and no user table.
type AuthConfig struct {
	// SecretKey signs the session JWT (HS256).
	SecretKey string `koanf:"secret_key" validate:"required"`

	// CookieSecret signs the cookie that carries the JWT.
	CookieSecret string `koanf:"cookie_secret" validate:"required,min=32"`

	AdminEmail    string `koanf:"admin_email" validate:"required,email"`
	AdminPassword string `koanf:"admin_password" validate:"required"`
}

// StorageConfig points at the S3 compatible bucket holding uploaded media.
type StorageConfig struct {
	Endpoint        string `koanf:"endpoint" validate:"required"`
	Region          string `koanf:"region"`
	Bucket          string `koanf:"bucket" validate:"required"`
	AccessKeyID     string `koanf:"access_key" validate:"required"`
	SecretAccessKey string `koanf:"secret_key" validate:"required"`
	UseSSL          bool   `koanf:"use_ssl"`

	// UploadURLExpiry bounds the lifetime of a pre-signed upload URL.
	UploadURLExpiry time.Duration `koanf:"upload_url_expiry"`
}

// IntegrationConfig holds credentials of third-party services.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`

	// EmailFrom is the verified sender, e.g. "Portfolio <hello@example.com>".
	EmailFrom string `koanf:"email_from" validate:"required"`

	// ContactInbox receives the messages posted through the contact form.
	ContactInbox string `koanf:"contact_inbox" validate:"required,email"`
}

// PortfolioConfig holds content-level settings.
type PortfolioConfig struct {
	// OwnerID is the fixed identifier of the singleton owner document.
	OwnerID string `koanf:"owner_id" validate:"required,uuid"`
}

// RateLimitConfig bounds the public endpoints that can be abused:
// login attempts and contact form submissions, counted per client IP.
type RateLimitConfig struct {
	LoginMax   int           `koanf:"login_max" validate:"gte=0"`
	ContactMax int           `koanf:"contact_max" validate:"gte=0"`
	Window     time.Duration `koanf:"window"`
}

const (
	DefaultLoginMax        = 10
	DefaultContactMax      = 5
	DefaultRateLimitWindow = 15 * time.Minute
)

// DefaultUploadURLExpiry is used when storage.upload_url_expiry is unset.
const DefaultUploadURLExpiry = 15 * time.Minute

// LoadConfig loads configuration from environment variables, unmarshals it into
// Config structs, validates it, applies defaults, and returns the resulting config.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := finalize(mainConfig); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// finalize validates a decoded Config and fills in defaults.
// It is split out of LoadConfig so it can run against hand-built configs.
func finalize(mainConfig *Config) error {
	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Storage.UploadURLExpiry <= 0 {
		mainConfig.Storage.UploadURLExpiry = DefaultUploadURLExpiry
	}

	if mainConfig.RateLimit.LoginMax == 0 {
		mainConfig.RateLimit.LoginMax = DefaultLoginMax
	}
	if mainConfig.RateLimit.ContactMax == 0 {
		mainConfig.RateLimit.ContactMax = DefaultContactMax
	}
	if mainConfig.RateLimit.Window <= 0 {
		mainConfig.RateLimit.Window = DefaultRateLimitWindow
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are always derived, never configured.
	mainConfig.Observability.ServiceName = "portfolio"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	return nil
}
