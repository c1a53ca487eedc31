// Package config loads process settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port          string        `envconfig:"PORT" default:"1414"`
	MongoURI      string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string        `envconfig:"MONGO_DATABASE" default:"medstore"`
	QueryTimeout  time.Duration `envconfig:"QUERY_TIMEOUT" default:"10s"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// Token revocation falls back to process memory when RedisAddr is empty.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	S3Endpoint      string `envconfig:"S3_ENDPOINT"`
	S3AccessKey     string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey     string `envconfig:"S3_SECRET_KEY"`
	S3Bucket        string `envconfig:"S3_BUCKET" default:"prescriptions"`
	S3PublicBaseURL string `envconfig:"S3_PUBLIC_BASE_URL"`
	S3UseSSL        bool   `envconfig:"S3_USE_SSL" default:"true"`

	SMTPHost        string   `envconfig:"SMTP_HOST"`
	SMTPPort        int      `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser        string   `envconfig:"SMTP_USER"`
	SMTPPassword    string   `envconfig:"SMTP_PASSWORD"`
	SMTPFrom        string   `envconfig:"SMTP_FROM"`
	AlertRecipients []string `envconfig:"ALERT_RECIPIENTS"`
	AlertTime       string   `envconfig:"ALERT_TIME" default:"08:00"`
	Timezone        string   `envconfig:"TIMEZONE" default:"Asia/Kolkata"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env when present and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET must not be empty")
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) S3Enabled() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// AlertsEnabled reports whether the daily digest has somewhere to go.
func (c *Config) AlertsEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != "" && len(c.AlertRecipients) > 0
}

// PublicBaseURL is where uploaded objects are served from.
func (c *Config) PublicBaseURL() string {
	if c.S3PublicBaseURL != "" {
		return c.S3PublicBaseURL
	}
	scheme := "http"
	if c.S3UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, c.S3Endpoint, c.S3Bucket)
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
