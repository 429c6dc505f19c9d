package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// DatabaseConfig holds PostgreSQL connection settings for the catalog store.
// URL, when set, is used as the connection string and the discrete fields are ignored.
type DatabaseConfig struct {
	URL                string `env:"URL"`
	Host               string `env:"HOST"`
	Port               string `env:"PORT" envDefault:"5432"`
	User               string `env:"USER"`
	Password           string `env:"PASSWORD"`
	Name               string `env:"NAME"`
	SSLMode            string `env:"SSLMODE" envDefault:"disable"`
	MaxOpenConns       int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns       int    `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetimeSec int    `env:"CONN_MAX_LIFETIME_SEC" envDefault:"300"`
}

// MinIOConfig holds object storage settings for the poster bucket.
type MinIOConfig struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET" envDefault:"movie-posters"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
	// PublicBaseURL overrides the endpoint when building poster URLs (e.g. a CDN in front of the bucket).
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

// InferenceConfig holds settings for the OpenAI-compatible chat completion endpoint.
type InferenceConfig struct {
	BaseURL   string        `env:"BASE_URL" envDefault:"https://router.huggingface.co/v1"`
	APIKey    string        `env:"API_KEY"`
	Model     string        `env:"MODEL"`
	MaxTokens int           `env:"MAX_TOKENS" envDefault:"240"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"60s"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string `env:"APP_HOST" envDefault:"localhost:8080"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Timezone    string `env:"APP_TIMEZONE" envDefault:"UTC"`
	MaxUploadMB int    `env:"MAX_UPLOAD_MB" envDefault:"10"`

	// PosterCleanupOnReject deletes an uploaded poster when the rest of the intake request is rejected.
	// Off by default: rejected requests leave their poster in the bucket.
	PosterCleanupOnReject bool `env:"POSTER_CLEANUP_ON_REJECT" envDefault:"false"`

	Database  DatabaseConfig  `envPrefix:"DB_"`
	MinIO     MinIOConfig     `envPrefix:"MINIO_"`
	Inference InferenceConfig `envPrefix:"INFERENCE_"`
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BodyLimit returns the maximum request body size in bytes accepted by the HTTP server.
func (c *AppConfig) BodyLimit() int {
	if c.MaxUploadMB <= 0 {
		return 4 * 1024 * 1024
	}
	return c.MaxUploadMB * 1024 * 1024
}
