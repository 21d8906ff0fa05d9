// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Environment names the deployment environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds every setting of the API process.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`
	Port        int         `envconfig:"PORT" default:"8080"`

	DBDriver    string `envconfig:"DB_DRIVER" default:"sqlite"`
	DatabaseURL string `envconfig:"DATABASE_URL" default:"rudereminder.db"`
	DBLogLevel  string `envconfig:"DB_LOG_LEVEL" default:"warn"`

	JWTSecret string `envconfig:"JWT_SECRET"`

	AIAPIKey  string `envconfig:"AI_API_KEY"`
	AIBaseURL string `envconfig:"AI_BASE_URL"`
	AIModel   string `envconfig:"AI_MODEL" default:"gpt-4o-mini"`

	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	SMTPFrom     string `envconfig:"SMTP_FROM" default:"reminders@rudereminder.app"`

	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	RateLimit RateLimit `envconfig:"RATE_LIMIT"`

	RabbitMQURL string `envconfig:"RABBITMQ_URL"`

	SweepInterval   time.Duration `envconfig:"SWEEP_INTERVAL" default:"60s"`
	LookaheadWindow time.Duration `envconfig:"LOOKAHEAD_WINDOW" default:"5m"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE"`

	AdminWhitelist []string `envconfig:"ADMIN_WHITELIST"`
}

// RateLimit configures the redis token bucket in front of /api.
type RateLimit struct {
	Enabled        bool          `envconfig:"ENABLED" default:"true"`
	Capacity       int           `envconfig:"CAPACITY" default:"60"`
	RefillTokens   int           `envconfig:"REFILL_TOKENS" default:"1"`
	RefillInterval time.Duration `envconfig:"REFILL_INTERVAL" default:"1s"`
	TTL            time.Duration `envconfig:"TTL" default:"10m"`
	Prefix         string        `envconfig:"PREFIX" default:"rl"`
}

// Load reads the environment. Keys carry no prefix, e.g. PORT, DB_DRIVER,
// RATE_LIMIT_CAPACITY.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	emails := c.AdminWhitelist[:0]
	for _, e := range c.AdminWhitelist {
		if e = strings.TrimSpace(e); e != "" {
			emails = append(emails, e)
		}
	}
	c.AdminWhitelist = emails

	if c.RateLimit.Capacity < 1 {
		c.RateLimit.Capacity = 1
	}
	if c.RateLimit.RefillTokens < 1 {
		c.RateLimit.RefillTokens = 1
	}
	if c.RateLimit.RefillInterval <= 0 {
		c.RateLimit.RefillInterval = time.Second
	}
	if minTTL := 5 * c.RateLimit.RefillInterval; c.RateLimit.TTL < minTTL {
		c.RateLimit.TTL = minTTL
	}
}

// Validate rejects settings the process cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.JWTSecret == "" && c.Environment != EnvDevelopment {
		return fmt.Errorf("JWT_SECRET is required in %s", c.Environment)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	if c.SweepInterval < time.Second {
		return fmt.Errorf("SWEEP_INTERVAL must be at least 1s, got %s", c.SweepInterval)
	}
	if c.LookaheadWindow < 0 {
		return fmt.Errorf("LOOKAHEAD_WINDOW must not be negative")
	}
	return nil
}
