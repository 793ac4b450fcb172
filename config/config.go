package config

import (
	"fmt"
	"strings"
	"time"

	"farmportal.app/errors"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig  `split_words:"true"`
	Advisory ServiceConfig `split_words:"true"`
	Eco      ServiceConfig `split_words:"true"`
	Alert    ServiceConfig `split_words:"true"`
	Chatbot  ServiceConfig `split_words:"true"`
	Cache    CacheConfig   `split_words:"true"`
	Session  SessionConfig `split_words:"true"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int      `envconfig:"SERVER_PORT" default:"8080"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// ServiceConfig contains connection settings for one upstream service
type ServiceConfig struct {
	BaseURL        string `split_words:"true" required:"true"`
	TimeoutSeconds int    `split_words:"true" default:"10"`
}

// Timeout returns the configured request timeout
func (s ServiceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// CacheConfig contains settings for the eco-advice response cache
type CacheConfig struct {
	Type          string `envconfig:"CACHE_TYPE" default:"memory"`
	TTLMinutes    int    `envconfig:"CACHE_TTL_MINUTES" default:"60"`
	RedisAddr     string `envconfig:"CACHE_REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"CACHE_REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"CACHE_REDIS_DB" default:"0"`
}

// TTL returns the configured cache entry lifetime
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// SessionConfig contains settings for the farmer credential cookie
type SessionConfig struct {
	CookieName   string `envconfig:"SESSION_COOKIE_NAME" default:"farmer_token"`
	CookieMaxAge int    `envconfig:"SESSION_COOKIE_MAX_AGE" default:"2592000"`
	CookieSecure bool   `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	for name, svc := range map[string]ServiceConfig{
		"ADVISORY": c.Advisory,
		"ECO":      c.Eco,
		"ALERT":    c.Alert,
		"CHATBOT":  c.Chatbot,
	} {
		if err := svc.Validate(name); err != nil {
			return err
		}
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if len(s.AllowedOrigins) == 0 {
		return errors.NewConfigurationError("ALLOWED_ORIGINS cannot be empty", nil)
	}
	return nil
}

// Validate checks a single upstream service configuration
func (s *ServiceConfig) Validate(name string) error {
	if s.BaseURL == "" {
		return errors.NewConfigurationError(fmt.Sprintf("%s_BASE_URL is required", name), nil)
	}
	if !strings.HasPrefix(s.BaseURL, "http://") && !strings.HasPrefix(s.BaseURL, "https://") {
		return errors.NewConfigurationError(fmt.Sprintf("%s_BASE_URL must start with http:// or https://", name), nil)
	}
	if s.TimeoutSeconds < 1 {
		return errors.NewConfigurationError(fmt.Sprintf("%s_TIMEOUT_SECONDS must be at least 1", name), nil)
	}
	return nil
}

// Validate checks cache configuration
func (c *CacheConfig) Validate() error {
	if c.Type != "memory" && c.Type != "redis" {
		return errors.NewConfigurationError("CACHE_TYPE must be either 'memory' or 'redis'", nil)
	}
	if c.TTLMinutes < 1 {
		return errors.NewConfigurationError("CACHE_TTL_MINUTES must be at least 1", nil)
	}
	if c.Type == "redis" && c.RedisAddr == "" {
		return errors.NewConfigurationError("CACHE_REDIS_ADDR cannot be empty", nil)
	}
	return nil
}

// Validate checks session cookie configuration
func (s *SessionConfig) Validate() error {
	if s.CookieName == "" {
		return errors.NewConfigurationError("SESSION_COOKIE_NAME cannot be empty", nil)
	}
	if s.CookieMaxAge < 1 {
		return errors.NewConfigurationError("SESSION_COOKIE_MAX_AGE must be at least 1 second", nil)
	}
	return nil
}
