package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront.
type Config struct {
	App     AppConfig
	Server  ServerConfig
	Order   OrderConfig
	Session SessionConfig
	Catalog CatalogConfig
	Handoff HandoffConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name  string
	Debug bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// OrderConfig controls the order summary text and checkout behaviour.
type OrderConfig struct {
	Title           string
	Closing         string
	ClearOnCheckout bool
}

// SessionConfig controls in-memory session lifetime.
type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// CatalogConfig controls how the embedded menu is interpreted.
type CatalogConfig struct {
	BeverageCategory string
}

// HandoffConfig identifies the messaging recipient of finished orders.
type HandoffConfig struct {
	BaseURL string
	Phone   string
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:  getEnv("APP_NAME", "La Chapa Cardápio"),
			Debug: getEnvAsBool("APP_DEBUG", false),
		},
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Order: OrderConfig{
			Title:           getEnv("ORDER_TITLE", ""),
			Closing:         getEnv("ORDER_CLOSING", ""),
			ClearOnCheckout: getEnvAsBool("CLEAR_CART_ON_CHECKOUT", false),
		},
		Session: SessionConfig{
			TTL:           getEnvAsDuration("SESSION_TTL", 2*time.Hour),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
		},
		Catalog: CatalogConfig{
			BeverageCategory: getEnv("BEVERAGE_CATEGORY", "bebidas"),
		},
		Handoff: HandoffConfig{
			BaseURL: getEnv("WHATSAPP_BASE_URL", "https://wa.me"),
			Phone:   getEnv("WHATSAPP_NUMBER", "5528992546359"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("HTTP_ADDR is required")
	}
	if c.Handoff.Phone == "" {
		return fmt.Errorf("WHATSAPP_NUMBER is required")
	}
	for _, r := range c.Handoff.Phone {
		if r < '0' || r > '9' {
			return fmt.Errorf("WHATSAPP_NUMBER must contain digits only, got %q", c.Handoff.Phone)
		}
	}
	if !strings.HasPrefix(c.Handoff.BaseURL, "http://") && !strings.HasPrefix(c.Handoff.BaseURL, "https://") {
		return fmt.Errorf("WHATSAPP_BASE_URL must be an http(s) URL, got %q", c.Handoff.BaseURL)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
