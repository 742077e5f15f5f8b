package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Pagination PaginationConfig `yaml:"pagination"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string  `yaml:"host"`
	Port         string  `yaml:"port"`
	AppURL       string  `yaml:"app_url"`       // Root used when no request is available (CLI)
	TrustProxies bool    `yaml:"trust_proxies"` // Honor X-Forwarded-Proto/Host
	CORSOrigin   string  `yaml:"cors_origin,omitempty"`
	RateLimit    float64 `yaml:"rate_limit"` // Requests per second, 0 disables
	RateBurst    int     `yaml:"rate_burst"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Provider string            `yaml:"provider"` // sqlite
	URI      string            `yaml:"uri"`
	Options  map[string]string `yaml:"options,omitempty"`
}

// PaginationConfig represents pagination defaults
type PaginationConfig struct {
	PerPage    int `yaml:"per_page"`
	OnEachSide int `yaml:"on_each_side"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text, json
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      "8080",
			AppURL:    "http://localhost:8080",
			RateLimit: 20,
			RateBurst: 40,
		},
		Database: DatabaseConfig{
			Provider: "sqlite",
			URI:      "sitekit.db",
		},
		Pagination: PaginationConfig{
			PerPage:    15,
			OnEachSide: 3,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides file values with environment variables
func (c *Config) ApplyEnv(lookup LookupFunc) {
	c.Server.AppURL = EnvString(lookup, "APP_URL", c.Server.AppURL)
	c.Server.Port = EnvString(lookup, "PORT", c.Server.Port)
	c.Server.TrustProxies = EnvBool(lookup, "TRUST_PROXIES", c.Server.TrustProxies)
	c.Database.URI = EnvString(lookup, "DB_URI", c.Database.URI)
	c.Pagination.PerPage = EnvInt(lookup, "PAGINATION_PER_PAGE", c.Pagination.PerPage)
	c.Log.Level = EnvString(lookup, "LOG_LEVEL", c.Log.Level)
	c.Log.Format = EnvString(lookup, "LOG_FORMAT", c.Log.Format)
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sitekit/config.yaml"
	}
	return filepath.Join(home, ".sitekit", "config.yaml")
}

// ResolvePath picks the config file from the flag, then SITEKIT_CONFIG_PATH, then the default
func ResolvePath(flagValue string, lookup LookupFunc) string {
	if flagValue != "" {
		return flagValue
	}
	if envPath := EnvString(lookup, "SITEKIT_CONFIG_PATH", ""); envPath != "" {
		return envPath
	}
	return GetConfigPath()
}

// Exists checks if config file exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
