package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the main application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Screening ScreeningConfig `mapstructure:"screening"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// ScreeningConfig represents service-adapter limits around the scoring engine
type ScreeningConfig struct {
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
	RateLimitPerSec  float64       `mapstructure:"rate_limit_per_sec"`
	RateLimitBurst   int           `mapstructure:"rate_limit_burst"`
	RateLimitEnabled bool          `mapstructure:"rate_limit_enabled"`
}

// Manager loads and validates configuration using Viper
type Manager struct {
	config *Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from file, environment, and defaults
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/adhd-screener/")

	viper.SetEnvPrefix("ADHD_SCREENER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and env vars suffice
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")

	viper.SetDefault("screening.request_timeout", "10s")
	viper.SetDefault("screening.rate_limit_per_sec", 10.0)
	viper.SetDefault("screening.rate_limit_burst", 20)
	viper.SetDefault("screening.rate_limit_enabled", true)
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *Config {
	return m.config
}

// GetServerConfig returns server configuration
func (m *Manager) GetServerConfig() *ServerConfig {
	return &m.config.Server
}

// GetScreeningConfig returns screening adapter configuration
func (m *Manager) GetScreeningConfig() *ScreeningConfig {
	return &m.config.Screening
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	if config.Logging.Format != "json" && config.Logging.Format != "text" {
		return fmt.Errorf("invalid log format: %s", config.Logging.Format)
	}

	if config.Screening.RateLimitEnabled {
		if config.Screening.RateLimitPerSec <= 0 {
			return fmt.Errorf("invalid rate limit: %f", config.Screening.RateLimitPerSec)
		}
		if config.Screening.RateLimitBurst <= 0 {
			return fmt.Errorf("invalid rate limit burst: %d", config.Screening.RateLimitBurst)
		}
	}

	return nil
}

// IsProduction returns true if running in production mode
func (m *Manager) IsProduction() bool {
	return strings.ToLower(viper.GetString("environment")) == "production"
}
