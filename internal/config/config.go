// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AnalyzeConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"-"` // Loaded from environment
}

type ExportConfig struct {
	MaxConcurrent int64 `yaml:"max_concurrent"`
}

type SessionsConfig struct {
	MaxIdleMinutes int    `yaml:"max_idle_minutes"`
	JanitorCron    string `yaml:"janitor_cron"`
}

func (s SessionsConfig) MaxIdle() time.Duration {
	return time.Duration(s.MaxIdleMinutes) * time.Minute
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseURL     string `yaml:"base_url"`
		TrustProxy  bool   `yaml:"trust_proxy"`
	} `yaml:"app"`

	Analyze  AnalyzeConfig  `yaml:"analyze"`
	Export   ExportConfig   `yaml:"export"`
	Sessions SessionsConfig `yaml:"sessions"`

	Features struct {
		EnableDebug bool `yaml:"enable_debug"`
	} `yaml:"features"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	var cfg Config
	cfg.App.Name = "propdeck"
	cfg.App.Environment = "development"
	cfg.App.Port = 8080
	cfg.Export.MaxConcurrent = 4
	cfg.Sessions.MaxIdleMinutes = 240
	cfg.Sessions.JanitorCron = "*/15 * * * *"
	return &cfg
}

// Load loads both .env and yaml configuration. A missing config file falls
// back to defaults; a present but malformed one is an error.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := Default()
	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("error reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	// Load sensitive values and overrides from environment
	cfg.Analyze.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	if port, ok := os.LookupEnv("PORT"); ok {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q", port)
		}
		cfg.App.Port = p
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("app port must be between 1 and 65535")
	}
	if c.Export.MaxConcurrent <= 0 {
		return fmt.Errorf("export max_concurrent must be positive")
	}
	if c.Sessions.MaxIdleMinutes <= 0 {
		return fmt.Errorf("sessions max_idle_minutes must be positive")
	}
	if c.Sessions.JanitorCron == "" {
		return fmt.Errorf("sessions janitor_cron is required")
	}
	return nil
}
