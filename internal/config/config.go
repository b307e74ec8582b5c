package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ngmaloney/weather-terminal/internal/database"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
	"gopkg.in/yaml.v3"
)

const (
	appName = "weather-terminal"

	// APIKeyEnv holds the weatherapi.com credential
	APIKeyEnv = "WEATHER_API_KEY"

	// DefaultPlace is loaded when the dashboard starts
	DefaultPlace = "Bengaluru"
)

// Config represents the dashboard configuration
type Config struct {
	// Place fetched at start-up
	DefaultPlace string `yaml:"default_place,omitempty"`
	// Weather provider settings
	API APIConfig `yaml:"api,omitempty"`
	// Saved places store
	Database DatabaseConfig `yaml:"database,omitempty"`
	// Debug enables logging to LogFile
	Debug   bool   `yaml:"debug,omitempty"`
	LogFile string `yaml:"log_file,omitempty"`
}

// APIConfig holds weather provider settings
type APIConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
	Timeout string `yaml:"timeout,omitempty"`
	// Place searches allowed per second; 0 disables throttling
	SearchRate  float64 `yaml:"search_rate,omitempty"`
	SearchBurst int     `yaml:"search_burst,omitempty"`
}

// DatabaseConfig holds the saved places database location
type DatabaseConfig struct {
	Path string `yaml:"path,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultPlace: DefaultPlace,
		API: APIConfig{
			BaseURL:     weatherapi.DefaultBaseURL,
			Timeout:     "30s",
			SearchRate:  4,
			SearchBurst: 4,
		},
		Database: DatabaseConfig{
			Path: database.DefaultPath(),
		},
		LogFile: "debug.log",
	}
}

// ConfigDir returns the directory holding config.yml
func ConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appName)
	}
	return filepath.Join(".", "."+appName)
}

// ConfigPath returns the default config file path
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yml")
}

// Load reads the configuration from path, or the default path when empty.
// A missing file is not an error; defaults and environment overrides still apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	// Environment overrides: WEATHER_{KEY}
	if v := os.Getenv("WEATHER_DEFAULT_PLACE"); v != "" {
		cfg.DefaultPlace = v
	}
	if v := os.Getenv("WEATHER_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("WEATHER_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if isTruthy(os.Getenv("WEATHER_DEBUG")) || isTruthy(os.Getenv("DEBUG")) {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at request time
func (c *Config) Validate() error {
	if _, err := c.RequestTimeout(); err != nil {
		return err
	}
	if c.API.SearchRate < 0 {
		return fmt.Errorf("api.search_rate must not be negative, got %v", c.API.SearchRate)
	}
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("api.base_url must not be empty")
	}
	return nil
}

// RequestTimeout parses api.timeout
func (c *Config) RequestTimeout() (time.Duration, error) {
	if c.API.Timeout == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parsing api.timeout %q: %w", c.API.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("api.timeout must be positive, got %s", d)
	}
	return d, nil
}

// LoadEnv loads .env files into the process environment without overriding
// variables that are already set. Missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// APIKey returns the weatherapi.com credential from the environment.
// It is read on every call so a key exported after start-up is picked up.
func APIKey() string {
	return strings.TrimSpace(os.Getenv(APIKeyEnv))
}

// isTruthy parses a boolean-ish environment value
func isTruthy(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "yes", "on", "enable", "enabled":
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
