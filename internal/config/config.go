// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	APIURL        string        `mapstructure:"api_url"`
	Timeout       time.Duration `mapstructure:"-"`
	TimeoutMS     int           `mapstructure:"timeout_ms"`
	DebugLogging  bool          `mapstructure:"debug_logging"`
	LogFile       string        `mapstructure:"log_file"`
	LogMaxSizeMB  int           `mapstructure:"log_max_size_mb"`
	LogMaxBackups int           `mapstructure:"log_max_backups"`
	DemoEmail     string        `mapstructure:"demo_email"`
	DemoPassword  string        `mapstructure:"demo_password"`
}

const (
	DefaultAPIURL        = "http://localhost:8080"
	DefaultTimeoutMS     = 10000
	DefaultLogFile       = "tinystock.log"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultDemoEmail     = "demo@tinystock.app"
	DefaultDemoPassword  = "demo123"

	envPrefix = "TINYSTOCK"
)

// LoadConfig reads the optional JSON file at path, applies TINYSTOCK_* environment
// overrides and validates the result. An empty or missing path yields defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	defaults := map[string]interface{}{
		"api_url":         DefaultAPIURL,
		"timeout_ms":      DefaultTimeoutMS,
		"debug_logging":   false,
		"log_file":        DefaultLogFile,
		"log_max_size_mb": DefaultLogMaxSizeMB,
		"log_max_backups": DefaultLogMaxBackups,
		"demo_email":      DefaultDemoEmail,
		"demo_password":   DefaultDemoPassword,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config error: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config: %w", err)
		}
	}

	loadEnvironmentVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	cfg.Timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.APIURL == "" {
		return errors.New("missing api_url in configuration")
	}
	if err := validateURL(cfg.APIURL); err != nil {
		return fmt.Errorf("invalid api_url: %w", err)
	}
	if cfg.TimeoutMS <= 0 {
		return errors.New("invalid timeout_ms")
	}
	if cfg.LogFile == "" {
		return errors.New("missing log_file in configuration")
	}
	if cfg.LogMaxSizeMB <= 0 {
		return errors.New("invalid log_max_size_mb")
	}
	if cfg.LogMaxBackups < 0 {
		return errors.New("invalid log_max_backups")
	}
	return nil
}

func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid URL format")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("invalid URL protocol")
	}
	if parsed.Host == "" {
		return errors.New("missing URL host")
	}
	return nil
}

// loadEnvironmentVariables binds TINYSTOCK_<KEY> for every known key.
func loadEnvironmentVariables(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}
