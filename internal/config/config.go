package config

import (
	"errors"
	"fmt"
	"strings"
)

// Defaults used when neither the config file nor the environment set a value.
const (
	DefaultGitHubAddress = "test"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// Config holds everything the app needs besides the parsed arguments.
type Config struct {
	GitHubAddress string
	LogLevel      string
	LogFormat     string
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		GitHubAddress: DefaultGitHubAddress,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
	}
}

// New validates cfg and returns a normalised copy.
func New(cfg Config) (*Config, error) {
	cfg.GitHubAddress = strings.TrimSpace(cfg.GitHubAddress)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if cfg.GitHubAddress == "" {
		return nil, errors.New("GitHubAddress is a required configuration field and cannot be empty")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}
