package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vk/we/internal/ctxlog"
)

// Environment variables understood by Load.
const (
	EnvConfigPath    = "WE_CONFIG"
	EnvGitHubAddress = "WE_GITHUB_ADDRESS"
	EnvLogLevel      = "WE_LOG_LEVEL"
	EnvLogFormat     = "WE_LOG_FORMAT"
)

// DotEnvFile is loaded into the process environment by Load if it exists.
// Variables already set in the environment are left untouched.
const DotEnvFile = ".env"

// Load seeds the environment from DotEnvFile and resolves the configuration
// from the process environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
		}
		ctxlog.FromContext(ctx).Debug("No .env file found, skipping.")
	}

	return LoadFrom(ctx, os.Environ())
}

// LoadFrom resolves the configuration from environ, a list of KEY=VALUE
// pairs in the format of os.Environ.
func LoadFrom(ctx context.Context, environ []string) (*Config, error) {
	env := parseEnviron(environ)
	cfg := Default()

	path, explicit := env[EnvConfigPath]
	explicit = explicit && path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := applyPath(ctx, &cfg, path, env, explicit); err != nil {
		return nil, err
	}

	if v := env[EnvGitHubAddress]; v != "" {
		cfg.GitHubAddress = v
	}
	if v := env[EnvLogLevel]; v != "" {
		cfg.LogLevel = v
	}
	if v := env[EnvLogFormat]; v != "" {
		cfg.LogFormat = v
	}

	return New(cfg)
}

func parseEnviron(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}
	return env
}
