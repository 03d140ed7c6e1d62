package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/we/internal/ctxlog"
	"github.com/vk/we/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// DefaultFile is read from the working directory when EnvConfigPath is unset.
const DefaultFile = "we.hcl"

const configExtension = ".hcl"

// hclFile is the top-level structure of a config file.
type hclFile struct {
	GitHub *hclGitHubBlock `hcl:"github,block"`
	Log    *hclLogBlock    `hcl:"log,block"`
}

type hclGitHubBlock struct {
	Address *string `hcl:"address,optional"`
}

type hclLogBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// applyPath overlays the config found at path onto cfg. path may be a single
// HCL file or a directory, in which case every .hcl file beneath it is
// applied in lexical order. A missing path is only an error when required
// is set.
func applyPath(ctx context.Context, cfg *Config, path string, env map[string]string, required bool) error {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			logger.Debug("No config file found, skipping.", "path", path)
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, configExtension)
		if err != nil {
			return fmt.Errorf("failed to find config files in %s: %w", path, err)
		}
		if len(files) == 0 {
			logger.Warn("No .hcl config files found in directory.", "path", path)
		}
	}

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(env)
	for _, file := range files {
		if err := applyFile(cfg, file, parser, evalCtx); err != nil {
			return err
		}
		logger.Debug("Config file applied.", "path", file)
	}

	return nil
}

// applyFile decodes a single HCL file and copies every attribute it sets onto cfg.
func applyFile(cfg *Config, path string, parser *hclparse.Parser, evalCtx *hcl.EvalContext) error {
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, evalCtx, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	if parsed.GitHub != nil && parsed.GitHub.Address != nil {
		cfg.GitHubAddress = *parsed.GitHub.Address
	}
	if parsed.Log != nil {
		if parsed.Log.Level != nil {
			cfg.LogLevel = *parsed.Log.Level
		}
		if parsed.Log.Format != nil {
			cfg.LogFormat = *parsed.Log.Format
		}
	}

	return nil
}

// newEvalContext exposes the environment to config expressions as `env.NAME`.
func newEvalContext(env map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vals),
		},
	}
}
