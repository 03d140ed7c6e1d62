package cli

import (
	"context"

	"github.com/vk/we/internal/ctxlog"
)

// AppNameFlag is the only flag the command line understands.
const AppNameFlag = "-a"

// Invocation is the validated outcome of a successful Parse.
type Invocation struct {
	AppName string
}

// Parse scans args for `-a <name>` pairs. Every pair is visited, so when the
// flag is repeated the last value wins. An `-a` without a following token is
// skipped. If no name was captured, ErrMissingAppName is returned.
func Parse(ctx context.Context, args []string) (*Invocation, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("CLI parser started.", "arg_count", len(args))

	appName := ""
	for i, arg := range args {
		if arg == AppNameFlag && i+1 < len(args) {
			appName = args[i+1]
			logger.Debug("App name flag found.", "index", i, "value", appName)
		}
	}

	if appName == "" {
		logger.Debug("No app name captured.")
		return nil, ErrMissingAppName
	}

	logger.Debug("CLI parser finished successfully.", "app_name", appName)
	return &Invocation{AppName: appName}, nil
}
