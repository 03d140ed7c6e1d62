package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/we/internal/cli"
	"github.com/vk/we/internal/ctxlog"
)

// Run parses args and, if an app name is present, asks the configured
// provider to create its repository.
//
// A missing app name is reported on the error stream and is not returned as
// an error: the run simply ends without contacting the provider.
func (a *App) Run(ctx context.Context, args []string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	inv, err := cli.Parse(ctx, args)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(a.errOut, usageErr.Message)
			a.logger.Debug("App.Run finished without dispatch.", "reason", usageErr.Message)
			return nil
		}
		return fmt.Errorf("failed to parse arguments: %w", err)
	}

	fmt.Fprintf(a.out, "Creating application - %s\n", inv.AppName)

	creator := a.newCreator(a.config.GitHubAddress)
	a.logger.Debug("Repository creator initialized.", "address", a.config.GitHubAddress, "app_name", inv.AppName)

	if err := creator.Create(ctx); err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
