package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/we/internal/app"
	"github.com/vk/we/internal/cli"
	"github.com/vk/we/internal/config"
	"github.com/vk/we/internal/repo/github"
)

// main is the entrypoint for the we application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	return app.NewApp(outW, errW, cfg, github.NewCreator).Run(ctx, args)
}
