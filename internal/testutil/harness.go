package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/we/internal/app"
	"github.com/vk/we/internal/config"
)

// HarnessResult holds the outcomes of a single app run.
type HarnessResult struct {
	Stdout  string
	Stderr  string
	Err     error
	Factory *RecordingFactory
}

// RunApp builds an App around a RecordingFactory and runs it with args. A nil
// cfg means the built-in defaults. createErr is returned by the collaborator.
func RunApp(t *testing.T, cfg *config.Config, createErr error, args ...string) *HarnessResult {
	t.Helper()

	if cfg == nil {
		var err error
		cfg, err = config.New(config.Default())
		require.NoError(t, err)
	}

	stdout := &SafeBuffer{}
	stderr := &SafeBuffer{}
	factory := &RecordingFactory{Err: createErr}

	testApp := app.NewApp(stdout, stderr, cfg, factory.New)
	runErr := testApp.Run(context.Background(), args)

	if os.Getenv("WE_TEST_LOGS") == "true" {
		t.Logf("--- Output for %s ---\nstdout:\n%s\nstderr:\n%s", t.Name(), stdout.String(), stderr.String())
	}

	return &HarnessResult{
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Err:     runErr,
		Factory: factory,
	}
}
