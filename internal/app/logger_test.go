package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		level     string
		format    string
		wantLevel slog.Level
		wantJSON  bool
	}{
		{name: "debug text", level: "debug", format: "text", wantLevel: slog.LevelDebug},
		{name: "info json", level: "info", format: "json", wantLevel: slog.LevelInfo, wantJSON: true},
		{name: "warn", level: "warn", format: "text", wantLevel: slog.LevelWarn},
		{name: "error", level: "error", format: "text", wantLevel: slog.LevelError},
		{name: "unknown level falls back to info", level: "loud", format: "text", wantLevel: slog.LevelInfo},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			logger := newLogger(tc.level, tc.format, buf)

			ctx := context.Background()
			require.True(t, logger.Enabled(ctx, tc.wantLevel))
			require.False(t, logger.Enabled(ctx, tc.wantLevel-1), "level below %s must be disabled", tc.wantLevel)

			logger.Log(ctx, tc.wantLevel, "probe")
			if tc.wantJSON {
				require.Contains(t, buf.String(), `"msg":"probe"`)
			} else {
				require.Contains(t, buf.String(), "msg=probe")
			}
		})
	}
}
