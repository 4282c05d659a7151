package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"linkboard/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		debugEnable bool
	}{
		{
			name:        "local is debug",
			env:         config.EnvLocal,
			debugEnable: true,
		},
		{
			name:        "dev is debug",
			env:         config.EnvDev,
			debugEnable: true,
		},
		{
			name: "prod is info",
			env:  config.EnvProd,
		},
		{
			name: "unknown env falls back to info",
			env:  "staging",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.env)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.Equal(t, tt.debugEnable, log.Enabled(ctx, slog.LevelDebug))
			assert.True(t, log.Enabled(ctx, slog.LevelInfo))
		})
	}
}
