package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want zapcore.Level
	}{
		{"default", Options{}, zapcore.InfoLevel},
		{"configured", Options{Level: "warn"}, zapcore.WarnLevel},
		{"verbose wins", Options{Level: "error", Verbose: true}, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.opts)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))

			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNew_ConsoleToFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "arcqa.log")

	logger, err := New(Options{Encoding: "console", OutputPaths: []string{p}})
	require.NoError(t, err)

	logger.Info("extraction finished")
	_ = logger.Sync()

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "extraction finished")
	assert.NotContains(t, string(data), `"msg"`)
}
