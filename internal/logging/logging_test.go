package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bossboard.log")

	logger, err := New(path, zapcore.InfoLevel)
	require.NoError(t, err)
	logger.Info("roster loaded")
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"roster loaded"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_DebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bossboard.log")

	logger, err := New(path, Level(zapcore.WarnLevel, true))
	require.NoError(t, err)
	logger.Debug("visible")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

func TestLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, Level(zapcore.WarnLevel, false))
	assert.Equal(t, zapcore.DebugLevel, Level(zapcore.WarnLevel, true))
}
