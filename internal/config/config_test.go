package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// chdirTemp moves the test into an empty directory so no stray .env is read.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{EnvStore, EnvWorksheet, EnvBosses, EnvLogFile, EnvLogLevel, EnvMetricsFile} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Members", cfg.Worksheet)
	assert.Equal(t, "bossboard.db", filepath.Base(cfg.Store))
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.MetricsFile)
	require.Len(t, cfg.Bosses, 4)
	assert.Equal(t, "แทโอ", cfg.Bosses[0].Name)
	assert.Equal(t, "#e5ccff", cfg.Bosses[3].Color)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv(EnvStore, "csv:///srv/roster")
	t.Setenv(EnvWorksheet, "Raid")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvMetricsFile, "/var/lib/node_exporter/bossboard.prom")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "csv:///srv/roster", cfg.Store)
	assert.Equal(t, "Raid", cfg.Worksheet)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "/var/lib/node_exporter/bossboard.prom", cfg.MetricsFile)
}

func TestLoad_InvalidLevelFallsBack(t *testing.T) {
	chdirTemp(t)
	t.Setenv(EnvLogLevel, "loud")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv(EnvWorksheet, "")
	os.Unsetenv(EnvWorksheet)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BOSSBOARD_WORKSHEET=FromDotEnv\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "FromDotEnv", cfg.Worksheet)
}

func TestLoad_BossFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "bosses.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bosses:\n  - name: Alpha\n    color: \"#112233\"\n  - name: Beta\n    color: \"#abc\"\n"), 0o644))
	t.Setenv(EnvBosses, path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.Bosses, 2)
	assert.Equal(t, 2, cfg.Bosses[1].Index)
	assert.Equal(t, "Beta", cfg.Bosses[1].Name)
}

func TestLoad_MissingBossFile(t *testing.T) {
	chdirTemp(t)
	t.Setenv(EnvBosses, "/does/not/exist.yaml")

	_, err := Load()
	assert.ErrorContains(t, err, "reading boss file")
}
