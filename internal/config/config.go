package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/bossboard/internal/domain"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Environment variables read by Load.
const (
	EnvStore       = "BOSSBOARD_STORE"
	EnvWorksheet   = "BOSSBOARD_WORKSHEET"
	EnvBosses      = "BOSSBOARD_BOSSES"
	EnvLogFile     = "BOSSBOARD_LOG_FILE"
	EnvLogLevel    = "BOSSBOARD_LOG_LEVEL"
	EnvMetricsFile = "BOSSBOARD_METRICS_FILE"
)

// DefaultWorksheet is the roster worksheet name.
const DefaultWorksheet = "Members"

// Config is the resolved runtime configuration.
type Config struct {
	Store       string
	Worksheet   string
	BossesFile  string
	Bosses      []domain.BossDefinition
	LogFile     string
	LogLevel    zapcore.Level
	MetricsFile string
}

// DefaultBosses is the built-in boss rotation.
func DefaultBosses() []domain.BossDefinition {
	return domain.NewBossList(
		[2]string{"แทโอ", "#ffcccc"},
		[2]string{"ไคล์", "#cce5ff"},
		[2]string{"ยอนฮี", "#ccffcc"},
		[2]string{"คาร์ม่า", "#e5ccff"},
	)
}

// DefaultDir returns ~/.bossboard.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bossboard"
	}
	return filepath.Join(home, ".bossboard")
}

// Load reads .env (when present) and the BOSSBOARD_* environment. Boss
// definitions come from the YAML file named by BOSSBOARD_BOSSES, or the
// built-in list. The result is not validated; callers apply flag overrides
// and then call Validate.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dir := DefaultDir()
	cfg := &Config{
		Store:       envString(EnvStore, filepath.Join(dir, "bossboard.db")),
		Worksheet:   envString(EnvWorksheet, DefaultWorksheet),
		BossesFile:  envString(EnvBosses, ""),
		LogFile:     envString(EnvLogFile, filepath.Join(dir, "bossboard.log")),
		LogLevel:    envLevel(EnvLogLevel, zapcore.InfoLevel),
		MetricsFile: envString(EnvMetricsFile, ""),
	}
	if err := cfg.ResolveBosses(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveBosses loads Bosses from BossesFile, or the defaults when unset.
func (c *Config) ResolveBosses() error {
	if c.BossesFile == "" {
		c.Bosses = DefaultBosses()
		return nil
	}
	bosses, err := LoadBossFile(c.BossesFile)
	if err != nil {
		return err
	}
	c.Bosses = bosses
	return nil
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envLevel(key string, fallback zapcore.Level) zapcore.Level {
	if v := os.Getenv(key); v != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			return lvl
		}
	}
	return fallback
}

func (c *Config) String() string {
	return fmt.Sprintf("store=%s worksheet=%s bosses=%d", c.Store, c.Worksheet, len(c.Bosses))
}
