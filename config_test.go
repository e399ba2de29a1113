package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing optional file yields defaults", func(t *testing.T) {
		cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), false)
		require.NoError(t, err)
		require.Equal(t, defaultConfig(), cfg)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), true)
		require.Error(t, err)
	})

	t.Run("file overlays defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "checkersbot.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"ledger_url: http://node:9000/rpc\n"+
				"poll_interval: 250ms\n"+
				"move_timeout: 1m\n"+
				"start_index: 42\n"+
				"allow_backward_men: true\n"), 0o644))

		cfg, err := loadConfig(path, true)
		require.NoError(t, err)
		require.Equal(t, "http://node:9000/rpc", cfg.LedgerURL)
		require.Equal(t, 250*time.Millisecond, cfg.PollInterval.Duration)
		require.Equal(t, time.Minute, cfg.MoveTimeout.Duration)
		require.Equal(t, uint64(42), cfg.StartIndex)
		require.True(t, cfg.AllowBackwardMen)
		require.Equal(t, defaultConfig().RegisterRetries, cfg.RegisterRetries,
			"Unset keys keep their defaults")
	})

	t.Run("bad duration is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "checkersbot.yaml")
		require.NoError(t, os.WriteFile(path, []byte("poll_interval: soon\n"), 0o644))
		_, err := loadConfig(path, true)
		require.Error(t, err)
	})
}
