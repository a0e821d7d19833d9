package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFrom(t *testing.T, body string) *Config {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v, dir)
	require.NoError(t, err)
	return cfg
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg := loadFrom(t, `{"nickName": "Faker"}`)

	assert.Equal(t, "Faker", cfg.NickName)
	assert.Equal(t, ModeNormal, cfg.Mode)
	assert.Equal(t, 3, cfg.MaxStream)
	assert.Equal(t, time.Second, cfg.Dashboard.Interval)
	assert.Equal(t, 10, cfg.Dashboard.BriefLogLines)
	assert.Equal(t, "stats.json", cfg.Feed.Path)
	assert.Equal(t, 100*time.Millisecond, cfg.Feed.Debounce)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Same(t, cfg, Get())
}

func TestLoadDecodesDurations(t *testing.T) {
	cfg := loadFrom(t, `{
		"nickName": "Uzi",
		"mode": "safe",
		"dashboard": {"interval": "250ms", "briefLogLines": 4},
		"feed": {"path": "/tmp/feed.json", "debounce": "1s"}
	}`)

	assert.True(t, cfg.SafeMode())
	assert.Equal(t, 250*time.Millisecond, cfg.Dashboard.Interval)
	assert.Equal(t, 4, cfg.Dashboard.BriefLogLines)
	assert.Equal(t, time.Second, cfg.Feed.Debounce)
}

func TestNewPathsResolvesRelativeToRoot(t *testing.T) {
	cfg := &Config{
		Feed: FeedConfig{Path: "run/stats.json"},
		Log:  LogConfig{Dir: "/var/log/esports"},
	}

	p := NewPaths("/srv/agent", cfg)
	assert.Equal(t, filepath.Join("/srv/agent", "run", "stats.json"), p.Feed)
	assert.Equal(t, "/var/log/esports", p.Logs)
	assert.Equal(t, filepath.Join("/srv/agent", "config.json"), p.Config)
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	cfg := &Config{
		Feed: FeedConfig{Path: "run/stats.json"},
		Log:  LogConfig{Dir: "logs/programs"},
	}
	p := NewPaths(root, cfg)

	require.NoError(t, EnsureDirectories(p))
	for _, d := range []string{p.Logs, p.DropsHistory, filepath.Dir(p.Feed)} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), d)
	}
}
