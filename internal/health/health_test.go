package health

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/esports-stream/internal/config"
	"github.com/Dallionking/esports-stream/internal/stats"
)

type fakeTerm struct {
	tty  bool
	w, h int
}

func (f fakeTerm) IsTerminal() bool { return f.tty }
func (f fakeTerm) Size() (int, int) { return f.w, f.h }

func testConfig() *config.Config {
	return &config.Config{
		NickName:  "faker",
		Version:   "1.0",
		Mode:      config.ModeNormal,
		MaxStream: 3,
		Language:  "en_US",
		Dashboard: config.DashboardConfig{Interval: time.Second, BriefLogLines: 10, LiveLogLines: 10},
		Feed:      config.FeedConfig{Path: "stats.json", Debounce: 100 * time.Millisecond},
		Log:       config.LogConfig{Dir: "logs", Level: "info"},
	}
}

func newTestChecker(t *testing.T, cfg *config.Config, term Terminal) (*Checker, *config.Paths) {
	t.Helper()
	paths := config.NewPaths(t.TempDir(), cfg)
	return NewChecker(cfg, paths, term), paths
}

func byName(r *Report) map[string]CheckResult {
	out := make(map[string]CheckResult, len(r.Results))
	for _, res := range r.Results {
		out[res.Name] = res
	}
	return out
}

func TestRunAllFreshProject(t *testing.T) {
	c, _ := newTestChecker(t, testConfig(), fakeTerm{tty: true, w: 120, h: 40})

	r := c.RunAll(context.Background())
	res := byName(r)

	assert.Equal(t, 9, r.Total)
	assert.True(t, r.Healthy)
	assert.Equal(t, StatusWarn, res["config-file"].Status)
	assert.Equal(t, StatusPass, res["config-valid"].Status)
	assert.Equal(t, StatusPass, res["language"].Status)
	assert.Equal(t, StatusPass, res["log-dir"].Status)
	assert.Equal(t, StatusWarn, res["feed-file"].Status)
	assert.Equal(t, StatusPass, res["terminal-size"].Status)
}

func TestInvalidConfigFails(t *testing.T) {
	cfg := testConfig()
	cfg.NickName = ""
	cfg.Language = "xx_YY"
	c, _ := newTestChecker(t, cfg, fakeTerm{tty: true, w: 120, h: 40})

	r := c.RunCategory(context.Background(), CategoryConfig)
	res := byName(r)

	assert.False(t, r.Healthy)
	assert.Equal(t, StatusFail, res["config-valid"].Status)
	assert.Contains(t, res["config-valid"].Message, "nickName")
	assert.Equal(t, StatusFail, res["language"].Status)
}

func TestTerminalChecks(t *testing.T) {
	cfg := testConfig()
	c, _ := newTestChecker(t, cfg, fakeTerm{tty: false, w: 60, h: 20})

	res := byName(c.RunCategory(context.Background(), CategoryTerminal))
	assert.Equal(t, StatusWarn, res["tty"].Status)
	assert.Equal(t, StatusWarn, res["terminal-size"].Status)

	cfg.Dashboard.ForceColor = true
	res = byName(c.RunCheck(context.Background(), "tty"))
	assert.Equal(t, StatusPass, res["tty"].Status)
}

func TestFeedChecks(t *testing.T) {
	c, paths := newTestChecker(t, testConfig(), fakeTerm{tty: true, w: 120, h: 40})
	require.NoError(t, stats.WriteFile(paths.Feed, stats.Stats{Status: "Watching"}))

	res := byName(c.RunCategory(context.Background(), CategoryFeed))
	assert.Equal(t, StatusPass, res["feed-file"].Status)
	assert.Equal(t, "Watching", res["feed-file"].Message)
	assert.Equal(t, StatusPass, res["feed-fresh"].Status)

	c.now = func() time.Time { return time.Now().Add(time.Hour) }
	res = byName(c.RunCheck(context.Background(), "feed-fresh"))
	assert.Equal(t, StatusWarn, res["feed-fresh"].Status)

	require.NoError(t, os.WriteFile(paths.Feed, []byte("nope"), 0o644))
	res = byName(c.RunCheck(context.Background(), "feed-file"))
	assert.Equal(t, StatusFail, res["feed-file"].Status)
}

func TestCancelledContextFailsChecks(t *testing.T) {
	c, _ := newTestChecker(t, testConfig(), fakeTerm{tty: true, w: 120, h: 40})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := c.RunAll(ctx)
	assert.Equal(t, r.Total, r.Failed)
	assert.Equal(t, "context cancelled", r.Results[0].Message)
}

func TestFormatReport(t *testing.T) {
	c, paths := newTestChecker(t, testConfig(), fakeTerm{tty: true, w: 120, h: 40})
	require.NoError(t, os.MkdirAll(filepath.Dir(paths.Feed), 0o755))

	out := ansi.Strip(FormatReport(c.RunAll(context.Background())))
	assert.Contains(t, out, "Configuration")
	assert.Contains(t, out, "Stats Feed")
	assert.Contains(t, out, "DEGRADED")
}
