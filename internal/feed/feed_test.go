package feed

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/esports-stream/internal/i18n"
	"github.com/Dallionking/esports-stream/internal/stats"
)

func TestWatcherLoadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, stats.WriteFile(path, stats.Stats{Status: "watching", CurrentDrops: 3}))

	store := stats.NewStore()
	logger, _ := test.NewNullLogger()
	w, err := NewWatcher(path, store, 10*time.Millisecond, logger)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Load())
	assert.Equal(t, 3, store.Snapshot().CurrentDrops)
}

func TestWatcherMissingFileIsNotAnError(t *testing.T) {
	logger, _ := test.NewNullLogger()
	w, err := NewWatcher(filepath.Join(t.TempDir(), "stats.json"), stats.NewStore(), 0, logger)
	require.NoError(t, err)
	defer w.Close()

	assert.NoError(t, w.Load())
}

func TestNewWatcherBadDir(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := NewWatcher("/nonexistent/dir/stats.json", stats.NewStore(), 0, logger)
	assert.Error(t, err)
}

func TestWatcherAppliesPublishedSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	store := stats.NewStore()
	logger, hook := test.NewNullLogger()
	w, err := NewWatcher(path, store, 10*time.Millisecond, logger)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)

	// A malformed write is skipped.
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	require.Eventually(t, func() bool { return len(hook.AllEntries()) > 0 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, stats.Stats{}, store.Snapshot())

	require.NoError(t, stats.WriteFile(path, stats.Stats{Status: "checking", TodayDrops: 2}))
	select {
	case s := <-w.Updates():
		assert.Equal(t, "checking", s.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for feed update")
	}
	assert.Equal(t, 2, store.Snapshot().TodayDrops)
}

func TestPublishWritesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	store := stats.NewStore()
	store.SetStatus("sleeping")
	logger, _ := test.NewNullLogger()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, Publish(ctx, store, path, time.Hour, logger))

	s, err := stats.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sleeping", s.Status)
}

type lockedPrinter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (p *lockedPrinter) Println(a ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, v := range a {
		if i > 0 {
			p.buf.WriteByte(' ')
		}
		p.buf.WriteString(v.(string))
	}
	p.buf.WriteByte('\n')
}

func newTestDemo(t *testing.T) (*Demo, *stats.Store, *lockedPrinter) {
	t.Helper()
	texts, err := i18n.New("en_US")
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()

	store := stats.NewStore()
	out := &lockedPrinter{}
	d := NewDemo(store, out, texts, time.Second, logger)
	d.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return d, store, out
}

func TestDemoWalksPhases(t *testing.T) {
	d, store, _ := newTestDemo(t)
	d.Seed()

	want := []string{"Logging in", "Initializing", "Checking", "Watching", "Watching"}
	for i, phase := range want {
		d.Step(i)
		assert.Equal(t, phase, store.Snapshot().Status, "step %d", i)
	}

	s := store.Snapshot()
	assert.Equal(t, []string{"LPL", "LCK"}, s.LiveRegions)
	assert.Equal(t, "12:00:04", s.NextCheckTime)
	assert.Len(t, s.BriefInfo, len(want))
	assert.Equal(t, stats.StreamNoDrops, s.Streams[1].State)
}

func TestDemoAddsDropsAndAnnounces(t *testing.T) {
	d, store, out := newTestDemo(t)
	d.Seed()

	for i := 0; i < 8; i++ {
		d.Step(i)
	}

	s := store.Snapshot()
	assert.Equal(t, 12, s.InitDrops)
	assert.Equal(t, 14, s.CurrentDrops)
	assert.Len(t, s.SessionDrops, 2)
	assert.InDelta(t, 35.75, s.CurrentWatchHours, 1e-9)
	assert.Equal(t, 2, strings.Count(out.buf.String(), "drop received"))
	assert.Equal(t, stats.StreamWatching, s.Streams[1].State)
}
