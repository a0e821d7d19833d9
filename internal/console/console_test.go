package console

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the concurrent reads done by tests.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSizeFallsBackWithoutTerminal(t *testing.T) {
	c := New(&bytes.Buffer{})
	w, h := c.Size()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
	assert.False(t, c.IsTerminal())
}

func TestClearAndPaint(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	require.NoError(t, c.Locked(func() error {
		if err := c.Clear(); err != nil {
			return err
		}
		return c.Paint("frame")
	}))

	assert.Equal(t, ansi.EraseEntireScreen+ansi.CursorHomePosition+"frame", buf.String())
}

func TestLockedReleasesOnPanic(t *testing.T) {
	c := New(&bytes.Buffer{})

	func() {
		defer func() { _ = recover() }()
		_ = c.Locked(func() error { panic("boom") })
	}()

	assert.True(t, c.RefreshLock().TryLock(), "lock left held after panic")
	c.RefreshLock().Unlock()
}

func TestLockedPassesError(t *testing.T) {
	c := New(&bytes.Buffer{})
	err := c.Locked(func() error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, c.RefreshLock().TryLock())
	c.RefreshLock().Unlock()
}

// Two contenders: the second proceeds only after the first releases.
func TestRefreshLockExcludesWorker(t *testing.T) {
	out := &syncBuffer{}
	c := New(out)

	holding := make(chan struct{})
	release := make(chan struct{})
	painted := make(chan struct{})

	go func() {
		_ = c.Locked(func() error {
			close(holding)
			<-release
			return c.Paint("[frame]")
		})
		close(painted)
	}()

	<-holding
	printed := make(chan struct{})
	go func() {
		c.Println("[worker]")
		close(printed)
	}()

	select {
	case <-printed:
		t.Fatal("worker wrote while the renderer held the lock")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-painted
	select {
	case <-printed:
	case <-time.After(time.Second):
		t.Fatal("worker never acquired the lock")
	}

	assert.Equal(t, "[frame][worker]\n", out.String())
}
