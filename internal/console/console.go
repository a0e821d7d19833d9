// Package console owns the terminal and the RefreshLock that serializes
// every direct write to it.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// Fallback size used when the output is not a terminal.
const (
	DefaultWidth  = 120
	DefaultHeight = 40
)

// Console is the shared terminal handle. The renderer clears and paints
// through it while holding the lock; workers print through Println and
// Printf, which take the same lock.
type Console struct {
	out  io.Writer
	fd   int
	tty  bool
	lock *sync.Mutex
}

// New wraps out. When out is an *os.File attached to a terminal its size is
// read from the terminal; otherwise DefaultWidth x DefaultHeight is used.
func New(out io.Writer) *Console {
	c := &Console{out: out, fd: -1, lock: &sync.Mutex{}}
	if f, ok := out.(*os.File); ok {
		c.fd = int(f.Fd())
		c.tty = term.IsTerminal(c.fd)
	}
	return c
}

// RefreshLock returns the lock shared by every terminal writer.
func (c *Console) RefreshLock() *sync.Mutex {
	return c.lock
}

// Locked runs fn while holding RefreshLock. The lock is released when fn
// returns or panics.
func (c *Console) Locked(fn func() error) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	return fn()
}

// Println writes a line while holding RefreshLock.
func (c *Console) Println(a ...any) {
	c.lock.Lock()
	defer c.lock.Unlock()
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text while holding RefreshLock.
func (c *Console) Printf(format string, a ...any) {
	c.lock.Lock()
	defer c.lock.Unlock()
	fmt.Fprintf(c.out, format, a...)
}

// Write implements io.Writer with locking, so the console can back a logger.
func (c *Console) Write(p []byte) (int, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.out.Write(p)
}

// Clear erases the screen and homes the cursor. Callers hold RefreshLock.
func (c *Console) Clear() error {
	_, err := io.WriteString(c.out, ansi.EraseEntireScreen+ansi.CursorHomePosition)
	return err
}

// Paint writes one full frame. Callers hold RefreshLock.
func (c *Console) Paint(frame string) error {
	_, err := io.WriteString(c.out, frame)
	return err
}

// Size returns the terminal width and height.
func (c *Console) Size() (int, int) {
	if !c.tty {
		return DefaultWidth, DefaultHeight
	}
	w, h, err := term.GetSize(c.fd)
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// IsTerminal reports whether the output is attached to a terminal.
func (c *Console) IsTerminal() bool {
	return c.tty
}
