// Package dashboard is the live terminal dashboard: metric derivation, the
// region layout, and the render loop that repaints it on a fixed cadence.
package dashboard

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dallionking/esports-stream/internal/stats"
)

// State is the render loop's lifecycle state.
type State int32

const (
	StateStarting State = iota
	StateRendering
	StateWaiting
	StateFailed
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRendering:
		return "rendering"
	case StateWaiting:
		return "waiting"
	case StateFailed:
		return "failed"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Terminal is what the renderer paints on. *console.Console implements it.
type Terminal interface {
	Clear() error
	Paint(frame string) error
	Size() (width, height int)
	Println(a ...any)
	RefreshLock() *sync.Mutex
}

// Options tune the render loop.
type Options struct {
	// Interval is the sleep between cycles. Zero means one second.
	Interval time.Duration
	// BriefLines and LiveLines cap the rolling log panels.
	BriefLines int
	LiveLines  int
	Logger     logrus.FieldLogger
}

// Renderer runs the dashboard loop. Use Run once.
type Renderer struct {
	store    *stats.Store
	term     Terminal
	lock     *sync.Mutex
	composer *Composer
	loc      Localizer
	layout   *Layout
	frame    FrameCounter
	opts     Options
	log      logrus.FieldLogger

	state  atomic.Int32
	cycles atomic.Int64
	done   chan struct{}
	err    error
}

// NewRenderer wires a render loop over store, painting on term.
func NewRenderer(store *stats.Store, term Terminal, settings Settings, loc Localizer, opts Options) *Renderer {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Renderer{
		store:    store,
		term:     term,
		lock:     term.RefreshLock(),
		composer: NewComposer(settings, loc),
		loc:      loc,
		opts:     opts,
		log:      logger.WithField("module", "dashboard"),
		done:     make(chan struct{}),
	}
}

// State returns the current loop state.
func (r *Renderer) State() State {
	return State(r.state.Load())
}

func (r *Renderer) setState(s State) {
	r.state.Store(int32(s))
}

// Cycles returns the number of completed repaints.
func (r *Renderer) Cycles() int64 {
	return r.cycles.Load()
}

// Done is closed when the loop ends, by failure or cancellation.
func (r *Renderer) Done() <-chan struct{} {
	return r.done
}

// Err returns the *RenderFault that ended the loop, or nil. It is only
// meaningful after Done is closed.
func (r *Renderer) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

// Run drives the loop until ctx is cancelled (returning nil) or a fault
// ends it (returning the *RenderFault). Faults are logged and announced on
// screen; no panic escapes Run. A failed loop is not restarted.
func (r *Renderer) Run(ctx context.Context) (err error) {
	stage := StageStart
	defer func() {
		if v := recover(); v != nil {
			r.setState(StateFailed)
			err = r.fail(stage, v, debug.Stack())
		}
		r.err = err
		close(r.done)
	}()

	r.setState(StateStarting)
	r.layout = NewLayout()
	width, _ := r.term.Size()
	if err := r.composer.Compose(r.layout, stats.Stats{}, 0, width); err != nil {
		return r.failed(stage, err)
	}
	r.log.WithField("interval", r.opts.Interval).Info("dashboard started")

	timer := time.NewTimer(r.opts.Interval)
	defer timer.Stop()

	for {
		stage = StageCompose
		r.setState(StateRendering)
		r.store.TrimBriefLog(r.opts.BriefLines, r.opts.LiveLines)
		snap := r.store.Snapshot()
		width, _ = r.term.Size()
		if err := r.composer.Compose(r.layout, snap, r.frame.Value(), width); err != nil {
			return r.failed(stage, err)
		}
		r.frame.Next()

		r.setState(StateWaiting)
		timer.Reset(r.opts.Interval)
		select {
		case <-ctx.Done():
			r.setState(StateStopped)
			r.log.Info("dashboard stopped")
			return nil
		case <-timer.C:
		}

		stage = StagePaint
		if err := r.repaint(); err != nil {
			return r.failed(stage, err)
		}
		r.cycles.Add(1)
	}
}

func (r *Renderer) failed(stage string, err error) error {
	r.setState(StateFailed)
	return r.fail(stage, err, debug.Stack())
}

// repaint clears the screen and paints the layout while holding
// RefreshLock. The lock is released on every path out, panics included.
func (r *Renderer) repaint() error {
	width, height := r.term.Size()
	frame := r.layout.Render(width, height)

	r.lock.Lock()
	defer r.lock.Unlock()

	if err := r.term.Clear(); err != nil {
		return fmt.Errorf("clearing screen: %w", err)
	}
	if err := r.term.Paint(frame); err != nil {
		return fmt.Errorf("painting frame: %w", err)
	}
	return nil
}
