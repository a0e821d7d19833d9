// Package viewer is the read-only Bubble Tea view behind `status`. It shows
// the dashboard layout for a stats feed published by a running agent.
package viewer

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dallionking/esports-stream/internal/dashboard"
	"github.com/Dallionking/esports-stream/internal/stats"
	"github.com/Dallionking/esports-stream/internal/tui/styles"
)

// TickMsg advances the animation frame.
type TickMsg time.Time

// FeedMsg carries a freshly loaded snapshot.
type FeedMsg stats.Stats

// reloadMsg reports the result of a manual reload.
type reloadMsg struct{ err error }

// Model renders the dashboard from a store kept current by a feed watcher.
type Model struct {
	composer *dashboard.Composer
	store    *stats.Store
	updates  <-chan stats.Stats
	reload   func() error
	interval time.Duration

	frame    dashboard.FrameCounter
	width    int
	height   int
	ready    bool
	quitting bool
	err      error
}

// NewModel returns a viewer model. updates and reload may be nil.
func NewModel(composer *dashboard.Composer, store *stats.Store, updates <-chan stats.Stats, reload func() error, interval time.Duration) Model {
	if interval <= 0 {
		interval = time.Second
	}
	return Model{
		composer: composer,
		store:    store,
		updates:  updates,
		reload:   reload,
		interval: interval,
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func waitForFeed(updates <-chan stats.Stats) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return nil
		}
		return FeedMsg(s)
	}
}

// Init starts the tick and the feed listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), waitForFeed(m.updates))
}

// Update handles resize, keys, ticks and feed updates.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			if m.reload != nil {
				reload := m.reload
				return m, func() tea.Msg { return reloadMsg{err: reload()} }
			}
		}

	case reloadMsg:
		m.err = msg.err

	case TickMsg:
		m.frame.Next()
		return m, m.tickCmd()

	case FeedMsg:
		m.err = nil
		return m, waitForFeed(m.updates)
	}

	return m, nil
}

// View draws the dashboard above a one-line footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  Loading dashboard..."
	}

	body, err := m.composer.Frame(m.store.Snapshot(), m.frame.Value(), m.width, max(m.height-1, 1))
	if err != nil {
		return styles.Red(err.Error())
	}
	return body + "\n" + m.footer()
}

func (m Model) footer() string {
	help := styles.Dim("q quit · r reload")
	if m.err != nil {
		return help + "  " + styles.Red(fmt.Sprintf("reload failed: %v", m.err))
	}
	return help
}

// Run shows the viewer full-screen until the user quits or ctx ends.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
