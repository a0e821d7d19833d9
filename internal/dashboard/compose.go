package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/esports-stream/internal/stats"
	"github.com/Dallionking/esports-stream/internal/tui/styles"
)

// Localizer turns text keys into display strings. Text may style the result;
// Log returns plain text.
type Localizer interface {
	Text(key string, style ...lipgloss.Style) string
	Log(key string) string
}

// Settings are the configuration values shown on the dashboard. They do not
// change during a run.
type Settings struct {
	NickName    string
	Version     string
	SafeMode    bool
	MaxStream   int
	Proxy       string
	Webhook     string
	SleepPeriod string
}

// busyPhaseKeys are the status phases that get a spinner.
var busyPhaseKeys = []string{"phase.checking", "phase.loggingIn", "phase.initializing"}

// Composer fills the layout leaves from a stats snapshot.
type Composer struct {
	settings Settings
	loc      Localizer
	phases   []string
	now      func() time.Time
}

// NewComposer returns a Composer for one run's settings and language.
func NewComposer(s Settings, loc Localizer) *Composer {
	phases := make([]string, len(busyPhaseKeys))
	for i, k := range busyPhaseKeys {
		phases[i] = loc.Log(k)
	}
	return &Composer{settings: s, loc: loc, phases: phases, now: time.Now}
}

// Compose replaces every leaf of l with content derived from snap. width is
// the screen width, used to size the live info columns.
func (c *Composer) Compose(l *Layout, snap stats.Stats, frame, width int) error {
	liveWidth := max((width-8)/2, 1)
	briefLeft, briefRight := SplitColumns(snap.BriefInfo)
	liveLeft, liveRight := SplitColumns(FitLines(snap.LiveInfo, liveWidth))

	leaves := []struct {
		name string
		r    Renderable
	}{
		{RegionTime, c.bannerPanel(snap, frame)},
		{RegionDrop, c.dropPanel(snap)},
		{RegionTable, c.accountTable(snap, frame)},
		{RegionInfo1, Panel{
			Title:    c.loc.Text("panel.briefLog", styles.PanelTitle),
			Subtitle: snap.WatchRegion,
			Lines:    briefLeft,
		}},
		{RegionInfo2, Panel{
			Subtitle: c.loc.Text("panel.seeLogFile", styles.PanelTitle),
			Lines:    briefRight,
		}},
		{RegionLive1, Panel{
			Title: guard(func() string { return c.liveTitle(snap, frame) }),
			Lines: liveLeft,
		}},
		{RegionLive2, Panel{
			Title: c.modeInfo(),
			Lines: liveRight,
		}},
	}

	for _, lf := range leaves {
		if err := l.SetContent(lf.name, lf.r); err != nil {
			return fmt.Errorf("composing %s: %w", lf.name, err)
		}
	}
	return nil
}

// Frame composes a fresh layout and renders it to a string. Used by one-shot
// output and the read-only viewer, which do not run the render loop.
func (c *Composer) Frame(snap stats.Stats, frame, width, height int) (string, error) {
	l := NewLayout()
	if err := c.Compose(l, snap, frame, width); err != nil {
		return "", err
	}
	return l.Render(width, height), nil
}

func (c *Composer) bannerPanel(snap stats.Stats, frame int) Panel {
	title := c.loc.Text("app.name", styles.AppName) + c.settings.Version
	if c.settings.SleepPeriod != "" {
		title += " " + c.loc.Log("sleep.period") + ":" + c.settings.SleepPeriod
	}
	if z := SleepBalloons(frame, snap.Sleeping); z != "" {
		title += " " + z
	}

	return Panel{
		Title:    title,
		Subtitle: guard(func() string { return c.configInfo(snap) }),
		Lines:    []string{strings.Join(snap.Banner, " ")},
	}
}

func (c *Composer) configInfo(snap stats.Stats) string {
	proxy := "OFF"
	if c.settings.Proxy != "" {
		proxy = "ON"
	}
	parts := []string{
		c.loc.Log("config.proxy") + ":" + proxy,
		fmt.Sprintf("%s:%d", c.loc.Log("config.maxStream"), c.settings.MaxStream),
	}
	if snap.DebugPort > 0 {
		parts = append(parts, fmt.Sprintf("%s:%d", c.loc.Log("config.debugPort"), snap.DebugPort))
	}
	return styles.Cyan(strings.Join(parts, " | "))
}

func (c *Composer) dropPanel(snap stats.Stats) Panel {
	lines := snap.SessionDrops
	if len(lines) == 0 {
		lines = []string{c.loc.Log("panel.noDrops")}
	}

	webhook := "OFF"
	if c.settings.Webhook != "" {
		webhook = "ON"
	}
	subtitle := c.loc.Log("webhook.label") + ":" + webhook + " | " +
		c.loc.Text("panel.todayDrops", styles.PanelTitle) + fmt.Sprintf(":%d", snap.TodayDrops)

	return Panel{
		Title:    c.loc.Text("panel.sessionDrops", styles.PanelTitle),
		Subtitle: subtitle,
		Lines:    lines,
	}
}

func (c *Composer) accountTable(snap stats.Stats, frame int) AccountTable {
	header := func(key string) string { return c.loc.Log("table." + key) }

	status := header("status")
	if IsBusyPhase(snap.Status, c.phases) {
		status += SpinnerFrame(frame)
	}

	regions := Placeholder
	if len(snap.LiveRegions) > 0 {
		regions = strings.Join(snap.LiveRegions, ", ")
	}

	nextCheck := guard(func() string {
		cd := Countdown(c.now(), snap.NextCheckTime)
		if cd == snap.NextCheckTime || cd == Placeholder {
			return cd
		}
		return snap.NextCheckTime + " (" + cd + ")"
	})

	return AccountTable{
		Headers: []string{
			header("nickname"), status, header("regions"), header("drops"),
			header("hours"), header("lastCheck"), header("nextCheck"), header("nextMatch"),
		},
		Row: []string{
			styles.Cyan(c.settings.NickName),
			orPlaceholder(snap.Status),
			regions,
			styles.Cyan(guard(func() string { return FormatDrops(snap.InitDrops, snap.CurrentDrops) })),
			styles.Cyan(guard(func() string { return FormatWatchHours(snap.InitWatchHours, snap.CurrentWatchHours) })),
			orPlaceholder(snap.LastCheckTime),
			nextCheck,
			orPlaceholder(snap.NextMatchTime),
		},
	}
}

func (c *Composer) liveTitle(snap stats.Stats, frame int) string {
	warning, live := WarningInfo(snap.Streams, c.loc)
	title := c.loc.Text("panel.liveInfo", styles.PanelTitle) +
		fmt.Sprintf("(%d/%d)", live, c.settings.MaxStream)
	if warning != "" {
		title += " " + lipgloss.NewStyle().Foreground(FlickerColor(frame)).Bold(true).Render(warning)
	}
	return title
}

func (c *Composer) modeInfo() string {
	if !c.settings.SafeMode {
		return ""
	}
	return c.loc.Text("panel.safeMode", styles.PanelTitle) + "ON"
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}
