package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/esports-stream/internal/i18n"
	"github.com/Dallionking/esports-stream/internal/stats"
)

func newTestComposer(t *testing.T, s Settings) *Composer {
	t.Helper()
	loc, err := i18n.New("en_US")
	require.NoError(t, err)
	c := NewComposer(s, loc)
	c.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local) }
	return c
}

func testSettings() Settings {
	return Settings{NickName: "faker", Version: "v2.1", MaxStream: 3}
}

func TestComposeFillsEveryLeaf(t *testing.T) {
	c := newTestComposer(t, testSettings())
	l := NewLayout()

	require.NoError(t, c.Compose(l, stats.Stats{}, 0, 120))
	for _, name := range l.Leaves() {
		assert.NotNil(t, l.nodes[name].Content, name)
	}
}

func TestAccountTableRow(t *testing.T) {
	c := newTestComposer(t, testSettings())
	tbl := c.accountTable(stats.Stats{
		Status:            "Watching",
		InitDrops:         5,
		CurrentDrops:      8,
		InitWatchHours:    1.0,
		CurrentWatchHours: 1.256,
		LiveRegions:       []string{"LPL", "LCK"},
		LastCheckTime:     "11:58:00",
		NextCheckTime:     "12:05:00",
	}, 0)

	row := make([]string, len(tbl.Row))
	for i, cell := range tbl.Row {
		row[i] = ansi.Strip(cell)
	}
	assert.Equal(t, []string{
		"faker", "Watching", "LPL, LCK", "5+3", "1.0+0.26", "11:58:00", "12:05:00 (05:00)", Placeholder,
	}, row)
	assert.Equal(t, "Status", tbl.Headers[1])
}

func TestStatusHeaderSpinsWhileBusy(t *testing.T) {
	c := newTestComposer(t, testSettings())

	for frame := 0; frame < 3; frame++ {
		tbl := c.accountTable(stats.Stats{Status: "Logging in"}, frame)
		assert.Equal(t, "Status"+SpinnerFrame(frame), tbl.Headers[1])
	}
}

func TestLiveTitleCountsStreams(t *testing.T) {
	c := newTestComposer(t, testSettings())
	title := ansi.Strip(c.liveTitle(stats.Stats{Streams: []stats.Stream{
		{Region: "LPL", State: stats.StreamWatching},
		{Region: "LCK", State: stats.StreamStuck},
	}}, 0))
	assert.Equal(t, "Live Streams(2/3) stuck×1", title)
}

func TestSafeModeAnnotation(t *testing.T) {
	s := testSettings()
	assert.Empty(t, newTestComposer(t, s).modeInfo())

	s.SafeMode = true
	assert.Equal(t, "Safe mode: ON", ansi.Strip(newTestComposer(t, s).modeInfo()))
}

func TestBannerShowsVersionAndBalloons(t *testing.T) {
	s := testSettings()
	s.Proxy = "socks5://127.0.0.1:1080"
	s.SleepPeriod = "2-8"
	c := newTestComposer(t, s)

	p := c.bannerPanel(stats.Stats{Banner: []string{"LPL", "final"}, Sleeping: true, DebugPort: 9222}, 0)
	assert.Equal(t, "Esports Helperv2.1 Sleep:2-8 z", ansi.Strip(p.Title))
	assert.Equal(t, "Proxy:ON | Max streams:3 | Debug port:9222", ansi.Strip(p.Subtitle))
	assert.Equal(t, []string{"LPL final"}, p.Lines)
}

func TestDropPanelPlaceholderAndList(t *testing.T) {
	c := newTestComposer(t, testSettings())

	empty := c.dropPanel(stats.Stats{})
	assert.Equal(t, []string{"No drops yet"}, empty.Lines)
	assert.Equal(t, "Webhook:OFF | Today:0", ansi.Strip(empty.Subtitle))

	won := c.dropPanel(stats.Stats{SessionDrops: []string{"LPL capsule"}, TodayDrops: 4})
	assert.Equal(t, []string{"LPL capsule"}, won.Lines)
	assert.Contains(t, ansi.Strip(won.Subtitle), "Today:4")
}

func TestFrameRendersFullScreen(t *testing.T) {
	c := newTestComposer(t, testSettings())

	out, err := c.Frame(stats.Stats{InitDrops: 5, CurrentDrops: 8}, 0, 140, 40)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 40)
	assert.Contains(t, ansi.Strip(out), "5+3")
	assert.Contains(t, ansi.Strip(out), "Brief Log")
}
