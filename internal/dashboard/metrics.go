package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/esports-stream/internal/stats"
	"github.com/Dallionking/esports-stream/internal/tui/styles"
)

// Placeholder is shown in place of a value that could not be derived.
const Placeholder = "-"

// spinnerFrames is the glyph set for the busy status header.
var spinnerFrames = spinner.MiniDot.Frames

// flickerColors alternate on the live panel warning text.
var flickerColors = []lipgloss.Color{styles.StatusWarn, styles.StatusError}

var sleepBalloons = []string{"z", "zZ", "zZz", "zZ"}

// FormatDrops renders a drop total as "base+delta", or just "base" when
// nothing was gained. A negative base shows as "0".
func FormatDrops(base, cur int) string {
	if base < 0 {
		return "0"
	}
	if d := cur - base; d > 0 {
		return fmt.Sprintf("%d+%d", base, d)
	}
	return strconv.Itoa(base)
}

// FormatWatchHours renders watch hours as "base+delta" with the delta
// rounded to two decimals, or "base" when the rounded delta is not
// positive. Floats always keep one decimal ("1.0"). A negative base shows as
// "0"; NaN and infinities show as Placeholder.
func FormatWatchHours(base, cur float64) string {
	if !finite(base) || !finite(cur) {
		return Placeholder
	}
	if base < 0 {
		return "0"
	}
	if base == 0 {
		base = 0 // drop the sign of -0
	}
	d := math.Round((cur-base)*100) / 100
	if d > 0 {
		return formatFloat(base) + "+" + formatFloat(d)
	}
	return formatFloat(base)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// formatFloat prints the shortest round-trip form, keeping a trailing ".0"
// on whole numbers.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// SpinnerFrame returns the spinner glyph for frame.
func SpinnerFrame(frame int) string {
	return spinnerFrames[mod(frame, len(spinnerFrames))]
}

// FlickerColor returns the warning color for frame.
func FlickerColor(frame int) lipgloss.Color {
	return flickerColors[mod(frame, len(flickerColors))]
}

// SleepBalloons returns the snoring indicator shown in the banner title
// while the agent sleeps, or "" when it is awake.
func SleepBalloons(frame int, sleeping bool) string {
	if !sleeping {
		return ""
	}
	return sleepBalloons[mod(frame, len(sleepBalloons))]
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// WarningInfo summarizes stream problems for the live panel title. It
// returns the summary ("" when all is well) and the number of tracked
// streams that are not offline.
func WarningInfo(streams []stats.Stream, loc Localizer) (string, int) {
	var live, noDrops, stuck int
	for _, s := range streams {
		switch s.State {
		case stats.StreamOffline:
			continue
		case stats.StreamNoDrops:
			noDrops++
		case stats.StreamStuck:
			stuck++
		}
		live++
	}

	var parts []string
	if noDrops > 0 {
		parts = append(parts, fmt.Sprintf("%s×%d", loc.Log("warning.noDrops"), noDrops))
	}
	if stuck > 0 {
		parts = append(parts, fmt.Sprintf("%s×%d", loc.Log("warning.stuck"), stuck))
	}
	return strings.Join(parts, " "), live
}

// IsBusyPhase reports whether status contains one of the transient phase
// labels, in which case the status header shows a spinner.
func IsBusyPhase(status string, phases []string) bool {
	for _, p := range phases {
		if p != "" && strings.Contains(status, p) {
			return true
		}
	}
	return false
}

var checkTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"15:04:05",
}

// Countdown returns the time left until next as "mm:ss" (or "h:mm:ss").
// A clock-only value is taken to be today. Values that do not parse are
// returned unchanged; past times count down to "00:00".
func Countdown(now time.Time, next string) string {
	next = strings.TrimSpace(next)
	if next == "" {
		return Placeholder
	}

	var at time.Time
	var err error
	for _, layout := range checkTimeLayouts {
		at, err = time.ParseInLocation(layout, next, now.Location())
		if err != nil {
			continue
		}
		if layout == "15:04:05" {
			y, m, d := now.Date()
			at = time.Date(y, m, d, at.Hour(), at.Minute(), at.Second(), 0, now.Location())
		}
		break
	}
	if err != nil {
		return next
	}

	left := at.Sub(now)
	if left < 0 {
		left = 0
	}
	secs := int(left / time.Second)
	h, m, s := secs/3600, secs%3600/60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// SplitColumns divides lines across two panels, the left one taking the
// extra line when the count is odd.
func SplitColumns(lines []string) (left, right []string) {
	half := (len(lines) + 1) / 2
	return lines[:half], lines[half:]
}

// FitLines truncates each line to width terminal cells.
func FitLines(lines []string, width int) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styles.TruncateWidth(l, width)
	}
	return out
}

// guard runs one derivation, rendering Placeholder if it panics.
func guard(fn func() string) (s string) {
	defer func() {
		if recover() != nil {
			s = Placeholder
		}
	}()
	return fn()
}
