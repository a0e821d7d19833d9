package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ---------------------------------------------------------------------------
// Color profile
// ---------------------------------------------------------------------------

// SetColorMode picks the lipgloss color profile. noColor wins over force;
// force keeps colors on when stdout is not a TTY (redirected logs, docker).
func SetColorMode(force, noColor bool) {
	switch {
	case noColor:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// ---------------------------------------------------------------------------
// Panel styles
// ---------------------------------------------------------------------------

// PanelFrame colors the rounded border drawn around every dashboard panel.
var PanelFrame = lipgloss.NewStyle().
	Foreground(BorderNormal)

// PanelBody is the bold gold text used inside panels.
var PanelBody = lipgloss.NewStyle().
	Foreground(AccentPrimary).
	Bold(true)

// PanelTitle is bold gold text set into a panel's top border.
var PanelTitle = lipgloss.NewStyle().
	Foreground(AccentPrimary).
	Bold(true)

// AppName is the bold blue application name in the banner title.
var AppName = lipgloss.NewStyle().
	Foreground(AccentTertiary).
	Bold(true)

// Notice is the full-width red bar used for fatal on-screen notices.
var Notice = lipgloss.NewStyle().
	Background(BgDeep).
	Foreground(StatusError).
	Bold(true).
	PaddingLeft(1).
	PaddingRight(1)

// ---------------------------------------------------------------------------
// Badge helpers
// ---------------------------------------------------------------------------

// Badge returns an inline colored badge such as "● OK" in the given color.
func Badge(text string, color lipgloss.Color) string {
	dot := lipgloss.NewStyle().Foreground(color).Render("●")
	label := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(text)
	return dot + " " + label
}

// StatusBadge returns a pre-styled badge for common status values.
// Recognized statuses: "ok", "warn", "error", "info". Anything else
// falls back to the "info" style.
func StatusBadge(status string) string {
	switch strings.ToLower(status) {
	case "ok":
		return Badge("OK", StatusOK)
	case "warn":
		return Badge("WARN", StatusWarn)
	case "error":
		return Badge("ERROR", StatusError)
	default:
		return Badge(strings.ToUpper(status), StatusInfo)
	}
}

// ---------------------------------------------------------------------------
// Typography styles
// ---------------------------------------------------------------------------

// Title is bold AccentPrimary text for section headings.
var Title = lipgloss.NewStyle().
	Foreground(AccentPrimary).
	Bold(true)

// Label is TextMuted text for field labels.
var Label = lipgloss.NewStyle().
	Foreground(TextMuted)

// Value is bold TextPrimary text for data values.
var Value = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)

// ---------------------------------------------------------------------------
// Table helpers
// ---------------------------------------------------------------------------

// TableHeader is bold gold, centered, for the account table header row.
var TableHeader = lipgloss.NewStyle().
	Foreground(AccentPrimary).
	Bold(true).
	Align(lipgloss.Center)

// TableCell is centered TextPrimary for account table values.
var TableCell = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Align(lipgloss.Center)

// ---------------------------------------------------------------------------
// Divider
// ---------------------------------------------------------------------------

// Divider returns a horizontal rule of the given width using the ─ character
// rendered in BorderNormal color.
func Divider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(BorderNormal).Render(strings.Repeat("─", width))
}
