package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ---------------------------------------------------------------------------
// Convenience color helpers
// ---------------------------------------------------------------------------

// Cyan renders s in AccentSecondary.
func Cyan(s string) string {
	return lipgloss.NewStyle().Foreground(AccentSecondary).Render(s)
}

// Gold renders s in AccentPrimary.
func Gold(s string) string {
	return lipgloss.NewStyle().Foreground(AccentPrimary).Render(s)
}

// Green renders s in StatusOK.
func Green(s string) string {
	return lipgloss.NewStyle().Foreground(StatusOK).Render(s)
}

// Red renders s in bold StatusError.
func Red(s string) string {
	return lipgloss.NewStyle().Foreground(StatusError).Bold(true).Render(s)
}

// Dim renders s in TextMuted.
func Dim(s string) string {
	return lipgloss.NewStyle().Foreground(TextMuted).Render(s)
}

// Bold renders s in bold TextPrimary.
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(TextPrimary).Render(s)
}

// ---------------------------------------------------------------------------
// Text utilities
// ---------------------------------------------------------------------------

// TruncateWidth shortens plain text s to at most max terminal cells,
// appending "…" when truncation occurs. Wide (CJK) runes count as two cells.
func TruncateWidth(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, "…")
}
