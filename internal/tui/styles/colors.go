package styles

import "github.com/charmbracelet/lipgloss"

// Arena Night -- Dark Palette
// Stadium-night backgrounds with gold and cyan broadcast accents.

var (
	// Backgrounds
	BgDeep = lipgloss.Color("#0b0d12") // Deepest -- notice bars

	// Accents
	AccentPrimary   = lipgloss.Color("#f5c542") // Gold -- panel titles, table frame
	AccentSecondary = lipgloss.Color("#38c8e8") // Cyan -- values, nickname
	AccentTertiary  = lipgloss.Color("#5b8cff") // Blue -- app name

	// Status
	StatusOK    = lipgloss.Color("#22c55e") // Green
	StatusWarn  = lipgloss.Color("#f59e0b") // Amber
	StatusError = lipgloss.Color("#ef4444") // Red
	StatusInfo  = lipgloss.Color("#38c8e8") // Cyan

	// Text
	TextPrimary   = lipgloss.Color("#e2e8f0") // High contrast
	TextSecondary = lipgloss.Color("#94a3b8") // Dimmed
	TextMuted     = lipgloss.Color("#64748b") // Very dim

	// Borders
	BorderNormal = lipgloss.Color("#b8932f") // Dark gold
)
