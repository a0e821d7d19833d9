package styles

import "github.com/charmbracelet/lipgloss"

// RoundedBorder uses rounded corners for dashboard panels.
var RoundedBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "╰",
	BottomRight: "╯",
}

// TableBorder is the single-line frame around the account table. The inner
// separators are what lipgloss/table draws between columns.
var TableBorder = lipgloss.Border{
	Top:          "─",
	Bottom:       "─",
	Left:         "│",
	Right:        "│",
	TopLeft:      "┌",
	TopRight:     "┐",
	BottomLeft:   "└",
	BottomRight:  "┘",
	MiddleLeft:   "├",
	MiddleRight:  "┤",
	Middle:       "┼",
	MiddleTop:    "┬",
	MiddleBottom: "┴",
}
