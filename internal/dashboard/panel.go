package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/Dallionking/esports-stream/internal/tui/styles"
)

// Panel is a rounded box with a title set into its top border (left) and a
// subtitle set into its bottom border (right).
type Panel struct {
	Title    string
	Subtitle string
	Lines    []string
}

// Render draws the panel into width x height cells.
func (p Panel) Render(width, height int) string {
	if width < 2 || height < 2 {
		return place("", width, height)
	}

	b := styles.RoundedBorder
	inner := width - 2
	side := styles.PanelFrame.Render(b.Left)
	rside := styles.PanelFrame.Render(b.Right)

	rows := make([]string, 0, height)
	rows = append(rows, borderLine(b.TopLeft, b.Top, b.TopRight, p.Title, inner, false))

	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(p.Lines) {
			line = ansi.Truncate(p.Lines[i], inner, "")
		}
		pad := inner - ansi.StringWidth(line)
		if line != "" {
			line = styles.PanelBody.Render(line)
		}
		rows = append(rows, side+line+strings.Repeat(" ", max(pad, 0))+rside)
	}

	rows = append(rows, borderLine(b.BottomLeft, b.Bottom, b.BottomRight, p.Subtitle, inner, true))
	return strings.Join(rows, "\n")
}

// borderLine draws one horizontal border of inner width with label set in,
// one fill cell away from the left corner or, when right is set, the right
// corner.
func borderLine(left, fill, right, label string, inner int, alignRight bool) string {
	if label != "" && inner >= 4 {
		label = " " + ansi.Truncate(label, inner-3, "…") + " "
	} else {
		label = ""
	}

	rest := inner - ansi.StringWidth(label)
	var lead, tail int
	switch {
	case label == "":
		lead = rest
	case alignRight:
		lead, tail = rest-1, 1
	default:
		lead, tail = 1, rest-1
	}

	frame := styles.PanelFrame
	return frame.Render(left+strings.Repeat(fill, lead)) +
		label +
		frame.Render(strings.Repeat(fill, tail)+right)
}

// AccountTable is the one-row account summary.
type AccountTable struct {
	Headers []string
	Row     []string
}

// Render draws the table stretched to width.
func (t AccountTable) Render(width, height int) string {
	tb := table.New().
		Border(styles.TableBorder).
		BorderStyle(styles.PanelFrame).
		Width(width).
		Headers(t.Headers...).
		Row(t.Row...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeader
			}
			return styles.TableCell
		})
	return place(tb.Render(), width, height)
}
