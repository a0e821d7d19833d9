package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Region names.
const (
	RegionRoot   = "root"
	RegionUpper  = "upper"
	RegionLower  = "lower"
	RegionBanner = "banner"
	RegionTime   = "time"
	RegionDrop   = "drop"
	RegionTable  = "table"
	RegionInfo   = "info"
	RegionInfo1  = "info1"
	RegionInfo2  = "info2"
	RegionLive   = "live"
	RegionLive1  = "live1"
	RegionLive2  = "live2"
)

var (
	ErrUnknownRegion = errors.New("unknown layout region")
	ErrNotLeaf       = errors.New("layout region is not a leaf")
)

// Direction is how a node divides its space among children.
type Direction int

const (
	// Column stacks children top to bottom.
	Column Direction = iota
	// Row places children left to right.
	Row
)

func (d Direction) String() string {
	if d == Row {
		return "row"
	}
	return "col"
}

// Renderable draws itself into exactly width x height cells.
type Renderable interface {
	Render(width, height int) string
}

// Node is one named region of the screen.
type Node struct {
	Name      string
	Ratio     int
	Direction Direction
	Children  []*Node
	Content   Renderable
}

func (n *Node) leaf() bool {
	return len(n.Children) == 0
}

// Layout is the fixed region tree. Its shape and ratios never change after
// NewLayout; only leaf content is replaced.
type Layout struct {
	root  *Node
	nodes map[string]*Node
}

func split(name string, ratio int, dir Direction, children ...*Node) *Node {
	return &Node{Name: name, Ratio: ratio, Direction: dir, Children: children}
}

func leaf(name string, ratio int) *Node {
	return &Node{Name: name, Ratio: ratio}
}

// NewLayout builds the dashboard tree:
//
//	root   = upper(1) / lower(2)
//	upper  = banner(1) / table(2)
//	banner = time(1) | drop(1)
//	lower  = info(3) / live(2)
//	info   = info1(1) | info2(1)
//	live   = live1(1) | live2(1)
func NewLayout() *Layout {
	root := split(RegionRoot, 1, Column,
		split(RegionUpper, 1, Column,
			split(RegionBanner, 1, Row, leaf(RegionTime, 1), leaf(RegionDrop, 1)),
			leaf(RegionTable, 2),
		),
		split(RegionLower, 2, Column,
			split(RegionInfo, 3, Row, leaf(RegionInfo1, 1), leaf(RegionInfo2, 1)),
			split(RegionLive, 2, Row, leaf(RegionLive1, 1), leaf(RegionLive2, 1)),
		),
	)

	l := &Layout{root: root, nodes: make(map[string]*Node)}
	l.index(root)
	return l
}

func (l *Layout) index(n *Node) {
	l.nodes[n.Name] = n
	for _, c := range n.Children {
		l.index(c)
	}
}

// SetContent replaces the renderable of leaf region name.
func (l *Layout) SetContent(name string, r Renderable) error {
	n, ok := l.nodes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRegion, name)
	}
	if !n.leaf() {
		return fmt.Errorf("%w: %q", ErrNotLeaf, name)
	}
	n.Content = r
	return nil
}

// Leaves returns the leaf region names in render order.
func (l *Layout) Leaves() []string {
	var out []string
	var walk func(*Node)
	walk = func(n *Node) {
		if n.leaf() {
			out = append(out, n.Name)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(l.root)
	return out
}

// Shape describes the topology and ratios, e.g. "root:1/col(upper:1,...)".
// It excludes content, so two cycles of one layout always compare equal.
func (l *Layout) Shape() string {
	var b strings.Builder
	var walk func(*Node)
	walk = func(n *Node) {
		fmt.Fprintf(&b, "%s:%d", n.Name, n.Ratio)
		if n.leaf() {
			return
		}
		fmt.Fprintf(&b, "/%s(", n.Direction)
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			walk(c)
		}
		b.WriteByte(')')
	}
	walk(l.root)
	return b.String()
}

// Render draws the whole tree into width x height cells.
func (l *Layout) Render(width, height int) string {
	return renderNode(l.root, width, height)
}

func renderNode(n *Node, width, height int) string {
	if n.leaf() {
		if n.Content == nil {
			return place("", width, height)
		}
		return place(n.Content.Render(width, height), width, height)
	}

	ratios := make([]int, len(n.Children))
	for i, c := range n.Children {
		ratios[i] = c.Ratio
	}

	if n.Direction == Row {
		widths := distribute(width, ratios)
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = renderNode(c, widths[i], height)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	heights := distribute(height, ratios)
	parts := make([]string, 0, len(n.Children))
	for i, c := range n.Children {
		if heights[i] == 0 {
			continue
		}
		parts = append(parts, renderNode(c, width, heights[i]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// distribute splits total cells among ratios. Each share is floored and the
// remainder goes one cell at a time to the first children. Ratios below 1
// count as 1.
func distribute(total int, ratios []int) []int {
	out := make([]int, len(ratios))
	if total <= 0 || len(ratios) == 0 {
		return out
	}

	sum := 0
	for _, r := range ratios {
		sum += max(r, 1)
	}

	used := 0
	for i, r := range ratios {
		out[i] = total * max(r, 1) / sum
		used += out[i]
	}
	for i := 0; used < total; i = (i + 1) % len(out) {
		out[i]++
		used++
	}
	return out
}

// place fits s into exactly width x height cells, truncating long lines
// and padding short ones.
func place(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	for i, line := range lines {
		line = ansi.Truncate(line, width, "")
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
