// Package render is the presentation layer for traversals: a textual trace
// of the visit sequence and styled maps of a grid.
//
// Styling goes through a lipgloss.Renderer bound to the output writer, so
// colors appear on terminals and are dropped for files, pipes and buffers.
package render

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridbfs/bfs"
	"github.com/katalvlaran/gridbfs/gridgraph"
)

// Map symbols.
const (
	SymbolBlocked  = '#'
	SymbolOpen     = '.'
	SymbolVisited  = 'o'
	SymbolStart    = 'S'
	SymbolOverflow = '*'
)

// Printer writes traces and maps to one writer.
type Printer struct {
	out     io.Writer
	blocked lipgloss.Style
	open    lipgloss.Style
	visited lipgloss.Style
	start   lipgloss.Style
	palette []lipgloss.Style
}

// NewPrinter returns a Printer whose color profile is detected from w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	p := &Printer{
		out:     w,
		blocked: r.NewStyle().Foreground(lipgloss.Color("240")),
		open:    r.NewStyle().Foreground(lipgloss.Color("250")),
		visited: r.NewStyle().Foreground(lipgloss.Color("42")),
		start:   r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	}
	for _, c := range []string{"39", "214", "42", "170", "203", "226"} {
		p.palette = append(p.palette, r.NewStyle().Foreground(lipgloss.Color(c)))
	}
	return p
}

// Trace writes the visit sequence as
//
//	BFS Traversal starting from (r, c):
//	(r, c) -> (r, c) -> ... End of BFS
//
// Cells are written as seq produces them, so a lazy sequence is printed
// incrementally.
func (p *Printer) Trace(start gridgraph.Coordinate, seq iter.Seq[gridgraph.Coordinate]) error {
	if _, err := fmt.Fprintf(p.out, "BFS Traversal starting from %v:\n", start); err != nil {
		return err
	}
	for c := range seq {
		if _, err := fmt.Fprintf(p.out, "%v -> ", c); err != nil {
			return err
		}
	}
	_, err := io.WriteString(p.out, "End of BFS\n")
	return err
}

// TraceResult is Trace over a finished result.
func (p *Printer) TraceResult(res *bfs.Result) error {
	return p.Trace(res.Start, func(yield func(gridgraph.Coordinate) bool) {
		for _, c := range res.Order {
			if !yield(c) {
				return
			}
		}
	})
}

// Map draws g with the cells of res marked: S start, o visited,
// . passable but unreached, # blocked.
func (p *Printer) Map(g *gridgraph.Grid, res *bfs.Result) error {
	visited := make([]bool, g.Size())
	for _, c := range res.Order {
		visited[g.Index(c)] = true
	}
	_, err := io.WriteString(p.out, p.draw(g, func(c gridgraph.Coordinate, idx int) string {
		switch {
		case c == res.Start:
			return p.start.Render(string(SymbolStart))
		case visited[idx]:
			return p.visited.Render(string(SymbolVisited))
		default:
			return p.open.Render(string(SymbolOpen))
		}
	}))
	return err
}

// Components draws g with each passable cell labelled by its region:
// a..z for the first 26 regions, * beyond that.
func (p *Printer) Components(g *gridgraph.Grid, comps [][]gridgraph.Coordinate) error {
	label := make([]int, g.Size())
	for i := range label {
		label[i] = -1
	}
	for k, comp := range comps {
		for _, c := range comp {
			label[g.Index(c)] = k
		}
	}
	_, err := io.WriteString(p.out, p.draw(g, func(_ gridgraph.Coordinate, idx int) string {
		k := label[idx]
		if k < 0 {
			return p.open.Render(string(SymbolOpen))
		}
		return p.palette[k%len(p.palette)].Render(string(RegionLabel(k)))
	}))
	return err
}

// RegionLabel returns the map symbol for region k.
func RegionLabel(k int) rune {
	if k >= 0 && k < 26 {
		return rune('a' + k)
	}
	return SymbolOverflow
}

// draw renders one line per row; cell is called for passable cells only.
func (p *Printer) draw(g *gridgraph.Grid, cell func(c gridgraph.Coordinate, idx int) string) string {
	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for col := 0; col < g.Cols(); col++ {
			c := gridgraph.At(r, col)
			if ok, _ := g.IsPassable(c); !ok {
				sb.WriteString(p.blocked.Render(string(SymbolBlocked)))
				continue
			}
			sb.WriteString(cell(c, g.Index(c)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
