package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/healthscatter/internal/metrics"
	"github.com/san-kum/healthscatter/internal/selector"
)

// plotGrid is the character layout of the plot area. text holds point
// abbreviations over the braille canvas; owner maps a cell to its point.
type plotGrid struct {
	cols, rows int
	canvas     *Canvas
	text       [][]rune
	owner      [][]int
	xTicks     []gridTick
	yTicks     []gridTick
}

type gridTick struct {
	cell  int
	label string
}

func (a App) plotSize() (int, int) {
	cols := a.width - panelWidth - tickWidth - 2
	rows := a.height - headerRows - footerRows - 1
	return max(cols, minPlotCols), max(rows, minPlotRows)
}

// grid lays out the current frame. It is recomputed for every view and
// every mouse hit test so both agree on cell positions.
func (a App) grid() plotGrid {
	cols, rows := a.plotSize()
	g := plotGrid{
		cols:   cols,
		rows:   rows,
		canvas: NewCanvas(cols, rows),
		text:   make([][]rune, rows),
		owner:  make([][]int, rows),
	}
	for r := range g.owner {
		g.text[r] = make([]rune, cols)
		g.owner[r] = make([]int, cols)
		for c := range g.owner[r] {
			g.owner[r][c] = -1
		}
	}

	dw, dh := g.canvas.DotSize()
	g.canvas.DrawLine(0, 0, 0, dh-1)
	g.canvas.DrawLine(0, dh-1, dw-1, dh-1)

	iw, ih := a.frame.Layout.Inner()
	dotX := func(px float64) int { return clampInt(int(math.Round(px/iw*float64(dw-1))), 0, dw-1) }
	dotY := func(px float64) int { return clampInt(int(math.Round(px/ih*float64(dh-1))), 0, dh-1) }

	for i, p := range a.frame.Points {
		x, y := dotX(p.CX), dotY(p.CY)
		g.canvas.DrawCircle(x, y, 1)
		g.place(i, p.Abbr, x/2, y/4)
	}
	for _, t := range a.frame.XTicks {
		g.xTicks = append(g.xTicks, gridTick{cell: dotX(t.Pos) / 2, label: t.Label})
	}
	for _, t := range a.frame.YTicks {
		g.yTicks = append(g.yTicks, gridTick{cell: dotY(t.Pos) / 4, label: t.Label})
	}
	return g
}

// place centres an abbreviation on a cell. Abbreviations that would
// overlap an earlier one are dropped; the cell still belongs to the point.
func (g *plotGrid) place(idx int, abbr string, col, row int) {
	start := col - len(abbr)/2
	if start < 1 {
		start = 1
	}
	if start+len(abbr) > g.cols {
		start = g.cols - len(abbr)
	}
	if row < 0 || row >= g.rows || start < 0 {
		return
	}
	free := true
	for c := start; c < start+len(abbr); c++ {
		if g.owner[row][c] >= 0 {
			free = false
			break
		}
	}
	if !free {
		if g.owner[row][col] < 0 {
			g.owner[row][col] = idx
		}
		return
	}
	for j, r := range abbr {
		g.text[row][start+j] = r
		g.owner[row][start+j] = idx
	}
}

// pointAt maps a screen cell to a point index, or -1.
func (a App) pointAt(x, y int) int {
	if a.ctrl == nil {
		return -1
	}
	g := a.grid()
	col, row := x-tickWidth, y-headerRows
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return -1
	}
	return g.owner[row][col]
}

func (a App) View() string {
	s := a.styles
	switch {
	case a.loading:
		return s.muted.Render("loading dataset…")
	case a.err != nil:
		return lipgloss.JoinVertical(lipgloss.Left,
			s.err.Render("dataset unavailable"),
			s.muted.Render(a.err.Error()),
			"",
			s.hints("q", "quit"))
	}

	side := a.panel()
	if a.showHelp {
		side = a.help()
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, a.plot(), "  ", side)
	return a.zones.Scan(body)
}

func (a App) plot() string {
	s := a.styles
	g := a.grid()
	var b strings.Builder
	title := fmt.Sprintf("%s vs %s",
		a.frame.ActiveLabel(selector.Y).Text, a.frame.ActiveLabel(selector.X).Text)
	b.WriteString(s.title.Render(title))
	if a.Animating() {
		b.WriteString(s.muted.Render("  ~"))
	}
	b.WriteString("\n\n")

	yLabels := make(map[int]string, len(g.yTicks))
	for _, t := range g.yTicks {
		yLabels[t.cell] = t.label
	}
	focus := a.focus
	for r := 0; r < g.rows; r++ {
		b.WriteString(s.tick.Render(fmt.Sprintf("%*s", tickWidth-1, yLabels[r])))
		b.WriteByte(' ')
		for c := 0; c < g.cols; c++ {
			ch := g.text[r][c]
			switch {
			case ch != 0 && g.owner[r][c] == focus:
				b.WriteString(s.focus.Render(string(ch)))
			case ch != 0:
				b.WriteString(s.point.Render(string(ch)))
			case c == 0 || r == g.rows-1:
				b.WriteString(s.axis.Render(string(g.canvas.Cell(c, r))))
			default:
				b.WriteString(s.point.Render(string(g.canvas.Cell(c, r))))
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(" ", tickWidth))
	b.WriteString(s.tick.Render(tickLine(g.xTicks, g.cols)))
	b.WriteString("\n\n")

	b.WriteString(strings.Repeat(" ", tickWidth))
	var xl []string
	for _, l := range a.frame.Labels {
		if l.Axis != selector.X {
			continue
		}
		xl = append(xl, a.zones.Mark(a.labelZone(l.Field), s.label(l.Text, l.Active)))
	}
	b.WriteString(strings.Join(xl, "   "))
	return b.String()
}

// tickLine writes tick labels at their columns, skipping any that would
// collide with the previous one.
func tickLine(ticks []gridTick, cols int) string {
	line := []rune(strings.Repeat(" ", cols+tickWidth))
	end := -1
	for _, t := range ticks {
		start := t.cell - len(t.label)/2
		if start <= end || start < 0 || start+len(t.label) > len(line) {
			continue
		}
		copy(line[start:], []rune(t.label))
		end = start + len(t.label)
	}
	return strings.TrimRight(string(line), " ")
}

func (a App) panel() string {
	s := a.styles
	inner := panelWidth - 6

	var b strings.Builder
	b.WriteString(s.heading.Render("Y AXIS"))
	b.WriteByte('\n')
	for _, l := range a.frame.Labels {
		if l.Axis != selector.Y {
			continue
		}
		b.WriteString(a.zones.Mark(a.labelZone(l.Field), s.label(l.Text, l.Active)))
		b.WriteByte('\n')
	}

	b.WriteString(s.separator(inner))
	b.WriteByte('\n')
	if p, ok := a.Focused(); ok {
		b.WriteString(s.heading.Render(p.Tooltip.State))
		b.WriteByte('\n')
		b.WriteString(s.value.Render(p.Tooltip.X))
		b.WriteByte('\n')
		b.WriteString(s.value.Render(p.Tooltip.Y))
	} else {
		b.WriteString(s.muted.Render("hover a state or press tab"))
		b.WriteString("\n\n")
	}
	b.WriteByte('\n')

	m := metrics.Evaluate(a.ctrl.Dataset(), a.frame.Selection, metrics.Defaults()...)
	b.WriteString(s.muted.Render(fmt.Sprintf("r %.2f  slope %.3g", m["pearson_r"], m["slope"])))
	b.WriteByte('\n')

	b.WriteString(s.separator(inner))
	b.WriteByte('\n')
	b.WriteString(a.profile(inner))
	b.WriteByte('\n')

	b.WriteString(s.separator(inner))
	b.WriteByte('\n')
	b.WriteString(s.hints("1-3", "x", "4-6", "y"))
	b.WriteByte('\n')
	b.WriteString(s.hints("tab", "state", "t", a.theme.Name, "?", "help"))
	return s.panel.Render(b.String())
}

// profile plots the sorted values of the active X field.
func (a App) profile(width int) string {
	f := a.frame.Selection.X()
	vals := a.ctrl.Dataset().Sorted(f)
	if len(vals) == 0 {
		return ""
	}
	return asciigraph.Plot(vals,
		asciigraph.Height(5),
		asciigraph.Width(width-8),
		asciigraph.Precision(0),
		asciigraph.Caption(f.String()+" (sorted)"))
}

func (a App) help() string {
	s := a.styles
	rows := [][2]string{
		{"1 2 3", "x: poverty, age, income"},
		{"4 5 6", "y: healthcare, smokes, obesity"},
		{"click", "axis label or state"},
		{"tab", "next state"},
		{"shift+tab", "previous state"},
		{"esc", "clear tooltip"},
		{"t", "cycle theme"},
		{"?", "close help"},
		{"q", "quit"},
	}
	var b strings.Builder
	b.WriteString(s.heading.Render("KEYS"))
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(s.key.Render(fmt.Sprintf("%-10s", r[0])))
		b.WriteString(s.value.Render(r[1]))
		b.WriteByte('\n')
	}
	return s.panel.Render(strings.TrimRight(b.String(), "\n"))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
