package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/loop"
	"github.com/san-kum/sortviz/internal/sorter"
)

const (
	controlsLine   = "R - Reset | SPACE - Start Sorting | A - Ascending | D - Descending"
	algorithmsLine = "I - Insertion Sort | B - Bubble Sort | Q - Quit"
	statsWidth     = 34
	headerLines    = 3
)

// Layout is measured in terminal cells.
type Layout struct {
	Width, Height int
	SidePad       int
	TopPad        int
}

func DefaultLayout() Layout {
	return Layout{Width: 100, Height: 30, SidePad: 4, TopPad: headerLines + 1}
}

type RenderConfig struct {
	Theme     Theme
	Layout    Layout
	ShowStats bool
}

// Renderer turns loop frames into terminal text. A full redraw rebuilds the
// header; partial redraws reuse the cached header and only redraw the bars.
type Renderer struct {
	cfg    RenderConfig
	st     styles
	header string
	bars   string
	stats  string
	frames int
	full   int
}

func NewRenderer(cfg RenderConfig) *Renderer {
	if cfg.Layout.Width <= 0 || cfg.Layout.Height <= 0 {
		cfg.Layout = DefaultLayout()
	}
	return &Renderer{cfg: cfg, st: newStyles(cfg.Theme)}
}

// Resize adopts new terminal dimensions. The next frame redraws everything.
func (r *Renderer) Resize(width, height int) {
	r.cfg.Layout.Width = width
	r.cfg.Layout.Height = height
	r.header = ""
}

func (r *Renderer) Layout() Layout { return r.cfg.Layout }

// Frames returns the number of frames drawn and how many were full redraws.
func (r *Renderer) Frames() (total, full int) { return r.frames, r.full }

func (r *Renderer) Draw(f loop.Frame) {
	r.frames++
	if f.FullRedraw || r.header == "" {
		r.full++
		r.header = r.renderHeader(f.Algorithm, f.Direction)
	}
	r.bars = r.renderBars(f)
	if r.showStats() {
		r.stats = r.renderStats(f)
	} else {
		r.stats = ""
	}
}

func (r *Renderer) View() string {
	if r.frames == 0 {
		return ""
	}
	body := r.bars
	if r.stats != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, r.bars, r.stats)
	}
	return r.header + "\n\n" + body
}

func (r *Renderer) showStats() bool {
	return r.cfg.ShowStats && r.cfg.Layout.Width >= statsWidth*2
}

func (r *Renderer) chartWidth() int {
	w := r.cfg.Layout.Width - r.cfg.Layout.SidePad
	if r.showStats() {
		w -= statsWidth + 1
	}
	if w < 1 {
		w = 1
	}
	return w
}

func (r *Renderer) chartHeight() int {
	h := r.cfg.Layout.Height - r.cfg.Layout.TopPad - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (r *Renderer) renderHeader(algorithm string, dir sorter.Direction) string {
	w := r.cfg.Layout.Width
	title := r.st.title.Render(fmt.Sprintf("%s - %s", algorithm, dir))
	lines := []string{
		lipgloss.PlaceHorizontal(w, lipgloss.Center, title),
		lipgloss.PlaceHorizontal(w, lipgloss.Center, r.st.text.Render(controlsLine)),
		lipgloss.PlaceHorizontal(w, lipgloss.Center, r.st.text.Render(algorithmsLine)),
	}
	return strings.Join(lines, "\n")
}

// BarWidth returns the column width of each bar for n values.
func (r *Renderer) BarWidth(n int) int {
	if n <= 0 {
		return 0
	}
	bw := r.chartWidth() / n
	if bw < 1 {
		bw = 1
	}
	return bw
}

// BarHeight maps v in [min, max] to [1, rows]. When every value is equal
// all bars are drawn at full height.
func BarHeight(v, min, max, rows int) int {
	if rows <= 0 {
		return 0
	}
	if max <= min {
		return rows
	}
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	if uint64(max)-uint64(min) > 1<<31 {
		frac := (float64(v) - float64(min)) / (float64(max) - float64(min))
		return 1 + int(frac*float64(rows-1))
	}
	return 1 + (v-min)*(rows-1)/(max-min)
}

func (r *Renderer) barStyle(i int, f loop.Frame) lipgloss.Style {
	if role, ok := f.Highlight[i]; ok {
		switch role {
		case sorter.Current:
			return r.st.current
		case sorter.Displaced:
			return r.st.displaced
		case sorter.Compared:
			return r.st.compared
		}
	}
	return r.st.gradient[i%3]
}

func (r *Renderer) renderBars(f loop.Frame) string {
	rows := r.chartHeight()
	bw := r.BarWidth(len(f.Values))
	heights := make([]int, len(f.Values))
	for i, v := range f.Values {
		heights[i] = BarHeight(v, f.Min, f.Max, rows)
	}

	pad := r.st.blank.Render(strings.Repeat(" ", r.cfg.Layout.SidePad/2))
	block := strings.Repeat("█", bw)
	gap := strings.Repeat(" ", bw)

	var b strings.Builder
	for row := rows; row >= 1; row-- {
		b.WriteString(pad)
		for i, h := range heights {
			if h >= row {
				b.WriteString(r.barStyle(i, f).Render(block))
			} else {
				b.WriteString(r.st.blank.Render(gap))
			}
		}
		if row > 1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *Renderer) renderStats(f loop.Frame) string {
	var s strings.Builder
	status := "IDLE"
	if f.Sorting {
		status = "SORTING"
	}
	s.WriteString(r.st.status.Render(status) + "\n\n")

	for _, name := range f.MetricNames {
		s.WriteString(r.st.label.Render(name) + r.st.value.Render(fmt.Sprintf("%.0f", f.Metrics[name])) + "\n")
	}
	s.WriteString(r.st.label.Render("size") + r.st.value.Render(fmt.Sprintf("%d", len(f.Values))) + "\n\n")

	if len(f.History) > 0 && f.History[0] > 0 {
		done := 1 - f.History[len(f.History)-1]/f.History[0]
		s.WriteString(r.st.progressBar(done, statsWidth-6) + "\n\n")
	}
	if len(f.History) > 1 {
		chart := asciigraph.Plot(f.History, asciigraph.Height(6), asciigraph.Width(statsWidth-10), asciigraph.Caption("inversions"))
		s.WriteString(r.st.graph.Render(chart) + "\n")
	}
	s.WriteString(r.st.separator(statsWidth-4))
	return r.st.stats.Render(s.String())
}
