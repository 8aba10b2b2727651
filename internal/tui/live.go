package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/sortviz/internal/loop"
	"github.com/san-kum/sortviz/internal/sorter"
	"github.com/san-kum/sortviz/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

var roleGlyphs = map[sorter.Role]rune{
	sorter.Current:   '@',
	sorter.Displaced: 'x',
	sorter.Compared:  '=',
}

// LiveRenderer draws frames as plain ASCII bars with ANSI cursor control.
// It needs no alternate screen, so it works over pipes and in CI logs.
type LiveRenderer struct {
	out       io.Writer
	width     int
	height    int
	frameRate int
	lastFrame time.Time
	ansi      bool
	frames    int
}

// NewLiveRenderer writes to out. A frameRate of 0 draws every frame;
// otherwise partial frames arriving faster than the rate are dropped.
func NewLiveRenderer(out io.Writer, width, height, frameRate int) *LiveRenderer {
	if width < 1 {
		width = 70
	}
	if height < 1 {
		height = 20
	}
	return &LiveRenderer{
		out:       out,
		width:     width,
		height:    height,
		frameRate: frameRate,
		ansi:      true,
	}
}

// SetANSI toggles the clear-screen and cursor escapes.
func (r *LiveRenderer) SetANSI(on bool) { r.ansi = on }

// Frames returns how many frames were written.
func (r *LiveRenderer) Frames() int { return r.frames }

func (r *LiveRenderer) Draw(f loop.Frame) {
	if !f.FullRedraw && r.frameRate > 0 {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
	}
	r.lastFrame = time.Now()
	r.frames++
	fmt.Fprint(r.out, r.render(f))
}

func (r *LiveRenderer) render(f loop.Frame) string {
	var b strings.Builder
	if r.ansi {
		b.WriteString(clearScreen)
	}

	status := "idle"
	if f.Sorting {
		status = "sorting"
	}
	fmt.Fprintf(&b, "  %s - %s  [%s]\n", f.Algorithm, f.Direction, status)
	b.WriteString("  " + strings.Repeat("-", r.width) + "\n")

	n := len(f.Values)
	barW := 1
	if n > 0 && r.width/n > 1 {
		barW = r.width / n
	}
	heights := make([]int, n)
	for i, v := range f.Values {
		heights[i] = viz.BarHeight(v, f.Min, f.Max, r.height)
	}

	for row := r.height; row >= 1; row-- {
		var line strings.Builder
		for i := range f.Values {
			c := ' '
			if heights[i] >= row {
				c = glyph(f.Highlight, i)
			}
			line.WriteString(strings.Repeat(string(c), max(barW-1, 1)))
			if barW > 1 {
				line.WriteByte(' ')
			}
		}
		b.WriteString("  " + strings.TrimRight(line.String(), " ") + "\n")
	}

	b.WriteString("  " + strings.Repeat("-", r.width) + "\n")

	stats := make([]string, 0, len(f.MetricNames))
	for _, name := range f.MetricNames {
		stats = append(stats, fmt.Sprintf("%s=%.0f", name, f.Metrics[name]))
	}
	b.WriteString("  " + strings.Join(stats, " ") + "\n")

	return b.String()
}

func glyph(h map[int]sorter.Role, i int) rune {
	if role, ok := h[i]; ok {
		return roleGlyphs[role]
	}
	return '#'
}

func (r *LiveRenderer) Start() {
	if r.ansi {
		fmt.Fprint(r.out, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if r.ansi {
		fmt.Fprint(r.out, showCursor)
	}
}

// Animate starts a sort on l and ticks it at fps until it finishes,
// with a final idle frame.
func Animate(l *loop.Loop, fps int) {
	l.Handle(loop.CmdStart)
	var delay time.Duration
	if fps > 0 {
		delay = time.Second / time.Duration(fps)
	}
	for l.Sorting() {
		l.Tick()
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	l.Tick()
}
