package metrics

import "github.com/san-kum/sortviz/internal/sorter"

// Steps counts steps that did work, excluding the final no-op that some
// sorters report on completion.
type Steps struct {
	name  string
	count int
}

func NewSteps() *Steps {
	return &Steps{name: "steps"}
}

func (s *Steps) Name() string { return s.name }

func (s *Steps) Observe(values []int, r sorter.StepResult) {
	if r.Compared || r.Changed {
		s.count++
	}
}

func (s *Steps) Value() float64 { return float64(s.count) }

func (s *Steps) Reset() { s.count = 0 }

type Comparisons struct {
	name  string
	count int
}

func NewComparisons() *Comparisons {
	return &Comparisons{name: "comparisons"}
}

func (c *Comparisons) Name() string { return c.name }

func (c *Comparisons) Observe(values []int, r sorter.StepResult) {
	c.count += r.Comparisons
}

func (c *Comparisons) Value() float64 { return float64(c.count) }

func (c *Comparisons) Reset() { c.count = 0 }

// Writes counts steps that mutated the array (swaps or shifts).
type Writes struct {
	name  string
	count int
}

func NewWrites() *Writes {
	return &Writes{name: "writes"}
}

func (w *Writes) Name() string { return w.name }

func (w *Writes) Observe(values []int, r sorter.StepResult) {
	if r.Changed {
		w.count++
	}
}

func (w *Writes) Value() float64 { return float64(w.count) }

func (w *Writes) Reset() { w.count = 0 }
