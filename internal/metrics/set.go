package metrics

import "github.com/san-kum/sortviz/internal/sorter"

const historyCapacity = 600

// Set is the group of metrics tracked for one sort, plus a bounded history
// of the inversion count for charting.
type Set struct {
	metrics  []Metric
	disorder *Disorder
	history  []float64
}

func NewSet(dir sorter.Direction) *Set {
	d := NewDisorder(dir)
	ms := []Metric{NewSteps(), NewComparisons(), NewWrites(), d}
	return &Set{
		metrics:  ms,
		disorder: d,
		history:  make([]float64, 0, historyCapacity),
	}
}

// Begin resets every metric and records the starting disorder of values.
func (s *Set) Begin(values []int) {
	for _, m := range s.metrics {
		m.Reset()
	}
	s.history = s.history[:0]
	s.disorder.Prime(values)
	s.record()
}

func (s *Set) Observe(values []int, r sorter.StepResult) {
	for _, m := range s.metrics {
		m.Observe(values, r)
	}
	if r.Compared || r.Changed {
		s.record()
	}
}

func (s *Set) record() {
	s.history = append(s.history, s.disorder.Value())
	if len(s.history) > historyCapacity {
		s.history = s.history[1:]
	}
}

// Values returns the current value of each metric by name.
func (s *Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Names returns metric names in display order.
func (s *Set) Names() []string {
	names := make([]string, len(s.metrics))
	for i, m := range s.metrics {
		names[i] = m.Name()
	}
	return names
}

// History returns a copy of the recorded inversion counts.
func (s *Set) History() []float64 {
	c := make([]float64, len(s.history))
	copy(c, s.history)
	return c
}
