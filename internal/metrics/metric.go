package metrics

import "github.com/san-kum/sortviz/internal/sorter"

// Metric observes sorter steps along with the array they were applied to.
type Metric interface {
	Name() string
	Observe(values []int, r sorter.StepResult)
	Value() float64
	Reset()
}
