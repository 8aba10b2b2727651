package metrics

import "github.com/san-kum/sortviz/internal/sorter"

// Inversions counts pairs i < j whose values violate dir.
func Inversions(values []int, dir sorter.Direction) int {
	count := 0
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if dir == sorter.Descending && values[i] < values[j] {
				count++
			} else if dir == sorter.Ascending && values[i] > values[j] {
				count++
			}
		}
	}
	return count
}

// Disorder tracks the inversion count of the array after the latest step.
type Disorder struct {
	name    string
	dir     sorter.Direction
	current int
}

func NewDisorder(dir sorter.Direction) *Disorder {
	return &Disorder{
		name: "inversions",
		dir:  dir,
	}
}

func (d *Disorder) Name() string { return d.name }

func (d *Disorder) Observe(values []int, r sorter.StepResult) {
	d.current = Inversions(values, d.dir)
}

func (d *Disorder) Value() float64 { return float64(d.current) }

func (d *Disorder) Reset() { d.current = 0 }

// Prime sets the count from values without a step.
func (d *Disorder) Prime(values []int) {
	d.current = Inversions(values, d.dir)
}
