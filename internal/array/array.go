package array

import (
	"math"
	"math/rand"
)

// Generate returns n independent uniform integers in [min, max].
func Generate(rng *rand.Rand, n, min, max int) ([]int, error) {
	if n <= 0 || min > max {
		return nil, &InvalidRangeError{N: n, Min: min, Max: max}
	}
	values := make([]int, n)
	for i := range values {
		values[i] = draw(rng, min, max)
	}
	return values, nil
}

// draw picks one value in [min, max]. The span is computed in uint64 so
// ranges wider than math.MaxInt do not overflow.
func draw(rng *rand.Rand, min, max int) int {
	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		// every int is in range
		return int(rng.Uint64())
	}
	if span <= math.MaxInt {
		return min + rng.Intn(int(span))
	}
	for {
		if v := rng.Uint64(); v < span {
			return int(uint64(min) + v)
		}
	}
}

// Model holds the array being visualized along with its value bounds.
// Sorters receive the backing slice and mutate it in place. The configured
// size, not the held length, decides how many values Regenerate draws.
type Model struct {
	n, lo, hi int
	values    []int
	Min, Max  int
}

// New creates a model that generates n values in [min, max] and fills it once.
func New(rng *rand.Rand, n, min, max int) (*Model, error) {
	m := &Model{n: n, lo: min, hi: max}
	if err := m.Regenerate(rng); err != nil {
		return nil, err
	}
	return m, nil
}

// Regenerate replaces the values with a fresh random sequence.
func (m *Model) Regenerate(rng *rand.Rand) error {
	values, err := Generate(rng, m.n, m.lo, m.hi)
	if err != nil {
		return err
	}
	m.Set(values)
	return nil
}

// Set replaces the held values and recomputes Min and Max. The size used
// by Regenerate is unchanged.
func (m *Model) Set(values []int) {
	m.values = values
	if len(values) == 0 {
		m.Min, m.Max = 0, 0
		return
	}
	m.Min, m.Max = values[0], values[0]
	for _, v := range values[1:] {
		if v < m.Min {
			m.Min = v
		}
		if v > m.Max {
			m.Max = v
		}
	}
}

// Values returns the shared backing slice.
func (m *Model) Values() []int { return m.values }

// Len returns the number of held values.
func (m *Model) Len() int { return len(m.values) }

// Snapshot returns a copy of the held values.
func (m *Model) Snapshot() []int {
	c := make([]int, len(m.values))
	copy(c, m.values)
	return c
}
