package sorter

import (
	"fmt"
	"strings"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "Descending"
	}
	return "Ascending"
}

// ParseDirection accepts "ascending"/"asc" and "descending"/"desc".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "ascending", "asc", "":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown direction: %s", s)
}

// outOfOrder reports whether a placed before b violates d.
func (d Direction) outOfOrder(a, b int) bool {
	if d == Descending {
		return a < b
	}
	return a > b
}

// Role describes why an index is highlighted after a step.
type Role int

const (
	// Current marks the moved value at its new position.
	Current Role = iota
	// Displaced marks the value that was pushed aside.
	Displaced
	// Compared marks an index that was compared without moving.
	Compared
)

func (r Role) String() string {
	switch r {
	case Current:
		return "current"
	case Displaced:
		return "displaced"
	case Compared:
		return "compared"
	}
	return "unknown"
}

// StepResult describes one Step. Compared and Changed flag a step that did
// visible work; Comparisons counts every element comparison made during the
// call, including ones made while settling positions that need no move.
type StepResult struct {
	Highlight   map[int]Role
	Compared    bool
	Changed     bool
	Done        bool
	Comparisons int
}

type Sorter interface {
	Name() string
	Step() StepResult
	IsDone() bool
	// Counters returns the outer and inner loop positions.
	Counters() (outer, inner int)
}

// IsOrdered reports whether values are ordered according to d.
func IsOrdered(values []int, d Direction) bool {
	for i := 1; i < len(values); i++ {
		if d.outOfOrder(values[i-1], values[i]) {
			return false
		}
	}
	return true
}
