// Package sorter implements comparison sorts as resumable state machines.
//
// Each [Sorter] holds only the loop counters it needs and performs a single
// unit of work per [Sorter.Step] call, so a caller can render between steps:
//
//   - [Bubble]: one adjacent comparison (and swap) per step
//   - [Insertion]: one single-position shift per step
//
// Sorters mutate the slice they were constructed with in place. Dropping a
// sorter cancels it; the slice is always a permutation of its input between
// steps.
//
// # Example
//
//	s := sorter.NewBubble(values, sorter.Ascending)
//	for !s.IsDone() {
//		r := s.Step()
//		draw(values, r.Highlight)
//	}
package sorter
