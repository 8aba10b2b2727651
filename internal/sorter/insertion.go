package sorter

// Insertion is insertion sort where every step moves the value being
// inserted one position left. Positions that need no shift are settled
// without consuming a step.
type Insertion struct {
	values  []int
	dir     Direction
	i       int
	cursor  int
	current int
	// pending is set once the comparison calling for the next shift is made.
	pending bool
	done    bool
}

func NewInsertion(values []int, dir Direction) *Insertion {
	s := &Insertion{
		values: values,
		dir:    dir,
		i:      1,
		cursor: 1,
		done:   len(values) < 2,
	}
	if !s.done {
		s.current = values[1]
	}
	return s
}

func (s *Insertion) Name() string { return "Insertion Sort" }

func (s *Insertion) IsDone() bool { return s.done }

func (s *Insertion) Counters() (int, int) { return s.i, s.cursor }

// settle advances the outer position until a shift is pending or the
// array is exhausted, returning the number of comparisons it made.
func (s *Insertion) settle() int {
	n := 0
	for !s.done && !s.pending {
		if s.cursor > 0 {
			n++
			if s.dir.outOfOrder(s.values[s.cursor-1], s.current) {
				s.pending = true
				return n
			}
		}
		s.i++
		if s.i >= len(s.values) {
			s.done = true
			return n
		}
		s.cursor = s.i
		s.current = s.values[s.i]
	}
	return n
}

func (s *Insertion) Step() StepResult {
	cmp := s.settle()
	if s.done {
		return StepResult{Done: true, Comparisons: cmp}
	}

	c := s.cursor
	s.values[c] = s.values[c-1]
	s.cursor--
	s.values[s.cursor] = s.current
	s.pending = false

	r := StepResult{
		Highlight: map[int]Role{s.cursor: Current, c: Displaced},
		Compared:  true,
		Changed:   true,
	}
	r.Comparisons = cmp + s.settle()
	r.Done = s.done
	return r
}
