package sorter

// Bubble is bubble sort without early exit: it always performs n(n-1)/2
// comparisons, one per step, even when the input is already ordered.
type Bubble struct {
	values []int
	dir    Direction
	i, j   int
	done   bool
}

func NewBubble(values []int, dir Direction) *Bubble {
	return &Bubble{
		values: values,
		dir:    dir,
		done:   len(values) < 2,
	}
}

func (b *Bubble) Name() string { return "Bubble Sort" }

func (b *Bubble) IsDone() bool { return b.done }

func (b *Bubble) Counters() (int, int) { return b.i, b.j }

func (b *Bubble) Step() StepResult {
	if b.done {
		return StepResult{Done: true}
	}

	j := b.j
	r := StepResult{Compared: true, Comparisons: 1}
	if b.dir.outOfOrder(b.values[j], b.values[j+1]) {
		b.values[j], b.values[j+1] = b.values[j+1], b.values[j]
		r.Changed = true
		r.Highlight = map[int]Role{j: Current, j + 1: Displaced}
	} else {
		r.Highlight = map[int]Role{j: Compared, j + 1: Compared}
	}

	n := len(b.values)
	b.j++
	if b.j > n-2-b.i {
		b.j = 0
		b.i++
		if b.i > n-2 {
			b.done = true
		}
	}
	r.Done = b.done
	return r
}
