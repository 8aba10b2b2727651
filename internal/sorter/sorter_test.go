package sorter

import (
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type constructor func([]int, Direction) Sorter

var (
	bubble    constructor = func(v []int, d Direction) Sorter { return NewBubble(v, d) }
	insertion constructor = func(v []int, d Direction) Sorter { return NewInsertion(v, d) }
)

// run steps s to completion, checking the multiset after every step, and
// returns the number of calls and the number that changed the array.
func run(s Sorter, values []int) (calls, changed int) {
	want := sortedCopy(values)
	for !s.IsDone() {
		r := s.Step()
		calls++
		if r.Changed {
			changed++
		}
		Expect(sortedCopy(values)).To(Equal(want))
		Expect(calls).To(BeNumerically("<=", len(values)*len(values)+1))
	}
	return calls, changed
}

// insertionComparisons counts the comparisons a textbook insertion sort
// makes on a copy of values.
func insertionComparisons(values []int, d Direction) int {
	a := append([]int(nil), values...)
	n := 0
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i
		for j > 0 {
			n++
			if !d.outOfOrder(a[j-1], key) {
				break
			}
			a[j] = a[j-1]
			j--
		}
		a[j] = key
	}
	return n
}

func sortedCopy(values []int) []int {
	c := append([]int(nil), values...)
	sort.Ints(c)
	return c
}

func randomValues(rng *rand.Rand, n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(20)
	}
	return values
}

func inversions(values []int, d Direction) int {
	count := 0
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if d.outOfOrder(values[i], values[j]) {
				count++
			}
		}
	}
	return count
}

var _ = Describe("Sorters", func() {
	DescribeTable("order random arrays",
		func(build constructor, dir Direction) {
			rng := rand.New(rand.NewSource(99))
			for n := 0; n <= 25; n++ {
				values := randomValues(rng, n)
				s := build(values, dir)
				run(s, values)
				Expect(IsOrdered(values, dir)).To(BeTrue(), "values %v", values)
			}
		},
		Entry("bubble ascending", bubble, Ascending),
		Entry("bubble descending", bubble, Descending),
		Entry("insertion ascending", insertion, Ascending),
		Entry("insertion descending", insertion, Descending),
	)

	DescribeTable("are idempotent after completion",
		func(build constructor) {
			values := []int{4, 2, 9, 1, 1, 7}
			s := build(values, Ascending)
			run(s, values)
			final := append([]int(nil), values...)

			for i := 0; i < 3; i++ {
				r := s.Step()
				Expect(r.Done).To(BeTrue())
				Expect(r.Changed).To(BeFalse())
				Expect(r.Highlight).To(BeEmpty())
			}
			Expect(values).To(Equal(final))
			Expect(s.IsDone()).To(BeTrue())
		},
		Entry("bubble", bubble),
		Entry("insertion", insertion),
	)

	It("sorts [5,3,8,1] ascending with bubble sort", func() {
		values := []int{5, 3, 8, 1}
		run(NewBubble(values, Ascending), values)
		Expect(values).To(Equal([]int{1, 3, 5, 8}))
	})

	It("sorts [5,3,8,1] descending with insertion sort", func() {
		values := []int{5, 3, 8, 1}
		run(NewInsertion(values, Descending), values)
		Expect(values).To(Equal([]int{8, 5, 3, 1}))
	})

	Describe("Bubble", func() {
		It("takes n(n-1)/2 steps regardless of order", func() {
			rng := rand.New(rand.NewSource(3))
			for n := 1; n <= 20; n++ {
				values := randomValues(rng, n)
				calls, _ := run(NewBubble(values, Ascending), values)
				Expect(calls).To(Equal(n * (n - 1) / 2))
			}
		})

		It("compares an ordered array without swapping", func() {
			values := []int{1, 2, 3}
			s := NewBubble(values, Ascending)
			calls, changed := run(s, values)
			Expect(calls).To(Equal(3))
			Expect(changed).To(BeZero())
			Expect(s.IsDone()).To(BeTrue())
			Expect(values).To(Equal([]int{1, 2, 3}))
		})

		It("highlights the swapped pair", func() {
			values := []int{2, 1}
			r := NewBubble(values, Ascending).Step()
			Expect(r.Changed).To(BeTrue())
			Expect(r.Done).To(BeTrue())
			Expect(r.Highlight).To(Equal(map[int]Role{0: Current, 1: Displaced}))
		})

		It("marks comparisons without a swap", func() {
			r := NewBubble([]int{1, 2}, Ascending).Step()
			Expect(r.Compared).To(BeTrue())
			Expect(r.Changed).To(BeFalse())
			Expect(r.Highlight).To(Equal(map[int]Role{0: Compared, 1: Compared}))
		})

		It("starts with both counters at zero", func() {
			outer, inner := NewBubble([]int{3, 2, 1}, Ascending).Counters()
			Expect(outer).To(BeZero())
			Expect(inner).To(BeZero())
		})

		It("is done immediately for fewer than two values", func() {
			Expect(NewBubble(nil, Ascending).IsDone()).To(BeTrue())
			Expect(NewBubble([]int{4}, Ascending).IsDone()).To(BeTrue())
		})
	})

	Describe("Insertion", func() {
		It("changes the array once per inversion", func() {
			rng := rand.New(rand.NewSource(11))
			for n := 0; n <= 20; n++ {
				values := randomValues(rng, n)
				want := inversions(values, Descending)
				_, changed := run(NewInsertion(values, Descending), values)
				Expect(changed).To(Equal(want))
				Expect(changed).To(BeNumerically("<=", n*(n-1)/2))
			}
		})

		It("finishes an ordered array without changes", func() {
			values := []int{1, 2, 3, 4}
			s := NewInsertion(values, Ascending)
			r := s.Step()
			Expect(r.Done).To(BeTrue())
			Expect(r.Changed).To(BeFalse())
			Expect(s.IsDone()).To(BeTrue())
		})

		It("writes the inserted value at its tentative position every step", func() {
			values := []int{2, 3, 1}
			s := NewInsertion(values, Ascending)

			r := s.Step()
			Expect(values).To(Equal([]int{2, 1, 3}))
			Expect(r.Highlight).To(Equal(map[int]Role{1: Current, 2: Displaced}))

			r = s.Step()
			Expect(values).To(Equal([]int{1, 2, 3}))
			Expect(r.Highlight).To(Equal(map[int]Role{0: Current, 1: Displaced}))
			Expect(r.Done).To(BeTrue())
		})

		It("reports n-1 comparisons for an ordered array", func() {
			for n := 2; n <= 8; n++ {
				values := make([]int, n)
				for i := range values {
					values[i] = i
				}
				r := NewInsertion(values, Ascending).Step()
				Expect(r.Done).To(BeTrue())
				Expect(r.Comparisons).To(Equal(n - 1))
			}
		})

		It("counts the comparison that ends each insertion", func() {
			values := []int{5, 3, 8, 1}
			s := NewInsertion(values, Ascending)
			total := 0
			for !s.IsDone() {
				total += s.Step().Comparisons
			}
			Expect(total).To(Equal(5))
			Expect(s.Step().Comparisons).To(BeZero())
		})

		It("matches a plain insertion sort's comparison count", func() {
			rng := rand.New(rand.NewSource(17))
			for n := 0; n <= 20; n++ {
				values := randomValues(rng, n)
				want := insertionComparisons(values, Ascending)
				s := NewInsertion(values, Ascending)
				got := 0
				for !s.IsDone() {
					got += s.Step().Comparisons
				}
				Expect(got).To(Equal(want), "n=%d", n)
			}
		})

		It("starts at position one", func() {
			outer, cursor := NewInsertion([]int{3, 2, 1}, Ascending).Counters()
			Expect(outer).To(Equal(1))
			Expect(cursor).To(Equal(1))
		})
	})

	Describe("Registry", func() {
		It("builds registered sorters", func() {
			r := NewRegistry()
			Expect(r.Names()).To(Equal([]string{"bubble", "insertion"}))

			s, err := r.Get("insertion", []int{2, 1}, Descending)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Name()).To(Equal("Insertion Sort"))
			Expect(r.DisplayName("bubble")).To(Equal("Bubble Sort"))
		})

		It("rejects unknown names", func() {
			_, err := NewRegistry().Get("quick", []int{1}, Ascending)
			Expect(err).To(MatchError(ContainSubstring("unknown algorithm")))
			Expect(NewRegistry().Has("quick")).To(BeFalse())
		})
	})

	Describe("ParseDirection", func() {
		It("parses both directions", func() {
			d, err := ParseDirection("desc")
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(Equal(Descending))

			d, err = ParseDirection("Ascending")
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(Equal(Ascending))

			_, err = ParseDirection("sideways")
			Expect(err).To(HaveOccurred())
		})
	})
})
