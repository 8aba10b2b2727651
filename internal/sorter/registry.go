package sorter

import (
	"fmt"
	"sort"
)

type entry struct {
	display string
	build   func(values []int, dir Direction) Sorter
}

type Registry struct {
	sorters map[string]entry
}

func NewRegistry() *Registry {
	r := &Registry{sorters: make(map[string]entry)}

	r.sorters["bubble"] = entry{
		display: "Bubble Sort",
		build:   func(values []int, dir Direction) Sorter { return NewBubble(values, dir) },
	}
	r.sorters["insertion"] = entry{
		display: "Insertion Sort",
		build:   func(values []int, dir Direction) Sorter { return NewInsertion(values, dir) },
	}

	return r
}

// Get constructs the named sorter over values.
func (r *Registry) Get(name string, values []int, dir Direction) (Sorter, error) {
	e, ok := r.sorters[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", name)
	}
	return e.build(values, dir), nil
}

// DisplayName returns the human readable name, or name itself if unknown.
func (r *Registry) DisplayName(name string) string {
	if e, ok := r.sorters[name]; ok {
		return e.display
	}
	return name
}

func (r *Registry) Has(name string) bool {
	_, ok := r.sorters[name]
	return ok
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sorters))
	for name := range r.sorters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
