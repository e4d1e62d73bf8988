package sweep

import (
	"slices"

	"github.com/katalvlaran/ivtree/interval"
)

// activeSet tracks the shapes crossing the sweep line. Shapes that share an
// identical y-span share one tree key whose value lists their IDs.
type activeSet struct {
	tree *interval.Tree[int, []int]
}

func newActiveSet() *activeSet {
	return &activeSet{tree: interval.New[int, []int]()}
}

// add activates id on [lo, hi].
func (s *activeSet) add(lo, hi, id int) error {
	ids, _ := s.tree.Get(lo, hi)

	return s.tree.Put(lo, hi, append(ids, id))
}

// remove deactivates id on [lo, hi], dropping the key once no IDs remain.
func (s *activeSet) remove(lo, hi, id int) error {
	ids, ok := s.tree.Get(lo, hi)
	if !ok {
		return nil
	}
	ids = slices.DeleteFunc(ids, func(v int) bool { return v == id })
	if len(ids) == 0 {
		s.tree.Delete(lo, hi)

		return nil
	}

	return s.tree.Put(lo, hi, ids)
}

// overlapping returns the IDs of every active shape whose span meets [lo, hi].
func (s *activeSet) overlapping(lo, hi int) []int {
	var out []int
	for _, ids := range s.tree.FindIntersections(lo, hi) {
		out = append(out, ids...)
	}

	return out
}

func (s *activeSet) len() int {
	return s.tree.Len()
}
