package classify

import (
	"github.com/mvp-joe/funcsplit/internal/extract"
)

// Grouping partitions extracted functions into categories.
// Buckets reference the caller's records instead of copying them.
type Grouping struct {
	buckets map[Category][]*extract.Function
	total   int
}

// Group assigns every function to exactly one category, keeping input order
// inside each bucket.
func Group(functions []extract.Function) *Grouping {
	g := &Grouping{
		buckets: make(map[Category][]*extract.Function, len(categories)),
		total:   len(functions),
	}

	for i := range functions {
		fn := &functions[i]
		c := Classify(fn.Name)
		g.buckets[c] = append(g.buckets[c], fn)
	}

	return g
}

// Bucket returns the functions assigned to c, in input order.
func (g *Grouping) Bucket(c Category) []*extract.Function {
	return g.buckets[c]
}

// Total is the number of functions that were grouped.
func (g *Grouping) Total() int {
	return g.total
}

// Counts returns the size of every non-empty bucket.
func (g *Grouping) Counts() map[Category]int {
	counts := make(map[Category]int, len(g.buckets))
	for c, fns := range g.buckets {
		counts[c] = len(fns)
	}
	return counts
}
