package generate

import (
	"iter"

	"github.com/matzehuels/funkdigen/pkg/code"
	"github.com/matzehuels/funkdigen/pkg/component"
)

// successor yields the digraphs of size n partition by partition. Within a
// partition the components form an odometer: the rightmost component that has
// a successor advances, and every component to its right restarts, either at
// the new value (same size, so equal-sized runs stay nondecreasing) or at the
// cycle of its size.
func successor(n int) iter.Seq[code.Digraph] {
	return func(yield func(code.Digraph) bool) {
		g := make([]code.Component, n)
		for i := range g {
			g[i] = component.Cycle(1)
		}
		for ok := true; ok; g, ok = nextDigraph(g) {
			if !yield(code.NewDigraph(g...)) {
				return
			}
		}
	}
}

// nextDigraph advances the odometer g. Components are shared between
// successive states and never modified.
func nextDigraph(g []code.Component) ([]code.Component, bool) {
	for h := len(g) - 1; h >= 0; h-- {
		c, ok := component.Next(g[h])
		if !ok {
			continue
		}
		f := make([]code.Component, len(g))
		copy(f, g[:h])
		f[h] = c
		size := c.Size()
		for i := h + 1; i < len(g); i++ {
			if m := g[i].Size(); m == size {
				f[i] = c
			} else {
				f[i] = component.Cycle(m)
			}
		}
		return f, true
	}

	parts := make([]int, len(g))
	for i, c := range g {
		parts[i] = c.Size()
	}
	q, ok := nextPartition(parts)
	if !ok {
		return nil, false
	}
	f := make([]code.Component, len(q))
	for i, m := range q {
		f[i] = component.Cycle(m)
	}
	return f, true
}
