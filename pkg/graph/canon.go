package graph

import (
	"iter"
	"slices"
)

// Permutations yields every permutation of 0..n-1 using Heap's algorithm.
// The yielded slice is reused between iterations; clone it to keep it.
// n = 0 yields one empty permutation.
func Permutations(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		perm := make([]int, max(n, 0))
		for i := range perm {
			perm[i] = i
		}
		if !yield(perm) {
			return
		}
		state := make([]int, len(perm))
		for i := 0; i < len(perm); {
			if state[i] < i {
				if i&1 == 0 {
					perm[0], perm[i] = perm[i], perm[0]
				} else {
					perm[state[i]], perm[i] = perm[i], perm[state[i]]
				}
				if !yield(perm) {
					return
				}
				state[i]++
				i = 0
			} else {
				state[i] = 0
				i++
			}
		}
	}
}

// CanonicalForm returns the lexicographically smallest row-major adjacency
// matrix of g over all relabelings of its vertices. Two digraphs are
// isomorphic exactly when their canonical forms are equal. The search tries
// all n! permutations.
func (g *Digraph) CanonicalForm() []bool {
	n := g.Order()
	var best []bool
	cur := make([]bool, n*n)
	for p := range Permutations(n) {
		clear(cur)
		for u, v := range g.Arcs() {
			cur[p[u]*n+p[v]] = true
		}
		if best == nil || slices.CompareFunc(cur, best, compareBool) < 0 {
			best = slices.Clone(cur)
		}
	}
	return best
}

// Isomorphic reports whether g and h are isomorphic.
func Isomorphic(g, h *Digraph) bool {
	if g.Order() != h.Order() || g.Size() != h.Size() {
		return false
	}
	return slices.Equal(g.CanonicalForm(), h.CanonicalForm())
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}
