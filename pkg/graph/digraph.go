package graph

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrVertexRange is returned by [Digraph.AddArc] and [FromFunction] when an
// endpoint is not a vertex of the digraph.
var ErrVertexRange = errors.New("vertex out of range")

// Digraph is a directed graph on vertices 0..n-1 with at most one arc per
// ordered pair. Loops are allowed.
//
// The zero value is the empty digraph. Use [New] for a digraph with
// vertices. Digraph is not safe for concurrent use.
type Digraph struct {
	out  [][]int // out[v] lists the heads of v's arcs in insertion order
	size int
}

// New returns a digraph with n isolated vertices. Negative n is treated as 0.
func New(n int) *Digraph {
	return &Digraph{out: make([][]int, max(n, 0))}
}

// FromFunction returns the functional digraph with an arc v -> f[v] for every
// vertex v.
func FromFunction(f []int) (*Digraph, error) {
	g := New(len(f))
	for v, w := range f {
		if err := g.AddArc(v, w); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Order returns the number of vertices.
func (g *Digraph) Order() int { return len(g.out) }

// Size returns the number of arcs.
func (g *Digraph) Size() int { return g.size }

func (g *Digraph) valid(v int) bool { return v >= 0 && v < len(g.out) }

// AddArc adds the arc u -> v. Adding an existing arc is a no-op.
func (g *Digraph) AddArc(u, v int) error {
	if !g.valid(u) || !g.valid(v) {
		return fmt.Errorf("arc %d->%d on %d vertices: %w", u, v, len(g.out), ErrVertexRange)
	}
	if slices.Contains(g.out[u], v) {
		return nil
	}
	g.out[u] = append(g.out[u], v)
	g.size++
	return nil
}

// HasArc reports whether the arc u -> v exists.
func (g *Digraph) HasArc(u, v int) bool {
	return g.valid(u) && slices.Contains(g.out[u], v)
}

// Successors returns the heads of the arcs leaving v. The slice must not be
// modified.
func (g *Digraph) Successors(v int) []int {
	if !g.valid(v) {
		return nil
	}
	return g.out[v]
}

// OutDegree returns the number of arcs leaving v.
func (g *Digraph) OutDegree(v int) int { return len(g.Successors(v)) }

// Arcs yields every arc as a (tail, head) pair, tails in increasing order and
// heads in insertion order.
func (g *Digraph) Arcs() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for u, heads := range g.out {
			for _, v := range heads {
				if !yield(u, v) {
					return
				}
			}
		}
	}
}

// HasLoops reports whether some vertex has an arc to itself.
func (g *Digraph) HasLoops() bool {
	for v := range g.out {
		if g.HasArc(v, v) {
			return true
		}
	}
	return false
}

// IsFunctional reports whether every vertex has outdegree exactly 1.
func (g *Digraph) IsFunctional() bool {
	for _, heads := range g.out {
		if len(heads) != 1 {
			return false
		}
	}
	return true
}

// Function returns f with f[v] the unique successor of v, or false if g is
// not functional.
func (g *Digraph) Function() ([]int, bool) {
	if !g.IsFunctional() {
		return nil, false
	}
	f := make([]int, len(g.out))
	for v, heads := range g.out {
		f[v] = heads[0]
	}
	return f, true
}

// Components returns the weakly connected components of g, each as a sorted
// list of vertices, ordered by smallest vertex.
func (g *Digraph) Components() [][]int {
	parent := make([]int, len(g.out))
	for v := range parent {
		parent[v] = v
	}
	var find func(int) int
	find = func(v int) int {
		for parent[v] != v {
			parent[v] = parent[parent[v]]
			v = parent[v]
		}
		return v
	}
	for u, v := range g.Arcs() {
		if ru, rv := find(u), find(v); ru != rv {
			parent[max(ru, rv)] = min(ru, rv)
		}
	}

	index := map[int]int{}
	var comps [][]int
	for v := range g.out {
		r := find(v)
		i, ok := index[r]
		if !ok {
			i = len(comps)
			index[r] = i
			comps = append(comps, nil)
		}
		comps[i] = append(comps[i], v)
	}
	return comps
}

// WeaklyConnected reports whether g is weakly connected. The empty digraph is
// not.
func (g *Digraph) WeaklyConnected() bool {
	return len(g.Components()) == 1
}

// CycleVertices reports, for a functional digraph, which vertices lie on a
// cycle. It returns nil if g is not functional.
func (g *Digraph) CycleVertices() []bool {
	f, ok := g.Function()
	if !ok {
		return nil
	}
	const (
		unseen = iota
		active
		done
	)
	state := make([]int, len(f))
	onCycle := make([]bool, len(f))
	for s := range f {
		v := s
		for state[v] == unseen {
			state[v] = active
			v = f[v]
		}
		if state[v] == active {
			for w := v; ; {
				onCycle[w] = true
				if w = f[w]; w == v {
					break
				}
			}
		}
		for w := s; state[w] == active; w = f[w] {
			state[w] = done
		}
	}
	return onCycle
}

// Equal reports whether g and h have the same vertices and arcs.
func (g *Digraph) Equal(h *Digraph) bool {
	if g.Order() != h.Order() || g.Size() != h.Size() {
		return false
	}
	for u, v := range g.Arcs() {
		if !h.HasArc(u, v) {
			return false
		}
	}
	return true
}
