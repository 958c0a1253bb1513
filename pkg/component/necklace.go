package component

import (
	"iter"
	"slices"

	"github.com/matzehuels/funkdigen/pkg/code"
	"github.com/matzehuels/funkdigen/pkg/tree"
)

// Necklaces builds component codes as necklaces over tree codes and keeps
// sorted pools of the smaller sizes for the digraph assembler.
// A Necklaces is not safe for concurrent use.
type Necklaces struct {
	trees *tree.Generator
	pools [][]code.Component // pools[s] lists the components of size s in the fixed order
}

// NewNecklaces returns a necklace generator drawing trees from g. A nil g
// gets a fresh tree generator.
func NewNecklaces(g *tree.Generator) *Necklaces {
	if g == nil {
		g = tree.NewGenerator()
	}
	return &Necklaces{trees: g, pools: [][]code.Component{nil}}
}

// Pool returns every component code of size n sorted in the fixed order,
// computing and retaining it on first use. The returned slice must not be
// modified.
func (g *Necklaces) Pool(n int) []code.Component {
	if n < 1 {
		return nil
	}
	for s := len(g.pools); s <= n; s++ {
		pool := slices.Collect(g.Components(s))
		slices.SortFunc(pool, code.CompareComponents)
		g.pools = append(g.pools, pool)
	}
	return g.pools[n]
}

// letter is a tree code identified by its position in the tree pools, so
// that comparing letters compares trees in the fixed order.
type letter struct{ size, idx int }

func (a letter) less(b letter) bool {
	return a.size < b.size || a.size == b.size && a.idx < b.idx
}

// Components yields every component code of size n exactly once, ordered by
// cycle length and then lexicographically. Nothing is yielded for n < 1.
func (g *Necklaces) Components(n int) iter.Seq[code.Component] {
	return func(yield func(code.Component) bool) {
		if n < 1 {
			return
		}
		for t := range g.trees.Trees(n) {
			if !yield(code.Component{t}) {
				return
			}
		}
		for s := 1; s < n; s++ {
			g.trees.Pool(s)
		}
		for k := 2; k <= n; k++ {
			w := necklaceWalk{
				pool:  g.trees.Pool,
				word:  make([]letter, k),
				n:     n,
				yield: yield,
			}
			if !w.extend(0, 0, 1) {
				return
			}
		}
	}
}

// necklaceWalk carries the state of the depth-first prenecklace search for
// one cycle length.
type necklaceWalk struct {
	pool  func(int) []code.Tree
	word  []letter
	n     int
	yield func(code.Component) bool
}

// extend fills position t given the vertices used so far and the period p
// of the current prenecklace word[:t].
func (w *necklaceWalk) extend(t, used, p int) bool {
	k := len(w.word)
	if t == k {
		if used != w.n || k%p != 0 {
			return true
		}
		c := make(code.Component, k)
		for i, a := range w.word {
			c[i] = w.pool(a.size)[a.idx]
		}
		return w.yield(c)
	}
	// Every remaining position needs at least one vertex.
	maxSize := w.n - used - (k - t - 1)
	low := letter{size: 1}
	if t > 0 {
		low = w.word[t-p]
	}
	for s := low.size; s <= maxSize; s++ {
		start := 0
		if s == low.size {
			start = low.idx
		}
		pool := w.pool(s)
		for i := start; i < len(pool); i++ {
			a := letter{size: s, idx: i}
			w.word[t] = a
			np := p
			if t == 0 || low.less(a) {
				np = t + 1
			}
			if !w.extend(t+1, used+s, np) {
				return false
			}
		}
	}
	return true
}
