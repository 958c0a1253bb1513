// Package tree enumerates unlabeled rooted trees up to isomorphism.
//
// A tree of size n is a root together with a multiset of child subtrees
// whose sizes sum to n-1. [Generator.Trees] produces every such multiset
// exactly once by choosing the children as a nondecreasing sequence of
// smaller tree codes, depth first, so the work between two consecutive
// trees is polynomial in n.
//
// Codes of every size below n are kept in write-once pools ([Generator.Pool])
// and reused by larger sizes; the trees of size n itself are streamed.
//
// A Generator is not safe for concurrent use.
package tree

import (
	"iter"

	"github.com/matzehuels/funkdigen/pkg/code"
)

// Generator enumerates tree codes and memoises the pools of smaller sizes.
type Generator struct {
	pools [][]code.Tree // pools[s] lists the trees of size s in the fixed order
}

// NewGenerator returns a Generator with empty pools.
func NewGenerator() *Generator {
	return &Generator{pools: [][]code.Tree{nil, {code.Leaf}}}
}

// Pool returns every tree code of size n in the fixed order, computing and
// retaining it on first use. The returned slice must not be modified.
func (g *Generator) Pool(n int) []code.Tree {
	if n < 1 {
		return nil
	}
	for s := len(g.pools); s <= n; s++ {
		var pool []code.Tree
		for t := range g.Trees(s) {
			pool = append(pool, t)
		}
		g.pools = append(g.pools, pool)
	}
	return g.pools[n]
}

// Trees yields every tree code of size n exactly once, in increasing fixed
// order. Nothing is yielded for n < 1.
func (g *Generator) Trees(n int) iter.Seq[code.Tree] {
	return func(yield func(code.Tree) bool) {
		switch {
		case n < 1:
			return
		case n == 1:
			yield(code.Leaf)
			return
		}
		for s := 1; s < n; s++ {
			g.Pool(s)
		}
		buf := make(code.Tree, 1, n)
		buf[0] = n
		g.children(buf, n-1, 1, 0, yield)
	}
}

// children extends buf with a nondecreasing sequence of subtree codes of
// total size budget, each at least the tree at position idx of pool size.
// It reports false once yield asks to stop.
func (g *Generator) children(buf code.Tree, budget, size, idx int, yield func(code.Tree) bool) bool {
	if budget == 0 {
		return yield(append(code.Tree(nil), buf...))
	}
	for s := size; s <= budget; s++ {
		start := 0
		if s == size {
			start = idx
		}
		pool := g.pools[s]
		for i := start; i < len(pool); i++ {
			if !g.children(append(buf, pool[i]...), budget-s, s, i, yield) {
				return false
			}
		}
	}
	return true
}
