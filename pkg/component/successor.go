package component

import (
	"iter"
	"slices"

	"github.com/matzehuels/funkdigen/pkg/code"
)

// Cycle returns the component made of a cycle of n single-vertex trees, the
// first component of size n in successor order.
func Cycle(n int) code.Component {
	c := make(code.Component, n)
	for i := range c {
		c[i] = code.Leaf
	}
	return c
}

// Successors yields every component code of size n exactly once, in successor
// order. Nothing is yielded for n < 1.
func Successors(n int) iter.Seq[code.Component] {
	return func(yield func(code.Component) bool) {
		if n < 1 {
			return
		}
		for c, ok := Cycle(n), true; ok; c, ok = Next(c) {
			if !yield(c) {
				return
			}
		}
	}
}

// Next returns the successor of c among the components of the same size,
// or false if c is the last one. c must be a canonical component code.
func Next(c code.Component) (code.Component, bool) {
	if len(c) >= 2 {
		if m, ok := nextMerge(c, len(c)-2, len(c)); ok {
			return m, true
		}
	}
	u, l, r, ok := unmerge(c)
	for ok {
		if m, found := nextMerge(u, l, r+1); found {
			return m, true
		}
		u, l, r, ok = unmerge(u)
	}
	return nil, false
}

// unmerge splits the first non-trivial tree of c into a single-vertex tree
// followed by its children. Merging u[l:r] gives back c.
func unmerge(c code.Component) (u code.Component, l, r int, ok bool) {
	for l < len(c) && c[l].IsLeaf() {
		l++
	}
	if l == len(c) {
		return nil, 0, 0, false
	}
	children := c[l].Children()
	u = make(code.Component, 0, len(c)+len(children))
	u = append(u, c[:l]...)
	u = append(u, code.Leaf)
	u = append(u, children...)
	u = append(u, c[l+1:]...)
	return u, l, l + 1 + len(children), true
}

// merge joins c[l:r] into a single tree rooted at c[l] and returns the result
// if it is a valid successor of c.
func merge(c code.Component, l, r int) (code.Component, bool) {
	if !c[l].IsLeaf() || !slices.IsSortedFunc(c[l:r], code.CompareTrees) {
		return nil, false
	}
	size := 0
	for _, t := range c[l:r] {
		size += len(t)
	}
	t := make(code.Tree, 0, size)
	for _, s := range c[l:r] {
		t = append(t, s...)
	}
	t[0] = size

	m := make(code.Component, 0, len(c)-(r-l)+1)
	m = append(m, c[:l]...)
	m = append(m, t)
	m = append(m, c[r:]...)
	if !code.IsMinRotation(m) || !unmergesTo(m, c) {
		return nil, false
	}
	return m, true
}

// unmergesTo reports whether splitting the first non-trivial tree of m
// happens at a position where c holds a single-vertex tree, i.e. whether m
// was obtained from c by merging at that position.
func unmergesTo(m, c code.Component) bool {
	i := 0
	for i < len(m) && m[i].IsLeaf() {
		i++
	}
	return c[i].IsLeaf()
}

// nextMerge searches for a valid merge of c, moving the right end of the
// window up to len(c) and then the left end leftwards.
func nextMerge(c code.Component, l, r int) (code.Component, bool) {
	for {
		for ; r <= len(c); r++ {
			if m, ok := merge(c, l, r); ok {
				return m, true
			}
		}
		if l == 0 {
			return nil, false
		}
		l--
		r = l + 2
	}
}
