package code

import (
	"cmp"
	"slices"
	"strconv"
)

// Tree is the isomorphism code of an unlabeled rooted tree.
type Tree []int

// Component is the isomorphism code of a connected functional digraph:
// one tree per cycle vertex, in cyclic order, minimally rotated.
type Component []Tree

// Digraph is the isomorphism code of a functional digraph: its components
// in nondecreasing order. The empty Digraph is the digraph with no vertices.
type Digraph []Component

// Code is implemented by the codes that describe a whole digraph: a
// [Component] stands for the connected digraph made of that component alone.
type Code interface {
	// String returns the nested-list textual form.
	String() string
	// Size returns the number of vertices.
	Size() int
	// Digraph returns the code as a full digraph code.
	Digraph() Digraph
}

var (
	_ Code = Component(nil)
	_ Code = Digraph(nil)
)

// Leaf is the code of the single-vertex tree.
var Leaf = Tree{1}

// Size returns the number of nodes of the tree.
func (t Tree) Size() int { return len(t) }

// IsLeaf reports whether t is the single-vertex tree.
func (t Tree) IsLeaf() bool { return len(t) == 1 }

// Children returns the codes of the immediate subtrees of t, in code order.
// The returned slices alias t.
func (t Tree) Children() []Tree {
	var out []Tree
	for k := 1; k < len(t); k += t[k] {
		out = append(out, t[k:k+t[k]:k+t[k]])
	}
	return out
}

// String returns the textual form of t, e.g. "[3, 1, 1]".
func (t Tree) String() string {
	return string(appendTree(nil, t))
}

// Size returns the number of vertices of the component.
func (c Component) Size() int {
	n := 0
	for _, t := range c {
		n += len(t)
	}
	return n
}

// CycleLength returns the length of the limit cycle.
func (c Component) CycleLength() int { return len(c) }

// Digraph returns the one-component digraph code.
func (c Component) Digraph() Digraph { return Digraph{c} }

// String returns the textual form of c, e.g. "[[1], [2, 1]]".
func (c Component) String() string {
	return string(appendComponent(nil, c))
}

// Size returns the number of vertices of the digraph.
func (d Digraph) Size() int {
	n := 0
	for _, c := range d {
		n += c.Size()
	}
	return n
}

// Digraph returns d itself.
func (d Digraph) Digraph() Digraph { return d }

// String returns the textual form of d, e.g. "[[[1]], [[1], [1]]]".
func (d Digraph) String() string {
	b := append([]byte(nil), '[')
	for i, c := range d {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = appendComponent(b, c)
	}
	return string(append(b, ']'))
}

func appendTree(b []byte, t Tree) []byte {
	b = append(b, '[')
	for i, v := range t {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	return append(b, ']')
}

func appendComponent(b []byte, c Component) []byte {
	b = append(b, '[')
	for i, t := range c {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = appendTree(b, t)
	}
	return append(b, ']')
}

// CompareTrees compares two tree codes in the fixed order.
func CompareTrees(a, b Tree) int {
	return slices.Compare(a, b)
}

// CompareComponents compares two component codes in the fixed order: by size,
// then lexicographically over their trees.
func CompareComponents(a, b Component) int {
	if c := cmp.Compare(a.Size(), b.Size()); c != 0 {
		return c
	}
	return slices.CompareFunc(a, b, CompareTrees)
}

// CompareDigraphs compares two digraph codes lexicographically over their
// components.
func CompareDigraphs(a, b Digraph) int {
	return slices.CompareFunc(a, b, CompareComponents)
}
