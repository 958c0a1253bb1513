package code

import (
	"slices"

	"github.com/matzehuels/funkdigen/pkg/errors"
)

// NewTree returns the code of the tree whose root has the given child
// subtrees, in any order.
func NewTree(children ...Tree) Tree {
	sorted := slices.Clone(children)
	slices.SortFunc(sorted, CompareTrees)
	n := 1
	for _, c := range sorted {
		n += len(c)
	}
	t := make(Tree, 1, n)
	t[0] = n
	for _, c := range sorted {
		t = append(t, c...)
	}
	return t
}

// NewComponent returns the code of the connected functional digraph whose
// cycle vertices, in cyclic order, are the roots of the given trees.
func NewComponent(trees ...Tree) Component {
	return MinRotation(Component(trees))
}

// NewDigraph returns the code of the functional digraph with the given
// components, in any order.
func NewDigraph(components ...Component) Digraph {
	d := Digraph(slices.Clone(components))
	slices.SortFunc(d, CompareComponents)
	return d
}

// MinRotation returns the minimal rotation of c in the fixed order. The
// result shares the trees of c.
func MinRotation(c Component) Component {
	k := len(c)
	best := 0
	for r := 1; r < k; r++ {
		for i := 0; i < k; i++ {
			d := CompareTrees(c[(r+i)%k], c[(best+i)%k])
			if d < 0 {
				best = r
			}
			if d != 0 {
				break
			}
		}
	}
	out := make(Component, 0, k)
	out = append(out, c[best:]...)
	return append(out, c[:best]...)
}

// IsMinRotation reports whether no rotation of c is strictly smaller than c.
func IsMinRotation(c Component) bool {
	k := len(c)
	for r := 1; r < k; r++ {
		for i := 0; i < k; i++ {
			d := CompareTrees(c[i], c[(i+r)%k])
			if d > 0 {
				return false
			}
			if d < 0 {
				break
			}
		}
	}
	return true
}

// Validate checks that t is a well-formed tree code: a positive size equal
// to the code length, followed by well-formed child codes that exactly fill
// it. Child order is not checked; see [Tree.IsCanonical].
func (t Tree) Validate() error {
	if len(t) == 0 {
		return errors.New(errors.ErrCodeInvalidCode, "empty tree code")
	}
	if t[0] != len(t) {
		return errors.New(errors.ErrCodeInvalidCode, "tree %v: size %d does not match code length %d", t, t[0], len(t))
	}
	for k := 1; k < len(t); {
		s := t[k]
		if s < 1 || k+s > len(t) {
			return errors.New(errors.ErrCodeInvalidCode, "tree %v: bad subtree size %d at offset %d", t, s, k)
		}
		if err := t[k : k+s].Validate(); err != nil {
			return err
		}
		k += s
	}
	return nil
}

// IsCanonical reports whether the children of every node of t appear in
// nondecreasing order. t must be valid.
func (t Tree) IsCanonical() bool {
	children := t.Children()
	for i, c := range children {
		if i > 0 && CompareTrees(children[i-1], c) > 0 {
			return false
		}
		if !c.IsCanonical() {
			return false
		}
	}
	return true
}

// Validate checks that c has at least one tree and that every tree is valid.
func (c Component) Validate() error {
	if len(c) == 0 {
		return errors.New(errors.ErrCodeInvalidCode, "component without cycle")
	}
	for _, t := range c {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsCanonical reports whether every tree of c is canonical and c is its own
// minimal rotation. c must be valid.
func (c Component) IsCanonical() bool {
	for _, t := range c {
		if !t.IsCanonical() {
			return false
		}
	}
	return IsMinRotation(c)
}

// Validate checks every component of d.
func (d Digraph) Validate() error {
	for _, c := range d {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsCanonical reports whether every component of d is canonical and the
// components appear in nondecreasing order. d must be valid.
func (d Digraph) IsCanonical() bool {
	for i, c := range d {
		if !c.IsCanonical() {
			return false
		}
		if i > 0 && CompareComponents(d[i-1], c) > 0 {
			return false
		}
	}
	return true
}
