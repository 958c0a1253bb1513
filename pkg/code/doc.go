// Package code defines the isomorphism codes of functional digraphs.
//
// # Overview
//
// A functional digraph is a digraph in which every vertex has outdegree
// exactly one. Each weakly connected component consists of a single limit
// cycle whose vertices are the roots of rooted trees. This package provides
// canonical integer-sequence representatives at the three levels of that
// structure:
//
//   - [Tree]: an unlabeled rooted tree, [n, c1, c2, ...] where n is the node
//     count and c1, c2, ... are the child codes concatenated in nondecreasing
//     order. The length of a tree code equals its size.
//   - [Component]: the trees hanging from a limit cycle, in cyclic order,
//     stored as the lexicographically minimal rotation.
//   - [Digraph]: the components of a functional digraph, nondecreasing.
//
// Two structures are isomorphic exactly when their codes are identical.
//
// # Fixed Order
//
// A single total order is shared by every generation stage. Trees compare
// lexicographically as integer sequences (shorter-is-less on a common
// prefix); since the first element is the size, this order is size-major.
// Components compare by size first and then lexicographically over their
// trees. [CompareTrees] and [CompareComponents] implement it; the
// canonicalising constructors [NewTree], [NewComponent] and [NewDigraph] sort
// with it.
//
// # Textual Form
//
// Codes print as nested bracketed lists:
//
//	Tree       [5, 4, 1, 1, 1]
//	Component  [[1], [4, 1, 1, 1]]
//	Digraph    [[[1]], [[1], [1]]]
//
// [Parse] reads the same form back.
//
// # Sharing
//
// Codes are immutable once built. Components share their tree slices and
// digraphs share their component slices; callers must not modify a code
// they did not allocate.
package code
