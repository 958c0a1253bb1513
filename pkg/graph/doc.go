// Package graph provides explicit digraphs on vertices 0..n-1 and the
// conversion from generator codes to them.
//
// The generators never materialize vertices; this package does, for the
// encoders and renderers that need arcs.
//
// # Core Types
//
//   - [Digraph]: adjacency lists over vertices 0..n-1, at most one arc per
//     ordered pair, loops allowed
//
// # Rendering Codes
//
// [Render] numbers vertices component by component in code order. Within a
// component the trees are taken in cyclic order, and within a tree the
// vertices are numbered in the preorder of its code, so vertex base+i is the
// one whose subtree size is stored at index i. Every non-root vertex gets an
// arc to its parent and the i-th root gets an arc to root (i+1) mod k, which
// for k = 1 is a loop.
//
// # Functional Digraphs
//
// A digraph is functional when every vertex has outdegree exactly 1.
// [Digraph.Function] returns the map such a digraph represents, and
// [FromFunction] goes the other way.
//
// # Serialization
//
// Digraphs use a small JSON format listing the order and the arcs:
//
//	{
//	  "order": 2,
//	  "arcs": [[0, 1], [1, 1]]
//	}
//
// # Canonical Forms
//
// [Digraph.CanonicalForm] labels a digraph by exhaustive search over vertex
// permutations. It is meant for checking generator output on small orders,
// not for production use.
package graph
