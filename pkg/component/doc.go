// Package component enumerates connected functional digraphs up to
// isomorphism.
//
// A connected functional digraph is a limit cycle of length k whose vertices
// are the roots of k rooted trees. Its [code.Component] lists the tree codes
// in cyclic order, minimally rotated. Two constructions are provided; they
// produce the same set of codes in different orders.
//
// # Successor Order
//
// [Successors] starts from the n-cycle of single-vertex trees ([Cycle]) and
// repeatedly applies [Next], which derives the following component by
// merging a run of trees into one (the lexicographically minimal valid
// merge) or, when no merge applies, by splitting the first
// non-trivial tree back into its root and children and merging again further
// right. A merge is valid when the merged run starts with a single-vertex
// tree, is sorted, yields its own minimal rotation, and splits back into the
// component it came from; validity makes the successor relation a spanning
// tree over the components of size n, so every code is reached exactly once.
// This is the order printed by the command line tool.
//
// # Necklace Construction
//
// [Necklaces] builds codes position by position over the alphabet of tree
// codes (drawn from [tree.Generator] pools), keeping only prenecklace
// prefixes: a candidate at position t must be at least the tree at position
// t-p, where p is the period of the longest Lyndon prefix so far. A sequence
// of length k is accepted when p divides k and the tree sizes add up to n.
//
// Neither construction tests isomorphism or discards duplicates.
package component
