// Package pkg provides the core libraries for funkdigen, a generator of
// functional digraphs up to isomorphism.
//
// # Overview
//
// A functional digraph on n vertices is the graph of a map f: V → V; every
// vertex has exactly one outgoing arc. Each connected component is a limit
// cycle whose vertices are the roots of rooted trees. funkdigen enumerates one
// representative of every isomorphism class with polynomial delay, building
// canonical codes bottom up instead of filtering labelled graphs.
//
// # Architecture
//
// The data flow through funkdigen:
//
//	[tree] rooted tree codes (preorder with subtree sizes)
//	         ↓
//	[component] cyclic sequences of trees, minimally rotated
//	         ↓
//	[generate] sorted multisets of components of total size n
//	         ↓
//	[graph] labelled adjacency (Render)
//	         ↓
//	[digraph6] / [nodelink] text, DOT or SVG output
//
// # Quick Start
//
//	seq, _ := generate.Digraphs(ctx, 5, generate.Options{})
//	for d := range seq {
//	    fmt.Println(digraph6.Encode(graph.Render(d), false))
//	}
//
// # Main Packages
//
// [code] - Tree, component and digraph codes with their fixed order, canonical
// checks and text parsing.
//
// [tree] - Rooted trees in increasing order (Beyer–Hedetniemi successor) and
// size-indexed pools.
//
// [component] - Connected functional digraphs, by successor or by necklaces
// over tree pools.
//
// [generate] - All functional digraphs of size n, connected mode, strategy
// selection and counting.
//
// [graph] - Labelled digraphs, rendering of codes, JSON and brute-force
// canonical forms for testing.
//
// [digraph6] - The digraph6 text format.
//
// [nodelink] - Graphviz DOT and SVG drawings.
//
// ## Infrastructure
//
// [errors] - Coded errors and exit codes.
//
// [observability] - Generation and HTTP hooks.
//
// [buildinfo] - Version information injected at build time.
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/funkdigen/pkg/tree
// [component]: https://pkg.go.dev/github.com/matzehuels/funkdigen/pkg/component
// [generate]: https://pkg.go.dev/github.com/matzehuels/funkdigen/pkg/generate
// [graph]: https://pkg.go.dev/github.com/matzehuels/funkdigen/pkg/graph
// [digraph6]: https://pkg.go.dev/github.com/matzehuels/funkdigen/pkg/digraph6
// [nodelink]: https://pkg.go.dev/github.com/matzehuels/funkdigen/pkg/nodelink
// [code]: https://pkg.go.dev/github.com/matzehuels/funkdigen/pkg/code
// [errors]: https://pkg.go.dev/github.com/matzehuels/funkdigen/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/funkdigen/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/funkdigen/pkg/buildinfo
package pkg
