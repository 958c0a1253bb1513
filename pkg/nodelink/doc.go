// Package nodelink draws explicit digraphs as node-link diagrams.
//
// # Usage
//
// Convert a digraph to DOT, then render to SVG with Graphviz:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Vertices are circles labeled with their number. When the digraph is
// functional, vertices on a cycle are drawn as double circles so the limit
// cycles stand out from the trees hanging off them.
//
// # Options
//
//   - Detailed: label every vertex with its successors as well
//
// [RenderSVG] uses the WebAssembly build of Graphviz bundled with
// github.com/goccy/go-graphviz, so no system installation is needed.
package nodelink
