package graph

import "github.com/matzehuels/funkdigen/pkg/code"

// Render returns the explicit functional digraph of c. See the package
// documentation for the vertex numbering.
func Render(c code.Code) *Digraph {
	d := c.Digraph()
	g := New(d.Size())
	base := 0
	for _, comp := range d {
		roots := make([]int, len(comp))
		for i, t := range comp {
			roots[i] = base
			g.treeArcs(t, base, 0)
			base += t.Size()
		}
		for i, r := range roots {
			g.addArc(r, roots[(i+1)%len(roots)])
		}
	}
	return g
}

// treeArcs adds the child -> parent arcs of the subtree stored at t[i].
func (g *Digraph) treeArcs(t code.Tree, base, i int) {
	for j := i + 1; j < i+t[i]; j += t[j] {
		g.addArc(base+j, base+i)
		g.treeArcs(t, base, j)
	}
}

// addArc appends an arc known to be new and in range.
func (g *Digraph) addArc(u, v int) {
	g.out[u] = append(g.out[u], v)
	g.size++
}
