package generate

import (
	"iter"
	"slices"

	"github.com/matzehuels/funkdigen/pkg/code"
	"github.com/matzehuels/funkdigen/pkg/component"
)

// pooled yields the digraphs of size n as nondecreasing selections from the
// sorted component pools of every size below n, followed by the connected
// digraphs of size n streamed straight from the necklace construction.
// Pools are retained for the duration of one pass.
func pooled(n int) iter.Seq[code.Digraph] {
	return func(yield func(code.Digraph) bool) {
		if n == 0 {
			yield(code.Digraph{})
			return
		}
		p := &picker{
			necklaces: component.NewNecklaces(nil),
			n:         n,
			buf:       make(code.Digraph, 0, n),
			yield:     yield,
		}
		if !p.pick(n, 1, 0) {
			return
		}
		for c := range p.necklaces.Components(n) {
			if !yield(code.Digraph{c}) {
				return
			}
		}
	}
}

type picker struct {
	necklaces *component.Necklaces
	n         int
	buf       code.Digraph
	yield     func(code.Digraph) bool
}

// pick extends buf with components of at least (size, idx) in pool order
// until budget vertices are used. Every remainder left after a pick is either
// zero or large enough to hold another component of the same size, so no
// branch dies without output.
func (p *picker) pick(budget, size, idx int) bool {
	if budget == 0 {
		return p.yield(slices.Clone(p.buf))
	}
	for s := size; s <= budget && s < p.n; s++ {
		if rest := budget - s; rest != 0 && rest < s {
			continue
		}
		pool := p.necklaces.Pool(s)
		start := 0
		if s == size {
			start = idx
		}
		for i := start; i < len(pool); i++ {
			p.buf = append(p.buf, pool[i])
			ok := p.pick(budget-s, s, i)
			p.buf = p.buf[:len(p.buf)-1]
			if !ok {
				return false
			}
		}
	}
	return true
}
