package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/funkdigen/pkg/code"
	"github.com/matzehuels/funkdigen/pkg/graph"
)

func TestToDOT(t *testing.T) {
	g := graph.Render(code.Component{{2, 1}, {1}})
	dot := ToDOT(g, Options{})

	for _, want := range []string{
		"digraph G {",
		`0 [label="0", shape=doublecircle];`,
		`1 [label="1"];`,
		`2 [label="2", shape=doublecircle];`,
		"0 -> 2;",
		"1 -> 0;",
		"2 -> 0;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	g := graph.Render(code.Component{{1}})
	dot := ToDOT(g, Options{Detailed: true})
	if !strings.Contains(dot, `label="0\n→ 0"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestToDOTNotFunctional(t *testing.T) {
	g := graph.New(2)
	g.AddArc(0, 1)
	dot := ToDOT(g, Options{})
	if strings.Contains(dot, "doublecircle") {
		t.Errorf("non-functional digraph should not mark cycles:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`
	if out != want {
		t.Errorf("normalizeViewBox() = %s, want %s", out, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("svg without viewBox changed: %s", got)
	}
}
