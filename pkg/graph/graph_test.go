package graph

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/funkdigen/pkg/code"
)

func arcs(g *Digraph) [][2]int {
	var out [][2]int
	for u, v := range g.Arcs() {
		out = append(out, [2]int{u, v})
	}
	return out
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		code code.Code
		want [][2]int
	}{
		{
			name: "Empty",
			code: code.Digraph{},
			want: nil,
		},
		{
			name: "Loop",
			code: code.Component{{1}},
			want: [][2]int{{0, 0}},
		},
		{
			name: "LoopsAndTwoCycle",
			code: code.Digraph{{{1}}, {{1}}, {{1}}, {{1}, {1}}},
			want: [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 4}, {4, 3}},
		},
		{
			name: "RootedStar",
			code: code.Digraph{{{5, 1, 1, 1, 1}}},
			want: [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}},
		},
		{
			name: "PathIntoTwoCycle",
			code: code.Component{{3, 2, 1}, {1}},
			want: [][2]int{{0, 3}, {1, 0}, {2, 1}, {3, 0}},
		},
		{
			name: "PreorderNumbering",
			code: code.Component{{5, 1, 3, 1, 1}},
			want: [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 2}, {4, 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Render(tt.code)
			if g.Order() != tt.code.Size() {
				t.Errorf("Order() = %d, want %d", g.Order(), tt.code.Size())
			}
			if got := arcs(g); !slices.Equal(got, tt.want) {
				t.Errorf("arcs = %v, want %v", got, tt.want)
			}
			if !g.IsFunctional() {
				t.Error("rendered digraph is not functional")
			}
		})
	}
}

func TestRenderComponents(t *testing.T) {
	d := code.Digraph{{{1}}, {{2, 1}}, {{1}, {3, 1, 1}}}
	g := Render(d)
	comps := g.Components()
	if len(comps) != len(d) {
		t.Fatalf("got %d components, want %d", len(comps), len(d))
	}
	want := [][]int{{0}, {1, 2}, {3, 4, 5, 6}}
	for i := range want {
		if !slices.Equal(comps[i], want[i]) {
			t.Errorf("component %d = %v, want %v", i, comps[i], want[i])
		}
	}
	if g.WeaklyConnected() {
		t.Error("WeaklyConnected() = true for three components")
	}
	if !Render(d[2]).WeaklyConnected() {
		t.Error("a single component should be connected")
	}
}

func TestCycleVertices(t *testing.T) {
	g := Render(code.Component{{3, 2, 1}, {1}})
	want := []bool{true, false, false, true}
	if got := g.CycleVertices(); !slices.Equal(got, want) {
		t.Errorf("CycleVertices() = %v, want %v", got, want)
	}

	g = New(2)
	g.AddArc(0, 1)
	if g.CycleVertices() != nil {
		t.Error("CycleVertices() should be nil for a non-functional digraph")
	}
}

func TestAddArc(t *testing.T) {
	g := New(3)
	if err := g.AddArc(0, 1); err != nil {
		t.Fatalf("AddArc: %v", err)
	}
	if err := g.AddArc(0, 1); err != nil {
		t.Fatalf("AddArc duplicate: %v", err)
	}
	if g.Size() != 1 {
		t.Errorf("Size() = %d after duplicate arc, want 1", g.Size())
	}
	for _, a := range [][2]int{{-1, 0}, {0, 3}, {3, 3}} {
		if err := g.AddArc(a[0], a[1]); !errors.Is(err, ErrVertexRange) {
			t.Errorf("AddArc(%d, %d) error = %v, want ErrVertexRange", a[0], a[1], err)
		}
	}
	if !g.HasArc(0, 1) || g.HasArc(1, 0) || g.HasArc(5, 0) {
		t.Error("HasArc reports wrong arcs")
	}
	if g.HasLoops() {
		t.Error("HasLoops() = true without loops")
	}
}

func TestFunction(t *testing.T) {
	f := []int{1, 1, 0}
	g, err := FromFunction(f)
	if err != nil {
		t.Fatalf("FromFunction: %v", err)
	}
	got, ok := g.Function()
	if !ok || !slices.Equal(got, f) {
		t.Errorf("Function() = %v, %v; want %v, true", got, ok, f)
	}
	if _, err := FromFunction([]int{0, 2}); !errors.Is(err, ErrVertexRange) {
		t.Errorf("FromFunction out of range error = %v", err)
	}

	g = New(2)
	g.AddArc(0, 0)
	if _, ok := g.Function(); ok {
		t.Error("Function() should fail when a vertex has no successor")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := Render(code.Component{{3, 2, 1}, {1}})
	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"order": 4`) {
		t.Errorf("JSON missing order: %s", buf.String())
	}
	h, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !g.Equal(h) {
		t.Errorf("round trip = %v, want %v", arcs(h), arcs(g))
	}
}

func TestReadJSONErrors(t *testing.T) {
	for _, in := range []string{
		`{"order": 2, "arcs": [[0, 2]]}`,
		`{"order": -1}`,
		`{"order": "two"}`,
		`not json`,
	} {
		if _, err := ReadJSON(strings.NewReader(in)); err == nil {
			t.Errorf("ReadJSON(%s) succeeded", in)
		}
	}
}

func TestPermutations(t *testing.T) {
	seen := map[string]bool{}
	for p := range Permutations(4) {
		seen[fmt.Sprint(p)] = true
	}
	if len(seen) != 24 {
		t.Errorf("Permutations(4) yielded %d distinct permutations, want 24", len(seen))
	}

	count := 0
	for p := range Permutations(0) {
		if len(p) != 0 {
			t.Errorf("Permutations(0) yielded %v", p)
		}
		count++
	}
	if count != 1 {
		t.Errorf("Permutations(0) yielded %d permutations, want 1", count)
	}
}

func TestIsomorphic(t *testing.T) {
	a, _ := FromFunction([]int{1, 1})
	b, _ := FromFunction([]int{0, 0})
	c, _ := FromFunction([]int{0, 1})
	if !Isomorphic(a, b) {
		t.Error("a loop with one pendant vertex should be isomorphic under relabeling")
	}
	if Isomorphic(a, c) {
		t.Error("two loops are not isomorphic to a loop with a pendant vertex")
	}

	// Every tree order of a component renders to isomorphic digraphs.
	x := Render(code.Component{{1}, {2, 1}, {1}})
	y := Render(code.Component{{2, 1}, {1}, {1}})
	if !Isomorphic(x, y) {
		t.Error("rotations of a cycle should be isomorphic")
	}
}
