package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// document is the JSON form of a Digraph.
type document struct {
	Order int      `json:"order"`
	Arcs  [][2]int `json:"arcs"`
}

// MarshalJSON encodes g as {"order": n, "arcs": [[u, v], ...]}.
func (g *Digraph) MarshalJSON() ([]byte, error) {
	doc := document{Order: g.Order(), Arcs: make([][2]int, 0, g.Size())}
	for u, v := range g.Arcs() {
		doc.Arcs = append(doc.Arcs, [2]int{u, v})
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes the form written by MarshalJSON, rejecting arcs
// whose endpoints are out of range.
func (g *Digraph) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Order < 0 {
		return fmt.Errorf("negative order %d", doc.Order)
	}
	h := New(doc.Order)
	for _, a := range doc.Arcs {
		if err := h.AddArc(a[0], a[1]); err != nil {
			return err
		}
	}
	*g = *h
	return nil
}

// WriteJSON writes g as indented JSON to w.
func WriteJSON(g *Digraph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a digraph from r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Digraph, error) {
	var g Digraph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &g, nil
}

// ReadJSONFile reads a digraph from the JSON file at path.
func ReadJSONFile(path string) (*Digraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
