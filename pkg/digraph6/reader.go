package digraph6

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"

	"github.com/matzehuels/funkdigen/pkg/graph"
)

// Reader decodes digraph6 lines from a stream. Blank lines are skipped.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader returns a Reader reading from r. Lines may be arbitrarily long.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)
	return &Reader{sc: sc}
}

// Read decodes the next digraph. It returns io.EOF when the stream is
// exhausted. Decode errors carry the line number.
func (r *Reader) Read() (*graph.Digraph, error) {
	for r.sc.Scan() {
		r.line++
		b := bytes.TrimSpace(r.sc.Bytes())
		if len(b) == 0 {
			continue
		}
		g, err := Decode(b)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}
		return g, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// All yields every remaining digraph. Iteration stops
// after the first error, which is yielded with a nil digraph.
func (r *Reader) All() iter.Seq2[*graph.Digraph, error] {
	return func(yield func(*graph.Digraph, error) bool) {
		for {
			g, err := r.Read()
			if err == io.EOF {
				return
			}
			if !yield(g, err) || err != nil {
				return
			}
		}
	}
}
