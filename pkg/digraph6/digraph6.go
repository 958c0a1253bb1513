package digraph6

import (
	"bytes"
	"io"

	"github.com/matzehuels/funkdigen/pkg/errors"
	"github.com/matzehuels/funkdigen/pkg/graph"
)

const (
	prefix = '&'
	bias   = 63
	wide   = 126

	smallMax  = 62
	mediumMax = 258047

	maxDecode = 1 << 24
)

// Append appends the digraph6 form of g, without a newline, to dst.
func Append(dst []byte, g *graph.Digraph, loopless bool) []byte {
	n := g.Order()
	dst = append(dst, prefix)
	dst = appendOrder(dst, n)

	bits := make([]byte, (n*n+5)/6)
	for u, v := range g.Arcs() {
		if loopless && u == v {
			continue
		}
		p := u*n + v
		bits[p/6] |= 1 << (5 - p%6)
	}
	for i := range bits {
		bits[i] += bias
	}
	return append(dst, bits...)
}

func appendOrder(dst []byte, n int) []byte {
	switch {
	case n <= smallMax:
		return append(dst, byte(n+bias))
	case n <= mediumMax:
		return appendGroups(append(dst, wide), n, 3)
	default:
		return appendGroups(append(dst, wide, wide), n, 6)
	}
}

func appendGroups(dst []byte, n, groups int) []byte {
	for i := groups - 1; i >= 0; i-- {
		dst = append(dst, byte((n>>(6*i))&0x3f+bias))
	}
	return dst
}

// Encode returns the digraph6 form of g without a trailing newline.
func Encode(g *graph.Digraph, loopless bool) string {
	return string(Append(nil, g, loopless))
}

// Write writes the digraph6 form of g followed by a newline.
func Write(w io.Writer, g *graph.Digraph, loopless bool) error {
	_, err := w.Write(append(Append(nil, g, loopless), '\n'))
	return err
}

// Decode parses one digraph6 line. A trailing newline is allowed.
func Decode(line []byte) (*graph.Digraph, error) {
	line = bytes.TrimRight(line, "\r\n")
	if len(line) == 0 || line[0] != prefix {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "digraph6: line must start with '&'")
	}
	n, rest, err := decodeOrder(line[1:])
	if err != nil {
		return nil, err
	}
	if n > maxDecode {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "digraph6: %d vertices is too many to decode", n)
	}
	if want := (n*n + 5) / 6; len(rest) != want {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"digraph6: %d vertices need %d matrix bytes, got %d", n, want, len(rest))
	}

	g := graph.New(n)
	for i, b := range rest {
		if b < bias || b > wide {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "digraph6: invalid byte %q", b)
		}
		x := b - bias
		for k := range 6 {
			if x&(1<<(5-k)) == 0 {
				continue
			}
			p := 6*i + k
			if p >= n*n {
				return nil, errors.New(errors.ErrCodeInvalidFormat, "digraph6: nonzero padding")
			}
			if err := g.AddArc(p/n, p%n); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "digraph6: add arc")
			}
		}
	}
	return g, nil
}

// DecodeString is Decode for strings.
func DecodeString(s string) (*graph.Digraph, error) {
	return Decode([]byte(s))
}

func decodeOrder(b []byte) (n int, rest []byte, err error) {
	groups := 0
	switch {
	case len(b) == 0:
	case b[0] < wide:
		if b[0] < bias {
			break
		}
		return int(b[0] - bias), b[1:], nil
	case b[0] > wide:
	case len(b) > 1 && b[1] == wide:
		groups, b = 6, b[2:]
	default:
		groups, b = 3, b[1:]
	}
	if groups == 0 || len(b) < groups {
		return 0, nil, errors.New(errors.ErrCodeInvalidFormat, "digraph6: invalid vertex count")
	}
	for _, c := range b[:groups] {
		if c < bias || c > wide {
			return 0, nil, errors.New(errors.ErrCodeInvalidFormat, "digraph6: invalid vertex count")
		}
		n = n<<6 | int(c-bias)
	}
	return n, b[groups:], nil
}
