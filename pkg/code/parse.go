package code

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/matzehuels/funkdigen/pkg/errors"
)

// list is the parse tree of a bracketed, comma-separated list whose items
// are integers or nested lists.
type list struct {
	Items []*item `"[" ( @@ ( "," @@ )* )? "]"`
}

type item struct {
	Int  *int  `  @Int`
	List *list `| @@`
}

var listLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[\[\],]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var listParser = participle.MustBuild[list](
	participle.Lexer(listLexer),
)

// Parse reads the textual form of a component or a digraph code. The nesting
// depth decides which: "[[1], [2, 1]]" is a [Component] and
// "[[[1]], [[2, 1]]]" a [Digraph]; "[]" is the empty digraph. The result is
// validated but not required to be canonical.
func Parse(s string) (Code, error) {
	l, err := listParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCode, err, "parse %q", s)
	}
	if len(l.Items) == 0 {
		return Digraph{}, nil
	}
	first := l.Items[0]
	switch {
	case first.List != nil && len(first.List.Items) > 0 && first.List.Items[0].List != nil:
		return toDigraph(l)
	case first.List != nil:
		return toComponent(l)
	default:
		return nil, errors.New(errors.ErrCodeInvalidCode, "%q is a tree code, not a digraph", s)
	}
}

// ParseTree reads the textual form of a tree code.
func ParseTree(s string) (Tree, error) {
	l, err := listParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCode, err, "parse %q", s)
	}
	return toTree(l)
}

// ParseDigraph reads the textual form of a digraph code. A component code is
// accepted and returned as a one-component digraph.
func ParseDigraph(s string) (Digraph, error) {
	c, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return c.Digraph(), nil
}

func toTree(l *list) (Tree, error) {
	t := make(Tree, 0, len(l.Items))
	for _, it := range l.Items {
		if it.Int == nil {
			return nil, errors.New(errors.ErrCodeInvalidCode, "tree codes contain integers only")
		}
		t = append(t, *it.Int)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func toComponent(l *list) (Component, error) {
	c := make(Component, 0, len(l.Items))
	for _, it := range l.Items {
		if it.List == nil {
			return nil, errors.New(errors.ErrCodeInvalidCode, "component codes contain tree codes only")
		}
		t, err := toTree(it.List)
		if err != nil {
			return nil, err
		}
		c = append(c, t)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func toDigraph(l *list) (Digraph, error) {
	d := make(Digraph, 0, len(l.Items))
	for _, it := range l.Items {
		if it.List == nil {
			return nil, errors.New(errors.ErrCodeInvalidCode, "digraph codes contain component codes only")
		}
		c, err := toComponent(it.List)
		if err != nil {
			return nil, err
		}
		d = append(d, c)
	}
	return d, nil
}
