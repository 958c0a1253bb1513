package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/funkdigen/pkg/code"
	"github.com/matzehuels/funkdigen/pkg/digraph6"
	"github.com/matzehuels/funkdigen/pkg/errors"
	"github.com/matzehuels/funkdigen/pkg/graph"
	"github.com/matzehuels/funkdigen/pkg/nodelink"
)

// Output formats of the render command.
const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatJSON = "json"
)

type renderFlags struct {
	format   string
	output   string
	detailed bool
}

// renderCommand creates the render command for drawing a single digraph.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [LINE]",
		Short: "Draw one digraph as Graphviz DOT, SVG or JSON",
		Long: `Render reads one digraph, either a digraph6 line or an internal code such as
[[1], [2, 1]], from the argument or the first non-blank line of stdin, and
draws it as a node-link diagram. Vertices on a cycle are drawn as double circles.`,
		Example: `  funkdigen render '&D___P?'
  funkdigen render '[[[1]], [[2, 1]]]' --format svg -o digraph.svg
  funkdigen -c 4 | tail -1 | funkdigen render --detailed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", formatDOT, "output format: dot, svg or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&flags.detailed, "detailed", false, "label vertices with their successors")
	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, f renderFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	line, err := inputLine(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	g, err := parseDigraph(line)
	if err != nil {
		return err
	}
	logger.Debug("parsed digraph", "order", g.Order(), "arcs", g.Size(), "functional", g.IsFunctional())

	prog := newProgress(logger)
	var out []byte
	switch f.format {
	case formatDOT:
		out = []byte(nodelink.ToDOT(g, nodelink.Options{Detailed: f.detailed}))
	case formatSVG:
		out, err = nodelink.RenderSVG(ctx, nodelink.ToDOT(g, nodelink.Options{Detailed: f.detailed}))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render SVG")
		}
	case formatJSON:
		var b strings.Builder
		if err := graph.WriteJSON(g, &b); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode JSON")
		}
		out = []byte(b.String())
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (valid: dot, svg, json)", f.format)
	}

	if f.output == "" {
		if _, err := c.stdout.Write(out); err != nil {
			return errors.Wrap(errors.ErrCodeOutput, err, "write output")
		}
		return nil
	}
	if err := os.WriteFile(f.output, out, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "write %s", f.output)
	}
	prog.done(fmt.Sprintf("Rendered %s", strings.ToUpper(f.format)))
	printSuccess(c.stderr, "%s %s", StyleDim.Render(iconArrow), StyleValue.Render(f.output))
	return nil
}

// inputLine returns the argument if given, else the first non-blank line of r.
func inputLine(r io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<26)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "no digraph given on the command line or stdin")
}

// parseDigraph accepts a digraph6 line or an internal code.
func parseDigraph(line string) (*graph.Digraph, error) {
	switch {
	case strings.HasPrefix(line, "&"):
		return digraph6.DecodeString(line)
	case strings.HasPrefix(line, "["):
		c, err := code.Parse(line)
		if err != nil {
			return nil, err
		}
		return graph.Render(c), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "input is neither digraph6 nor an internal code: %q", line)
}
