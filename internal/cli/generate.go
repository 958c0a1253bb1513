package cli

import (
	"bufio"
	"context"
	"iter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/funkdigen/pkg/code"
	"github.com/matzehuels/funkdigen/pkg/digraph6"
	"github.com/matzehuels/funkdigen/pkg/errors"
	"github.com/matzehuels/funkdigen/pkg/generate"
	"github.com/matzehuels/funkdigen/pkg/graph"
)

// checkEvery is the number of digraphs generated between checks for
// cancellation.
const checkEvery = 4096

// generateFlags holds the flags shared by the commands that run a generator.
type generateFlags struct {
	connected bool
	internal  bool
	loopless  bool
	quiet     bool
	strategy  string
}

func (f *generateFlags) register(fs *pflag.FlagSet) {
	f.registerSelection(fs)
	fs.BoolVarP(&f.internal, "internal", "i", false, "print the internal code instead of digraph6")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "count the digraphs without printing them")
}

// registerSelection registers the flags that choose what is generated and
// how digraph6 is written, without the printing flags.
func (f *generateFlags) registerSelection(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.connected, "connected", "c", false, "only generate connected digraphs")
	fs.BoolVarP(&f.loopless, "loopless", "l", false, "drop loops from digraph6 output")
	fs.StringVar(&f.strategy, "strategy", "", "generation strategy: successor or pooled (default from config)")
}

// options resolves the flags against the configuration.
func (c *CLI) options(cmd *cobra.Command, f generateFlags) (generate.Options, bool, error) {
	strategy := f.strategy
	if strategy == "" {
		strategy = c.config.Strategy
	}
	s, err := generate.ParseStrategy(strategy)
	if err != nil {
		return generate.Options{}, false, err
	}
	loopless := c.config.Loopless
	if cmd.Flags().Changed("loopless") {
		loopless = f.loopless
	}
	return generate.Options{Connected: f.connected, Strategy: s}, loopless, nil
}

// runGenerate writes every digraph of size n to stdout and the summary
// line to stderr.
func (c *CLI) runGenerate(cmd *cobra.Command, n int, f generateFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	opts, loopless, err := c.options(cmd, f)
	if err != nil {
		return err
	}
	seq, err := generate.Digraphs(ctx, n, opts)
	if err != nil {
		return err
	}
	logger.Debug("generating", "size", n, "mode", opts.Mode(), "strategy", opts.Strategy,
		"internal", f.internal, "loopless", loopless)

	start := time.Now()
	count, err := c.writeAll(ctx, seq, f, loopless)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	printSummary(c.stderr, count, elapsed)
	return nil
}

func (c *CLI) writeAll(ctx context.Context, seq iter.Seq[code.Code], f generateFlags, loopless bool) (uint64, error) {
	w := bufio.NewWriterSize(c.stdout, 64*1024)
	var (
		count uint64
		line  []byte
		err   error
	)
	for d := range seq {
		count++
		if count%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return count, err
			}
		}
		if f.quiet {
			continue
		}
		if f.internal {
			line = append(append(line[:0], d.String()...), '\n')
		} else {
			line = append(digraph6.Append(line[:0], graph.Render(d), loopless), '\n')
		}
		if _, err = w.Write(line); err != nil {
			return count, errors.Wrap(errors.ErrCodeOutput, err, "write digraph %d", count)
		}
	}
	if err = w.Flush(); err != nil {
		return count, errors.Wrap(errors.ErrCodeOutput, err, "flush output")
	}
	return count, nil
}
