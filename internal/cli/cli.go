// Package cli implements the funkdigen command-line interface.
//
// The root command generates functional digraphs of a given size and writes
// one line per digraph to stdout, followed by a summary line on stderr.
// Subcommands draw a single digraph (render), step through the stream
// interactively (browse) and serve the generators over HTTP (serve).
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/funkdigen/internal/config"
	"github.com/matzehuels/funkdigen/pkg/buildinfo"
	"github.com/matzehuels/funkdigen/pkg/errors"
	"github.com/matzehuels/funkdigen/pkg/observability"
)

// appName is the application name used for commands and display.
const appName = "funkdigen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool
	config     *config.Config
}

// New creates a CLI writing results to stdout and logs and diagnostics to
// stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		stdout: stdout,
		stderr: stderr,
	}
}

// SetInput replaces the reader commands take input from (default os.Stdin).
func (c *CLI) SetInput(r io.Reader) {
	c.stdin = r
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Execute runs the command line given by args. Errors are reported on
// stderr, with usage text for argument errors, and returned for the caller
// to turn into an exit status.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{}
	}
	root := c.RootCommand()
	root.SetArgs(args)
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil || stderrors.Is(err, context.Canceled) {
		return err
	}
	printError(c.stderr, "%s", errors.UserMessage(err))
	if errors.IsUsage(err) {
		fmt.Fprint(c.stderr, "\n"+cmd.UsageString())
	}
	return err
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var flags generateFlags

	root := &cobra.Command{
		Use:   appName + " [flags] SIZE",
		Short: "Generate functional digraphs up to isomorphism",
		Long: `funkdigen generates every functional digraph on SIZE vertices exactly once up to
isomorphism, with polynomial delay, and prints one per line in digraph6 format.

A functional digraph has exactly one arc leaving each vertex. Each connected
component is a cycle of rooted trees.`,
		Example: `  funkdigen 5              # the 47 digraphs on 5 vertices, digraph6
  funkdigen -c -i 4        # connected ones only, as nested lists
  funkdigen -q 10          # count only`,
		Version:       buildinfo.Version,
		Args:          sizeArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := strconv.Atoi(args[0])
			return c.runGenerate(cmd, n, flags)
		},
	}

	if c.stdin != nil {
		root.SetIn(c.stdin)
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)
	root.SetVersionTemplate(buildinfo.Template())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", err.Error())
	})

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/funkdigen/config.toml)")

	f := root.Flags()
	f.BoolP("version", "V", false, "print version information")
	flags.register(f)

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration, applies --verbose and attaches the logger
// to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}
	hooks := &logHooks{logger: c.Logger}
	observability.SetGenerationHooks(hooks)
	observability.SetHTTPHooks(hooks)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("configuration loaded", "strategy", cfg.Strategy, "loopless", cfg.Loopless)
	return nil
}

// sizeArgs accepts exactly one nonnegative integer.
func sizeArgs(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "expected exactly one SIZE argument, got %d", len(args))
	}
	return checkSize(args[0])
}

func checkSize(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return errors.New(errors.ErrCodeInvalidSize, "SIZE must be a nonnegative integer, got %q", s)
	}
	return nil
}
