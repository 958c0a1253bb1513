package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/funkdigen/internal/server"
	"github.com/matzehuels/funkdigen/pkg/generate"
)

type serveFlags struct {
	addr       string
	maxSize    int
	countCache int
}

// serveCommand creates the serve command for the HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generators over HTTP",
		Long: `Serve starts an HTTP service with the routes

  GET /health
  GET /digraphs/{size}?connected=&internal=&loopless=&strategy=&format=text|json
  GET /count/{size}?connected=&strategy=

Sizes above --max-size are rejected. Counts are cached in memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().IntVar(&flags.maxSize, "max-size", -1, "largest size a request may ask for (default from config)")
	cmd.Flags().IntVar(&flags.countCache, "count-cache", 0, "number of counts kept in memory (default from config)")
	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, f serveFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg := c.config.Serve
	if f.addr != "" {
		cfg.Addr = f.addr
	}
	if f.maxSize >= 0 {
		cfg.MaxSize = f.maxSize
	}
	if f.countCache > 0 {
		cfg.CountCache = f.countCache
	}

	srv, err := server.New(server.Options{
		MaxSize:    cfg.MaxSize,
		CountCache: cfg.CountCache,
		Strategy:   generate.Strategy(c.config.Strategy),
		Loopless:   c.config.Loopless,
	}, logger)
	if err != nil {
		return err
	}

	printKeyValue(c.stderr, "address", cfg.Addr)
	printKeyValue(c.stderr, "max size", strconv.Itoa(cfg.MaxSize))
	return srv.ListenAndServe(ctx, cfg.Addr)
}
