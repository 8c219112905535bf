package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/qrgen/pkg/cache"
	"github.com/matzehuels/qrgen/pkg/pipeline"
	"github.com/matzehuels/qrgen/pkg/server"
)

// memoryCacheBytes bounds the in-process cache used when no cache directory
// is available.
const memoryCacheBytes = 64 << 20

// serveCommand creates the HTTP rendering service command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags   renderFlags
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve QR codes over HTTP",
		Long: `Serve starts an HTTP server rendering QR codes on request:

  GET /v1/qr.svg?text=hello&border=2
  GET /v1/qr.png?text=hello&scale=4&level=M

Rendering flags set the defaults for parameters a request leaves out.
Rendered artifacts are cached on disk under the cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd, cfg)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}
			noCache = noCache || cfg.Server.NoCache

			store, desc := c.serverCache(noCache)
			runner := pipeline.NewRunner(store, logger)
			runner.TTL = cfg.Server.CacheTTL.Duration
			defer runner.Close()

			printKeyValue(c.out, "Address", addr)
			printKeyValue(c.out, "Cache", desc)
			printKeyValue(c.out, "Defaults", formatDefaults(opts))

			srv := server.New(runner, logger, server.Defaults{
				Options: opts,
				MaxAge:  cfg.Server.CacheTTL.Duration,
			})
			return srv.ListenAndServe(ctx, addr)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}

// serverCache picks the artifact cache: the file cache when its directory is
// usable, an in-memory cache otherwise.
func (c *CLI) serverCache(disabled bool) (cache.Cache, string) {
	if disabled {
		return cache.NewNullCache(), "disabled"
	}
	dir, err := cacheDir()
	if err == nil {
		fc, ferr := cache.NewFileCache(dir)
		if ferr == nil {
			return fc, dir
		}
		err = ferr
	}
	printWarning(c.out, "cache directory unavailable (%v), caching in memory", err)
	return cache.NewMemoryCache(memoryCacheBytes), "memory"
}

func formatDefaults(opts pipeline.Options) string {
	s := fmt.Sprintf("scale %d, border %d, level %s", opts.Params.Scale, opts.Params.Border, opts.Level)
	if opts.MergeRuns {
		s += ", merged runs"
	}
	return s
}
