package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/puzzletools/puzzgen/pkg/cache"
	"github.com/puzzletools/puzzgen/pkg/server"
	"github.com/puzzletools/puzzgen/pkg/store"
)

// shutdownTimeout bounds how long in-flight requests may run after an
// interrupt.
const shutdownTimeout = 5 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string // listen address
	redisURL string // Redis URL for the shared render cache
	mongoURL string // MongoDB URI for persistent puzzle storage
	noCache  bool   // disable render caching
}

// serveCommand creates the serve command running the HTTP preview server.
//
// By default the server keeps saved puzzles in memory and caches renders on
// disk. Pointing --redis-url and --mongo-url at real backends turns it into
// a shared, persistent service.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP preview server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "Redis URL for the render cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().StringVar(&opts.mongoURL, "mongo-url", "", "MongoDB URI for persistent storage (e.g. mongodb://localhost:27017)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable render caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	renderCache, err := c.newServeCache(ctx, opts)
	if err != nil {
		return err
	}
	defer renderCache.Close()

	puzzleStore, err := c.newServeStore(ctx, opts)
	if err != nil {
		return err
	}
	defer puzzleStore.Close(context.WithoutCancel(ctx))

	srv := &http.Server{
		Addr: opts.addr,
		Handler: server.New(
			server.WithLogger(c.Logger),
			server.WithCache(renderCache),
			server.WithStore(puzzleStore),
		).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr)
		printInfo("Preview at %s", StyleLink.Render("http://localhost"+opts.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// newServeCache picks the render cache backend: Redis when configured, the
// local file cache otherwise.
func (c *CLI) newServeCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.redisURL != "" {
		c.Logger.Info("using redis render cache")
		return cache.NewRedisCache(ctx, opts.redisURL)
	}
	return newRenderCache(opts.noCache)
}

// newServeStore picks the puzzle store backend: MongoDB when configured, an
// in-memory store otherwise.
func (c *CLI) newServeStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	if opts.mongoURL != "" {
		c.Logger.Info("using mongodb puzzle store")
		return store.NewMongoStore(ctx, opts.mongoURL)
	}
	return store.NewMemoryStore(), nil
}
