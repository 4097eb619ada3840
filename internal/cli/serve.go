package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/swarmplot/internal/server"
	"github.com/matzehuels/swarmplot/pkg/cache"
	"github.com/matzehuels/swarmplot/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	redisAddr string // optional Redis artifact cache
	mongoURI  string // optional MongoDB gallery
	mongoDB   string // MongoDB database name
	noCache   bool   // disable the artifact cache
}

// serveCommand creates the serve command for running the HTTP rendering
// server. Without flags it serves from memory with a file-based artifact
// cache; --redis and --mongo-uri switch to shared backends.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080", mongoDB: appName}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP chart rendering server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for the artifact cache (host:port)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB URI for the chart gallery")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "MongoDB database name")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()

	artifactCache, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}
	defer artifactCache.Close()

	var gallery server.Gallery
	if opts.mongoURI != "" {
		mg, err := server.NewMongoGallery(ctx, opts.mongoURI, opts.mongoDB)
		if err != nil {
			return fmt.Errorf("connect to MongoDB: %w", err)
		}
		defer mg.Close(ctx)
		gallery = mg
		c.Logger.Info("using MongoDB gallery", "db", opts.mongoDB)
	}

	runner := pipeline.NewRunner(artifactCache, nil, c.Logger)
	srv := server.NewServer(runner, gallery, c.Logger)
	return srv.ListenAndServe(ctx, opts.addr)
}

func (c *CLI) serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.redisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, opts.redisAddr)
		if err != nil {
			return nil, fmt.Errorf("connect to Redis: %w", err)
		}
		c.Logger.Info("using Redis cache", "addr", opts.redisAddr)
		return rc, nil
	}
	return newCache(opts.noCache), nil
}
