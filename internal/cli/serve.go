package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/overlaykit/internal/server"
	"github.com/matzehuels/overlaykit/pkg/cache"
	"github.com/matzehuels/overlaykit/pkg/observability"
	"github.com/matzehuels/overlaykit/pkg/pipeline"
	"github.com/matzehuels/overlaykit/pkg/store"
)

// serveOpts holds the flags of the serve command. Empty values fall back to
// the config file.
type serveOpts struct {
	addr     string
	redis    string
	mongo    string
	database string
	storeDir string
	noCache  bool
}

func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP positioning service",
		Example: `  overlaykit serve --addr :9000
  overlaykit serve --redis redis://localhost:6379/0 --mongo mongodb://localhost:27017`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis URL for the shared result cache")
	cmd.Flags().StringVar(&opts.mongo, "mongo", "", "MongoDB URI for the scene store")
	cmd.Flags().StringVar(&opts.database, "mongo-db", "", "MongoDB database (default overlaykit)")
	cmd.Flags().StringVar(&opts.storeDir, "store-dir", "", "keep scenes as JSON files in this directory")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

// merge fills unset flags from cfg.
func (o serveOpts) merge(cfg *Config) serveOpts {
	if o.addr == "" {
		o.addr = cfg.Server.Addr
	}
	if o.redis == "" {
		o.redis = cfg.Cache.Redis
	}
	if o.mongo == "" {
		o.mongo = cfg.Store.Mongo
	}
	if o.database == "" {
		o.database = cfg.Store.Database
	}
	if o.storeDir == "" {
		o.storeDir = cfg.Store.Dir
	}
	return o
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	opts = opts.merge(cfg)
	observability.SetHTTPHooks(observability.NewLogHooks(c.Logger))

	rc, keyer, err := c.serverCache(ctx, cfg, opts)
	if err != nil {
		return err
	}
	st, err := c.serverStore(ctx, opts)
	if err != nil {
		_ = rc.Close()
		return err
	}

	srv := server.New(server.Config{
		Addr:         opts.addr,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
		Runner:       pipeline.NewRunner(rc, keyer, c.Logger),
		Store:        st,
		Logger:       c.Logger,
	})
	defer srv.Close()

	return srv.ListenAndServe(ctx)
}

// serverCache picks Redis when configured, else the file cache.
func (c *CLI) serverCache(ctx context.Context, cfg *Config, opts serveOpts) (cache.Cache, cache.Keyer, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil, nil
	}
	if opts.redis != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{URL: opts.redis, DialTimeout: 5 * time.Second})
		if err != nil {
			return nil, nil, err
		}
		c.Logger.Info("using redis cache")
		return rc, cache.NewScopedKeyer(nil, appName+":"), nil
	}
	fc, err := newCache(cfg.Cache.Dir, false)
	return fc, nil, err
}

// serverStore picks MongoDB, a directory, or memory, in that order.
func (c *CLI) serverStore(ctx context.Context, opts serveOpts) (store.Store, error) {
	switch {
	case opts.mongo != "":
		c.Logger.Info("using mongo scene store", "database", opts.database)
		return store.NewMongoStore(ctx, store.MongoConfig{URI: opts.mongo, Database: opts.database})
	case opts.storeDir != "":
		c.Logger.Info("using file scene store", "dir", opts.storeDir)
		return store.NewFileStore(opts.storeDir)
	default:
		return store.NewMemoryStore(), nil
	}
}
