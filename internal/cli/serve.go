package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/dr-livesey/treemat/internal/api"
	"github.com/dr-livesey/treemat/pkg/cache"
)

// serveCommand creates the serve command: run the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tree conversion API over HTTP",
		Long: `Serve the HTTP API: POST /v1/convert, POST /v1/matrix, POST /v1/render
and GET /healthz. With a Redis address (flag or config file), rendered
artifacts are cached in Redis; otherwise caching is disabled.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Listen
			}
			if redisAddr == "" {
				redisAddr = cfg.RedisAddr
			}

			ctx := cmd.Context()

			artifacts := cache.Cache(cache.NewNullCache())
			if redisAddr != "" {
				artifacts, err = cache.NewRedisCache(ctx, redisAddr)
				if err != nil {
					return err
				}
				c.Logger.Info("artifact cache enabled", "redis", redisAddr)
			}
			defer artifacts.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           api.New(c.Registry, artifacts, c.Logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			c.Logger.Info("listening", "addr", addr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for the artifact cache")

	return cmd
}
