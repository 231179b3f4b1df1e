package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/swaplab/swapplan/internal/server"
)

const defaultAddr = ":8080"

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the swapplan HTTP API",
		Long: `Run the HTTP API. Plans created through POST /api/v1/plans are archived
and can be fetched by ID, including rendered diagrams.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Addr
			}
			if addr == "" {
				addr = defaultAddr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the plan cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	store, err := c.newArchive(ctx)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(runner, store, c.Logger).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
