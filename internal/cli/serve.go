package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/homedeck/internal/server"
)

// shutdownTimeout bounds how long an in-flight request may delay exit.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the homedeck HTTP API",
		Long: `Run the homedeck HTTP API against the configured store.

The API exposes the layout operations (get, set, widget add/update/remove/
move, arrange, generate) under /api. Stop with Ctrl-C; in-flight requests
get a short grace period.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides config)")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, listen string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if listen == "" {
		listen = cfg.Listen
	}

	st, err := c.newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())

	srv := &http.Server{
		Addr:    listen,
		Handler: server.New(st, cfg.Services, c.Logger).Handler(),
	}

	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", listen, "store", cfg.Store.Backend, "services", len(cfg.Services))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
