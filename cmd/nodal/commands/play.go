package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/nodal/internal/app"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTickInterval = time.Second / 60
	shutdownTimeout     = 5 * time.Second
)

func (c *CLI) newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play back the frames of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ticks, _ := cmd.Flags().GetInt("ticks")
			interval, _ := cmd.Flags().GetDuration("interval")
			metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

			if err := c.loadProject(cmd); err != nil {
				return err
			}
			return c.play(cmd.Context(), app.PlayOptions{Ticks: ticks, Interval: interval}, metricsAddr)
		},
	}
	cmd.Flags().IntP("ticks", "n", 0, "Number of ticks to run (0 runs until interrupted)")
	cmd.Flags().Duration("interval", defaultTickInterval, "Time between ticks")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address while playing")
	return cmd
}

// play runs the playback loop, next to a metrics endpoint when addr is set.
func (c *CLI) play(ctx context.Context, opts app.PlayOptions, addr string) error {
	if addr == "" {
		return c.components.App.Play(ctx, opts)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", c.components.Metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: shutdownTimeout}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.With(zerr.Wrap(err, "metrics server failed"), "addr", addr)
		}
		return nil
	})
	g.Go(func() error {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		return c.components.App.Play(gctx, opts)
	})
	return g.Wait()
}
