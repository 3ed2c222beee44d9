package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/netresearch/go-cronnext"
	"github.com/netresearch/go-cronnext/internal/config"
	"github.com/netresearch/go-cronnext/internal/logging"
	"github.com/netresearch/go-cronnext/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP preview API",
		Long:  "Serves next execution times and expression analysis as JSON for settings UIs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, a, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "address to listen on (default from config)")
	return cmd
}

func runServe(cmd *cobra.Command, a *app, addr string) error {
	if addr == "" {
		addr = a.cfg.Server.Addr
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			fmt.Fprintf(cmd.OutOrStdout(), "\nReceived %s, shutting down...\n", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var updates chan *cronnext.Calculator
	if a.cfg.Server.Watch {
		updates = make(chan *cronnext.Calculator, 1)
		go a.watchConfig(ctx, updates)
	}

	return server.Start(ctx, server.Options{
		Calculator: a.calculator(nil),
		Addr:       addr,
		MaxCount:   a.cfg.Server.MaxCount,
		Logger:     &a.log,
		Out:        cmd.OutOrStdout(),
		RatePerSec: a.cfg.Server.RatePerSec,
		Burst:      a.cfg.Server.Burst,
		Updates:    updates,
	})
}

// watchConfig sends a fresh calculator on updates whenever the config file
// changes. Only location and search_limit take effect without a restart.
func (a *app) watchConfig(ctx context.Context, updates chan<- *cronnext.Calculator) {
	w := config.NewWatcher(a.configPath)
	w.OnChange = func(cfg *config.Config) {
		a.log.Info().
			Str("path", a.configPath).
			Str("location", cfg.TimeLocation().String()).
			Int("search_limit", cfg.SearchLimit).
			Msg("config reloaded")
		calc := cronnext.New(
			cronnext.WithLocation(cfg.TimeLocation()),
			cronnext.WithSearchLimit(cfg.SearchLimit),
			cronnext.WithLogger(logging.NewAdapter(a.log)),
		)
		select {
		case updates <- calc:
		case <-ctx.Done():
		}
	}
	w.OnError = func(err error) {
		a.log.Warn().Err(err).Str("path", a.configPath).Msg("config reload failed")
	}
	if err := w.Run(ctx); err != nil {
		a.log.Error().Err(err).Msg("config watcher stopped")
	}
}
