package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"elenavasquez.com/internal/handlers"
	"elenavasquez.com/internal/services"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr   string
		public string
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("addr") {
				a.cfg.ServerAddr = addr
			}
			if flags.Changed("public") {
				a.cfg.PublicDir = public
			}
			if flags.Changed("watch") {
				a.cfg.Watch = watch
			}
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&public, "public", "public", "directory served under /images")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the content file when it changes")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	site, err := a.site()
	if err != nil {
		return err
	}
	sites := services.NewSiteService(site)

	srv := &http.Server{
		Addr:              a.cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(a.cfg, sites, a.logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("server listening", zap.String("addr", srv.Addr), zap.Int("projects", len(site.Projects)))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down", zap.Duration("timeout", a.cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if a.cfg.Watch {
		if a.cfg.ContentPath == "" {
			a.logger.Warn("watch requested with built-in content, nothing to watch")
		} else {
			watcher := services.NewWatcher(a.cfg.ContentPath, sites, a.logger)
			g.Go(func() error {
				return watcher.Run(gctx)
			})
		}
	}

	return g.Wait()
}
