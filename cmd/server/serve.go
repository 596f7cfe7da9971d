package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"domainwatch/internal/workers/jobrunner"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	var noScheduler bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API and run the job scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if noScheduler {
				cfg.SchedulerEnabled = false
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			if a.db != nil {
				if err := a.db.Migrate(ctx); err != nil {
					return err
				}
			}
			return serve(ctx, stop, a)
		},
	}
	cmd.Flags().BoolVar(&noScheduler, "no-scheduler", false, "serve the API only; jobs run through triggers or an external cron")
	return cmd
}

func serve(ctx context.Context, stop context.CancelFunc, a *app) error {
	var sched *jobrunner.Scheduler
	if a.cfg.SchedulerEnabled {
		sched = jobrunner.NewScheduler(a.runner, a.cfg.Location, a.schedules()...)
		if err := sched.Start(ctx); err != nil {
			return fmt.Errorf("scheduler: %w", err)
		}
		log.Infof("scheduler started with %d job(s)", len(a.schedules()))
	}

	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           a.api().Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Infof("listening on %s", a.cfg.ListenAddr)

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr = fmt.Errorf("server error: %w", err)
		}
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("http shutdown")
	}
	if sched != nil {
		sched.Wait()
	}
	return serveErr
}
