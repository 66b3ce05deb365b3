// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the service packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	httpapi "slotcheck/internal/http"
	"slotcheck/internal/platform/config"
	"slotcheck/internal/platform/httpserver"
	"slotcheck/internal/platform/logger"
	"slotcheck/internal/scheduling/handler"
	"slotcheck/internal/scheduling/metrics"
	"slotcheck/internal/scheduling/service"
	"slotcheck/internal/scheduling/service/basic"
	"slotcheck/internal/scheduling/service/collaborative"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	m := metrics.New()

	basicSvc := basic.New(basic.WithLogger(log))
	collabSvc, err := collaborative.New(basicSvc, collaborative.WithLogger(log))
	if err != nil {
		log.Error("wire collaborative validator", "error", err)
		os.Exit(1)
	}
	svc, err := service.New(basicSvc, collabSvc,
		service.WithLogger(log),
		service.WithMetrics(m),
	)
	if err != nil {
		log.Error("wire validation service", "error", err)
		os.Exit(1)
	}

	router := httpapi.NewRouter(handler.New(svc, log, cfg.MaxBatchSize))
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting slotcheck", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
