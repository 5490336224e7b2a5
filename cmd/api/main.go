package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DvijDesai0102/CSC210-Project/internal/app"
	"github.com/DvijDesai0102/CSC210-Project/internal/appconf"
	"github.com/DvijDesai0102/CSC210-Project/internal/logging"
)

func main() {
	var apiKeysFlag, envFlag, logLevel string
	cfg := appconf.Default()

	flag.IntVar(&cfg.Port, "port", appconf.DefaultPort, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", appconf.DefaultRateLimit, "Requests per second per API key (negative disables limiting)")
	flag.StringVar(&cfg.NetworkFile, "network", "", "YAML bus network definition (built-in network when empty)")
	flag.StringVar(&cfg.DistancesFile, "distances", "", "CSV of known stop distances")
	flag.StringVar(&cfg.GtfsFile, "gtfs", "", "Path or URL of a static GTFS zip to build the bus network from")
	flag.DurationVar(&cfg.RouteCacheTTL, "route-cache-ttl", appconf.DefaultRouteCacheTTL, "How long bus plans are cached (0 disables)")
	flag.DurationVar(&cfg.RouteTimeout, "route-timeout", appconf.DefaultRouteTimeout, "Longest a bus route search may run (0 disables)")
	flag.IntVar(&cfg.StopLimit, "stop-limit", appconf.DefaultStopLimit, "Largest number of stops a loaded network may serve (0 disables)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	cfg.ApiKeys = appconf.ParseAPIKeys(apiKeysFlag)

	logger := logging.NewStructuredLogger(os.Stdout, logging.ParseLevel(logLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to initialize application", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      newHandler(application),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	if err := run(ctx, srv, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

// run serves until ctx is cancelled, then gives in-flight requests a few seconds to finish.
func run(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
