package main

//
//  @title           ratioscope API
//  @version         1.0
//  @description     Company valuation ratio & price time-series service.
//  @termsOfService  https://github.com/gmartell/ratioscope
//  @contact.name    API Support
//  @contact.url     https://github.com/gmartell/ratioscope
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        companies
//  @tag.description Endpoints for listing dataset companies
//
//  @tag.name        series
//  @tag.description Endpoints for querying ratio, price and market-cap series
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gmartell/ratioscope/config"
	_ "github.com/gmartell/ratioscope/docs" // swagger docs
	"github.com/gmartell/ratioscope/internal/app"
	"github.com/gmartell/ratioscope/internal/dataset"
	"github.com/gmartell/ratioscope/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// checkDataset loads the dataset and logs a per-company summary. Used as a
// pre-deploy validation of the data directory.
func checkDataset(ctx context.Context, dir string) error {
	store, err := dataset.Load(ctx, dir)
	if err != nil {
		return err
	}
	for _, code := range store.Codes() {
		series, _ := store.Company(code)
		if len(series) == 0 {
			logger.L().Warn().Str("code", code).Msg("company file has no records")
			continue
		}
		first, last := series[0].Date, series[0].Date
		for _, rec := range series {
			if rec.Date.Before(first) {
				first = rec.Date
			}
			if rec.Date.After(last) {
				last = rec.Date
			}
		}
		logger.L().Info().
			Str("code", code).
			Int("records", len(series)).
			Str("first", first.Format("2006-01-02")).
			Str("last", last.Format("2006-01-02")).
			Msg("company ok")
	}
	return nil
}

// main is the entry point of the ratioscope application.
//
// Modes (selected via --mode flag):
//   - api:   Loads the dataset and starts the REST API (default).
//   - check: Validates the dataset directory and prints a summary.
//
// Flags:
//   - --mode: Execution mode ("api" or "check"). Default: "api".
//   - --dir:  Dataset directory. Defaults to value from config (DATA_DIR).
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or check")
	dir := flag.String("dir", config.AppConfig.Dataset.Dir, "Directory with company JSON files")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	// Flag wins over config for the dataset location.
	config.AppConfig.Dataset.Dir = *dir

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp(ctx)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "check":
		logger.L().Info().Str("dir", *dir).Msg("validating dataset")
		if err := checkDataset(ctx, *dir); err != nil {
			logger.L().Fatal().Err(err).Msg("dataset validation failed")
		}
		logger.L().Info().Msg("dataset validation completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
