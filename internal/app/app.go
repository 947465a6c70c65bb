package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/gmartell/ratioscope/config"
	"github.com/gmartell/ratioscope/internal/api"
	"github.com/gmartell/ratioscope/internal/service"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Loads the static dataset into memory via OpenDataset().
//   - Creates the service layer over the dataset store.
//   - Creates the HTTP handler layer and configures the router.
//   - Registers health and readiness probes.
func InitializeApp(ctx context.Context) (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// Load the dataset once; it is immutable for the process lifetime.
	// indirection for unit testing
	store, err := datasetOpener(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	svc := service.NewSeriesService(store)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	// Ready once at least one company is loaded.
	healthHandler := api.NewHealthHandler(func() error {
		if store.Len() == 0 {
			return fmt.Errorf("dataset is empty")
		}
		return nil
	})
	healthHandler.Register(router)

	// Nothing external to close; the dataset lives in memory.
	cleanup := func() {}

	return router, cleanup, nil
}
