package app

import (
	"context"

	"github.com/gmartell/ratioscope/config"
	"github.com/gmartell/ratioscope/internal/dataset"
)

// OpenDataset loads the per-company JSON files from the configured
// directory and returns the read-only store the API serves from.
func OpenDataset(ctx context.Context, cfg config.Config) (*dataset.Store, error) {
	return dataset.Load(ctx, cfg.Dataset.Dir)
}

// datasetOpener is an indirection used by InitializeApp; overridden in
// tests to avoid touching the filesystem.
var datasetOpener = OpenDataset
