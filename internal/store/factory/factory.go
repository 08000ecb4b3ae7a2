// Package factory selects the destination store backend for a run.
package factory

import (
	"log/slog"

	"github.com/mnovakovic/wp-appwrite-sync/internal/config"
	"github.com/mnovakovic/wp-appwrite-sync/internal/store"
	"github.com/mnovakovic/wp-appwrite-sync/internal/store/appwrite"
	"github.com/mnovakovic/wp-appwrite-sync/internal/store/in_mem"
)

// NewDocumentStore returns the Appwrite-backed store, or the in-memory one
// when the run is a dry run.
func NewDocumentStore(cfg *config.Config) store.DocumentStore {
	if cfg.DryRun {
		slog.Info("dry run enabled, using in-memory document store")
		return in_mem.NewStore()
	}

	return appwrite.NewStore(appwrite.Config{
		Endpoint:     cfg.AppwriteEndpoint,
		ProjectID:    cfg.AppwriteProjectID,
		APIKey:       cfg.AppwriteAPIKey,
		DatabaseID:   cfg.DatabaseID,
		CollectionID: cfg.CollectionID,
	})
}
