// Package appwrite implements the destination document store on top of the
// Appwrite Databases service.
package appwrite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/appwrite/sdk-for-go/appwrite"
	"github.com/appwrite/sdk-for-go/client"
	"github.com/appwrite/sdk-for-go/databases"
	"github.com/appwrite/sdk-for-go/permission"
	"github.com/appwrite/sdk-for-go/role"
	"github.com/mnovakovic/wp-appwrite-sync/internal/domain"
	"github.com/mnovakovic/wp-appwrite-sync/internal/store"
)

type Config struct {
	Endpoint     string
	ProjectID    string
	APIKey       string
	DatabaseID   string
	CollectionID string
}

type Store struct {
	db  *databases.Databases
	cfg Config
}

func NewStore(cfg Config) *Store {
	c := appwrite.NewClient(
		appwrite.WithEndpoint(cfg.Endpoint),
		appwrite.WithProject(cfg.ProjectID),
		appwrite.WithKey(cfg.APIKey),
	)

	return &Store{
		db:  appwrite.NewDatabases(c),
		cfg: cfg,
	}
}

// GetArticle performs a point read for the document key. A 404 is a clean
// miss; any other failure is reported as LookupFailed with the cause attached.
func (s *Store) GetArticle(_ context.Context, documentID string) store.Lookup {
	_, err := s.db.GetDocument(s.cfg.DatabaseID, s.cfg.CollectionID, documentID)
	if err == nil {
		return store.Lookup{Status: store.Found}
	}

	var aerr *client.AppwriteError
	if errors.As(err, &aerr) && aerr.GetStatusCode() == http.StatusNotFound {
		return store.Lookup{Status: store.NotFound}
	}

	return store.Lookup{Status: store.LookupFailed, Err: err}
}

// CreateArticle writes the record under its document key with a public read
// grant. A key collision surfaces as an error here, which is what keeps
// re-runs duplicate-free even when the pre-write existence check was wrong.
func (s *Store) CreateArticle(_ context.Context, documentID string, article domain.Article) error {
	_, err := s.db.CreateDocument(
		s.cfg.DatabaseID,
		s.cfg.CollectionID,
		documentID,
		article,
		s.db.WithCreateDocumentPermissions([]string{
			permission.Read(role.Any()),
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create document %s: %w", documentID, err)
	}

	slog.Debug("document created", "document_id", documentID, "collection_id", s.cfg.CollectionID)
	return nil
}
