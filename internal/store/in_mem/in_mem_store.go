package in_mem

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mnovakovic/wp-appwrite-sync/internal/domain"
	"github.com/mnovakovic/wp-appwrite-sync/internal/store"
)

// InMemStore is a map-backed document store used for dry runs and tests. It
// mirrors the destination's key semantics: creating an existing key fails.
type InMemStore struct {
	storageLock sync.RWMutex
	documents   map[string]domain.Article
}

func NewStore() *InMemStore {
	return &InMemStore{
		documents: make(map[string]domain.Article),
	}
}

func (s *InMemStore) GetArticle(_ context.Context, documentID string) store.Lookup {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	if _, ok := s.documents[documentID]; ok {
		return store.Lookup{Status: store.Found}
	}
	return store.Lookup{Status: store.NotFound}
}

func (s *InMemStore) CreateArticle(_ context.Context, documentID string, article domain.Article) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, ok := s.documents[documentID]; ok {
		return fmt.Errorf("document %s already exists", documentID)
	}

	s.documents[documentID] = article
	slog.Debug("document stored in memory", "document_id", documentID)
	return nil
}

// Document returns a stored record by key, for assertions in tests.
func (s *InMemStore) Document(documentID string) (domain.Article, bool) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	article, ok := s.documents[documentID]
	return article, ok
}

func (s *InMemStore) Len() int {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	return len(s.documents)
}
