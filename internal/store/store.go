package store

import (
	"context"

	"github.com/mnovakovic/wp-appwrite-sync/internal/domain"
)

type LookupStatus int

const (
	Found LookupStatus = iota
	NotFound
	LookupFailed
)

// Lookup is the outcome of a point read for a document key. A failed
// retrieval is reported distinctly from a clean miss; callers decide whether
// the two are equivalent for their purposes.
type Lookup struct {
	Status LookupStatus
	Err    error
}

// DocumentStore is the destination side of the sync: point reads and creates
// keyed by the deterministic wp_<id> document id.
type DocumentStore interface {
	GetArticle(ctx context.Context, documentID string) Lookup
	CreateArticle(ctx context.Context, documentID string, article domain.Article) error
}
