package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mnovakovic/wp-appwrite-sync/internal/domain"
	"github.com/mnovakovic/wp-appwrite-sync/internal/normalize"
	"github.com/mnovakovic/wp-appwrite-sync/internal/store"
	"github.com/mnovakovic/wp-appwrite-sync/internal/wordpress"
)

// Upserter writes a post to the destination if and only if it is neither a
// session duplicate nor already stored.
type Upserter struct {
	docs store.DocumentStore
}

func NewUpserter(docs store.DocumentStore) *Upserter {
	return &Upserter{docs: docs}
}

// Upsert returns the stored record, or nil when the post was skipped as a
// duplicate. The seen set is updated on both the "newly stored" and the
// "found pre-existing" paths, never on failure, so a later occurrence of the
// same id retries the existence check.
func (u *Upserter) Upsert(ctx context.Context, post wordpress.Post, seen *SeenSet) (*domain.Article, error) {
	id := strconv.Itoa(post.ID)

	if seen.Contains(id) {
		slog.Debug("skipping article, already handled this run", "wp_id", id)
		return nil, nil
	}

	documentID := domain.DocumentID(id)

	switch lookup := u.docs.GetArticle(ctx, documentID); lookup.Status {
	case store.Found:
		slog.Debug("skipping article, already exists in destination", "wp_id", id)
		seen.Add(id)
		return nil, nil
	case store.LookupFailed:
		// Treat as absent and carry on: a transient lookup error must never
		// stall the run. A real duplicate gets rejected by the document key.
		slog.Warn("existence check failed, treating as absent",
			"wp_id", id,
			"error", lookup.Err,
		)
	}

	article, err := normalize.FromPost(post)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize article %s: %w", id, err)
	}

	if err := u.docs.CreateArticle(ctx, documentID, article); err != nil {
		return nil, fmt.Errorf("failed to store article %s: %w", id, err)
	}

	slog.Info("article stored", "wp_id", id, "slug", article.Slug)
	seen.Add(id)

	return &article, nil
}
