package in_mem

import (
	"context"
	"testing"

	"github.com/mnovakovic/wp-appwrite-sync/internal/domain"
	"github.com/mnovakovic/wp-appwrite-sync/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemStore_GetArticle(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	assert.Equal(t, store.NotFound, s.GetArticle(ctx, "wp_1").Status)

	require.NoError(t, s.CreateArticle(ctx, "wp_1", domain.Article{WPID: "1"}))
	assert.Equal(t, store.Found, s.GetArticle(ctx, "wp_1").Status)
}

func TestInMemStore_CreateArticle_KeyCollision(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.CreateArticle(ctx, "wp_1", domain.Article{WPID: "1"}))

	err := s.CreateArticle(ctx, "wp_1", domain.Article{WPID: "1"})
	require.Error(t, err, "the destination rejects duplicate document keys")
	assert.Equal(t, 1, s.Len())
}
