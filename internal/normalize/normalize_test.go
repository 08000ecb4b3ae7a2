package normalize

import (
	"strings"
	"testing"

	"github.com/mnovakovic/wp-appwrite-sync/internal/wordpress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "iso naive",
			input: "2024-03-05T14:22:01",
			want:  "2024/03/05,14:22:01",
		},
		{
			name:  "iso with offset keeps the clock value",
			input: "2024-03-05T14:22:01+02:00",
			want:  "2024/03/05,14:22:01",
		},
		{
			name:  "rfc1123",
			input: "Tue, 05 Mar 2024 14:22:01 GMT",
			want:  "2024/03/05,14:22:01",
		},
		{
			name:  "date only",
			input: "2024-03-05",
			want:  "2024/03/05,00:00:00",
		},
		{
			name:    "unparseable",
			input:   "not-a-date",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncateContent(t *testing.T) {
	t.Run("short content passes through", func(t *testing.T) {
		content := strings.Repeat("a", 49997)
		assert.Equal(t, content, TruncateContent(content))
	})

	t.Run("long content is capped at 50000 with ellipsis", func(t *testing.T) {
		content := strings.Repeat("a", 50050)

		got := TruncateContent(content)

		require.Equal(t, 50000, len([]rune(got)))
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.Equal(t, content[:49997], got[:49997])
	})

	t.Run("one over the limit is truncated", func(t *testing.T) {
		got := TruncateContent(strings.Repeat("a", 49998))

		assert.Equal(t, 50000, len([]rune(got)))
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("limit is measured in code points", func(t *testing.T) {
		got := TruncateContent(strings.Repeat("é", 50050))

		assert.Equal(t, 50000, len([]rune(got)))
		assert.True(t, strings.HasSuffix(got, "..."))
	})
}

func TestFromPost(t *testing.T) {
	post := wordpress.Post{
		ID:       42,
		Date:     "2024-03-05T14:22:01",
		Modified: "2024-03-06T09:10:11",
		Slug:     "hello-world",
		Link:     "https://example.com/hello-world",
		Title:    wordpress.Rendered{Rendered: "Hello World"},
		Content:  wordpress.Rendered{Rendered: "<p>Body</p>"},
		Excerpt:  wordpress.Rendered{Rendered: "Short"},
		Embedded: &wordpress.Embedded{
			FeaturedMedia: []wordpress.Media{{SourceURL: "https://example.com/img.jpg"}},
		},
	}

	article, err := FromPost(post)
	require.NoError(t, err)

	assert.Equal(t, "42", article.WPID)
	assert.Equal(t, "wp_42", article.DocumentID())
	assert.Equal(t, "Hello World", article.Title)
	assert.Equal(t, "<p>Body</p>", article.Content)
	assert.Equal(t, "Short", article.Excerpt)
	assert.Equal(t, "hello-world", article.Slug)
	assert.Equal(t, "https://example.com/hello-world", article.Link)
	assert.Equal(t, "2024/03/05,14:22:01", article.PublishedDate)
	assert.Equal(t, "2024/03/06,09:10:11", article.ModifiedDate)
	require.NotNil(t, article.FeaturedImage)
	assert.Equal(t, "https://example.com/img.jpg", *article.FeaturedImage)
}

func TestFromPost_NoEmbeddedSection(t *testing.T) {
	post := wordpress.Post{
		ID:       7,
		Date:     "2024-03-05T14:22:01",
		Modified: "2024-03-05T14:22:01",
	}

	article, err := FromPost(post)
	require.NoError(t, err)

	assert.Nil(t, article.FeaturedImage)
}

func TestFromPost_EmptyFeaturedMediaList(t *testing.T) {
	post := wordpress.Post{
		ID:       7,
		Date:     "2024-03-05T14:22:01",
		Modified: "2024-03-05T14:22:01",
		Embedded: &wordpress.Embedded{},
	}

	article, err := FromPost(post)
	require.NoError(t, err)

	assert.Nil(t, article.FeaturedImage)
}

func TestFromPost_MalformedDate(t *testing.T) {
	post := wordpress.Post{
		ID:       7,
		Date:     "yesterday-ish",
		Modified: "2024-03-05T14:22:01",
	}

	_, err := FromPost(post)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedDate)
}
