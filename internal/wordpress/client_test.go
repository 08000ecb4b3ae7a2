package wordpress

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePostsBody = `[
  {
    "id": 42,
    "date": "2024-03-05T14:22:01",
    "modified": "2024-03-06T09:10:11",
    "slug": "hello-world",
    "link": "https://example.com/hello-world",
    "title": {"rendered": "Hello World"},
    "content": {"rendered": "<p>Body</p>"},
    "excerpt": {"rendered": "Short"},
    "_embedded": {"wp:featuredmedia": [{"source_url": "https://example.com/img.jpg"}]}
  }
]`

func TestClient_FetchPosts(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, samplePostsBody)
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/")

	posts, err := client.FetchPosts(context.Background(), TimeframeDay)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	post := posts[0]
	assert.Equal(t, 42, post.ID)
	assert.Equal(t, "Hello World", post.Title.Rendered)
	assert.Equal(t, "<p>Body</p>", post.Content.Rendered)
	assert.Equal(t, "hello-world", post.Slug)

	src, ok := post.FeaturedImage()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/img.jpg", src)

	assert.Equal(t, "/wp-json/wp/v2/posts", gotPath)
	assert.Equal(t, "100", gotQuery.Get("per_page"))
	assert.Equal(t, "1", gotQuery.Get("_embed"))

	after, err := time.Parse(afterLayout, gotQuery.Get("after"))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(-24*time.Hour), after, time.Minute)
}

func TestClient_FetchPosts_EmptyWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, "[]")
	}))
	defer srv.Close()

	posts, err := NewClient(srv.URL).FetchPosts(context.Background(), TimeframeMonth)

	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestClient_FetchPosts_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchPosts(context.Background(), TimeframeWeek)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "database exploded")
}

func TestClient_FetchPosts_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>definitely not json</html>")
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchPosts(context.Background(), TimeframeDay)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse posts response")
}

func TestClient_FetchPosts_InvalidTimeframe(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchPosts(context.Background(), Timeframe("year"))

	require.ErrorIs(t, err, ErrInvalidTimeframe)
	assert.Equal(t, 0, requests, "an invalid timeframe must fail before any network call")
}

func TestTimeframe_Lookback(t *testing.T) {
	tests := []struct {
		tf      Timeframe
		want    time.Duration
		wantErr bool
	}{
		{tf: TimeframeDay, want: 24 * time.Hour},
		{tf: TimeframeWeek, want: 7 * 24 * time.Hour},
		{tf: TimeframeMonth, want: 30 * 24 * time.Hour},
		{tf: Timeframe("fortnight"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.tf), func(t *testing.T) {
			got, err := tt.tf.Lookback()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeframe)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeframe(t *testing.T) {
	tf, err := ParseTimeframe("week")
	require.NoError(t, err)
	assert.Equal(t, TimeframeWeek, tf)

	_, err = ParseTimeframe("hour")
	assert.ErrorIs(t, err, ErrInvalidTimeframe)
}
