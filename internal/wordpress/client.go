package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	postsPath = "/wp-json/wp/v2/posts"

	// perPage is the source API's maximum page size. The sync reads a single
	// page per timeframe: windows with more than 100 matching posts are
	// truncated to the first 100 in the API's default ordering. Known
	// limitation, kept deliberately.
	perPage = 100

	// afterLayout matches the timezone-naive ISO-8601 instant the posts
	// endpoint expects in its "after" query parameter.
	afterLayout = "2006-01-02T15:04:05"

	defaultTimeout = 30 * time.Second
	maxErrorBody   = 4 << 10
)

// StatusError is returned when the posts endpoint answers with a non-200
// status. It carries the response body for the run result.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch articles: %d: %s", e.StatusCode, e.Body)
}

// Client fetches posts from a WordPress site's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout on the client's own HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchPosts returns the posts published or modified after the timeframe's
// lookback cutoff, newest page first. An invalid timeframe fails before any
// network call; an empty result is not an error.
func (c *Client) FetchPosts(ctx context.Context, tf Timeframe) ([]Post, error) {
	lookback, err := tf.Lookback()
	if err != nil {
		return nil, err
	}

	after := time.Now().UTC().Add(-lookback)

	q := url.Values{}
	q.Set("after", after.Format(afterLayout))
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("_embed", "1")

	endpoint := c.baseURL + postsPath + "?" + q.Encode()
	slog.Debug("fetching articles", "url", endpoint, "timeframe", tf)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build posts request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch articles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var posts []Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("failed to parse posts response: %w", err)
	}

	slog.Info("fetched articles", "timeframe", tf, "count", len(posts))
	return posts, nil
}
