// Package normalize transforms raw WordPress posts into destination records:
// date reformatting, content length capping and featured image extraction.
package normalize

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mnovakovic/wp-appwrite-sync/internal/domain"
	"github.com/mnovakovic/wp-appwrite-sync/internal/wordpress"
)

const (
	dateLayout = "2006/01/02,15:04:05"

	// maxContentRunes is the destination schema's 50000-character field limit
	// minus the ellipsis marker. The limit is measured in Unicode code points.
	maxContentRunes = 49997
	ellipsis        = "..."
)

var ErrMalformedDate = errors.New("malformed date")

// FormatDate parses a loosely formatted timestamp (ISO-8601 and the common
// RFC variants) and re-emits it as YYYY/MM/DD,HH:MM:SS. The clock value is
// kept as-is in the timestamp's own zone; no conversion is performed.
func FormatDate(s string) (string, error) {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return t.Format(dateLayout), nil
}

// TruncateContent caps text at the destination field limit: anything longer
// than 49997 code points is cut there and terminated with "...", yielding
// exactly 50000. Shorter input passes through untouched.
func TruncateContent(s string) string {
	runes := []rune(s)
	if len(runes) <= maxContentRunes {
		return s
	}
	return string(runes[:maxContentRunes]) + ellipsis
}

// FromPost builds the destination record for a raw post. It fails only on
// unparseable timestamps; a missing featured image is a normal case and maps
// to a null field.
func FromPost(p wordpress.Post) (domain.Article, error) {
	published, err := FormatDate(p.Date)
	if err != nil {
		return domain.Article{}, fmt.Errorf("published date: %w", err)
	}

	modified, err := FormatDate(p.Modified)
	if err != nil {
		return domain.Article{}, fmt.Errorf("modified date: %w", err)
	}

	article := domain.Article{
		WPID:          strconv.Itoa(p.ID),
		Title:         p.Title.Rendered,
		Content:       TruncateContent(p.Content.Rendered),
		Excerpt:       p.Excerpt.Rendered,
		Slug:          p.Slug,
		Link:          p.Link,
		PublishedDate: published,
		ModifiedDate:  modified,
	}

	if src, ok := p.FeaturedImage(); ok {
		article.FeaturedImage = &src
	}

	return article, nil
}
