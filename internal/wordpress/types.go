package wordpress

// Rendered wraps the rich-text fields the WordPress REST API returns as
// {"rendered": "<html>"} objects.
type Rendered struct {
	Rendered string `json:"rendered"`
}

type Media struct {
	SourceURL string `json:"source_url"`
}

// Embedded is the inline expansion of related resources requested via _embed.
type Embedded struct {
	FeaturedMedia []Media `json:"wp:featuredmedia"`
}

// Post is a raw WordPress post as returned by /wp-json/wp/v2/posts?_embed=1.
// It is immutable as received; the sync never writes it back.
type Post struct {
	ID       int       `json:"id"`
	Date     string    `json:"date"`
	Modified string    `json:"modified"`
	Slug     string    `json:"slug"`
	Link     string    `json:"link"`
	Title    Rendered  `json:"title"`
	Content  Rendered  `json:"content"`
	Excerpt  Rendered  `json:"excerpt"`
	Embedded *Embedded `json:"_embedded,omitempty"`
}

// FeaturedImage returns the source URL of the first embedded featured media
// entry. A post with no embedded section or no featured media is a normal
// case, reported through the second return value.
func (p Post) FeaturedImage() (string, bool) {
	if p.Embedded == nil || len(p.Embedded.FeaturedMedia) == 0 {
		return "", false
	}
	if src := p.Embedded.FeaturedMedia[0].SourceURL; src != "" {
		return src, true
	}
	return "", false
}
