package domain

const documentIDPrefix = "wp_"

// Article is the destination record written to the article collection.
// It is derived 1:1 from a WordPress post and never mutated after creation.
type Article struct {
	WPID          string  `json:"wp_id"`
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	Excerpt       string  `json:"excerpt"`
	Slug          string  `json:"slug"`
	Link          string  `json:"link"`
	PublishedDate string  `json:"published_date"`
	ModifiedDate  string  `json:"modified_date"`
	FeaturedImage *string `json:"featured_image"`
}

// DocumentID returns the deterministic destination key for a WordPress post id.
// Re-runs are idempotent because a second write for the same post collides on
// the key instead of creating a duplicate document.
func DocumentID(wpID string) string {
	return documentIDPrefix + wpID
}

func (a Article) DocumentID() string {
	return DocumentID(a.WPID)
}
