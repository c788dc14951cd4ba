package domain

import "time"

// Post is a journal article. Content is trusted raw HTML authored in the
// brand's own CMS; it is served verbatim (accepted trust boundary), and
// only rows with IsPublished set are ever served.
type Post struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"published_at"`
	IsPublished bool      `json:"is_published"`
}
