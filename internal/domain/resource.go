// File: internal/domain/resource.go
package domain

// Resource categories. CategoryAll is a filter value, never stored.
const (
	CategoryAll      = "all"
	CategoryArticle  = "article"
	CategoryVideo    = "video"
	CategoryAudio    = "audio"
	CategoryExternal = "external"
)

// Resource is one entry of the static healing-resources catalog. Body is
// markdown rendered on the detail view; the list view shows Description.
type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Category    string `json:"category"`
	Body        string `json:"-"`
}

// IsValidCategory reports whether c names a known category or the "all" filter.
func IsValidCategory(c string) bool {
	switch c {
	case CategoryAll, CategoryArticle, CategoryVideo, CategoryAudio, CategoryExternal:
		return true
	}
	return false
}
