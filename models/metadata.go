package models

// PageMetadata is the result of scraping a URL for display metadata.
// Every field is optional; a zero PageMetadata is a valid (empty) result.
type PageMetadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Favicon     string `json:"favicon,omitempty"`
	SiteName    string `json:"siteName,omitempty"`
}

// Empty reports whether the scrape produced nothing usable.
func (m PageMetadata) Empty() bool {
	return m == PageMetadata{}
}
