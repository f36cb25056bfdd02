package search

// notAvailable is the placeholder for fields that cannot be resolved
// from a source's raw payload.
const notAvailable = "N/A"

// maxResults caps the number of items returned per source.
const maxResults = 10

// Result is one normalized search hit. All fields are free text; a field
// the source cannot supply holds "N/A", except Image (empty string) and
// Link (the source's base URL).
type Result struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Size        string `json:"size"`
	Producer    string `json:"producer"`
	ReleaseDate string `json:"release_date"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

// Outcome is the per-source result of one search call. Error is set only
// when the source's pipeline failed; Items is empty in that case.
type Outcome struct {
	SourceName string   `json:"source_name"`
	Items      []Result `json:"items"`
	Error      string   `json:"error,omitempty"`
}
