package dto

// CreateSourceRequest is the body of POST /api/sources. Enabled defaults
// to true when omitted.
type CreateSourceRequest struct {
	Name         string                 `json:"name" binding:"required"`
	Type         string                 `json:"type" binding:"required"`
	URLBase      string                 `json:"url_base" binding:"required"`
	SearchMethod string                 `json:"search_method" binding:"required"`
	Config       map[string]interface{} `json:"config"`
	Enabled      *bool                  `json:"enabled"`
}

// UpdateSourceRequest is the body of PUT /api/sources/:id. Only fields
// present in the body are applied; the rest keep their prior values.
type UpdateSourceRequest struct {
	Name         *string                `json:"name"`
	Type         *string                `json:"type"`
	URLBase      *string                `json:"url_base"`
	SearchMethod *string                `json:"search_method"`
	Config       map[string]interface{} `json:"config"`
	Enabled      *bool                  `json:"enabled"`
}

// SearchRequest is the body of POST /api/search. When SourceIDs is
// non-empty it overrides the type filter.
type SearchRequest struct {
	Query     string   `json:"query" binding:"required"`
	Type      string   `json:"type" binding:"required"`
	SourceIDs []string `json:"source_ids"`
}

// MessageResponse is a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// SeedResponse reports the result of POST /api/seed
type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
