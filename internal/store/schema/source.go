package schema

import (
	"time"

	"gorm.io/datatypes"
)

// SearchMethod selects the retrieval strategy for a source
type SearchMethod string

const (
	// SearchMethodAPI fetches results from a JSON API endpoint
	SearchMethodAPI SearchMethod = "api"
	// SearchMethodScraping fetches results by scraping an HTML page
	SearchMethodScraping SearchMethod = "scraping"
)

// Source represents the sources table - one searchable external site or API.
// The Config column is an open mapping consumed by the retrieval strategies;
// unknown keys are ignored and missing keys fall back to per-strategy defaults.
type Source struct {
	// ID is a stable opaque identifier (UUID), assigned at creation
	ID string `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	// Name is the display name of the source
	Name string `gorm:"column:name;not null;type:text" json:"name"`
	// Type is the content-category tag (game, movie, series, anime, software, book)
	Type string `gorm:"column:type;not null;type:text;index" json:"type"`
	// URLBase is the API endpoint, or a URL template containing a {query} placeholder
	URLBase string `gorm:"column:url_base;not null;type:text" json:"url_base"`
	// SearchMethod is "api" or "scraping"; anything else falls back to scraping
	SearchMethod SearchMethod `gorm:"column:search_method;not null;type:text" json:"search_method"`
	// Config parameterizes the strategy and extractor (selectors, field names, headers...)
	Config datatypes.JSON `gorm:"column:config;type:jsonb" json:"config"`
	// Enabled excludes the source from listings and searches when false
	Enabled bool `gorm:"column:enabled;not null;default:true" json:"enabled"`
	// CreatedAt is immutable after creation
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
}

// TableName specifies the table name for the Source model
func (Source) TableName() string {
	return "sources"
}
