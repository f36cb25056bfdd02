package store

import (
	"context"

	"github.com/metaseek/aggregator/internal/store/schema"
)

// UpdateSourceInput carries a partial update for a source. Only non-nil
// fields are applied; omitted fields keep their prior values.
type UpdateSourceInput struct {
	Name         *string
	Type         *string
	URLBase      *string
	SearchMethod *schema.SearchMethod
	Config       map[string]interface{}
	Enabled      *bool
}

// Store defines the interface for catalog persistence
type Store interface {
	// CreateSource inserts a new source, assigning ID and CreatedAt when unset
	CreateSource(ctx context.Context, source *schema.Source) error
	// ListSources retrieves every source, enabled or not
	ListSources(ctx context.Context) ([]*schema.Source, error)
	// ListSourcesByType retrieves enabled sources of the given content type
	ListSourcesByType(ctx context.Context, sourceType string) ([]*schema.Source, error)
	// ListSourcesByIDs retrieves the enabled sources among the given ids
	ListSourcesByIDs(ctx context.Context, ids []string) ([]*schema.Source, error)
	// GetSource retrieves a source by id regardless of enabled state; nil when absent
	GetSource(ctx context.Context, id string) (*schema.Source, error)
	// UpdateSource applies a partial update and returns the updated source; nil when absent
	UpdateSource(ctx context.Context, id string, input UpdateSourceInput) (*schema.Source, error)
	// DeleteSource removes a source by id; false when absent
	DeleteSource(ctx context.Context, id string) (bool, error)
	// CountSources returns the number of sources in the catalog
	CountSources(ctx context.Context) (int64, error)
	// SeedSources bulk-inserts the given sources
	SeedSources(ctx context.Context, sources []*schema.Source) error
}
