package search

import (
	"context"

	"github.com/metaseek/aggregator/internal/store/schema"
)

// Retriever fetches raw data from one source for a query and returns the
// normalized results. Implementations own their request timeout and fail
// closed: timeouts, non-2xx statuses, transport errors and malformed
// payloads surface as an error, never a panic.
type Retriever interface {
	Retrieve(ctx context.Context, source *schema.Source, query string) ([]Result, error)
}
