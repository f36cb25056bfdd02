package search

import (
	"context"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/metaseek/aggregator/internal/adapter"
	"github.com/metaseek/aggregator/internal/logger"
	"github.com/metaseek/aggregator/internal/store"
	"github.com/metaseek/aggregator/internal/store/schema"
)

const (
	// searchTimeout is the fixed per-source request budget
	searchTimeout = 10 * time.Second
	// defaultPoolSize bounds concurrent outbound requests across searches
	defaultPoolSize = 64
)

// Options configures a Dispatcher. Zero values fall back to defaults.
type Options struct {
	// PoolSize is the worker pool size shared by all search calls
	PoolSize int
	// Timeout overrides the per-source request budget
	Timeout time.Duration
	// Client overrides the outbound HTTP client
	Client adapter.HTTPClient
}

// Dispatcher fans a query out to multiple sources concurrently. Each
// source runs an isolated retrieve+extract pipeline; one source failing
// or stalling never affects its siblings.
type Dispatcher struct {
	store  store.Store
	pool   pond.Pool
	api    Retriever
	scrape Retriever
}

// NewDispatcher creates a dispatcher backed by the given catalog store
func NewDispatcher(st store.Store, opts Options) *Dispatcher {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = searchTimeout
	}
	client := opts.Client
	if client == nil {
		client = adapter.NewHTTPClient(timeout)
	}
	poolSize := opts.PoolSize
	if poolSize == 0 {
		poolSize = defaultPoolSize
	}

	return &Dispatcher{
		store:  st,
		pool:   pond.NewPool(poolSize),
		api:    newAPIRetriever(client, timeout),
		scrape: newScrapeRetriever(client, timeout),
	}
}

// Search resolves the candidate sources and runs one pipeline per source
// concurrently. The returned outcomes are in candidate order, exactly one
// per candidate. An empty candidate list yields an empty slice. The only
// error returned is a catalog lookup failure; per-source failures are
// embedded in their outcome.
func (d *Dispatcher) Search(ctx context.Context, query string, sourceType string, sourceIDs []string) ([]Outcome, error) {
	var (
		sources []*schema.Source
		err     error
	)
	if len(sourceIDs) > 0 {
		sources, err = d.store.ListSourcesByIDs(ctx, sourceIDs)
	} else {
		sources, err = d.store.ListSourcesByType(ctx, sourceType)
	}
	if err != nil {
		return nil, err
	}

	if len(sources) == 0 {
		return []Outcome{}, nil
	}

	// One indexed slot per candidate keeps output order equal to input
	// order regardless of completion order.
	outcomes := make([]Outcome, len(sources))
	group := d.pool.NewGroup()
	for i, src := range sources {
		group.Submit(func() {
			outcomes[i] = d.searchOne(ctx, src, query)
		})
	}
	_ = group.Wait()

	return outcomes, nil
}

// searchOne runs the retrieve+extract pipeline for a single source. It is
// the per-source isolation boundary: any failure becomes an error string
// on the outcome.
func (d *Dispatcher) searchOne(ctx context.Context, source *schema.Source, query string) Outcome {
	retriever := d.scrape
	if source.SearchMethod == schema.SearchMethodAPI {
		retriever = d.api
	}

	items, err := retriever.Retrieve(ctx, source, query)
	if err != nil {
		logger.Warn("source search failed",
			zap.String("source", source.Name),
			zap.Error(err),
		)
		return Outcome{SourceName: source.Name, Items: []Result{}, Error: err.Error()}
	}
	if items == nil {
		items = []Result{}
	}

	return Outcome{SourceName: source.Name, Items: items}
}

// Close stops the worker pool and waits for in-flight tasks
func (d *Dispatcher) Close() {
	d.pool.StopAndWait()
}
