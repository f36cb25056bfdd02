package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/metaseek/aggregator/internal/adapter"
	"github.com/metaseek/aggregator/internal/store/schema"
)

// apiRetriever issues a GET to the source's fixed endpoint with configured
// headers and query parameters plus q=<query>, and reads the item list
// from the configured results path of the JSON body.
type apiRetriever struct {
	client  adapter.HTTPClient
	timeout time.Duration
}

func newAPIRetriever(client adapter.HTTPClient, timeout time.Duration) Retriever {
	return &apiRetriever{client: client, timeout: timeout}
}

func (r *apiRetriever) Retrieve(ctx context.Context, source *schema.Source, query string) ([]Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cfg := ParseSourceConfig(source.Config)

	params := url.Values{}
	for k, v := range cfg.Params {
		params.Set(k, v)
	}
	params.Set("q", query)

	body, err := r.client.Get(ctx, source.URLBase, cfg.Headers, params)
	if err != nil {
		return nil, err
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("malformed response body: %w", err)
	}

	// A missing or non-list results key means zero items, not an error.
	rawItems, _ := payload[cfg.resultsPath()].([]interface{})
	if len(rawItems) > maxResults {
		rawItems = rawItems[:maxResults]
	}

	results := make([]Result, 0, len(rawItems))
	for _, raw := range rawItems {
		item, _ := raw.(map[string]interface{})
		results = append(results, extractAPIItem(item, cfg, source.URLBase))
	}

	return results, nil
}
