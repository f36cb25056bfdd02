package search

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/metaseek/aggregator/internal/adapter"
	"github.com/metaseek/aggregator/internal/store/schema"
)

// queryPlaceholder is substituted with the URL-escaped search term in a
// scraping source's URL template.
const queryPlaceholder = "{query}"

// scrapeRetriever fetches the source's search page and selects candidate
// item elements by the configured tag and CSS class. This is a generic
// best-effort scraper; real deployments supply per-source selectors.
type scrapeRetriever struct {
	client  adapter.HTTPClient
	timeout time.Duration
}

func newScrapeRetriever(client adapter.HTTPClient, timeout time.Duration) Retriever {
	return &scrapeRetriever{client: client, timeout: timeout}
}

func (r *scrapeRetriever) Retrieve(ctx context.Context, source *schema.Source, query string) ([]Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cfg := ParseSourceConfig(source.Config)
	searchURL := strings.ReplaceAll(source.URLBase, queryPlaceholder, url.QueryEscape(query))

	body, err := r.client.Get(ctx, searchURL, nil, nil)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	selector := cfg.itemSelector()
	if cfg.ItemClass != "" {
		selector += "." + cfg.ItemClass
	}

	results := make([]Result, 0, maxResults)
	doc.Find(selector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= maxResults {
			return false
		}
		results = append(results, extractScrapedItem(sel, cfg, source.URLBase))
		return true
	})

	return results, nil
}
