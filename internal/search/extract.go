package search

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractAPIItem maps one raw JSON object onto a Result using the
// source's configured field names.
func extractAPIItem(item map[string]interface{}, cfg SourceConfig, urlBase string) Result {
	return Result{
		Name:        stringField(item, cfg.nameField(), notAvailable),
		Price:       stringField(item, cfg.priceField(), notAvailable),
		Size:        stringField(item, cfg.sizeField(), notAvailable),
		Producer:    stringField(item, cfg.producerField(), notAvailable),
		ReleaseDate: stringField(item, cfg.dateField(), notAvailable),
		Image:       stringField(item, cfg.imageField(), ""),
		Link:        stringField(item, cfg.linkField(), urlBase),
	}
}

// extractScrapedItem maps one matched HTML element onto a Result. The
// generic scraper only recovers a display name; everything else is the
// documented fallback. No site-specific heuristics.
func extractScrapedItem(sel *goquery.Selection, cfg SourceConfig, urlBase string) Result {
	name := normSpace(sel.Text())
	if name == "" {
		name = notAvailable
	}

	return Result{
		Name:        name,
		Price:       notAvailable,
		Size:        notAvailable,
		Producer:    notAvailable,
		ReleaseDate: notAvailable,
		Image:       cfg.DefaultImage,
		Link:        urlBase,
	}
}

// stringField reads item[key] as free text. JSON numbers and booleans are
// rendered; structured values are re-encoded; absent or null values fall
// back to the given default.
func stringField(item map[string]interface{}, key, fallback string) string {
	value, ok := item[key]
	if !ok || value == nil {
		return fallback
	}

	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fallback
		}
		return string(raw)
	}
}

func normSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
