package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestParseSourceConfig(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		validate func(*testing.T, SourceConfig)
	}{
		{
			name: "empty config uses defaults",
			raw:  "",
			validate: func(t *testing.T, cfg SourceConfig) {
				assert.Equal(t, "results", cfg.resultsPath())
				assert.Equal(t, "name", cfg.nameField())
				assert.Equal(t, "price", cfg.priceField())
				assert.Equal(t, "size", cfg.sizeField())
				assert.Equal(t, "producer", cfg.producerField())
				assert.Equal(t, "release_date", cfg.dateField())
				assert.Equal(t, "image", cfg.imageField())
				assert.Equal(t, "url", cfg.linkField())
				assert.Equal(t, "div", cfg.itemSelector())
				assert.Empty(t, cfg.ItemClass)
				assert.Empty(t, cfg.DefaultImage)
			},
		},
		{
			name: "configured fields override defaults",
			raw: `{
				"results_path": "data",
				"name_field": "title",
				"date_field": "released",
				"item_selector": "a",
				"item_class": "search_result_row",
				"default_image": "https://example.com/img.png",
				"headers": {"X-API-Key": "secret"},
				"params": {"limit": "5"}
			}`,
			validate: func(t *testing.T, cfg SourceConfig) {
				assert.Equal(t, "data", cfg.resultsPath())
				assert.Equal(t, "title", cfg.nameField())
				assert.Equal(t, "released", cfg.dateField())
				assert.Equal(t, "price", cfg.priceField())
				assert.Equal(t, "a", cfg.itemSelector())
				assert.Equal(t, "search_result_row", cfg.ItemClass)
				assert.Equal(t, "https://example.com/img.png", cfg.DefaultImage)
				assert.Equal(t, map[string]string{"X-API-Key": "secret"}, cfg.Headers)
				assert.Equal(t, map[string]string{"limit": "5"}, cfg.Params)
			},
		},
		{
			name: "unknown keys are ignored",
			raw:  `{"name_field": "title", "some_future_key": 42, "nested": {"a": 1}}`,
			validate: func(t *testing.T, cfg SourceConfig) {
				assert.Equal(t, "title", cfg.nameField())
			},
		},
		{
			name: "malformed config degrades to defaults",
			raw:  `{"name_field": [1,2,3]`,
			validate: func(t *testing.T, cfg SourceConfig) {
				assert.Equal(t, "name", cfg.nameField())
				assert.Equal(t, "div", cfg.itemSelector())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ParseSourceConfig(datatypes.JSON(tt.raw))
			tt.validate(t, cfg)
		})
	}
}
