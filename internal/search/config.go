package search

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// SourceConfig is the typed view of a source's open config mapping.
// Unrecognized keys are ignored for forward compatibility; missing keys
// fall back to the documented defaults below. A config that cannot be
// decoded at all degrades to the zero value rather than failing the
// source.
type SourceConfig struct {
	// API strategy
	Headers       map[string]string `json:"headers"`
	Params        map[string]string `json:"params"`
	ResultsPath   string            `json:"results_path"`
	NameField     string            `json:"name_field"`
	PriceField    string            `json:"price_field"`
	SizeField     string            `json:"size_field"`
	ProducerField string            `json:"producer_field"`
	DateField     string            `json:"date_field"`
	ImageField    string            `json:"image_field"`
	LinkField     string            `json:"link_field"`

	// Scraping strategy
	ItemSelector string `json:"item_selector"`
	ItemClass    string `json:"item_class"`
	DefaultImage string `json:"default_image"`
}

// ParseSourceConfig decodes a source's raw config column
func ParseSourceConfig(raw datatypes.JSON) SourceConfig {
	var cfg SourceConfig
	if len(raw) == 0 {
		return cfg
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return SourceConfig{}
	}
	return cfg
}

func (c SourceConfig) resultsPath() string {
	return orDefault(c.ResultsPath, "results")
}

func (c SourceConfig) nameField() string {
	return orDefault(c.NameField, "name")
}

func (c SourceConfig) priceField() string {
	return orDefault(c.PriceField, "price")
}

func (c SourceConfig) sizeField() string {
	return orDefault(c.SizeField, "size")
}

func (c SourceConfig) producerField() string {
	return orDefault(c.ProducerField, "producer")
}

func (c SourceConfig) dateField() string {
	return orDefault(c.DateField, "release_date")
}

func (c SourceConfig) imageField() string {
	return orDefault(c.ImageField, "image")
}

func (c SourceConfig) linkField() string {
	return orDefault(c.LinkField, "url")
}

func (c SourceConfig) itemSelector() string {
	return orDefault(c.ItemSelector, "div")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
