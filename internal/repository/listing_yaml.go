package repository

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/kbdigital/ytselleradda/internal/model"
)

// catalogSchema describes the YAML catalog file:
//
//	listings:
//	  - id: "1"
//	    listingId: YT-001
//	    ...
var catalogSchema = map[string]any{
	"type":     "object",
	"required": []string{"listings"},
	"properties": map[string]any{
		"listings": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"id", "listingId", "name", "niche", "subscribers", "askingPrice", "monetized"},
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"listingId":   map[string]any{"type": "string", "minLength": 1},
					"name":        map[string]any{"type": "string", "minLength": 1},
					"niche":       map[string]any{"type": "string", "enum": nicheNames()},
					"status":      map[string]any{"type": "string", "enum": []string{"Available", "Sold"}},
					"monetized":   map[string]any{"type": "boolean"},
					"subscribers": nonNegativeInt(),
					"askingPrice": nonNegativeInt(),
					"watchHours":  nonNegativeInt(),
					"growthData": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []string{"month", "subs"},
						},
					},
				},
			},
		},
	},
}

func nonNegativeInt() map[string]any {
	return map[string]any{"type": "integer", "minimum": 0}
}

func nicheNames() []string {
	out := make([]string, 0, len(model.Niches))
	for _, n := range model.Niches {
		out = append(out, string(n))
	}
	return out
}

type catalogFile struct {
	Listings []model.ChannelListing `yaml:"listings"`
}

// LoadListingsFromYAML reads and validates a catalog file.
func LoadListingsFromYAML(path string) ([]model.ChannelListing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	listings, err := ParseListingsYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return listings, nil
}

// ParseListingsYAML validates data against the catalog schema and decodes it.
func ParseListingsYAML(data []byte) ([]model.ChannelListing, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validateCatalogDocument(doc); err != nil {
		return nil, err
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i := range f.Listings {
		l := &f.Listings[i]
		if l.Status == "" {
			l.Status = model.StatusAvailable
		}
		if l.GrowthData == nil {
			l.GrowthData = []model.GrowthPoint{}
		}
		if err := validateListing(*l); err != nil {
			return nil, err
		}
	}
	if f.Listings == nil {
		f.Listings = []model.ChannelListing{}
	}
	return f.Listings, nil
}

func validateCatalogDocument(doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(catalogSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("invalid catalog: %s", strings.Join(msgs, "; "))
}
