package repository

import (
	"context"
	"fmt"

	"github.com/kbdigital/ytselleradda/internal/model"
)

// Catalog source names reported by LoadCatalog.
const (
	SourceDatabase = "database"
	SourceYAML     = "yaml"
	SourceSeed     = "seed"
)

// LoadCatalog reads listings from the first configured source: the database
// when q is non-nil, then the YAML file at path, then the built-in seed.
func LoadCatalog(ctx context.Context, q Querier, path string) ([]model.ChannelListing, string, error) {
	switch {
	case q != nil:
		listings, err := LoadListingsFromDB(ctx, q)
		if err != nil {
			return nil, "", fmt.Errorf("load catalog from database: %w", err)
		}
		return listings, SourceDatabase, nil
	case path != "":
		listings, err := LoadListingsFromYAML(path)
		if err != nil {
			return nil, "", fmt.Errorf("load catalog from %s: %w", path, err)
		}
		return listings, SourceYAML, nil
	default:
		return SeedListings(), SourceSeed, nil
	}
}
