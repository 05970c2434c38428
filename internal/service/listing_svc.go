package service

import (
	"context"
	"encoding/json"

	"github.com/kbdigital/ytselleradda/internal/metrics"
	"github.com/kbdigital/ytselleradda/internal/middleware"
	"github.com/kbdigital/ytselleradda/internal/model"
	"github.com/kbdigital/ytselleradda/internal/repository"
	"github.com/kbdigital/ytselleradda/pkg/hash"
)

// FeaturedCount is how many listings the home page shows.
const FeaturedCount = 3

type ListingService struct {
	repo        *repository.ListingRepo
	cache       *CacheService
	fingerprint string
}

// NewListingService wraps a catalog. cache may be nil.
func NewListingService(repo *repository.ListingRepo, cache *CacheService) *ListingService {
	all := repo.All()
	metrics.CatalogSize.Set(float64(len(all)))

	return &ListingService{
		repo:        repo,
		cache:       cache,
		fingerprint: catalogFingerprint(all),
	}
}

// catalogFingerprint hashes the full content of every listing, in order, so a
// cached result never outlives a change to any field the filter reads.
func catalogFingerprint(all []model.ChannelListing) string {
	parts := make([]string, 0, len(all))
	for _, l := range all {
		b, err := json.Marshal(l)
		if err != nil {
			// Unreachable for plain data; the id still keeps keys distinct.
			parts = append(parts, l.ID)
			continue
		}
		parts = append(parts, string(b))
	}
	return hash.Fingerprint(parts...)
}

// All returns the whole catalog in order.
func (s *ListingService) All() []model.ChannelListing {
	return s.repo.All()
}

// Get returns one listing by id.
func (s *ListingService) Get(id string) (*model.ChannelListing, error) {
	return s.repo.FindByID(id)
}

// Featured returns the listings shown on the home page.
func (s *ListingService) Featured() []model.ChannelListing {
	return s.repo.Featured(FeaturedCount)
}

// Filter returns the visible listings for c.
// Results are memoized in Redis by catalog fingerprint and criteria; any cache
// failure falls back to computing the result directly.
func (s *ListingService) Filter(ctx context.Context, c model.FilterCriteria) []model.ChannelListing {
	key := s.cacheKey(c)

	if s.cache.Enabled() {
		ids, err := s.cache.GetFilterResult(ctx, key)
		if err != nil {
			middleware.Logger.Warn().Err(err).Msg("cache: filter get error")
		} else if ids != nil {
			if listings, ok := s.resolve(ids); ok {
				metrics.CacheHits.Inc()
				return listings
			}
		}
		metrics.CacheMisses.Inc()
	}

	metrics.FilterApplications.Inc()
	result := Apply(s.repo.All(), c)

	if s.cache.Enabled() {
		ids := make([]string, 0, len(result))
		for _, l := range result {
			ids = append(ids, l.ID)
		}
		if err := s.cache.SetFilterResult(ctx, key, ids); err != nil {
			middleware.Logger.Warn().Err(err).Msg("cache: filter set error")
		}
	}

	return result
}

// Query builds the API response for a filter request.
func (s *ListingService) Query(ctx context.Context, c model.FilterCriteria) *model.ListingsResponse {
	listings := s.Filter(ctx, c)
	return &model.ListingsResponse{
		Listings: listings,
		Total:    s.repo.Len(),
		Matched:  len(listings),
		Criteria: c,
	}
}

func (s *ListingService) cacheKey(c model.FilterCriteria) string {
	return hash.Fingerprint(s.fingerprint, c.Key())
}

// resolve maps cached ids back to catalog entries. A stale id invalidates the entry.
func (s *ListingService) resolve(ids []string) ([]model.ChannelListing, bool) {
	out := make([]model.ChannelListing, 0, len(ids))
	for _, id := range ids {
		l, err := s.repo.FindByID(id)
		if err != nil {
			return nil, false
		}
		out = append(out, *l)
	}
	return out, true
}
