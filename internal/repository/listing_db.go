package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kbdigital/ytselleradda/internal/model"
)

// Querier is the subset of *pgxpool.Pool used to read the catalog.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const listingsQuery = `
	SELECT id, listing_id, name, niche, status, description, language,
	       channel_type, content_type, creation_date, image_url, contact_email,
	       subscribers, watch_hours, lifetime_views, views_last_28_days,
	       real_time_views, copyright_strikes, community_strikes,
	       monetized, asking_price, monthly_revenue, revenue_last_28_days,
	       lifetime_revenue, growth_data
	FROM listings
	ORDER BY position ASC, id ASC`

// LoadListingsFromDB reads the full catalog from the listings table.
// It is called once at startup; the result seeds a ListingRepo.
func LoadListingsFromDB(ctx context.Context, q Querier) ([]model.ChannelListing, error) {
	rows, err := q.Query(ctx, listingsQuery)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	var listings []model.ChannelListing
	for rows.Next() {
		var l model.ChannelListing
		var niche, status string
		var growth []byte
		err := rows.Scan(
			&l.ID, &l.ListingID, &l.Name, &niche, &status, &l.Description, &l.Language,
			&l.ChannelType, &l.ContentType, &l.CreationDate, &l.ImageURL, &l.ContactEmail,
			&l.Subscribers, &l.WatchHours, &l.LifetimeViews, &l.ViewsLast28Days,
			&l.RealTimeViews, &l.CopyrightStrikes, &l.CommunityStrikes,
			&l.Monetized, &l.AskingPrice, &l.MonthlyRevenue, &l.RevenueLast28Days,
			&l.LifetimeRevenue, &growth,
		)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		l.Niche = model.Niche(niche)
		l.Status = model.ListingStatus(status)

		l.GrowthData, err = decodeGrowthData(growth)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", l.ID, err)
		}
		if err := validateListing(l); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read listings: %w", err)
	}
	return listings, nil
}

func decodeGrowthData(raw []byte) ([]model.GrowthPoint, error) {
	if len(raw) == 0 {
		return []model.GrowthPoint{}, nil
	}
	var points []model.GrowthPoint
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, fmt.Errorf("decode growth_data: %w", err)
	}
	if points == nil {
		points = []model.GrowthPoint{}
	}
	return points, nil
}

// validateListing enforces the catalog field invariants shared by every source.
func validateListing(l model.ChannelListing) error {
	if !l.Niche.Valid() {
		return fmt.Errorf("listing %s: invalid niche %q", l.ID, l.Niche)
	}
	if l.Status != model.StatusAvailable && l.Status != model.StatusSold {
		return fmt.Errorf("listing %s: invalid status %q", l.ID, l.Status)
	}
	for name, v := range map[string]int64{
		"subscribers":          l.Subscribers,
		"watch_hours":          l.WatchHours,
		"lifetime_views":       l.LifetimeViews,
		"views_last_28_days":   l.ViewsLast28Days,
		"real_time_views":      l.RealTimeViews,
		"copyright_strikes":    l.CopyrightStrikes,
		"community_strikes":    l.CommunityStrikes,
		"asking_price":         l.AskingPrice,
		"revenue_last_28_days": l.RevenueLast28Days,
		"lifetime_revenue":     l.LifetimeRevenue,
	} {
		if v < 0 {
			return fmt.Errorf("listing %s: %s must be non-negative", l.ID, name)
		}
	}
	if l.MonthlyRevenue != nil && *l.MonthlyRevenue < 0 {
		return fmt.Errorf("listing %s: monthly_revenue must be non-negative", l.ID)
	}
	return nil
}
