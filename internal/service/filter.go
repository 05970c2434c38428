package service

import "github.com/kbdigital/ytselleradda/internal/model"

// Matches reports whether l satisfies every predicate of c.
func Matches(l *model.ChannelListing, c model.FilterCriteria) bool {
	if c.Niche != model.NicheAll && l.Niche != c.Niche {
		return false
	}
	if l.Subscribers < c.MinSubs {
		return false
	}
	if l.AskingPrice > c.MaxPrice {
		return false
	}
	if c.Monetized != model.MonetizedAll && (c.Monetized == model.MonetizedYes) != l.Monetized {
		return false
	}
	return true
}

// Apply returns the listings of catalog that match c, in catalog order.
// The result is never nil; an empty slice means nothing matched.
func Apply(catalog []model.ChannelListing, c model.FilterCriteria) []model.ChannelListing {
	out := make([]model.ChannelListing, 0, len(catalog))
	for i := range catalog {
		if Matches(&catalog[i], c) {
			out = append(out, catalog[i])
		}
	}
	return out
}
