package model

import (
	"fmt"
	"strconv"
)

// MonetizedFilter selects listings by monetization status.
type MonetizedFilter string

const (
	MonetizedAll MonetizedFilter = "All"
	MonetizedYes MonetizedFilter = "Yes"
	MonetizedNo  MonetizedFilter = "No"
)

// Valid reports whether m is one of All, Yes or No.
func (m MonetizedFilter) Valid() bool {
	return m == MonetizedAll || m == MonetizedYes || m == MonetizedNo
}

// DefaultMaxPrice is the price ceiling applied when no price filter is chosen.
const DefaultMaxPrice int64 = 1_000_000

// FilterCriteria is the browse view's filter state.
type FilterCriteria struct {
	Niche     Niche           `json:"niche"`
	MinSubs   int64           `json:"minSubs"`
	MaxPrice  int64           `json:"maxPrice"`
	Monetized MonetizedFilter `json:"monetized"`
}

// DefaultFilterCriteria returns criteria that match every listing priced at or below DefaultMaxPrice.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Niche:     NicheAll,
		MinSubs:   0,
		MaxPrice:  DefaultMaxPrice,
		Monetized: MonetizedAll,
	}
}

// Reset restores the default criteria in place.
func (f *FilterCriteria) Reset() {
	*f = DefaultFilterCriteria()
}

// Key returns a canonical string for f. Equal criteria always produce equal keys.
func (f FilterCriteria) Key() string {
	return fmt.Sprintf("niche=%s|minSubs=%d|maxPrice=%d|monetized=%s",
		f.Niche, f.MinSubs, f.MaxPrice, f.Monetized)
}

// Option is a labelled filter preset offered by the browse UI.
type Option struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// SubscriberOptions are the minimum-subscriber presets.
var SubscriberOptions = []Option{
	{Label: "Subscribers", Value: 0},
	{Label: "1,000+", Value: 1_000},
	{Label: "10,000+", Value: 10_000},
	{Label: "50,000+", Value: 50_000},
	{Label: "100,000+", Value: 100_000},
}

// PriceOptions are the maximum-price presets.
var PriceOptions = []Option{
	{Label: "Max Price", Value: 10_000_000},
	{Label: "Under ₹50,000", Value: 50_000},
	{Label: "Under ₹1,00,000", Value: 100_000},
	{Label: "Under ₹5,00,000", Value: 500_000},
	{Label: "Under ₹10,00,000", Value: 1_000_000},
}

// FilterOptionsResponse describes the filter controls for the browse view.
type FilterOptionsResponse struct {
	Niches      []Niche           `json:"niches"`
	Subscribers []Option          `json:"subscribers"`
	Prices      []Option          `json:"prices"`
	Monetized   []MonetizedFilter `json:"monetized"`
	Defaults    FilterCriteria    `json:"defaults"`
}

// FormatCount renders n with thousands separators, e.g. 12500 -> "12,500".
func FormatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
