package repository

import (
	"errors"
	"fmt"

	"github.com/kbdigital/ytselleradda/internal/model"
)

// ErrNotFound is returned when a listing lookup has no match.
var ErrNotFound = errors.New("listing not found")

// ListingRepo is the read-only catalog. It is built once from an injected
// slice and never mutated afterwards.
type ListingRepo struct {
	listings []model.ChannelListing
	byID     map[string]int
}

// NewListingRepo copies listings into a new catalog.
// Duplicate or empty IDs are rejected.
func NewListingRepo(listings []model.ChannelListing) (*ListingRepo, error) {
	r := &ListingRepo{
		listings: make([]model.ChannelListing, len(listings)),
		byID:     make(map[string]int, len(listings)),
	}
	copy(r.listings, listings)

	for i, l := range r.listings {
		if l.ID == "" {
			return nil, fmt.Errorf("listing at position %d has no id", i)
		}
		if _, dup := r.byID[l.ID]; dup {
			return nil, fmt.Errorf("duplicate listing id %q", l.ID)
		}
		r.byID[l.ID] = i
	}
	return r, nil
}

// All returns the catalog in insertion order. The returned slice is the
// catalog itself; callers must treat it as read-only.
func (r *ListingRepo) All() []model.ChannelListing {
	return r.listings
}

// FindByID returns the listing with the given id.
func (r *ListingRepo) FindByID(id string) (*model.ChannelListing, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r.listings[i], nil
}

// Featured returns up to n listings from the head of the catalog.
func (r *ListingRepo) Featured(n int) []model.ChannelListing {
	if n > len(r.listings) {
		n = len(r.listings)
	}
	if n < 0 {
		n = 0
	}
	return r.listings[:n]
}

// Len returns the catalog size.
func (r *ListingRepo) Len() int {
	return len(r.listings)
}
