package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kbdigital/ytselleradda/internal/metrics"
	"github.com/kbdigital/ytselleradda/internal/model"
)

// ErrSessionNotFound is returned for an unknown or expired session id.
var ErrSessionNotFound = errors.New("session not found")

// ErrUnknownCarousel is returned for a carousel kind the session does not track.
var ErrUnknownCarousel = errors.New("unknown carousel")

// CarouselKind names one of the per-session carousels.
type CarouselKind string

const (
	CarouselBanners CarouselKind = "banners"
	CarouselReviews CarouselKind = "reviews"
)

// CarouselConfig sizes the per-session carousels.
type CarouselConfig struct {
	Banners        int
	Reviews        int
	BannerInterval time.Duration
}

// carouselVisible reports whether a carousel is on screen in view.
// The offer banner sits on the home page; testimonials on home and reviews.
func carouselVisible(kind CarouselKind, v model.View) bool {
	switch kind {
	case CarouselBanners:
		return v == model.ViewHome
	case CarouselReviews:
		return v == model.ViewHome || v == model.ViewReviews
	}
	return false
}

// SessionService holds per-visitor navigation, filter and carousel state on
// the server, driving a NavigationController for every transition.
type SessionService struct {
	store     SessionStore
	listings  *ListingService
	carousels CarouselConfig
	newID     func() string
	now       func() time.Time

	// mu serializes load-modify-save cycles.
	mu sync.Mutex
}

func NewSessionService(store SessionStore, listings *ListingService, carousels CarouselConfig) *SessionService {
	return &SessionService{
		store:     store,
		listings:  listings,
		carousels: carousels,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// sessionState is a session record restored into its working objects.
type sessionState struct {
	nav      *NavigationController
	criteria *model.FilterCriteria
	banners  *Carousel
	reviews  *Carousel
}

func (st *sessionState) carousel(kind CarouselKind) *Carousel {
	switch kind {
	case CarouselBanners:
		return st.banners
	case CarouselReviews:
		return st.reviews
	}
	return nil
}

// Create starts a session on the home view with default filters. The
// carousels visible on home start with it.
func (s *SessionService) Create(ctx context.Context) (*model.SessionResponse, error) {
	rec := &SessionRecord{
		ID:         s.newID(),
		ActiveView: model.ViewHome,
		Criteria:   model.DefaultFilterCriteria(),
	}
	st := s.restore(rec)
	s.activate(st, model.ViewHome, s.now())
	s.persist(rec, st)

	if err := s.store.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	metrics.SessionsCreated.Inc()

	return s.response(ctx, rec, st, []model.Effect{}), nil
}

// Get returns the current state of a session without changing it.
func (s *SessionService) Get(ctx context.Context, id string) (*model.SessionResponse, error) {
	return s.mutate(ctx, id, func(*sessionState) ([]model.Effect, error) {
		return []model.Effect{}, nil
	})
}

// Navigate switches the session's active view.
func (s *SessionService) Navigate(ctx context.Context, id string, view model.View) (*model.SessionResponse, error) {
	return s.mutate(ctx, id, func(st *sessionState) ([]model.Effect, error) {
		return st.nav.Navigate(view), nil
	})
}

// OpenDetail opens the detail overlay for a catalog listing.
// An unknown session is reported before an unknown listing.
func (s *SessionService) OpenDetail(ctx context.Context, id, listingID string) (*model.SessionResponse, error) {
	return s.mutate(ctx, id, func(st *sessionState) ([]model.Effect, error) {
		listing, err := s.listings.Get(listingID)
		if err != nil {
			return nil, err
		}
		return st.nav.OpenDetail(listing), nil
	})
}

// CloseDetail closes the detail overlay.
func (s *SessionService) CloseDetail(ctx context.Context, id string) (*model.SessionResponse, error) {
	return s.mutate(ctx, id, func(st *sessionState) ([]model.Effect, error) {
		return st.nav.CloseDetail(), nil
	})
}

// UpdateFilters replaces the session's filter criteria.
func (s *SessionService) UpdateFilters(ctx context.Context, id string, c model.FilterCriteria) (*model.SessionResponse, error) {
	return s.mutate(ctx, id, func(st *sessionState) ([]model.Effect, error) {
		*st.criteria = c
		return []model.Effect{}, nil
	})
}

// ResetFilters restores the default criteria.
func (s *SessionService) ResetFilters(ctx context.Context, id string) (*model.SessionResponse, error) {
	return s.mutate(ctx, id, func(st *sessionState) ([]model.Effect, error) {
		st.criteria.Reset()
		return []model.Effect{}, nil
	})
}

// Carousel returns the session's view of one carousel, applying any
// auto-advance ticks that fell due since the last request.
func (s *SessionService) Carousel(ctx context.Context, id string, kind CarouselKind) (*model.CarouselResponse, error) {
	return s.moveCarousel(ctx, id, kind, func(*Carousel) error { return nil })
}

// CarouselNext advances one of the session's carousels by one slide.
func (s *SessionService) CarouselNext(ctx context.Context, id string, kind CarouselKind) (*model.CarouselResponse, error) {
	return s.moveCarousel(ctx, id, kind, func(c *Carousel) error {
		c.Next()
		return nil
	})
}

// CarouselPrev moves one of the session's carousels back by one slide.
func (s *SessionService) CarouselPrev(ctx context.Context, id string, kind CarouselKind) (*model.CarouselResponse, error) {
	return s.moveCarousel(ctx, id, kind, func(c *Carousel) error {
		c.Prev()
		return nil
	})
}

// CarouselJump moves one of the session's carousels to index.
// Returns ErrInvalidIndex for an index outside the slides.
func (s *SessionService) CarouselJump(ctx context.Context, id string, kind CarouselKind, index int) (*model.CarouselResponse, error) {
	return s.moveCarousel(ctx, id, kind, func(c *Carousel) error {
		return c.Jump(index)
	})
}

// End discards a session. Ending an unknown session returns ErrSessionNotFound.
func (s *SessionService) End(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if rec == nil {
		return ErrSessionNotFound
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

type transition func(st *sessionState) ([]model.Effect, error)

func (s *SessionService) mutate(ctx context.Context, id string, fn transition) (*model.SessionResponse, error) {
	rec, st, effects, err := s.apply(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	return s.response(ctx, rec, st, effects), nil
}

func (s *SessionService) moveCarousel(ctx context.Context, id string, kind CarouselKind, move func(*Carousel) error) (*model.CarouselResponse, error) {
	var c *Carousel
	_, _, _, err := s.apply(ctx, id, func(st *sessionState) ([]model.Effect, error) {
		if c = st.carousel(kind); c == nil {
			return nil, ErrUnknownCarousel
		}
		return nil, move(c)
	})
	if err != nil {
		return nil, err
	}
	return &model.CarouselResponse{
		Count:        c.Count(),
		CurrentIndex: c.Index(),
		IntervalMs:   c.Interval().Milliseconds(),
		Running:      c.Running(),
	}, nil
}

// apply runs one load-modify-save cycle. A failed transition leaves the
// stored session untouched.
func (s *SessionService) apply(ctx context.Context, id string, fn transition) (*SessionRecord, *sessionState, []model.Effect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load session: %w", err)
	}
	if rec == nil {
		return nil, nil, nil, ErrSessionNotFound
	}

	now := s.now()
	st := s.restore(rec)
	if ticks := st.banners.Advance(now); ticks > 0 {
		metrics.BannerRotations.Add(float64(ticks))
	}
	st.reviews.Advance(now)

	before := st.nav.State().ActiveView
	effects, err := fn(st)
	if err != nil {
		return nil, nil, nil, err
	}
	if after := st.nav.State().ActiveView; after != before {
		s.activate(st, after, now)
	}

	s.persist(rec, st)
	if err := s.store.Save(ctx, rec); err != nil {
		return nil, nil, nil, fmt.Errorf("save session: %w", err)
	}
	return rec, st, effects, nil
}

// activate starts every carousel visible in view from its first slide and
// stops the rest, as the page they sit on is entered or left.
func (s *SessionService) activate(st *sessionState, view model.View, now time.Time) {
	for _, kind := range []CarouselKind{CarouselBanners, CarouselReviews} {
		c := st.carousel(kind)
		if carouselVisible(kind, view) {
			c.Start(now)
		} else {
			c.Stop(now)
		}
	}
}

// restore rebuilds the working state from a record. A selected id no longer
// in the catalog restores as a closed overlay.
func (s *SessionService) restore(rec *SessionRecord) *sessionState {
	state := model.NavigationState{ActiveView: rec.ActiveView}
	if rec.SelectedID != "" {
		if l, err := s.listings.Get(rec.SelectedID); err == nil {
			state.Selected = l
		}
	}
	return &sessionState{
		nav:      RestoreNavigation(state, nil),
		criteria: &rec.Criteria,
		banners:  RestoreCarousel(s.carousels.Banners, s.carousels.BannerInterval, rec.Banners),
		reviews:  RestoreCarousel(s.carousels.Reviews, 0, rec.Reviews),
	}
}

// persist writes the working state back into rec.
func (s *SessionService) persist(rec *SessionRecord, st *sessionState) {
	nav := st.nav.State()
	rec.ActiveView = nav.ActiveView
	rec.SelectedID = ""
	if nav.Selected != nil {
		rec.SelectedID = nav.Selected.ID
	}
	rec.Banners = st.banners.State()
	rec.Reviews = st.reviews.State()
}

func (s *SessionService) response(ctx context.Context, rec *SessionRecord, st *sessionState, effects []model.Effect) *model.SessionResponse {
	nav := st.nav.State()
	return &model.SessionResponse{
		SessionID:  rec.ID,
		ActiveView: nav.ActiveView,
		DetailOpen: nav.DetailOpen(),
		Selected:   nav.Selected,
		Criteria:   rec.Criteria,
		Listings:   s.listings.Filter(ctx, rec.Criteria),
		Effects:    effects,
	}
}
