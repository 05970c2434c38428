package service

import (
	"errors"
	"time"

	"github.com/kbdigital/ytselleradda/internal/model"
)

// DefaultBannerInterval is how often the promotional banner advances.
const DefaultBannerInterval = 5 * time.Second

// ErrInvalidIndex is returned by Jump for an index outside [0, Count()).
var ErrInvalidIndex = errors.New("carousel index out of range")

// Carousel tracks the current slide of a fixed-size rotation.
// Index arithmetic wraps in both directions. A carousel with no items
// stays at index 0 and ignores every move.
//
// Auto-advance is a timer anchored at Start and cancelled by Stop. Instead of a
// goroutine per carousel, elapsed ticks are applied when the owner calls
// Advance, so a carousel nobody is looking at costs nothing.
// A Carousel is a single-owner value; callers serialize access.
type Carousel struct {
	count    int
	interval time.Duration
	index    int
	since    time.Time // time of the last applied tick; zero when stopped
}

// RestoreCarousel rebuilds a carousel from persisted state. The zero state is
// a stopped carousel at index 0; an index that no longer fits count restores as 0.
func RestoreCarousel(count int, interval time.Duration, st model.CarouselState) *Carousel {
	if count < 0 {
		count = 0
	}
	c := &Carousel{count: count, interval: interval, index: st.Index}
	if c.index < 0 || c.index >= count {
		c.index = 0
	}
	if st.RunningSince != nil && c.autoAdvances() {
		c.since = *st.RunningSince
	}
	return c
}

// State returns the persistable form of the carousel.
func (c *Carousel) State() model.CarouselState {
	st := model.CarouselState{Index: c.index}
	if c.Running() {
		since := c.since
		st.RunningSince = &since
	}
	return st
}

// Count returns the number of items.
func (c *Carousel) Count() int { return c.count }

// Interval returns the auto-advance period. Zero means manual only.
func (c *Carousel) Interval() time.Duration { return c.interval }

// Index returns the current slide.
func (c *Carousel) Index() int { return c.index }

// Running reports whether the auto-advance timer is active.
func (c *Carousel) Running() bool { return !c.since.IsZero() }

// Next advances one slide, wrapping to 0 after the last.
func (c *Carousel) Next() int {
	return c.step(1)
}

// Prev goes back one slide, wrapping to the last from 0.
func (c *Carousel) Prev() int {
	return c.step(-1)
}

func (c *Carousel) step(delta int) int {
	if c.count == 0 {
		return 0
	}
	c.index = ((c.index+delta)%c.count + c.count) % c.count
	return c.index
}

// Jump moves directly to index i.
func (c *Carousel) Jump(i int) error {
	if i < 0 || i >= c.count {
		return ErrInvalidIndex
	}
	c.index = i
	return nil
}

// Start acquires the auto-advance timer at now, from slide 0.
// A carousel with fewer than two items or no interval never runs.
func (c *Carousel) Start(now time.Time) {
	c.index = 0
	c.since = time.Time{}
	if c.autoAdvances() {
		c.since = now
	}
}

// Stop applies any ticks due by now and cancels the timer.
func (c *Carousel) Stop(now time.Time) {
	c.Advance(now)
	c.since = time.Time{}
}

// Advance applies every tick that fell due between the last one and now and
// returns how many were applied. A stopped carousel never moves.
func (c *Carousel) Advance(now time.Time) int {
	if !c.Running() || !now.After(c.since) {
		return 0
	}
	ticks := int(now.Sub(c.since) / c.interval)
	if ticks == 0 {
		return 0
	}
	c.since = c.since.Add(time.Duration(ticks) * c.interval)
	c.index = (c.index + ticks%c.count) % c.count
	return ticks
}

func (c *Carousel) autoAdvances() bool {
	return c.count >= 2 && c.interval > 0
}
