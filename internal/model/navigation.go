package model

import "fmt"

// View is a named top-level page of the site.
type View string

const (
	ViewHome        View = "home"
	ViewBrowse      View = "browse"
	ViewSell        View = "sell"
	ViewReviews     View = "reviews"
	ViewAbout       View = "about"
	ViewHowToUse    View = "how-to-use"
	ViewLearnCourse View = "learn-course"
	ViewContact     View = "contact"
)

// Views lists every view identifier.
var Views = []View{
	ViewHome,
	ViewBrowse,
	ViewSell,
	ViewReviews,
	ViewAbout,
	ViewHowToUse,
	ViewLearnCourse,
	ViewContact,
}

// ParseView converts a client-supplied identifier into a View.
// Unknown identifiers are rejected here so transitions never see them.
func ParseView(s string) (View, error) {
	for _, v := range Views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// Effect is a side effect the rendering layer must perform after a transition.
type Effect string

const (
	EffectScrollToTop  Effect = "scroll-to-top"
	EffectLockScroll   Effect = "lock-scroll"
	EffectUnlockScroll Effect = "unlock-scroll"
)

// NavigationState is the active view plus the listing open in the detail overlay, if any.
type NavigationState struct {
	ActiveView View            `json:"activeView"`
	Selected   *ChannelListing `json:"selectedListing,omitempty"`
}

// DetailOpen reports whether the detail overlay is open.
func (s NavigationState) DetailOpen() bool {
	return s.Selected != nil
}

// SessionResponse is the API view of a browsing session.
type SessionResponse struct {
	SessionID  string           `json:"sessionId"`
	ActiveView View             `json:"activeView"`
	DetailOpen bool             `json:"detailOpen"`
	Selected   *ChannelListing  `json:"selectedListing,omitempty"`
	Criteria   FilterCriteria   `json:"criteria"`
	Listings   []ChannelListing `json:"listings"`
	Effects    []Effect         `json:"effects"`
}

// NavigateRequest is the body for a view change.
type NavigateRequest struct {
	View string `json:"view"`
}

// OpenDetailRequest is the body for opening a listing's detail overlay.
type OpenDetailRequest struct {
	ListingID string `json:"listingId"`
}
