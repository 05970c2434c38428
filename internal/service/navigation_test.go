package service

import (
	"reflect"
	"testing"

	"github.com/kbdigital/ytselleradda/internal/model"
)

func TestNavigation_InitialState(t *testing.T) {
	nav := NewNavigationController(nil)
	st := nav.State()
	if st.ActiveView != model.ViewHome {
		t.Errorf("ActiveView = %q, want home", st.ActiveView)
	}
	if st.DetailOpen() || st.Selected != nil {
		t.Error("overlay should start closed")
	}
	if nav.ScrollLocked() {
		t.Error("scroll should start unlocked")
	}
}

func TestNavigation_NavigateAfterOpenDetailClearsSelection(t *testing.T) {
	rec := &EffectRecorder{}
	nav := NewNavigationController(rec)
	listing := &model.ChannelListing{ID: "X", Name: "X"}

	nav.OpenDetail(listing)
	effects := nav.Navigate(model.ViewSell)

	st := nav.State()
	if st.ActiveView != model.ViewSell {
		t.Errorf("ActiveView = %q, want sell", st.ActiveView)
	}
	if st.DetailOpen() || st.Selected != nil {
		t.Error("navigate must close the detail overlay")
	}
	want := []model.Effect{model.EffectUnlockScroll, model.EffectScrollToTop}
	if !reflect.DeepEqual(effects, want) {
		t.Errorf("effects = %v, want %v", effects, want)
	}
	wantAll := []model.Effect{model.EffectLockScroll, model.EffectUnlockScroll, model.EffectScrollToTop}
	if !reflect.DeepEqual(rec.Effects, wantAll) {
		t.Errorf("sink effects = %v, want %v", rec.Effects, wantAll)
	}
}

func TestNavigation_NavigateAlwaysScrollsToTop(t *testing.T) {
	nav := NewNavigationController(nil)
	for _, v := range model.Views {
		effects := nav.Navigate(v)
		if !reflect.DeepEqual(effects, []model.Effect{model.EffectScrollToTop}) {
			t.Errorf("Navigate(%s) effects = %v", v, effects)
		}
		if nav.State().ActiveView != v {
			t.Errorf("ActiveView = %q, want %q", nav.State().ActiveView, v)
		}
	}
}

func TestNavigation_OpenDetailKeepsView(t *testing.T) {
	nav := NewNavigationController(nil)
	nav.Navigate(model.ViewBrowse)

	listing := &model.ChannelListing{ID: "1"}
	effects := nav.OpenDetail(listing)

	if nav.State().ActiveView != model.ViewBrowse {
		t.Errorf("OpenDetail changed the view to %q", nav.State().ActiveView)
	}
	if nav.State().Selected != listing {
		t.Error("selected listing should be the same pointer that was opened")
	}
	if !reflect.DeepEqual(effects, []model.Effect{model.EffectLockScroll}) {
		t.Errorf("effects = %v, want [lock-scroll]", effects)
	}
	if !nav.ScrollLocked() {
		t.Error("scroll should be locked while the overlay is open")
	}
}

func TestNavigation_SwitchingListingsDoesNotRelock(t *testing.T) {
	rec := &EffectRecorder{}
	nav := NewNavigationController(rec)

	nav.OpenDetail(&model.ChannelListing{ID: "1"})
	effects := nav.OpenDetail(&model.ChannelListing{ID: "2"})

	if len(effects) != 0 {
		t.Errorf("effects = %v, want none", effects)
	}
	if nav.State().Selected.ID != "2" {
		t.Errorf("Selected = %s, want 2", nav.State().Selected.ID)
	}
	if !reflect.DeepEqual(rec.Effects, []model.Effect{model.EffectLockScroll}) {
		t.Errorf("sink effects = %v", rec.Effects)
	}
}

func TestNavigation_CloseDetail(t *testing.T) {
	nav := NewNavigationController(nil)

	if effects := nav.CloseDetail(); len(effects) != 0 {
		t.Errorf("closing a closed overlay emitted %v", effects)
	}

	nav.OpenDetail(&model.ChannelListing{ID: "1"})
	effects := nav.CloseDetail()
	if !reflect.DeepEqual(effects, []model.Effect{model.EffectUnlockScroll}) {
		t.Errorf("effects = %v, want [unlock-scroll]", effects)
	}
	if nav.State().DetailOpen() {
		t.Error("overlay should be closed")
	}
}

func TestNavigation_OpenNilCloses(t *testing.T) {
	nav := NewNavigationController(nil)
	nav.OpenDetail(&model.ChannelListing{ID: "1"})
	nav.OpenDetail(nil)
	if nav.State().DetailOpen() {
		t.Error("OpenDetail(nil) should close the overlay")
	}
}

func TestRestoreNavigation(t *testing.T) {
	listing := &model.ChannelListing{ID: "9"}
	nav := RestoreNavigation(model.NavigationState{ActiveView: model.ViewAbout, Selected: listing}, nil)
	if nav.State().ActiveView != model.ViewAbout || !nav.ScrollLocked() {
		t.Errorf("restored state = %+v", nav.State())
	}

	nav = RestoreNavigation(model.NavigationState{}, nil)
	if nav.State().ActiveView != model.ViewHome {
		t.Errorf("empty view should restore to home, got %q", nav.State().ActiveView)
	}
}

func TestParseView(t *testing.T) {
	for _, v := range model.Views {
		got, err := model.ParseView(string(v))
		if err != nil || got != v {
			t.Errorf("ParseView(%q) = %q, %v", v, got, err)
		}
	}
	if _, err := model.ParseView("admin"); err == nil {
		t.Error("unknown view should be rejected")
	}
}
