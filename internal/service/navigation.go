package service

import "github.com/kbdigital/ytselleradda/internal/model"

// EffectSink receives the side effects produced by navigation transitions.
type EffectSink interface {
	Emit(effects ...model.Effect)
}

// EffectRecorder is an EffectSink that keeps every effect it receives.
type EffectRecorder struct {
	Effects []model.Effect
}

func (r *EffectRecorder) Emit(effects ...model.Effect) {
	r.Effects = append(r.Effects, effects...)
}

// NavigationController owns the active view and the detail overlay.
//
// States are (view, overlay) where overlay is closed or open(listing).
// Changing view always closes the overlay. Scroll locking is balanced:
// a lock is emitted only when the overlay opens from closed, and an unlock
// only when it closes from open.
type NavigationController struct {
	state model.NavigationState
	sink  EffectSink
}

// NewNavigationController starts on the home view with the overlay closed.
// sink may be nil.
func NewNavigationController(sink EffectSink) *NavigationController {
	return RestoreNavigation(model.NavigationState{ActiveView: model.ViewHome}, sink)
}

// RestoreNavigation resumes a controller from a previously saved state.
func RestoreNavigation(state model.NavigationState, sink EffectSink) *NavigationController {
	if state.ActiveView == "" {
		state.ActiveView = model.ViewHome
	}
	return &NavigationController{state: state, sink: sink}
}

// State returns a snapshot of the current state.
func (n *NavigationController) State() model.NavigationState {
	return n.state
}

// ScrollLocked reports whether background scrolling is currently suppressed.
func (n *NavigationController) ScrollLocked() bool {
	return n.state.DetailOpen()
}

// Navigate switches to view, closes the overlay and asks for a scroll to top.
func (n *NavigationController) Navigate(view model.View) []model.Effect {
	var effects []model.Effect
	if n.state.DetailOpen() {
		effects = append(effects, model.EffectUnlockScroll)
	}
	n.state.ActiveView = view
	n.state.Selected = nil
	effects = append(effects, model.EffectScrollToTop)
	return n.emit(effects)
}

// OpenDetail shows listing in the overlay without changing the active view.
// A nil listing closes the overlay.
func (n *NavigationController) OpenDetail(listing *model.ChannelListing) []model.Effect {
	if listing == nil {
		return n.CloseDetail()
	}
	wasOpen := n.state.DetailOpen()
	n.state.Selected = listing
	if wasOpen {
		return n.emit(nil)
	}
	return n.emit([]model.Effect{model.EffectLockScroll})
}

// CloseDetail closes the overlay and releases the scroll lock.
func (n *NavigationController) CloseDetail() []model.Effect {
	if !n.state.DetailOpen() {
		return n.emit(nil)
	}
	n.state.Selected = nil
	return n.emit([]model.Effect{model.EffectUnlockScroll})
}

func (n *NavigationController) emit(effects []model.Effect) []model.Effect {
	if effects == nil {
		effects = []model.Effect{}
	}
	if n.sink != nil && len(effects) > 0 {
		n.sink.Emit(effects...)
	}
	return effects
}
