package playback

import "sync"

// OverlayState is the visibility of the title overlay.
type OverlayState int

const (
	OverlayVisible OverlayState = iota
	OverlayHidden
)

// Overlay keeps the title element in sync with playback: hidden while
// playing, visible while paused. Only play and pause move the state, so
// repeated events of the same kind are no-ops.
type Overlay struct {
	mu    sync.Mutex
	state OverlayState
	title Element
}

// newOverlay injects the title element into mount and subscribes to the
// engine. Callers gate on policy and the effective controls flag; an
// inactive overlay is simply never constructed.
func newOverlay(engine Engine, host Host, mount Element, title string) *Overlay {
	el := host.CreateElement("player-title-overlay")
	el.SetText(title)
	mount.Append(el)

	o := &Overlay{state: OverlayVisible, title: el}
	engine.On(EventPlay, o.hide)
	engine.On(EventPause, o.show)
	return o
}

// State returns the current overlay state.
func (o *Overlay) State() OverlayState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Overlay) hide() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == OverlayHidden {
		return
	}
	o.state = OverlayHidden
	o.title.SetHidden(true)
}

func (o *Overlay) show() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == OverlayVisible {
		return
	}
	o.state = OverlayVisible
	o.title.SetHidden(false)
}
