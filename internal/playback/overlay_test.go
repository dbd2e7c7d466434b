package playback

import "testing"

func overlayFixture(t *testing.T, pol PlayerPolicy, cfg EmbedConfig) (*Player, *fakeEngine, *fakeHost) {
	t.Helper()
	engine := newFakeEngine()
	host := newFakeHost()
	p := Bootstrap(Setup{
		Host:      host,
		NewEngine: engine.factory(),
		Media:     MediaObject{PrimaryURI: "file.mp4"},
		Config:    cfg,
		Policy:    pol,
		Title:     "Test Record",
	})
	return p, engine, host
}

func TestOverlay_PlayPausePlaySequence(t *testing.T) {
	p, engine, host := overlayFixture(t, PlayerPolicy{ShowTitleOverlay: true}, EmbedConfig{})

	if p.OverlayState() != OverlayVisible {
		t.Fatal("initial state should be Visible")
	}
	if len(host.created) != 1 {
		t.Fatalf("expected one injected title element, got %d", len(host.created))
	}
	if host.created[0].text != "Test Record" {
		t.Errorf("title text = %q", host.created[0].text)
	}

	want := []struct {
		ev    Event
		state OverlayState
	}{
		{EventPlay, OverlayHidden},
		{EventPause, OverlayVisible},
		{EventPlay, OverlayHidden},
	}
	for _, step := range want {
		engine.fire(step.ev)
		if p.OverlayState() != step.state {
			t.Errorf("after %s: state = %v, want %v", step.ev, p.OverlayState(), step.state)
		}
	}

	if !host.created[0].hidden {
		t.Error("title element should end hidden")
	}
}

func TestOverlay_RepeatedPlayIsIdempotent(t *testing.T) {
	p, engine, _ := overlayFixture(t, PlayerPolicy{ShowTitleOverlay: true}, EmbedConfig{})

	engine.fire(EventPlay)
	engine.fire(EventPlay)
	engine.fire(EventPlay)
	if p.OverlayState() != OverlayHidden {
		t.Error("repeated play events must leave the state Hidden")
	}
}

func TestOverlay_InactiveWhenPolicyOff(t *testing.T) {
	_, engine, host := overlayFixture(t, PlayerPolicy{}, EmbedConfig{})

	if len(host.created) != 0 {
		t.Error("no element should be injected when the overlay feature is off")
	}
	if engine.activeListeners(EventPause) != 0 {
		t.Error("no pause subscription expected when the overlay is inactive")
	}
}

func TestOverlay_InactiveWhenControlsSuppressed(t *testing.T) {
	_, engine, host := overlayFixture(t, PlayerPolicy{ShowTitleOverlay: true}, EmbedConfig{HideControls: true})

	if len(host.created) != 0 {
		t.Error("no element should be injected when controls are suppressed")
	}
	if engine.activeListeners(EventPause) != 0 {
		t.Error("no pause subscription expected when controls are suppressed")
	}
}
