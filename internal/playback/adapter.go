package playback

import "sync"

// Plan is the fully resolved configuration a player needs to start: the
// outcome of source selection, track assembly, and flag defaulting, with no
// engine or page dependency. Page handlers serialize it into the served
// markup; Bootstrap applies it to a live engine.
type Plan struct {
	Source     SourceDescriptor `json:"source"`
	MIME       string           `json:"mime"`
	Tracks     []Track          `json:"tracks"`
	Poster     string           `json:"poster"`
	VR         bool             `json:"vr"`
	Flags      Flags            `json:"flags"`
	ClipStart  float64          `json:"clipStart"`
	ClipEnd    float64          `json:"clipEnd"`
	ShowTitle  bool             `json:"showTitle"`
	Fluid      bool             `json:"fluid"`
	Responsive bool             `json:"responsive"`
	ReportURL  string           `json:"reportUrl"`
}

// BuildPlan computes the plan for one record. Pure: same inputs, same plan.
func BuildPlan(m MediaObject, cfg EmbedConfig, pol PlayerPolicy, override, reportURL string) Plan {
	desc := SelectSource(m, override)
	controls := !cfg.HideControls

	return Plan{
		Source:     desc,
		MIME:       desc.Format.MIME(),
		Tracks:     AssembleTracks(m, cfg),
		Poster:     m.PosterURI,
		VR:         m.VREnabled,
		Flags:      Flags{Autoplay: cfg.Autoplay, Loop: cfg.Loop, Controls: controls, Muted: cfg.Muted},
		ClipStart:  cfg.StartSeconds,
		ClipEnd:    cfg.EndSeconds,
		ShowTitle:  pol.ShowTitleOverlay && controls,
		Fluid:      pol.FluidLayout,
		Responsive: cfg.Responsive,
		ReportURL:  reportURL,
	}
}

// Setup carries everything Bootstrap needs. Host and NewEngine are required;
// everything else has a working zero value.
type Setup struct {
	Host      Host
	NewEngine EngineFactory

	MountID        string // empty mounts into the document body
	Media          MediaObject
	Config         EmbedConfig
	Policy         PlayerPolicy
	Title          string
	SourceOverride string
	ReportURL      string // empty disables view reporting
	ShareItems     []ShareItem
	Client         Doer // report transport, defaults to http.DefaultClient
}

// Player is one bootstrapped player instance. It exposes no mutation API:
// after Bootstrap the engine runs on its own and the bootstrap only reacts
// to lifecycle events.
type Player struct {
	engine   Engine
	plan     Plan
	overlay  *Overlay
	reporter *Reporter
}

// Bootstrap constructs and configures the engine at the resolved mount
// point, wires the title overlay and the view reporter, and arms the
// one-shot clip-bound application. It has no error path: configuration gaps
// fall back to defaults and an unplayable source is the engine's problem.
func Bootstrap(s Setup) *Player {
	plan := BuildPlan(s.Media, s.Config, s.Policy, s.SourceOverride, s.ReportURL)

	mount := s.Host.MountPoint(s.MountID)
	engine := s.NewEngine(mount, EngineOptions{Fluid: plan.Fluid, Responsive: plan.Responsive})

	engine.SetSource(Source{
		Sources:    []SourceEntry{{Src: plan.Source.URI, Type: plan.MIME}},
		TextTracks: plan.Tracks,
		Poster:     plan.Poster,
		VR:         plan.VR,
		Preload:    "metadata",
	})
	engine.SetFlags(plan.Flags)

	if s.Policy.SocialSharing && len(s.ShareItems) > 0 {
		engine.SetShareItems(s.ShareItems)
	}

	armClipBounds(engine, plan.ClipStart, plan.ClipEnd)

	p := &Player{engine: engine, plan: plan}
	if plan.ShowTitle {
		p.overlay = newOverlay(engine, s.Host, mount, s.Title)
	}
	p.reporter = newReporter(engine, s.ReportURL, s.Client)
	return p
}

// armClipBounds defers both clip bounds to the first durationchange event.
// The engine rejects clip seeks before the media duration is known, so the
// bounds are applied inside that one callback and the listener removed; no
// resubscription, no second application. An engine that already knows the
// duration may run the callback inside On itself, before the unsubscribe
// function exists, so removal is deferred to whichever side sees it last.
func armClipBounds(engine Engine, start, end float64) {
	if start <= 0 && end <= 0 {
		return
	}
	var (
		mu      sync.Mutex
		applied bool
		off     func()
	)
	unsub := engine.On(EventDurationChange, func() {
		mu.Lock()
		if applied {
			mu.Unlock()
			return
		}
		applied = true
		o := off
		mu.Unlock()

		if start > 0 {
			engine.SetClipStart(start)
		}
		if end > 0 {
			engine.SetClipEnd(end)
		}
		if o != nil {
			o()
		}
	})
	mu.Lock()
	off = unsub
	done := applied
	mu.Unlock()
	if done {
		unsub()
	}
}

// Plan returns the resolved plan this player was bootstrapped with.
func (p *Player) Plan() Plan { return p.plan }

// OverlayState returns the title overlay state, or OverlayVisible when the
// overlay is inactive.
func (p *Player) OverlayState() OverlayState {
	if p.overlay == nil {
		return OverlayVisible
	}
	return p.overlay.State()
}

// ViewReported reports whether the one-time view notification succeeded.
func (p *Player) ViewReported() bool {
	return p.reporter != nil && p.reporter.Reported()
}
