package playback

// Event names the engine lifecycle events the bootstrap subscribes to.
type Event string

const (
	EventPlay           Event = "play"
	EventPause          Event = "pause"
	EventDurationChange Event = "durationchange"
)

// SourceEntry is one {src, type} pair in the engine's source assignment.
type SourceEntry struct {
	Src  string `json:"src"`
	Type string `json:"type"`
}

// Source is the payload assigned to the engine in one shot.
type Source struct {
	Sources    []SourceEntry
	TextTracks []Track
	Poster     string
	VR         bool
	Preload    string
}

// Flags are the mutable playback properties set after construction.
type Flags struct {
	Autoplay bool `json:"autoplay"`
	Loop     bool `json:"loop"`
	Controls bool `json:"controls"`
	Muted    bool `json:"muted"`
}

// ShareItem is one social sharing entry the engine can surface.
type ShareItem struct {
	Label   string
	Payload string
}

// Engine wraps one live player instance of the third-party engine. On
// returns a function that removes the registered listener; calling it more
// than once must be harmless.
type Engine interface {
	SetSource(Source)
	SetFlags(Flags)
	SetClipStart(seconds float64)
	SetClipEnd(seconds float64)
	SetShareItems([]ShareItem)
	On(ev Event, fn func()) (off func())
}

// EngineOptions is the construction-time configuration of the engine.
type EngineOptions struct {
	Fluid      bool
	Responsive bool
}

// EngineFactory constructs an engine mounted into the given element.
type EngineFactory func(mount Element, opts EngineOptions) Engine

// Element is the minimal handle on a page element the bootstrap needs.
type Element interface {
	Append(child Element)
	SetText(s string)
	SetHidden(hidden bool)
}

// Host abstracts the hosting page. The bootstrap never touches page state
// except through it.
type Host interface {
	// MountPoint resolves a container by id; an empty or unknown id
	// resolves to the document body.
	MountPoint(id string) Element
	// CreateElement makes a detached element carrying the given class.
	CreateElement(class string) Element
}
