// Package playback computes and drives the player bootstrap for a record
// page: it picks the playable source, assembles auxiliary tracks, configures
// a player engine instance, keeps the title overlay in sync with playback,
// and reports a view once playback starts.
//
// The engine itself (decoding, rendering, UI chrome) and the page hosting it
// are external: both are reached only through the narrow Engine and Host
// interfaces in engine.go.
package playback

// Subtitle is one subtitle file attached to a record.
type Subtitle struct {
	URI      string
	Language string
}

// MediaObject describes the playable assets of one record. It is supplied by
// the hosting page and never mutated after construction.
type MediaObject struct {
	PrimaryURI     string // progressive file
	ManifestURI    string // adaptive streaming manifest, may be empty
	SubformatCount int    // number of transcoded subformats behind the manifest
	PosterURI      string
	ThumbnailsURI  string // scrub-bar thumbnail cue track
	Subtitles      []Subtitle
	VREnabled      bool
}

// EmbedConfig carries the per-embed playback options. The zero value is the
// documented default for every field: playback paused, sound on, controls
// shown, subtitles available with no preselected language, no clip bounds.
type EmbedConfig struct {
	Autoplay              bool
	Loop                  bool
	Muted                 bool
	HideControls          bool // suppress native controls
	SubtitlesOff          bool // drop all auxiliary tracks, thumbnails included
	PreferredSubtitleLang string
	StartSeconds          float64 // clip start, 0 = unset
	EndSeconds            float64 // clip end, 0 = unset
	Responsive            bool
}

// PlayerPolicy carries host-level feature flags, fixed for a deployment.
type PlayerPolicy struct {
	FluidLayout      bool
	ShowTitleOverlay bool
	SocialSharing    bool
}
