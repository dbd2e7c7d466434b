package playback

// TrackKind distinguishes thumbnail cue tracks from subtitle tracks.
type TrackKind string

const (
	TrackMetadata TrackKind = "metadata"
	TrackSubtitle TrackKind = "subtitles"
)

// Track is one auxiliary text track handed to the engine.
type Track struct {
	Kind     TrackKind `json:"kind"`
	URI      string    `json:"uri"`
	Label    string    `json:"label,omitempty"`
	Language string    `json:"language,omitempty"`
	Default  bool      `json:"default,omitempty"`
}

// AssembleTracks builds the auxiliary track list for a record: the thumbnail
// cue track first (always default), then one subtitle track per input pair in
// input order. Subtitle labels carry the raw language code; page handlers map
// codes to display names where a human-readable label is wanted. The
// preferred language, when it matches, marks exactly that track default.
// SubtitlesOff drops everything, the thumbnail track included.
func AssembleTracks(m MediaObject, cfg EmbedConfig) []Track {
	if cfg.SubtitlesOff {
		return nil
	}

	tracks := []Track{{
		Kind:    TrackMetadata,
		URI:     m.ThumbnailsURI,
		Label:   "thumbnails",
		Default: true,
	}}

	for _, sub := range m.Subtitles {
		tracks = append(tracks, Track{
			Kind:     TrackSubtitle,
			URI:      sub.URI,
			Label:    sub.Language,
			Language: sub.Language,
			Default:  sub.Language != "" && sub.Language == cfg.PreferredSubtitleLang,
		})
	}

	return tracks
}
