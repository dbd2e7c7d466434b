package playback

// FormatKind classifies the selected source.
type FormatKind string

const (
	// Adaptive is a manifest-based streaming source with bitrate variants.
	Adaptive FormatKind = "adaptive"
	// Progressive is a single direct media file.
	Progressive FormatKind = "progressive"
)

// MIME returns the content type handed to the engine for this format.
func (f FormatKind) MIME() string {
	if f == Adaptive {
		return "application/x-mpegURL"
	}
	return "video/mp4"
}

// SourceDescriptor is the one playable source chosen for a record.
type SourceDescriptor struct {
	URI    string     `json:"uri"`
	Format FormatKind `json:"format"`
}

// SelectSource picks the primary playable source, first match wins: an
// explicit override, the adaptive manifest when transcoded subformats exist,
// else the progressive file. There is no error path; a record with no usable
// URI yields an unplayable descriptor that the engine rejects at load time.
func SelectSource(m MediaObject, override string) SourceDescriptor {
	if override != "" {
		return SourceDescriptor{URI: override, Format: Adaptive}
	}
	if m.ManifestURI != "" && m.SubformatCount > 0 {
		return SourceDescriptor{URI: m.ManifestURI, Format: Adaptive}
	}
	return SourceDescriptor{URI: m.PrimaryURI, Format: Progressive}
}
