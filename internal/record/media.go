package record

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/recview/recview/internal/playback"
)

const assetURLExpiry = 1 * time.Hour

type recordInfo struct {
	ID    string
	Title string
	Media playback.MediaObject
}

// loadRecord fetches a ready record by token and presigns its asset keys
// into a playable MediaObject. Optional assets degrade to empty URIs when
// presigning fails; only the primary file is fatal.
func (h *Handler) loadRecord(ctx context.Context, token string) (*recordInfo, error) {
	var (
		id             string
		title          string
		primaryKey     string
		manifestKey    *string
		subformatCount int
		posterKey      *string
		thumbnailsKey  *string
		vrEnabled      bool
	)
	err := h.db.QueryRow(ctx,
		`SELECT id, title, primary_key, manifest_key, subformat_count,
		        poster_key, thumbnails_key, vr_enabled
		 FROM records WHERE token = $1 AND status = 'ready'`,
		token,
	).Scan(&id, &title, &primaryKey, &manifestKey, &subformatCount,
		&posterKey, &thumbnailsKey, &vrEnabled)
	if err != nil {
		return nil, err
	}

	info := &recordInfo{ID: id, Title: title}
	info.Media.SubformatCount = subformatCount
	info.Media.VREnabled = vrEnabled

	info.Media.PrimaryURI, err = h.storage.AssetURL(ctx, primaryKey, assetURLExpiry)
	if err != nil {
		return nil, err
	}
	info.Media.ManifestURI = h.presignOptional(ctx, manifestKey)
	info.Media.PosterURI = h.presignOptional(ctx, posterKey)
	info.Media.ThumbnailsURI = h.presignOptional(ctx, thumbnailsKey)

	rows, err := h.db.Query(ctx,
		`SELECT file_key, language FROM record_subtitles
		 WHERE record_id = $1 ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var fileKey, language string
		if err := rows.Scan(&fileKey, &language); err != nil {
			return nil, err
		}
		uri, err := h.storage.AssetURL(ctx, fileKey, assetURLExpiry)
		if err != nil {
			slog.Error("record: failed to presign subtitle", "record_id", id, "key", fileKey, "error", err)
			continue
		}
		info.Media.Subtitles = append(info.Media.Subtitles, playback.Subtitle{
			URI:      uri,
			Language: language,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return info, nil
}

func (h *Handler) presignOptional(ctx context.Context, key *string) string {
	if key == nil || *key == "" {
		return ""
	}
	u, err := h.storage.AssetURL(ctx, *key, assetURLExpiry)
	if err != nil {
		slog.Error("record: failed to presign asset", "key", *key, "error", err)
		return ""
	}
	return u
}

// parseEmbedConfig reads the playback options from the page query string.
// Every option has a safe default: unknown or malformed values are ignored.
func parseEmbedConfig(q url.Values) playback.EmbedConfig {
	var cfg playback.EmbedConfig
	cfg.Autoplay = queryFlag(q, "autoplay")
	cfg.Loop = queryFlag(q, "loop")
	cfg.Muted = queryFlag(q, "muted")
	cfg.Responsive = queryFlag(q, "responsive")
	if v := q.Get("controls"); v != "" && !flagValue(v) {
		cfg.HideControls = true
	}
	if v := q.Get("subtitles"); v == "off" || (v != "" && !flagValue(v)) {
		cfg.SubtitlesOff = true
	}
	cfg.PreferredSubtitleLang = q.Get("lang")
	if v, err := strconv.ParseFloat(q.Get("start"), 64); err == nil && v > 0 {
		cfg.StartSeconds = v
	}
	if v, err := strconv.ParseFloat(q.Get("end"), 64); err == nil && v > 0 {
		cfg.EndSeconds = v
	}
	return cfg
}

func queryFlag(q url.Values, name string) bool {
	return flagValue(q.Get(name))
}

func flagValue(v string) bool {
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
