package record

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/recview/recview/internal/httputil"
)

// RecordView is the target of the player's view beacon. It answers 204 once
// the record is resolved; enrichment and the insert happen off the request
// path so a slow database never delays the player.
func (h *Handler) RecordView(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var recordID string
	err := h.db.QueryRow(r.Context(),
		`SELECT id FROM records WHERE token = $1 AND status = 'ready'`,
		token,
	).Scan(&recordID)
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "record not found")
		return
	}

	ip := clientIP(r)
	userAgent := r.UserAgent()
	referer := r.Header.Get("Referer")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		hash := viewerHash(ip, userAgent)
		ref := categorizeReferrer(referer)
		browser := parseBrowser(userAgent)
		device := parseDevice(userAgent)
		var country, city string
		if h.geoResolver != nil {
			country, city = h.geoResolver.Lookup(ip)
		}
		if _, err := h.db.Exec(ctx,
			`INSERT INTO record_views (record_id, viewer_hash, referrer, browser, device, country, city)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			recordID, hash, ref, browser, device, country, city,
		); err != nil {
			slog.Error("record: failed to record view", "record_id", recordID, "error", err)
		}
	}()

	w.WriteHeader(http.StatusNoContent)
}
