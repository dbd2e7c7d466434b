package record

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/recview/recview/internal/httputil"
	"github.com/recview/recview/internal/playback"
)

const testBaseURL = "https://recview.example.com"

var recordColumns = []string{
	"id", "title", "primary_key", "manifest_key", "subformat_count",
	"poster_key", "thumbnails_key", "vr_enabled",
}

var subtitleColumns = []string{"file_key", "language"}

type mockStorage struct {
	err error
}

func (m *mockStorage) AssetURL(_ context.Context, key string, _ time.Duration) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "https://cdn.example.com/" + key, nil
}

type mockGeo struct {
	country string
	city    string
}

func (m *mockGeo) Lookup(string) (string, string) {
	return m.country, m.city
}

func defaultPolicy() playback.PlayerPolicy {
	return playback.PlayerPolicy{ShowTitleOverlay: true}
}

func newTestHandler(mock pgxmock.PgxPoolIface, policy playback.PlayerPolicy) *Handler {
	return NewHandler(mock, &mockStorage{}, testBaseURL, policy)
}

func pageRequest(path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	ctx := httputil.ContextWithNonce(req.Context(), "test-nonce")
	return req.WithContext(ctx)
}

func serve(handler *Handler, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/record/{token}/player", handler.PlayerPage)
	r.Get("/record/{token}/embed", handler.EmbedPage)
	r.Get("/api/records/{token}/view", handler.RecordView)
	r.Get("/api/records/{id}/stats", handler.Analytics)
	r.Get("/api/records/{id}/stats/export", handler.AnalyticsExport)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func expectRecordByToken(mock pgxmock.PgxPoolIface, token string) {
	mock.ExpectQuery(`SELECT id, title, primary_key`).
		WithArgs(token).
		WillReturnRows(pgxmock.NewRows(recordColumns).AddRow(
			"rec-1", "Quarterly Review", "records/rec-1/primary.mp4",
			strPtr("records/rec-1/manifest.m3u8"), 3,
			strPtr("records/rec-1/poster.jpg"), strPtr("records/rec-1/thumbs.vtt"), false,
		))
}

func expectSubtitles(mock pgxmock.PgxPoolIface, rows *pgxmock.Rows) {
	mock.ExpectQuery(`SELECT file_key, language FROM record_subtitles`).
		WithArgs("rec-1").
		WillReturnRows(rows)
}

func strPtr(s string) *string { return &s }
