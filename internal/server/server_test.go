package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/recview/recview/internal/server"
)

type mockPinger struct{ err error }

func (m *mockPinger) Ping(ctx context.Context) error { return m.err }

type mockStorage struct{}

func (m *mockStorage) AssetURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://storage.example.com/" + key, nil
}

func newServerWithoutDB() *server.Server {
	return server.New(server.Config{})
}

func newServerWithDB(t *testing.T) (*server.Server, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgxmock pool: %v", err)
	}
	t.Cleanup(func() { mock.Close() })

	srv := server.New(server.Config{
		DB:               mock,
		Pinger:           &mockPinger{err: nil},
		Storage:          &mockStorage{},
		JWTSecret:        "test-secret",
		BaseURL:          "https://localhost:8080",
		S3PublicEndpoint: "https://storage.example.com",
	})
	return srv, mock
}

func executeRequest(srv *server.Server, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpointReturnsOK(t *testing.T) {
	srv := newServerWithoutDB()
	rec := executeRequest(srv, http.MethodGet, "/api/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"status":"ok"}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestHealthEndpointWithPingFailure(t *testing.T) {
	srv := server.New(server.Config{Pinger: &mockPinger{err: errors.New("connection refused")}})
	rec := executeRequest(srv, http.MethodGet, "/api/health")

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestNilDBPageRoutesNotRegistered(t *testing.T) {
	srv := newServerWithoutDB()

	for _, path := range []string{
		"/record/tok/player",
		"/record/tok/embed",
		"/api/records/tok/view",
	} {
		rec := executeRequest(srv, http.MethodGet, path)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404 without DB, got %d", path, rec.Code)
		}
	}
}

func TestLoginRouteRegisteredWithDB(t *testing.T) {
	srv, _ := newServerWithDB(t)
	rec := executeRequest(srv, http.MethodPost, "/api/auth/login")

	// Reaches the handler, which rejects the empty body.
	if rec.Code == http.StatusNotFound || rec.Code == http.StatusMethodNotAllowed {
		t.Fatalf("login route not registered, got %d", rec.Code)
	}
}

func TestPlayerPageRouteRegisteredWithDB(t *testing.T) {
	srv, mock := newServerWithDB(t)

	mock.ExpectQuery(`SELECT id, title, primary_key`).
		WithArgs("unknown").
		WillReturnError(errors.New("no rows"))

	rec := executeRequest(srv, http.MethodGet, "/record/unknown/player")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown record, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("expected html not-found page, got content type %q", ct)
	}
}

func TestViewRouteRegisteredWithDB(t *testing.T) {
	srv, mock := newServerWithDB(t)

	mock.ExpectQuery(`SELECT id FROM records`).
		WithArgs("tok123").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("rec-1"))
	mock.ExpectExec(`INSERT INTO record_views`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	rec := executeRequest(srv, http.MethodGet, "/api/records/tok123/view")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	time.Sleep(100 * time.Millisecond)
}

func TestStatsRouteRequiresAuth(t *testing.T) {
	srv, _ := newServerWithDB(t)
	rec := executeRequest(srv, http.MethodGet, "/api/records/rec-1/stats")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestStatsExportRouteRequiresAuth(t *testing.T) {
	srv, _ := newServerWithDB(t)
	rec := executeRequest(srv, http.MethodGet, "/api/records/rec-1/stats/export")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestAuthRoutesRateLimited(t *testing.T) {
	srv, _ := newServerWithDB(t)

	var got429 bool
	for i := 0; i < 10; i++ {
		rec := executeRequest(srv, http.MethodPost, "/api/auth/login")
		if rec.Code == http.StatusTooManyRequests {
			got429 = true
			break
		}
	}
	if !got429 {
		t.Error("expected rate limiting to kick in on repeated login attempts")
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	srv := newServerWithoutDB()
	rec := executeRequest(srv, http.MethodGet, "/nope")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHealthEndpointWrongMethodReturnsMethodNotAllowed(t *testing.T) {
	srv := newServerWithoutDB()
	rec := executeRequest(srv, http.MethodPost, "/api/health")

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
