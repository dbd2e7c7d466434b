package server

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/recview/recview/internal/auth"
	"github.com/recview/recview/internal/database"
	"github.com/recview/recview/internal/playback"
	"github.com/recview/recview/internal/ratelimit"
	"github.com/recview/recview/internal/record"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	DB               database.DBTX
	Pinger           Pinger
	Storage          record.ObjectStorage
	GeoResolver      record.GeoResolver
	JWTSecret        string
	BaseURL          string
	S3PublicEndpoint string
	Policy           playback.PlayerPolicy
}

type Server struct {
	router        chi.Router
	pinger        Pinger
	authHandler   *auth.Handler
	recordHandler *record.Handler
}

func New(cfg Config) *Server {
	r := chi.NewRouter()
	r.Use(slogMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders(SecurityConfig{
		BaseURL:         cfg.BaseURL,
		StorageEndpoint: cfg.S3PublicEndpoint,
	}))

	s := &Server{router: r, pinger: cfg.Pinger}

	if cfg.DB != nil {
		jwtSecret := cfg.JWTSecret
		if jwtSecret == "" {
			log.Fatal("JWT_SECRET is required; set the environment variable")
		}

		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:8080"
		}

		s.authHandler = auth.NewHandler(cfg.DB, jwtSecret)
		s.recordHandler = record.NewHandler(cfg.DB, cfg.Storage, baseURL, cfg.Policy)
		if cfg.GeoResolver != nil {
			s.recordHandler.SetGeoResolver(cfg.GeoResolver)
		}
	}

	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)

	if s.authHandler != nil {
		authLimiter := ratelimit.NewLimiter(0.5, 5)
		s.router.Route("/api/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/login", s.authHandler.Login)
		})
	}

	if s.recordHandler != nil {
		s.router.Get("/record/{token}/player", s.recordHandler.PlayerPage)
		s.router.Get("/record/{token}/embed", s.recordHandler.EmbedPage)

		viewLimiter := ratelimit.NewLimiter(2, 10)
		s.router.With(viewLimiter.Middleware).
			Get("/api/records/{token}/view", s.recordHandler.RecordView)

		s.router.Route("/api/records/{id}/stats", func(r chi.Router) {
			r.Use(s.authHandler.Middleware)
			r.Get("/", s.recordHandler.Analytics)
			r.Get("/export", s.recordHandler.AnalyticsExport)
		})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unhealthy","error":"database unreachable"}`))
			return
		}
	}
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
