package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/speakwell/speakwell-api/internal/config"
	"github.com/speakwell/speakwell-api/internal/metrics"
	"github.com/speakwell/speakwell-api/internal/phrases"
	"github.com/speakwell/speakwell-api/internal/transcribe"
)

type Server struct {
	http *http.Server
	log  zerolog.Logger
}

func NewServer(cfg *config.Config, catalog *phrases.Catalog, stt transcribe.Provider, version string, startTime time.Time, log zerolog.Logger) *Server {
	r := chi.NewRouter()

	// Global middleware
	r.Use(RequestID)
	r.Use(Recoverer)
	r.Use(Logger(log))
	r.Use(CORS(cfg.CORSOrigins))
	r.Use(metrics.InstrumentHandler)

	// Health endpoint
	health := NewHealthHandler(stt, version, startTime)
	r.Get("/", health.ServeHTTP)

	// API routes
	NewPhrasesHandler(catalog).Routes(r)
	NewTranscribeHandler(stt, cfg.STTLanguage, log).Routes(r)

	// Prometheus exposition
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return &Server{
		http: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      r,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		log: log,
	}
}

func (s *Server) Start() error {
	s.log.Info().Str("addr", s.http.Addr).Msg("http server starting")
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("http server shutting down")
	return s.http.Shutdown(ctx)
}
