// Package server exposes the rendering pipeline over HTTP.
//
// # Routes
//
//	GET /healthz                  liveness probe, returns "ok"
//	GET /v1/qr.{format}?text=...  renders text as svg, png, bmp, tiff or text
//
// Optional query parameters are scale, border, level, merge and invert. Any
// parameter left out takes the server's configured default. Responses carry
// an ETag derived from the artifact bytes and honour If-None-Match.
//
// Client errors (bad parameters, unknown format, text that does not fit in a
// QR symbol) are reported as 400 with a JSON body; everything else is 500.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/qrgen/pkg/buildinfo"
	"github.com/matzehuels/qrgen/pkg/observability"
	"github.com/matzehuels/qrgen/pkg/pipeline"
)

// Defaults are the render settings applied when a request omits them.
type Defaults struct {
	Options pipeline.Options
	MaxAge  time.Duration
}

// Server renders QR codes on request.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	defaults Defaults
	router   chi.Router
}

// New creates a server that renders through runner.
func New(runner *pipeline.Runner, logger *log.Logger, defaults Defaults) *Server {
	if logger == nil {
		logger = log.Default()
	}
	defaults.Options.SetDefaults()

	s := &Server{
		runner:   runner,
		logger:   logger,
		defaults: defaults,
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(serverHeader)

	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/qr.{format}", s.handleQR)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, status, elapsed)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", elapsed,
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func serverHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", buildinfo.ServerHeader())
		next.ServeHTTP(w, r)
	})
}
