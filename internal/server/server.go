// Package server exposes the chart pipeline over HTTP. Clients POST a TOML
// chart description and get back a chart id plus pipeline stats; rendered
// SVGs are stored in a gallery and served by id.
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/swarmplot/pkg/errors"
	"github.com/matzehuels/swarmplot/pkg/pipeline"
)

// maxSpecSize caps the request body; chart descriptions are small.
const maxSpecSize = 1 << 20

// Server handles chart rendering requests.
type Server struct {
	runner  *pipeline.Runner
	gallery Gallery
	logger  *log.Logger
}

// NewServer creates a server backed by the given runner and gallery.
// A nil gallery defaults to an in-memory one.
func NewServer(runner *pipeline.Runner, gallery Gallery, logger *log.Logger) *Server {
	if gallery == nil {
		gallery = NewMemoryGallery()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, gallery: gallery, logger: logger}
}

// Router builds the HTTP routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Get("/charts", s.handleList)
	r.Get("/charts/{id}", s.handleGet)
	r.Get("/charts/{id}/spec", s.handleGetSpec)

	return r
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// RenderResponse is returned by POST /render.
type RenderResponse struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	ElementCount int    `json:"element_count"`
	PointCount   int    `json:"point_count"`
	NonConverged int    `json:"non_converged"`
	DurationMS   int64  `json:"duration_ms"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	source, err := io.ReadAll(io.LimitReader(r.Body, maxSpecSize))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	if len(source) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "empty chart description"))
		return
	}

	start := time.Now()
	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		SpecSource: source,
		Formats:    []string{pipeline.FormatSVG},
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	chart := Chart{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Spec:      source,
		SVG:       result.Artifacts[pipeline.FormatSVG],
	}
	if err := s.gallery.Save(r.Context(), chart); err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("rendered chart",
		"id", chart.ID,
		"points", result.Stats.PointCount,
		"duration", time.Since(start))

	s.writeJSON(w, http.StatusCreated, RenderResponse{
		ID:           chart.ID,
		URL:          "/charts/" + chart.ID,
		ElementCount: result.Stats.ElementCount,
		PointCount:   result.Stats.PointCount,
		NonConverged: result.Stats.NonConverged,
		DurationMS:   time.Since(start).Milliseconds(),
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	chart, err := s.gallery.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(chart.SVG)
}

func (s *Server) handleGetSpec(w http.ResponseWriter, r *http.Request) {
	chart, err := s.gallery.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/toml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(chart.Spec)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid limit %q", v))
			return
		}
		limit = n
	}

	charts, err := s.gallery.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if charts == nil {
		charts = []Chart{}
	}
	s.writeJSON(w, http.StatusOK, charts)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, errorResponse{
		Code:    string(code),
		Message: errors.UserMessage(err),
	})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSpec,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidData,
		errors.ErrCodeInvalidDirection:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeChartNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
