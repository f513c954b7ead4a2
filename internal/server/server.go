// Package server exposes the catalog over a JSON HTTP API: algorithm
// listing and detail cards, demo inputs, and step generation, plus health
// and Prometheus endpoints.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/algoscope/catalog"
	"github.com/katalvlaran/algoscope/codelabel"
	"github.com/katalvlaran/algoscope/core"
	"github.com/katalvlaran/algoscope/internal/logging"
	"github.com/katalvlaran/algoscope/internal/metrics"
	"github.com/katalvlaran/algoscope/internal/schema"
)

// MaxBodyBytes caps the size of a run request.
const MaxBodyBytes = 1 << 20

// Server holds the dependencies shared by every handler.
type Server struct {
	log     *slog.Logger
	metrics *metrics.Metrics
	timeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics records runs and requests into m and serves it on /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithRunTimeout bounds the time a single run may take. Zero disables it.
func WithRunTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// NewHandler builds the router.
//
//	GET  /healthz
//	GET  /metrics
//	GET  /v1/algorithms
//	GET  /v1/algorithms/{id}
//	GET  /v1/algorithms/{id}/sample?seed=N&shape=S
//	POST /v1/algorithms/{id}/run
//	GET  /v1/schemas/{name}
func NewHandler(opts ...Option) http.Handler {
	s := &Server{log: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.health)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	r.Route("/v1", func(r chi.Router) {
		r.Get("/algorithms", s.listAlgorithms)
		r.Get("/algorithms/{id}", s.getAlgorithm)
		r.Get("/algorithms/{id}/sample", s.getSample)
		r.Post("/algorithms/{id}/run", s.runAlgorithm)
		r.Get("/schemas/{name}", s.getSchema)
	})
	return r
}

// observe logs every request and counts it by route pattern.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		if s.metrics != nil {
			s.metrics.ObserveRequest(route, r.Method, code)
		}
		s.log.Info("request",
			"method", r.Method,
			"route", route,
			"code", code,
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Summary is one row of the algorithm listing.
type Summary struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Family catalog.Family `json:"family"`
}

func (s *Server) listAlgorithms(w http.ResponseWriter, _ *http.Request) {
	all := catalog.All()
	out := make([]Summary, len(all))
	for i, a := range all {
		out[i] = Summary{ID: a.ID, Name: a.Name, Family: a.Family}
	}
	s.writeJSON(w, http.StatusOK, out)
}

// Detail is the full card of one algorithm, with its reference source in
// every language.
type Detail struct {
	Summary
	Profile catalog.Profile                        `json:"profile"`
	Sources map[codelabel.Language]codelabel.Parsed `json:"sources"`
}

func (s *Server) getAlgorithm(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(w, r)
	if !ok {
		return
	}
	d := Detail{
		Summary: Summary{ID: a.ID, Name: a.Name, Family: a.Family},
		Profile: a.Profile,
		Sources: make(map[codelabel.Language]codelabel.Parsed, len(codelabel.Languages)),
	}
	for _, lang := range codelabel.Languages {
		src, err := a.Source(lang)
		if err != nil {
			s.fail(w, err)
			return
		}
		d.Sources[lang] = src
	}
	s.writeJSON(w, http.StatusOK, d)
}

func (s *Server) getSample(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(w, r)
	if !ok {
		return
	}
	seed := time.Now().UnixNano()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, errorBody{Error: "seed must be an integer"})
			return
		}
		seed = n
	}
	shape, err := catalog.ParseShape(r.URL.Query().Get("shape"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, a.Sample(seed, catalog.WithShape(shape)))
}

func (s *Server) runAlgorithm(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		code := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		s.writeError(w, code, errorBody{Error: err.Error()})
		return
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	if err := schema.Input(body); err != nil {
		s.fail(w, err)
		return
	}
	var in catalog.Input
	if err := json.Unmarshal(body, &in); err != nil {
		s.writeError(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	start := time.Now()
	res, err := a.Run(ctx, in)
	if s.metrics != nil {
		s.metrics.ObserveRun(a.ID, res.Len(), time.Since(start), err)
	}
	if err != nil {
		s.log.Warn("run failed", "algorithm", a.ID, "error", err)
		s.fail(w, err)
		return
	}
	s.log.Debug("run finished", "algorithm", a.ID, "steps", res.Len(), "elapsed", time.Since(start))
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) getSchema(w http.ResponseWriter, r *http.Request) {
	doc, ok := schema.Raw()[chi.URLParam(r, "name")]
	if !ok {
		s.writeError(w, http.StatusNotFound, errorBody{Error: "unknown schema"})
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	if _, err := w.Write(doc); err != nil {
		s.log.Error("write schema", "error", err)
	}
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (catalog.Algorithm, bool) {
	a, err := catalog.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return catalog.Algorithm{}, false
	}
	return a, true
}

type errorBody struct {
	Error      string             `json:"error"`
	Violations []schema.Violation `json:"violations,omitempty"`
}

// fail maps err onto a status code:
//
//	404 unknown algorithm
//	400 schema violation
//	422 input the algorithm rejects (bad graph, start node, operation)
//	504 run deadline exceeded
//	500 anything else
func (s *Server) fail(w http.ResponseWriter, err error) {
	body := errorBody{Error: err.Error()}
	var se *schema.Error
	switch {
	case errors.Is(err, catalog.ErrUnknownAlgorithm):
		s.writeError(w, http.StatusNotFound, body)
	case errors.As(err, &se):
		body.Violations = se.Violations
		s.writeError(w, http.StatusBadRequest, body)
	case errors.Is(err, catalog.ErrBadInput),
		errors.Is(err, core.ErrInvalidStartNode),
		errors.Is(err, core.ErrMissingStartNode):
		s.writeError(w, http.StatusUnprocessableEntity, body)
	case errors.Is(err, context.DeadlineExceeded):
		s.writeError(w, http.StatusGatewayTimeout, body)
	default:
		s.log.Error("internal error", "error", err)
		s.writeError(w, http.StatusInternalServerError, errorBody{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, body errorBody) {
	s.writeJSON(w, code, body)
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", "error", err)
	}
}
