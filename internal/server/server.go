// Package server exposes the planner over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/swaplab/swapplan/pkg/archive"
	"github.com/swaplab/swapplan/pkg/errors"
	"github.com/swaplab/swapplan/pkg/plan"
	"github.com/swaplab/swapplan/pkg/render"
)

// Server handles plan requests over HTTP. Plans created through the API are
// stored in the archive so they can be fetched again by ID.
type Server struct {
	runner  *plan.Runner
	archive archive.Store
	logger  *log.Logger
}

// New creates a server. The archive is required; pass a runner configured
// with whatever cache the deployment uses, or nil for an uncached one.
func New(runner *plan.Runner, store archive.Store, logger *log.Logger) *Server {
	if runner == nil {
		runner = plan.NewRunner(nil, nil, logger)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, archive: store, logger: logger}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/plans", s.handleCreatePlan)
		r.Get("/plans/{id}", s.handleGetPlan)
		r.Get("/plans/{id}/diagram", s.handleGetDiagram)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var opts plan.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	// The API returns the document; artifacts are fetched separately.
	opts.Formats = []string{plan.FormatJSON}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.archive.Put(r.Context(), res.Document); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "archive plan"))
		return
	}

	s.logger.Info("plan created",
		"id", res.Document.ID,
		"slots", res.Document.Stats.Slots,
		"swaps", res.Document.Stats.Swaps)
	writeJSON(w, http.StatusCreated, res.Document)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	doc, err := s.archive.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	doc, err := s.archive.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = plan.FormatText
	}

	switch format {
	case plan.FormatText:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(render.Text(doc.Labels, doc.Swaps())))
	case plan.FormatDOT:
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		w.Write([]byte(render.ToDOT(doc.Labels, doc.Swaps())))
	case plan.FormatSVG:
		svg, err := render.SVG(render.ToDOT(doc.Labels, doc.Swaps()))
		if err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render diagram"))
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(svg)
	default:
		s.writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unknown diagram format %q", format))
	}
}

// errorResponse is the JSON error shape returned by all handlers.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "err", err)
	}

	var resp errorResponse
	resp.Error.Code = string(code)
	resp.Error.Message = errors.UserMessage(err)
	if resp.Error.Code == "" {
		resp.Error.Code = string(errors.ErrCodeInternal)
	}
	writeJSON(w, status, resp)
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInsufficientLabels,
		errors.ErrCodeLengthMismatch,
		errors.ErrCodeUnknownLabel,
		errors.ErrCodeDuplicateLabel,
		errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidLabel:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodePlanNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
