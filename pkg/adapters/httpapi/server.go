// Package httpapi exposes the intake core over REST for dialogue drivers
// that live in another process. Single-shot intakes post a complete answer
// set; multi-turn drivers accumulate answers in a session first.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/labscout"
	"github.com/aretw0/labscout/pkg/consult"
	"github.com/aretw0/labscout/pkg/domain"
	"github.com/aretw0/labscout/pkg/ports"
	"github.com/aretw0/labscout/pkg/schema"
	"github.com/aretw0/labscout/pkg/session"
)

// Server holds the handler dependencies.
type Server struct {
	consultant *labscout.Consultant
	sessions   *session.Manager
	logger     *slog.Logger
	registry   *prometheus.Registry
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the adapter logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsRegistry mounts /metrics backed by the given registry.
func WithMetricsRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// NewHandler builds the HTTP routing for the intake API.
func NewHandler(consultant *labscout.Consultant, sessions *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		consultant: consultant,
		sessions:   sessions,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", s.handleOpenAPISpec)
	r.Get("/swagger", s.handleSwaggerUI)
	if s.registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Post("/triage", s.handleTriage)
		r.Post("/specification", s.handleSpecification)

		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Put("/answers/{field}", s.handleSessionAnswer)
			r.Post("/complete", s.handleSessionComplete)
			r.Delete("/", s.handleSessionDelete)
		})
	})
	return r
}

// ReportResponse carries a rendered report back to the driver.
type ReportResponse struct {
	Report    string `json:"report"`
	Matched   *bool  `json:"matched,omitempty"`
	DomainKey string `json:"domain_key,omitempty"`
}

// ErrorResponse carries a machine-readable failure.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": labscout.Version})
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	c := s.consultant.Catalog()
	listing := make([]map[string]any, 0, c.Len())
	for _, key := range c.Domains() {
		solutions, _ := c.Lookup(key)
		listing = append(listing, map[string]any{"domain": key, "solutions": solutions})
	}
	writeJSON(w, http.StatusOK, listing)
}

func (s *Server) handleTriage(w http.ResponseWriter, r *http.Request) {
	answers, ok := decodeBody(w, r, s.logger)
	if !ok {
		return
	}

	record, err := s.consultant.ConstructTriageFromMap(answers)
	if err != nil {
		s.writeValidationError(w, err)
		return
	}

	result := s.consultant.Match(record)
	report := consult.RenderTriage(record, result)
	s.archive(r, answers, labscout.FlowTriage, report)

	matched := result.Matched()
	writeJSON(w, http.StatusOK, ReportResponse{
		Report:    report,
		Matched:   &matched,
		DomainKey: result.DomainKey,
	})
}

func (s *Server) handleSpecification(w http.ResponseWriter, r *http.Request) {
	answers, ok := decodeBody(w, r, s.logger)
	if !ok {
		return
	}

	record, err := s.consultant.ConstructSpecificationFromMap(answers)
	if err != nil {
		s.writeValidationError(w, err)
		return
	}

	report := s.consultant.RenderSpecification(record)
	s.archive(r, answers, labscout.FlowSpecification, report)
	writeJSON(w, http.StatusOK, ReportResponse{Report: report})
}

// SessionAnswerRequest records one reply in a multi-turn intake.
type SessionAnswerRequest struct {
	Flow  string `json:"flow"`
	Value any    `json:"value"`
}

func (s *Server) handleSessionAnswer(w http.ResponseWriter, r *http.Request) {
	if s.sessions == nil {
		http.Error(w, "sessions not enabled", http.StatusNotImplemented)
		return
	}
	sessionID := chi.URLParam(r, "sessionID")
	field := chi.URLParam(r, "field")

	var body SessionAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	err := s.sessions.Answer(r.Context(), sessionID, session.Flow(body.Flow), field, body.Value)
	if err != nil {
		if schema.IsValidation(err) {
			s.writeValidationError(w, err)
			return
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SessionCompleteRequest declares a multi-turn intake finished.
type SessionCompleteRequest struct {
	Flow string `json:"flow"`
}

func (s *Server) handleSessionComplete(w http.ResponseWriter, r *http.Request) {
	if s.sessions == nil {
		http.Error(w, "sessions not enabled", http.StatusNotImplemented)
		return
	}
	sessionID := chi.URLParam(r, "sessionID")

	var body SessionCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	switch session.Flow(body.Flow) {
	case session.FlowTriage:
		record, err := s.sessions.CompleteTriage(r.Context(), sessionID)
		if err != nil {
			s.writeCompletionError(w, err)
			return
		}
		result := s.consultant.Match(record)
		report := consult.RenderTriage(record, result)
		s.archiveByID(r, sessionID, labscout.FlowTriage, report)
		matched := result.Matched()
		writeJSON(w, http.StatusOK, ReportResponse{Report: report, Matched: &matched, DomainKey: result.DomainKey})

	case session.FlowSpecification:
		record, err := s.sessions.CompleteSpecification(r.Context(), sessionID)
		if err != nil {
			s.writeCompletionError(w, err)
			return
		}
		report := s.consultant.RenderSpecification(record)
		s.archiveByID(r, sessionID, labscout.FlowSpecification, report)
		writeJSON(w, http.StatusOK, ReportResponse{Report: report})

	default:
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown intake flow %q", body.Flow)})
	}
}

func (s *Server) handleSessionDelete(w http.ResponseWriter, r *http.Request) {
	if s.sessions == nil {
		http.Error(w, "sessions not enabled", http.StatusNotImplemented)
		return
	}
	if err := s.sessions.Abandon(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeValidationError(w http.ResponseWriter, err error) {
	fields := make([]string, 0)
	for _, fieldErr := range schema.ValidationErrors(err) {
		var v *schema.ValidationError
		if errors.As(fieldErr, &v) {
			fields = append(fields, v.Key)
		}
	}
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Fields: fields})
}

func (s *Server) writeCompletionError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrSessionNotFound) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return
	}
	if schema.IsValidation(err) {
		s.writeValidationError(w, err)
		return
	}
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

// archive persists the report when an archive is configured, keyed by an
// optional intake_id answer.
func (s *Server) archive(r *http.Request, answers map[string]any, flow, report string) {
	id, _ := answers["intake_id"].(string)
	if id == "" {
		return
	}
	s.archiveByID(r, id, flow, report)
}

func (s *Server) archiveByID(r *http.Request, id, flow, report string) {
	err := s.consultant.ArchiveReport(r.Context(), ports.ArchivedReport{ID: id, Flow: flow, Content: report})
	if err != nil {
		s.logger.Warn("report archive failed", "intake", id, "flow", flow, "err", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (map[string]any, bool) {
	var answers map[string]any
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		logger.Warn("invalid request body", "err", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return nil, false
	}
	return answers, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}
