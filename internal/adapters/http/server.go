package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/services/assessments"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/services/mitigations"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// HealthFunc reports whether the backing store is reachable.
type HealthFunc func(ctx context.Context) error

// Server serves the assessment API over the service ports.
type Server struct {
	assessments ports.Assessments
	history     ports.History
	mitigations ports.Mitigations
	drafts      ports.Drafts
	health      HealthFunc
	log         *slog.Logger
}

func New(a ports.Assessments, h ports.History, m ports.Mitigations, d ports.Drafts, health HealthFunc, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{assessments: a, history: h, mitigations: m, drafts: d, health: health, log: log}
}

// Routes returns a chi.Router with every endpoint mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.getHealthz)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/questions", s.getQuestions)

	r.Route("/assessments", func(r chi.Router) {
		r.Post("/evaluate", s.postEvaluate)
		r.Post("/", s.postAssessment)
		r.Get("/", s.listAssessments)
		r.Get("/latest", s.getLatest)
		r.Get("/trend", s.getTrend)
		r.Get("/{id}", s.getAssessment)
		r.Get("/{id}/mitigations", s.listMitigations)
		r.Post("/{id}/mitigations", s.postMitigation)
	})
	r.Patch("/mitigations/{id}", s.patchMitigation)
	r.Delete("/mitigations/{id}", s.deleteMitigation)

	r.Route("/draft", func(r chi.Router) {
		r.Get("/", s.getDraft)
		r.Delete("/", s.deleteDraft)
		r.Put("/profile", s.putDraftProfile)
		r.Put("/responses", s.putDraftResponse)
		r.Put("/step", s.putDraftStep)
	})
	return r
}

func (s *Server) getHealthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health(r.Context()); err != nil {
			s.log.WarnContext(r.Context(), "health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// badRequest marks malformed input that never reached a service.
type badRequest struct{ err error }

func (e badRequest) Error() string { return e.err.Error() }
func (e badRequest) Unwrap() error { return e.err }

func statusFor(err error) int {
	var verrs validator.ValidationErrors
	var bad badRequest
	switch {
	case errors.As(err, &verrs), errors.As(err, &bad):
		return http.StatusBadRequest
	case errors.Is(err, assessments.ErrInvalidResponse),
		errors.Is(err, assessments.ErrMissingOrg),
		errors.Is(err, mitigations.ErrInvalidStatus),
		errors.Is(err, mitigations.ErrEmptyTitle):
		return http.StatusBadRequest
	case errors.Is(err, ports.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	ctx := r.Context()
	if status >= http.StatusInternalServerError {
		s.log.ErrorContext(ctx, "request failed",
			"request_id", middleware.GetReqID(ctx),
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, status, "internal error")
		return
	}
	s.log.DebugContext(ctx, "request rejected",
		"request_id", middleware.GetReqID(ctx),
		"path", r.URL.Path,
		"status", status,
		"error", err,
	)
	writeError(w, status, err.Error())
}

// decode reads a JSON body into dst and validates its struct tags.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return badRequest{err: err}
	}
	return validate.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
