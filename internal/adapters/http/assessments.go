package httpadapter

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
)

type evaluateBody struct {
	Profile   domain.OrganizationProfile `json:"profile"`
	Responses []domain.Response          `json:"responses" validate:"dive"`
	Tier      domain.LicenseTier         `json:"tier" validate:"omitempty,oneof=free professional"`
}

func (b evaluateBody) request() ports.EvaluateRequest {
	tier := b.Tier
	if tier == "" {
		tier = domain.TierFree
	}
	return ports.EvaluateRequest{Profile: b.Profile, Responses: b.Responses, Tier: tier}
}

type completeResponse struct {
	Assessment domain.Snapshot `json:"assessment"`
	Report     ports.Report    `json:"report"`
}

func (s *Server) getQuestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var maturity string
	if err := runtime.BindQueryParameter("form", true, false, "maturity", q, &maturity); err != nil {
		s.fail(w, r, badRequest{err: err})
		return
	}
	var names []string
	if err := runtime.BindQueryParameter("form", true, false, "region", q, &names); err != nil {
		s.fail(w, r, badRequest{err: err})
		return
	}
	regions := make([]domain.Region, 0, len(names))
	for _, n := range names {
		regions = append(regions, domain.Region(n))
	}
	writeJSON(w, http.StatusOK, s.assessments.Questions(domain.ParseMaturity(maturity), regions))
}

func (s *Server) postEvaluate(w http.ResponseWriter, r *http.Request) {
	var body evaluateBody
	if err := decode(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	report, err := s.assessments.Evaluate(r.Context(), body.request())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) postAssessment(w http.ResponseWriter, r *http.Request) {
	var body evaluateBody
	if err := decode(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	snap, report, err := s.assessments.Complete(r.Context(), body.request())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Location", "/assessments/"+snap.ID)
	writeJSON(w, http.StatusCreated, completeResponse{Assessment: snap, Report: report})
}

// orgParam binds the required "org" query parameter.
func orgParam(r *http.Request) (string, error) {
	var org string
	if err := runtime.BindQueryParameter("form", true, true, "org", r.URL.Query(), &org); err != nil {
		return "", badRequest{err: err}
	}
	if org == "" {
		return "", badRequest{err: errors.New("org must not be empty")}
	}
	return org, nil
}

func (s *Server) listAssessments(w http.ResponseWriter, r *http.Request) {
	org, err := orgParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var limit int
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		s.fail(w, r, badRequest{err: err})
		return
	}
	snaps, err := s.history.List(r.Context(), org, limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if snaps == nil {
		snaps = []domain.Snapshot{}
	}
	writeJSON(w, http.StatusOK, snaps)
}

func (s *Server) getLatest(w http.ResponseWriter, r *http.Request) {
	org, err := orgParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	snap, err := s.history.Latest(r.Context(), org)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) getTrend(w http.ResponseWriter, r *http.Request) {
	org, err := orgParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	trend, err := s.history.Trend(r.Context(), org)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trend)
}

func assessmentID(r *http.Request) (string, error) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return "", badRequest{err: err}
	}
	return id, nil
}

func (s *Server) getAssessment(w http.ResponseWriter, r *http.Request) {
	id, err := assessmentID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	snap, err := s.history.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
