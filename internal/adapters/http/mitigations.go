package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
)

type customMitigationBody struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description,omitempty"`
}

type mitigationPatchBody struct {
	Status domain.MitigationStatus `json:"status" validate:"required"`
	Notes  *string                 `json:"notes,omitempty"`
}

func (s *Server) listMitigations(w http.ResponseWriter, r *http.Request) {
	id, err := assessmentID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	// Unknown assessments surface as 404 rather than an empty list.
	if _, err := s.history.Get(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	items, err := s.mitigations.List(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if items == nil {
		items = []domain.MitigationItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) postMitigation(w http.ResponseWriter, r *http.Request) {
	id, err := assessmentID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var body customMitigationBody
	if err := decode(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	item, err := s.mitigations.AddCustom(r.Context(), id, body.Title, body.Description)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func mitigationID(r *http.Request) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return 0, badRequest{err: err}
	}
	return id, nil
}

func (s *Server) patchMitigation(w http.ResponseWriter, r *http.Request) {
	id, err := mitigationID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var body mitigationPatchBody
	if err := decode(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	item, err := s.mitigations.UpdateStatus(r.Context(), id, body.Status, body.Notes)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) deleteMitigation(w http.ResponseWriter, r *http.Request) {
	id, err := mitigationID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.mitigations.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
