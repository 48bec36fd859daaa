package httpadapter

import (
	"errors"
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/services/drafts"
)

// draftResponse flags drafts that were discarded because an older build saved them.
type draftResponse struct {
	Draft domain.Draft `json:"draft"`
	Stale bool         `json:"stale,omitempty"`
}

type draftProfileBody struct {
	Key     string                     `json:"key" validate:"required"`
	Profile domain.OrganizationProfile `json:"profile"`
}

type draftResponseBody struct {
	Key      string          `json:"key" validate:"required"`
	Response domain.Response `json:"response"`
}

type draftStepBody struct {
	Key  string `json:"key" validate:"required"`
	Step int    `json:"step" validate:"gte=0"`
}

func draftKey(r *http.Request) (string, error) {
	var key string
	if err := runtime.BindQueryParameter("form", true, true, "key", r.URL.Query(), &key); err != nil {
		return "", badRequest{err: err}
	}
	if key == "" {
		return "", badRequest{err: errors.New("key must not be empty")}
	}
	return key, nil
}

func (s *Server) getDraft(w http.ResponseWriter, r *http.Request) {
	key, err := draftKey(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	d, err := s.drafts.Load(r.Context(), key)
	stale := errors.Is(err, drafts.ErrStaleDraft)
	if err != nil && !stale {
		s.fail(w, r, err)
		return
	}
	if stale {
		s.log.InfoContext(r.Context(), "discarded stale draft", "key", key, "error", err)
	}
	writeJSON(w, http.StatusOK, draftResponse{Draft: d, Stale: stale})
}

func (s *Server) deleteDraft(w http.ResponseWriter, r *http.Request) {
	key, err := draftKey(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.drafts.Clear(r.Context(), key); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) putDraftProfile(w http.ResponseWriter, r *http.Request) {
	var body draftProfileBody
	if err := decode(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	d, err := s.drafts.UpdateProfile(r.Context(), body.Key, body.Profile)
	s.writeDraft(w, r, d, err)
}

func (s *Server) putDraftResponse(w http.ResponseWriter, r *http.Request) {
	var body draftResponseBody
	if err := decode(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	d, err := s.drafts.SetResponse(r.Context(), body.Key, body.Response)
	s.writeDraft(w, r, d, err)
}

func (s *Server) putDraftStep(w http.ResponseWriter, r *http.Request) {
	var body draftStepBody
	if err := decode(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	d, err := s.drafts.SetStep(r.Context(), body.Key, body.Step)
	s.writeDraft(w, r, d, err)
}

func (s *Server) writeDraft(w http.ResponseWriter, r *http.Request, d domain.Draft, err error) {
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse{Draft: d})
}
