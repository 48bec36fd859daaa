// Package drafts keeps in-progress assessments so a user can resume later.
package drafts

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
)

var ErrStaleDraft = errors.New("draft was saved by an incompatible version")

type Service struct {
	repo ports.DraftRepository
	now  func() time.Time
}

func New(repo ports.DraftRepository) *Service {
	return &Service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Load returns the stored draft, or a fresh one if none exists. A draft with
// a different schema version is discarded and reported as ErrStaleDraft.
func (s *Service) Load(ctx context.Context, key string) (domain.Draft, error) {
	d, err := s.repo.LoadDraft(ctx, key)
	if errors.Is(err, ports.ErrNotFound) {
		return fresh(key), nil
	}
	if err != nil {
		return domain.Draft{}, err
	}
	if d.SchemaVersion != domain.DraftSchemaVersion {
		if err := s.repo.DeleteDraft(ctx, key); err != nil {
			return domain.Draft{}, err
		}
		return fresh(key), fmt.Errorf("%w: schema %d", ErrStaleDraft, d.SchemaVersion)
	}
	return d, nil
}

// UpdateProfile replaces the profile. Changing maturity or regions changes
// the question set, so existing responses are dropped.
func (s *Service) UpdateProfile(ctx context.Context, key string, p domain.OrganizationProfile) (domain.Draft, error) {
	return s.mutate(ctx, key, func(d *domain.Draft) {
		if d.Profile.AIMaturityLevel != p.AIMaturityLevel || !sameRegions(d.Profile.OperatingRegions, p.OperatingRegions) {
			d.Responses = nil
		}
		d.Profile = p
	})
}

// SetResponse records an answer, replacing any earlier answer to the same question.
func (s *Service) SetResponse(ctx context.Context, key string, r domain.Response) (domain.Draft, error) {
	return s.mutate(ctx, key, func(d *domain.Draft) {
		for i := range d.Responses {
			if d.Responses[i].QuestionID == r.QuestionID {
				d.Responses[i].Value = r.Value
				return
			}
		}
		d.Responses = append(d.Responses, r)
	})
}

func (s *Service) SetStep(ctx context.Context, key string, step int) (domain.Draft, error) {
	return s.mutate(ctx, key, func(d *domain.Draft) { d.Step = step })
}

func (s *Service) Clear(ctx context.Context, key string) error {
	return s.repo.DeleteDraft(ctx, key)
}

func (s *Service) mutate(ctx context.Context, key string, fn func(*domain.Draft)) (domain.Draft, error) {
	d, err := s.Load(ctx, key)
	if err != nil && !errors.Is(err, ErrStaleDraft) {
		return domain.Draft{}, err
	}
	fn(&d)
	d.UpdatedAt = s.now()
	if err := s.repo.SaveDraft(ctx, d); err != nil {
		return domain.Draft{}, err
	}
	return d, nil
}

// sameRegions compares region sets. Selection is a union, so order and
// repeats do not change the question set.
func sameRegions(a, b []domain.Region) bool {
	norm := func(rs []domain.Region) []domain.Region {
		rs = slices.Clone(rs)
		slices.Sort(rs)
		return slices.Compact(rs)
	}
	return slices.Equal(norm(a), norm(b))
}

func fresh(key string) domain.Draft {
	return domain.Draft{Key: key, SchemaVersion: domain.DraftSchemaVersion}
}
