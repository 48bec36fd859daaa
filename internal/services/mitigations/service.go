// Package mitigations tracks remediation work against completed assessments.
package mitigations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
)

// SeedLimit caps how many blind spots become tracker items.
const SeedLimit = 5

var (
	ErrNotFound      = ports.ErrNotFound
	ErrInvalidStatus = errors.New("invalid mitigation status")
	ErrEmptyTitle    = errors.New("mitigation title is required")
)

type Service struct {
	items     ports.MitigationRepository
	snapshots ports.AssessmentRepository
	log       *slog.Logger
	now       func() time.Time
}

func New(items ports.MitigationRepository, snapshots ports.AssessmentRepository, log *slog.Logger) *Service {
	return &Service{items: items, snapshots: snapshots, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock replaces the time source. Tests use it.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Seed creates items from the worst blind spots of snap. It does nothing when
// the assessment already has items, so it is safe to call repeatedly.
func (s *Service) Seed(ctx context.Context, snap domain.Snapshot) (int, error) {
	n, err := s.items.CountMitigations(ctx, snap.ID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	spots := snap.BlindSpots
	if len(spots) > SeedLimit {
		spots = spots[:SeedLimit]
	}
	now := s.now()
	for _, bs := range spots {
		qid, action := bs.QuestionID, bs.ImmediateAction
		item := domain.MitigationItem{
			AssessmentID: snap.ID,
			SourceType:   domain.SourceBlindSpot,
			SourceID:     &qid,
			Dimension:    bs.Dimension,
			Title:        bs.Title,
			Description:  &action,
			Status:       domain.StatusNotStarted,
			CreatedAt:    now,
		}
		if _, err := s.items.InsertMitigation(ctx, item); err != nil {
			return 0, fmt.Errorf("seeding %s: %w", qid, err)
		}
	}
	return len(spots), nil
}

func (s *Service) List(ctx context.Context, assessmentID string) ([]domain.MitigationItem, error) {
	return s.items.ListMitigations(ctx, assessmentID)
}

// AddCustom records a user-defined item against an existing assessment.
func (s *Service) AddCustom(ctx context.Context, assessmentID, title string, description *string) (domain.MitigationItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.MitigationItem{}, ErrEmptyTitle
	}
	if _, err := s.snapshots.GetSnapshot(ctx, assessmentID); err != nil {
		return domain.MitigationItem{}, err
	}
	item := domain.MitigationItem{
		AssessmentID: assessmentID,
		SourceType:   domain.SourceCustom,
		Dimension:    domain.GeneralDimension,
		Title:        title,
		Description:  description,
		Status:       domain.StatusNotStarted,
		CreatedAt:    s.now(),
	}
	id, err := s.items.InsertMitigation(ctx, item)
	if err != nil {
		return domain.MitigationItem{}, err
	}
	item.ID = id
	return item, nil
}

// UpdateStatus moves an item to status. Empty notes keep what is stored.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.MitigationStatus, notes *string) (domain.MitigationItem, error) {
	if !status.Valid() {
		return domain.MitigationItem{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if notes != nil && strings.TrimSpace(*notes) == "" {
		notes = nil
	}
	if err := s.items.UpdateMitigation(ctx, id, ports.MitigationUpdate{Status: status, Notes: notes, At: s.now()}); err != nil {
		return domain.MitigationItem{}, err
	}
	s.log.DebugContext(ctx, "mitigation updated", "id", id, "status", status)
	return s.items.GetMitigation(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.items.DeleteMitigation(ctx, id)
}
