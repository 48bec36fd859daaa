package ports

import (
	"context"
	"errors"
	"time"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
)

// ErrNotFound is returned by repositories when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

// AssessmentRepository stores completed assessment snapshots.
type AssessmentRepository interface {
	SaveSnapshot(ctx context.Context, s domain.Snapshot) error
	GetSnapshot(ctx context.Context, id string) (domain.Snapshot, error)
	// ListSnapshots returns newest first. limit <= 0 means no limit.
	ListSnapshots(ctx context.Context, orgKey string, limit int) ([]domain.Snapshot, error)
}

// MitigationUpdate carries a status change. Nil Notes keeps the stored notes.
type MitigationUpdate struct {
	Status domain.MitigationStatus
	Notes  *string
	At     time.Time
}

// MitigationRepository tracks remediation items per assessment.
type MitigationRepository interface {
	CountMitigations(ctx context.Context, assessmentID string) (int, error)
	InsertMitigation(ctx context.Context, item domain.MitigationItem) (int64, error)
	ListMitigations(ctx context.Context, assessmentID string) ([]domain.MitigationItem, error)
	GetMitigation(ctx context.Context, id int64) (domain.MitigationItem, error)
	// UpdateMitigation sets completed_at only on the first transition to complete.
	UpdateMitigation(ctx context.Context, id int64, u MitigationUpdate) error
	DeleteMitigation(ctx context.Context, id int64) error
}

// DraftRepository persists one in-progress assessment per key.
type DraftRepository interface {
	SaveDraft(ctx context.Context, d domain.Draft) error
	LoadDraft(ctx context.Context, key string) (domain.Draft, error)
	DeleteDraft(ctx context.Context, key string) error
}

// ScheduleRepository holds the follow-up reminder clock per organization.
type ScheduleRepository interface {
	// EnsureSchedule records referenceAt unless a schedule already exists.
	EnsureSchedule(ctx context.Context, orgKey string, referenceAt time.Time) error
	GetSchedule(ctx context.Context, orgKey string) (domain.ReminderSchedule, error)
	// PendingSchedules lists schedules with at least one unfired milestone.
	PendingSchedules(ctx context.Context) ([]domain.ReminderSchedule, error)
	// ClaimMilestone marks m fired and reports whether this call made the change.
	ClaimMilestone(ctx context.Context, orgKey string, m domain.Milestone) (bool, error)
}
