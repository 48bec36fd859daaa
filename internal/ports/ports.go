package ports

import (
	"context"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/scoring"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/summary"
)

// Report is a scored assessment with everything a consumer renders.
type Report struct {
	scoring.Result
	Recommendations []domain.Recommendation `json:"recommendations"`
	HiddenPaid      int                     `json:"hiddenPaid"`
	Summary         summary.Summary         `json:"summary"`
	ContentVersion  string                  `json:"contentVersion"`
}

// EvaluateRequest is one assessment submission.
type EvaluateRequest struct {
	Profile   domain.OrganizationProfile
	Responses []domain.Response
	Tier      domain.LicenseTier
}

// Assessments scores and records assessments.
type Assessments interface {
	Questions(level domain.MaturityLevel, regions []domain.Region) []domain.Question
	Evaluate(ctx context.Context, req EvaluateRequest) (Report, error)
	Complete(ctx context.Context, req EvaluateRequest) (domain.Snapshot, Report, error)
}

// Trend compares the two most recent snapshots of an organization.
type Trend struct {
	Current    domain.Snapshot             `json:"current"`
	Previous   *domain.Snapshot            `json:"previous,omitempty"`
	Overall    int                         `json:"overallDelta"`
	Dimensions map[domain.DimensionKey]int `json:"dimensionDeltas"`
}

// History reads completed assessments.
type History interface {
	List(ctx context.Context, orgKey string, limit int) ([]domain.Snapshot, error)
	Latest(ctx context.Context, orgKey string) (domain.Snapshot, error)
	Get(ctx context.Context, id string) (domain.Snapshot, error)
	Trend(ctx context.Context, orgKey string) (Trend, error)
}

// Mitigations manages remediation items.
type Mitigations interface {
	Seed(ctx context.Context, s domain.Snapshot) (int, error)
	List(ctx context.Context, assessmentID string) ([]domain.MitigationItem, error)
	AddCustom(ctx context.Context, assessmentID, title string, description *string) (domain.MitigationItem, error)
	UpdateStatus(ctx context.Context, id int64, status domain.MitigationStatus, notes *string) (domain.MitigationItem, error)
	Delete(ctx context.Context, id int64) error
}

// Drafts manages in-progress assessments.
type Drafts interface {
	Load(ctx context.Context, key string) (domain.Draft, error)
	UpdateProfile(ctx context.Context, key string, p domain.OrganizationProfile) (domain.Draft, error)
	SetResponse(ctx context.Context, key string, r domain.Response) (domain.Draft, error)
	SetStep(ctx context.Context, key string, step int) (domain.Draft, error)
	Clear(ctx context.Context, key string) error
}
