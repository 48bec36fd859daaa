package domain

import "time"

// Persistence-side models. The scoring core never sees these; services build
// them from scoring output and hand them to the repositories in ports.

// AssessmentVersion is stamped on every snapshot so trends are only compared
// across compatible scoring rules.
const AssessmentVersion = 1

// Snapshot is the stored subset of a completed assessment.
type Snapshot struct {
	ID                string              `json:"id"`
	OrgKey            string              `json:"orgKey"`
	Profile           OrganizationProfile `json:"profile"`
	OverallScore      int                 `json:"overallScore"`
	RiskLevel         RiskLevel           `json:"riskLevel"`
	DimensionScores   []DimensionScore    `json:"dimensionScores"`
	AchieverScore     int                 `json:"achieverScore"`
	BlindSpots        []BlindSpot         `json:"blindSpots"`
	CompletedAt       time.Time           `json:"completedAt"`
	AssessmentVersion int                 `json:"assessmentVersion"`
	ContentVersion    string              `json:"contentVersion,omitempty"`
}

type MitigationStatus string

const (
	StatusNotStarted MitigationStatus = "not_started"
	StatusInProgress MitigationStatus = "in_progress"
	StatusComplete   MitigationStatus = "complete"
)

// Valid reports whether s is a known status.
func (s MitigationStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusComplete:
		return true
	}
	return false
}

type MitigationSource string

const (
	SourceBlindSpot      MitigationSource = "blind_spot"
	SourceRecommendation MitigationSource = "recommendation"
	SourceCustom         MitigationSource = "custom"
)

// GeneralDimension tags custom mitigation items not tied to a dimension.
const GeneralDimension DimensionKey = "general"

// MitigationItem tracks remediation progress for an assessment.
// CompletedAt is set once, on the first transition to complete.
type MitigationItem struct {
	ID           int64            `json:"id"`
	AssessmentID string           `json:"assessmentId"`
	SourceType   MitigationSource `json:"sourceType"`
	SourceID     *string          `json:"sourceId,omitempty"`
	Dimension    DimensionKey     `json:"dimension"`
	Title        string           `json:"title"`
	Description  *string          `json:"description,omitempty"`
	Status       MitigationStatus `json:"status"`
	Notes        *string          `json:"notes,omitempty"`
	CompletedAt  *time.Time       `json:"completedAt,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// Milestone is a reminder point measured in days since the reference time.
type Milestone int

const (
	Milestone30 Milestone = 30
	Milestone60 Milestone = 60
	Milestone90 Milestone = 90
)

// Duration is the elapsed time after which m is due. Days are 24h.
func (m Milestone) Duration() time.Duration { return time.Duration(m) * 24 * time.Hour }

// Milestones in firing order.
var Milestones = []Milestone{Milestone30, Milestone60, Milestone90}

// ReminderSchedule is the per-organization follow-up clock.
type ReminderSchedule struct {
	OrgKey      string             `json:"orgKey"`
	ReferenceAt time.Time          `json:"referenceAt"`
	Fired       map[Milestone]bool `json:"fired"`
}

// DraftSchemaVersion guards against loading drafts written by an incompatible build.
const DraftSchemaVersion = 1

// Draft is an in-progress assessment. Responses hold at most one answer per question.
type Draft struct {
	Key           string              `json:"key"`
	Profile       OrganizationProfile `json:"profile"`
	Responses     []Response          `json:"responses"`
	Step          int                 `json:"step"`
	SchemaVersion int                 `json:"schemaVersion"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// Due reports the milestones that have elapsed at now and not yet fired.
func (s ReminderSchedule) Due(now time.Time) []Milestone {
	var due []Milestone
	for _, m := range Milestones {
		if s.Fired[m] {
			continue
		}
		if !now.Before(s.ReferenceAt.Add(m.Duration())) {
			due = append(due, m)
		}
	}
	return due
}
