// Package assessments scores submitted questionnaires and records completed
// assessments.
package assessments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/metrics"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/questionbank"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/recommend"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/scoring"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/summary"
)

var (
	ErrInvalidResponse = errors.New("invalid responses")
	ErrMissingOrg      = errors.New("organization name or website is required")
)

type Service struct {
	catalog     *questionbank.Catalog
	snapshots   ports.AssessmentRepository
	schedules   ports.ScheduleRepository
	mitigations ports.Mitigations
	log         *slog.Logger
	now         func() time.Time
}

func New(catalog *questionbank.Catalog, snapshots ports.AssessmentRepository, schedules ports.ScheduleRepository, mitigations ports.Mitigations, log *slog.Logger) *Service {
	return &Service{
		catalog:     catalog,
		snapshots:   snapshots,
		schedules:   schedules,
		mitigations: mitigations,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source. Tests use it.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Questions(level domain.MaturityLevel, regions []domain.Region) []domain.Question {
	return s.catalog.Select(level, regions)
}

// Evaluate validates the responses against the questions selected for the
// profile and runs the full scoring pipeline. Nothing is stored.
func (s *Service) Evaluate(ctx context.Context, req ports.EvaluateRequest) (ports.Report, error) {
	req = normalize(req)
	questions := s.catalog.Select(req.Profile.AIMaturityLevel, req.Profile.OperatingRegions)
	responses := questionbank.Dedupe(req.Responses)
	if err := questionbank.ValidateResponses(responses, questions); err != nil {
		return ports.Report{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	res := scoring.Evaluate(responses, req.Profile, questions)
	all := recommend.Generate(res.DimensionScores, res.RiskScore, req.Profile, req.Tier)
	visible, hidden := recommend.Visible(all, req.Tier)

	metrics.ObserveEvaluation(req.Profile.AIMaturityLevel, res.RiskScore.OverallRisk)
	s.log.DebugContext(ctx, "assessment scored",
		"maturity", res.RiskScore.CurrentMaturity,
		"answered", len(responses),
		"overall", res.RiskScore.OverallRisk,
		"risk", res.RiskScore.RiskLevel,
		"blind_spots", len(res.BlindSpots))

	return ports.Report{
		Result:          res,
		Recommendations: visible,
		HiddenPaid:      hidden,
		Summary: summary.Build(summary.Input{
			Profile:         req.Profile,
			OverallScore:    res.RiskScore.OverallRisk,
			RiskLevel:       res.RiskScore.RiskLevel,
			DimensionScores: res.DimensionScores,
			Jurisdiction:    questionbank.PrimaryJurisdiction(req.Profile.OperatingRegions),
		}),
		ContentVersion: s.catalog.Version(req.Profile.AIMaturityLevel.Normalize()),
	}, nil
}

// Complete evaluates the submission and stores it as a snapshot. It also
// starts the follow-up reminder clock and seeds the mitigation tracker.
func (s *Service) Complete(ctx context.Context, req ports.EvaluateRequest) (domain.Snapshot, ports.Report, error) {
	req = normalize(req)
	orgKey := req.Profile.OrganizationKey()
	if orgKey == "" {
		return domain.Snapshot{}, ports.Report{}, ErrMissingOrg
	}
	report, err := s.Evaluate(ctx, req)
	if err != nil {
		return domain.Snapshot{}, ports.Report{}, err
	}

	snap := domain.Snapshot{
		ID:                uuid.NewString(),
		OrgKey:            orgKey,
		Profile:           req.Profile,
		OverallScore:      report.RiskScore.OverallRisk,
		RiskLevel:         report.RiskScore.RiskLevel,
		DimensionScores:   report.DimensionScores,
		AchieverScore:     report.RiskScore.AchieverScore,
		BlindSpots:        report.BlindSpots,
		CompletedAt:       s.now(),
		AssessmentVersion: domain.AssessmentVersion,
		ContentVersion:    report.ContentVersion,
	}
	if err := s.snapshots.SaveSnapshot(ctx, snap); err != nil {
		return domain.Snapshot{}, ports.Report{}, fmt.Errorf("saving snapshot: %w", err)
	}
	metrics.ObserveCompletion()

	// The snapshot is already durable; follow-up bookkeeping failures are logged only.
	if err := s.schedules.EnsureSchedule(ctx, orgKey, snap.CompletedAt); err != nil {
		s.log.ErrorContext(ctx, "reminder schedule not recorded", "org", orgKey, "error", err)
	}
	if n, err := s.mitigations.Seed(ctx, snap); err != nil {
		s.log.ErrorContext(ctx, "mitigation seeding failed", "assessment", snap.ID, "error", err)
	} else {
		s.log.InfoContext(ctx, "assessment completed", "assessment", snap.ID, "org", orgKey, "overall", snap.OverallScore, "seeded", n)
	}
	return snap, report, nil
}

// normalize maps the maturity level onto a known bank, the same way the
// question listing does.
func normalize(req ports.EvaluateRequest) ports.EvaluateRequest {
	req.Profile.AIMaturityLevel = domain.ParseMaturity(string(req.Profile.AIMaturityLevel))
	return req
}
