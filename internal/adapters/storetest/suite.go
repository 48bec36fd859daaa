// Package storetest is a conformance suite shared by the repository adapters.
package storetest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
)

// Store is everything an adapter must implement.
type Store interface {
	ports.AssessmentRepository
	ports.MitigationRepository
	ports.DraftRepository
	ports.ScheduleRepository
}

// Suite runs against a fresh, empty store for every test.
type Suite struct {
	suite.Suite
	// NewStore returns an empty store. Cleanup is the caller's business.
	NewStore func() Store

	store Store
	ctx   context.Context
}

func (s *Suite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.NewStore()
}

var base = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func snapshot(org string, at time.Time, overall int) domain.Snapshot {
	return domain.Snapshot{
		ID:     uuid.NewString(),
		OrgKey: org,
		Profile: domain.OrganizationProfile{
			OrganizationName: "Acme",
			Website:          "https://www.acme.co.uk",
			Industry:         domain.IndustryFinance,
			AIMaturityLevel:  domain.Builder,
			OperatingRegions: []domain.Region{domain.Europe},
		},
		OverallScore: overall,
		RiskLevel:    domain.RiskLevelFor(float64(overall)),
		DimensionScores: []domain.DimensionScore{
			{Key: domain.ShadowAI, Score: overall, RiskLevel: domain.RiskLevelFor(float64(overall)),
				QuestionScores: []domain.QuestionScore{{QuestionID: "shadow-b-1", Score: 100 - overall}}},
		},
		AchieverScore: overall + 5,
		BlindSpots: []domain.BlindSpot{
			{QuestionID: "shadow-b-1", Title: "t", Dimension: domain.ShadowAI, Severity: domain.RiskCritical, Score: 0},
		},
		CompletedAt:       at,
		AssessmentVersion: domain.AssessmentVersion,
		ContentVersion:    "2026.1",
	}
}

func (s *Suite) TestSnapshotRoundTrip() {
	want := snapshot("acme.co.uk", base, 42)
	s.Require().NoError(s.store.SaveSnapshot(s.ctx, want))

	got, err := s.store.GetSnapshot(s.ctx, want.ID)
	s.Require().NoError(err)
	s.True(want.CompletedAt.Equal(got.CompletedAt))
	got.CompletedAt = want.CompletedAt
	s.Equal(want, got)

	_, err = s.store.GetSnapshot(s.ctx, uuid.NewString())
	s.ErrorIs(err, ports.ErrNotFound)
}

func (s *Suite) TestListSnapshotsNewestFirst() {
	for i, overall := range []int{10, 30, 20} {
		s.Require().NoError(s.store.SaveSnapshot(s.ctx, snapshot("acme.co.uk", base.Add(time.Duration(i)*time.Hour), overall)))
	}
	s.Require().NoError(s.store.SaveSnapshot(s.ctx, snapshot("other.org", base, 99)))

	all, err := s.store.ListSnapshots(s.ctx, "acme.co.uk", 0)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal([]int{20, 30, 10}, []int{all[0].OverallScore, all[1].OverallScore, all[2].OverallScore})

	two, err := s.store.ListSnapshots(s.ctx, "acme.co.uk", 2)
	s.Require().NoError(err)
	s.Len(two, 2)

	none, err := s.store.ListSnapshots(s.ctx, "nobody", 5)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *Suite) TestListSnapshotsTieBreaksOnID() {
	ids := []string{
		"3f0c2f6e-0000-4000-8000-000000000001",
		"c1a9d2b4-0000-4000-8000-000000000002",
		"7b2e4a10-0000-4000-8000-000000000003",
	}
	for _, id := range ids {
		snap := snapshot("acme.co.uk", base, 50)
		snap.ID = id
		s.Require().NoError(s.store.SaveSnapshot(s.ctx, snap))
	}

	got, err := s.store.ListSnapshots(s.ctx, "acme.co.uk", 0)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal([]string{ids[1], ids[2], ids[0]}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func (s *Suite) TestMalformedAssessmentIDs() {
	_, err := s.store.GetSnapshot(s.ctx, "not-a-uuid")
	s.ErrorIs(err, ports.ErrNotFound)

	n, err := s.store.CountMitigations(s.ctx, "not-a-uuid")
	s.Require().NoError(err)
	s.Zero(n)

	items, err := s.store.ListMitigations(s.ctx, "not-a-uuid")
	s.Require().NoError(err)
	s.Empty(items)
}

func (s *Suite) TestMitigationLifecycle() {
	snap := snapshot("acme.co.uk", base, 15)
	s.Require().NoError(s.store.SaveSnapshot(s.ctx, snap))

	n, err := s.store.CountMitigations(s.ctx, snap.ID)
	s.Require().NoError(err)
	s.Zero(n)

	desc := "do the thing"
	id, err := s.store.InsertMitigation(s.ctx, domain.MitigationItem{
		AssessmentID: snap.ID,
		SourceType:   domain.SourceCustom,
		Dimension:    domain.GeneralDimension,
		Title:        "Write policy",
		Description:  &desc,
		Status:       domain.StatusNotStarted,
		CreatedAt:    base,
	})
	s.Require().NoError(err)

	notes := "drafted"
	s.Require().NoError(s.store.UpdateMitigation(s.ctx, id, ports.MitigationUpdate{Status: domain.StatusInProgress, Notes: &notes, At: base.Add(time.Hour)}))
	item, err := s.store.GetMitigation(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.StatusInProgress, item.Status)
	s.Equal("drafted", *item.Notes)
	s.Nil(item.CompletedAt)

	// nil notes keep the stored value; first completion stamps completed_at
	done := base.Add(2 * time.Hour)
	s.Require().NoError(s.store.UpdateMitigation(s.ctx, id, ports.MitigationUpdate{Status: domain.StatusComplete, At: done}))
	item, err = s.store.GetMitigation(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("drafted", *item.Notes)
	s.Require().NotNil(item.CompletedAt)
	s.True(done.Equal(*item.CompletedAt))

	// later transitions never move completed_at
	s.Require().NoError(s.store.UpdateMitigation(s.ctx, id, ports.MitigationUpdate{Status: domain.StatusInProgress, At: base.Add(3 * time.Hour)}))
	s.Require().NoError(s.store.UpdateMitigation(s.ctx, id, ports.MitigationUpdate{Status: domain.StatusComplete, At: base.Add(4 * time.Hour)}))
	item, err = s.store.GetMitigation(s.ctx, id)
	s.Require().NoError(err)
	s.True(done.Equal(*item.CompletedAt))

	items, err := s.store.ListMitigations(s.ctx, snap.ID)
	s.Require().NoError(err)
	s.Len(items, 1)

	s.Require().NoError(s.store.DeleteMitigation(s.ctx, id))
	s.ErrorIs(s.store.DeleteMitigation(s.ctx, id), ports.ErrNotFound)
	s.ErrorIs(s.store.UpdateMitigation(s.ctx, id, ports.MitigationUpdate{Status: domain.StatusComplete, At: base}), ports.ErrNotFound)
	_, err = s.store.GetMitigation(s.ctx, id)
	s.ErrorIs(err, ports.ErrNotFound)
}

func (s *Suite) TestDraftUpsert() {
	_, err := s.store.LoadDraft(s.ctx, "default")
	s.ErrorIs(err, ports.ErrNotFound)

	d := domain.Draft{
		Key:           "default",
		Profile:       domain.OrganizationProfile{OrganizationName: "Acme", AIMaturityLevel: domain.Innovator},
		Responses:     []domain.Response{{QuestionID: "shadow-i-1", Value: 50}},
		Step:          2,
		SchemaVersion: domain.DraftSchemaVersion,
		UpdatedAt:     base,
	}
	s.Require().NoError(s.store.SaveDraft(s.ctx, d))
	d.Step = 3
	d.UpdatedAt = base.Add(time.Minute)
	s.Require().NoError(s.store.SaveDraft(s.ctx, d))

	got, err := s.store.LoadDraft(s.ctx, "default")
	s.Require().NoError(err)
	s.Equal(3, got.Step)
	s.Equal(d.Responses, got.Responses)
	s.Equal(d.Profile.OrganizationName, got.Profile.OrganizationName)
	s.True(d.UpdatedAt.Equal(got.UpdatedAt))

	s.Require().NoError(s.store.DeleteDraft(s.ctx, "default"))
	_, err = s.store.LoadDraft(s.ctx, "default")
	s.ErrorIs(err, ports.ErrNotFound)
}

func (s *Suite) TestScheduleClaimsOnce() {
	s.Require().NoError(s.store.EnsureSchedule(s.ctx, "acme.co.uk", base))
	// second call keeps the original reference time
	s.Require().NoError(s.store.EnsureSchedule(s.ctx, "acme.co.uk", base.Add(48*time.Hour)))

	sched, err := s.store.GetSchedule(s.ctx, "acme.co.uk")
	s.Require().NoError(err)
	s.True(base.Equal(sched.ReferenceAt))
	s.False(sched.Fired[domain.Milestone30])

	ok, err := s.store.ClaimMilestone(s.ctx, "acme.co.uk", domain.Milestone30)
	s.Require().NoError(err)
	s.True(ok)
	ok, err = s.store.ClaimMilestone(s.ctx, "acme.co.uk", domain.Milestone30)
	s.Require().NoError(err)
	s.False(ok)

	pending, err := s.store.PendingSchedules(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.True(pending[0].Fired[domain.Milestone30])

	for _, m := range []domain.Milestone{domain.Milestone60, domain.Milestone90} {
		ok, err := s.store.ClaimMilestone(s.ctx, "acme.co.uk", m)
		s.Require().NoError(err)
		s.True(ok)
	}
	pending, err = s.store.PendingSchedules(s.ctx)
	s.Require().NoError(err)
	s.Empty(pending)

	_, err = s.store.GetSchedule(s.ctx, "nobody")
	s.ErrorIs(err, ports.ErrNotFound)
}
