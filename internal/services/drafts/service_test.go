package drafts_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/adapters/sqlite"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/services/drafts"
)

func setup(t *testing.T) (*drafts.Service, *sqlite.DB) {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return drafts.New(db), db
}

func TestLoad_FreshWhenMissing(t *testing.T) {
	svc, _ := setup(t)
	d, err := svc.Load(context.Background(), "default")
	require.NoError(t, err)
	assert.Equal(t, "default", d.Key)
	assert.Equal(t, domain.DraftSchemaVersion, d.SchemaVersion)
	assert.Empty(t, d.Responses)
}

func TestSetResponse_OverwritesSameQuestion(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.SetResponse(ctx, "k", domain.Response{QuestionID: "a", Value: 100})
	require.NoError(t, err)
	_, err = svc.SetResponse(ctx, "k", domain.Response{QuestionID: "b", Value: 50})
	require.NoError(t, err)
	d, err := svc.SetResponse(ctx, "k", domain.Response{QuestionID: "a", Value: 0})
	require.NoError(t, err)

	assert.Equal(t, []domain.Response{{QuestionID: "a", Value: 0}, {QuestionID: "b", Value: 50}}, d.Responses)

	d, err = svc.Load(ctx, "k")
	require.NoError(t, err)
	assert.Len(t, d.Responses, 2)
}

func TestUpdateProfile_ClearsResponsesWhenQuestionSetChanges(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	p := domain.OrganizationProfile{OrganizationName: "Acme", AIMaturityLevel: domain.Builder, OperatingRegions: []domain.Region{domain.Europe}}

	_, err := svc.UpdateProfile(ctx, "k", p)
	require.NoError(t, err)
	_, err = svc.SetResponse(ctx, "k", domain.Response{QuestionID: "shadow-b-1", Value: 50})
	require.NoError(t, err)

	p.Industry = domain.IndustryLegal
	d, err := svc.UpdateProfile(ctx, "k", p)
	require.NoError(t, err)
	assert.Len(t, d.Responses, 1, "industry change keeps answers")

	p.OperatingRegions = append(p.OperatingRegions, domain.NorthAmerica)
	d, err = svc.UpdateProfile(ctx, "k", p)
	require.NoError(t, err)
	assert.Empty(t, d.Responses, "region change clears answers")

	_, err = svc.SetResponse(ctx, "k", domain.Response{QuestionID: "shadow-b-1", Value: 50})
	require.NoError(t, err)
	p.AIMaturityLevel = domain.Innovator
	d, err = svc.UpdateProfile(ctx, "k", p)
	require.NoError(t, err)
	assert.Empty(t, d.Responses, "maturity change clears answers")
}

func TestUpdateProfile_RegionOrderKeepsResponses(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	p := domain.OrganizationProfile{
		OrganizationName: "Acme",
		AIMaturityLevel:  domain.Builder,
		OperatingRegions: []domain.Region{domain.Europe, domain.NorthAmerica},
	}

	_, err := svc.UpdateProfile(ctx, "k", p)
	require.NoError(t, err)
	_, err = svc.SetResponse(ctx, "k", domain.Response{QuestionID: "shadow-b-1", Value: 50})
	require.NoError(t, err)

	p.OperatingRegions = []domain.Region{domain.NorthAmerica, domain.Europe, domain.NorthAmerica}
	d, err := svc.UpdateProfile(ctx, "k", p)
	require.NoError(t, err)
	assert.Len(t, d.Responses, 1)
	assert.Equal(t, p.OperatingRegions, d.Profile.OperatingRegions)
}

func TestLoad_StaleSchemaIsDiscarded(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	require.NoError(t, db.SaveDraft(ctx, domain.Draft{
		Key:           "k",
		Responses:     []domain.Response{{QuestionID: "x", Value: 0}},
		SchemaVersion: 0,
	}))

	d, err := svc.Load(ctx, "k")
	assert.ErrorIs(t, err, drafts.ErrStaleDraft)
	assert.Empty(t, d.Responses)

	d, err = svc.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, domain.DraftSchemaVersion, d.SchemaVersion)
}

func TestClear(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	_, err := svc.SetStep(ctx, "k", 4)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "k"))
	d, err := svc.Load(ctx, "k")
	require.NoError(t, err)
	assert.Zero(t, d.Step)
}
