package mitigations_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/adapters/sqlite"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/platform/logging"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/services/mitigations"
)

var now = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*mitigations.Service, domain.Snapshot) {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "mit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := domain.Snapshot{ID: uuid.NewString(), OrgKey: "acme.example", CompletedAt: now, AssessmentVersion: 1}
	for i := 0; i < 7; i++ {
		s.BlindSpots = append(s.BlindSpots, domain.BlindSpot{
			QuestionID:      fmt.Sprintf("vendor-e-%d", i+1),
			Title:           fmt.Sprintf("Gap %d", i+1),
			Dimension:       domain.VendorRisk,
			Severity:        domain.RiskCritical,
			ImmediateAction: "Act",
		})
	}
	require.NoError(t, db.SaveSnapshot(ctx, s))
	return mitigations.New(db, db, logging.Discard()).WithClock(func() time.Time { return now }), s
}

func TestSeed_OnlyOnceAndCapped(t *testing.T) {
	svc, snap := setup(t)
	ctx := context.Background()

	n, err := svc.Seed(ctx, snap)
	require.NoError(t, err)
	assert.Equal(t, mitigations.SeedLimit, n)

	n, err = svc.Seed(ctx, snap)
	require.NoError(t, err)
	assert.Zero(t, n)

	items, err := svc.List(ctx, snap.ID)
	require.NoError(t, err)
	require.Len(t, items, mitigations.SeedLimit)
	assert.Equal(t, "Gap 1", items[0].Title)
	assert.Equal(t, "vendor-e-1", *items[0].SourceID)
	assert.Equal(t, "Act", *items[0].Description)
	assert.Equal(t, domain.StatusNotStarted, items[0].Status)
}

func TestAddCustomAndUpdate(t *testing.T) {
	svc, snap := setup(t)
	ctx := context.Background()

	_, err := svc.AddCustom(ctx, snap.ID, "   ", nil)
	assert.ErrorIs(t, err, mitigations.ErrEmptyTitle)
	_, err = svc.AddCustom(ctx, uuid.NewString(), "Policy", nil)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	item, err := svc.AddCustom(ctx, snap.ID, "Publish acceptable use policy", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceCustom, item.SourceType)
	assert.Equal(t, domain.GeneralDimension, item.Dimension)

	notes := "legal reviewing"
	item, err = svc.UpdateStatus(ctx, item.ID, domain.StatusInProgress, &notes)
	require.NoError(t, err)
	assert.Equal(t, "legal reviewing", *item.Notes)

	blank := "  "
	item, err = svc.UpdateStatus(ctx, item.ID, domain.StatusComplete, &blank)
	require.NoError(t, err)
	assert.Equal(t, "legal reviewing", *item.Notes)
	require.NotNil(t, item.CompletedAt)
	assert.True(t, now.Equal(*item.CompletedAt))

	_, err = svc.UpdateStatus(ctx, item.ID, "done", nil)
	assert.ErrorIs(t, err, mitigations.ErrInvalidStatus)

	require.NoError(t, svc.Delete(ctx, item.ID))
	assert.ErrorIs(t, svc.Delete(ctx, item.ID), mitigations.ErrNotFound)
}
