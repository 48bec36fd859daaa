// Package history reads completed assessments and compares them over time.
package history

import (
	"context"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
)

var ErrNotFound = ports.ErrNotFound

type Service struct {
	snapshots ports.AssessmentRepository
}

func New(snapshots ports.AssessmentRepository) *Service { return &Service{snapshots: snapshots} }

// List returns newest first.
func (s *Service) List(ctx context.Context, orgKey string, limit int) ([]domain.Snapshot, error) {
	return s.snapshots.ListSnapshots(ctx, orgKey, limit)
}

func (s *Service) Latest(ctx context.Context, orgKey string) (domain.Snapshot, error) {
	snaps, err := s.snapshots.ListSnapshots(ctx, orgKey, 1)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if len(snaps) == 0 {
		return domain.Snapshot{}, ErrNotFound
	}
	return snaps[0], nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Snapshot, error) {
	return s.snapshots.GetSnapshot(ctx, id)
}

// Trend reports how the latest assessment moved against the one before it.
// With a single assessment the deltas are zero and Previous is nil.
func (s *Service) Trend(ctx context.Context, orgKey string) (ports.Trend, error) {
	snaps, err := s.snapshots.ListSnapshots(ctx, orgKey, 2)
	if err != nil {
		return ports.Trend{}, err
	}
	if len(snaps) == 0 {
		return ports.Trend{}, ErrNotFound
	}
	t := ports.Trend{Current: snaps[0], Dimensions: make(map[domain.DimensionKey]int)}
	if len(snaps) < 2 {
		return t, nil
	}
	prev := snaps[1]
	t.Previous = &prev
	t.Overall = t.Current.OverallScore - prev.OverallScore

	before := make(map[domain.DimensionKey]int, len(prev.DimensionScores))
	for _, ds := range prev.DimensionScores {
		before[ds.Key] = ds.Score
	}
	for _, ds := range t.Current.DimensionScores {
		if old, ok := before[ds.Key]; ok {
			t.Dimensions[ds.Key] = ds.Score - old
		}
	}
	return t, nil
}
