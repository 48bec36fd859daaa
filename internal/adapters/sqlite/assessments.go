package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
)

const snapshotColumns = `id, org_key, profile, overall_score, risk_level, dimension_scores,
	achiever_score, blind_spots, completed_at, assessment_version, content_version`

func (db *DB) SaveSnapshot(ctx context.Context, s domain.Snapshot) error {
	profile, err := json.Marshal(s.Profile)
	if err != nil {
		return err
	}
	dims, err := json.Marshal(s.DimensionScores)
	if err != nil {
		return err
	}
	spots, err := json.Marshal(s.BlindSpots)
	if err != nil {
		return err
	}
	_, err = db.sql.ExecContext(ctx, `
		INSERT INTO completed_assessments (`+snapshotColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.OrgKey, string(profile), s.OverallScore, string(s.RiskLevel), string(dims),
		s.AchieverScore, string(spots), formatTime(s.CompletedAt), s.AssessmentVersion, s.ContentVersion)
	return err
}

func (db *DB) GetSnapshot(ctx context.Context, id string) (domain.Snapshot, error) {
	row := db.sql.QueryRowContext(ctx, `SELECT `+snapshotColumns+` FROM completed_assessments WHERE id = ?`, id)
	s, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Snapshot{}, ports.ErrNotFound
	}
	return s, err
}

func (db *DB) ListSnapshots(ctx context.Context, orgKey string, limit int) ([]domain.Snapshot, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.sql.QueryContext(ctx, `
		SELECT `+snapshotColumns+` FROM completed_assessments
		WHERE org_key = ?
		ORDER BY completed_at DESC, id DESC
		LIMIT ?
	`, orgKey, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]domain.Snapshot, 0)
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(sc scanner) (domain.Snapshot, error) {
	var (
		s                    domain.Snapshot
		risk, completedAt    string
		profile, dims, spots string
	)
	if err := sc.Scan(&s.ID, &s.OrgKey, &profile, &s.OverallScore, &risk, &dims,
		&s.AchieverScore, &spots, &completedAt, &s.AssessmentVersion, &s.ContentVersion); err != nil {
		return domain.Snapshot{}, err
	}
	s.RiskLevel = domain.RiskLevel(risk)
	if err := json.Unmarshal([]byte(profile), &s.Profile); err != nil {
		return domain.Snapshot{}, fmt.Errorf("snapshot %s profile: %w", s.ID, err)
	}
	if err := json.Unmarshal([]byte(dims), &s.DimensionScores); err != nil {
		return domain.Snapshot{}, fmt.Errorf("snapshot %s dimensions: %w", s.ID, err)
	}
	if err := json.Unmarshal([]byte(spots), &s.BlindSpots); err != nil {
		return domain.Snapshot{}, fmt.Errorf("snapshot %s blind spots: %w", s.ID, err)
	}
	t, err := parseTime(completedAt)
	if err != nil {
		return domain.Snapshot{}, err
	}
	s.CompletedAt = t
	return s, nil
}
