package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
)

const snapshotColumns = `id::text, org_key, profile, overall_score, risk_level, dimension_scores,
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
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO completed_assessments
			(id, org_key, profile, overall_score, risk_level, dimension_scores,
			 achiever_score, blind_spots, completed_at, assessment_version, content_version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, s.ID, s.OrgKey, string(profile), s.OverallScore, string(s.RiskLevel), string(dims),
		s.AchieverScore, string(spots), s.CompletedAt.UTC(), s.AssessmentVersion, s.ContentVersion)
	return err
}

// parseID validates an assessment id. Ids that are not UUIDs cannot exist.
func parseID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

func (db *DB) GetSnapshot(ctx context.Context, id string) (domain.Snapshot, error) {
	key, ok := parseID(id)
	if !ok {
		return domain.Snapshot{}, ports.ErrNotFound
	}
	s, err := scanSnapshot(db.Pool.QueryRow(ctx, `SELECT `+snapshotColumns+` FROM completed_assessments WHERE id = $1::uuid`, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Snapshot{}, ports.ErrNotFound
	}
	return s, err
}

func (db *DB) ListSnapshots(ctx context.Context, orgKey string, limit int) ([]domain.Snapshot, error) {
	var lim *int
	if limit > 0 {
		lim = &limit
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT `+snapshotColumns+` FROM completed_assessments
		WHERE org_key = $1
		ORDER BY completed_at DESC, id DESC
		LIMIT $2
	`, orgKey, lim)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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

func scanSnapshot(row pgx.Row) (domain.Snapshot, error) {
	var (
		s                    domain.Snapshot
		risk                 string
		profile, dims, spots []byte
	)
	if err := row.Scan(&s.ID, &s.OrgKey, &profile, &s.OverallScore, &risk, &dims,
		&s.AchieverScore, &spots, &s.CompletedAt, &s.AssessmentVersion, &s.ContentVersion); err != nil {
		return domain.Snapshot{}, err
	}
	s.RiskLevel = domain.RiskLevel(risk)
	s.CompletedAt = s.CompletedAt.UTC()
	if err := json.Unmarshal(profile, &s.Profile); err != nil {
		return domain.Snapshot{}, fmt.Errorf("snapshot %s profile: %w", s.ID, err)
	}
	if err := json.Unmarshal(dims, &s.DimensionScores); err != nil {
		return domain.Snapshot{}, fmt.Errorf("snapshot %s dimensions: %w", s.ID, err)
	}
	if err := json.Unmarshal(spots, &s.BlindSpots); err != nil {
		return domain.Snapshot{}, fmt.Errorf("snapshot %s blind spots: %w", s.ID, err)
	}
	return s, nil
}
