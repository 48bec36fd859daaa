package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
)

func (db *DB) SaveDraft(ctx context.Context, d domain.Draft) error {
	profile, err := json.Marshal(d.Profile)
	if err != nil {
		return err
	}
	responses, err := json.Marshal(d.Responses)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO draft_assessment (key, profile, responses, step, schema_version, saved_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (key) DO UPDATE SET
			profile = EXCLUDED.profile,
			responses = EXCLUDED.responses,
			step = EXCLUDED.step,
			schema_version = EXCLUDED.schema_version,
			saved_at = EXCLUDED.saved_at
	`, d.Key, string(profile), string(responses), d.Step, d.SchemaVersion, d.UpdatedAt.UTC())
	return err
}

func (db *DB) LoadDraft(ctx context.Context, key string) (domain.Draft, error) {
	var (
		d                  domain.Draft
		profile, responses []byte
	)
	err := db.Pool.QueryRow(ctx, `
		SELECT key, profile, responses, step, schema_version, saved_at
		FROM draft_assessment WHERE key = $1
	`, key).Scan(&d.Key, &profile, &responses, &d.Step, &d.SchemaVersion, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Draft{}, ports.ErrNotFound
	}
	if err != nil {
		return domain.Draft{}, err
	}
	d.UpdatedAt = d.UpdatedAt.UTC()
	if err := json.Unmarshal(profile, &d.Profile); err != nil {
		return domain.Draft{}, err
	}
	if err := json.Unmarshal(responses, &d.Responses); err != nil {
		return domain.Draft{}, err
	}
	return d, nil
}

func (db *DB) DeleteDraft(ctx context.Context, key string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM draft_assessment WHERE key = $1`, key)
	return err
}
