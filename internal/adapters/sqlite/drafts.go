package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

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
	_, err = db.sql.ExecContext(ctx, `
		INSERT INTO draft_assessment (key, profile, responses, step, schema_version, saved_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			profile = excluded.profile,
			responses = excluded.responses,
			step = excluded.step,
			schema_version = excluded.schema_version,
			saved_at = excluded.saved_at
	`, d.Key, string(profile), string(responses), d.Step, d.SchemaVersion, formatTime(d.UpdatedAt))
	return err
}

func (db *DB) LoadDraft(ctx context.Context, key string) (domain.Draft, error) {
	var (
		d                  domain.Draft
		profile, responses string
		savedAt            string
	)
	err := db.sql.QueryRowContext(ctx, `
		SELECT key, profile, responses, step, schema_version, saved_at
		FROM draft_assessment WHERE key = ?
	`, key).Scan(&d.Key, &profile, &responses, &d.Step, &d.SchemaVersion, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Draft{}, ports.ErrNotFound
	}
	if err != nil {
		return domain.Draft{}, err
	}
	if err := json.Unmarshal([]byte(profile), &d.Profile); err != nil {
		return domain.Draft{}, err
	}
	if err := json.Unmarshal([]byte(responses), &d.Responses); err != nil {
		return domain.Draft{}, err
	}
	if d.UpdatedAt, err = parseTime(savedAt); err != nil {
		return domain.Draft{}, err
	}
	return d, nil
}

func (db *DB) DeleteDraft(ctx context.Context, key string) error {
	_, err := db.sql.ExecContext(ctx, `DELETE FROM draft_assessment WHERE key = ?`, key)
	return err
}
