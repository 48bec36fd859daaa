package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
)

const mitigationColumns = `id, assessment_id::text, source_type, source_id, dimension, title,
	description, status, notes, completed_at, created_at`

func (db *DB) CountMitigations(ctx context.Context, assessmentID string) (int, error) {
	key, ok := parseID(assessmentID)
	if !ok {
		return 0, nil
	}
	var n int
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM mitigation_items WHERE assessment_id = $1::uuid`, key).Scan(&n)
	return n, err
}

func (db *DB) InsertMitigation(ctx context.Context, item domain.MitigationItem) (int64, error) {
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO mitigation_items
			(assessment_id, source_type, source_id, dimension, title, description, status, notes, completed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, item.AssessmentID, string(item.SourceType), item.SourceID, string(item.Dimension), item.Title,
		item.Description, string(item.Status), item.Notes, item.CompletedAt, item.CreatedAt.UTC()).Scan(&id)
	return id, err
}

func (db *DB) ListMitigations(ctx context.Context, assessmentID string) ([]domain.MitigationItem, error) {
	key, ok := parseID(assessmentID)
	if !ok {
		return []domain.MitigationItem{}, nil
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT `+mitigationColumns+` FROM mitigation_items
		WHERE assessment_id = $1::uuid
		ORDER BY created_at, id
	`, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.MitigationItem, 0)
	for rows.Next() {
		item, err := scanMitigation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (db *DB) GetMitigation(ctx context.Context, id int64) (domain.MitigationItem, error) {
	item, err := scanMitigation(db.Pool.QueryRow(ctx, `SELECT `+mitigationColumns+` FROM mitigation_items WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.MitigationItem{}, ports.ErrNotFound
	}
	return item, err
}

// UpdateMitigation locks the row so concurrent updates agree on whether this
// is the first transition to complete.
func (db *DB) UpdateMitigation(ctx context.Context, id int64, u ports.MitigationUpdate) (err error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var completedAt *time.Time
	err = tx.QueryRow(ctx, `SELECT completed_at FROM mitigation_items WHERE id = $1 FOR UPDATE`, id).Scan(&completedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ports.ErrNotFound
	}
	if err != nil {
		return err
	}
	if completedAt == nil && u.Status == domain.StatusComplete {
		at := u.At.UTC()
		completedAt = &at
	}
	_, err = tx.Exec(ctx, `
		UPDATE mitigation_items
		SET status = $2, notes = COALESCE($3, notes), completed_at = $4
		WHERE id = $1
	`, id, string(u.Status), u.Notes, completedAt)
	return err
}

func (db *DB) DeleteMitigation(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM mitigation_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func scanMitigation(row pgx.Row) (domain.MitigationItem, error) {
	var (
		item                    domain.MitigationItem
		sourceType, dim, status string
	)
	if err := row.Scan(&item.ID, &item.AssessmentID, &sourceType, &item.SourceID, &dim, &item.Title,
		&item.Description, &status, &item.Notes, &item.CompletedAt, &item.CreatedAt); err != nil {
		return domain.MitigationItem{}, err
	}
	item.SourceType = domain.MitigationSource(sourceType)
	item.Dimension = domain.DimensionKey(dim)
	item.Status = domain.MitigationStatus(status)
	item.CreatedAt = item.CreatedAt.UTC()
	if item.CompletedAt != nil {
		t := item.CompletedAt.UTC()
		item.CompletedAt = &t
	}
	return item, nil
}
