package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
)

const mitigationColumns = `id, assessment_id, source_type, source_id, dimension, title,
	description, status, notes, completed_at, created_at`

func (db *DB) CountMitigations(ctx context.Context, assessmentID string) (int, error) {
	var n int
	err := db.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM mitigation_items WHERE assessment_id = ?`, assessmentID).Scan(&n)
	return n, err
}

func (db *DB) InsertMitigation(ctx context.Context, item domain.MitigationItem) (int64, error) {
	var completedAt sql.NullString
	if item.CompletedAt != nil {
		completedAt = sql.NullString{String: formatTime(*item.CompletedAt), Valid: true}
	}
	res, err := db.sql.ExecContext(ctx, `
		INSERT INTO mitigation_items
			(assessment_id, source_type, source_id, dimension, title, description, status, notes, completed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, item.AssessmentID, string(item.SourceType), nullString(item.SourceID), string(item.Dimension), item.Title,
		nullString(item.Description), string(item.Status), nullString(item.Notes), completedAt, formatTime(item.CreatedAt))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (db *DB) ListMitigations(ctx context.Context, assessmentID string) ([]domain.MitigationItem, error) {
	rows, err := db.sql.QueryContext(ctx, `
		SELECT `+mitigationColumns+` FROM mitigation_items
		WHERE assessment_id = ?
		ORDER BY created_at ASC, id ASC
	`, assessmentID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

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
	item, err := scanMitigation(db.sql.QueryRowContext(ctx, `SELECT `+mitigationColumns+` FROM mitigation_items WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MitigationItem{}, ports.ErrNotFound
	}
	return item, err
}

func (db *DB) UpdateMitigation(ctx context.Context, id int64, u ports.MitigationUpdate) error {
	res, err := db.sql.ExecContext(ctx, `
		UPDATE mitigation_items
		SET status = ?,
		    notes = COALESCE(?, notes),
		    completed_at = CASE WHEN ? = 'complete' AND completed_at IS NULL THEN ? ELSE completed_at END
		WHERE id = ?
	`, string(u.Status), nullString(u.Notes), string(u.Status), formatTime(u.At), id)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (db *DB) DeleteMitigation(ctx context.Context, id int64) error {
	res, err := db.sql.ExecContext(ctx, `DELETE FROM mitigation_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func scanMitigation(sc scanner) (domain.MitigationItem, error) {
	var (
		item                         domain.MitigationItem
		sourceType, dim, status      string
		sourceID, description, notes sql.NullString
		completedAt                  sql.NullString
		createdAt                    string
	)
	if err := sc.Scan(&item.ID, &item.AssessmentID, &sourceType, &sourceID, &dim, &item.Title,
		&description, &status, &notes, &completedAt, &createdAt); err != nil {
		return domain.MitigationItem{}, err
	}
	item.SourceType = domain.MitigationSource(sourceType)
	item.Dimension = domain.DimensionKey(dim)
	item.Status = domain.MitigationStatus(status)
	item.SourceID = stringPtr(sourceID)
	item.Description = stringPtr(description)
	item.Notes = stringPtr(notes)
	var err error
	if item.CompletedAt, err = parseNullTime(completedAt); err != nil {
		return domain.MitigationItem{}, err
	}
	if item.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.MitigationItem{}, err
	}
	return item, nil
}
