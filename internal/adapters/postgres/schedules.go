package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
)

func firedColumn(m domain.Milestone) (string, error) {
	switch m {
	case domain.Milestone30:
		return "fired_30", nil
	case domain.Milestone60:
		return "fired_60", nil
	case domain.Milestone90:
		return "fired_90", nil
	}
	return "", fmt.Errorf("unknown milestone %d", m)
}

func (db *DB) EnsureSchedule(ctx context.Context, orgKey string, referenceAt time.Time) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO notification_schedule (org_key, reference_at) VALUES ($1, $2)
		ON CONFLICT (org_key) DO NOTHING
	`, orgKey, referenceAt.UTC())
	return err
}

const scheduleColumns = `org_key, reference_at, fired_30, fired_60, fired_90`

func (db *DB) GetSchedule(ctx context.Context, orgKey string) (domain.ReminderSchedule, error) {
	s, err := scanSchedule(db.Pool.QueryRow(ctx, `SELECT `+scheduleColumns+` FROM notification_schedule WHERE org_key = $1`, orgKey))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ReminderSchedule{}, ports.ErrNotFound
	}
	return s, err
}

func (db *DB) PendingSchedules(ctx context.Context) ([]domain.ReminderSchedule, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+scheduleColumns+` FROM notification_schedule
		WHERE NOT (fired_30 AND fired_60 AND fired_90)
		ORDER BY reference_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ReminderSchedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ClaimMilestone flips the fired flag only if it is still unset, so two
// workers racing on the same schedule cannot both claim it.
func (db *DB) ClaimMilestone(ctx context.Context, orgKey string, m domain.Milestone) (bool, error) {
	col, err := firedColumn(m)
	if err != nil {
		return false, err
	}
	tag, err := db.Pool.Exec(ctx, `UPDATE notification_schedule SET `+col+` = true WHERE org_key = $1 AND NOT `+col, orgKey)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanSchedule(row pgx.Row) (domain.ReminderSchedule, error) {
	var (
		s             domain.ReminderSchedule
		f30, f60, f90 bool
	)
	if err := row.Scan(&s.OrgKey, &s.ReferenceAt, &f30, &f60, &f90); err != nil {
		return domain.ReminderSchedule{}, err
	}
	s.ReferenceAt = s.ReferenceAt.UTC()
	s.Fired = map[domain.Milestone]bool{
		domain.Milestone30: f30,
		domain.Milestone60: f60,
		domain.Milestone90: f90,
	}
	return s, nil
}
