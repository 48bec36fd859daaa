package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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
	_, err := db.sql.ExecContext(ctx, `
		INSERT INTO notification_schedule (org_key, reference_at) VALUES (?, ?)
		ON CONFLICT (org_key) DO NOTHING
	`, orgKey, formatTime(referenceAt))
	return err
}

const scheduleColumns = `org_key, reference_at, fired_30, fired_60, fired_90`

func (db *DB) GetSchedule(ctx context.Context, orgKey string) (domain.ReminderSchedule, error) {
	s, err := scanSchedule(db.sql.QueryRowContext(ctx, `SELECT `+scheduleColumns+` FROM notification_schedule WHERE org_key = ?`, orgKey))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ReminderSchedule{}, ports.ErrNotFound
	}
	return s, err
}

func (db *DB) PendingSchedules(ctx context.Context) ([]domain.ReminderSchedule, error) {
	rows, err := db.sql.QueryContext(ctx, `
		SELECT `+scheduleColumns+` FROM notification_schedule
		WHERE fired_30 = 0 OR fired_60 = 0 OR fired_90 = 0
		ORDER BY reference_at
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

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

func (db *DB) ClaimMilestone(ctx context.Context, orgKey string, m domain.Milestone) (bool, error) {
	col, err := firedColumn(m)
	if err != nil {
		return false, err
	}
	res, err := db.sql.ExecContext(ctx, `UPDATE notification_schedule SET `+col+` = 1 WHERE org_key = ? AND `+col+` = 0`, orgKey)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

func scanSchedule(sc scanner) (domain.ReminderSchedule, error) {
	var (
		s             domain.ReminderSchedule
		ref           string
		f30, f60, f90 bool
	)
	if err := sc.Scan(&s.OrgKey, &ref, &f30, &f60, &f90); err != nil {
		return domain.ReminderSchedule{}, err
	}
	t, err := parseTime(ref)
	if err != nil {
		return domain.ReminderSchedule{}, err
	}
	s.ReferenceAt = t
	s.Fired = map[domain.Milestone]bool{
		domain.Milestone30: f30,
		domain.Milestone60: f60,
		domain.Milestone90: f90,
	}
	return s, nil
}
