package sqlite

import (
	"context"
	"time"

	"github.com/tasknest/tasknest/internal/domain"
)

type loginHistoryRepo struct {
	db dbtx
}

func (r *loginHistoryRepo) CreateLoginRecord(ctx context.Context, rec domain.LoginRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO login_history (user_id, remote_addr, user_agent, status, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		rec.UserID, rec.RemoteAddr, rec.UserAgent, string(rec.Status), time.Now().UTC(),
	)
	return err
}

func (r *loginHistoryRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.LoginRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, remote_addr, user_agent, status, created_at
		FROM login_history
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.LoginRecord
	for rows.Next() {
		var (
			rec    domain.LoginRecord
			status string
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.RemoteAddr, &rec.UserAgent, &status, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Status = domain.LoginStatus(status)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *loginHistoryRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM login_history WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
