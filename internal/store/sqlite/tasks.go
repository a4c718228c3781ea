package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/tasknest/tasknest/internal/domain"
	"github.com/tasknest/tasknest/internal/store"
)

type tasksRepo struct {
	db dbtx
}

const taskColumns = `id, text, done, parent_id, owner_id, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (domain.Task, error) {
	var (
		t        domain.Task
		parentID sql.NullInt64
	)
	err := row.Scan(&t.ID, &t.Text, &t.Done, &parentID, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Task{}, err
	}
	t.ParentID = mapNullInt64Ptr(parentID)
	return t, nil
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (text, done, parent_id, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.Text, t.Done, mapOptionalInt64(t.ParentID), t.OwnerID, now, now,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	t.ID = id
	t.CreatedAt = now
	t.UpdatedAt = now
	return t, nil
}

func (r *tasksRepo) GetTask(ctx context.Context, id, ownerID int64) (domain.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND owner_id = ?`, id, ownerID))
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE owner_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *tasksRepo) UpdateTask(ctx context.Context, id, ownerID int64, patch domain.TaskPatch) (domain.Task, error) {
	// COALESCE keeps absent patch fields at their current value so a
	// partial patch is a single statement.
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET text = COALESCE(?, text),
		    done = COALESCE(?, done),
		    updated_at = ?
		WHERE id = ? AND owner_id = ?`,
		patch.Text, patch.Done, time.Now().UTC(), id, ownerID,
	)
	if err != nil {
		return domain.Task{}, err
	}
	if err := requireRowAffected(res); err != nil {
		return domain.Task{}, err
	}

	return r.GetTask(ctx, id, ownerID)
}

// SetSubtreeDone walks the subtree with a recursive CTE and flips done on
// every row in one statement. The owner filter applies to the root only;
// descendants share the root's owner because creation enforces parent
// ownership.
func (r *tasksRepo) SetSubtreeDone(ctx context.Context, id, ownerID int64, done bool) error {
	res, err := r.db.ExecContext(ctx, `
		WITH RECURSIVE subtree (id) AS (
			SELECT id FROM tasks WHERE id = ? AND owner_id = ?
			UNION ALL
			SELECT t.id FROM tasks t JOIN subtree s ON t.parent_id = s.id
		)
		UPDATE tasks
		SET done = ?, updated_at = ?
		WHERE id IN (SELECT id FROM subtree)`,
		id, ownerID, done, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// requireRowAffected maps "no rows touched" to ErrNotFound so owner-scoped
// mutations don't reveal whether the row exists for someone else.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
