package store

import (
	"context"
	"errors"
	"time"

	"github.com/tasknest/tasknest/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and is constructed explicitly at process start and closed at
// shutdown - there is no ambient global handle.
type Store interface {
	Users() Users
	Tasks() Tasks
	LoginHistory() LoginHistory

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step mutations.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user and returns it with the generated id.
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail is used during login; email is the login key.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns all users ordered by id.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUserRole sets the role and bumps updated_at.
	UpdateUserRole(ctx context.Context, id int64, role domain.Role) error

	// UpdateMFASecret stores a fresh TOTP secret without enabling MFA.
	UpdateMFASecret(ctx context.Context, id int64, secret string) error

	// EnableMFA flips mfa_enabled on; the secret must already be stored.
	EnableMFA(ctx context.Context, id int64) error

	// DeleteUser removes a user; owned tasks and login history cascade per schema.
	DeleteUser(ctx context.Context, id int64) error
}

type Tasks interface {
	// CreateTask inserts a task and returns it with the generated id and
	// timestamps.
	CreateTask(ctx context.Context, t domain.Task) (domain.Task, error)

	// GetTask returns a task by id scoped to its owner. A task owned by
	// someone else is indistinguishable from a missing one (ErrNotFound).
	GetTask(ctx context.Context, id, ownerID int64) (domain.Task, error)

	// ListByOwner returns every task owned by ownerID as a flat slice
	// ordered by id; callers assemble the tree.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)

	// UpdateTask applies a partial patch to an owner-scoped task and
	// returns the updated row.
	UpdateTask(ctx context.Context, id, ownerID int64, patch domain.TaskPatch) (domain.Task, error)

	// SetSubtreeDone sets done on the owner-scoped root task and every
	// descendant, resolved by a recursive query, in a single statement.
	SetSubtreeDone(ctx context.Context, id, ownerID int64, done bool) error

	// DeleteTask removes an owner-scoped task; descendants cascade per schema.
	DeleteTask(ctx context.Context, id, ownerID int64) error
}

type LoginHistory interface {
	// CreateLoginRecord appends an audit row for a login attempt.
	CreateLoginRecord(ctx context.Context, rec domain.LoginRecord) error

	// ListByUser returns the newest records for a user, newest first.
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.LoginRecord, error)

	// DeleteOlderThan prunes audit rows beyond the retention window
	// (housekeeping) and reports how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
