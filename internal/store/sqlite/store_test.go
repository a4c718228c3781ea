package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tasknest/tasknest/internal/domain"
	"github.com/tasknest/tasknest/internal/store"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st *Store, email string) domain.User {
	t.Helper()

	u, err := st.Users().CreateUser(context.Background(), domain.User{
		Email:        email,
		Name:         "Seed",
		PasswordHash: "hash",
		Role:         domain.RoleUser,
	})
	require.NoError(t, err)
	return u
}

func TestCreateUserMapsUniqueViolation(t *testing.T) {
	st := newStore(t)
	seedUser(t, st, "unique@example.com")

	_, err := st.Users().CreateUser(context.Background(), domain.User{
		Email:        "unique@example.com",
		PasswordHash: "other",
		Role:         domain.RoleUser,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestEnableMFARequiresStoredSecret(t *testing.T) {
	st := newStore(t)
	u := seedUser(t, st, "mfa@example.com")
	ctx := context.Background()

	// No secret yet: the enable flag must not flip.
	err := st.Users().EnableMFA(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Users().UpdateMFASecret(ctx, u.ID, "JBSWY3DPEHPK3PXP"))
	require.NoError(t, st.Users().EnableMFA(ctx, u.ID))

	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, got.MFAEnabled)
	require.NotNil(t, got.MFASecret)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	st := newStore(t)
	u := seedUser(t, st, "tx@example.com")
	ctx := context.Background()

	boom := errors.New("boom")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Tasks().CreateTask(ctx, domain.Task{Text: "inside tx", OwnerID: u.ID})
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	tasks, err := st.Tasks().ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestSetSubtreeDoneWalksDescendants(t *testing.T) {
	st := newStore(t)
	u := seedUser(t, st, "cte@example.com")
	other := seedUser(t, st, "cte-other@example.com")
	ctx := context.Background()

	root, err := st.Tasks().CreateTask(ctx, domain.Task{Text: "root", OwnerID: u.ID})
	require.NoError(t, err)
	child, err := st.Tasks().CreateTask(ctx, domain.Task{Text: "child", OwnerID: u.ID, ParentID: &root.ID})
	require.NoError(t, err)
	grand, err := st.Tasks().CreateTask(ctx, domain.Task{Text: "grand", OwnerID: u.ID, ParentID: &child.ID})
	require.NoError(t, err)

	require.NoError(t, st.Tasks().SetSubtreeDone(ctx, root.ID, u.ID, true))

	for _, id := range []int64{root.ID, child.ID, grand.ID} {
		got, err := st.Tasks().GetTask(ctx, id, u.ID)
		require.NoError(t, err)
		require.True(t, got.Done)
	}

	// The wrong owner matches no root, so nothing is touched.
	err = st.Tasks().SetSubtreeDone(ctx, root.ID, other.ID, false)
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := st.Tasks().GetTask(ctx, root.ID, u.ID)
	require.NoError(t, err)
	require.True(t, got.Done)
}

func TestDeleteUserCascades(t *testing.T) {
	st := newStore(t)
	u := seedUser(t, st, "cascade@example.com")
	ctx := context.Background()

	task, err := st.Tasks().CreateTask(ctx, domain.Task{Text: "owned", OwnerID: u.ID})
	require.NoError(t, err)
	require.NoError(t, st.LoginHistory().CreateLoginRecord(ctx, domain.LoginRecord{
		UserID: u.ID,
		Status: domain.LoginSuccess,
	}))

	require.NoError(t, st.Users().DeleteUser(ctx, u.ID))

	_, err = st.Tasks().GetTask(ctx, task.ID, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	records, err := st.LoginHistory().ListByUser(ctx, u.ID, 10)
	require.NoError(t, err)
	require.Empty(t, records)
}
