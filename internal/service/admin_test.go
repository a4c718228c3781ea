package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tasknest/tasknest/internal/domain"
)

func TestAdminCreateUser(t *testing.T) {
	st := newTestStore(t)
	svc := &AdminService{Store: st}
	ctx := context.Background()

	admin, err := svc.CreateUser(ctx, "root@example.com", "root-password", "Root", domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, admin.Role)

	// Empty role defaults to USER.
	user, err := svc.CreateUser(ctx, "plain@example.com", "plain-password", "Plain", "")
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, user.Role)

	_, err = svc.CreateUser(ctx, "bad@example.com", "pw-long-enough", "Bad", "SUPERUSER")
	require.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = svc.CreateUser(ctx, "root@example.com", "other-password", "Copy", domain.RoleUser)
	require.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAdminListUsers(t *testing.T) {
	st := newTestStore(t)
	svc := &AdminService{Store: st}
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "one@example.com", "password-one", "One", domain.RoleUser)
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, "two@example.com", "password-two", "Two", domain.RoleAdmin)
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "one@example.com", users[0].Email)
	require.Equal(t, "two@example.com", users[1].Email)
}

func TestAdminUpdateUserRole(t *testing.T) {
	st := newTestStore(t)
	svc := &AdminService{Store: st}
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "promote@example.com", "promote-pw", "Promote", domain.RoleUser)
	require.NoError(t, err)

	updated, err := svc.UpdateUserRole(ctx, user.ID, domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, updated.Role)

	_, err = svc.UpdateUserRole(ctx, user.ID, "WIZARD")
	require.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = svc.UpdateUserRole(ctx, user.ID+1000, domain.RoleUser)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAdminDeleteUserCascades(t *testing.T) {
	st := newTestStore(t)
	admin := &AdminService{Store: st}
	tasks := &TaskService{Store: st}
	ctx := context.Background()

	user, err := admin.CreateUser(ctx, "doomed@example.com", "doomed-pw", "Doomed", domain.RoleUser)
	require.NoError(t, err)

	_, err = tasks.Create(ctx, user.ID, "will vanish", nil)
	require.NoError(t, err)
	require.NoError(t, st.LoginHistory().CreateLoginRecord(ctx, domain.LoginRecord{
		UserID: user.ID,
		Status: domain.LoginSuccess,
	}))

	require.NoError(t, admin.DeleteUser(ctx, user.ID))

	remaining, err := st.Tasks().ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, remaining)

	records, err := st.LoginHistory().ListByUser(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Empty(t, records)

	err = admin.DeleteUser(ctx, user.ID)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAdminListLoginHistory(t *testing.T) {
	st := newTestStore(t)
	svc := &AdminService{Store: st}
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "audited@example.com", "audited-pw", "Audited", domain.RoleUser)
	require.NoError(t, err)

	for _, status := range []domain.LoginStatus{domain.LoginFailed, domain.LoginSuccess} {
		require.NoError(t, st.LoginHistory().CreateLoginRecord(ctx, domain.LoginRecord{
			UserID: user.ID,
			Status: status,
		}))
	}

	records, err := svc.ListLoginHistory(ctx, user.ID, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	records, err = svc.ListLoginHistory(ctx, user.ID, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)

	_, err = svc.ListLoginHistory(ctx, user.ID+1000, 10)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
