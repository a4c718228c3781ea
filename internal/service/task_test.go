package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tasknest/tasknest/internal/domain"
	"github.com/tasknest/tasknest/internal/store"
)

func createTestUser(t *testing.T, st store.Store, email string) domain.User {
	t.Helper()

	user, err := st.Users().CreateUser(context.Background(), domain.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: "not-a-real-hash",
		Role:         domain.RoleUser,
	})
	require.NoError(t, err)
	return user
}

func TestCreateTaskValidation(t *testing.T) {
	st := newTestStore(t)
	svc := &TaskService{Store: st}
	user := createTestUser(t, st, "tasks@example.com")
	ctx := context.Background()

	_, err := svc.Create(ctx, user.ID, "   ", nil)
	require.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = svc.Create(ctx, user.ID, strings.Repeat("a", 501), nil)
	require.Equal(t, domain.KindValidation, domain.KindOf(err))

	task, err := svc.Create(ctx, user.ID, strings.Repeat("a", 500), nil)
	require.NoError(t, err)
	require.Len(t, task.Text, 500)

	// Surrounding whitespace is trimmed before the length check.
	task, err = svc.Create(ctx, user.ID, "  buy milk  ", nil)
	require.NoError(t, err)
	require.Equal(t, "buy milk", task.Text)
	require.False(t, task.Done)
	require.Nil(t, task.ParentID)
}

func TestCreateTaskParentOwnership(t *testing.T) {
	st := newTestStore(t)
	svc := &TaskService{Store: st}
	alice := createTestUser(t, st, "alice-t@example.com")
	mallory := createTestUser(t, st, "mallory-t@example.com")
	ctx := context.Background()

	parent, err := svc.Create(ctx, alice.ID, "alice's task", nil)
	require.NoError(t, err)

	// Someone else's task as parent reads as not found, not forbidden.
	_, err = svc.Create(ctx, mallory.ID, "sneaky child", &parent.ID)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	missing := parent.ID + 1000
	_, err = svc.Create(ctx, alice.ID, "orphan", &missing)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestListNestedOrdering(t *testing.T) {
	st := newTestStore(t)
	svc := &TaskService{Store: st}
	user := createTestUser(t, st, "list@example.com")
	ctx := context.Background()

	root1, err := svc.Create(ctx, user.ID, "first root", nil)
	require.NoError(t, err)
	root2, err := svc.Create(ctx, user.ID, "second root", nil)
	require.NoError(t, err)

	childA, err := svc.Create(ctx, user.ID, "child a", &root1.ID)
	require.NoError(t, err)
	childB, err := svc.Create(ctx, user.ID, "child b", &root1.ID)
	require.NoError(t, err)
	grandchild, err := svc.Create(ctx, user.ID, "grandchild", &childA.ID)
	require.NoError(t, err)

	tree, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	// Roots newest first.
	require.Equal(t, root2.ID, tree[0].ID)
	require.Equal(t, root1.ID, tree[1].ID)
	require.Empty(t, tree[0].Children)

	// Children in creation order.
	require.Len(t, tree[1].Children, 2)
	require.Equal(t, childA.ID, tree[1].Children[0].ID)
	require.Equal(t, childB.ID, tree[1].Children[1].ID)

	require.Len(t, tree[1].Children[0].Children, 1)
	require.Equal(t, grandchild.ID, tree[1].Children[0].Children[0].ID)
}

func TestListIsTenantScoped(t *testing.T) {
	st := newTestStore(t)
	svc := &TaskService{Store: st}
	alice := createTestUser(t, st, "alice-l@example.com")
	bob := createTestUser(t, st, "bob-l@example.com")
	ctx := context.Background()

	_, err := svc.Create(ctx, alice.ID, "alice only", nil)
	require.NoError(t, err)

	tree, err := svc.List(ctx, bob.ID)
	require.NoError(t, err)
	require.Empty(t, tree)
}

func TestUpdateDoneCascadesToSubtree(t *testing.T) {
	st := newTestStore(t)
	svc := &TaskService{Store: st}
	user := createTestUser(t, st, "cascade@example.com")
	ctx := context.Background()

	root, err := svc.Create(ctx, user.ID, "root", nil)
	require.NoError(t, err)
	child, err := svc.Create(ctx, user.ID, "child", &root.ID)
	require.NoError(t, err)
	grandchild, err := svc.Create(ctx, user.ID, "grandchild", &child.ID)
	require.NoError(t, err)
	sibling, err := svc.Create(ctx, user.ID, "sibling root", nil)
	require.NoError(t, err)

	done := true
	updated, err := svc.Update(ctx, user.ID, root.ID, domain.TaskPatch{Done: &done})
	require.NoError(t, err)
	require.True(t, updated.Done)

	for _, id := range []int64{root.ID, child.ID, grandchild.ID} {
		got, err := st.Tasks().GetTask(ctx, id, user.ID)
		require.NoError(t, err)
		require.True(t, got.Done, "task %d should be done", id)
	}

	// Unrelated trees are untouched.
	got, err := st.Tasks().GetTask(ctx, sibling.ID, user.ID)
	require.NoError(t, err)
	require.False(t, got.Done)

	// Toggling back cascades the same way.
	notDone := false
	_, err = svc.Update(ctx, user.ID, root.ID, domain.TaskPatch{Done: &notDone})
	require.NoError(t, err)

	for _, id := range []int64{root.ID, child.ID, grandchild.ID} {
		got, err := st.Tasks().GetTask(ctx, id, user.ID)
		require.NoError(t, err)
		require.False(t, got.Done)
	}

	// Toggling a mid-tree node only touches its own subtree.
	_, err = svc.Update(ctx, user.ID, child.ID, domain.TaskPatch{Done: &done})
	require.NoError(t, err)

	got, err = st.Tasks().GetTask(ctx, root.ID, user.ID)
	require.NoError(t, err)
	require.False(t, got.Done)
	got, err = st.Tasks().GetTask(ctx, grandchild.ID, user.ID)
	require.NoError(t, err)
	require.True(t, got.Done)
}

func TestUpdateTextAndValidation(t *testing.T) {
	st := newTestStore(t)
	svc := &TaskService{Store: st}
	user := createTestUser(t, st, "patch@example.com")
	ctx := context.Background()

	task, err := svc.Create(ctx, user.ID, "original", nil)
	require.NoError(t, err)

	text := "  renamed  "
	updated, err := svc.Update(ctx, user.ID, task.ID, domain.TaskPatch{Text: &text})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Text)
	require.False(t, updated.Done)

	empty := "   "
	_, err = svc.Update(ctx, user.ID, task.ID, domain.TaskPatch{Text: &empty})
	require.Equal(t, domain.KindValidation, domain.KindOf(err))

	tooLong := strings.Repeat("b", 501)
	_, err = svc.Update(ctx, user.ID, task.ID, domain.TaskPatch{Text: &tooLong})
	require.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestUpdateAndDeleteAreOwnerScoped(t *testing.T) {
	st := newTestStore(t)
	svc := &TaskService{Store: st}
	alice := createTestUser(t, st, "alice-o@example.com")
	mallory := createTestUser(t, st, "mallory-o@example.com")
	ctx := context.Background()

	task, err := svc.Create(ctx, alice.ID, "private", nil)
	require.NoError(t, err)

	done := true
	_, err = svc.Update(ctx, mallory.ID, task.ID, domain.TaskPatch{Done: &done})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	err = svc.Delete(ctx, mallory.ID, task.ID)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	// The owner still sees it untouched.
	got, err := st.Tasks().GetTask(ctx, task.ID, alice.ID)
	require.NoError(t, err)
	require.False(t, got.Done)
}

func TestDeleteCascadesToDescendants(t *testing.T) {
	st := newTestStore(t)
	svc := &TaskService{Store: st}
	user := createTestUser(t, st, "delete@example.com")
	ctx := context.Background()

	root, err := svc.Create(ctx, user.ID, "root", nil)
	require.NoError(t, err)
	child, err := svc.Create(ctx, user.ID, "child", &root.ID)
	require.NoError(t, err)
	grandchild, err := svc.Create(ctx, user.ID, "grandchild", &child.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID, root.ID))

	for _, id := range []int64{root.ID, child.ID, grandchild.ID} {
		_, err := st.Tasks().GetTask(ctx, id, user.ID)
		require.True(t, errors.Is(err, store.ErrNotFound), "task %d should be gone", id)
	}

	err = svc.Delete(ctx, user.ID, root.ID)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}
