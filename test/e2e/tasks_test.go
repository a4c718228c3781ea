package e2e_test

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tasknest/tasknest/pkg/taskapi"
)

func TestTaskLifecycle(t *testing.T) {
	env := setupServer(t, false)
	client := registerUser(t, env, "u1@example.com", "u1-password-123", "U1")

	// The launch-planning scenario: parent, child, cascade toggle.
	parent, err := client.CreateTask(t.Context(), taskapi.CreateTaskRequest{Text: "Plan launch"})
	require.NoError(t, err)
	require.False(t, parent.Done)

	child, err := client.CreateTask(t.Context(), taskapi.CreateTaskRequest{
		Text:     "Write brief",
		ParentID: &parent.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	require.Equal(t, parent.ID, *child.ParentID)

	done := true
	updated, err := client.UpdateTask(t.Context(), parent.ID, taskapi.UpdateTaskRequest{Done: &done})
	require.NoError(t, err)
	require.True(t, updated.Done)

	tree, err := client.ListTasks(t.Context())
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Equal(t, parent.ID, tree[0].ID)
	require.True(t, tree[0].Done)
	require.Len(t, tree[0].Children, 1)
	require.Equal(t, child.ID, tree[0].Children[0].ID)
	require.True(t, tree[0].Children[0].Done)

	// Deleting the parent takes the subtree with it.
	require.NoError(t, client.DeleteTask(t.Context(), parent.ID))

	tree, err = client.ListTasks(t.Context())
	require.NoError(t, err)
	require.Empty(t, tree)
}

func TestTaskTextBoundaries(t *testing.T) {
	env := setupServer(t, false)
	client := registerUser(t, env, "u2@example.com", "u2-password-123", "U2")

	var apiErr *taskapi.APIError

	_, err := client.CreateTask(t.Context(), taskapi.CreateTaskRequest{Text: "   "})
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	_, err = client.CreateTask(t.Context(), taskapi.CreateTaskRequest{Text: strings.Repeat("x", 501)})
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	task, err := client.CreateTask(t.Context(), taskapi.CreateTaskRequest{Text: strings.Repeat("x", 500)})
	require.NoError(t, err)
	require.Len(t, task.Text, 500)
}

func TestTasksAreTenantIsolated(t *testing.T) {
	env := setupServer(t, false)
	alice := registerUser(t, env, "alice2@example.com", "alice-password-2", "Alice")
	mallory := registerUser(t, env, "mallory2@example.com", "mallory-pass-2", "Mallory")

	task, err := alice.CreateTask(t.Context(), taskapi.CreateTaskRequest{Text: "private"})
	require.NoError(t, err)

	var apiErr *taskapi.APIError

	// Every cross-tenant access reads as 404, never 403.
	done := true
	_, err = mallory.UpdateTask(t.Context(), task.ID, taskapi.UpdateTaskRequest{Done: &done})
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	err = mallory.DeleteTask(t.Context(), task.ID)
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	_, err = mallory.CreateTask(t.Context(), taskapi.CreateTaskRequest{
		Text:     "sneaky child",
		ParentID: &task.ID,
	})
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	tree, err := mallory.ListTasks(t.Context())
	require.NoError(t, err)
	require.Empty(t, tree)
}

func TestPasswordHashNeverSerialized(t *testing.T) {
	env := setupServer(t, false)

	// Check the raw register payload, not the typed decoding, so an
	// accidentally serialized hash field cannot hide.
	body := `{"name":"Hash Check","email":"hash@example.com","password":"hash-password-12"}`
	resp, err := http.Post(env.Client.BaseURL+"/register", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "password")
	require.NotContains(t, string(raw), "argon2")
}
