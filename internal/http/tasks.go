package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tasknest/tasknest/internal/domain"
	"github.com/tasknest/tasknest/internal/service"
	"github.com/tasknest/tasknest/pkg/httpx"
	"github.com/tasknest/tasknest/pkg/taskapi"
)

// TasksHandler serves the owner-scoped task CRUD endpoints.
type TasksHandler struct {
	TaskService *service.TaskService
}

// HandleList handles GET /todos
//
//	@Summary		List tasks
//	@Description	Returns the caller's tasks as a nested forest, roots newest first.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		taskapi.Task
//	@Failure		401	{object}	taskapi.ErrorResponse
//	@Router			/todos [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromCtx(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	tree, err := h.TaskService.List(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskViews(tree))
}

// HandleCreate handles POST /todos
//
//	@Summary		Create a task
//	@Description	Creates a task, optionally nested under one of the caller's
//	@Description	existing tasks.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		taskapi.CreateTaskRequest	true	"Task"
//	@Success		201		{object}	taskapi.Task
//	@Failure		400		{object}	taskapi.ErrorResponse	"Empty or oversized text"
//	@Failure		404		{object}	taskapi.ErrorResponse	"Parent not found"
//	@Router			/todos [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromCtx(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req taskapi.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	task, err := h.TaskService.Create(r.Context(), userID, req.Text, req.ParentID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, taskView(&task))
}

// HandleUpdate handles PUT /todos/{id}
//
//	@Summary		Update a task
//	@Description	Applies a partial patch. Setting done cascades the value to the
//	@Description	whole subtree atomically.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Task id"
//	@Param			request	body		taskapi.UpdateTaskRequest	true	"Patch"
//	@Success		200		{object}	taskapi.Task
//	@Failure		404		{object}	taskapi.ErrorResponse	"Unknown or unowned task"
//	@Router			/todos/{id} [put].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromCtx(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req taskapi.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	task, err := h.TaskService.Update(r.Context(), userID, id, domain.TaskPatch{
		Text: req.Text,
		Done: req.Done,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskView(&task))
}

// HandleDelete handles DELETE /todos/{id}
//
//	@Summary		Delete a task
//	@Description	Deletes a task and all of its descendants.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Task id"
//	@Success		204
//	@Failure		404	{object}	taskapi.ErrorResponse	"Unknown or unowned task"
//	@Router			/todos/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromCtx(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.TaskService.Delete(r.Context(), userID, id); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path segment; a non-numeric id reads as not found.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "not found")
		return 0, false
	}
	return id, true
}
