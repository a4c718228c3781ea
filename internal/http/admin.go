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

// AdminHandler serves user management. The ADMIN role gate runs in
// middleware; handlers assume it already passed.
type AdminHandler struct {
	AdminService *service.AdminService
}

// HandleList handles GET /admin/users
//
//	@Summary	List users
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		taskapi.UserInfo
//	@Failure	403	{object}	taskapi.ErrorResponse
//	@Router		/admin/users [get].
func (h *AdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.AdminService.ListUsers(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userViews(users))
}

// HandleCreate handles POST /admin/users
//
//	@Summary		Create a user
//	@Description	Provisions an account with an explicit role. No token is issued.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		taskapi.AdminCreateUserRequest	true	"Account"
//	@Success		201		{object}	taskapi.UserInfo
//	@Failure		400		{object}	taskapi.ErrorResponse	"Validation failure"
//	@Failure		409		{object}	taskapi.ErrorResponse	"Email already registered"
//	@Router			/admin/users [post].
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req taskapi.AdminCreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	user, err := h.AdminService.CreateUser(r.Context(), req.Email, req.Password, req.Name, domain.Role(req.Role))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userView(user))
}

// HandleUpdateRole handles PATCH /admin/users/{id}
//
//	@Summary	Change a user's role
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"User id"
//	@Param		request	body		taskapi.UpdateRoleRequest	true	"New role"
//	@Success	200		{object}	taskapi.UserInfo
//	@Failure	404		{object}	taskapi.ErrorResponse
//	@Router		/admin/users/{id} [patch].
func (h *AdminHandler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req taskapi.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	user, err := h.AdminService.UpdateUserRole(r.Context(), id, domain.Role(req.Role))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userView(user))
}

// HandleDelete handles DELETE /admin/users/{id}
//
//	@Summary		Delete a user
//	@Description	Removes the account; owned tasks and login history cascade.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			id	path	int	true	"User id"
//	@Success		204
//	@Failure		404	{object}	taskapi.ErrorResponse
//	@Router			/admin/users/{id} [delete].
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.AdminService.DeleteUser(r.Context(), id); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleLoginHistory handles GET /admin/users/{id}/logins
//
//	@Summary	List a user's login attempts
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id		path		int	true	"User id"
//	@Param		limit	query		int	false	"Max records (default 50)"
//	@Success	200		{array}		taskapi.LoginRecord
//	@Failure	404		{object}	taskapi.ErrorResponse
//	@Router		/admin/users/{id}/logins [get].
func (h *AdminHandler) HandleLoginHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.AdminService.ListLoginHistory(r.Context(), id, limit)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, loginRecordViews(records))
}
