package http

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/tasknest/tasknest/internal/service"
	"github.com/tasknest/tasknest/pkg/httpx"
	"github.com/tasknest/tasknest/pkg/taskapi"
)

// AuthHandler serves public registration and the first login step.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister handles POST /register
//
//	@Summary		Register a new account
//	@Description	Creates a USER account and signs it in immediately.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		taskapi.RegisterRequest	true	"Account details"
//	@Success		201		{object}	taskapi.AuthResponse
//	@Failure		400		{object}	taskapi.ErrorResponse	"Validation failure"
//	@Failure		409		{object}	taskapi.ErrorResponse	"Email already registered"
//	@Router			/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req taskapi.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	token, user, err := h.AuthService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, taskapi.AuthResponse{
		Token: token,
		User:  userView(user),
	})
}

// HandleLogin handles POST /login
//
//	@Summary		Log in
//	@Description	Verifies credentials. Depending on the account's MFA state the
//	@Description	response carries a session token, or a short-lived temp token
//	@Description	with mfa_required or mfa_setup_required set.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		taskapi.LoginRequest	true	"Credentials"
//	@Success		200		{object}	taskapi.LoginResponse
//	@Failure		401		{object}	taskapi.ErrorResponse	"Invalid email or password"
//	@Router			/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req taskapi.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	outcome, err := h.AuthService.Login(r.Context(), req.Email, req.Password, loginContext(r))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	resp := taskapi.LoginResponse{
		MFARequired:      outcome.MFARequired,
		MFASetupRequired: outcome.MFASetupRequired,
		TempToken:        outcome.TempToken,
	}
	if outcome.Token != "" {
		resp.Token = outcome.Token
		view := userView(outcome.User)
		resp.User = &view
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// loginContext captures the caller's address and agent for the audit trail.
func loginContext(r *http.Request) service.LoginContext {
	return service.LoginContext{
		RemoteAddr: clientAddr(r),
		UserAgent:  r.UserAgent(),
	}
}

func clientAddr(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, ok := strings.Cut(xff, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(xff)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
