package http

import (
	"encoding/json"
	"net/http"

	"github.com/tasknest/tasknest/internal/service"
	"github.com/tasknest/tasknest/pkg/httpx"
	"github.com/tasknest/tasknest/pkg/jwtx"
	"github.com/tasknest/tasknest/pkg/slogx"
	"github.com/tasknest/tasknest/pkg/taskapi"
)

// MFAHandler serves the mid-login MFA endpoints. These accept only pending
// credentials: a full session token has no business here, and a pending
// token is rejected everywhere else.
type MFAHandler struct {
	AuthService *service.AuthService
	Verifier    *jwtx.Verifier
}

// HandleSetup handles POST /auth/mfa/setup
//
//	@Summary		Start TOTP enrollment
//	@Description	Generates a TOTP secret for the pending user and returns it with
//	@Description	a QR code. MFA stays disabled until a code is verified.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	taskapi.MFASetupResponse
//	@Failure		400	{object}	taskapi.ErrorResponse	"MFA already enabled"
//	@Failure		401	{object}	taskapi.ErrorResponse	"Missing or invalid pending token"
//	@Router			/auth/mfa/setup [post].
func (h *MFAHandler) HandleSetup(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pendingUser(w, r, "")
	if !ok {
		return
	}

	enrollment, err := h.AuthService.SetupMFA(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskapi.MFASetupResponse{
		Secret: enrollment.Secret,
		QRCode: enrollment.QRCode,
	})
}

// HandleVerifySetup handles POST /auth/mfa/verify
//
//	@Summary		Confirm TOTP enrollment
//	@Description	Verifies the first code, enables MFA, and upgrades the pending
//	@Description	credential to a full session.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		taskapi.MFAVerifyRequest	true	"OTP code"
//	@Success		200		{object}	taskapi.AuthResponse
//	@Failure		401		{object}	taskapi.ErrorResponse	"Invalid OTP or pending token"
//	@Router			/auth/mfa/verify [post].
func (h *MFAHandler) HandleVerifySetup(w http.ResponseWriter, r *http.Request) {
	var req taskapi.MFAVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	userID, ok := h.pendingUser(w, r, req.TempToken)
	if !ok {
		return
	}

	token, user, err := h.AuthService.VerifyMFASetup(r.Context(), userID, req.OTP)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskapi.AuthResponse{
		Token: token,
		User:  userView(user),
	})
}

// HandleVerifyLogin handles POST /auth/mfa/login
//
//	@Summary		Complete a challenged login
//	@Description	Verifies a code against the enabled secret and issues a session
//	@Description	token. A wrong code leaves the pending token retryable.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		taskapi.MFAVerifyRequest	true	"OTP code"
//	@Success		200		{object}	taskapi.AuthResponse
//	@Failure		401		{object}	taskapi.ErrorResponse	"Invalid OTP or pending token"
//	@Router			/auth/mfa/login [post].
func (h *MFAHandler) HandleVerifyLogin(w http.ResponseWriter, r *http.Request) {
	var req taskapi.MFAVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	userID, ok := h.pendingUser(w, r, req.TempToken)
	if !ok {
		return
	}

	token, user, err := h.AuthService.VerifyMFALogin(r.Context(), userID, req.OTP, loginContext(r))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskapi.AuthResponse{
		Token: token,
		User:  userView(user),
	})
}

// pendingUser resolves the caller from a pending credential, read from the
// Authorization header or the body temp_token fallback. On failure it writes
// the 401 itself and reports !ok.
func (h *MFAHandler) pendingUser(w http.ResponseWriter, r *http.Request, bodyToken string) (int64, bool) {
	raw, ok := httpx.BearerToken(r)
	if !ok {
		raw = bodyToken
	}
	if raw == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "pending MFA token required")
		return 0, false
	}

	claims, err := h.Verifier.Verify(raw)
	if err != nil {
		slogx.FromContext(r.Context()).Warn("pending token verify failed", "err", err)
		httpx.WriteError(w, http.StatusUnauthorized, "pending MFA token required")
		return 0, false
	}
	if claims.TokenUse != jwtx.TokenUsePending {
		httpx.WriteError(w, http.StatusUnauthorized, "pending MFA token required")
		return 0, false
	}

	userID, err := claims.UserID()
	if err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "pending MFA token required")
		return 0, false
	}
	return userID, true
}
