package taskapi

import "time"

// UserInfo is the public view of a user. The password hash never appears on
// the wire.
type UserInfo struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	MFAEnabled bool      `json:"mfa_enabled"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Task is a task node with its nested children.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Done      bool      `json:"done"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Children  []Task    `json:"children"`
}

// LoginRecord is one audited login attempt.
type LoginRecord struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	RemoteAddr string    `json:"remote_addr"`
	UserAgent  string    `json:"user_agent"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a full session credential.
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// LoginResponse is the polymorphic login result. Exactly one of the three
// shapes is populated: a session (Token+User), an MFA challenge
// (MFARequired+TempToken), or an MFA setup demand (MFASetupRequired+TempToken).
type LoginResponse struct {
	Token            string    `json:"token,omitempty"`
	User             *UserInfo `json:"user,omitempty"`
	MFARequired      bool      `json:"mfa_required,omitempty"`
	MFASetupRequired bool      `json:"mfa_setup_required,omitempty"`
	TempToken        string    `json:"temp_token,omitempty"`
}

// MFASetupResponse carries the provisioning artifacts for an authenticator
// app. QRCode is a base64 PNG data URI of the otpauth:// URL.
type MFASetupResponse struct {
	Secret string `json:"secret"`
	QRCode string `json:"qr_code"`
}

// MFAVerifyRequest submits an OTP. TempToken is an alternative transport for
// the pending credential when the Authorization header is not used.
type MFAVerifyRequest struct {
	OTP       string `json:"otp"`
	TempToken string `json:"temp_token,omitempty"`
}

type CreateTaskRequest struct {
	Text     string `json:"text"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

type UpdateTaskRequest struct {
	Text *string `json:"text,omitempty"`
	Done *bool   `json:"done,omitempty"`
}

type AdminCreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type PingResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}
