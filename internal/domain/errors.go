package domain

import "errors"

// Kind is the stable discriminator carried by every domain error. The HTTP
// boundary translates kinds to status codes; services never see HTTP.
type Kind string

const (
	KindValidation      Kind = "validation"      // bad input shape or length
	KindConflict        Kind = "conflict"        // duplicate email
	KindAuth            Kind = "auth"            // bad credentials
	KindInvalidOTP      Kind = "invalid_otp"     // TOTP mismatch
	KindUnauthenticated Kind = "unauthenticated" // missing/expired/wrong-category token
	KindForbidden       Kind = "forbidden"       // role or ownership violation
	KindNotFound        Kind = "not_found"       // missing entity, or not owned by caller
)

// Error is a domain error with a stable kind and a client-safe message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewValidation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func NewNotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }

// KindOf extracts the kind from an error chain, or "" for non-domain errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// Shared sentinels. Login failures deliberately use one message for both
// unknown email and wrong password to avoid user enumeration.
var (
	ErrInvalidCredentials = &Error{Kind: KindAuth, Message: "invalid email or password"}
	ErrEmailTaken         = &Error{Kind: KindConflict, Message: "user already exists"}
	ErrInvalidOTP         = &Error{Kind: KindInvalidOTP, Message: "invalid OTP"}
	ErrMFANotEnabled      = &Error{Kind: KindValidation, Message: "MFA not enabled for user"}
	ErrMFANotEnrolled     = &Error{Kind: KindValidation, Message: "MFA setup not initiated"}
	ErrTaskNotFound       = &Error{Kind: KindNotFound, Message: "task not found"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "user not found"}
	ErrForbidden          = &Error{Kind: KindForbidden, Message: "forbidden"}
)
