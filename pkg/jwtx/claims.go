package jwtx

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tasknest/tasknest/pkg/idx"
)

// Default token TTLs. Pending tokens exist only to finish an MFA step and
// must always be shorter-lived than session tokens.
const (
	DefaultSessionTTL = 24 * time.Hour
	DefaultPendingTTL = 5 * time.Minute
)

// Token categories carried in the token_use claim. The access gate accepts
// session tokens only; the MFA endpoints accept pending tokens only.
const (
	TokenUseSession = "session"
	TokenUsePending = "mfa_pending"
)

// Claims are the claims embedded in both token categories. The subject is
// the numeric user id in decimal form.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user, mirrors the login key.
	Email string `json:"email,omitempty"`

	// Role is the user's role at issuance time ("USER" or "ADMIN").
	Role string `json:"role,omitempty"`

	// TokenUse distinguishes full session tokens from pending MFA tokens.
	TokenUse string `json:"token_use"`

	// SID is a per-login session identifier (ULID), useful for log
	// correlation across requests.
	SID string `json:"sid,omitempty"`
}

// NewSessionClaims builds claims for a full session credential.
func NewSessionClaims(userID int64, email, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return newClaims(userID, email, role, issuer, TokenUseSession, ttl, now)
}

// NewPendingClaims builds claims for a short-lived mid-login credential.
// It carries the identity needed to resume the MFA step and nothing more.
func NewPendingClaims(userID int64, email, issuer string, ttl time.Duration, now time.Time) Claims {
	return newClaims(userID, email, "", issuer, TokenUsePending, ttl, now)
}

func newClaims(userID int64, email, role, issuer, use string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.New().String(),
		},
		Email:    email,
		Role:     role,
		TokenUse: use,
		SID:      idx.New().String(),
	}
}

// UserID parses the subject back into the numeric user id.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidClaim
	}
	return id, nil
}
