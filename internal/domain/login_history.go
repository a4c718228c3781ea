package domain

import "time"

// LoginStatus records the outcome of a login attempt.
type LoginStatus string

const (
	LoginSuccess    LoginStatus = "SUCCESS"
	LoginFailed     LoginStatus = "FAILED"
	LoginMFAPending LoginStatus = "MFA_PENDING"
)

// LoginRecord is an audit row written for every login attempt against a
// known account.
type LoginRecord struct {
	ID         int64
	UserID     int64
	RemoteAddr string
	UserAgent  string
	Status     LoginStatus
	CreatedAt  time.Time
}
