package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/tasknest/tasknest/internal/domain"
	"github.com/tasknest/tasknest/internal/store"
	"github.com/tasknest/tasknest/pkg/cryptox"
	"github.com/tasknest/tasknest/pkg/jwtx"
	"github.com/tasknest/tasknest/pkg/slogx"
)

// TOTP parameters shared by enrollment and verification. Skew 1 accepts the
// immediately adjacent time steps to tolerate client clock drift.
const (
	totpPeriod = 30
	totpSkew   = 1
)

var ErrMFAAlreadyEnabled = &domain.Error{
	Kind:    domain.KindValidation,
	Message: "MFA already enabled for user",
}

// AuthService drives the login state machine: password check, the optional
// MFA setup/challenge branch, and issuance of pending vs session tokens.
type AuthService struct {
	Store  store.Store
	Signer *jwtx.Signer
	Issuer string

	SessionTTL time.Duration
	PendingTTL time.Duration

	// MFARequired is the deployment policy toggle: when set, users without
	// an enrolled secret are routed to MFA setup at login instead of
	// receiving a session token.
	MFARequired bool
}

// LoginContext carries request metadata recorded in the login audit trail.
type LoginContext struct {
	RemoteAddr string
	UserAgent  string
}

// Register creates a user with role USER and MFA disabled, and signs them in
// immediately - there is no MFA step at registration.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (string, domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.User{}, domain.NewValidation("email must not be empty")
	}
	if password == "" {
		return "", domain.User{}, domain.NewValidation("password must not be empty")
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		Role:         domain.RoleUser,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", domain.User{}, domain.ErrEmailTaken
		}
		return "", domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueSession(user)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

// Login checks the password and branches per the MFA state machine. Unknown
// email and wrong password fail identically so callers cannot enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, email, password string, lc LoginContext) (domain.LoginOutcome, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.LoginOutcome{}, domain.ErrInvalidCredentials
		}
		return domain.LoginOutcome{}, fmt.Errorf("failed to load user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		s.recordLogin(ctx, user.ID, lc, domain.LoginFailed)
		return domain.LoginOutcome{}, domain.ErrInvalidCredentials
	}

	switch {
	case user.MFAEnabled:
		temp, err := s.issuePending(user)
		if err != nil {
			return domain.LoginOutcome{}, err
		}
		s.recordLogin(ctx, user.ID, lc, domain.LoginMFAPending)
		return domain.LoginOutcome{MFARequired: true, TempToken: temp}, nil

	case s.MFARequired:
		// Policy mandates MFA but this user has nothing enrolled yet: hand
		// out a pending token so they can run the setup flow.
		temp, err := s.issuePending(user)
		if err != nil {
			return domain.LoginOutcome{}, err
		}
		s.recordLogin(ctx, user.ID, lc, domain.LoginMFAPending)
		return domain.LoginOutcome{MFASetupRequired: true, TempToken: temp}, nil

	default:
		token, err := s.issueSession(user)
		if err != nil {
			return domain.LoginOutcome{}, err
		}
		s.recordLogin(ctx, user.ID, lc, domain.LoginSuccess)
		return domain.LoginOutcome{Token: token, User: user}, nil
	}
}

// SetupMFA generates a fresh TOTP secret for the user and returns the
// provisioning artifacts. The secret is stored but MFA stays disabled until
// a code is verified, so an abandoned setup leaves the account as it was.
func (s *AuthService) SetupMFA(ctx context.Context, userID int64) (domain.MFAEnrollment, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.MFAEnrollment{}, err
	}
	if user.MFAEnabled {
		return domain.MFAEnrollment{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Email,
		Period:      totpPeriod,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return domain.MFAEnrollment{}, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	if err := s.Store.Users().UpdateMFASecret(ctx, userID, key.Secret()); err != nil {
		return domain.MFAEnrollment{}, fmt.Errorf("failed to store MFA secret: %w", err)
	}

	qr, err := renderQRCode(key)
	if err != nil {
		return domain.MFAEnrollment{}, err
	}

	return domain.MFAEnrollment{Secret: key.Secret(), QRCode: qr}, nil
}

// VerifyMFASetup checks the OTP against the freshly stored secret. On match
// MFA is enabled and the pending credential is upgraded to a full session.
func (s *AuthService) VerifyMFASetup(ctx context.Context, userID int64, code string) (string, domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return "", domain.User{}, err
	}
	if user.MFASecret == nil || *user.MFASecret == "" {
		return "", domain.User{}, domain.ErrMFANotEnrolled
	}
	if user.MFAEnabled {
		return "", domain.User{}, ErrMFAAlreadyEnabled
	}

	if !validateTOTP(code, *user.MFASecret) {
		return "", domain.User{}, domain.ErrInvalidOTP
	}

	if err := s.Store.Users().EnableMFA(ctx, userID); err != nil {
		return "", domain.User{}, fmt.Errorf("failed to enable MFA: %w", err)
	}
	user.MFAEnabled = true

	token, err := s.issueSession(user)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

// VerifyMFALogin checks the OTP against the enabled secret and issues a
// session token. A mismatch leaves the pending credential usable for a
// retry until its own expiry.
func (s *AuthService) VerifyMFALogin(ctx context.Context, userID int64, code string, lc LoginContext) (string, domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return "", domain.User{}, err
	}
	if !user.MFAEnabled || user.MFASecret == nil || *user.MFASecret == "" {
		return "", domain.User{}, domain.ErrMFANotEnabled
	}

	if !validateTOTP(code, *user.MFASecret) {
		return "", domain.User{}, domain.ErrInvalidOTP
	}

	token, err := s.issueSession(user)
	if err != nil {
		return "", domain.User{}, err
	}
	s.recordLogin(ctx, user.ID, lc, domain.LoginSuccess)
	return token, user, nil
}

func (s *AuthService) getUser(ctx context.Context, userID int64) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issueSession(user domain.User) (string, error) {
	claims := jwtx.NewSessionClaims(
		user.ID, user.Email, string(user.Role),
		s.Issuer, s.sessionTTL(), time.Now().UTC(),
	)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

func (s *AuthService) issuePending(user domain.User) (string, error) {
	claims := jwtx.NewPendingClaims(user.ID, user.Email, s.Issuer, s.pendingTTL(), time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("failed to sign pending token: %w", err)
	}
	return token, nil
}

func (s *AuthService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

func (s *AuthService) pendingTTL() time.Duration {
	if s.PendingTTL > 0 {
		return s.PendingTTL
	}
	return jwtx.DefaultPendingTTL
}

// recordLogin appends to the audit trail. Auditing never blocks a login,
// failures are logged and swallowed.
func (s *AuthService) recordLogin(ctx context.Context, userID int64, lc LoginContext, status domain.LoginStatus) {
	err := s.Store.LoginHistory().CreateLoginRecord(ctx, domain.LoginRecord{
		UserID:     userID,
		RemoteAddr: lc.RemoteAddr,
		UserAgent:  lc.UserAgent,
		Status:     status,
	})
	if err != nil {
		slogx.FromContext(ctx).Warn("failed to record login attempt", "user_id", userID, "err", err)
	}
}

func validateTOTP(code, secret string) bool {
	ok, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

func renderQRCode(key *otp.Key) (string, error) {
	img, err := key.Image(256, 256)
	if err != nil {
		return "", fmt.Errorf("failed to render QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
