package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIssuer = "tasknest-test"

func newTestKeys(t *testing.T) *KeyPair {
	t.Helper()
	keys, err := NewEphemeralKeyPair()
	require.NoError(t, err)
	return keys
}

func TestSignAndVerifySessionToken(t *testing.T) {
	t.Parallel()

	keys := newTestKeys(t)
	signer := NewSigner(keys)
	verifier := NewVerifier(keys, testIssuer)

	claims := NewSessionClaims(42, "alice@example.com", "USER", testIssuer, DefaultSessionTTL, time.Now().UTC())

	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, TokenUseSession, got.TokenUse)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, "USER", got.Role)
	require.NotEmpty(t, got.SID)

	id, err := got.UserID()
	require.NoError(t, err)
	require.EqualValues(t, 42, id)
}

func TestPendingClaimsCarryNoRole(t *testing.T) {
	t.Parallel()

	claims := NewPendingClaims(7, "bob@example.com", testIssuer, DefaultPendingTTL, time.Now().UTC())
	require.Equal(t, TokenUsePending, claims.TokenUse)
	require.Empty(t, claims.Role)

	// Pending tokens must expire before session tokens would.
	require.Less(t, DefaultPendingTTL, DefaultSessionTTL)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	keys := newTestKeys(t)
	signer := NewSigner(keys)
	verifier := NewVerifier(keys, testIssuer)

	issued := time.Now().UTC().Add(-time.Hour)
	claims := NewPendingClaims(1, "a@b.c", testIssuer, time.Minute, issued)

	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	t.Parallel()

	signer := NewSigner(newTestKeys(t))
	verifier := NewVerifier(newTestKeys(t), testIssuer)

	raw, err := signer.Sign(NewSessionClaims(1, "a@b.c", "USER", testIssuer, time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	keys := newTestKeys(t)
	signer := NewSigner(keys)
	verifier := NewVerifier(keys, testIssuer)

	raw, err := signer.Sign(NewSessionClaims(1, "a@b.c", "USER", "someone-else", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	verifier := NewVerifier(newTestKeys(t), testIssuer)

	_, err := verifier.Verify("not.a.jwt")
	require.Error(t, err)

	_, err = verifier.Verify("")
	require.ErrorIs(t, err, ErrMalformed)
}
