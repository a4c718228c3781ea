package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrAlgMismatch  = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
	ErrTokenUse     = errors.New("jwtx: wrong token category")
)

// Leeway allows small clock skew when validating exp/nbf/iat, because time
// sync is never perfect.
const verifyLeeway = 30 * time.Second

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier struct {
	parser *jwt.Parser
	keys   *KeyPair
}

func NewVerifier(keys *KeyPair, issuer string) *Verifier {
	return &Verifier{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithLeeway(verifyLeeway),
			jwt.WithIssuedAt(),
		),
		keys: keys,
	}
}

// Verify parses and validates a compact JWT (signature, iss, exp, nbf).
// Token-category checks are the caller's concern; see Claims.TokenUse.
func (v *Verifier) Verify(raw string) (Claims, error) {
	var claims Claims

	_, err := v.parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return v.keys.Public, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if claims.TokenUse == "" {
		return Claims{}, ErrInvalidClaim
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuer
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrAlgMismatch
	default:
		return ErrInvalidClaim
	}
}
