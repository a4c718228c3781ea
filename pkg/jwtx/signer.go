package jwtx

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs Claims into compact EdDSA JWTs.
type Signer struct {
	keys *KeyPair
}

func NewSigner(keys *KeyPair) *Signer {
	return &Signer{keys: keys}
}

func (s *Signer) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	token.Header["kid"] = s.keys.KID

	signed, err := token.SignedString(s.keys.Private)
	if err != nil {
		return "", fmt.Errorf("jwtx: failed to sign token: %w", err)
	}
	return signed, nil
}
