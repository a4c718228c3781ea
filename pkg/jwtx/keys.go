package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// KeyPair holds an Ed25519 signing key with its identifier. Keys are
// ephemeral: generated at startup and never persisted, so all outstanding
// tokens become invalid on restart.
type KeyPair struct {
	KID     string
	Private ed25519.PrivateKey
	Public  ed25519.PublicKey
}

// NewEphemeralKeyPair generates a fresh Ed25519 keypair with a random kid.
func NewEphemeralKeyPair() (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to generate ed25519 key: %w", err)
	}

	kidBytes := make([]byte, 8)
	if _, err := rand.Read(kidBytes); err != nil {
		return nil, fmt.Errorf("jwtx: failed to generate kid: %w", err)
	}

	return &KeyPair{
		KID:     base64.RawURLEncoding.EncodeToString(kidBytes),
		Private: priv,
		Public:  pub,
	}, nil
}
