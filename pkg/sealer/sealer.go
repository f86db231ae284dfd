// Package sealer encrypts small secrets before they are persisted.
package sealer

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24

	keyInfo = "summit/credentials/v1"
)

// ErrCorrupt is returned by Open when the sealed value was tampered with,
// truncated or sealed with a different secret.
var ErrCorrupt = errors.New("sealed value is corrupt or the secret changed")

// Sealer seals and opens values with a key derived from a secret. It is safe
// for concurrent use.
type Sealer struct {
	key [keySize]byte
}

// New derives a sealing key from secret with HKDF-SHA256.
func New(secret string) (*Sealer, error) {
	if secret == "" {
		return nil, errors.New("sealer secret must not be empty")
	}

	s := &Sealer{}
	h := hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo))
	if _, err := io.ReadFull(h, s.key[:]); err != nil {
		return nil, fmt.Errorf("could not derive key: %w", err)
	}

	return s, nil
}

// Seal encrypts plaintext under a fresh random nonce and returns
// base64(nonce || box).
func (s *Sealer) Seal(plaintext []byte) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("could not generate nonce: %w", err)
	}

	out := secretbox.Seal(nonce[:], plaintext, &nonce, &s.key)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Open reverses Seal.
func (s *Sealer) Open(sealed string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("could not decode sealed value: %w", ErrCorrupt)
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return nil, ErrCorrupt
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	out, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return nil, ErrCorrupt
	}

	return out, nil
}
