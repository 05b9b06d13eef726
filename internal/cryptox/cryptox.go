// Package cryptox provides authenticated symmetric encryption for
// confidential record values. Values are sealed with AES-GCM under a fresh
// random nonce per call, so two encryptions of the same plaintext are never
// bit-identical. The stored blob is base64url(nonce || ciphertext).
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrDecryption is returned when a blob was not produced by this box/key
// (tampering or a key change). It is distinct from any business error and
// must surface as a server-side failure, never as empty plaintext.
var ErrDecryption = errors.New("decryption failed")

const nonceSize = 12

// Box performs authenticated encrypt/decrypt of opaque strings. It holds no
// mutable state beyond the key schedule and is safe for concurrent use.
type Box struct {
	aead cipher.AEAD
}

// New builds a Box from an AES key (16, 24 or 32 bytes).
func New(key []byte) (*Box, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}
	return &Box{aead: aead}, nil
}

// DeriveKey deterministically derives a 32-byte key from the application
// secret. This is the fallback for deployments that never provisioned a
// dedicated encryption key: data stays decryptable as long as the secret is
// stable. Operators should still supply an explicit key in any durable
// deployment, and changing either the key or the secret makes existing
// ciphertext permanently undecryptable.
func DeriveKey(secret string) []byte {
	digest := sha256.Sum256([]byte(secret))
	return digest[:]
}

// Encrypt seals the plaintext under a fresh random nonce and returns the
// encoded blob.
func (b *Box) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := b.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Any malformed, truncated or tampered blob, and
// any blob sealed under a different key, yields ErrDecryption.
func (b *Box) Decrypt(blob string) (string, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(blob)
	if err != nil || len(sealed) <= nonceSize {
		return "", ErrDecryption
	}
	plaintext, err := b.aead.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return "", ErrDecryption
	}
	return string(plaintext), nil
}
