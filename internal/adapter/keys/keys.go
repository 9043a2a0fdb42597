// Package keys resolves the process-wide record encryption key from
// configuration, a passphrase or HashiCorp Vault.
package keys

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// KeySize is the required key length in bytes.
const KeySize = 32

// Argon2id parameters for passphrase-derived keys.
const (
	argon2Time       = 1
	argon2Memory     = 64 * 1024 // 64MB
	argon2Threads    = 4
	argon2MinSaltLen = 16
)

var errKeyLength = fmt.Errorf("encryption key must be %d bytes", KeySize)

// StaticProvider serves a key supplied directly in configuration.
type StaticProvider struct {
	key []byte
}

// NewStaticProvider decodes a hex-encoded 32-byte key.
func NewStaticProvider(hexKey string) (*StaticProvider, error) {
	key, err := decodeHexKey(hexKey)
	if err != nil {
		return nil, err
	}
	return &StaticProvider{key: key}, nil
}

// Key returns a copy of the configured key.
func (p *StaticProvider) Key(context.Context) ([]byte, error) {
	return append([]byte(nil), p.key...), nil
}

// PassphraseProvider derives the key from a passphrase with Argon2id.
// Derivation runs once, in the constructor.
type PassphraseProvider struct {
	key []byte
}

// NewPassphraseProvider derives a key from passphrase and a base64 salt of
// at least 16 bytes. The same inputs always yield the same key.
func NewPassphraseProvider(passphrase, saltB64 string) (*PassphraseProvider, error) {
	if passphrase == "" {
		return nil, errors.New("encryption passphrase is empty")
	}
	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		if salt, err = base64.StdEncoding.DecodeString(saltB64); err != nil {
			return nil, fmt.Errorf("decoding salt: %w", err)
		}
	}
	if len(salt) < argon2MinSaltLen {
		return nil, fmt.Errorf("salt must be at least %d bytes, got %d", argon2MinSaltLen, len(salt))
	}

	key := argon2.IDKey([]byte(passphrase), salt, argon2Time, argon2Memory, argon2Threads, KeySize)
	return &PassphraseProvider{key: key}, nil
}

// Key returns a copy of the derived key.
func (p *PassphraseProvider) Key(context.Context) ([]byte, error) {
	return append([]byte(nil), p.key...), nil
}

func decodeHexKey(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.New("encryption key is empty")
	}
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding encryption key: %w", err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w, got %d", errKeyLength, len(key))
	}
	return key, nil
}
