package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"health-record-vault/internal/core/domain"
	"health-record-vault/pkg/apperror"

	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the only accepted key length (256-bit keys for both ciphers).
const KeySize = 32

var (
	errKeyMissing         = errors.New("encryption key is absent")
	errUnsupportedVersion = errors.New("unsupported envelope version")
	errMalformedEnvelope  = errors.New("malformed envelope")
)

// EnvelopeServiceImpl implements ports.EnvelopeService with a process-wide key.
// It holds no mutable state and is safe for concurrent use.
type EnvelopeServiceImpl struct {
	key     []byte
	version domain.AlgorithmVersion
}

// NewEnvelopeService validates key and version once at startup.
// version selects the cipher for new envelopes; Decrypt honours whatever
// version an envelope carries.
func NewEnvelopeService(key []byte, version domain.AlgorithmVersion) (*EnvelopeServiceImpl, error) {
	if _, err := newAEAD(version, key); err != nil {
		return nil, err
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &EnvelopeServiceImpl{key: k, version: version}, nil
}

// Encrypt seals plaintext under the configured algorithm version.
func (s *EnvelopeServiceImpl) Encrypt(plaintext []byte) (domain.Envelope, error) {
	return Seal(plaintext, s.key, s.version)
}

// Decrypt opens env, failing closed on any tampering.
func (s *EnvelopeServiceImpl) Decrypt(env domain.Envelope) ([]byte, error) {
	return Open(env, s.key)
}

// Seal encrypts plaintext with key using a fresh random nonce.
// The algorithm version is bound as additional data so an envelope
// cannot be replayed under a different cipher.
func Seal(plaintext, key []byte, version domain.AlgorithmVersion) (domain.Envelope, error) {
	aead, err := newAEAD(version, key)
	if err != nil {
		return domain.Envelope{}, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return domain.Envelope{}, apperror.ErrEncryption(fmt.Errorf("generating nonce: %w", err))
	}

	sealed := aead.Seal(nil, nonce, plaintext, additionalData(version))
	split := len(sealed) - aead.Overhead()

	return domain.Envelope{
		Ciphertext: sealed[:split],
		IV:         nonce,
		Tag:        sealed[split:],
		Version:    version,
	}, nil
}

// Open authenticates and decrypts env. It never returns partial plaintext.
func Open(env domain.Envelope, key []byte) ([]byte, error) {
	aead, err := newAEAD(env.Version, key)
	if err != nil {
		return nil, err
	}

	if len(env.IV) != aead.NonceSize() || len(env.Tag) != aead.Overhead() {
		return nil, apperror.ErrIntegrity(fmt.Errorf("%w: iv=%d tag=%d bytes", errMalformedEnvelope, len(env.IV), len(env.Tag)))
	}

	sealed := make([]byte, 0, len(env.Ciphertext)+len(env.Tag))
	sealed = append(sealed, env.Ciphertext...)
	sealed = append(sealed, env.Tag...)

	plaintext, err := aead.Open(nil, env.IV, sealed, additionalData(env.Version))
	if err != nil {
		return nil, apperror.ErrIntegrity(fmt.Errorf("authenticating envelope: %w", err))
	}
	return plaintext, nil
}

func newAEAD(version domain.AlgorithmVersion, key []byte) (cipher.AEAD, error) {
	if len(key) == 0 {
		return nil, apperror.ErrEncryption(errKeyMissing)
	}
	if len(key) != KeySize {
		return nil, apperror.ErrEncryption(fmt.Errorf("key must be %d bytes, got %d", KeySize, len(key)))
	}

	switch version {
	case domain.AlgorithmAESGCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, apperror.ErrEncryption(fmt.Errorf("creating cipher: %w", err))
		}
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, apperror.ErrEncryption(fmt.Errorf("creating GCM: %w", err))
		}
		return gcm, nil
	case domain.AlgorithmXChaCha20Poly1305:
		aead, err := chacha20poly1305.NewX(key)
		if err != nil {
			return nil, apperror.ErrEncryption(fmt.Errorf("creating XChaCha20-Poly1305: %w", err))
		}
		return aead, nil
	}
	return nil, apperror.ErrEncryption(fmt.Errorf("%w: %d", errUnsupportedVersion, version))
}

func additionalData(version domain.AlgorithmVersion) []byte {
	return []byte{'h', 'r', 'v', byte(version)}
}

// CipherName returns the AEAD behind an envelope version, or "unknown".
func CipherName(version domain.AlgorithmVersion) string {
	switch version {
	case domain.AlgorithmAESGCM:
		return "aes-256-gcm"
	case domain.AlgorithmXChaCha20Poly1305:
		return "xchacha20-poly1305"
	}
	return "unknown"
}
