package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"health-record-vault/internal/core/domain"
	"health-record-vault/pkg/apperror"

	"golang.org/x/crypto/blake2b"
)

// Checksum algorithm names, in verification order.
const (
	AlgorithmSHA256  = "sha256"
	AlgorithmBLAKE2b = "blake2b-256"
)

// ChecksumMismatchError names the first algorithm whose digest differed.
type ChecksumMismatchError struct {
	Algorithm string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("%s checksum mismatch", e.Algorithm)
}

// ChecksumService implements ports.IntegrityService with SHA-256 and BLAKE2b-256.
type ChecksumService struct{}

// NewChecksumService creates a new checksum service.
func NewChecksumService() *ChecksumService {
	return &ChecksumService{}
}

// Checksum computes both digests of content as lowercase hex.
func (s *ChecksumService) Checksum(content []byte) domain.Checksums {
	sha := sha256.Sum256(content)
	b2 := blake2b.Sum256(content)
	return domain.Checksums{
		SHA256:  hex.EncodeToString(sha[:]),
		BLAKE2b: hex.EncodeToString(b2[:]),
	}
}

// Verify recomputes the digests and fails with an integrity error wrapping
// a *ChecksumMismatchError for the first algorithm that does not match.
func (s *ChecksumService) Verify(content []byte, stored domain.Checksums) error {
	got := s.Checksum(content)

	checks := []struct {
		alg       string
		got, want string
	}{
		{AlgorithmSHA256, got.SHA256, stored.SHA256},
		{AlgorithmBLAKE2b, got.BLAKE2b, stored.BLAKE2b},
	}
	for _, c := range checks {
		if subtle.ConstantTimeCompare([]byte(c.got), []byte(c.want)) != 1 {
			return apperror.ErrIntegrity(&ChecksumMismatchError{Algorithm: c.alg})
		}
	}
	return nil
}
