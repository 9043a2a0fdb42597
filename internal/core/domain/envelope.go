package domain

// AlgorithmVersion identifies the cipher that produced an Envelope.
type AlgorithmVersion uint8

const (
	AlgorithmAESGCM            AlgorithmVersion = 1 // AES-256-GCM, 12-byte nonce
	AlgorithmXChaCha20Poly1305 AlgorithmVersion = 2 // XChaCha20-Poly1305, 24-byte nonce
)

// Envelope is the at-rest form of protected data.
type Envelope struct {
	Ciphertext []byte           `json:"ciphertext"`
	IV         []byte           `json:"iv"`
	Tag        []byte           `json:"tag"`
	Version    AlgorithmVersion `json:"version"`
}

// IsZero reports whether the envelope carries no data at all.
func (e Envelope) IsZero() bool {
	return len(e.Ciphertext) == 0 && len(e.IV) == 0 && len(e.Tag) == 0 && e.Version == 0
}
