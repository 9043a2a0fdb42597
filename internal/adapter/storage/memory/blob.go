package memory

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
)

// BlobStore is a content-addressed in-process attachment store.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewBlobStore creates an empty blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string][]byte)}
}

// Store saves blob under its SHA-256 and returns that id.
func (b *BlobStore) Store(_ context.Context, blob []byte) (string, error) {
	sum := sha256.Sum256(blob)
	id := hex.EncodeToString(sum[:])

	b.mu.Lock()
	b.blobs[id] = append([]byte(nil), blob...)
	b.mu.Unlock()
	return id, nil
}

// Retrieve returns the blob stored under contentID.
func (b *BlobStore) Retrieve(_ context.Context, contentID string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	blob, ok := b.blobs[contentID]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", contentID)
	}
	return append([]byte(nil), blob...), nil
}
