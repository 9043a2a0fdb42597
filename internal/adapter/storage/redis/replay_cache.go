package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// PurchaseReplayCache implements ports.PurchaseReplayCache. It is the fast
// path only; the database uniqueness constraint stays authoritative.
type PurchaseReplayCache struct {
	client *goredis.Client
	prefix string
}

// NewPurchaseReplayCache creates a new Redis-backed purchase replay cache.
func NewPurchaseReplayCache(client *goredis.Client) *PurchaseReplayCache {
	return &PurchaseReplayCache{
		client: client,
		prefix: keyPrefix + "purchase:",
	}
}

func (c *PurchaseReplayCache) key(recordID uuid.UUID, txHash string) string {
	return c.prefix + recordID.String() + ":" + txHash
}

// Seen reports whether txHash was already applied to the record.
func (c *PurchaseReplayCache) Seen(ctx context.Context, recordID uuid.UUID, txHash string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(recordID, txHash)).Result()
	if err != nil {
		return false, fmt.Errorf("redis replay check: %w", err)
	}
	return n > 0, nil
}

// Remember marks txHash as applied for ttl.
func (c *PurchaseReplayCache) Remember(ctx context.Context, recordID uuid.UUID, txHash string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(recordID, txHash), 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis replay remember: %w", err)
	}
	return nil
}
