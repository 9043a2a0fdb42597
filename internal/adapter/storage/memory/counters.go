package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Counters is the in-process stand-in for the Redis TTL stores. It
// implements ports.NonceStore, ports.AttemptCounter and
// ports.PurchaseReplayCache.
type Counters struct {
	mu        sync.Mutex
	entries   map[string]counter
	now       func() time.Time
	lastSweep time.Time
}

// sweepInterval bounds how often writes scan for expired keys.
const sweepInterval = time.Minute

type counter struct {
	n         int64
	expiresAt time.Time
}

// NewCounters creates an empty TTL store.
func NewCounters() *Counters {
	return &Counters{entries: make(map[string]counter), now: time.Now}
}

// get returns the live entry for key, dropping it if expired. Callers hold mu.
func (c *Counters) get(key string) (counter, bool) {
	e, ok := c.entries[key]
	if ok && !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return counter{}, false
	}
	return e, ok
}

// sweep drops every expired entry, at most once per sweepInterval. Callers hold mu.
func (c *Counters) sweep() {
	now := c.now()
	if now.Sub(c.lastSweep) < sweepInterval {
		return
	}
	c.lastSweep = now
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

func (c *Counters) CheckAndSet(_ context.Context, scope, nonce string, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweep()
	key := "nonce:" + scope + ":" + nonce
	if _, ok := c.get(key); ok {
		return false, nil
	}
	c.entries[key] = counter{n: 1, expiresAt: c.now().Add(ttl)}
	return true, nil
}

func (c *Counters) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweep()
	key = "attempts:" + key
	e, _ := c.get(key)
	e.n++
	e.expiresAt = c.now().Add(window)
	c.entries[key] = e
	return e.n, nil
}

func (c *Counters) Count(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, _ := c.get("attempts:" + key)
	return e.n, nil
}

func (c *Counters) Seen(_ context.Context, recordID uuid.UUID, txHash string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.get("purchase:" + recordID.String() + ":" + txHash)
	return ok, nil
}

func (c *Counters) Remember(_ context.Context, recordID uuid.UUID, txHash string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweep()
	c.entries["purchase:"+recordID.String()+":"+txHash] = counter{n: 1, expiresAt: c.now().Add(ttl)}
	return nil
}
