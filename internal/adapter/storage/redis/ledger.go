package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// Ledger implements ports.Ledger with SET NX. Keys carry no TTL: a spent
// txId or claimed reward stays spent for the life of the Redis dataset.
type Ledger struct {
	client goredis.Cmdable
	prefix string
}

// NewLedger creates a Redis-backed idempotency ledger.
func NewLedger(client goredis.Cmdable) *Ledger {
	return &Ledger{
		client: client,
		prefix: KeyPrefix + "ledger:",
	}
}

// Reserve atomically records key. Returns false if it was already recorded.
func (l *Ledger) Reserve(ctx context.Context, key string) (bool, error) {
	result, err := l.client.SetArgs(ctx, l.prefix+key, 1, goredis.SetArgs{Mode: "NX"}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis ledger reserve: %w", err)
	}
	return result == "OK", nil
}

// Contains reports whether key was recorded.
func (l *Ledger) Contains(ctx context.Context, key string) (bool, error) {
	n, err := l.client.Exists(ctx, l.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis ledger exists: %w", err)
	}
	return n > 0, nil
}
