package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ReplayGuard implements ports.TokenReplayGuard using Redis SET NX.
//
// The database used_at flag is the durable single-use record; this guard is a
// fast-path in front of it so a replayed capability link is rejected before a
// transaction is even opened.
type ReplayGuard struct {
	client *goredis.Client
	prefix string
}

// NewReplayGuard creates a new Redis-backed replay guard.
func NewReplayGuard(client *goredis.Client) *ReplayGuard {
	return &ReplayGuard{
		client: client,
		prefix: "admintoken:",
	}
}

// CheckAndSet atomically checks if a token was seen, marking it if not.
// Returns true if the token is fresh, false if already seen.
func (g *ReplayGuard) CheckAndSet(ctx context.Context, token string, ttl time.Duration) (bool, error) {
	key := g.prefix + token
	result, err := g.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists, token was already presented
			return false, nil
		}
		return false, fmt.Errorf("redis token check: %w", err)
	}
	return result == "OK", nil
}

// Release drops the guard key so the token can be presented again. Used when
// the transaction the token was consumed in did not commit.
func (g *ReplayGuard) Release(ctx context.Context, token string) error {
	if err := g.client.Del(ctx, g.prefix+token).Err(); err != nil {
		return fmt.Errorf("redis token release: %w", err)
	}
	return nil
}
