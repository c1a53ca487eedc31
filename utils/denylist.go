package utils

import (
	"context"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// TokenDenylist records revoked token ids until they would have expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const denylistPrefix = "medstore:revoked:"

type RedisDenylist struct {
	client *redis.Client
}

func NewRedisDenylist(addr string, password string, db int) *RedisDenylist {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisDenylist{client: client}
}

func (d *RedisDenylist) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

func (d *RedisDenylist) Close() error {
	return d.client.Close()
}

func (d *RedisDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denylistPrefix+tokenID, 1, ttl).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryDenylist is the single-process fallback used when Redis is not configured.
type MemoryDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{revoked: map[string]time.Time{}, now: time.Now}
}

func (d *MemoryDenylist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	for id, until := range d.revoked {
		if !until.After(now) {
			delete(d.revoked, id)
		}
	}
	d.revoked[tokenID] = now.Add(ttl)
	return nil
}

func (d *MemoryDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	until, ok := d.revoked[tokenID]
	return ok && until.After(d.now()), nil
}
