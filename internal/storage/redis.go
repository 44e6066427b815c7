package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBlacklist is the revocation set for logged-out session tokens.
// Entries expire together with the token itself, so the set never needs
// explicit cleanup and works across multiple backend instances.
type RedisBlacklist struct {
	Client *redis.Client
}

func NewRedisBlacklist(client *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{Client: client}
}

func (b *RedisBlacklist) key(jti string) string {
	return "revoked:" + jti
}

func (b *RedisBlacklist) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		ttl = time.Minute
	}
	return b.Client.Set(ctx, b.key(jti), "1", ttl).Err()
}

func (b *RedisBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	res, err := b.Client.Exists(ctx, b.key(jti)).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}
