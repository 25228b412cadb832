package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKV keeps the session record in a single redis hash, for hosts that
// already run their session infrastructure on redis. All three keys live in
// one hash so Clear is a single DEL.
type RedisKV struct {
	client *redis.Client
	key    string
	// per-op budget; the KV surface is synchronous so calls can't carry a
	// caller context
	timeout time.Duration
}

// NewRedisKV namespaces the store under "uniauth:session:<name>".
func NewRedisKV(client *redis.Client, name string) *RedisKV {
	return &RedisKV{
		client:  client,
		key:     "uniauth:session:" + name,
		timeout: 5 * time.Second,
	}
}

func (r *RedisKV) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.timeout)
}

func (r *RedisKV) Get(key string) (string, bool) {
	ctx, cancel := r.ctx()
	defer cancel()
	v, err := r.client.HGet(ctx, r.key, key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (r *RedisKV) Set(key, value string) error {
	ctx, cancel := r.ctx()
	defer cancel()
	return r.client.HSet(ctx, r.key, key, value).Err()
}

func (r *RedisKV) Delete(key string) error {
	ctx, cancel := r.ctx()
	defer cancel()
	return r.client.HDel(ctx, r.key, key).Err()
}

func (r *RedisKV) Clear() error {
	ctx, cancel := r.ctx()
	defer cancel()
	return r.client.Del(ctx, r.key).Err()
}
