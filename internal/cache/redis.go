package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/emily-flambe/naptime/internal/domain"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "naptime:advisory:"

// Redis is a Cache backed by a Redis instance, for deployments where more
// than one replica serves the advisory endpoint. Advisories are stored as
// JSON with Redis handling expiry natively.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed cache against the given address.
func NewRedis(addr string) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (r *Redis) Get(ctx context.Context, key string) (*domain.Advisory, bool) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[cache] redis get failed: %v", err)
		}
		return nil, false
	}

	var adv domain.Advisory
	if err := json.Unmarshal(raw, &adv); err != nil {
		log.Printf("[cache] corrupt redis entry for %s: %v", key, err)
		return nil, false
	}
	return &adv, true
}

func (r *Redis) Set(ctx context.Context, key string, adv *domain.Advisory, ttl time.Duration) {
	if adv == nil || ttl <= 0 {
		return
	}

	raw, err := json.Marshal(adv)
	if err != nil {
		log.Printf("[cache] marshal advisory failed: %v", err)
		return
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, raw, ttl).Err(); err != nil {
		log.Printf("[cache] redis set failed: %v", err)
	}
}

func (r *Redis) Flush(ctx context.Context) {
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("[cache] redis del failed: %v", err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("[cache] redis scan failed: %v", err)
	}
}
