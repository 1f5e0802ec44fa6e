// Package cache keeps homepage content sections in Redis so public page loads
// do not hit the primary store.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "samparc:content:"

// ContentCache is safe to use as a nil pointer; every call is then a miss.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewContentCache connects to Redis, retrying a few times before giving up.
func NewContentCache(ctx context.Context, addr, password string, ttl time.Duration) (*ContentCache, error) {
	client := redis.NewClient(&redis.Options{
		Network:  "tcp",
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	const maxRetries = 3
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = client.Ping(ctx).Err(); err == nil {
			return &ContentCache{client: client, ttl: ttl}, nil
		}
		log.Printf("Failed to connect to Redis (Attempt %d/%d): %v", i+1, maxRetries, err)
		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}
	_ = client.Close()
	return nil, fmt.Errorf("connect redis %s: %w", addr, err)
}

// Get returns the cached content and whether it was present.
func (c *ContentCache) Get(ctx context.Context, section string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.client.Get(ctx, keyPrefix+section).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("content cache get %s: %v", section, err)
		}
		return "", false
	}
	return val, true
}

func (c *ContentCache) Set(ctx context.Context, section, content string) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, keyPrefix+section, content, c.ttl).Err(); err != nil {
		log.Printf("content cache set %s: %v", section, err)
	}
}

func (c *ContentCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
