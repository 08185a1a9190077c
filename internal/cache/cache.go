// Package cache is the room service's read-through cache for event detail
// lookups. Redis being unreachable must never fail a request, so every
// operation degrades to a cache miss.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// EventKey names the cached detail entry for an event id. Writers delete this
// key when the event changes; readers repopulate it on the next lookup.
func EventKey(eventID uint) string {
	return fmt.Sprintf("event:%d", eventID)
}

// Client wraps redis.Client. A nil *Client is valid and disables caching,
// which is how the service tests run without a redis instance.
type Client struct {
	client *redis.Client
}

// New connects a cache client to the redis instance at addr.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Get returns the cached value, or nil on a miss or when redis is unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors both read as a miss
		return nil, nil
	}
	return res, nil
}

// Set stores value under key with a TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	c.client.Set(ctx, key, value, ttl)
	return nil
}

// Delete drops key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	c.client.Del(ctx, key)
	return nil
}
