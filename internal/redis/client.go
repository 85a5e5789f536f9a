package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"menu_orders/internal/cart"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// TokenRecord maps a bearer token to the identity that logged in with it.
type TokenRecord struct {
	IdentityID string    `json:"identity_id"`
	Email      string    `json:"email"`
	IssuedAt   time.Time `json:"issued_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Bearer token storage
func (c *Client) SetToken(token string, record *TokenRecord, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal token record: %w", err)
	}

	return c.rdb.Set(ctx, "token:"+token, jsonData, ttl).Err()
}

func (c *Client) GetToken(token string) (*TokenRecord, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "token:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("token not found")
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	var record TokenRecord
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token record: %w", err)
	}

	return &record, nil
}

func (c *Client) DeleteToken(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "token:"+token).Err()
}

// Cart snapshots, keyed by browsing session id
func (c *Client) SetCart(sessionID string, snapshot cart.Snapshot, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal cart snapshot: %w", err)
	}

	return c.rdb.Set(ctx, "cart:"+sessionID, jsonData, ttl).Err()
}

func (c *Client) GetCart(sessionID string) (cart.Snapshot, error) {
	ctx := context.Background()
	var snapshot cart.Snapshot

	val, err := c.rdb.Get(ctx, "cart:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			// An absent snapshot is an empty cart, not an error
			return snapshot, nil
		}
		return snapshot, fmt.Errorf("failed to get cart snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		return snapshot, fmt.Errorf("failed to unmarshal cart snapshot: %w", err)
	}

	return snapshot, nil
}

func (c *Client) DeleteCart(sessionID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "cart:"+sessionID).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
