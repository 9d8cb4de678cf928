// Package session resolves session cookies to agent ids.
// Store reads sessions written by the login service into Redis;
// CookieDecoder handles deployments whose cookie carries the id itself.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// defaultTTL applies when Save is called without a positive ttl.
const defaultTTL = 12 * time.Hour

// Data is the JSON value stored under each session key.
type Data struct {
	AgentID   int64     `json:"agent_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Store implements session lookup using Redis.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore connects to redisURL and verifies the connection.
func NewStore(ctx context.Context, redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewStoreWithClient(client), nil
}

// NewStoreWithClient creates a store from an existing Redis client.
func NewStoreWithClient(client *redis.Client) *Store {
	return &Store{client: client, prefix: keyPrefix}
}

func (s *Store) key(token string) string {
	return s.prefix + token
}

// AgentID returns the agent id stored for token as a decimal string.
// A missing or expired session yields "" and no error.
func (s *Store) AgentID(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", nil
	}

	raw, err := s.client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}

	var data Data
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return "", fmt.Errorf("decode session: %w", err)
	}
	if data.AgentID <= 0 {
		return "", nil
	}

	return strconv.FormatInt(data.AgentID, 10), nil
}

// Save stores a session for agentID under token. A non-positive ttl
// falls back to the default session lifetime.
func (s *Store) Save(ctx context.Context, token string, agentID int64, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	payload, err := json.Marshal(Data{AgentID: agentID, CreatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.client.Set(ctx, s.key(token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Revoke deletes the session for token.
func (s *Store) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}
