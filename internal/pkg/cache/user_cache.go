package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// DefaultUserTTL is used when no TTL is configured
const DefaultUserTTL = 10 * time.Minute

// NewRedisClient connects to Redis. An empty addr returns a nil client, which disables caching.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		logger.Warn().Msg("Redis address not configured, user cache disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("unable to connect to redis at %s: %w", addr, err)
	}

	logger.Info().Str("addr", addr).Msg("Connected to Redis")
	return client, nil
}

// UserCache keeps authenticated user snapshots keyed by user id
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUserCache creates a user cache. A nil client yields a cache that always misses.
func NewUserCache(client *redis.Client, ttl time.Duration) *UserCache {
	if ttl <= 0 {
		ttl = DefaultUserTTL
	}
	return &UserCache{client: client, ttl: ttl}
}

// UserKey is the Redis key for a user's snapshot
func UserKey(userID int64) string {
	return fmt.Sprintf("user:%d:data", userID)
}

// Enabled reports whether a Redis client is attached
func (c *UserCache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get returns the cached user, if any
func (c *UserCache) Get(ctx context.Context, userID int64) (*models.User, bool) {
	if !c.Enabled() {
		return nil, false
	}

	data, err := c.client.Get(ctx, UserKey(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Int64("userId", userID).Msg("Redis GET failed")
		}
		return nil, false
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		logger.Warn().Err(err).Int64("userId", userID).Msg("Failed to unmarshal cached user")
		return nil, false
	}
	return &user, true
}

// Set stores a snapshot of user. The password hash is never serialized.
func (c *UserCache) Set(ctx context.Context, user *models.User) {
	if !c.Enabled() || user == nil {
		return
	}

	data, err := json.Marshal(user)
	if err != nil {
		logger.Error().Err(err).Int64("userId", user.ID).Msg("Failed to marshal user for cache")
		return
	}
	if err := c.client.Set(ctx, UserKey(user.ID), data, c.ttl).Err(); err != nil {
		logger.Error().Err(err).Int64("userId", user.ID).Msg("Redis SET failed")
	}
}

// Delete evicts the user's snapshot
func (c *UserCache) Delete(ctx context.Context, userID int64) {
	if !c.Enabled() {
		return
	}
	if err := c.client.Del(ctx, UserKey(userID)).Err(); err != nil {
		logger.Error().Err(err).Int64("userId", userID).Msg("Redis DEL failed")
	}
}

// Close releases the underlying client
func (c *UserCache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
