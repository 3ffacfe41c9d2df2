package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ella-rises-admin/core/config"
	"ella-rises-admin/core/constants"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/session"

	"github.com/redis/go-redis/v9"
)

// Cache is the process-external state shared across requests: the session
// store and the failed-login throttle.
type Cache interface {
	SaveSession(ctx context.Context, s *session.Session) error
	GetSession(ctx context.Context, sid string) (*session.Session, error)
	DeleteSession(ctx context.Context, sid string) error
	RevokeUserSessions(ctx context.Context, userID int64) error

	IsLoginBlocked(ctx context.Context, key string) (bool, error)
	IncrementLoginAttempt(ctx context.Context, key string) error
	ClearLoginAttempts(ctx context.Context, key string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

type redisCache struct {
	client *redis.Client
}

func InitCache(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Error("Failed to connect to redis", "error", err)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("Redis initialized successfully", "host", cfg.Host, "port", cfg.Port)
	return &redisCache{client: client}, nil
}

// SaveSession writes the record and indexes it under the owning account.
// The write is synchronous: it has completed before the login handler issues
// its redirect, so the client can never follow the redirect into a request
// that does not yet see the session.
func (c *redisCache) SaveSession(ctx context.Context, s *session.Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, constants.RedisKeySession+s.ID, payload, constants.SessionTTL).Err(); err != nil {
		return err
	}
	userKey := constants.RedisKeyUserSessions + fmt.Sprint(s.UserID)
	if err := c.client.SAdd(ctx, userKey, s.ID).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, userKey, constants.SessionTTL).Err()
}

func (c *redisCache) GetSession(ctx context.Context, sid string) (*session.Session, error) {
	payload, err := c.client.Get(ctx, constants.RedisKeySession+sid).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s session.Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *redisCache) DeleteSession(ctx context.Context, sid string) error {
	s, err := c.GetSession(ctx, sid)
	if err != nil {
		return err
	}
	if s != nil {
		userKey := constants.RedisKeyUserSessions + fmt.Sprint(s.UserID)
		if err := c.client.SRem(ctx, userKey, sid).Err(); err != nil {
			logger.Warn("Cache:DeleteSession:SRem", "error", err)
		}
	}
	return c.client.Del(ctx, constants.RedisKeySession+sid).Err()
}

// RevokeUserSessions drops every live session for an account. Called when a
// manager edits or deletes the account so stale role snapshots die early.
func (c *redisCache) RevokeUserSessions(ctx context.Context, userID int64) error {
	userKey := constants.RedisKeyUserSessions + fmt.Sprint(userID)
	sids, err := c.client.SMembers(ctx, userKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	for _, sid := range sids {
		if err := c.client.Del(ctx, constants.RedisKeySession+sid).Err(); err != nil {
			return err
		}
	}
	return c.client.Del(ctx, userKey).Err()
}

func (c *redisCache) IsLoginBlocked(ctx context.Context, key string) (bool, error) {
	count, err := c.client.Get(ctx, key).Int()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return count >= constants.MaxLoginAttempts, nil
}

func (c *redisCache) IncrementLoginAttempt(ctx context.Context, key string) error {
	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, constants.BlockDuration).Err()
}

func (c *redisCache) ClearLoginAttempts(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *redisCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Expire(ctx, key, ttl).Err()
}
