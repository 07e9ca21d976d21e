package userstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/snippets/pkg/auth"
	"github.com/dmitrymomot/snippets/pkg/logger"
	"github.com/dmitrymomot/snippets/pkg/session"
)

// RedisSessionCache wraps an auth.Store and caches FindSessionByToken
// results in Redis until the session expires. Cache failures are logged
// and fall through to the wrapped store.
type RedisSessionCache struct {
	auth.Store
	client redis.UniversalClient
	prefix string
	logger *slog.Logger
	now    func() time.Time
}

// RedisCacheOption configures a RedisSessionCache.
type RedisCacheOption func(*RedisSessionCache)

// WithKeyPrefix sets the prefix of cache keys. The default is "snippets:".
func WithKeyPrefix(prefix string) RedisCacheOption {
	return func(c *RedisSessionCache) {
		c.prefix = prefix
	}
}

// WithCacheLogger sets the logger for cache failures.
func WithCacheLogger(l *slog.Logger) RedisCacheOption {
	return func(c *RedisSessionCache) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCacheClock overrides the time source used to compute TTLs.
func WithCacheClock(now func() time.Time) RedisCacheOption {
	return func(c *RedisSessionCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewRedisSessionCache wraps store with a Redis session cache.
func NewRedisSessionCache(store auth.Store, client redis.UniversalClient, opts ...RedisCacheOption) *RedisSessionCache {
	c := &RedisSessionCache{
		Store:  store,
		client: client,
		prefix: "snippets:",
		logger: logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RedisSessionCache) key(token string) string {
	return c.prefix + "session:" + token
}

// CreateSession stores the session and primes the cache.
func (c *RedisSessionCache) CreateSession(ctx context.Context, params auth.CreateSessionParams) (*session.Session, error) {
	sess, err := c.Store.CreateSession(ctx, params)
	if err != nil {
		return nil, err
	}
	c.set(ctx, sess)
	return sess, nil
}

func (c *RedisSessionCache) FindSessionByToken(ctx context.Context, token string) (*session.Session, error) {
	raw, err := c.client.Get(ctx, c.key(token)).Bytes()
	switch {
	case err == nil:
		var sess session.Session
		jerr := json.Unmarshal(raw, &sess)
		if jerr == nil {
			return &sess, nil
		}
		c.logger.WarnContext(ctx, "invalid cached session", logger.Error(jerr))
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "session cache read failed", logger.Error(err))
	}

	sess, err := c.Store.FindSessionByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	c.set(ctx, sess)
	return sess, nil
}

func (c *RedisSessionCache) DeleteSessionByToken(ctx context.Context, token string) error {
	if err := c.client.Del(ctx, c.key(token)).Err(); err != nil {
		c.logger.WarnContext(ctx, "session cache delete failed", logger.Error(err))
	}
	return c.Store.DeleteSessionByToken(ctx, token)
}

func (c *RedisSessionCache) set(ctx context.Context, sess *session.Session) {
	ttl := sess.ExpiresAt.Sub(c.now())
	if ttl <= 0 {
		return
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		c.logger.WarnContext(ctx, "session cache encode failed",
			logger.SessionID(sess.ID),
			logger.Error(err),
		)
		return
	}
	if err := c.client.Set(ctx, c.key(sess.Token), raw, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "session cache write failed",
			logger.SessionID(sess.ID),
			logger.Error(err),
		)
	}
}
