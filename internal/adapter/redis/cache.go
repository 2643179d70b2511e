// Package redis provides a short-TTL cache for eligibility query results.
// It is load shedding for the serve path, not a correctness mechanism:
// every failure is logged and reported as a miss so the caller falls
// through to the database.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"relief-ads/internal/core/port"
)

// CandidateCache implements port.CandidateCache on a Redis client.
type CandidateCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCandidateCache pings the server before returning a cache so a bad
// address fails at startup, not on the first serve.
func NewCandidateCache(ctx context.Context, client *redis.Client, ttl time.Duration, logger *slog.Logger) (*CandidateCache, error) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}
	return &CandidateCache{client: client, ttl: ttl, logger: logger}, nil
}

// GetCandidates returns the cached eligible set for key. Any Redis or
// decode failure is a miss.
func (c *CandidateCache) GetCandidates(ctx context.Context, key string) ([]port.Candidate, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache get failed", slog.String("key", key), slog.Any("error", err))
		}
		return nil, false
	}
	var cands []port.Candidate
	if err = json.Unmarshal(raw, &cands); err != nil {
		c.logger.Warn("cache entry corrupt", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	return cands, true
}

// SetCandidates stores the eligible set for key with the cache TTL.
func (c *CandidateCache) SetCandidates(ctx context.Context, key string, cands []port.Candidate) {
	raw, err := json.Marshal(cands)
	if err != nil {
		c.logger.Warn("cache encode failed", slog.String("key", key), slog.Any("error", err))
		return
	}
	if err = c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", slog.String("key", key), slog.Any("error", err))
	}
}
