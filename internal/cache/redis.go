package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	chainKeyPrefix = "league:chain:"
	configKey      = "league:config:league_id"
)

// RedisChainCache stores resolved chains in Redis so every instance shares
// one resolution. Cache errors degrade to a miss rather than failing the
// resolution.
type RedisChainCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewRedisChainCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisChainCache {
	return &RedisChainCache{rdb: rdb, ttl: ttl, logger: logger.Sugar()}
}

func (c *RedisChainCache) Get(ctx context.Context, leagueID string) ([]string, bool) {
	raw, err := c.rdb.Get(ctx, chainKeyPrefix+leagueID).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnw("Chain cache read failed", "league_id", leagueID, "error", err)
		}
		return nil, false
	}
	var chain []string
	if err := json.Unmarshal([]byte(raw), &chain); err != nil {
		c.logger.Warnw("Chain cache entry corrupt", "league_id", leagueID, "error", err)
		return nil, false
	}
	return chain, true
}

func (c *RedisChainCache) Set(ctx context.Context, leagueID string, chain []string) {
	raw, err := json.Marshal(chain)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, chainKeyPrefix+leagueID, raw, c.ttl).Err(); err != nil {
		c.logger.Warnw("Chain cache write failed", "league_id", leagueID, "error", err)
	}
}

// RedisConfigStore keeps the configured league ID in Redis.
type RedisConfigStore struct {
	rdb      *redis.Client
	fallback string
}

func NewRedisConfigStore(rdb *redis.Client, fallback string) *RedisConfigStore {
	return &RedisConfigStore{rdb: rdb, fallback: fallback}
}

func (s *RedisConfigStore) LeagueID(ctx context.Context) (string, error) {
	id, err := s.rdb.Get(ctx, configKey).Result()
	if err == redis.Nil {
		return s.fallback, nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisConfigStore) SetLeagueID(ctx context.Context, leagueID string) error {
	return s.rdb.Set(ctx, configKey, leagueID, 0).Err()
}
