package cache

import (
	"context"
	"encoding/json"
	"time"

	"dekora_studio/internal/domain/entities"
	"dekora_studio/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const configKeyPrefix = "pricing_config:"

// RedisClient is the narrow slice of *redis.Client the cache needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	SetEx(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// PricingConfigCache is a cache-aside wrapper around a pricing-config
// repository. Every storefront estimate reads the tenant config, so the
// read path is hot; writes go through to the repository and invalidate the
// cached entry. Redis failures degrade to the repository and are never
// surfaced to the caller.
type PricingConfigCache struct {
	next  interfaces.IPricingConfigRepository
	redis RedisClient
	ttl   time.Duration
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigCache)(nil)

func NewPricingConfigCache(next interfaces.IPricingConfigRepository, client RedisClient, ttl time.Duration) *PricingConfigCache {
	return &PricingConfigCache{next: next, redis: client, ttl: ttl}
}

func (c *PricingConfigCache) Get(ctx context.Context, tenantID string) (entities.PricingConfig, error) {
	key := configKeyPrefix + tenantID

	if cached, err := c.redis.Get(ctx, key).Result(); err == nil {
		var cfg entities.PricingConfig
		if err := json.Unmarshal([]byte(cached), &cfg); err == nil {
			return cfg, nil
		}
		// Corrupt entry; drop it and fall through to the repository.
		c.redis.Del(ctx, key)
	}

	cfg, err := c.next.Get(ctx, tenantID)
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if cfg.TenantID != "" {
		if body, err := json.Marshal(cfg); err == nil {
			if err := c.redis.SetEx(ctx, key, body, c.ttl).Err(); err != nil {
				log.Debug().Err(err).Str("tenant_id", tenantID).Msg("pricing config cache fill failed")
			}
		}
	}
	return cfg, nil
}

func (c *PricingConfigCache) Put(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	stored, err := c.next.Put(ctx, cfg)
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if err := c.redis.Del(ctx, configKeyPrefix+cfg.TenantID).Err(); err != nil {
		log.Debug().Err(err).Str("tenant_id", cfg.TenantID).Msg("pricing config cache invalidation failed")
	}
	return stored, nil
}
