package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dekora_studio/internal/domain/entities"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data    map[string]string
	getErr  error
	setErr  error
	dels    []string
	setKeys []string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) SetEx(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.setKeys = append(f.setKeys, key)
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		f.dels = append(f.dels, k)
		delete(f.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

type stubRepo struct {
	cfg  entities.PricingConfig
	err  error
	gets int
	puts int
}

func (s *stubRepo) Get(_ context.Context, _ string) (entities.PricingConfig, error) {
	s.gets++
	return s.cfg, s.err
}

func (s *stubRepo) Put(_ context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	s.puts++
	if s.err != nil {
		return entities.PricingConfig{}, s.err
	}
	s.cfg = cfg
	return cfg, nil
}

func TestPricingConfigCache_MissFillsCache(t *testing.T) {
	repo := &stubRepo{cfg: entities.DefaultPricingConfig("tenant-1")}
	rdb := newFakeRedis()
	c := NewPricingConfigCache(repo, rdb, time.Minute)

	cfg, err := c.Get(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Equal(t, "tenant-1", cfg.TenantID)
	require.Equal(t, 1, repo.gets)
	require.Contains(t, rdb.setKeys, "pricing_config:tenant-1")

	// Second read is served from the cache.
	cfg2, err := c.Get(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Equal(t, cfg.TenantID, cfg2.TenantID)
	require.Equal(t, 1, repo.gets)
}

func TestPricingConfigCache_HitSkipsRepo(t *testing.T) {
	repo := &stubRepo{}
	rdb := newFakeRedis()
	body, err := json.Marshal(entities.DefaultPricingConfig("tenant-1"))
	require.NoError(t, err)
	rdb.data["pricing_config:tenant-1"] = string(body)

	c := NewPricingConfigCache(repo, rdb, time.Minute)
	cfg, err := c.Get(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Equal(t, "tenant-1", cfg.TenantID)
	require.Equal(t, 0, repo.gets)
}

func TestPricingConfigCache_RedisFailureDegradesToRepo(t *testing.T) {
	repo := &stubRepo{cfg: entities.DefaultPricingConfig("tenant-1")}
	rdb := newFakeRedis()
	rdb.getErr = errors.New("connection refused")
	rdb.setErr = errors.New("connection refused")

	c := NewPricingConfigCache(repo, rdb, time.Minute)
	cfg, err := c.Get(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Equal(t, "tenant-1", cfg.TenantID)
	require.Equal(t, 1, repo.gets)
}

func TestPricingConfigCache_MissingTenantNotCached(t *testing.T) {
	repo := &stubRepo{}
	rdb := newFakeRedis()

	c := NewPricingConfigCache(repo, rdb, time.Minute)
	cfg, err := c.Get(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Empty(t, cfg.TenantID)
	require.Empty(t, rdb.setKeys)
}

func TestPricingConfigCache_PutInvalidates(t *testing.T) {
	repo := &stubRepo{}
	rdb := newFakeRedis()
	rdb.data["pricing_config:tenant-1"] = "stale"

	c := NewPricingConfigCache(repo, rdb, time.Minute)
	_, err := c.Put(context.Background(), entities.DefaultPricingConfig("tenant-1"))
	require.NoError(t, err)
	require.Equal(t, 1, repo.puts)
	require.Contains(t, rdb.dels, "pricing_config:tenant-1")
}

func TestPricingConfigCache_CorruptEntryDropped(t *testing.T) {
	repo := &stubRepo{cfg: entities.DefaultPricingConfig("tenant-1")}
	rdb := newFakeRedis()
	rdb.data["pricing_config:tenant-1"] = "{not json"

	c := NewPricingConfigCache(repo, rdb, time.Minute)
	cfg, err := c.Get(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Equal(t, "tenant-1", cfg.TenantID)
	require.Equal(t, 1, repo.gets)
	require.Contains(t, rdb.dels, "pricing_config:tenant-1")
}
