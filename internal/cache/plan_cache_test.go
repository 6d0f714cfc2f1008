package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/andresuchdata/lotplan/internal/config"
	"github.com/andresuchdata/lotplan/internal/lotsizing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlanKey(t *testing.T) {
	a := lotsizing.Instance{Demand: []float64{10, 20}, Setup: []float64{5, 5}, Holding: []float64{1, 1}}
	b := lotsizing.Instance{Demand: []float64{10, 21}, Setup: []float64{5, 5}, Holding: []float64{1, 1}}

	key := buildPlanKey(a)
	assert.True(t, strings.HasPrefix(key, planKeyPrefix+":"))
	assert.Equal(t, key, buildPlanKey(a))
	assert.NotEqual(t, key, buildPlanKey(b))
}

func TestNewPlanCache_DisabledIsNoop(t *testing.T) {
	c, err := NewPlanCache(config.CacheConfig{Enabled: false})
	require.NoError(t, err)

	ctx := context.Background()
	in := lotsizing.Instance{Demand: []float64{1}, Setup: []float64{1}, Holding: []float64{1}}
	require.NoError(t, c.SetPlan(ctx, in, &lotsizing.Result{MinimumTotalCost: 1}))

	res, ok, err := c.GetPlan(ctx, in)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, res)
	assert.NoError(t, c.InvalidateAll(ctx))
}

func TestBuildRedisOptions(t *testing.T) {
	opts, err := buildRedisOptions(config.CacheConfig{RedisHost: "cache", RedisPort: "6380", RedisDB: 2})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)

	opts, err = buildRedisOptions(config.CacheConfig{})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6379", opts.Addr)

	opts, err = buildRedisOptions(config.CacheConfig{RedisURL: "redis://:secret@redis.internal:6379/3"})
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 3, opts.DB)

	_, err = buildRedisOptions(config.CacheConfig{RedisURL: "http://nope"})
	assert.Error(t, err)
}

func TestPlanTTL(t *testing.T) {
	assert.Equal(t, 90*time.Second, planTTL(config.CacheConfig{PlanTTLSeconds: 90}))
	assert.Equal(t, defaultCacheTTL, planTTL(config.CacheConfig{}))
	assert.Equal(t, defaultCacheTTL, planTTL(config.CacheConfig{PlanTTLSeconds: -5}))
}
