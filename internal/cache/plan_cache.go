package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/andresuchdata/lotplan/internal/config"
	"github.com/andresuchdata/lotplan/internal/domain"
	"github.com/andresuchdata/lotplan/internal/lotsizing"
	"github.com/redis/go-redis/v9"
)

const (
	planKeyPrefix     = "lotsizing:plan"
	planScanBatchSize = 100
)

// PlanCache stores solved plans by instance content.
type PlanCache interface {
	GetPlan(ctx context.Context, in lotsizing.Instance) (*lotsizing.Result, bool, error)
	SetPlan(ctx context.Context, in lotsizing.Instance, res *lotsizing.Result) error
	InvalidateAll(ctx context.Context) error
}

type redisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopPlanCache struct{}

func NewPlanCache(cfg config.CacheConfig) (PlanCache, error) {
	if !cfg.Enabled {
		return &noopPlanCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisPlanCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopPlanCache() PlanCache {
	return &noopPlanCache{}
}

func (c *redisPlanCache) GetPlan(ctx context.Context, in lotsizing.Instance) (*lotsizing.Result, bool, error) {
	payload, err := c.client.Get(ctx, buildPlanKey(in)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var res lotsizing.Result
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, false, fmt.Errorf("decode plan cache: %w", err)
	}

	return &res, true, nil
}

func (c *redisPlanCache) SetPlan(ctx context.Context, in lotsizing.Instance, res *lotsizing.Result) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode plan cache: %w", err)
	}

	if err := c.client.Set(ctx, buildPlanKey(in), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisPlanCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, planKeyPrefix, planScanBatchSize)
}

func (n *noopPlanCache) GetPlan(ctx context.Context, in lotsizing.Instance) (*lotsizing.Result, bool, error) {
	return nil, false, nil
}

func (n *noopPlanCache) SetPlan(ctx context.Context, in lotsizing.Instance, res *lotsizing.Result) error {
	return nil
}

func (n *noopPlanCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildPlanKey(in lotsizing.Instance) string {
	return fmt.Sprintf("%s:%s", planKeyPrefix, domain.HashInstance(in))
}
