// Package ratecache fronts the market-rate repository with a redis cache.
// Command handlers hit the cache on every order creation and price change;
// the repository is only consulted on a miss. When neither the cache nor the
// repository knows a category yet, a static launch average keeps the
// evaluator working.
package ratecache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"taza/internal/core/domain/model/order"
	"taza/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how stale a cached average can get between refresh runs.
const DefaultTTL = 10 * time.Minute

// fallbackAverages are the launch-time averages in tenge, used until enough
// orders complete in a category to compute a real market rate.
func fallbackAverages() map[order.Category]float64 {
	return map[order.Category]float64{
		order.Clothing:  5000,
		order.Furniture: 15000,
		order.Shoes:     4000,
		order.Carpets:   8000,
		order.Cleaning:  20000,
		order.Strollers: 6000,
	}
}

// Cache implements ports.MarketRateProvider over redis with the persistent
// repository as the source of truth.
type Cache struct {
	client *redis.Client
	repo   ports.MarketRateRepository
	ttl    time.Duration
}

// NewCache creates a redis-backed market-rate cache.
func NewCache(client *redis.Client, repo ports.MarketRateRepository, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		client: client,
		repo:   repo,
		ttl:    ttl,
	}
}

// GetAverage returns the market-average price for a category. Lookup order:
// redis, then the repository, then the static fallback table. Redis being
// down degrades to repository reads, never to an error.
func (c *Cache) GetAverage(ctx context.Context, category order.Category) (float64, error) {
	if err := category.Validate(); err != nil {
		return 0, err
	}

	cached, err := c.client.Get(ctx, rateKey(category)).Result()
	if err == nil {
		average, parseErr := strconv.ParseFloat(cached, 64)
		if parseErr == nil && average > 0 {
			return average, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("market rate cache read failed",
			"category", category.String(),
			"error", err)
	}

	average, err := c.repo.GetAverage(ctx, category)
	if errors.Is(err, ports.ErrMarketRateNotFound) {
		return c.fallback(category)
	}
	if err != nil {
		return 0, err
	}

	c.store(ctx, category, average)
	return average, nil
}

// Invalidate drops the cached average for a category. The refresh job calls
// this after recomputing rates so the next read picks up the new value.
func (c *Cache) Invalidate(ctx context.Context, category order.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	return c.client.Del(ctx, rateKey(category)).Err()
}

func (c *Cache) fallback(category order.Category) (float64, error) {
	average, ok := fallbackAverages()[category]
	if !ok {
		return 0, ports.ErrMarketRateNotFound
	}
	return average, nil
}

func (c *Cache) store(ctx context.Context, category order.Category, average float64) {
	value := strconv.FormatFloat(average, 'f', -1, 64)
	if err := c.client.Set(ctx, rateKey(category), value, c.ttl).Err(); err != nil {
		slog.Warn("market rate cache write failed",
			"category", category.String(),
			"error", err)
	}
}

func rateKey(category order.Category) string {
	return fmt.Sprintf("taza:market_rate:%s", category.String())
}
