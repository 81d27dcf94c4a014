package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stargaze-api/internal/models"
	"stargaze-api/pkg/logger"
)

const defaultCacheTTL = 10 * time.Minute

// CachedWeatherRepository keeps observations from another repository in Redis.
// Cache failures never fail a fetch: they are logged and the wrapped provider is asked instead.
type CachedWeatherRepository struct {
	next   WeatherRepository
	client redis.UniversalClient
	ttl    time.Duration
	l      *logger.Logger
}

func NewCachedWeatherRepository(next WeatherRepository, client redis.UniversalClient, ttl time.Duration, l *logger.Logger) *CachedWeatherRepository {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedWeatherRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		l:      l,
	}
}

// WithCache wraps every repository in a CachedWeatherRepository sharing client.
func WithCache(repos []WeatherRepository, client redis.UniversalClient, ttl time.Duration, l *logger.Logger) []WeatherRepository {
	cached := make([]WeatherRepository, 0, len(repos))
	for _, repo := range repos {
		cached = append(cached, NewCachedWeatherRepository(repo, client, ttl, l))
	}
	return cached
}

func (c *CachedWeatherRepository) Name() string {
	return c.next.Name()
}

// ObservationCacheKey groups coordinates on a roughly one kilometre grid.
func ObservationCacheKey(provider string, coord models.Coordinate) string {
	return fmt.Sprintf("observation:%s:%.2f:%.2f", provider, coord.Latitude, coord.Longitude)
}

func (c *CachedWeatherRepository) FetchObservation(ctx context.Context, coord models.Coordinate) (models.WeatherObservation, error) {
	key := ObservationCacheKey(c.Name(), coord)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var obs models.WeatherObservation
		if err := json.Unmarshal(raw, &obs); err == nil {
			c.l.Debug("observation cache hit", map[string]any{"key": key})
			return obs, nil
		}
		c.l.Warning("discarding undecodable cached observation", map[string]any{"key": key})
	case errors.Is(err, redis.Nil):
		c.l.Debug("observation cache miss", map[string]any{"key": key})
	default:
		c.l.Warning("observation cache read failed", map[string]any{"key": key, "err": err.Error()})
	}

	obs, err := c.next.FetchObservation(ctx, coord)
	if err != nil {
		return obs, err
	}

	payload, err := json.Marshal(obs)
	if err != nil {
		c.l.Warning("failed to encode observation for cache", map[string]any{"key": key, "err": err.Error()})
		return obs, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.l.Warning("observation cache write failed", map[string]any{"key": key, "err": err.Error()})
	}

	return obs, nil
}
