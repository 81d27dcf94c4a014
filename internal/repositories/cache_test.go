package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stargaze-api/internal/models"
)

type countingRepository struct {
	name  string
	obs   models.WeatherObservation
	err   error
	calls int
}

func (c *countingRepository) Name() string { return c.name }

func (c *countingRepository) FetchObservation(ctx context.Context, coord models.Coordinate) (models.WeatherObservation, error) {
	c.calls++
	return c.obs, c.err
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestObservationCacheKey(t *testing.T) {
	assert.Equal(t, "observation:openweather:52.52:13.41", ObservationCacheKey("openweather", berlin))
	assert.Equal(t, "observation:open-meteo:-33.87:151.21", ObservationCacheKey("open-meteo", models.Coordinate{Latitude: -33.8688, Longitude: 151.2093}))
}

func TestCachedWeatherRepository_HitAvoidsUpstream(t *testing.T) {
	mr, client := newMiniredis(t)
	upstream := &countingRepository{
		name: "openweather",
		obs:  models.WeatherObservation{Provider: "openweather", CloudCoverPercent: 15, VisibilityMeters: 10000},
	}
	repo := NewCachedWeatherRepository(upstream, client, 5*time.Minute, testLogger())

	first, err := repo.FetchObservation(context.Background(), berlin)
	require.NoError(t, err)
	second, err := repo.FetchObservation(context.Background(), berlin)
	require.NoError(t, err)

	assert.Equal(t, 1, upstream.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, "openweather", repo.Name())

	key := ObservationCacheKey("openweather", berlin)
	require.True(t, mr.Exists(key))
	assert.Equal(t, 5*time.Minute, mr.TTL(key))

	mr.FastForward(6 * time.Minute)
	_, err = repo.FetchObservation(context.Background(), berlin)
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.calls)
}

func TestCachedWeatherRepository_UpstreamErrorIsNotCached(t *testing.T) {
	mr, client := newMiniredis(t)
	upstream := &countingRepository{name: "open-meteo", err: errors.New("upstream down")}
	repo := NewCachedWeatherRepository(upstream, client, time.Minute, testLogger())

	_, err := repo.FetchObservation(context.Background(), berlin)
	require.Error(t, err)
	assert.False(t, mr.Exists(ObservationCacheKey("open-meteo", berlin)))
}

func TestCachedWeatherRepository_CorruptEntryFallsThrough(t *testing.T) {
	mr, client := newMiniredis(t)
	upstream := &countingRepository{name: "open-meteo", obs: models.WeatherObservation{HumidityPercent: 40}}
	repo := NewCachedWeatherRepository(upstream, client, time.Minute, testLogger())

	key := ObservationCacheKey("open-meteo", berlin)
	require.NoError(t, mr.Set(key, "{not json"))

	obs, err := repo.FetchObservation(context.Background(), berlin)
	require.NoError(t, err)
	assert.Equal(t, 40.0, obs.HumidityPercent)
	assert.Equal(t, 1, upstream.calls)

	stored, err := mr.Get(key)
	require.NoError(t, err)
	var cached models.WeatherObservation
	require.NoError(t, json.Unmarshal([]byte(stored), &cached))
	assert.Equal(t, 40.0, cached.HumidityPercent)
}

func TestCachedWeatherRepository_RedisDownStillServes(t *testing.T) {
	mr, client := newMiniredis(t)
	mr.Close()

	upstream := &countingRepository{name: "openweather", obs: models.WeatherObservation{WindSpeedMetersPerSec: 4}}
	repo := NewCachedWeatherRepository(upstream, client, 0, testLogger())

	obs, err := repo.FetchObservation(context.Background(), berlin)
	require.NoError(t, err)
	assert.Equal(t, 4.0, obs.WindSpeedMetersPerSec)
	assert.Equal(t, defaultCacheTTL, repo.ttl)
}

func TestWithCache_WrapsEveryRepository(t *testing.T) {
	_, client := newMiniredis(t)

	repos := WithCache([]WeatherRepository{
		&countingRepository{name: "a"},
		&countingRepository{name: "b"},
	}, client, time.Minute, testLogger())

	require.Len(t, repos, 2)
	for _, r := range repos {
		assert.IsType(t, &CachedWeatherRepository{}, r)
	}
	assert.Equal(t, "b", repos[1].Name())
}
