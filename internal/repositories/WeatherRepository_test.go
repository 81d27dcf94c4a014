package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stargaze-api/config"
)

func TestInitWeatherRepositories(t *testing.T) {
	cfg := &config.Config{
		Weather: config.WeatherConfig{
			APIs: []config.WeatherAPIConfig{
				{Name: "open-meteo", Timeout: 5},
				{Name: "openweather", APIKey: "key"},
				{Name: "openweather"},
				{Name: "weatherapi", APIKey: "key"},
			},
		},
	}

	repos := InitWeatherRepositories(cfg, testLogger())

	require.Len(t, repos, 2)
	assert.Equal(t, "open-meteo", repos[0].Name())
	assert.Equal(t, "openweather", repos[1].Name())
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	assert.Equal(t, defaultTimeout, NewHTTPClient(0).Timeout)
	assert.Equal(t, 3*time.Second, NewHTTPClient(3).Timeout)
}
