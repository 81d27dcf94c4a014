package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "test-app",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Weather: WeatherConfig{
			APIs: []WeatherAPIConfig{
				{
					Name:    "open-meteo",
					Timeout: 30,
				},
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfig(t *testing.T) {
	// Test with default values (without config file)
	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "stargaze-api", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 10, config.Server.ReadTimeout)
	assert.Equal(t, 10, config.Server.WriteTimeout)
	assert.Equal(t, 120, config.Server.IdleTimeout)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 600, config.Cache.TTLSeconds)
	assert.Empty(t, config.Cache.Addr)

	// Without config file, weather APIs should be empty
	assert.Len(t, config.Weather.APIs, 0)
	assert.Len(t, config.Watch.Locations, 0)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_VERSION", "2.0.0")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CACHE_ADDR", "localhost:6379")
	t.Setenv("NASA_API_KEY", "nasa-key")

	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "2.0.0", config.App.Version)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "localhost:6379", config.Cache.Addr)
	assert.Equal(t, "nasa-key", config.NASA.APIKey)
	assert.True(t, config.IsProduction())
	assert.Equal(t, "prod", config.SentryZone())
}

func TestFileConfigProvider_YAMLThenEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
app:
  name: from-yaml
server:
  port: "7070"
weather:
  apis:
    - name: open-meteo
      timeout: 15
    - name: openweather
      api_key: YOUR-API-KEY-HERE
      timeout: 20
watch:
  cron: "*/30 * * * *"
  locations:
    - name: backyard
      lat: 51.5
      lon: -0.12
`)
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("WEATHER_OPENWEATHER_API_KEY", "env-key")

	config, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.NoError(t, err)

	assert.Equal(t, "from-yaml", config.App.Name)
	assert.Equal(t, "9191", config.Server.Port)
	assert.Equal(t, "info", config.Log.Level)

	require.Len(t, config.Weather.APIs, 2)
	assert.Equal(t, "open-meteo", config.Weather.APIs[0].Name)
	assert.Equal(t, 15, config.Weather.APIs[0].Timeout)
	assert.Equal(t, "env-key", config.Weather.APIs[1].APIKey)

	require.Len(t, config.Watch.Locations, 1)
	assert.Equal(t, WatchLocation{Name: "backyard", Latitude: 51.5, Longitude: -0.12}, config.Watch.Locations[0])
	assert.Equal(t, "*/30 * * * *", config.Watch.Cron)
}

func TestFileConfigProvider_PortVariables(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")

	t.Setenv("PORT", "3000")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.Equal(t, "3000", config.Server.Port)

	t.Setenv("SERVER_PORT", "4000")
	config, err = NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.Equal(t, "4000", config.Server.Port)
}

func TestFileConfigProvider_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "SENTRY_DSN=https://key@example.com/1\n")
	t.Cleanup(func() { os.Unsetenv("SENTRY_DSN") })

	provider := NewFileConfigProvider(filepath.Join(dir, "missing.yaml"))
	provider.envFile = envFile

	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.Equal(t, "https://key@example.com/1", config.Sentry.DSN)
}

func TestFileConfigProvider_MalformedYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "app: [unterminated")

	_, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config")
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider(DefaultConfigPath)

	assert.NoError(t, provider.Validate(validConfig()))

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"missing app name", func(c *Config) { c.App.Name = "" }, "app.name is required"},
		{"missing port", func(c *Config) { c.Server.Port = " " }, "server.port is required"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"unknown provider", func(c *Config) {
			c.Weather.APIs = append(c.Weather.APIs, WeatherAPIConfig{Name: "weatherapi"})
		}, "unknown provider"},
		{"openweather without key", func(c *Config) {
			c.Weather.APIs = append(c.Weather.APIs, WeatherAPIConfig{Name: "openweather"})
		}, "api_key is required"},
		{"negative cache ttl", func(c *Config) { c.Cache.TTLSeconds = -1 }, "cache.ttl_seconds"},
		{"watch location out of range", func(c *Config) {
			c.Watch.Cron = "* * * * *"
			c.Watch.Locations = []WatchLocation{{Name: "nowhere", Latitude: 91}}
		}, "coordinate out of range"},
		{"watch longitude out of range", func(c *Config) {
			c.Watch.Cron = "* * * * *"
			c.Watch.Locations = []WatchLocation{{Name: "dateline", Longitude: -180.5}}
		}, "watch.locations[0]: coordinate out of range"},
		{"watch without cron", func(c *Config) {
			c.Watch.Locations = []WatchLocation{{Name: "roof"}}
		}, "watch.cron is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := provider.Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfigValidation_WatchLocationBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Watch.Cron = "0 * * * *"
	cfg.Watch.Locations = []WatchLocation{
		{Name: "north pole", Latitude: 90, Longitude: 180},
		{Name: "south pole", Latitude: -90, Longitude: -180},
	}

	assert.NoError(t, NewFileConfigProvider(DefaultConfigPath).Validate(cfg))
	assert.Equal(t, 90.0, cfg.Watch.Locations[0].Coordinate().Latitude)
	assert.Equal(t, -180.0, cfg.Watch.Locations[1].Coordinate().Longitude)
}

func TestConfigHelperMethods(t *testing.T) {
	config := &Config{
		App: AppConfig{
			Env: "development",
		},
		Weather: WeatherConfig{
			APIs: []WeatherAPIConfig{
				{
					Name:    "open-meteo",
					APIKey:  "",
					Timeout: 30,
				},
				{
					Name:    "openweather",
					APIKey:  "test-key",
					Timeout: 30,
				},
			},
		},
	}

	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())
	assert.Equal(t, "dev", config.SentryZone())

	api, found := config.GetWeatherAPIByName("open-meteo")
	assert.True(t, found)
	assert.Equal(t, "open-meteo", api.Name)

	api, found = config.GetWeatherAPIByName("nonexistent")
	assert.False(t, found)
	assert.Nil(t, api)

	apis := config.GetWeatherAPIs()
	assert.Len(t, apis, 2)
	assert.Equal(t, "open-meteo", apis[0].Name)
	assert.Equal(t, "openweather", apis[1].Name)
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	// Test loading from non-existent file (should not error)
	err := provider.loadFromFile(config)
	assert.NoError(t, err)
}

func TestNewConfigWithProvider(t *testing.T) {
	mockProvider := &MockConfigProvider{config: validConfig()}

	config, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "test-app", config.App.Name)

	_, err = NewConfigWithProvider(&MockConfigProvider{err: errors.New("disk on fire")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

// MockConfigProvider for testing
type MockConfigProvider struct {
	config *Config
	err    error
}

func (m *MockConfigProvider) Load() (*Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

func (m *MockConfigProvider) Validate(config *Config) error {
	return nil
}
