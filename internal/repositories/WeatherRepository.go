package repositories

import (
	"context"
	"errors"
	"net/http"
	"time"

	"stargaze-api/config"
	"stargaze-api/internal/models"
	"stargaze-api/pkg/logger"
)

var (
	ErrEmptyAPIKey   = errors.New("API key cannot be empty")
	ErrNoObservation = errors.New("no observation data available")
	ErrNoPicture     = errors.New("no picture available")
)

const defaultTimeout = 10 * time.Second

// HTTPClient is the subset of *http.Client the repositories use.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherRepository supplies current conditions for a coordinate.
type WeatherRepository interface {
	Name() string
	FetchObservation(ctx context.Context, coord models.Coordinate) (models.WeatherObservation, error)
}

// InitWeatherRepositories builds one repository per configured provider.
// Providers that fail to construct are logged and skipped.
func InitWeatherRepositories(cfg *config.Config, l *logger.Logger) []WeatherRepository {
	var repos []WeatherRepository
	for _, api := range cfg.Weather.APIs {
		client := NewHTTPClient(api.Timeout)

		switch api.Name {
		case config.ProviderOpenMeteo:
			repos = append(repos, NewOpenMeteoRepository(api.BaseURL, l, client))
		case config.ProviderOpenWeather:
			repo, err := NewOpenWeatherRepository(api.BaseURL, api.APIKey, l, client)
			if err != nil {
				l.Warning("skipping weather provider", map[string]any{"provider": api.Name, "err": err.Error()})
				continue
			}
			repos = append(repos, repo)
		default:
			l.Warning("unknown weather provider", map[string]any{"provider": api.Name})
		}
	}

	return repos
}

// NewHTTPClient returns a client with the given timeout in seconds, or the default when zero.
func NewHTTPClient(timeoutSeconds int) *http.Client {
	timeout := defaultTimeout
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}
	return &http.Client{Timeout: timeout}
}
