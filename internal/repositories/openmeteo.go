package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"stargaze-api/internal/models"
	"stargaze-api/pkg/logger"
)

const (
	OpenMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

	openMeteoCurrentFields = "cloud_cover,visibility,relative_humidity_2m,wind_speed_10m"
	openMeteoTimeLayout    = "2006-01-02T15:04"
)

type OpenMeteoRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenMeteoRepository(baseURL string, l *logger.Logger, httpClient HTTPClient) *OpenMeteoRepository {
	if baseURL == "" {
		baseURL = OpenMeteoBaseURL
	}
	return &OpenMeteoRepository{
		baseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return "open-meteo"
}

type OpenMeteoCurrent struct {
	Time               string   `json:"time"`
	CloudCover         *float64 `json:"cloud_cover"`
	Visibility         *float64 `json:"visibility"`
	RelativeHumidity2m *float64 `json:"relative_humidity_2m"`
	WindSpeed10m       *float64 `json:"wind_speed_10m"`
}

type OpenMeteoResponse struct {
	Current *OpenMeteoCurrent `json:"current"`
}

func (o *OpenMeteoRepository) FetchObservation(ctx context.Context, coord models.Coordinate) (models.WeatherObservation, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	params.Set("current", openMeteoCurrentFields)
	params.Set("wind_speed_unit", "ms")
	params.Set("timezone", "GMT")

	o.l.Info("making openmeteo API request", map[string]any{
		"params": coord.RequestParams(),
	})

	var response OpenMeteoResponse
	if err := getJSON(ctx, o.httpClient, o.l, o.Name(), o.baseURL+"?"+params.Encode(), &response); err != nil {
		return models.WeatherObservation{}, err
	}

	if response.Current == nil {
		return models.WeatherObservation{}, ErrNoObservation
	}

	return observationFromOpenMeteo(o.Name(), *response.Current)
}

// observationFromOpenMeteo requires every measurement; a null visibility would otherwise score as fog.
func observationFromOpenMeteo(provider string, current OpenMeteoCurrent) (models.WeatherObservation, error) {
	if current.CloudCover == nil || current.Visibility == nil || current.RelativeHumidity2m == nil || current.WindSpeed10m == nil {
		return models.WeatherObservation{}, fmt.Errorf("incomplete current conditions: %w", ErrNoObservation)
	}

	obs := models.WeatherObservation{
		Provider:              provider,
		CloudCoverPercent:     *current.CloudCover,
		VisibilityMeters:      *current.Visibility,
		HumidityPercent:       *current.RelativeHumidity2m,
		WindSpeedMetersPerSec: *current.WindSpeed10m,
	}

	if current.Time != "" {
		observedAt, err := time.ParseInLocation(openMeteoTimeLayout, current.Time, time.UTC)
		if err != nil {
			return models.WeatherObservation{}, fmt.Errorf("failed to parse observation time %s: %w", current.Time, err)
		}
		obs.ObservedAt = &observedAt
	}

	return obs, nil
}
