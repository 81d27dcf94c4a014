package repositories

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stargaze-api/internal/models"
	"stargaze-api/pkg/logger"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
)

type OpenWeatherRepository struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherRepository(baseURL, apiKey string, l *logger.Logger, httpClient HTTPClient) (*OpenWeatherRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrEmptyAPIKey
	}
	if baseURL == "" {
		baseURL = OpenWeatherBaseURL
	}

	return &OpenWeatherRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (w *OpenWeatherRepository) Name() string {
	return "openweather"
}

type OpenWeatherResponse struct {
	Dt     int64 `json:"dt"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	// Visibility is omitted by the API when unknown.
	Visibility *float64 `json:"visibility"`
	Main       struct {
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (w *OpenWeatherRepository) FetchObservation(ctx context.Context, coord models.Coordinate) (models.WeatherObservation, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	params.Set("units", "metric")
	params.Set("appid", w.apiKey)

	w.l.Info("making openweather API request", map[string]any{
		"params": coord.RequestParams(),
	})

	var response OpenWeatherResponse
	if err := getJSON(ctx, w.httpClient, w.l, w.Name(), w.baseURL+"/weather?"+params.Encode(), &response); err != nil {
		return models.WeatherObservation{}, err
	}

	if response.Dt == 0 {
		return models.WeatherObservation{}, ErrNoObservation
	}

	observedAt := time.Unix(response.Dt, 0).UTC()
	obs := models.WeatherObservation{
		Provider:              w.Name(),
		ObservedAt:            &observedAt,
		CloudCoverPercent:     response.Clouds.All,
		HumidityPercent:       response.Main.Humidity,
		WindSpeedMetersPerSec: response.Wind.Speed,
	}
	if response.Visibility != nil {
		obs.VisibilityMeters = *response.Visibility
	}

	return obs, nil
}
