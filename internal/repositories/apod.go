package repositories

import (
	"context"
	"net/url"
	"strings"

	"stargaze-api/internal/models"
	"stargaze-api/pkg/logger"
)

const (
	APODBaseURL = "https://api.nasa.gov/planetary/apod"
)

// PictureRepository fetches NASA's Astronomy Picture of the Day.
type PictureRepository struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewPictureRepository(baseURL, apiKey string, l *logger.Logger, httpClient HTTPClient) (*PictureRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrEmptyAPIKey
	}
	if baseURL == "" {
		baseURL = APODBaseURL
	}

	return &PictureRepository{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (r *PictureRepository) Name() string {
	return "nasa-apod"
}

// FetchPicture returns the picture for date (YYYY-MM-DD), or today's when date is empty.
func (r *PictureRepository) FetchPicture(ctx context.Context, date string) (models.Picture, error) {
	params := url.Values{}
	params.Set("api_key", r.apiKey)
	if date != "" {
		params.Set("date", date)
	}

	r.l.Info("making NASA APOD request", map[string]any{"date": date})

	var picture models.Picture
	if err := getJSON(ctx, r.httpClient, r.l, r.Name(), r.baseURL+"?"+params.Encode(), &picture); err != nil {
		return models.Picture{}, err
	}

	if picture.URL == "" && picture.Title == "" {
		return models.Picture{}, ErrNoPicture
	}

	return picture, nil
}
