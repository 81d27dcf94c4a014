package repositories

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"stargaze-api/internal/models"
	"stargaze-api/pkg/logger"
)

const (
	ISSPassBaseURL = "https://api.open-notify.org/iss-pass.json"

	// issMagnitude is the typical apparent magnitude of a visible ISS pass.
	issMagnitude = -3.0
)

// fallbackPasses are served when the upstream cannot be reached, offset from now.
var fallbackPasses = []struct {
	offset   time.Duration
	duration int
}{
	{time.Hour, 600},
	{2 * time.Hour, 480},
	{3 * time.Hour, 540},
}

type PassRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *logger.Logger
	now        func() time.Time
}

func NewPassRepository(baseURL string, l *logger.Logger, httpClient HTTPClient) *PassRepository {
	if baseURL == "" {
		baseURL = ISSPassBaseURL
	}
	return &PassRepository{
		baseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
		now:        time.Now,
	}
}

func (p *PassRepository) Name() string {
	return "open-notify"
}

type ISSPassResponse struct {
	Message  string `json:"message"`
	Response []struct {
		Duration int   `json:"duration"`
		Risetime int64 `json:"risetime"`
	} `json:"response"`
}

// FetchPasses returns upcoming passes over coord. Upstream failures are not
// returned as errors: the list falls back to demo passes and is flagged.
func (p *PassRepository) FetchPasses(ctx context.Context, coord models.Coordinate) models.PassList {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))

	p.l.Info("making open-notify API request", map[string]any{
		"params": coord.RequestParams(),
	})

	var response ISSPassResponse
	if err := getJSON(ctx, p.httpClient, p.l, p.Name(), p.baseURL+"?"+params.Encode(), &response); err != nil {
		p.l.Warning("ISS pass lookup failed, serving fallback passes", map[string]any{"err": err.Error()})
		return p.fallback(coord, err)
	}

	list := models.PassList{
		Coordinate: coord,
		Passes:     make([]models.ISSPass, 0, len(response.Response)),
	}
	for _, pass := range response.Response {
		list.Passes = append(list.Passes, models.ISSPass{
			Risetime:        time.Unix(pass.Risetime, 0).UTC(),
			DurationSeconds: pass.Duration,
			Magnitude:       issMagnitude,
		})
	}

	return list
}

func (p *PassRepository) fallback(coord models.Coordinate, cause error) models.PassList {
	now := p.now().UTC().Truncate(time.Second)

	list := models.PassList{
		Coordinate: coord,
		Passes:     make([]models.ISSPass, 0, len(fallbackPasses)),
		Fallback:   true,
		Error:      cause.Error(),
	}
	for _, f := range fallbackPasses {
		list.Passes = append(list.Passes, models.ISSPass{
			Risetime:        now.Add(f.offset),
			DurationSeconds: f.duration,
			Magnitude:       issMagnitude,
		})
	}

	return list
}
