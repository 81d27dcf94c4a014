package skywatch

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"stargaze-api/internal/astronomy"
	"stargaze-api/internal/models"
	"stargaze-api/internal/repositories"
	"stargaze-api/pkg/logger"
	"stargaze-api/pkg/observe"
)

var (
	ErrNoObservations       = errors.New("no observations available")
	ErrPicturesUnconfigured = errors.New("picture provider is not configured")
	ErrPassesUnconfigured   = errors.New("pass provider is not configured")
)

// PassFetcher looks up upcoming ISS passes.
type PassFetcher interface {
	FetchPasses(ctx context.Context, coord models.Coordinate) models.PassList
}

// PictureFetcher looks up an astronomy picture for a date.
type PictureFetcher interface {
	FetchPicture(ctx context.Context, date string) (models.Picture, error)
}

// ProviderAssessment is one provider's observation together with its score.
type ProviderAssessment struct {
	Observation models.WeatherObservation   `json:"observation"`
	Assessment  astronomy.ViewingAssessment `json:"assessment"`
	ClearSky    bool                        `json:"clear_sky"`
}

// SkyReport is everything known about tonight's sky at one coordinate.
type SkyReport struct {
	Coordinate   models.Coordinate             `json:"coordinate"`
	GeneratedAt  time.Time                     `json:"generated_at"`
	MoonPhase    astronomy.MoonPhase           `json:"moon_phase" example:"Waxing Gibbous"`
	MoonAgeDays  float64                       `json:"moon_age_days" example:"10.4"`
	SunTimes     astronomy.SunTimes            `json:"sun_times"`
	Assessments  map[string]ProviderAssessment `json:"assessments"`
	BestProvider string                        `json:"best_provider" example:"open-meteo"`
	Best         ProviderAssessment            `json:"best"`
}

// SkyService combines weather providers with the astronomy estimates.
type SkyService struct {
	repos    []repositories.WeatherRepository
	passes   PassFetcher
	pictures PictureFetcher
	metrics  *observe.Collector
	l        *logger.Logger
	now      func() time.Time
}

type Option func(*SkyService)

func WithPasses(p PassFetcher) Option {
	return func(s *SkyService) { s.passes = p }
}

func WithPictures(p PictureFetcher) Option {
	return func(s *SkyService) { s.pictures = p }
}

func WithMetrics(c *observe.Collector) Option {
	return func(s *SkyService) { s.metrics = c }
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *SkyService) { s.now = now }
}

func NewSkyService(repos []repositories.WeatherRepository, l *logger.Logger, opts ...Option) *SkyService {
	s := &SkyService{
		repos: repos,
		l:     l,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now reads the service clock.
func (s *SkyService) Now() time.Time {
	return s.now()
}

// FetchObservations asks every weather provider for current conditions concurrently.
// Providers that fail are logged and left out; an error is returned only when none succeed.
func (s *SkyService) FetchObservations(ctx context.Context, coord models.Coordinate) (map[string]models.WeatherObservation, error) {
	s.l.Info("starting observation fetch", map[string]any{
		"lat":          coord.Latitude,
		"lon":          coord.Longitude,
		"repositories": len(s.repos),
	})

	results := make(map[string]models.WeatherObservation)
	var mu sync.Mutex

	wg := sync.WaitGroup{}

	for _, repo := range s.repos {
		wg.Add(1)

		go func(repo repositories.WeatherRepository) {
			defer wg.Done()
			s.l.Debug("fetching observation", map[string]any{"repo": repo.Name(), "lat": coord.Latitude, "lon": coord.Longitude})

			start := time.Now()
			obs, err := repo.FetchObservation(ctx, coord)
			s.metrics.ObserveProviderRequest(repo.Name(), time.Since(start), err)
			if err != nil {
				s.l.Warning("failed to fetch observation", map[string]any{"repo": repo.Name(), "err": err.Error()})
				return
			}

			mu.Lock()
			results[repo.Name()] = obs
			mu.Unlock()
		}(repo)
	}

	wg.Wait()

	s.l.Info("completed observation fetch", map[string]any{
		"successfulRepos": len(results),
	})

	if len(results) == 0 {
		err := errors.Wrapf(ErrNoObservations, "lat %.4f lon %.4f", coord.Latitude, coord.Longitude)
		s.l.Error(err, map[string]any{
			"lat": coord.Latitude,
			"lon": coord.Longitude,
		})
		return nil, err
	}

	return results, nil
}

// Assess scores a single observation and counts it.
func (s *SkyService) Assess(obs models.WeatherObservation) astronomy.ViewingAssessment {
	assessment := astronomy.ComputeViewingAssessment(obs)
	s.metrics.IncAssessment(string(assessment.Rating))
	return assessment
}

// Report builds a SkyReport from live observations. The clock is read once so
// the moon phase and the sun times describe the same instant.
func (s *SkyService) Report(ctx context.Context, coord models.Coordinate) (SkyReport, error) {
	now := s.now()

	observations, err := s.FetchObservations(ctx, coord)
	if err != nil {
		return SkyReport{}, err
	}

	report := SkyReport{
		Coordinate:  coord,
		GeneratedAt: now,
		MoonPhase:   astronomy.ComputeMoonPhase(now),
		MoonAgeDays: astronomy.MoonAge(now),
		SunTimes:    astronomy.ComputeSunTimes(coord, now),
		Assessments: make(map[string]ProviderAssessment, len(observations)),
	}

	providers := make([]string, 0, len(observations))
	for name := range observations {
		providers = append(providers, name)
	}
	sort.Strings(providers)

	for _, name := range providers {
		obs := observations[name]
		pa := ProviderAssessment{
			Observation: obs,
			Assessment:  s.Assess(obs),
			ClearSky:    astronomy.IsClearSky(obs),
		}
		report.Assessments[name] = pa

		// providers are sorted, so ties keep the alphabetically first one
		if report.BestProvider == "" || pa.Assessment.Score > report.Best.Assessment.Score {
			report.BestProvider = name
			report.Best = pa
		}
	}

	s.l.Info("sky report ready", map[string]any{
		"lat":       coord.Latitude,
		"lon":       coord.Longitude,
		"best":      report.BestProvider,
		"score":     report.Best.Assessment.Score,
		"rating":    report.Best.Assessment.Rating,
		"moonPhase": report.MoonPhase,
	})

	return report, nil
}

func (s *SkyService) ISSPasses(ctx context.Context, coord models.Coordinate) (models.PassList, error) {
	if s.passes == nil {
		return models.PassList{}, ErrPassesUnconfigured
	}
	return s.passes.FetchPasses(ctx, coord), nil
}

func (s *SkyService) PictureOfTheDay(ctx context.Context, date string) (models.Picture, error) {
	if s.pictures == nil {
		return models.Picture{}, ErrPicturesUnconfigured
	}

	start := time.Now()
	picture, err := s.pictures.FetchPicture(ctx, date)
	s.metrics.ObserveProviderRequest("nasa-apod", time.Since(start), err)
	if err != nil {
		return models.Picture{}, errors.Wrap(err, "fetch picture of the day")
	}
	return picture, nil
}
