// Package scheduler periodically assesses a fixed list of observing sites.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"stargaze-api/config"
	"stargaze-api/internal/astronomy"
	"stargaze-api/internal/models"
	"stargaze-api/internal/services/skywatch"
	"stargaze-api/pkg/logger"
	"stargaze-api/pkg/observe"
)

const runTimeout = 30 * time.Second

// Reporter builds a sky report for a coordinate.
type Reporter interface {
	Report(ctx context.Context, coord models.Coordinate) (skywatch.SkyReport, error)
}

// Result is the outcome of assessing one watched location.
type Result struct {
	Location string
	Score    float64
	Rating   astronomy.Rating
	Provider string
	Err      error
}

type Watcher struct {
	cron      string
	locations []config.WatchLocation
	reporter  Reporter
	metrics   *observe.Collector
	l         *logger.Logger
	scheduler *gocron.Scheduler
}

func NewWatcher(cfg config.WatchConfig, reporter Reporter, metrics *observe.Collector, l *logger.Logger) *Watcher {
	return &Watcher{
		cron:      cfg.Cron,
		locations: cfg.Locations,
		reporter:  reporter,
		metrics:   metrics,
		l:         l,
	}
}

// Start schedules RunOnce on the configured cron expression. It does nothing
// when there are no locations to watch.
func (w *Watcher) Start(ctx context.Context) error {
	if len(w.locations) == 0 {
		w.l.Info("watch list is empty, watcher disabled")
		return nil
	}

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	if _, err := s.Cron(w.cron).Do(func() {
		w.RunOnce(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule watch job %q: %w", w.cron, err)
	}

	s.StartAsync()
	w.scheduler = s

	w.l.Info("watcher started", map[string]any{
		"cron":      w.cron,
		"locations": len(w.locations),
	})

	return nil
}

func (w *Watcher) Stop() {
	if w.scheduler != nil {
		w.scheduler.Stop()
		w.scheduler = nil
	}
}

// RunOnce assesses every watched location in order and publishes each score.
func (w *Watcher) RunOnce(ctx context.Context) []Result {
	results := make([]Result, 0, len(w.locations))

	for _, loc := range w.locations {
		runCtx, cancel := context.WithTimeout(ctx, runTimeout)
		report, err := w.reporter.Report(runCtx, loc.Coordinate())
		cancel()

		if err != nil {
			w.l.Warning("watch assessment failed", map[string]any{"location": loc.Name, "err": err.Error()})
			results = append(results, Result{Location: loc.Name, Err: err})
			continue
		}

		res := Result{
			Location: loc.Name,
			Score:    report.Best.Assessment.Score,
			Rating:   report.Best.Assessment.Rating,
			Provider: report.BestProvider,
		}
		w.metrics.SetWatchScore(loc.Name, res.Score)
		w.l.Info("watch assessment", map[string]any{
			"location":  loc.Name,
			"score":     res.Score,
			"rating":    res.Rating,
			"provider":  res.Provider,
			"moonPhase": report.MoonPhase,
		})

		results = append(results, res)
	}

	return results
}
