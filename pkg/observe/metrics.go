package observe

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "stargaze"

// Collector exposes the service's Prometheus metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	AssessmentsTotal        *prometheus.CounterVec
	ProviderRequests        *prometheus.CounterVec
	ProviderRequestDuration *prometheus.HistogramVec
	WatchViewingScore       *prometheus.GaugeVec
}

// NewCollector registers the metrics against reg, or the default registerer when reg is nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	assessments, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "assessments_total",
		Help:      "Viewing assessments computed, by rating.",
	}, []string{"rating"}), "assessments_total")
	if err != nil {
		return nil, err
	}

	requests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "provider_requests_total",
		Help:      "Upstream provider calls, by provider and outcome.",
	}, []string{"provider", "status"}), "provider_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "provider_request_duration_seconds",
		Help:      "Latency of upstream provider calls.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"provider"})
	if err := reg.Register(durations); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return nil, fmt.Errorf("collector provider_request_duration_seconds already registered with incompatible type")
		}
		durations = existing
	}

	watchScore := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "watch_viewing_score",
		Help:      "Latest viewing score of each watched location.",
	}, []string{"location"})
	if err := reg.Register(watchScore); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.GaugeVec)
		if !ok {
			return nil, fmt.Errorf("collector watch_viewing_score already registered with incompatible type")
		}
		watchScore = existing
	}

	return &Collector{
		gatherer:                gatherer,
		AssessmentsTotal:        assessments,
		ProviderRequests:        requests,
		ProviderRequestDuration: durations,
		WatchViewingScore:       watchScore,
	}, nil
}

// Gatherer returns the gatherer backing the /metrics endpoint.
func (c *Collector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// IncAssessment counts one computed assessment.
func (c *Collector) IncAssessment(rating string) {
	if c == nil || c.AssessmentsTotal == nil {
		return
	}
	c.AssessmentsTotal.WithLabelValues(rating).Inc()
}

// ObserveProviderRequest records the outcome and latency of one upstream call.
func (c *Collector) ObserveProviderRequest(provider string, d time.Duration, err error) {
	if c == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	if c.ProviderRequests != nil {
		c.ProviderRequests.WithLabelValues(provider, status).Inc()
	}
	if c.ProviderRequestDuration != nil {
		c.ProviderRequestDuration.WithLabelValues(provider).Observe(d.Seconds())
	}
}

// SetWatchScore publishes the latest score for a watched location.
func (c *Collector) SetWatchScore(location string, score float64) {
	if c == nil || c.WatchViewingScore == nil {
		return
	}
	c.WatchViewingScore.WithLabelValues(location).Set(score)
}

func registerCounterVec(reg prometheus.Registerer, counter *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}
