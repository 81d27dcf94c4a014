package models

import "time"

// WeatherObservation is a single current-conditions reading from a weather provider.
// Provider and ObservedAt are bookkeeping; the estimator only reads the four measurements.
type WeatherObservation struct {
	Provider              string     `json:"provider,omitempty" example:"openweather"`
	ObservedAt            *time.Time `json:"observed_at,omitempty"`
	CloudCoverPercent     float64    `json:"cloud_cover_percent" example:"20"`
	VisibilityMeters      float64    `json:"visibility_meters" example:"10000"`
	HumidityPercent       float64    `json:"humidity_percent" example:"55"`
	WindSpeedMetersPerSec float64    `json:"wind_speed_mps" example:"3.1"`
}
