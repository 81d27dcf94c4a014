package astronomy

import (
	"math"

	"stargaze-api/internal/models"
)

const (
	maxScore = 100.0
	minScore = 0.0

	// VisibilityDivisor scales visibility meters before the visibility penalty is applied.
	VisibilityDivisor = 10000.0

	visibilityWeight = 0.5
	humidityWeight   = 0.2
	windWeight       = 2.0
)

// Rating is the categorical reading of a viewing score.
type Rating string

const (
	RatingExcellent      Rating = "Excellent"
	RatingGood           Rating = "Good"
	RatingFair           Rating = "Fair"
	RatingPoor           Rating = "Poor"
	RatingNotRecommended Rating = "Not Recommended"
)

// ratingThresholds are inclusive lower bounds, checked top down.
var ratingThresholds = []struct {
	min    float64
	rating Rating
}{
	{80, RatingExcellent},
	{60, RatingGood},
	{40, RatingFair},
	{20, RatingPoor},
}

// ViewingAssessment is the stargazing suitability derived from one observation.
type ViewingAssessment struct {
	Score  float64 `json:"score" example:"72.5"`
	Rating Rating  `json:"rating" example:"Good"`
}

// ComputeViewingAssessment scores an observation from 0 to 100.
//
// Each penalty is subtracted independently from 100: cloud cover one point per
// percent, (100 - visibility/10000) * 0.5, humidity * 0.2 and wind speed * 2.
// NaN measurements count as zero and the result is clamped into [0, 100].
func ComputeViewingAssessment(obs models.WeatherObservation) ViewingAssessment {
	cloud := zeroIfNaN(obs.CloudCoverPercent)
	visibility := zeroIfNaN(obs.VisibilityMeters)
	humidity := zeroIfNaN(obs.HumidityPercent)
	wind := zeroIfNaN(obs.WindSpeedMetersPerSec)

	score := maxScore
	score -= cloud
	score -= (maxScore - visibility/VisibilityDivisor) * visibilityWeight
	score -= humidity * humidityWeight
	score -= wind * windWeight

	score = clampScore(score)

	return ViewingAssessment{
		Score:  score,
		Rating: RatingForScore(score),
	}
}

// RatingForScore maps a score onto its rating band.
func RatingForScore(score float64) Rating {
	for _, t := range ratingThresholds {
		if score >= t.min {
			return t.rating
		}
	}
	return RatingNotRecommended
}

func clampScore(score float64) float64 {
	if math.IsNaN(score) {
		return minScore
	}
	return math.Max(minScore, math.Min(maxScore, score))
}

func zeroIfNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
