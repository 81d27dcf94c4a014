package astronomy

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"stargaze-api/internal/models"
)

const (
	// MaxDeclinationDegrees is the axial tilt used by the declination approximation.
	MaxDeclinationDegrees = 23.45
	// DegreesPerHour converts declination degrees into clock hours.
	DegreesPerHour = 15.0

	daysPerYear        = 365.0
	declinationDayLead = 10.0
	nominalSunrise     = 6.0
	nominalSunset      = 18.0
)

// SunModel selects how sun times are estimated.
type SunModel string

const (
	SunModelApproximate SunModel = "approximate"
	SunModelPrecise     SunModel = "precise"
)

// SunTimes holds the sunrise and sunset for one calendar day.
type SunTimes struct {
	Sunrise            time.Time `json:"sunrise"`
	Sunset             time.Time `json:"sunset"`
	DeclinationDegrees float64   `json:"declination_degrees"`
	Model              SunModel  `json:"model"`
	// Polar is set when the sun does not cross the horizon that day; Sunrise and Sunset are then zero.
	Polar bool `json:"polar"`
}

// SolarDeclination approximates the sun's declination in degrees for a 1-based day of year.
func SolarDeclination(dayOfYear int) float64 {
	angle := (360.0 / daysPerYear) * (float64(dayOfYear) + declinationDayLead) * math.Pi / 180.0
	return -MaxDeclinationDegrees * math.Cos(angle)
}

// SunHours converts a declination into sunrise and sunset clock hours.
func SunHours(declination float64) (sunrise, sunset float64) {
	shift := declination / DegreesPerHour
	return nominalSunrise + shift, nominalSunset - shift
}

// ComputeSunTimes estimates sunrise and sunset on date's calendar day.
//
// The estimate depends only on the day of year: coord is accepted for API
// symmetry with PreciseSunTimes but does not move the result. Both instants
// are in date's location and no timezone conversion is applied.
func ComputeSunTimes(coord models.Coordinate, date time.Time) SunTimes {
	_ = coord

	declination := SolarDeclination(date.YearDay())
	riseHour, setHour := SunHours(declination)

	return SunTimes{
		Sunrise:            atClockHour(date, riseHour),
		Sunset:             atClockHour(date, setHour),
		DeclinationDegrees: declination,
		Model:              SunModelApproximate,
	}
}

// PreciseSunTimes computes sunrise and sunset for coord using the NOAA solar
// equations. The returned instants are in UTC. During polar day or night both
// instants are zero and Polar is set.
func PreciseSunTimes(coord models.Coordinate, date time.Time) SunTimes {
	year, month, day := date.Date()
	rise, set := sunrise.SunriseSunset(coord.Latitude, coord.Longitude, year, month, day)

	return SunTimes{
		Sunrise:            rise,
		Sunset:             set,
		DeclinationDegrees: SolarDeclination(date.YearDay()),
		Model:              SunModelPrecise,
		Polar:              rise.IsZero() || set.IsZero(),
	}
}

// atClockHour builds the instant at a fractional clock hour on date's calendar day.
func atClockHour(date time.Time, hour float64) time.Time {
	year, month, day := date.Date()
	total := time.Duration(math.Round(hour * float64(time.Hour)))

	h := total / time.Hour
	total -= h * time.Hour
	m := total / time.Minute
	total -= m * time.Minute
	s := total / time.Second
	total -= s * time.Second

	return time.Date(year, month, day, int(h), int(m), int(s), int(total), date.Location())
}
