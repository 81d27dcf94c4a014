package astronomy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stargaze-api/internal/models"
)

func TestSunHours_ZeroDeclination(t *testing.T) {
	rise, set := SunHours(0)

	assert.Equal(t, 6.0, rise)
	assert.Equal(t, 18.0, set)
}

func TestComputeSunTimes_EquinoxLikeDay(t *testing.T) {
	date := time.Date(2025, time.March, 22, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, 81, date.YearDay())

	times := ComputeSunTimes(models.Coordinate{Latitude: 51.5, Longitude: -0.12}, date)

	sixAM := time.Date(2025, time.March, 22, 6, 0, 0, 0, time.UTC)
	sixPM := time.Date(2025, time.March, 22, 18, 0, 0, 0, time.UTC)

	assert.InDelta(t, 0, times.DeclinationDegrees, 0.2)
	assert.WithinDuration(t, sixAM, times.Sunrise, time.Minute)
	assert.WithinDuration(t, sixPM, times.Sunset, time.Minute)
	assert.Equal(t, SunModelApproximate, times.Model)
}

func TestComputeSunTimes_SameCalendarDate(t *testing.T) {
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC+13", 13*3600),
		time.FixedZone("UTC-11", -11*3600),
	}

	for _, loc := range zones {
		start := time.Date(2024, time.January, 1, 23, 59, 0, 0, loc)
		for day := 0; day < 366; day++ {
			date := start.AddDate(0, 0, day)
			times := ComputeSunTimes(models.Coordinate{}, date)

			y, m, d := date.Date()
			ry, rm, rd := times.Sunrise.Date()
			sy, sm, sd := times.Sunset.Date()

			assert.Equal(t, []int{y, int(m), d}, []int{ry, int(rm), rd}, "sunrise %s", date)
			assert.Equal(t, []int{y, int(m), d}, []int{sy, int(sm), sd}, "sunset %s", date)
			assert.Equal(t, loc, times.Sunrise.Location())
			assert.True(t, times.Sunrise.Before(times.Sunset))
		}
	}
}

func TestComputeSunTimes_SymmetricAroundNoon(t *testing.T) {
	date := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
	times := ComputeSunTimes(models.Coordinate{}, date)

	fromMidnight := times.Sunrise.Sub(date) + times.Sunset.Sub(date)
	assert.InDelta(t, float64(24*time.Hour), float64(fromMidnight), float64(time.Microsecond))
}

func TestComputeSunTimes_IgnoresCoordinate(t *testing.T) {
	date := time.Date(2025, time.November, 2, 12, 0, 0, 0, time.UTC)

	north := ComputeSunTimes(models.Coordinate{Latitude: 69.6, Longitude: 18.9}, date)
	south := ComputeSunTimes(models.Coordinate{Latitude: -33.9, Longitude: 151.2}, date)

	assert.Equal(t, north, south)
}

func TestPreciseSunTimes_NewYorkSummer(t *testing.T) {
	date := time.Date(2025, time.June, 21, 12, 0, 0, 0, time.UTC)
	times := PreciseSunTimes(models.Coordinate{Latitude: 40.7128, Longitude: -74.006}, date)

	assert.Equal(t, SunModelPrecise, times.Model)
	assert.True(t, times.Sunrise.Before(times.Sunset))

	daylight := times.Sunset.Sub(times.Sunrise)
	assert.Greater(t, daylight, 14*time.Hour)
	assert.Less(t, daylight, 16*time.Hour)
}

func TestPreciseSunTimes_PolarDayAndNight(t *testing.T) {
	svalbard := models.Coordinate{Latitude: 78.22, Longitude: 15.65}

	for _, date := range []time.Time{
		time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC),
	} {
		times := PreciseSunTimes(svalbard, date)

		assert.True(t, times.Polar, date.Format("2006-01-02"))
		assert.True(t, times.Sunrise.IsZero())
		assert.True(t, times.Sunset.IsZero())
	}

	assert.False(t, PreciseSunTimes(models.Coordinate{Latitude: 40.7128, Longitude: -74.006}, time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)).Polar)
	assert.False(t, ComputeSunTimes(svalbard, time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)).Polar)
}
