// Package astronomy holds the closed-form estimates behind the stargazing API:
// moon phase, approximate sun times, viewing-condition scoring and a few
// catalog lookups. Every function is pure and safe for concurrent use.
package astronomy

import (
	"math"
	"time"
)

const (
	// SynodicMonthDays is the mean length of a lunar cycle.
	SynodicMonthDays = 29.530588853

	secondsPerDay = 86400.0
	phaseCount    = 8
)

// ReferenceNewMoon is a known new moon used as phase zero.
var ReferenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// MoonPhase is one of the eight named lunar phases.
type MoonPhase string

const (
	NewMoon        MoonPhase = "New Moon"
	WaxingCrescent MoonPhase = "Waxing Crescent"
	FirstQuarter   MoonPhase = "First Quarter"
	WaxingGibbous  MoonPhase = "Waxing Gibbous"
	FullMoon       MoonPhase = "Full Moon"
	WaningGibbous  MoonPhase = "Waning Gibbous"
	LastQuarter    MoonPhase = "Last Quarter"
	WaningCrescent MoonPhase = "Waning Crescent"
)

// MoonPhases returns the phases in cycle order, starting at New Moon.
func MoonPhases() []MoonPhase {
	return []MoonPhase{
		NewMoon,
		WaxingCrescent,
		FirstQuarter,
		WaxingGibbous,
		FullMoon,
		WaningGibbous,
		LastQuarter,
		WaningCrescent,
	}
}

// ComputeMoonPhase returns the phase of the moon at date.
func ComputeMoonPhase(date time.Time) MoonPhase {
	return MoonPhases()[moonPhaseIndex(date)]
}

// MoonAge returns the days elapsed since the most recent new moon, in [0, SynodicMonthDays).
func MoonAge(date time.Time) float64 {
	age := math.Mod(daysSinceReference(date), SynodicMonthDays)
	if age < 0 {
		age += SynodicMonthDays
	}
	if age >= SynodicMonthDays {
		age = 0
	}
	return age
}

func moonPhaseIndex(date time.Time) int {
	index := int(math.Floor(MoonAge(date) / SynodicMonthDays * phaseCount))
	if index < 0 || index >= phaseCount {
		return 0
	}
	return index
}

// daysSinceReference avoids time.Time.Sub, which saturates beyond ~292 years.
func daysSinceReference(date time.Time) float64 {
	seconds := float64(date.Unix() - ReferenceNewMoon.Unix())
	nanos := float64(date.Nanosecond() - ReferenceNewMoon.Nanosecond())
	return (seconds + nanos/1e9) / secondsPerDay
}
