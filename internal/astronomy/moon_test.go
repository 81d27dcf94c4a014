package astronomy

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func daysToDuration(days float64) time.Duration {
	return time.Duration(days * secondsPerDay * float64(time.Second))
}

func TestComputeMoonPhase_ReferenceIsNewMoon(t *testing.T) {
	assert.Equal(t, NewMoon, ComputeMoonPhase(ReferenceNewMoon))
	assert.Equal(t, NewMoon, ComputeMoonPhase(ReferenceNewMoon.In(time.FixedZone("UTC-8", -8*3600))))
}

func TestComputeMoonPhase_PhaseOrdering(t *testing.T) {
	phases := MoonPhases()
	require.Len(t, phases, 8)

	for k := 0; k < 8; k++ {
		at := ReferenceNewMoon.Add(daysToDuration(float64(k)*SynodicMonthDays/8) + time.Hour)
		assert.Equal(t, phases[k], ComputeMoonPhase(at), "phase %d", k)
	}
}

func TestComputeMoonPhase_Periodicity(t *testing.T) {
	period := daysToDuration(SynodicMonthDays)

	for cycle := -60; cycle <= 60; cycle += 7 {
		for k := 0; k < 8; k++ {
			days := float64(cycle)*SynodicMonthDays + (float64(k)+0.5)*SynodicMonthDays/8
			at := ReferenceNewMoon.Add(daysToDuration(days))

			assert.Equal(t, ComputeMoonPhase(at), ComputeMoonPhase(at.Add(period)), "cycle %d phase %d", cycle, k)
			assert.Equal(t, MoonPhases()[k], ComputeMoonPhase(at), "cycle %d phase %d", cycle, k)
		}
	}
}

func TestMoonAge_FarFromReference(t *testing.T) {
	period := daysToDuration(SynodicMonthDays)

	for _, at := range []time.Time{
		time.Date(1650, time.March, 3, 4, 5, 6, 0, time.UTC),
		time.Date(2350, time.October, 17, 22, 0, 0, 0, time.UTC),
	} {
		a := MoonAge(at)
		b := MoonAge(at.Add(period))

		diff := math.Abs(a - b)
		diff = math.Min(diff, SynodicMonthDays-diff)
		assert.Less(t, diff, 1e-6, at.String())
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, SynodicMonthDays)
	}
}

func TestComputeMoonPhase_BeforeReference(t *testing.T) {
	assert.Equal(t, WaningCrescent, ComputeMoonPhase(ReferenceNewMoon.Add(-time.Hour)))
	assert.Equal(t, FullMoon, ComputeMoonPhase(ReferenceNewMoon.Add(-daysToDuration(SynodicMonthDays/2-1))))
}

func TestMoonPhaseIndex_StaysInRangeAtCycleBoundaries(t *testing.T) {
	period := daysToDuration(SynodicMonthDays)

	for cycle := -40; cycle <= 40; cycle++ {
		boundary := ReferenceNewMoon.Add(time.Duration(cycle) * period)
		for _, offset := range []time.Duration{-time.Nanosecond, 0, time.Nanosecond} {
			idx := moonPhaseIndex(boundary.Add(offset))
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 8)
			assert.Contains(t, []int{0, 7}, idx)
		}
	}
}
