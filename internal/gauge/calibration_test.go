package gauge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// defaultCal mirrors the most common physical layout: a 270° clockwise
// sweep starting at 225° (7:30 position) and ending at -45° (4:30).
func defaultCal() Calibration {
	return Calibration{
		MinValue: 0,
		MaxValue: 10,
		MinAngle: 225,
		MaxAngle: -45,
		Unit:     "kg/cm2",
	}
}

func TestNormalizeDegrees(t *testing.T) {
	assert.InDelta(t, 0.0, NormalizeDegrees(0), 1e-9)
	assert.InDelta(t, 315.0, NormalizeDegrees(-45), 1e-9)
	assert.InDelta(t, 0.0, NormalizeDegrees(360), 1e-9)
	assert.InDelta(t, 1.0, NormalizeDegrees(721), 1e-9)
	assert.InDelta(t, 270.0, NormalizeDegrees(-450), 1e-9)
}

func TestAngleToValueEndpoints(t *testing.T) {
	cals := []Calibration{
		defaultCal(),
		{MinValue: 0, MaxValue: 100, MinAngle: 220, MaxAngle: 333, Unit: "psi"},
		{MinValue: -40, MaxValue: 60, MinAngle: 180, MaxAngle: 0, Unit: "C"},
		{MinValue: 2, MaxValue: 8, MinAngle: 90, MaxAngle: 91, Unit: "bar"},
	}

	for _, cal := range cals {
		assert.InDelta(t, cal.MinValue, cal.AngleToValue(cal.MinAngle), 1e-9,
			"min angle should map to min value")
		assert.InDelta(t, cal.MaxValue, cal.AngleToValue(cal.MaxAngle), 1e-9,
			"max angle should map to max value")
	}
}

func TestAngleToValuePeriodicity(t *testing.T) {
	cal := defaultCal()
	for _, angle := range []float64{-400, -180, -45, 0, 33.3, 90, 225, 317, 719} {
		assert.InDelta(t, cal.AngleToValue(angle), cal.AngleToValue(angle+360), 1e-9)
		assert.InDelta(t, cal.AngleToValue(angle), cal.AngleToValue(angle-720), 1e-9)
		assert.InDelta(t, cal.AngleToValue(angle), cal.AngleToValue(NormalizeDegrees(angle)), 1e-9)
	}
}

// The sweep from 225° to -45° (≡315°) is a 270° clockwise arc passing
// through 0°. Straight up (90°) is its midpoint and must read halfway.
func TestAngleToValueSweepCrossingZero(t *testing.T) {
	cal := Calibration{MinValue: 0, MaxValue: 10, MinAngle: 225, MaxAngle: -45}

	assert.InDelta(t, 5.0, cal.AngleToValue(90), 1e-9)
	assert.InDelta(t, 2.5, cal.AngleToValue(157.5), 1e-9)
	assert.InDelta(t, 7.5, cal.AngleToValue(22.5), 1e-9)
}

func TestAngleToValueClampOutsideArc(t *testing.T) {
	cal := defaultCal()

	// Angles in the dead zone below the dial saturate at the max stop:
	// clockwise distance from the min stop keeps growing past the max
	// stop, so the fraction clamps to 1 rather than wrapping around.
	for _, angle := range []float64{-50, -60, 280, 290, 260, 236, 226} {
		assert.InDelta(t, cal.MaxValue, cal.AngleToValue(angle), 1e-9,
			"angle %v outside the arc should clamp to max", angle)
	}

	// Clamp invariant over a full revolution.
	for angle := -360.0; angle <= 360; angle += 0.5 {
		v := cal.AngleToValue(angle)
		assert.GreaterOrEqual(t, v, cal.MinValue)
		assert.LessOrEqual(t, v, cal.MaxValue)
	}
}

func TestAngleToValueDegenerateSweep(t *testing.T) {
	cal := Calibration{MinValue: 0, MaxValue: 10, MinAngle: 100, MaxAngle: 100}

	for _, angle := range []float64{0, 45, 100, 180, 300, -90} {
		assert.Equal(t, 0.0, cal.AngleToValue(angle),
			"degenerate sweep must always return min value")
	}

	// Sub-epsilon sweeps count as degenerate too.
	cal.MaxAngle = 100 - 1e-4
	assert.Equal(t, 0.0, cal.AngleToValue(250))
}
