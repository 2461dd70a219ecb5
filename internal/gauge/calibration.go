package gauge

import "math"

// degenerateSweepEpsilon is the clockwise sweep, in degrees, below which a
// calibration is considered to have no usable range.
const degenerateSweepEpsilon = 1e-3

// Calibration holds the static parameters that convert a needle angle into
// a physical value for one gauge model.
//
// MinAngle and MaxAngle are the needle orientations (standard math
// convention, degrees) at MinValue and MaxValue respectively. The needle is
// assumed to travel clockwise from MinAngle to MaxAngle; see the package
// documentation for the sweep model.
type Calibration struct {
	MinValue float64 `json:"min_value" yaml:"min_value"`
	MaxValue float64 `json:"max_value" yaml:"max_value"`
	MinAngle float64 `json:"min_angle" yaml:"min_angle"`
	MaxAngle float64 `json:"max_angle" yaml:"max_angle"`
	Unit     string  `json:"unit" yaml:"unit"`
}

// NormalizeDegrees wraps an angle into [0, 360). Negative inputs wrap
// correctly, e.g. -45 -> 315.
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// AngleToValue maps a needle angle (degrees, standard math convention) to
// a calibrated value.
//
// The computation works entirely on clockwise angular distances after
// normalizing every angle to [0, 360):
//
//	cwSweep  = (minAngle - maxAngle) mod 360   // full calibrated arc
//	cwNeedle = (minAngle - angle)    mod 360   // needle progress along it
//	value    = MinValue + (cwNeedle/cwSweep) * (MaxValue - MinValue)
//
// The fraction is clamped to [0, 1], so angles outside the calibrated arc
// saturate at the max stop instead of wrapping or extrapolating. A
// degenerate calibration (cwSweep below 1e-3 degrees) returns MinValue.
// The result is always within [MinValue, MaxValue].
func (c Calibration) AngleToValue(angle float64) float64 {
	minA := NormalizeDegrees(c.MinAngle)
	maxA := NormalizeDegrees(c.MaxAngle)
	needleA := NormalizeDegrees(angle)

	cwSweep := NormalizeDegrees(minA - maxA)
	if cwSweep < degenerateSweepEpsilon {
		return c.MinValue
	}

	cwNeedle := NormalizeDegrees(minA - needleA)
	fraction := cwNeedle / cwSweep
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	return c.MinValue + fraction*(c.MaxValue-c.MinValue)
}
