package gauge

import "math"

// Point is a 2D location in image pixel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ComputeAngle returns the needle angle in degrees for a gauge center and
// needle tip, both in image coordinates.
//
// The result uses standard mathematical convention:
//   - 0° = right (3 o'clock)
//   - 90° = up (12 o'clock)
//   - 180° = left (9 o'clock)
//   - -90° = down (6 o'clock)
//
// Image coordinates have Y growing downward, so dy is negated before the
// atan2. The result is in (-180, 180]. A zero-length needle (center == tip)
// resolves to 0° by the atan2(0, 0) convention; Reader treats that case as
// a degenerate detection and skips it.
func ComputeAngle(center, tip Point) float64 {
	dx := tip.X - center.X
	dy := -(tip.Y - center.Y)
	angle := math.Atan2(dy, dx) * 180 / math.Pi
	// A tip exactly left of the center negates +0.0 to -0.0, and
	// atan2(-0, x<0) is -π. Fold that onto +180 to stay in (-180, 180].
	if angle == -180 {
		angle = 180
	}
	return angle
}
