// Package gauge maps detected needle keypoints to calibrated analog
// gauge readings.
//
// The package is the pure core of the reader: given a Calibration (value
// range, angle range, unit) and a list of keypoint detections, it computes
// the needle angle and interpolates it to a physical value. It performs no
// I/O and holds no process-wide state; a Reader is safe for concurrent use.
//
// # Coordinate and Angle Conventions
//
// Keypoints arrive in image pixel coordinates (origin top-left, Y grows
// downward). Angles are reported in standard mathematical convention:
// 0° = right (3 o'clock), 90° = up (12 o'clock), measured counter-clockwise.
// ComputeAngle flips the Y axis to convert between the two.
//
// # Sweep Model
//
// Calibration assumes the needle travels clockwise from the min-value
// position to the max-value position, which is how almost all physical
// gauges are laid out. All angles are normalized to [0, 360) and the
// interpolation works on clockwise angular distances, so sweeps that cross
// the 0°/360° boundary (e.g. 225° down through 0° to 315°) need no special
// casing. Counter-clockwise gauges are not supported; they produce an
// inverted, clamped reading.
package gauge
