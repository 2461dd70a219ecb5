package detect

import "image"

// Keypoint indices within a Detection. The detector contract fixes the
// ordering: index 0 is the gauge center, index 1 is the needle tip.
const (
	KeypointCenter    = 0
	KeypointNeedleTip = 1
)

// Keypoint is a detector-reported landmark: a 2D image location with a
// confidence in [0, 1].
type Keypoint struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Conf float64 `json:"conf"`
}

// BBox is an axis-aligned bounding box in pixel coordinates, (X1, Y1)
// top-left and (X2, Y2) bottom-right.
type BBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Width returns X2 - X1.
func (b BBox) Width() float64 { return b.X2 - b.X1 }

// Height returns Y2 - Y1.
func (b BBox) Height() float64 { return b.Y2 - b.Y1 }

// Detection is one candidate gauge instance reported by a Detector.
//
// Keypoints follow the fixed ordering contract (KeypointCenter,
// KeypointNeedleTip). Conf is the overall detection confidence in [0, 1].
// A Detection is immutable once produced.
type Detection struct {
	BBox      BBox       `json:"bbox"`
	Keypoints []Keypoint `json:"keypoints"`
	Conf      float64    `json:"conf"`
}

// Detector produces gauge detections from an image.
//
// Implementations must emit keypoints in the fixed order (center, needle
// tip) with confidences normalized to [0, 1]. Any implementation honoring
// that contract is a valid substitute: a pose-estimation model wrapper,
// the heuristic Hough detector in this package, or a Static stub in tests.
// An empty detection list is a valid, non-error outcome.
type Detector interface {
	Detect(img image.Image) ([]Detection, error)
}

// Static is a Detector that returns a fixed detection list, for tests and
// replay of recorded detector output.
type Static struct {
	Detections []Detection
	Err        error
}

// Detect returns the configured detections (or error) regardless of input.
func (s Static) Detect(image.Image) ([]Detection, error) {
	return s.Detections, s.Err
}
