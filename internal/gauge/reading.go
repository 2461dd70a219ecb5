package gauge

import "github.com/ironsheep/gauge-reader/internal/detect"

// Reading is the calibrated output for one detected gauge in one frame.
//
// A Reading is only constructed when both keypoint confidences meet the
// reader's threshold. It carries the source geometry and confidences as
// diagnostic metadata and has no lifecycle beyond the call that produced it.
type Reading struct {
	// Value is the calibrated reading, clamped to the calibration's value
	// range and rounded to 3 decimal places.
	Value float64 `json:"value"`

	// Angle is the raw needle angle in degrees, standard math convention,
	// rounded to 2 decimal places.
	Angle float64 `json:"angle"`

	// Unit is the calibration's unit label, e.g. "kg/cm2".
	Unit string `json:"unit"`

	// BBox is the detector-reported bounding box of the gauge.
	BBox detect.BBox `json:"bbox"`

	// Center and NeedleTip are the keypoint locations in image coordinates.
	Center    Point `json:"center"`
	NeedleTip Point `json:"needle_tip"`

	// Confidence is the overall detection confidence.
	Confidence float64 `json:"confidence"`

	// CenterConf and NeedleConf are the per-keypoint confidences.
	CenterConf float64 `json:"center_conf"`
	NeedleConf float64 `json:"needle_conf"`
}

// ReadStats counts per-frame filtering outcomes. Skips are diagnostics,
// not errors; they never abort processing of other detections.
type ReadStats struct {
	// Detections is the number of raw detections examined.
	Detections int `json:"detections"`

	// SkippedFewKeypoints counts detections with fewer than 2 keypoints.
	SkippedFewKeypoints int `json:"skipped_few_keypoints"`

	// SkippedLowConfidence counts detections where either keypoint fell
	// below the confidence threshold.
	SkippedLowConfidence int `json:"skipped_low_confidence"`

	// SkippedZeroLength counts detections whose center and needle tip
	// coincide, leaving no needle direction to measure.
	SkippedZeroLength int `json:"skipped_zero_length"`
}
