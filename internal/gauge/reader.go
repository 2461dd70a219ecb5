package gauge

import (
	"fmt"
	"image"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/gauge-reader/internal/detect"
)

// DefaultMinKeypointConf is the minimum per-keypoint confidence required
// before a detection yields a Reading.
const DefaultMinKeypointConf = 0.3

// Reader converts keypoint detections into calibrated readings.
//
// The zero value is not usable; construct with NewReader. A Reader is
// stateless apart from its configuration and is safe for concurrent use.
type Reader struct {
	// Calibration is the angle-to-value mapping applied to every detection.
	Calibration Calibration

	// MinKeypointConf is the per-keypoint confidence threshold. Detections
	// where either keypoint falls below it are skipped.
	MinKeypointConf float64

	// Log receives skip diagnostics. Defaults to the standard logger.
	Log logrus.FieldLogger
}

// NewReader returns a Reader with the default keypoint confidence
// threshold.
func NewReader(cal Calibration) *Reader {
	return &Reader{
		Calibration:     cal,
		MinKeypointConf: DefaultMinKeypointConf,
	}
}

func (r *Reader) logger() logrus.FieldLogger {
	if r.Log != nil {
		return r.Log
	}
	return logrus.StandardLogger()
}

// Readings filters raw detections and assembles one Reading per detection
// that passes, preserving detector order.
//
// A detection is skipped, with a diagnostic log and a ReadStats count, when
// it has fewer than 2 keypoints, when either keypoint confidence is below
// MinKeypointConf, or when the center and needle tip coincide. Skips never
// affect other detections in the batch; an empty result is a valid,
// non-error outcome.
func (r *Reader) Readings(dets []detect.Detection) ([]Reading, ReadStats) {
	stats := ReadStats{Detections: len(dets)}
	readings := make([]Reading, 0, len(dets))

	for _, det := range dets {
		if len(det.Keypoints) < 2 {
			stats.SkippedFewKeypoints++
			r.logger().WithField("keypoints", len(det.Keypoints)).
				Warn("detection has fewer than 2 keypoints, skipping")
			continue
		}

		kpCenter := det.Keypoints[detect.KeypointCenter]
		kpTip := det.Keypoints[detect.KeypointNeedleTip]

		if kpCenter.Conf < r.MinKeypointConf || kpTip.Conf < r.MinKeypointConf {
			stats.SkippedLowConfidence++
			r.logger().WithFields(logrus.Fields{
				"center_conf": fmt.Sprintf("%.2f", kpCenter.Conf),
				"needle_conf": fmt.Sprintf("%.2f", kpTip.Conf),
			}).Warn("low keypoint confidence, skipping")
			continue
		}

		center := Point{X: kpCenter.X, Y: kpCenter.Y}
		tip := Point{X: kpTip.X, Y: kpTip.Y}

		if center == tip {
			stats.SkippedZeroLength++
			r.logger().WithFields(logrus.Fields{
				"x": center.X,
				"y": center.Y,
			}).Warn("center and needle tip coincide, skipping")
			continue
		}

		angle := ComputeAngle(center, tip)
		value := r.Calibration.AngleToValue(angle)

		readings = append(readings, Reading{
			Value:      math.Round(value*1000) / 1000,
			Angle:      math.Round(angle*100) / 100,
			Unit:       r.Calibration.Unit,
			BBox:       det.BBox,
			Center:     center,
			NeedleTip:  tip,
			Confidence: det.Conf,
			CenterConf: kpCenter.Conf,
			NeedleConf: kpTip.Conf,
		})
	}

	return readings, stats
}

// ReadImage runs the full pipeline: detect gauges in an image, then filter
// and map the detections to readings. Detector errors are returned as-is;
// an empty detection list is not an error.
func (r *Reader) ReadImage(d detect.Detector, img image.Image) ([]Reading, ReadStats, error) {
	dets, err := d.Detect(img)
	if err != nil {
		return nil, ReadStats{}, fmt.Errorf("detect: %w", err)
	}
	readings, stats := r.Readings(dets)
	return readings, stats, nil
}
