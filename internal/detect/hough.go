package detect

import (
	"image"

	"github.com/sirupsen/logrus"
)

// HoughOptions configure the heuristic geometric detector.
type HoughOptions struct {
	// MinRadius and MaxRadius bound the dial radii searched, in pixels.
	// Narrow ranges are dramatically faster. Defaults: 20 and 300.
	MinRadius int
	MaxRadius int

	// MinConfidence is the floor on dial-circle confidence below which a
	// candidate is discarded. Default: 0.5.
	MinConfidence float64
}

func (o HoughOptions) withDefaults() HoughOptions {
	if o.MinRadius <= 0 {
		o.MinRadius = 20
	}
	if o.MaxRadius <= 0 {
		o.MaxRadius = 300
	}
	if o.MinConfidence <= 0 {
		o.MinConfidence = 0.5
	}
	return o
}

// Hough is a heuristic Detector that finds dial faces with a Hough circle
// transform and needles by radial edge scanning. It requires no trained
// model and is deterministic, which also makes it the reference detector
// for end-to-end tests.
type Hough struct {
	opts HoughOptions

	// Log receives per-image diagnostics. Defaults to the standard logger.
	Log logrus.FieldLogger
}

// NewHough returns a Hough detector with zero options replaced by
// defaults.
func NewHough(opts HoughOptions) *Hough {
	return &Hough{opts: opts.withDefaults()}
}

func (h *Hough) logger() logrus.FieldLogger {
	if h.Log != nil {
		return h.Log
	}
	return logrus.StandardLogger()
}

// Detect implements Detector.
//
// Each accepted dial circle becomes one Detection: the bounding box is the
// circle's enclosing square, keypoint 0 is the circle center, and keypoint
// 1 is the needle tip when one is found. Dials without a discernible
// needle are still reported, with a single keypoint, and are filtered
// downstream. An image with no dials yields an empty, non-error result.
func (h *Hough) Detect(img image.Image) ([]Detection, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	edges := edgeMap(img)
	dials := findDials(edges, width, height, h.opts.MinRadius, h.opts.MaxRadius)

	dets := make([]Detection, 0, len(dials))
	for _, d := range dials {
		if d.conf < h.opts.MinConfidence {
			continue
		}

		keypoints := []Keypoint{{
			X:    float64(d.cx + bounds.Min.X),
			Y:    float64(d.cy + bounds.Min.Y),
			Conf: d.conf,
		}}

		if tip, ok := findNeedle(edges, d); ok {
			tip.X += float64(bounds.Min.X)
			tip.Y += float64(bounds.Min.Y)
			keypoints = append(keypoints, tip)
		} else {
			h.logger().WithFields(logrus.Fields{
				"cx":     d.cx,
				"cy":     d.cy,
				"radius": d.radius,
			}).Debug("dial without discernible needle")
		}

		dets = append(dets, Detection{
			BBox: BBox{
				X1: float64(d.cx - d.radius + bounds.Min.X),
				Y1: float64(d.cy - d.radius + bounds.Min.Y),
				X2: float64(d.cx + d.radius + bounds.Min.X),
				Y2: float64(d.cy + d.radius + bounds.Min.Y),
			},
			Keypoints: keypoints,
			Conf:      d.conf,
		})
	}

	h.logger().WithFields(logrus.Fields{
		"dials":      len(dials),
		"detections": len(dets),
	}).Debug("hough detection complete")

	return dets, nil
}
