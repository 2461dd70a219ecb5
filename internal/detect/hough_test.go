package detect

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// createTestImage creates a solid color test image
func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// drawCircleOutline draws a circle outline using the midpoint algorithm
func drawCircleOutline(img *image.RGBA, cx, cy, radius int, c color.Color) {
	x := radius
	y := 0
	err := 0

	for x >= y {
		img.Set(cx+x, cy+y, c)
		img.Set(cx+y, cy+x, c)
		img.Set(cx-y, cy+x, c)
		img.Set(cx-x, cy+y, c)
		img.Set(cx-x, cy-y, c)
		img.Set(cx-y, cy-x, c)
		img.Set(cx+y, cy-x, c)
		img.Set(cx+x, cy-y, c)

		if err <= 0 {
			y += 1
			err += 2*y + 1
		}
		if err > 0 {
			x -= 1
			err -= 2*x + 1
		}
	}
}

// drawGauge draws a dial face (3px rim) with a needle from the center at
// the given image-space angle (degrees, y down), reaching 0.8 * radius.
func drawGauge(width, height, cx, cy, radius int, needleImageAngle float64) *image.RGBA {
	img := createTestImage(width, height, color.White)

	for _, r := range []int{radius - 1, radius, radius + 1} {
		drawCircleOutline(img, cx, cy, r, color.Black)
	}

	rad := needleImageAngle * math.Pi / 180
	length := 0.8 * float64(radius)
	for t := 0.0; t <= length; t += 0.5 {
		x := cx + int(math.Cos(rad)*t)
		y := cy + int(math.Sin(rad)*t)
		img.Set(x, y, color.Black)
		img.Set(x+1, y, color.Black)
		img.Set(x, y+1, color.Black)
	}

	return img
}

func TestEdgeMap(t *testing.T) {
	img := createTestImage(60, 60, color.White)
	for y := 5; y < 55; y++ {
		img.Set(30, y, color.Black)
	}

	edges := edgeMap(img)

	foundNearLine := false
	for y := 20; y < 40; y++ {
		for x := 26; x <= 34; x++ {
			if edges[y][x] {
				foundNearLine = true
			}
		}
	}
	if !foundNearLine {
		t.Error("expected edge pixels near the drawn line")
	}

	for y := 20; y < 40; y++ {
		for x := 45; x < 55; x++ {
			if edges[y][x] {
				t.Fatalf("unexpected edge pixel in flat region at (%d,%d)", x, y)
			}
		}
	}
}

func TestHoughDetectFindsDialAndNeedle(t *testing.T) {
	const (
		cx, cy = 60, 60
		radius = 25
	)
	// Needle pointing up-right in image space: math angle 45°.
	img := drawGauge(120, 120, cx, cy, radius, -45)

	h := NewHough(HoughOptions{MinRadius: 20, MaxRadius: 30})
	dets, err := h.Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(dets) == 0 {
		t.Fatal("expected at least one detection")
	}

	det := dets[0]
	if len(det.Keypoints) < 2 {
		t.Fatalf("expected center and needle keypoints, got %d", len(det.Keypoints))
	}

	center := det.Keypoints[KeypointCenter]
	if math.Abs(center.X-cx) > 6 || math.Abs(center.Y-cy) > 6 {
		t.Errorf("center (%.1f, %.1f) too far from (%d, %d)", center.X, center.Y, cx, cy)
	}
	if center.Conf <= 0 || center.Conf > 1 {
		t.Errorf("center confidence %v outside (0, 1]", center.Conf)
	}

	tip := det.Keypoints[KeypointNeedleTip]
	gotAngle := math.Atan2(-(tip.Y-center.Y), tip.X-center.X) * 180 / math.Pi
	if math.Abs(gotAngle-45) > 15 {
		t.Errorf("needle angle %.1f° too far from 45°", gotAngle)
	}
	if tip.Conf < needleMinCoverage {
		t.Errorf("needle confidence %v below scan threshold", tip.Conf)
	}

	// Bounding box should enclose the dial, within the same tolerance as
	// the center check: the pre-blur can shrink the detected radius by a
	// few pixels.
	if det.BBox.X1 > float64(cx-radius+6) || det.BBox.X2 < float64(cx+radius-6) {
		t.Errorf("bbox %+v does not enclose the dial horizontally", det.BBox)
	}
	if det.BBox.Width() <= 0 || det.BBox.Height() <= 0 {
		t.Errorf("degenerate bbox: %+v", det.BBox)
	}
}

func TestHoughDetectEmptyImage(t *testing.T) {
	img := createTestImage(80, 80, color.White)

	h := NewHough(HoughOptions{MinRadius: 10, MaxRadius: 20})
	dets, err := h.Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(dets) != 0 {
		t.Errorf("expected no detections on a blank image, got %d", len(dets))
	}
}

func TestHoughOptionsDefaults(t *testing.T) {
	opts := HoughOptions{}.withDefaults()
	if opts.MinRadius != 20 || opts.MaxRadius != 300 {
		t.Errorf("unexpected default radii: %+v", opts)
	}
	if opts.MinConfidence != 0.5 {
		t.Errorf("unexpected default confidence: %v", opts.MinConfidence)
	}
}

func TestStaticDetector(t *testing.T) {
	want := []Detection{{Conf: 0.7}}
	s := Static{Detections: want}

	got, err := s.Detect(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if err != nil {
		t.Fatalf("Static.Detect failed: %v", err)
	}
	if len(got) != 1 || got[0].Conf != 0.7 {
		t.Errorf("Static.Detect returned %+v, want %+v", got, want)
	}
}
