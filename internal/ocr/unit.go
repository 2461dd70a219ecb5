//go:build cgo

package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/gauge-reader/internal/detect"
)

// UnitFromDial performs OCR on the dial region of an image and returns
// the unit label printed on the face, canonicalized (e.g. "kg/cm2").
//
// The bbox is clamped to the image bounds before cropping. The crop is
// upscaled 2x so small dial text stays legible to Tesseract, saved to a
// temporary PNG (Tesseract wants a file path), and scanned for a token
// that looks like a unit. Returns "" with a nil error when the dial text
// contains no recognizable unit.
func UnitFromDial(img image.Image, bbox detect.BBox, language string) (string, error) {
	bounds := img.Bounds()

	x1 := clampInt(int(bbox.X1), bounds.Min.X, bounds.Max.X)
	y1 := clampInt(int(bbox.Y1), bounds.Min.Y, bounds.Max.Y)
	x2 := clampInt(int(bbox.X2), bounds.Min.X, bounds.Max.X)
	y2 := clampInt(int(bbox.Y2), bounds.Min.Y, bounds.Max.Y)
	if x1 >= x2 || y1 >= y2 {
		return "", fmt.Errorf("empty dial region (%d,%d)-(%d,%d)", x1, y1, x2, y2)
	}

	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))
	scaled := imaging.Resize(cropped, cropped.Bounds().Dx()*2, 0, imaging.Lanczos)

	tmpFile, err := os.CreateTemp("", "gauge-dial-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, scaled); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	tmpFile.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(tmpPath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return pickUnitToken(text), nil
}

// Available reports whether this binary was built with OCR support.
func Available() bool { return true }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
