//go:build !cgo

package ocr

import (
	"errors"
	"image"

	"github.com/ironsheep/gauge-reader/internal/detect"
)

// ErrUnavailable is returned when the binary was built without CGO and
// therefore without Tesseract bindings.
var ErrUnavailable = errors.New("ocr support not compiled in (requires cgo and tesseract)")

// UnitFromDial is a stub for non-CGO builds.
func UnitFromDial(image.Image, detect.BBox, string) (string, error) {
	return "", ErrUnavailable
}

// Available reports whether this binary was built with OCR support.
func Available() bool { return false }
