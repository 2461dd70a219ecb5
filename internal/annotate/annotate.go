// Package annotate renders gauge readings onto a copy of the source
// frame: bounding box, keypoint markers, needle line, and a value label.
// Rendering is presentation-only; it never alters the readings.
package annotate

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/gauge-reader/internal/gauge"
)

// Options select which overlay elements are drawn.
type Options struct {
	ShowKeypoints bool `json:"show_keypoints" yaml:"show_keypoints"`
	ShowAngle     bool `json:"show_angle" yaml:"show_angle"`
	ShowBBox      bool `json:"show_bbox" yaml:"show_bbox"`
}

// DefaultOptions enables every overlay element.
func DefaultOptions() Options {
	return Options{ShowKeypoints: true, ShowAngle: true, ShowBBox: true}
}

// goldenAngle spaces overlay hues so consecutive gauges get visually
// distinct colors.
const goldenAngle = 137.0

var (
	centerFill = color.NRGBA{R: 0, G: 90, B: 255, A: 255}
	tipFill    = color.NRGBA{R: 230, G: 40, B: 40, A: 255}
	markerRing = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelFg    = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	labelBg    = color.NRGBA{R: 0, G: 0, B: 0, A: 200}
	captionFg  = color.NRGBA{R: 210, G: 210, B: 210, A: 255}
)

// Draw returns an annotated copy of the frame. The input image is never
// modified. Per-gauge accent colors are generated on a golden-angle hue
// walk so multiple dials in one frame stay distinguishable.
func Draw(img image.Image, readings []gauge.Reading, opts Options) *image.NRGBA {
	out := imaging.Clone(img)

	for i, reading := range readings {
		accent := colorful.Hsv(math.Mod(float64(i)*goldenAngle, 360), 0.85, 0.95)

		x1 := int(reading.BBox.X1)
		y1 := int(reading.BBox.Y1)
		x2 := int(reading.BBox.X2)
		y2 := int(reading.BBox.Y2)

		if opts.ShowBBox {
			drawRect(out, x1, y1, x2, y2, accent, 2)
		}

		if opts.ShowKeypoints {
			center := image.Pt(int(reading.Center.X), int(reading.Center.Y))
			tip := image.Pt(int(reading.NeedleTip.X), int(reading.NeedleTip.Y))

			drawLine(out, center, tip, accent, 2)
			drawMarker(out, center, centerFill)
			drawMarker(out, tip, tipFill)
		}

		label := fmt.Sprintf("%.3f %s", reading.Value, reading.Unit)
		drawLabel(out, x1, y1-18, label, labelFg, labelBg)

		if opts.ShowAngle {
			caption := fmt.Sprintf("angle: %.2f  conf: %.2f", reading.Angle, reading.Confidence)
			drawLabel(out, x1, y2+6, caption, captionFg, labelBg)
		}
	}

	return out
}

// drawRect draws an axis-aligned rectangle outline with the given stroke
// thickness. Pixels outside the image are silently skipped.
func drawRect(img *image.NRGBA, x1, y1, x2, y2 int, c color.Color, thickness int) {
	for t := 0; t < thickness; t++ {
		for x := x1; x <= x2; x++ {
			setPixel(img, x, y1+t, c)
			setPixel(img, x, y2-t, c)
		}
		for y := y1; y <= y2; y++ {
			setPixel(img, x1+t, y, c)
			setPixel(img, x2-t, y, c)
		}
	}
}

// drawLine draws a straight line by sampling along the segment at
// half-pixel steps.
func drawLine(img *image.NRGBA, a, b image.Point, c color.Color, thickness int) {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		setPixel(img, a.X, a.Y, c)
		return
	}

	steps := int(length * 2)
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := a.X + int(dx*t)
		y := a.Y + int(dy*t)
		for ox := 0; ox < thickness; ox++ {
			for oy := 0; oy < thickness; oy++ {
				setPixel(img, x+ox, y+oy, c)
			}
		}
	}
}

// drawMarker draws a filled keypoint disc with a white ring around it.
func drawMarker(img *image.NRGBA, p image.Point, fill color.Color) {
	const (
		fillRadius = 5
		ringRadius = 7
	)
	for dy := -ringRadius; dy <= ringRadius; dy++ {
		for dx := -ringRadius; dx <= ringRadius; dx++ {
			dist := math.Hypot(float64(dx), float64(dy))
			switch {
			case dist <= fillRadius:
				setPixel(img, p.X+dx, p.Y+dy, fill)
			case dist <= ringRadius:
				setPixel(img, p.X+dx, p.Y+dy, markerRing)
			}
		}
	}
}

// drawLabel draws text with a dark backing box so it stays readable over
// arbitrary frame content. Positions partially outside the image are
// clipped rather than rejected.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Height.Ceil()

	for dy := -2; dy < height+2; dy++ {
		for dx := -3; dx < width+3; dx++ {
			setPixel(img, x+dx, y+dy, bg)
		}
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

func setPixel(img *image.NRGBA, x, y int, c color.Color) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}
