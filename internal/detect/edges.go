package detect

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
)

// edgeBlurRadius is the Gaussian radius applied before gradient
// thresholding. Sigma ≈ 1.4 matches a conventional Canny pre-blur.
const edgeBlurRadius = 1.4

// edgeThreshold is the minimum 8-bit grayscale gradient for a pixel to
// count as an edge.
const edgeThreshold = 30.0

// edgeMap computes a binary edge map of the image.
//
// The image is Gaussian-blurred to suppress sensor noise, then a simple
// gradient threshold marks pixels whose horizontal or vertical luminance
// difference exceeds edgeThreshold. Border pixels are never edges.
func edgeMap(img image.Image) [][]bool {
	blurred := blur.Gaussian(img, edgeBlurRadius)
	bounds := blurred.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	edges := make([][]bool, height)
	for y := 0; y < height; y++ {
		edges[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				continue
			}

			c := grayValue(blurred, x+bounds.Min.X, y+bounds.Min.Y)
			cx := grayValue(blurred, x+1+bounds.Min.X, y+bounds.Min.Y)
			cy := grayValue(blurred, x+bounds.Min.X, y+1+bounds.Min.Y)

			dx := math.Abs(float64(c) - float64(cx))
			dy := math.Abs(float64(c) - float64(cy))

			if dx > edgeThreshold || dy > edgeThreshold {
				edges[y][x] = true
			}
		}
	}

	return edges
}

// grayValue converts a pixel to grayscale using ITU-R BT.601 luminance
// weights: Y = 0.299*R + 0.587*G + 0.114*B.
func grayValue(img image.Image, x, y int) uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(float64(r>>8)*0.299 + float64(g>>8)*0.587 + float64(b>>8)*0.114)
}
