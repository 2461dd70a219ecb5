package detect

import "math"

// Radial sampling window for needle scanning, as fractions of the dial
// radius. The inner cutoff skips the hub; the outer cutoff stays clear of
// the rim and tick marks.
const (
	needleInnerFraction = 0.15
	needleOuterFraction = 0.85
)

// needleMinCoverage is the minimum fraction of sampled radial positions
// that must be edge pixels for a direction to count as a needle.
const needleMinCoverage = 0.35

// findNeedle locates the needle tip for a dial.
//
// It scans 360 rays from the dial center and measures edge density along
// each within the radial sampling window. The needle is the densest ray;
// the tip is the outermost edge pixel on it. The returned keypoint
// confidence is that ray's edge coverage, capped at 1.0.
//
// Returns ok=false when no direction reaches needleMinCoverage, i.e. the
// dial appears to have no needle (or the image is too degraded to tell).
func findNeedle(edges [][]bool, d dial) (Keypoint, bool) {
	height := len(edges)
	if height == 0 {
		return Keypoint{}, false
	}
	width := len(edges[0])

	rInner := float64(d.radius) * needleInnerFraction
	rOuter := float64(d.radius) * needleOuterFraction

	var (
		bestCoverage float64
		bestTipX     float64
		bestTipY     float64
		found        bool
	)

	for angle := 0; angle < 360; angle++ {
		rad := float64(angle) * math.Pi / 180
		dirX := math.Cos(rad)
		dirY := math.Sin(rad)

		hits := 0
		samples := 0
		tipX, tipY := -1.0, -1.0

		for r := rInner; r <= rOuter; r++ {
			x := d.cx + int(dirX*r)
			y := d.cy + int(dirY*r)
			if x < 0 || x >= width || y < 0 || y >= height {
				break
			}
			samples++
			if edges[y][x] {
				hits++
				tipX = float64(d.cx) + dirX*r
				tipY = float64(d.cy) + dirY*r
			}
		}

		if samples == 0 || tipX < 0 {
			continue
		}

		coverage := float64(hits) / float64(samples)
		if coverage > bestCoverage {
			bestCoverage = coverage
			bestTipX = tipX
			bestTipY = tipY
			found = true
		}
	}

	if !found || bestCoverage < needleMinCoverage {
		return Keypoint{}, false
	}

	return Keypoint{
		X:    bestTipX,
		Y:    bestTipY,
		Conf: math.Min(bestCoverage, 1.0),
	}, true
}
