package detect

import (
	"math"
	"sort"
)

// dial is a candidate circular dial face found in the edge map.
type dial struct {
	cx, cy int
	radius int
	conf   float64
}

// findDials locates circular dial faces using a Hough circle transform.
//
// For each candidate radius, every edge pixel votes for potential centers
// on a circle around itself (every 10°). Accumulator cells that are local
// maxima and collect at least ~60% of the votes an ideal circle would cast
// become dial candidates. Overlapping candidates are merged, keeping the
// highest-confidence one, and the result is sorted by confidence.
//
// Confidence is votes / (2 * radius), capped at 1.0: the fraction of the
// circumference whose edge pixels agreed on this center.
func findDials(edges [][]bool, width, height, minRadius, maxRadius int) []dial {
	candidates := make([]dial, 0)

	for radius := minRadius; radius <= maxRadius; radius++ {
		accumulator := make([][]int, height)
		for y := 0; y < height; y++ {
			accumulator[y] = make([]int, width)
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if !edges[y][x] {
					continue
				}
				for angle := 0; angle < 360; angle += 10 {
					rad := float64(angle) * math.Pi / 180
					cx := x - int(float64(radius)*math.Cos(rad))
					cy := y - int(float64(radius)*math.Sin(rad))
					if cx >= 0 && cx < width && cy >= 0 && cy < height {
						accumulator[cy][cx]++
					}
				}
			}
		}

		threshold := int(float64(2*radius) * 0.6)
		for y := radius; y < height-radius; y++ {
			for x := radius; x < width-radius; x++ {
				if accumulator[y][x] < threshold {
					continue
				}

				isMax := true
				for dy := -5; dy <= 5 && isMax; dy++ {
					for dx := -5; dx <= 5 && isMax; dx++ {
						if dy == 0 && dx == 0 {
							continue
						}
						ny, nx := y+dy, x+dx
						if ny >= 0 && ny < height && nx >= 0 && nx < width {
							if accumulator[ny][nx] > accumulator[y][x] {
								isMax = false
							}
						}
					}
				}

				if isMax {
					conf := float64(accumulator[y][x]) / float64(2*radius)
					candidates = append(candidates, dial{
						cx:     x,
						cy:     y,
						radius: radius,
						conf:   math.Min(conf, 1.0),
					})
				}
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].conf > candidates[j].conf
	})

	return mergeDials(candidates)
}

// mergeDials removes candidates whose centers overlap an already-kept
// dial. Input must be sorted by confidence descending so the strongest
// candidate of each cluster survives.
func mergeDials(candidates []dial) []dial {
	if len(candidates) == 0 {
		return candidates
	}

	kept := make([]dial, 0)
	for _, c := range candidates {
		duplicate := false
		for _, k := range kept {
			dx := float64(c.cx - k.cx)
			dy := float64(c.cy - k.cy)
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < float64(c.radius+k.radius)/2 {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, c)
		}
	}
	return kept
}
