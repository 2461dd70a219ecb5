package gauge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAngleCardinalDirections(t *testing.T) {
	center := Point{X: 100, Y: 100}

	tests := []struct {
		name string
		tip  Point
		want float64
	}{
		{"right", Point{X: 150, Y: 100}, 0},
		{"up", Point{X: 100, Y: 50}, 90},
		{"left", Point{X: 50, Y: 100}, 180},
		{"down", Point{X: 100, Y: 150}, -90},
		{"upper-right diagonal", Point{X: 150, Y: 50}, 45},
		{"lower-left diagonal", Point{X: 50, Y: 150}, -135},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeAngle(center, tt.tip), 1e-9)
		})
	}
}

func TestComputeAngleRange(t *testing.T) {
	center := Point{X: 0, Y: 0}
	for _, tip := range []Point{{1, 0}, {3, -4}, {-2, -2}, {-5, 0}, {0, 7}, {4, 4}} {
		a := ComputeAngle(center, tip)
		assert.Greater(t, a, -180.0)
		assert.LessOrEqual(t, a, 180.0)
	}
}

func TestComputeAngleZeroLengthNeedle(t *testing.T) {
	p := Point{X: 42, Y: 42}
	// atan2(0, 0) convention; Reader filters this case before it matters.
	assert.Equal(t, 0.0, ComputeAngle(p, p))
}
