package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundedRectMask(t *testing.T) {
	const size, radius = 200, 40.0
	mask := RoundedRectMask(size, radius)

	assert.Equal(t, size, mask.Bounds().Dx())
	for _, p := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}, {5, 5}} {
		assert.Equal(t, uint8(0), mask.AlphaAt(p[0], p[1]).A, "corner %v", p)
	}
	for _, p := range [][2]int{{size / 2, size / 2}, {size / 2, 0}, {0, size / 2}, {radius, radius}} {
		assert.Equal(t, uint8(0xFF), mask.AlphaAt(p[0], p[1]).A, "inside %v", p)
	}
}

func TestInsideRoundedRect(t *testing.T) {
	assert.False(t, InsideRoundedRect(1024, 180, 0, 0))
	assert.False(t, InsideRoundedRect(1024, 180, 1023, 1023))
	assert.True(t, InsideRoundedRect(1024, 180, 512, 0))
	assert.True(t, InsideRoundedRect(1024, 180, 180, 180))
	assert.True(t, InsideRoundedRect(1024, 180, 60, 60))
}

func TestRoundedRectMaskMatchesGeometry(t *testing.T) {
	const size, radius = 256, 60.0
	mask := RoundedRectMask(size, radius)
	for y := 0; y < int(radius); y++ {
		for x := 0; x < int(radius); x++ {
			d := math.Hypot(float64(x)+0.5-radius, float64(y)+0.5-radius)
			a := mask.AlphaAt(x, y).A
			switch {
			case d > radius+1:
				assert.Equal(t, uint8(0), a, "pixel (%d,%d) outside", x, y)
			case d < radius-1:
				assert.Equal(t, uint8(0xFF), a, "pixel (%d,%d) inside", x, y)
			}
		}
	}
}
