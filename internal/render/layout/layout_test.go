package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInset(t *testing.T) {
	assert.Equal(t, image.Rect(10, 10, 90, 40), Inset(image.Rect(0, 0, 100, 50), 10))
	assert.Equal(t, image.Rect(0, 0, 100, 50), Inset(image.Rect(0, 0, 100, 50), 0))
	// over-inset flips and is normalized
	assert.Equal(t, image.Rect(4, 4, 6, 6), Inset(image.Rect(0, 0, 10, 10), 6))
}

func TestSplitHorizontal(t *testing.T) {
	top, bottom := SplitHorizontal(image.Rect(0, 0, 100, 100), 30)
	assert.Equal(t, image.Rect(0, 0, 100, 70), top)
	assert.Equal(t, image.Rect(0, 70, 100, 100), bottom)

	top, bottom = SplitHorizontal(image.Rect(0, 0, 100, 100), 500)
	assert.True(t, top.Empty())
	assert.Equal(t, image.Rect(0, 0, 100, 100), bottom)
}

func TestGrid2x2(t *testing.T) {
	g := Grid2x2(image.Rect(0, 0, 200, 100))
	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 0, 100, 50),
		image.Rect(100, 0, 200, 50),
		image.Rect(0, 50, 100, 100),
		image.Rect(100, 50, 200, 100),
	}, g.Cells())
}

func TestFit(t *testing.T) {
	assert.Equal(t, image.Rect(50, 0, 150, 100), Fit(image.Rect(0, 0, 200, 100), image.Rect(0, 0, 10, 10)))
	assert.Equal(t, image.Rect(0, 25, 100, 75), Fit(image.Rect(0, 0, 100, 100), image.Rect(0, 0, 40, 20)))
	assert.True(t, Fit(image.Rect(0, 0, 100, 100), image.Rectangle{}).Empty())
}
