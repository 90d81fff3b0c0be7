package render

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIcon(t *testing.T) {
	img, err := RenderIcon()
	require.NoError(t, err)
	require.Equal(t, CanvasSize, img.Bounds().Dx())
	require.Equal(t, CanvasSize, img.Bounds().Dy())

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"top-left corner", 0, 0, Background},
		{"bottom-right corner", CanvasSize - 1, CanvasSize - 1, Background},
		{"gradient near top", Center, 20, IconGradient.At(20, CanvasSize)},
		{"gradient near bottom", Center, 1000, IconGradient.At(1000, CanvasSize)},
		{"badge interior", Center, 160, Background},
		{"badge ring", Center, 140, BadgeRing},
		{"dome", Center, 500, Emerald},
		{"crescent", Center, 219, Amber},
		{"left minaret cap", Center - 200, 382, Amber},
		{"right minaret body", Center + 200, 500, Emerald},
		{"building", 400, 700, Emerald},
		{"door", Center, 700, DeepGreen},
		{"star", 262, 262, StarGold},
		{"star", 762, 762, StarGold},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, img.RGBAAt(tt.x, tt.y), "%s at (%d,%d)", tt.name, tt.x, tt.y)
	}
}

func TestRenderIconCornersMasked(t *testing.T) {
	img, err := RenderIcon()
	require.NoError(t, err)

	r := float64(CornerRadius)
	for y := 0; y < CornerRadius; y++ {
		for x := 0; x < CornerRadius; x++ {
			d := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r)
			got := img.RGBAAt(x, y)
			switch {
			case d > r+1:
				if got != Background {
					t.Fatalf("pixel (%d,%d) outside the rounded corner: expected white, got %v", x, y, got)
				}
			case d < r-1:
				if want := IconGradient.At(y, CanvasSize); got != want {
					t.Fatalf("pixel (%d,%d) inside the rounded corner: expected %v, got %v", x, y, want, got)
				}
			}
		}
	}
}

func TestRenderIconDeterministic(t *testing.T) {
	a, err := RenderIcon()
	require.NoError(t, err)
	b, err := RenderIcon()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a.Pix, b.Pix), "two renders differ")
}

func TestMotifOrder(t *testing.T) {
	var names []string
	for _, s := range Motif() {
		switch v := s.(type) {
		case Ellipse:
			names = append(names, v.Name)
		case Rect:
			names = append(names, v.Name)
		case Arc:
			names = append(names, v.Name)
		case Polygon:
			names = append(names, v.Name)
		}
	}
	assert.Equal(t, []string{
		"badge", "dome", "crescent",
		"left minaret", "left minaret cap",
		"right minaret", "right minaret cap",
		"building", "door", "door arch",
		"star 1", "star 2", "star 3", "star 4",
	}, names)
}
