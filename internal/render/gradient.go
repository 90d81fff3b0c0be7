package render

import "image/color"

// LinearGradient is a vertical two-stop gradient.
type LinearGradient struct {
	Top    color.RGBA
	Bottom color.RGBA
}

// At returns the color of row y on a canvas of the given height. Each
// channel is top + (bottom-top)*(y/height), truncated toward zero.
func (g LinearGradient) At(y, height int) color.RGBA {
	t := float64(y) / float64(height)
	return color.RGBA{
		R: lerpChannel(g.Top.R, g.Bottom.R, t),
		G: lerpChannel(g.Top.G, g.Bottom.G, t),
		B: lerpChannel(g.Top.B, g.Bottom.B, t),
		A: 0xFF,
	}
}

// Paint fills c one row at a time.
func (g LinearGradient) Paint(c *Canvas) {
	size := c.Size()
	for y := 0; y < size; y++ {
		c.FillRow(y, g.At(y, size))
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
