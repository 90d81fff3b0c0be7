package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// Canvas is an opaque RGB raster that shapes are painted onto back to front.
type Canvas struct {
	img    *image.RGBA
	raster *vector.Rasterizer
}

// NewCanvas allocates a size×size canvas filled with bg.
func NewCanvas(size int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	return &Canvas{img: img, raster: vector.NewRasterizer(size, size)}
}

// Image returns the backing raster.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Size returns the canvas edge length in pixels.
func (c *Canvas) Size() int { return c.img.Bounds().Dx() }

// FillRow paints the whole row y with col in a single draw call.
func (c *Canvas) FillRow(y int, col color.Color) {
	row := image.Rect(0, y, c.img.Bounds().Dx(), y+1)
	draw.Draw(c.img, row, &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// Composite draws src over the canvas wherever mask is opaque.
func (c *Canvas) Composite(src image.Image, mask image.Image) {
	draw.DrawMask(c.img, c.img.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

// fillPolygon rasterizes the closed polygon through pts with anti-aliasing.
func (c *Canvas) fillPolygon(pts []Point, col color.Color) {
	if len(pts) < 3 || col == nil {
		return
	}
	b := c.img.Bounds()
	c.raster.Reset(b.Dx(), b.Dy())
	c.raster.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.raster.LineTo(float32(p.X), float32(p.Y))
	}
	c.raster.ClosePath()
	c.raster.DrawOp = draw.Over
	c.raster.Draw(c.img, b, &image.Uniform{C: col}, image.Point{})
}
