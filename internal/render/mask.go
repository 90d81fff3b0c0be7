package render

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// RoundedRectMask returns a size×size alpha mask that is opaque inside a
// rounded rectangle covering the whole area and transparent in the corners.
func RoundedRectMask(size int, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	pts := roundedRectPolygon(Box{Max: Pt(float64(size), float64(size))}, radius)

	z := vector.NewRasterizer(size, size)
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.DrawOp = draw.Src
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// InsideRoundedRect reports whether the pixel center (x+.5, y+.5) lies
// within the rounded rectangle that RoundedRectMask rasterizes.
func InsideRoundedRect(size int, radius float64, x, y int) bool {
	px, py := float64(x)+0.5, float64(y)+0.5
	s := float64(size)
	cx := clampf(px, radius, s-radius)
	cy := clampf(py, radius, s-radius)
	dx, dy := px-cx, py-cy
	return px >= 0 && py >= 0 && px <= s && py <= s && dx*dx+dy*dy <= radius*radius
}

func roundedRectPolygon(b Box, r float64) []Point {
	if limit := min(b.Dx(), b.Dy()) / 2; r > limit {
		r = limit
	}
	corners := []struct {
		box   Box
		start float64
	}{
		{Box{Min: Pt(b.Max.X-2*r, b.Min.Y), Max: Pt(b.Max.X, b.Min.Y+2*r)}, 270},
		{Box{Min: Pt(b.Max.X-2*r, b.Max.Y-2*r), Max: b.Max}, 0},
		{Box{Min: Pt(b.Min.X, b.Max.Y-2*r), Max: Pt(b.Min.X+2*r, b.Max.Y)}, 90},
		{Box{Min: b.Min, Max: Pt(b.Min.X+2*r, b.Min.Y+2*r)}, 180},
	}
	var pts []Point
	for _, c := range corners {
		pts = append(pts, arcPoints(c.box, c.start, c.start+90)...)
	}
	return pts
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
