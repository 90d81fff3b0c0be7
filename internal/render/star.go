package render

import "math"

// StarVertices returns the eight vertices of a four-armed star centered on c,
// clockwise from the top. Tips sit size pixels from the center on the axes;
// notches sit at (size/3, size/3) on the diagonals. Coordinates are rounded to
// whole pixels so mirrored stars have identical vertex sets.
func StarVertices(c Point, size int) []Point {
	tip := float64(size)
	notch := float64(size/3) * math.Sqrt2
	pts := make([]Point, 0, 8)
	for i := 0; i < 8; i++ {
		r := tip
		if i%2 == 1 {
			r = notch
		}
		rad := (float64(i)*45 - 90) * math.Pi / 180
		pts = append(pts, Pt(
			c.X+math.Round(r*math.Cos(rad)),
			c.Y+math.Round(r*math.Sin(rad)),
		))
	}
	return pts
}
