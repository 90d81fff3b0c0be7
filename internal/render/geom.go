package render

import (
	"fmt"
	"math"
)

// Point is a canvas position in pixels. Y grows downward.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Box is an axis-aligned bounding box given by two corners.
type Box struct {
	Min, Max Point
}

// BoxAround returns the box centered on c extending rx and ry on each side.
func BoxAround(c Point, rx, ry float64) Box {
	return Box{Min: Pt(c.X-rx, c.Y-ry), Max: Pt(c.X+rx, c.Y+ry)}
}

func (b Box) Dx() float64 { return b.Max.X - b.Min.X }
func (b Box) Dy() float64 { return b.Max.Y - b.Min.Y }

// Center returns the midpoint of b.
func (b Box) Center() Point {
	return Pt((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2)
}

// Inset shrinks b by d on every side. The result may be empty.
func (b Box) Inset(d float64) Box {
	return Box{Min: Pt(b.Min.X+d, b.Min.Y+d), Max: Pt(b.Max.X-d, b.Max.Y-d)}
}

// Empty reports whether b has no area.
func (b Box) Empty() bool { return b.Dx() <= 0 || b.Dy() <= 0 }

func (b Box) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}

func (b Box) validate() error {
	for _, v := range []float64{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite box %v", b)
		}
	}
	if b.Empty() {
		return fmt.Errorf("empty box %v", b)
	}
	return nil
}

// ellipsePoint returns the point at angle deg on the ellipse inscribed in b.
// Angles run clockwise from 3 o'clock, matching the raster y-down convention.
func ellipsePoint(b Box, deg float64) Point {
	c := b.Center()
	rad := deg * math.Pi / 180
	return Pt(c.X+b.Dx()/2*math.Cos(rad), c.Y+b.Dy()/2*math.Sin(rad))
}
