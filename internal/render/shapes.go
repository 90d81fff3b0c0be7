package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrDegenerateShape is returned when a shape's geometry cannot be painted.
var ErrDegenerateShape = errors.New("degenerate shape")

// Shape is a declarative drawing primitive. Shapes are painted in slice
// order, so later shapes occlude earlier ones.
type Shape interface {
	Paint(c *Canvas) error
}

// degrees per flattened segment on curved outlines
const arcStep = 1.0

// Ellipse is an ellipse inscribed in Box. When Outline is set, a ring of
// Width pixels is drawn inside the box edge.
type Ellipse struct {
	Name    string
	Box     Box
	Fill    color.Color
	Outline color.Color
	Width   float64
}

func (e Ellipse) Paint(c *Canvas) error {
	if err := e.Box.validate(); err != nil {
		return degenerate(e.Name, err)
	}
	if e.Width < 0 {
		return degenerate(e.Name, fmt.Errorf("negative outline width %g", e.Width))
	}
	if e.Outline == nil || e.Width == 0 {
		c.fillPolygon(ellipsePolygon(e.Box), e.Fill)
		return nil
	}
	c.fillPolygon(ellipsePolygon(e.Box), e.Outline)
	if inner := e.Box.Inset(e.Width); !inner.Empty() && e.Fill != nil {
		c.fillPolygon(ellipsePolygon(inner), e.Fill)
	}
	return nil
}

// Rect is an axis-aligned rectangle with an optional inner outline.
type Rect struct {
	Name    string
	Box     Box
	Fill    color.Color
	Outline color.Color
	Width   float64
}

func (r Rect) Paint(c *Canvas) error {
	if err := r.Box.validate(); err != nil {
		return degenerate(r.Name, err)
	}
	if r.Width < 0 {
		return degenerate(r.Name, fmt.Errorf("negative outline width %g", r.Width))
	}
	if r.Outline == nil || r.Width == 0 {
		c.fillPolygon(rectPolygon(r.Box), r.Fill)
		return nil
	}
	c.fillPolygon(rectPolygon(r.Box), r.Outline)
	if inner := r.Box.Inset(r.Width); !inner.Empty() && r.Fill != nil {
		c.fillPolygon(rectPolygon(inner), r.Fill)
	}
	return nil
}

// Arc is a band of Width pixels along the ellipse inscribed in Box, from
// Start to End degrees clockwise. A width reaching the center collapses the
// band into a pie slice.
type Arc struct {
	Name  string
	Box   Box
	Start float64
	End   float64
	Color color.Color
	Width float64
}

func (a Arc) Paint(c *Canvas) error {
	if err := a.Box.validate(); err != nil {
		return degenerate(a.Name, err)
	}
	if a.Width <= 0 {
		return degenerate(a.Name, fmt.Errorf("arc width %g", a.Width))
	}
	end := a.End
	for end < a.Start {
		end += 360
	}
	if end == a.Start {
		return degenerate(a.Name, fmt.Errorf("zero sweep at %g degrees", a.Start))
	}

	outer := arcPoints(a.Box, a.Start, end)
	var inner []Point
	if in := a.Box.Inset(a.Width); in.Empty() {
		inner = []Point{a.Box.Center()}
	} else {
		inner = arcPoints(in, a.Start, end)
	}
	pts := make([]Point, 0, len(outer)+len(inner))
	pts = append(pts, outer...)
	for i := len(inner) - 1; i >= 0; i-- {
		pts = append(pts, inner[i])
	}
	c.fillPolygon(pts, a.Color)
	return nil
}

// Polygon is a filled closed polygon.
type Polygon struct {
	Name   string
	Points []Point
	Fill   color.Color
}

func (p Polygon) Paint(c *Canvas) error {
	if len(p.Points) < 3 {
		return degenerate(p.Name, fmt.Errorf("%d vertices", len(p.Points)))
	}
	for _, v := range p.Points {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return degenerate(p.Name, fmt.Errorf("non-finite vertex %v", v))
		}
	}
	c.fillPolygon(p.Points, p.Fill)
	return nil
}

// PaintAll paints shapes in order and stops at the first failure.
func PaintAll(c *Canvas, shapes []Shape) error {
	for _, s := range shapes {
		if err := s.Paint(c); err != nil {
			return err
		}
	}
	return nil
}

func degenerate(name string, err error) error {
	if name == "" {
		name = "shape"
	}
	return fmt.Errorf("%s: %w: %v", name, ErrDegenerateShape, err)
}

func ellipsePolygon(b Box) []Point {
	pts := arcPoints(b, 0, 360)
	return pts[:len(pts)-1]
}

func arcPoints(b Box, start, end float64) []Point {
	n := int(math.Ceil((end - start) / arcStep))
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, ellipsePoint(b, start+(end-start)*float64(i)/float64(n)))
	}
	return pts
}

func rectPolygon(b Box) []Point {
	return []Point{b.Min, Pt(b.Max.X, b.Min.Y), b.Max, Pt(b.Min.X, b.Max.Y)}
}
