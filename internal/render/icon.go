package render

import (
	"fmt"
	"image"
)

// Motif geometry, all relative to Center.
const (
	badgeRadius = 380
	badgeRing   = 20

	domeWidth  = 280
	domeTop    = Center - 120
	domeBottom = Center + 80

	crescentSize  = 60
	crescentWidth = 15

	minaretWidth  = 40
	minaretHeight = 200
	minaretOffset = 200

	buildingWidth  = 320
	buildingHeight = 140

	doorWidth  = 100
	doorHeight = 110

	starOffset = 250
	StarSize   = 30
)

// IconGradient is the background gradient behind the badge.
var IconGradient = LinearGradient{Top: GradientTop, Bottom: GradientBottom}

// StarCenters returns the four corner ornament positions, symmetric about
// both center lines.
func StarCenters() []Point {
	c := float64(Center)
	return []Point{
		Pt(c-starOffset, c-starOffset),
		Pt(c+starOffset, c-starOffset),
		Pt(c-starOffset, c+starOffset),
		Pt(c+starOffset, c+starOffset),
	}
}

// Motif returns the badge and mosque silhouette in back-to-front order.
func Motif() []Shape {
	c := float64(Center)
	shapes := []Shape{
		Ellipse{Name: "badge", Box: BoxAround(Pt(c, c), badgeRadius, badgeRadius), Fill: Background, Outline: BadgeRing, Width: badgeRing},
		Ellipse{
			Name:    "dome",
			Box:     Box{Min: Pt(c-domeWidth/2, domeTop-100), Max: Pt(c+domeWidth/2, domeBottom)},
			Fill:    Emerald,
			Outline: DeepGreen,
			Width:   8,
		},
		Arc{
			Name:  "crescent",
			Box:   Box{Min: Pt(c-crescentSize, domeTop-180), Max: Pt(c+crescentSize, domeTop-60)},
			Start: 200,
			End:   340,
			Color: Amber,
			Width: crescentWidth,
		},
	}
	shapes = append(shapes, minaret("left", c-minaretOffset)...)
	shapes = append(shapes, minaret("right", c+minaretOffset)...)
	shapes = append(shapes,
		Rect{
			Name:    "building",
			Box:     Box{Min: Pt(c-buildingWidth/2, domeBottom), Max: Pt(c+buildingWidth/2, domeBottom+buildingHeight)},
			Fill:    Emerald,
			Outline: DeepGreen,
			Width:   8,
		},
		Rect{
			Name: "door",
			Box:  Box{Min: Pt(c-doorWidth/2, domeBottom+buildingHeight-doorHeight), Max: Pt(c+doorWidth/2, domeBottom+buildingHeight)},
			Fill: DeepGreen,
		},
		Arc{
			Name:  "door arch",
			Box:   Box{Min: Pt(c-doorWidth/2, domeBottom+30), Max: Pt(c+doorWidth/2, domeBottom+130)},
			Start: 0,
			End:   180,
			Color: DeepGreen,
			Width: doorWidth,
		},
	)
	for i, sc := range StarCenters() {
		shapes = append(shapes, Polygon{Name: fmt.Sprintf("star %d", i+1), Points: StarVertices(sc, StarSize), Fill: StarGold})
	}
	return shapes
}

func minaret(side string, x float64) []Shape {
	return []Shape{
		Rect{
			Name:    side + " minaret",
			Box:     Box{Min: Pt(x-minaretWidth/2, domeBottom-minaretHeight), Max: Pt(x+minaretWidth/2, domeBottom)},
			Fill:    Emerald,
			Outline: DeepGreen,
			Width:   6,
		},
		Ellipse{
			Name: side + " minaret cap",
			Box:  Box{Min: Pt(x-minaretWidth, domeBottom-minaretHeight-30), Max: Pt(x+minaretWidth, domeBottom-minaretHeight+10)},
			Fill: Amber,
		},
	}
}

// RenderIcon draws the full-resolution icon: gradient background clipped to
// rounded corners, then the motif.
func RenderIcon() (*image.RGBA, error) {
	gradient := NewCanvas(CanvasSize, Background)
	IconGradient.Paint(gradient)

	mask := RoundedRectMask(CanvasSize, CornerRadius)
	out := NewCanvas(CanvasSize, Background)
	out.Composite(gradient.Image(), mask)

	if err := PaintAll(out, Motif()); err != nil {
		return nil, fmt.Errorf("render icon: %w", err)
	}
	return out.Image(), nil
}
