package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// bottomHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, bottomHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	height := rect.Dy()
	if bottomHeightPx < 0 {
		bottomHeightPx = 0
	}
	if bottomHeightPx > height {
		bottomHeightPx = height
	}
	split := rect.Max.Y - bottomHeightPx
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, split)
	bottom = image.Rect(rect.Min.X, split, rect.Max.X, rect.Max.Y)
	return top, bottom
}

type Grid2x2Rects struct {
	TopLeft     image.Rectangle
	TopRight    image.Rectangle
	BottomLeft  image.Rectangle
	BottomRight image.Rectangle
}

// Cells returns the quadrants in reading order.
func (g Grid2x2Rects) Cells() []image.Rectangle {
	return []image.Rectangle{g.TopLeft, g.TopRight, g.BottomLeft, g.BottomRight}
}

// Grid2x2 splits rect into four equal quadrants.
func Grid2x2(rect image.Rectangle) Grid2x2Rects {
	rect = Normalize(rect)
	midX := rect.Min.X + rect.Dx()/2
	midY := rect.Min.Y + rect.Dy()/2
	return Grid2x2Rects{
		TopLeft:     image.Rect(rect.Min.X, rect.Min.Y, midX, midY),
		TopRight:    image.Rect(midX, rect.Min.Y, rect.Max.X, midY),
		BottomLeft:  image.Rect(rect.Min.X, midY, midX, rect.Max.Y),
		BottomRight: image.Rect(midX, midY, rect.Max.X, rect.Max.Y),
	}
}

// Fit returns the largest rectangle with the aspect ratio of src that fits
// into rect, centered.
func Fit(rect image.Rectangle, src image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 || rect.Empty() {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	w := rect.Dx()
	h := w * sh / sw
	if h > rect.Dy() {
		h = rect.Dy()
		w = h * sw / sh
	}
	x := rect.Min.X + (rect.Dx()-w)/2
	y := rect.Min.Y + (rect.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}
