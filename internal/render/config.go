package render

import "image/color"

// Global render configuration for the icon palette and canvas.
var (
	GradientTop    = color.RGBA{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF} // #8b5cf6
	GradientBottom = color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF} // #3b82f6

	Background = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	BadgeRing  = color.RGBA{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF} // #8b5cf6
	Emerald    = color.RGBA{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF} // #10b981
	DeepGreen  = color.RGBA{R: 0x05, G: 0x96, B: 0x69, A: 0xFF} // #059669
	Amber      = color.RGBA{R: 0xF5, G: 0x9E, B: 0x0B, A: 0xFF} // #f59e0b
	StarGold   = color.RGBA{R: 0xFC, G: 0xD3, B: 0x4D, A: 0xFF} // #fcd34d

	// Preview sheet and framebuffer display colors.
	SheetBackground = color.RGBA{R: 0xF3, G: 0xF4, B: 0xF6, A: 0xFF} // #f3f4f6
	CaptionColor    = color.RGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF} // #1f2937
)

// Canvas size and the single derived control point. Every motif coordinate
// is expressed relative to Center.
const (
	CanvasSize   = 1024
	Center       = CanvasSize / 2
	CornerRadius = 180
)
