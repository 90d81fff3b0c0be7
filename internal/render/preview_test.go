package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Infof(component, format string, args ...interface{}) {
	l.infos = append(l.infos, component+": "+format)
}

func (l *recordingLogger) Errorf(component, format string, args ...interface{}) {
	l.errors = append(l.errors, component+": "+format)
}

func solid(size int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestPreviewSheetRender(t *testing.T) {
	logger := &recordingLogger{}
	sheet := NewPreviewSheet(512, logger)
	require.Empty(t, logger.errors, "embedded font should load")

	tiles := []Tile{
		{Label: "icon.png", Image: solid(64, red)},
		{Label: "adaptive-icon.png", Image: solid(64, blue)},
		{Label: "splash-icon.png", Image: solid(64, red)},
		{Label: "favicon.png", Image: solid(32, blue)},
	}
	img, err := sheet.Render(tiles)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 512, 512), img.Bounds())

	// tile centers sit above the caption band of each quadrant
	assert.Equal(t, red, img.RGBAAt(128, 110))
	assert.Equal(t, blue, img.RGBAAt(384, 110))
	assert.Equal(t, blue, img.RGBAAt(384, 366))
	assert.Equal(t, SheetBackground, img.RGBAAt(2, 2))

	// the caption band under the first tile holds glyph pixels
	inked := 0
	for y := 256 - tilePaddingPx - captionBandPx; y < 256-tilePaddingPx; y++ {
		for x := tilePaddingPx; x < 256-tilePaddingPx; x++ {
			if img.RGBAAt(x, y) != SheetBackground {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 20)
	assert.NotEmpty(t, logger.infos)
}

func TestPreviewSheetRejectsBadInput(t *testing.T) {
	sheet := NewPreviewSheet(512, nil)

	_, err := sheet.Render(nil)
	assert.Error(t, err)

	five := make([]Tile, 5)
	for i := range five {
		five[i] = Tile{Label: "x", Image: solid(8, red)}
	}
	_, err = sheet.Render(five)
	assert.Error(t, err)

	_, err = sheet.Render([]Tile{{Label: "empty"}})
	assert.Error(t, err)

	_, err = NewPreviewSheet(64, nil).Render([]Tile{{Label: "x", Image: solid(8, red)}})
	assert.Error(t, err)
}

func TestComposeFrame(t *testing.T) {
	frame := ComposeFrame(image.Rect(0, 0, 400, 200), solid(100, red))
	assert.Equal(t, image.Rect(0, 0, 400, 200), frame.Bounds())
	assert.Equal(t, red, frame.RGBAAt(200, 100))
	// letterboxed horizontally with a 5% margin
	assert.Equal(t, SheetBackground, frame.RGBAAt(20, 100))
	assert.Equal(t, SheetBackground, frame.RGBAAt(200, 3))
}
