package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/sujood-diary/iconmaker/internal/assets"
	"github.com/sujood-diary/iconmaker/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	captionFontSize = 22
	captionBandPx   = 44
	tilePaddingPx   = 16
)

// Logger is the component-tagged logger the renderer reports through.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Tile is one labelled image on a preview sheet.
type Tile struct {
	Label string
	Image image.Image
}

// PreviewSheet lays out up to four tiles on a 2x2 grid with a caption under each.
type PreviewSheet struct {
	Size   int
	Logger Logger

	fontFace font.Face
	ttFont   *truetype.Font
}

// NewPreviewSheet loads the caption font, falling back to basicfont when the
// embedded font cannot be parsed.
func NewPreviewSheet(size int, logger Logger) *PreviewSheet {
	p := &PreviewSheet{Size: size, Logger: logger}

	fnt, err := opentype.Parse(assets.FontTTF)
	if err != nil {
		p.fontFace = basicfont.Face7x13
		p.errorf("font parse failed, using basicfont: %v", err)
	} else {
		face, ferr := opentype.NewFace(fnt, &opentype.FaceOptions{Size: captionFontSize, DPI: 72, Hinting: font.HintingFull})
		if ferr != nil {
			p.fontFace = basicfont.Face7x13
			p.errorf("font face create failed, using basicfont: %v", ferr)
		} else {
			p.fontFace = face
		}
	}
	if tt, terr := freetype.ParseFont(assets.FontTTF); terr != nil {
		p.errorf("truetype parse failed: %v", terr)
	} else {
		p.ttFont = tt
	}
	return p
}

// Render draws the tiles in reading order.
func (p *PreviewSheet) Render(tiles []Tile) (*image.RGBA, error) {
	if len(tiles) == 0 || len(tiles) > 4 {
		return nil, fmt.Errorf("preview sheet: need 1 to 4 tiles, got %d", len(tiles))
	}
	if p.Size < 4*(captionBandPx+tilePaddingPx) {
		return nil, fmt.Errorf("preview sheet: size %d too small", p.Size)
	}
	sheet := image.NewRGBA(image.Rect(0, 0, p.Size, p.Size))
	draw.Draw(sheet, sheet.Bounds(), &image.Uniform{C: SheetBackground}, image.Point{}, draw.Src)

	cells := layout.Grid2x2(sheet.Bounds()).Cells()
	for i, tile := range tiles {
		if tile.Image == nil {
			return nil, errors.New("preview sheet: tile " + tile.Label + " has no image")
		}
		imageArea, captionArea := layout.SplitHorizontal(layout.Inset(cells[i], tilePaddingPx), captionBandPx)
		dst := layout.Fit(imageArea, tile.Image.Bounds())
		xdraw.CatmullRom.Scale(sheet, dst, tile.Image, tile.Image.Bounds(), xdraw.Over, nil)
		if err := p.drawCaption(sheet, tile.Label, captionArea); err != nil {
			return nil, fmt.Errorf("preview sheet: caption %q: %w", tile.Label, err)
		}
	}
	p.infof("preview sheet rendered, tiles=%d size=%d", len(tiles), p.Size)
	return sheet, nil
}

// drawCaption centers text in area. Glyphs go through freetype when the
// TrueType font loaded, otherwise through the fallback face.
func (p *PreviewSheet) drawCaption(dst *image.RGBA, text string, area image.Rectangle) error {
	if p.fontFace == nil {
		p.fontFace = basicfont.Face7x13
		p.errorf("fontFace nil at draw, defaulting to basicfont")
	}
	textWidth := font.MeasureString(p.fontFace, text).Ceil()
	metrics := p.fontFace.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	xPos := area.Min.X + (area.Dx()-textWidth)/2
	baseline := area.Min.Y + (area.Dy()+ascent-descent)/2

	if p.ttFont == nil {
		drawer := &font.Drawer{Dst: dst, Src: image.NewUniform(CaptionColor), Face: p.fontFace}
		drawer.Dot = fixed.P(xPos, baseline)
		drawer.DrawString(text)
		return nil
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(p.ttFont)
	ctx.SetFontSize(captionFontSize)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(area)
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(CaptionColor))
	_, err := ctx.DrawString(text, freetype.Pt(xPos, baseline))
	return err
}

func (p *PreviewSheet) infof(format string, args ...interface{}) {
	if p.Logger != nil {
		p.Logger.Infof("preview", format, args...)
	}
}

func (p *PreviewSheet) errorf(format string, args ...interface{}) {
	if p.Logger != nil {
		p.Logger.Errorf("preview", format, args...)
	}
}
