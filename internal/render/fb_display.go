package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sync/atomic"

	fb "github.com/gonutz/framebuffer"
	"github.com/sujood-diary/iconmaker/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// DefaultFBDevice is the framebuffer opened when no device is configured.
const DefaultFBDevice = "/dev/fb0"

// FBDisplay shows a finished image on the Linux framebuffer.
type FBDisplay struct {
	Device string
	Logger Logger

	fbDev   *fb.Device
	running atomic.Bool
}

func NewFBDisplay(device string) *FBDisplay {
	if device == "" {
		device = DefaultFBDevice
	}
	return &FBDisplay{Device: device}
}

func (d *FBDisplay) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dev, err := fb.Open(d.Device)
	if err != nil {
		return err
	}
	d.fbDev = dev
	if d.Logger != nil {
		bounds := dev.Bounds()
		d.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d", d.Device, bounds.Dx(), bounds.Dy())
	}
	d.running.Store(true)
	return nil
}

func (d *FBDisplay) Stop() error {
	d.running.Store(false)
	if d.fbDev != nil {
		d.fbDev.Close()
		d.fbDev = nil
	}
	return nil
}

// Show letterboxes img onto the framebuffer.
func (d *FBDisplay) Show(img image.Image) error {
	if !d.running.Load() || d.fbDev == nil {
		return errors.New("framebuffer not started")
	}
	frame := ComposeFrame(d.fbDev.Bounds(), img)
	blitToFB(d.fbDev, frame)
	if d.Logger != nil {
		d.Logger.Infof("fb", "icon shown, frame=%dx%d", frame.Bounds().Dx(), frame.Bounds().Dy())
	}
	return nil
}

// ComposeFrame returns a frame of the given bounds with img scaled to fit
// inside a 5% margin on the sheet background.
func ComposeFrame(bounds image.Rectangle, img image.Image) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{C: SheetBackground}, image.Point{}, draw.Src)
	margin := min(bounds.Dx(), bounds.Dy()) / 20
	dst := layout.Fit(layout.Inset(frame.Bounds(), margin), img.Bounds())
	xdraw.CatmullRom.Scale(frame, dst, img, img.Bounds(), xdraw.Over, nil)
	return frame
}

// Helper: copy a frame of identical size to the framebuffer pixel by pixel.
func blitToFB(dev *fb.Device, frame *image.RGBA) {
	bounds := dev.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			pixel := frame.RGBAAt(x, y)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
