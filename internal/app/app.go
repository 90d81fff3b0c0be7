package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/sujood-diary/iconmaker/internal/export"
	"github.com/sujood-diary/iconmaker/internal/render"
	"github.com/sujood-diary/iconmaker/internal/state"
	"github.com/sujood-diary/iconmaker/internal/system"
)

// PreviewName is the contact sheet written next to the icons with -preview.
const PreviewName = "preview.png"

// Display shows a finished icon on a local screen.
type Display interface {
	Start(ctx context.Context) error
	Stop() error
	Show(img image.Image) error
}

type App struct {
	Config  Config
	Store   *state.Store
	Display Display
	Logger  Logger
	Out     io.Writer

	// Render produces the source image; nil means render.RenderIcon.
	Render func() (*image.RGBA, error)
	// EnterConsole and WatchKeys prepare the terminal and end -show early.
	EnterConsole func(l system.Logger) (restore func())
	WatchKeys    func(ctx context.Context, l system.Logger, onDismiss func())
}

func New(cfg Config, store *state.Store) *App {
	if store == nil {
		store = state.NewStore()
	}
	return &App{
		Config:       cfg,
		Store:        store,
		Logger:       NoopLogger{},
		Out:          os.Stdout,
		EnterConsole: system.EnterGraphicsConsole,
		WatchKeys:    system.StartDismissOnKey,
	}
}

// Run renders the icon, writes every artifact and runs the optional preview
// steps. No artifact is finalized unless all of them encoded.
func (app *App) Run(ctx context.Context) error {
	if err := app.Config.Validate(); err != nil {
		return err
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Out == nil {
		app.Out = io.Discard
	}

	app.Store.SetPhase(state.RENDERING)
	renderFn := app.Render
	if renderFn == nil {
		renderFn = render.RenderIcon
	}
	start := time.Now()
	icon, err := renderFn()
	if err != nil {
		return app.fail("render", err)
	}
	app.Logger.Infof("app", "icon rendered in %s", time.Since(start))

	app.Store.SetPhase(state.EXPORTING)
	exporter := app.newExporter()
	written, err := exporter.Export(icon, export.DefaultArtifacts)
	if err != nil {
		return app.fail("export", err)
	}

	if app.Config.Preview {
		app.Store.SetPhase(state.PREVIEWING)
		if err := app.writePreview(exporter, icon, written); err != nil {
			return app.fail("preview", err)
		}
	}

	if app.Config.Show {
		app.Store.SetPhase(state.DISPLAYING)
		if err := app.show(ctx, icon); err != nil {
			return app.fail("display", err)
		}
	}

	app.Store.SetPhase(state.DONE)
	fmt.Fprintf(app.Out, "\nAll %d icon files written to %s\n", len(written), app.Config.OutDir)
	return nil
}

func (app *App) newExporter() *export.Exporter {
	exporter := export.NewExporter(app.Config.OutDir)
	exporter.Logger = app.Logger
	exporter.OnWritten = func(w export.Written) {
		app.Store.AddArtifact(state.ArtifactInfo{Name: w.Name, Path: w.Path, Size: w.Size})
		fmt.Fprintf(app.Out, "created %s (%dx%d)\n", w.Path, w.Size, w.Size)
	}
	return exporter
}

func (app *App) writePreview(exporter *export.Exporter, icon image.Image, written []export.Written) error {
	tiles := make([]render.Tile, 0, len(written))
	for _, w := range written {
		tiles = append(tiles, render.Tile{
			Label: fmt.Sprintf("%s  %dx%d", w.Name, w.Size, w.Size),
			Image: export.Resize(icon, w.Size),
		})
	}
	sheet, err := render.NewPreviewSheet(render.CanvasSize, app.Logger).Render(tiles)
	if err != nil {
		return err
	}
	_, err = exporter.Export(sheet, []export.Artifact{{Name: PreviewName, Size: render.CanvasSize}})
	return err
}

// show keeps the icon on the display until the timeout, a dismiss key or
// ctx cancellation, whichever comes first.
func (app *App) show(ctx context.Context, icon image.Image) error {
	display := app.Display
	if display == nil {
		fbDisplay := render.NewFBDisplay(app.Config.FBDevice)
		fbDisplay.Logger = app.Logger
		display = fbDisplay
	}
	if err := display.Start(ctx); err != nil {
		app.Logger.Errorf("app", "display start error: %v", err)
		return err
	}
	defer display.Stop()

	if app.EnterConsole != nil {
		restore := app.EnterConsole(app.Logger)
		defer restore()
	}

	if err := display.Show(icon); err != nil {
		return err
	}

	showCtx, cancel := context.WithTimeout(ctx, app.Config.ShowFor)
	defer cancel()
	if app.WatchKeys != nil {
		app.WatchKeys(showCtx, app.Logger, cancel)
	}
	<-showCtx.Done()
	if errors.Is(ctx.Err(), context.Canceled) {
		app.Logger.Infof("app", "display interrupted")
	}
	return nil
}

func (app *App) fail(step string, err error) error {
	app.Logger.Errorf("app", "%s failed: %v", step, err)
	app.Store.Fail(err)
	return fmt.Errorf("%s: %w", step, err)
}
