package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/sujood-diary/iconmaker/internal/system"
)

// Artifact is one output file: a name inside the output directory and the
// square pixel size it is written at.
type Artifact struct {
	Name string
	Size int
}

// DefaultArtifacts are the app icon files derived from one 1024px source.
var DefaultArtifacts = []Artifact{
	{Name: "icon.png", Size: 1024},
	{Name: "adaptive-icon.png", Size: 1024},
	{Name: "splash-icon.png", Size: 1024},
	{Name: "favicon.png", Size: 512},
}

// ErrOutputDir is wrapped by every error caused by a missing, non-directory
// or read-only output directory.
var ErrOutputDir = errors.New("output directory unavailable")

// WriteError records the file operation that failed while writing an artifact.
type WriteError struct {
	Op   string
	Path string
	Err  error
}

func (e *WriteError) Error() string { return e.Op + " " + e.Path + ": " + e.Err.Error() }
func (e *WriteError) Unwrap() error { return e.Err }

// Written is an artifact that reached its final path.
type Written struct {
	Artifact
	Path string
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Exporter writes artifacts into Dir. All artifacts are staged as temporary
// files first and only renamed into place once every one encoded cleanly.
type Exporter struct {
	Dir       string
	Logger    Logger
	OnWritten func(Written)
}

func NewExporter(dir string) *Exporter { return &Exporter{Dir: dir} }

type staged struct {
	artifact Artifact
	tmp      string
	final    string
}

// Export resizes src for each artifact and writes it as PNG.
func (e *Exporter) Export(src image.Image, artifacts []Artifact) ([]Written, error) {
	if err := validateArtifacts(artifacts); err != nil {
		return nil, err
	}
	if err := system.CheckWritableDir(e.Dir); err != nil {
		e.errorf("output dir check failed: %v", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrOutputDir, e.Dir, err)
	}

	var pending []staged
	cleanup := func() {
		for _, s := range pending {
			_ = os.Remove(s.tmp)
		}
	}

	for _, a := range artifacts {
		final := filepath.Join(e.Dir, a.Name)
		tmp, err := e.stage(Resize(src, a.Size), a)
		if err != nil {
			cleanup()
			e.errorf("staging %s failed: %v", final, err)
			return nil, err
		}
		pending = append(pending, staged{artifact: a, tmp: tmp, final: final})
		e.infof("staged %s at %dx%d", a.Name, a.Size, a.Size)
	}

	written := make([]Written, 0, len(pending))
	for i, s := range pending {
		if err := os.Rename(s.tmp, s.final); err != nil {
			pending = pending[i:]
			cleanup()
			return written, &WriteError{Op: "rename", Path: s.final, Err: err}
		}
		w := Written{Artifact: s.artifact, Path: s.final}
		written = append(written, w)
		e.infof("wrote %s", s.final)
		if e.OnWritten != nil {
			e.OnWritten(w)
		}
	}
	return written, nil
}

func (e *Exporter) stage(img image.Image, a Artifact) (string, error) {
	f, err := os.CreateTemp(e.Dir, "."+a.Name+".*.tmp")
	if err != nil {
		return "", &WriteError{Op: "create", Path: filepath.Join(e.Dir, a.Name), Err: err}
	}
	tmp := f.Name()
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", &WriteError{Op: "encode", Path: tmp, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", &WriteError{Op: "close", Path: tmp, Err: err}
	}
	return tmp, nil
}

// Resize returns src unchanged when it already has the requested size,
// otherwise a Lanczos-resampled opaque copy.
func Resize(src image.Image, size int) image.Image {
	b := src.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return src
	}
	scaled := transform.Resize(src, size, size, transform.Lanczos)
	return flatten(scaled)
}

// flatten forces every pixel opaque. Lanczos ringing along the edges can
// otherwise leave alpha a step below full on an opaque source.
func flatten(img *image.RGBA) *image.RGBA {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	return img
}

func validateArtifacts(artifacts []Artifact) error {
	if len(artifacts) == 0 {
		return errors.New("no artifacts to export")
	}
	seen := make(map[string]bool, len(artifacts))
	for _, a := range artifacts {
		if a.Name == "" || strings.ContainsAny(a.Name, `/\`) || a.Name == "." || a.Name == ".." {
			return fmt.Errorf("invalid artifact name %q", a.Name)
		}
		if a.Size <= 0 {
			return fmt.Errorf("artifact %s: invalid size %d", a.Name, a.Size)
		}
		if seen[a.Name] {
			return fmt.Errorf("artifact %s listed twice", a.Name)
		}
		seen[a.Name] = true
	}
	return nil
}

func (e *Exporter) infof(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Infof("export", format, args...)
	}
}

func (e *Exporter) errorf(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Errorf("export", format, args...)
	}
}
