package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sujood-diary/iconmaker/internal/app"
	"github.com/sujood-diary/iconmaker/internal/export"
	"github.com/sujood-diary/iconmaker/internal/state"
)

const envStdioLog = "ICONMAKER_STDIO_LOG"

func main() {
	defaults, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags
	outDir := flag.String("out", defaults.OutDir, "directory the icon files are written to; also configurable via "+app.EnvOutDir)
	preview := flag.Bool("preview", defaults.Preview, "also write "+app.PreviewName+", a captioned sheet of every artifact; also configurable via "+app.EnvPreview)
	show := flag.Bool("show", false, "display the icon on the framebuffer after writing it")
	fbDevice := flag.String("fb", defaults.FBDevice, "framebuffer device used by -show; also configurable via "+app.EnvFBDevice)
	showFor := flag.Duration("show-for", defaults.ShowFor, "how long -show keeps the icon on screen; Esc, Q, Enter or F4 end it early")
	debug := flag.Bool("debug", false, "enable debug logging to ./iconmaker-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./iconmaker-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	cfg := app.Config{
		OutDir:   *outDir,
		Preview:  *preview,
		Show:     *show,
		FBDevice: *fbDevice,
		ShowFor:  *showFor,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, state.NewStore())
	a.Logger = logger

	if err := a.Run(ctx); err != nil {
		if errors.Is(err, export.ErrOutputDir) {
			fmt.Fprintf(os.Stderr, "iconmaker: %v\ncreate the directory or pass -out\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "iconmaker:", err)
		}
		stop()
		os.Exit(1)
	}
}
