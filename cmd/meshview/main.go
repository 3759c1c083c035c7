// Package main is the entry point for the meshview OBJ viewer.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/openmesh/meshview/internal/config"
	"github.com/openmesh/meshview/internal/engine/input"
	"github.com/openmesh/meshview/internal/engine/renderer"
	"github.com/openmesh/meshview/internal/engine/scene"
	"github.com/openmesh/meshview/internal/engine/window"
	"github.com/openmesh/meshview/internal/logger"
	"github.com/openmesh/meshview/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== meshview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      "meshview",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	rend, err := renderer.New()
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer rend.Close()

	dw, dh := win.DrawableSize()
	rend.Resize(dw, dh)
	cfg.Graphics.Width, cfg.Graphics.Height = dw, dh

	v := viewer.New(cfg, rend)
	in := input.New()

	if cfg.Viewer.Model != "" {
		loadMeshFile(v, cfg.Viewer.Model)
		swapIfDrawn(win, rend, 0)
	}

	// The viewer has no animation loop: frames are produced inside Dispatch,
	// and the buffer is swapped only when one was actually submitted.
	for {
		if quit := in.Update(); quit {
			return nil
		}

		framesBefore := rend.Frames()

		for _, ev := range in.Events() {
			if ev.Kind == viewer.EventResize {
				// Resize events carry window points; the GL viewport and
				// the projection both want drawable pixels.
				ev.Width, ev.Height = win.DrawableSize()
				rend.Resize(ev.Width, ev.Height)
			}
			dispatch(v, ev)
		}

		if in.OpenFileRequested() {
			openMeshDialog(v)
		}
		if in.Exposed() && v.HasMesh() {
			if err := v.Redraw(); err != nil {
				logger.Warn("redraw failed", zap.Error(err))
			}
		}

		swapIfDrawn(win, rend, framesBefore)
		sdl.Delay(5)
	}
}

// dispatch feeds one event to the viewer and reports failures without
// terminating the session. Draw requests before the first load are expected
// and only logged at debug level.
func dispatch(v *viewer.Viewer, ev viewer.Event) {
	err := v.Dispatch(ev)
	if err == nil {
		return
	}
	if errors.Is(err, scene.ErrNoMeshLoaded) {
		logger.Debug("draw skipped", zap.Error(err))
		return
	}
	logger.Error("frame skipped", zap.Error(err))
}

func swapIfDrawn(win *window.Window, rend *renderer.Renderer, framesBefore uint64) {
	if rend.Frames() != framesBefore {
		win.SwapBuffers()
	}
}

// loadMeshFile reads a mesh description from disk in one complete read and
// hands it to the viewer. A failed load leaves the current view untouched.
func loadMeshFile(v *viewer.Viewer, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("reading mesh file", zap.String("path", path), zap.Error(err))
		return
	}
	if err := v.LoadMesh(data); err != nil {
		logger.Error("loading mesh", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Info("mesh file loaded", zap.String("path", path))
}

// openMeshDialog shows the native open-file dialog and loads the selection.
func openMeshDialog(v *viewer.Viewer) {
	path, err := dialog.File().
		Filter("Wavefront OBJ", "obj").
		Title("Open mesh").
		Load()
	if err != nil {
		if err != dialog.ErrCancelled {
			logger.Error("file dialog failed", zap.Error(err))
		}
		return
	}
	loadMeshFile(v, path)
}
