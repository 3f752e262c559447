package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/attitude/pkg/models"
	"github.com/taigrr/attitude/pkg/render"
)

func run(ctx context.Context, cfg config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	logger, closer, err := cfg.newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	m, err := cfg.loadModel()
	if err != nil {
		return err
	}
	lo, hi := m.Bounds()
	logger.Info("model loaded", "name", m.Name(), "points", m.PointCount(), "faces", m.FaceCount(),
		"min", lo, "max", hi)
	if r := m.Radius(); r >= cfg.Projection.CameraDistance {
		logger.Warn("model reaches past the camera, expect distortion",
			"radius", r, "camera_distance", cfg.Projection.CameraDistance)
	}

	if cfg.headless() {
		return renderFrames(m, cfg, logger)
	}
	return runTerminal(ctx, m, cfg, logger)
}

// renderFrames steps the engine cfg.Frames times and writes the last frame
// to cfg.PNGPath.
func renderFrames(m *models.Model, cfg config, logger *log.Logger) error {
	sc, err := newScene(m, cfg, logger, headlessWidth, headlessHeight)
	if err != nil {
		return err
	}

	for range cfg.Frames {
		sc.engine.Step(sc.viewport())
	}
	sc.paint()

	if err := sc.fb.SavePNG(cfg.PNGPath); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	logger.Info("frame written", "path", cfg.PNGPath, "frames", cfg.Frames,
		"yaw", sc.engine.Orientation().Yaw)
	return nil
}

func runTerminal(ctx context.Context, m *models.Model, cfg config, logger *log.Logger) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	// Each terminal row holds two framebuffer rows
	sc, err := newScene(m, cfg, logger, width, height*2)
	if err != nil {
		return err
	}
	hud := NewHUD(sc.engine.Model().Name(), sc.engine.Model().FaceCount(), cfg.FPS)

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Input state, written by the event goroutine and read once per tick
	var (
		paused  atomic.Bool
		showHUD atomic.Bool
		termW   atomic.Int32
		termH   atomic.Int32
	)
	showHUD.Store(!cfg.NoHUD)
	termW.Store(int32(width))
	termH.Store(int32(height))

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				termW.Store(int32(ev.Width))
				termH.Store(int32(ev.Height))

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "q", "ctrl+c"):
					cancel()
					return
				case ev.MatchString("space"):
					paused.Store(!paused.Load())
				case ev.MatchString("?", "shift+/"):
					showHUD.Store(!showHUD.Load())
				}
			}
		}
	}()

	size := func() render.Viewport {
		if p := paused.Load(); p != sc.engine.Paused() {
			if p {
				sc.engine.Pause()
			} else {
				sc.engine.Resume()
			}
		}

		w, h := int(termW.Load()), int(termH.Load())
		if sc.resize(w, h*2) {
			width, height = w, h
			term.Erase()
			term.Resize(width, height)
			logger.Debug("resized", "cols", width, "rows", height)
		}
		return sc.viewport()
	}

	var flushErr error
	after := func(bool) {
		sc.paint()
		area := uv.Rectangle(image.Rect(0, 0, width, height))
		sc.fb.Draw(term, area)

		// HUD overlay (always update FPS so the readout is warm when shown)
		hud.Update(time.Now())
		if showHUD.Load() {
			hud.Draw(term, area, sc.engine)
		}

		if err := term.Display(); err != nil {
			flushErr = fmt.Errorf("flush: %w", err)
			cancel()
		}
	}

	err = sc.engine.Run(ctx, cfg.FPS, size, after)
	if flushErr != nil {
		return flushErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
