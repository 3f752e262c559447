package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/taigrr/attitude/pkg/attitude"
	"github.com/taigrr/attitude/pkg/engine"
	"github.com/taigrr/attitude/pkg/models"
	"github.com/taigrr/attitude/pkg/render"
)

// Headless frames are rendered at this size.
const (
	headlessWidth  = 320
	headlessHeight = 240
)

var errBadColor = errors.New("color must be R,G,B with each part in 0..255")

// config holds everything the command line controls.
type config struct {
	FPS        int
	Attitude   attitude.Params
	Projection render.ProjectionParams
	ModelPath  string
	Background string
	LogPath    string
	LogLevel   string
	Frames     int
	PNGPath    string
	NoHUD      bool
}

func defaultConfig() config {
	return config{
		FPS:        engine.DefaultFPS,
		Attitude:   attitude.DefaultParams(),
		Projection: render.DefaultProjectionParams(),
		LogLevel:   "info",
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()

	cmd := &cobra.Command{
		Use:   "attitude",
		Short: "Terminal attitude indicator",
		Long: "attitude spins a wireframe aircraft through yaw, pitch and roll using\n" +
			"plain perspective projection, drawn with half-block characters.\n\n" +
			"Keys: space pauses, ? toggles the HUD, esc or q quits.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.FPS, "fps", cfg.FPS, "Target frames per second")
	f.Float64Var(&cfg.Attitude.Step, "step", cfg.Attitude.Step, "Yaw advance per frame (radians)")
	f.Float64Var(&cfg.Attitude.Pitch, "pitch", cfg.Attitude.Pitch, "Constant pitch (radians)")
	f.Float64Var(&cfg.Attitude.RollAmplitude, "roll-amplitude", cfg.Attitude.RollAmplitude, "Peak roll (radians)")
	f.Float64Var(&cfg.Attitude.RollFrequency, "roll-frequency", cfg.Attitude.RollFrequency, "Roll cycles per radian of yaw")
	f.Float64Var(&cfg.Projection.CameraDistance, "camera-distance", cfg.Projection.CameraDistance, "Distance from the camera to the model origin")
	f.Float64Var(&cfg.Projection.ScaleFactor, "scale", cfg.Projection.ScaleFactor, "Fraction of the smaller screen side one model unit spans")
	f.Float64Var(&cfg.Projection.VerticalOffset, "offset", cfg.Projection.VerticalOffset, "Vertical offset of the model center (pixels)")
	f.StringVar(&cfg.ModelPath, "model", "", "GLB/GLTF model to show instead of the builtin UAV")
	f.StringVar(&cfg.Background, "bg", "", "Background color (R,G,B)")
	f.StringVar(&cfg.LogPath, "log", "", "Write logs to this file")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	f.IntVar(&cfg.Frames, "frames", 0, "Render this many frames without a terminal and exit (needs --png)")
	f.StringVar(&cfg.PNGPath, "png", "", "Where --frames writes the last frame")
	f.BoolVar(&cfg.NoHUD, "no-hud", false, "Start with the HUD hidden")

	return cmd
}

// validate checks the flags that the engine does not check itself.
func (c config) validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("--fps must be positive (got %d)", c.FPS)
	}
	if c.Frames < 0 {
		return fmt.Errorf("--frames must not be negative (got %d)", c.Frames)
	}
	if c.Frames > 0 && c.PNGPath == "" {
		return errors.New("--frames needs --png")
	}
	if _, err := c.background(); err != nil {
		return fmt.Errorf("--bg: %w", err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

func (c config) headless() bool {
	return c.Frames > 0
}

// background returns the --bg color, or the console background when unset.
func (c config) background() (render.Color, error) {
	if c.Background == "" {
		return render.ColorBackground, nil
	}
	return parseRGB(c.Background)
}

func parseRGB(s string) (render.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return render.Color{}, fmt.Errorf("%w: %q", errBadColor, s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return render.Color{}, fmt.Errorf("%w: %q", errBadColor, s)
		}
		rgb[i] = uint8(v)
	}
	return render.RGB(rgb[0], rgb[1], rgb[2]), nil
}

// loadModel returns the --model file, or the builtin UAV.
func (c config) loadModel() (*models.Model, error) {
	if c.ModelPath == "" {
		return models.Builtin(), nil
	}
	m, err := models.LoadGLB(c.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return m, nil
}

// newLogger builds the logger for this run. The terminal view owns stdout, so
// without --log it logs nowhere; headless runs log to stderr.
func (c config) newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	switch {
	case c.LogPath != "":
		f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		w, closer = f, f
	case c.headless():
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "attitude",
		ReportTimestamp: true,
	})
	return logger, closer, nil
}
