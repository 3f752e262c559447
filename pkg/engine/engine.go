// Package engine ties the model, the orientation clock, the projector and the
// polygon adapter into a per-frame step.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/log"
	"github.com/taigrr/attitude/pkg/attitude"
	"github.com/taigrr/attitude/pkg/math3d"
	"github.com/taigrr/attitude/pkg/models"
	"github.com/taigrr/attitude/pkg/render"
)

// DefaultFPS is the reference tick rate.
const DefaultFPS = 25

var (
	// ErrNoSink is returned by New when Options.Sink is nil.
	ErrNoSink = errors.New("engine: no polygon sink")

	// ErrInvalidFPS is returned by Run for a non-positive tick rate.
	ErrInvalidFPS = errors.New("engine: fps must be positive")

	// ErrSinkMismatch is returned by New when the sink's face count differs
	// from the model's.
	ErrSinkMismatch = errors.New("engine: sink face count does not match model")
)

// faceCounter is implemented by sinks with a fixed number of face slots,
// such as render.Surface.
type faceCounter interface {
	FaceCount() int
}

// ViewportFunc reports the drawing area for the next frame.
type ViewportFunc func() render.Viewport

// Options configure an Engine.
type Options struct {
	Attitude   attitude.Params
	Projection render.ProjectionParams
	Sink       render.PolygonSink // Must accept face indices [0, model.FaceCount())
	Logger     *log.Logger        // nil discards
}

// DefaultOptions returns the reference params for sink.
func DefaultOptions(sink render.PolygonSink) Options {
	return Options{
		Attitude:   attitude.DefaultParams(),
		Projection: render.DefaultProjectionParams(),
		Sink:       sink,
	}
}

// Engine advances the orientation and pushes fresh face geometry to its sink
// once per step. Steps must be delivered serially.
type Engine struct {
	model     *models.Model
	clock     *attitude.Clock
	projector *render.Projector
	adapter   *render.Adapter
	sink      render.PolygonSink
	logger    *log.Logger

	frames  uint64
	skipped uint64
}

// New creates an engine for model. It fails on invalid params; a model built
// by models.New is already known to be valid.
func New(model *models.Model, opts Options) (*Engine, error) {
	if opts.Sink == nil {
		return nil, ErrNoSink
	}
	if err := opts.Attitude.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	if err := opts.Projection.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	adapter := render.NewAdapter(model)
	if fc, ok := opts.Sink.(faceCounter); ok && fc.FaceCount() != adapter.FaceCount() {
		return nil, fmt.Errorf("%w: sink has %d, model has %d", ErrSinkMismatch, fc.FaceCount(), adapter.FaceCount())
	}

	return &Engine{
		model:     model,
		clock:     attitude.NewClock(opts.Attitude),
		projector: render.NewProjector(model.PointCount(), opts.Projection),
		adapter:   adapter,
		sink:      opts.Sink,
		logger:    logger.With("model", model.Name()),
	}, nil
}

// Model returns the model being displayed.
func (e *Engine) Model() *models.Model {
	return e.model
}

// Step advances the clock and, unless vp is empty, projects the model and
// updates every face on the sink. It reports whether the sink was updated.
// The clock advances either way.
func (e *Engine) Step(vp render.Viewport) bool {
	e.clock.Tick()

	projected, ok := e.projector.Project(e.model.Points(), e.Euler(), vp)
	if !ok {
		e.skipped++
		e.logger.Debug("viewport skipped", "w", vp.Width, "h", vp.Height)
		return false
	}

	e.adapter.Apply(projected, e.sink)
	e.frames++
	return true
}

// Run calls Step at fps until ctx is done. size is asked for the viewport
// before every step and after, if not nil, is called with Step's result. All
// calls happen on the calling goroutine. Run returns ctx.Err().
func (e *Engine) Run(ctx context.Context, fps int, size ViewportFunc, after func(drawn bool)) error {
	if fps <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidFPS, fps)
	}

	interval := time.Duration(harmonica.FPS(fps) * float64(time.Second))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.logger.Info("engine started", "fps", fps, "interval", interval)
	defer func() {
		e.logger.Info("engine stopped", "frames", e.frames, "skipped", e.skipped)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		drawn := e.Step(size())
		if after != nil {
			after(drawn)
		}
	}
}

// Orientation returns the current orientation.
func (e *Engine) Orientation() attitude.Orientation {
	return e.clock.Orientation()
}

// SetOrientation replaces the current orientation. The next Step advances
// from it.
func (e *Engine) SetOrientation(o attitude.Orientation) {
	e.clock.Set(o)
}

// Euler returns the full rotation for the current orientation.
func (e *Engine) Euler() math3d.Euler {
	return e.clock.Orientation().Euler(e.clock.Params())
}

// Params returns the attitude params the engine was built with.
func (e *Engine) Params() attitude.Params {
	return e.clock.Params()
}

// Pause stops the orientation from advancing. Steps still redraw.
func (e *Engine) Pause() {
	if !e.clock.Paused() {
		e.logger.Debug("paused", "yaw", e.clock.Orientation().Yaw)
	}
	e.clock.Pause()
}

// Resume restarts a paused orientation.
func (e *Engine) Resume() {
	if e.clock.Paused() {
		e.logger.Debug("resumed", "yaw", e.clock.Orientation().Yaw)
	}
	e.clock.Resume()
}

// Paused reports whether the orientation is paused.
func (e *Engine) Paused() bool {
	return e.clock.Paused()
}

// Ticks returns how many times the orientation has advanced.
func (e *Engine) Ticks() uint64 {
	return e.clock.Ticks()
}

// Frames returns how many steps updated the sink.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Skipped returns how many steps were skipped by the viewport guard.
func (e *Engine) Skipped() uint64 {
	return e.skipped
}
