package engine

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/taigrr/attitude/pkg/attitude"
	"github.com/taigrr/attitude/pkg/math3d"
	"github.com/taigrr/attitude/pkg/models"
	"github.com/taigrr/attitude/pkg/render"
)

// countingSink is a render.Surface that also counts SetPolygon calls.
type countingSink struct {
	*render.Surface
	calls int
}

func (s *countingSink) SetPolygon(face int, pts []math3d.Vec2) {
	s.calls++
	s.Surface.SetPolygon(face, pts)
}

func newSink(m *models.Model) *countingSink {
	return &countingSink{Surface: render.NewSurface(make([]render.FaceStyle, m.FaceCount()))}
}

func triangle() *models.Model {
	return models.MustNew("tri", []math3d.Vec3{
		math3d.V3(0, 0, 0),
		math3d.V3(1, 0, 0),
		math3d.V3(0, 1, 0),
	}, []models.Face{models.F("t", 0, 1, 2)})
}

func newEngine(t *testing.T, m *models.Model, sink render.PolygonSink, mutate func(*Options)) *Engine {
	t.Helper()
	opts := DefaultOptions(sink)
	if mutate != nil {
		mutate(&opts)
	}
	e, err := New(m, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestStepEndToEnd(t *testing.T) {
	m := triangle()
	sink := newSink(m)
	e := newEngine(t, m, sink, func(o *Options) {
		o.Attitude = attitude.Params{Step: 0.03}
		o.Projection = render.ProjectionParams{CameraDistance: 2, ScaleFactor: 0.35}
	})

	// One step short of a full turn, so the next tick lands back at rest.
	e.SetOrientation(attitude.Orientation{Yaw: attitude.FullTurn - 0.03})
	if !e.Step(render.VP(200, 200)) {
		t.Fatal("Step skipped a valid viewport")
	}

	got, ok := sink.Polygon(0)
	if !ok {
		t.Fatal("face 0 was never set")
	}
	want := []math3d.Vec2{{X: 100, Y: 100}, {X: 135, Y: 100}, {X: 100, Y: 100}}
	for i := range want {
		if math.Abs(got[i].X-want[i].X) > 1e-9 || math.Abs(got[i].Y-want[i].Y) > 1e-9 {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStepWrapsYaw(t *testing.T) {
	m := triangle()
	e := newEngine(t, m, newSink(m), nil)

	e.SetOrientation(attitude.Orientation{Yaw: 6.27})
	e.Step(render.VP(100, 100))

	want := 6.30 - 2*math.Pi
	if got := e.Orientation().Yaw; math.Abs(got-want) > 1e-12 {
		t.Errorf("yaw = %v, want %v", got, want)
	}
}

func TestStepSkipsEmptyViewport(t *testing.T) {
	m := models.Builtin()
	sink := newSink(m)
	e := newEngine(t, m, sink, nil)

	if !e.Step(render.VP(80, 60)) {
		t.Fatal("first step should draw")
	}
	calls := sink.calls
	before := make([][]math3d.Vec2, m.FaceCount())
	for i := range before {
		p, _ := sink.Polygon(i)
		before[i] = append([]math3d.Vec2(nil), p...)
	}

	for _, vp := range []render.Viewport{render.VP(0, 60), render.VP(80, 0), render.VP(-1, -1)} {
		if e.Step(vp) {
			t.Errorf("Step(%v) should skip", vp)
		}
	}

	if sink.calls != calls {
		t.Errorf("sink got %d calls during skipped steps", sink.calls-calls)
	}
	for i := range before {
		p, _ := sink.Polygon(i)
		for j := range p {
			if p[j] != before[i][j] {
				t.Fatalf("face %d point %d changed from %v to %v", i, j, before[i][j], p[j])
			}
		}
	}

	if e.Ticks() != 4 {
		t.Errorf("Ticks = %d, want 4 (clock advances on skipped steps)", e.Ticks())
	}
	if e.Frames() != 1 || e.Skipped() != 3 {
		t.Errorf("Frames = %d, Skipped = %d, want 1 and 3", e.Frames(), e.Skipped())
	}
}

func TestStepMatchesProjectPoint(t *testing.T) {
	m := models.Builtin()
	sink := newSink(m)
	e := newEngine(t, m, sink, nil)
	vp := render.VP(120, 90)
	pr := render.NewProjector(0, render.DefaultProjectionParams())

	for range 50 {
		e.Step(vp)
	}

	euler := e.Euler()
	for i := range m.FaceCount() {
		poly, _ := sink.Polygon(i)
		for j, idx := range m.Face(i).Indices {
			want, _ := pr.ProjectPoint(m.Point(idx), euler, vp)
			if poly[j] != want {
				t.Errorf("face %d vertex %d = %v, want %v", i, j, poly[j], want)
			}
		}
	}
}

func TestBuiltinStaysFinite(t *testing.T) {
	m := models.Builtin()
	sink := newSink(m)
	e := newEngine(t, m, sink, nil)

	// A little over two full turns.
	for range 450 {
		e.Step(render.VP(160, 96))
		for i := range m.FaceCount() {
			poly, _ := sink.Polygon(i)
			for _, p := range poly {
				if !p.IsFinite() {
					t.Fatalf("yaw %v: face %d has non-finite point %v", e.Orientation().Yaw, i, p)
				}
			}
		}
	}
}

func TestPauseStillDraws(t *testing.T) {
	m := triangle()
	sink := newSink(m)
	e := newEngine(t, m, sink, nil)

	e.Pause()
	if !e.Paused() {
		t.Fatal("Paused() = false after Pause")
	}
	for range 5 {
		e.Step(render.VP(50, 50))
	}
	if e.Orientation().Yaw != 0 || e.Ticks() != 0 {
		t.Errorf("paused engine advanced: yaw %v, ticks %d", e.Orientation().Yaw, e.Ticks())
	}
	if e.Frames() != 5 {
		t.Errorf("Frames = %d, want 5", e.Frames())
	}

	e.Resume()
	e.Step(render.VP(50, 50))
	if e.Orientation().Yaw != e.Params().Step {
		t.Errorf("yaw = %v after resume, want %v", e.Orientation().Yaw, e.Params().Step)
	}
}

func TestNewValidates(t *testing.T) {
	m := triangle()
	sink := newSink(m)

	tests := []struct {
		name   string
		mutate func(*Options)
		want   error
	}{
		{"no sink", func(o *Options) { o.Sink = nil }, ErrNoSink},
		{"zero step", func(o *Options) { o.Attitude.Step = 0 }, attitude.ErrInvalidParams},
		{"nan pitch", func(o *Options) { o.Attitude.Pitch = math.NaN() }, attitude.ErrInvalidParams},
		{"zero scale", func(o *Options) { o.Projection.ScaleFactor = 0 }, render.ErrInvalidProjection},
		{"inf distance", func(o *Options) { o.Projection.CameraDistance = math.Inf(1) }, render.ErrInvalidProjection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions(sink)
			tt.mutate(&opts)
			_, err := New(m, opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	m := triangle()
	sink := newSink(m)
	e := newEngine(t, m, sink, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var steps int
	err := e.Run(ctx, 500, func() render.Viewport { return render.VP(40, 40) }, func(drawn bool) {
		if !drawn {
			t.Error("step was skipped")
		}
		steps++
		if steps == 3 {
			cancel()
		}
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if e.Frames() != 3 || steps != 3 {
		t.Errorf("Frames = %d, steps = %d, want 3", e.Frames(), steps)
	}
}

func TestRunRejectsBadFPS(t *testing.T) {
	m := triangle()
	e := newEngine(t, m, newSink(m), nil)

	err := e.Run(context.Background(), 0, func() render.Viewport { return render.VP(1, 1) }, nil)
	if !errors.Is(err, ErrInvalidFPS) {
		t.Errorf("Run() error = %v, want ErrInvalidFPS", err)
	}
}

// funcSink has no FaceCount, so New cannot check it.
type funcSink func(face int, pts []math3d.Vec2)

func (f funcSink) SetPolygon(face int, pts []math3d.Vec2) { f(face, pts) }

func TestNewChecksSinkFaceCount(t *testing.T) {
	tri := triangle()

	_, err := New(tri, DefaultOptions(newSink(models.Builtin())))
	if !errors.Is(err, ErrSinkMismatch) {
		t.Errorf("New() error = %v, want ErrSinkMismatch", err)
	}

	var faces []int
	e, err := New(tri, DefaultOptions(funcSink(func(face int, _ []math3d.Vec2) {
		faces = append(faces, face)
	})))
	if err != nil {
		t.Fatalf("New() with a plain sink: %v", err)
	}
	e.Step(render.VP(10, 10))
	if len(faces) != 1 || faces[0] != 0 {
		t.Errorf("faces = %v, want [0]", faces)
	}
}
