package main

import (
	"github.com/charmbracelet/log"
	"github.com/taigrr/attitude/pkg/engine"
	"github.com/taigrr/attitude/pkg/models"
	"github.com/taigrr/attitude/pkg/render"
)

// Fill alpha for face interiors. Outlines are opaque.
const fillAlpha = 0x48

// partColors maps model parts to palette colors. Unknown parts, such as
// meshes from a GLB file, use ColorCyan.
var partColors = map[string]render.Color{
	models.PartWing:     render.ColorCyan,
	models.PartFuselage: render.ColorGreen,
	models.PartTail:     render.ColorAmber,
}

// faceStyles returns one style per face of m, colored by part.
func faceStyles(m *models.Model) []render.FaceStyle {
	styles := make([]render.FaceStyle, m.FaceCount())
	for i := range styles {
		c, ok := partColors[m.Face(i).Part]
		if !ok {
			c = render.ColorCyan
		}
		styles[i] = render.FaceStyle{
			Fill:   render.WithAlpha(c, fillAlpha),
			Stroke: c,
		}
	}
	return styles
}

// scene is the engine plus everything needed to turn its output into pixels.
// It is only touched from the tick goroutine.
type scene struct {
	engine  *engine.Engine
	surface *render.Surface
	fb      *render.Framebuffer
	bg      render.Color
}

func newScene(m *models.Model, cfg config, logger *log.Logger, width, height int) (*scene, error) {
	bg, err := cfg.background()
	if err != nil {
		return nil, err
	}

	surface := render.NewSurface(faceStyles(m))
	eng, err := engine.New(m, engine.Options{
		Attitude:   cfg.Attitude,
		Projection: cfg.Projection,
		Sink:       surface,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	return &scene{
		engine:  eng,
		surface: surface,
		fb:      render.NewFramebuffer(width, height),
		bg:      bg,
	}, nil
}

// viewport returns the current framebuffer size for the next step.
func (s *scene) viewport() render.Viewport {
	return s.fb.Viewport()
}

// resize replaces the framebuffer if the size changed.
func (s *scene) resize(width, height int) bool {
	if s.fb.Width == width && s.fb.Height == height {
		return false
	}
	s.fb = render.NewFramebuffer(width, height)
	return true
}

// paint redraws the framebuffer from the surface.
func (s *scene) paint() {
	s.fb.Clear(s.bg)
	s.surface.Draw(s.fb)
}
