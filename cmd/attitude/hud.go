package main

import (
	"fmt"
	"image"
	"math"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/attitude/pkg/engine"
	"github.com/taigrr/attitude/pkg/render"
)

// The telemetry readout updates on its own slower clock.
const telemetryInterval = 500 * time.Millisecond

// telemetry is a synthetic ALT/SPD/HDG feed plus a mission progress counter.
type telemetry struct {
	ticks   int
	mission float64 // Percent, 0..100
}

func (t *telemetry) advance() {
	t.ticks++
	t.mission += 0.7
	if t.mission > 100 {
		t.mission = 0
	}
}

func (t telemetry) alt() float64 { return 120 + 10*math.Sin(float64(t.ticks)/10) }
func (t telemetry) spd() float64 { return 45 + 5*math.Cos(float64(t.ticks)/12) }
func (t telemetry) hdg() float64 { return float64((t.ticks * 3) % 360) }

func (t telemetry) String() string {
	return fmt.Sprintf("ALT %03.0fm  SPD %03.0fkt  HDG %03.0f°  MSN %3.0f%%",
		t.alt(), t.spd(), t.hdg(), t.mission)
}

type hudStyles struct {
	fps, title, faces, attitude, telemetry, clock, paused lipgloss.Style
}

func newHUDStyles() hudStyles {
	bar := lipgloss.NewStyle().Background(render.ColorSteel).Padding(0, 1)
	return hudStyles{
		fps:       bar.Foreground(render.ColorGreen),
		title:     bar.Foreground(render.ColorCyan).Bold(true),
		faces:     bar.Foreground(render.ColorCyan),
		attitude:  bar.Foreground(render.ColorGreen),
		telemetry: bar.Foreground(render.ColorAmber),
		clock:     bar.Foreground(render.ColorCyan),
		paused:    bar.Foreground(render.ColorRed).Bold(true).Blink(true),
	}
}

// HUD renders an overlay with frame rate, attitude and telemetry.
type HUD struct {
	title string
	faces int

	fpsSpring harmonica.Spring
	fps       float64
	fpsVel    float64
	lastFrame time.Time

	telemetry     telemetry
	lastTelemetry time.Time

	styles hudStyles
}

// NewHUD creates a HUD for a model with the given name and face count.
func NewHUD(title string, faces, fps int) *HUD {
	return &HUD{
		title: title,
		faces: faces,
		// Critically damped so the readout settles without overshoot
		fpsSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
		fps:       float64(fps),
		styles:    newHUDStyles(),
	}
}

// Update advances the FPS readout and telemetry (call once per frame).
func (h *HUD) Update(now time.Time) {
	if h.lastFrame.IsZero() {
		h.lastFrame, h.lastTelemetry = now, now
		return
	}

	if dt := now.Sub(h.lastFrame).Seconds(); dt > 0 {
		h.fps, h.fpsVel = h.fpsSpring.Update(h.fps, h.fpsVel, 1/dt)
	}
	h.lastFrame = now

	// Catch up after a stall, but don't replay minutes of ticks
	if now.Sub(h.lastTelemetry) > 10*telemetryInterval {
		h.lastTelemetry = now.Add(-telemetryInterval)
	}
	for now.Sub(h.lastTelemetry) >= telemetryInterval {
		h.telemetry.advance()
		h.lastTelemetry = h.lastTelemetry.Add(telemetryInterval)
	}
}

// FPS returns the smoothed frame rate.
func (h *HUD) FPS() float64 {
	return h.fps
}

// attitudeText formats the engine's current rotation in degrees.
func attitudeText(eng *engine.Engine) string {
	e := eng.Euler()
	return fmt.Sprintf("YAW %5.1f°  PIT %5.1f°  ROL %5.1f°",
		degrees(e.Yaw), degrees(e.Pitch), degrees(e.Roll))
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Draw writes the HUD into the top and bottom rows of area.
func (h *HUD) Draw(scr uv.Screen, area uv.Rectangle, eng *engine.Engine) {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	top, bottom := area.Min.Y, area.Max.Y-1

	// Top left: FPS
	h.drawAt(scr, area, area.Min.X, top, h.styles.fps.Render(fmt.Sprintf("%.0f FPS", h.fps)))

	// Top middle: model name
	title := h.styles.title.Render(h.title)
	h.drawAt(scr, area, area.Min.X+max((area.Dx()-lipgloss.Width(title))/2, 0), top, title)

	// Top right: face count
	faces := h.styles.faces.Render(fmt.Sprintf("%d faces", h.faces))
	h.drawAt(scr, area, area.Max.X-lipgloss.Width(faces), top, faces)

	if bottom == top {
		return
	}

	// Bottom: attitude, telemetry, clock
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		h.styles.attitude.Render(attitudeText(eng)),
		h.styles.telemetry.Render(h.telemetry.String()),
		h.styles.clock.Render(h.lastFrame.Format(time.TimeOnly)),
	)
	if eng.Paused() {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, h.styles.paused.Render("PAUSED"))
	}
	h.drawAt(scr, area, area.Min.X, bottom, line)
}

// drawAt draws a single styled line starting at (x, y), clipped to area.
func (h *HUD) drawAt(scr uv.Screen, area uv.Rectangle, x, y int, s string) {
	x = max(x, area.Min.X)
	if x >= area.Max.X {
		return
	}
	rect := uv.Rectangle(image.Rect(x, y, area.Max.X, y+1))
	uv.NewStyledString(s).Draw(scr, rect)
}
