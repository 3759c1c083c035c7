// Package camera implements the orbit camera state machine driven by
// pointer and wheel input.
package camera

import (
	gomath "math"

	"github.com/openmesh/meshview/internal/config"
)

// Cursor is a pointer position in viewport pixel space. Coordinates may be
// negative near viewport edges.
type Cursor struct {
	X, Y float32
}

// Controller holds orbit camera state. It has two states, idle and dragging;
// pointer buttons switch between them and pointer motion only rotates while
// dragging. Angles are degrees kept in [0, 360) by wrapping, never clamping;
// the zoom offset is clamped to its configured range, never wrapped.
type Controller struct {
	// RotationX accumulates vertical drag, RotationY horizontal drag.
	RotationX float32
	RotationY float32

	// Offset is the camera distance scalar.
	Offset float32

	dragging   bool
	lastCursor Cursor
	hasCursor  bool

	minZoom  float32
	maxZoom  float32
	zoomStep float32
}

// New creates a controller in the idle state with the configured zoom range.
func New(cfg config.CameraConfig) *Controller {
	return &Controller{
		Offset:   clamp(cfg.StartOffset, cfg.MinZoom, cfg.MaxZoom),
		minZoom:  cfg.MinZoom,
		maxZoom:  cfg.MaxZoom,
		zoomStep: cfg.ZoomStep,
	}
}

// Dragging reports whether a pointer button is currently held.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// PointerDown enters the dragging state. No numeric effect.
func (c *Controller) PointerDown() {
	c.dragging = true
}

// PointerUp returns to the idle state. No numeric effect.
func (c *Controller) PointerUp() {
	c.dragging = false
}

// PointerMove records the cursor position and, while dragging, applies the
// motion delta to the rotation angles. It reports whether the rotation
// changed and a redraw is due.
//
// The delta is computed against the previous cursor position, captured
// before the overwrite. The first motion event ever seen has no previous
// position and only records.
func (c *Controller) PointerMove(x, y float32) bool {
	prev := c.lastCursor
	hadCursor := c.hasCursor
	c.lastCursor = Cursor{X: x, Y: y}
	c.hasCursor = true

	if !c.dragging || !hadCursor {
		return false
	}

	deltaX := prev.X - x
	deltaY := prev.Y - y
	c.RotationX = wrap360(c.RotationX + deltaY)
	c.RotationY = wrap360(c.RotationY + deltaX)
	return true
}

// Wheel applies a scroll delta to the zoom offset, clamped to the configured
// range. It always requests a redraw, regardless of the drag state.
func (c *Controller) Wheel(deltaY float32) bool {
	c.Offset = clamp(c.Offset+c.zoomStep*deltaY, c.minZoom, c.maxZoom)
	return true
}

// wrap360 maps an angle into [0, 360) with a non-negative modulo, so
// negative deltas wrap instead of going negative.
func wrap360(angle float32) float32 {
	m := float32(gomath.Mod(float64(angle), 360))
	if m < 0 {
		m += 360
	}
	return m
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
