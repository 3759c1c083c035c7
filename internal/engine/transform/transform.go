// Package transform derives the per-frame view, projection, and world
// matrices from camera state and viewport dimensions.
package transform

import (
	"github.com/openmesh/meshview/internal/config"
	"github.com/openmesh/meshview/pkg/math"
)

// Viewport is the drawable size in pixels, supplied per frame.
type Viewport struct {
	Width  int
	Height int
}

// Aspect returns width over height, falling back to 1 for a degenerate
// viewport so the projection stays finite.
func (v Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Frame is one complete set of transforms for a single render submission.
// It is produced fresh on every draw and never persisted.
type Frame struct {
	World      math.Mat4
	View       math.Mat4
	Projection math.Mat4
}

// Derive computes the frame matrices for the given camera pose. Pure:
// identical inputs yield bit-identical matrices.
//
// The rotation wiring is deliberate: vertical drag (rotY here is the
// horizontal-drag accumulator) spins about the X axis and horizontal drag
// about the Z axis. That pairing is the interaction feel the viewer shipped
// with; the X-then-Y-then-Z composition order is fixed even though the Y
// term is always identity.
func Derive(rotX, rotY, offset float32, vp Viewport, cam config.CameraConfig) Frame {
	projection := math.Perspective(math.Radians(cam.FOVDegrees), vp.Aspect(), cam.Near, cam.Far)

	eye := math.Vec3{X: 0, Y: offset, Z: offset}
	target := math.Vec3{}
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	view := math.LookAt(eye, target, up)

	world := math.Identity().
		Mul(math.RotateX(math.Radians(-rotY))).
		Mul(math.RotateY(0)).
		Mul(math.RotateZ(math.Radians(rotX)))

	return Frame{
		World:      world,
		View:       view,
		Projection: projection,
	}
}
