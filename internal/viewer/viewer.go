// Package viewer holds the single owned state of an interactive viewing
// session and the serial event dispatch that drives it.
package viewer

import (
	"bytes"
	"fmt"

	"github.com/openmesh/meshview/internal/config"
	"github.com/openmesh/meshview/internal/engine/camera"
	"github.com/openmesh/meshview/internal/engine/scene"
	"github.com/openmesh/meshview/internal/engine/transform"
	"github.com/openmesh/meshview/pkg/obj"
)

// EventKind identifies an input event.
type EventKind int

const (
	EventNone EventKind = iota
	EventPointerDown
	EventPointerUp
	EventPointerMove
	EventWheel
	EventResize
)

// Event is one host input event, delivered in arrival order.
type Event struct {
	Kind EventKind

	// Pointer position for EventPointerMove, viewport pixel space.
	X, Y float32

	// Scroll amount for EventWheel; positive means scroll away from the
	// user, passed through without inversion.
	DeltaY float32

	// Drawable size for EventResize.
	Width, Height int
}

// Viewer is the viewing session state. The host event loop is the only
// execution context and calls Dispatch serially, so no locking exists here;
// an event handler never feeds another event back into the viewer.
type Viewer struct {
	cam   *camera.Controller
	scene *scene.Scene
	vp    transform.Viewport
}

// New creates a viewer with an idle camera and no mesh.
func New(cfg *config.Config, renderer scene.Renderer) *Viewer {
	return &Viewer{
		cam:   camera.New(cfg.Camera),
		scene: scene.New(renderer, cfg.Camera),
		vp: transform.Viewport{
			Width:  cfg.Graphics.Width,
			Height: cfg.Graphics.Height,
		},
	}
}

// LoadMesh decodes a complete mesh description and swaps it in, then draws.
// On a decode failure the previously loaded mesh and the current view stay
// exactly as they were and the error is returned to the caller.
func (v *Viewer) LoadMesh(data []byte) error {
	mesh, err := obj.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding mesh: %w", err)
	}

	v.scene.LoadMesh(mesh)
	return v.Redraw()
}

// HasMesh reports whether a mesh has been loaded.
func (v *Viewer) HasMesh() bool {
	return v.scene.HasMesh()
}

// Viewport returns the current drawable size.
func (v *Viewer) Viewport() transform.Viewport {
	return v.vp
}

// Dispatch applies one input event to the camera state and, whenever the
// event changed rotation, zoom, or viewport, synchronously draws the
// just-updated state. There is no animation loop; every frame originates
// here.
func (v *Viewer) Dispatch(ev Event) error {
	switch ev.Kind {
	case EventPointerDown:
		v.cam.PointerDown()
	case EventPointerUp:
		v.cam.PointerUp()
	case EventPointerMove:
		if v.cam.PointerMove(ev.X, ev.Y) {
			return v.Redraw()
		}
	case EventWheel:
		v.cam.Wheel(ev.DeltaY)
		return v.Redraw()
	case EventResize:
		v.vp = transform.Viewport{Width: ev.Width, Height: ev.Height}
		return v.Redraw()
	}
	return nil
}

// Redraw submits a frame for the current state. Returns scene.ErrNoMeshLoaded
// before the first load; a backend failure skips this frame only.
func (v *Viewer) Redraw() error {
	return v.scene.Draw(v.vp, v.cam.RotationX, v.cam.RotationY, v.cam.Offset)
}
