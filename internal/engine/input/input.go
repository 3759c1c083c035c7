// Package input translates SDL2 events into viewer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/openmesh/meshview/internal/viewer"
)

// Input drains the SDL event queue once per loop iteration and exposes the
// resulting viewer events in arrival order.
type Input struct {
	events   []viewer.Event
	openFile bool
	exposed  bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]viewer.Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.openFile = false
	i.exposed = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, viewer.Event{
					Kind:   viewer.EventResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			} else if e.Event == sdl.WINDOWEVENT_EXPOSED {
				i.exposed = true
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, viewer.Event{
				Kind: viewer.EventPointerMove,
				X:    float32(e.X),
				Y:    float32(e.Y),
			})

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, viewer.Event{Kind: viewer.EventPointerDown})
			} else if e.Type == sdl.MOUSEBUTTONUP {
				i.events = append(i.events, viewer.Event{Kind: viewer.EventPointerUp})
			}

		case *sdl.MouseWheelEvent:
			// SDL reports positive Y for scrolling away from the user;
			// passed through without inversion.
			i.events = append(i.events, viewer.Event{
				Kind:   viewer.EventWheel,
				DeltaY: float32(e.Y),
			})

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE:
				return true
			case sdl.K_o:
				i.openFile = true
			}
		}
	}

	return false
}

// Events returns the viewer events from the last Update.
func (i *Input) Events() []viewer.Event {
	return i.events
}

// OpenFileRequested reports whether the open-file key was pressed during the
// last Update.
func (i *Input) OpenFileRequested() bool {
	return i.openFile
}

// Exposed reports whether the window contents were invalidated and need a
// redraw with unchanged state.
func (i *Input) Exposed() bool {
	return i.exposed
}
