// Package scene owns the currently loaded mesh and assembles frames for the
// rendering backend.
package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/openmesh/meshview/internal/config"
	"github.com/openmesh/meshview/internal/engine/transform"
	"github.com/openmesh/meshview/internal/logger"
	"github.com/openmesh/meshview/pkg/obj"
)

// ErrNoMeshLoaded is returned by Draw before the first successful load.
// Recoverable: load a mesh and draw again.
var ErrNoMeshLoaded = errors.New("no mesh loaded")

// Renderer is the graphics backend boundary. The scene never issues
// graphics-API calls itself; it only supplies flat buffers and matrices.
type Renderer interface {
	UploadAndDraw(vertices []float32, indices []uint32, frame transform.Frame) error
}

// Scene composes camera state and the loaded mesh into render submissions.
type Scene struct {
	renderer Renderer
	cam      config.CameraConfig
	mesh     *obj.Mesh
}

// New creates a scene with no mesh loaded.
func New(renderer Renderer, cam config.CameraConfig) *Scene {
	return &Scene{
		renderer: renderer,
		cam:      cam,
	}
}

// LoadMesh replaces any previously held mesh unconditionally. The old mesh
// is discarded entirely; there is no merge or append.
func (s *Scene) LoadMesh(mesh *obj.Mesh) {
	s.mesh = mesh
	logger.Info("mesh loaded",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
	)
}

// HasMesh reports whether a mesh is currently loaded.
func (s *Scene) HasMesh() bool {
	return s.mesh != nil
}

// Draw derives the frame matrices for the given camera pose and hands them,
// with the mesh buffers, to the rendering backend. Returns ErrNoMeshLoaded
// before the first load. A backend failure skips this frame only; the scene
// state is untouched and the next draw proceeds normally.
func (s *Scene) Draw(vp transform.Viewport, rotX, rotY, offset float32) error {
	if s.mesh == nil {
		return ErrNoMeshLoaded
	}

	frame := transform.Derive(rotX, rotY, offset, vp, s.cam)

	if err := s.renderer.UploadAndDraw(s.mesh.Vertices, s.mesh.Indices, frame); err != nil {
		return fmt.Errorf("render backend: %w", err)
	}
	return nil
}
