// Package renderer provides the OpenGL implementation of the scene's
// rendering backend.
package renderer

import (
	"fmt"
	"strings"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/openmesh/meshview/internal/engine/transform"
	"github.com/openmesh/meshview/internal/logger"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPosition;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

void main() {
    gl_Position = uProjection * uView * uModel * vec4(aPosition, 1.0);
}
` + "\x00"

const fragmentShaderSource = `#version 410 core
out vec4 FragColor;

void main() {
    FragColor = vec4(1.0, 0.7, 0.0, 1.0);
}
` + "\x00"

// Renderer uploads mesh buffers and draws them with the frame transforms.
type Renderer struct {
	shaderProgram uint32
	locModel      int32
	locView       int32
	locProjection int32

	vao uint32
	vbo uint32
	ebo uint32

	frames uint64
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New() (*Renderer, error) {
	r := &Renderer{}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0.2, 0.2, 0.2, 1.0)

	if err := r.createShaderProgram(); err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.shaderProgram != 0 {
		gl.DeleteProgram(r.shaderProgram)
	}
}

// Resize updates the GL viewport to the drawable size.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// UploadAndDraw implements scene.Renderer: it uploads the flat buffers, sets
// the frame transforms, and issues one indexed triangle draw.
func (r *Renderer) UploadAndDraw(vertices []float32, indices []uint32, frame transform.Frame) error {
	if len(vertices) == 0 || len(indices) == 0 {
		return fmt.Errorf("empty mesh buffers")
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.shaderProgram)

	gl.UniformMatrix4fv(r.locModel, 1, false, frame.World.Ptr())
	gl.UniformMatrix4fv(r.locView, 1, false, frame.View.Ptr())
	gl.UniformMatrix4fv(r.locProjection, 1, false, frame.Projection.Ptr())

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_INT, nil)

	gl.BindVertexArray(0)

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		return fmt.Errorf("GL error 0x%04x during draw", glErr)
	}

	r.frames++
	return nil
}

// Frames returns the number of frames submitted so far. The host loop uses
// it to decide when the back buffer holds a fresh frame worth swapping.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// createShaderProgram compiles and links the mesh shader.
func (r *Renderer) createShaderProgram() error {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return fmt.Errorf("link failed: %s", log)
	}

	r.shaderProgram = program
	r.locModel = gl.GetUniformLocation(program, gl.Str("uModel\x00"))
	r.locView = gl.GetUniformLocation(program, gl.Str("uView\x00"))
	r.locProjection = gl.GetUniformLocation(program, gl.Str("uProjection\x00"))

	logger.Debug("shader program created", zap.Uint32("program", program))
	return nil
}

// compileShader compiles a shader from source.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %s", log)
	}

	return shader, nil
}
