// Package renderer draws the navmesh and character markers with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/paperman/internal/engine/camera"
	"github.com/Faultbox/paperman/internal/engine/debug"
	"github.com/Faultbox/paperman/internal/engine/scene"
	"github.com/Faultbox/paperman/internal/engine/shader"
	"github.com/Faultbox/paperman/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uMVP;

out vec3 vertexColor;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vertexColor = aColor;
}
`

const fragmentShader = `
#version 410 core

in vec3 vertexColor;
uniform vec4 uTint;
out vec4 FragColor;

void main() {
	FragColor = vec4(vertexColor * uTint.rgb, uTint.a);
}
`

var boundsColor = [3]float32{0.9, 0.8, 0.2}

// buffer is a VAO/VBO pair of position+color vertices.
type buffer struct {
	vao, vbo uint32
	count    int32
}

func newBuffer() buffer {
	var b buffer
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	stride := int32(scene.VertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return b
}

func (b *buffer) upload(vertices []float32) {
	b.count = int32(len(vertices) / scene.VertexStride)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (b *buffer) draw(mode uint32) {
	if b.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(mode, 0, b.count)
	gl.BindVertexArray(0)
}

func (b *buffer) delete() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program

	floor  buffer
	edges  buffer
	marker buffer
	bounds buffer

	// ShowBounds draws the navmesh bounding box.
	ShowBounds bool

	meshVersion uint64
	log         *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.program, err = shader.New(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.floor = newBuffer()
	r.edges = newBuffer()
	r.marker = newBuffer()
	r.bounds = newBuffer()
	r.marker.upload(scene.MarkerVertices())

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.floor.delete()
	r.edges.delete()
	r.marker.delete()
	r.bounds.delete()
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

func (r *Renderer) aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Draw renders one frame of s seen from cam.
func (r *Renderer) Draw(s *scene.Scene, cam *camera.FollowCamera) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if v := s.MeshVersion(); v != r.meshVersion {
		r.floor.upload(scene.FloorVertices(s.NavMesh()))
		r.edges.upload(scene.FloorEdges(s.NavMesh()))
		if m := s.NavMesh(); m != nil && m.Len() > 0 {
			r.bounds.upload(debug.BoxWireframe(m.Bounds(), boundsColor))
		} else {
			r.bounds.upload(nil)
		}
		r.meshVersion = v
		r.log.Debug("navmesh buffers rebuilt", zap.Int32("vertices", r.floor.count))
	}

	vp := cam.ViewProjection(r.aspect())
	r.program.Use()

	r.program.SetMat4("uMVP", vp)
	r.program.SetVec4("uTint", [4]float32{1, 1, 1, 0.85})
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(1, 1)
	r.floor.draw(gl.TRIANGLES)
	gl.Disable(gl.POLYGON_OFFSET_FILL)

	r.program.SetVec4("uTint", [4]float32{1, 1, 1, 0.35})
	r.edges.draw(gl.LINES)
	if r.ShowBounds {
		r.program.SetVec4("uTint", [4]float32{1, 1, 1, 0.6})
		r.bounds.draw(gl.LINES)
	}

	for _, n := range s.Nodes() {
		r.program.SetMat4("uMVP", vp.Mul(n.Model()))
		r.program.SetVec4("uTint", scene.Tint(n.Animation))
		r.marker.draw(gl.TRIANGLES)
	}
	gl.UseProgram(0)
}

// ReadPixels returns the current back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
