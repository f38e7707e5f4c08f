// Package renderer executes scene frames with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/touchcone/internal/engine/framebuffer"
	"github.com/Faultbox/touchcone/internal/engine/mesh"
	"github.com/Faultbox/touchcone/internal/engine/scene"
	"github.com/Faultbox/touchcone/internal/engine/shader"
	"github.com/Faultbox/touchcone/internal/engine/shaders"
	"github.com/Faultbox/touchcone/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// buffers caches the GL copy of one draw call's vertex and index data.
type buffers struct {
	vbo, ebo uint32
	vertices *mesh.Vertex
	count    int
	indices  *uint8
	nindices int
}

// Renderer draws scene frames into an offscreen target and presents them.
type Renderer struct {
	config Config
	log    *zap.Logger

	program       uint32
	positionSlot  uint32
	colorSlot     uint32
	projectionLoc int32
	modelViewLoc  int32

	vao     uint32
	buffers map[string]*buffers
	target  *framebuffer.Framebuffer
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:  cfg,
		log:     logger.Named("renderer"),
		buffers: make(map[string]*buffers),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	program, err := shader.CompileProgram(shaders.SimpleVertexShader, shaders.SimpleFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("cone program: %w", err)
	}
	r.program = program

	position := shader.GetAttrib(program, "Position")
	color := shader.GetAttrib(program, "SourceColor")
	if position < 0 || color < 0 {
		r.Close()
		return nil, fmt.Errorf("cone program: missing vertex attributes (Position=%d, SourceColor=%d)", position, color)
	}
	r.positionSlot = uint32(position)
	r.colorSlot = uint32(color)
	r.projectionLoc = shader.MustGetUniform(program, "Projection")
	r.modelViewLoc = shader.MustGetUniform(program, "ModelView")

	gl.GenVertexArrays(1, &r.vao)

	r.target, err = framebuffer.New(int32(cfg.Width), int32(cfg.Height))
	if err != nil {
		r.Close()
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	r.log.Debug("renderer created",
		zap.Uint32("program", r.program),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)
	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for name, b := range r.buffers {
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteBuffers(1, &b.ebo)
		delete(r.buffers, name)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.target != nil {
		r.target.Destroy()
		r.target = nil
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.target.Resize(int32(width), int32(height))
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders a frame offscreen and copies it to the window.
func (r *Renderer) Draw(frame scene.Frame) {
	r.target.Bind()

	c := frame.ClearColor
	gl.ClearColor(c.X, c.Y, c.Z, c.W)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.projectionLoc, 1, false, frame.Projection.Ptr())
	gl.UniformMatrix4fv(r.modelViewLoc, 1, false, frame.ModelView.Ptr())

	gl.BindVertexArray(r.vao)
	for _, d := range frame.Draws {
		r.drawCall(d)
	}
	gl.BindVertexArray(0)

	r.target.BlitToScreen()
}

// ReadPixels returns the last frame as bottom-up RGBA rows and its size.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.target.Size()
	return r.target.ReadPixels(), int(w), int(h)
}

func (r *Renderer) drawCall(d scene.DrawCall) {
	if len(d.Vertices) == 0 {
		return
	}
	b := r.upload(d)

	stride := int32(mesh.VertexStride * 4)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.VertexAttribPointer(r.positionSlot, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(r.positionSlot)

	if d.ConstantColor != nil {
		cc := *d.ConstantColor
		gl.DisableVertexAttribArray(r.colorSlot)
		gl.VertexAttrib4f(r.colorSlot, cc.X, cc.Y, cc.Z, cc.W)
	} else {
		gl.VertexAttribPointer(r.colorSlot, 4, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
		gl.EnableVertexAttribArray(r.colorSlot)
	}

	mode := primitiveMode(d.Primitive)
	if d.Indices != nil {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.DrawElements(mode, int32(len(d.Indices)), gl.UNSIGNED_BYTE, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(mode, 0, int32(len(d.Vertices)))
	}

	gl.DisableVertexAttribArray(r.positionSlot)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// upload copies a draw call's data to GL, reusing the buffers from the
// previous frame when the mesh slices are unchanged.
func (r *Renderer) upload(d scene.DrawCall) *buffers {
	b, ok := r.buffers[d.Name]
	if !ok {
		b = &buffers{}
		gl.GenBuffers(1, &b.vbo)
		gl.GenBuffers(1, &b.ebo)
		r.buffers[d.Name] = b
	}

	if b.vertices != &d.Vertices[0] || b.count != len(d.Vertices) {
		data := mesh.Interleave(d.Vertices)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
		b.vertices, b.count = &d.Vertices[0], len(d.Vertices)
		r.log.Debug("vertex buffer uploaded", zap.String("draw", d.Name), zap.Int("vertices", b.count))
	}

	if len(d.Indices) > 0 && (b.indices != &d.Indices[0] || b.nindices != len(d.Indices)) {
		gl.BindVertexArray(r.vao)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices), gl.Ptr(d.Indices), gl.STATIC_DRAW)
		b.indices, b.nindices = &d.Indices[0], len(d.Indices)
	}

	return b
}

func primitiveMode(p scene.Primitive) uint32 {
	switch p {
	case scene.TriangleFan:
		return gl.TRIANGLE_FAN
	case scene.Triangles:
		return gl.TRIANGLES
	default:
		return gl.TRIANGLE_STRIP
	}
}
