package scene

import (
	"github.com/Faultbox/touchcone/internal/engine/mesh"
	"github.com/Faultbox/touchcone/pkg/math"
)

// Primitive is the GL primitive a draw call is assembled as.
type Primitive int

const (
	TriangleStrip Primitive = iota
	TriangleFan
	Triangles
)

func (p Primitive) String() string {
	switch p {
	case TriangleStrip:
		return "triangle-strip"
	case TriangleFan:
		return "triangle-fan"
	case Triangles:
		return "triangles"
	default:
		return "unknown"
	}
}

// DrawCall is one draw of a vertex stream.
//
// With Indices nil the vertices are drawn in order. ConstantColor, when set,
// replaces the per-vertex colors.
type DrawCall struct {
	Name          string
	Primitive     Primitive
	Vertices      []mesh.Vertex
	Indices       []uint8
	ConstantColor *math.Vec4
}

// Count returns the number of elements the call draws.
func (d DrawCall) Count() int {
	if d.Indices != nil {
		return len(d.Indices)
	}
	return len(d.Vertices)
}

// Frame is everything needed to draw one frame.
// Slices in a Frame alias the engine's mesh and must be treated as read-only.
type Frame struct {
	ClearColor math.Vec4
	Projection math.Mat4
	ModelView  math.Mat4
	Draws      []DrawCall
}

var (
	clearColor = math.Vec4{X: 0.5, Y: 0.5, Z: 0.5, W: 1}
	diskWhite  = math.Vec4{X: 1, Y: 1, Z: 1, W: 1}
)

// projection is the fixed view frustum of the demo.
func projection() math.Mat4 {
	return math.Frustum(-1.6, 1.6, -2.4, 2.4, 5, 10)
}

// modelView places the cone 7 units in front of the eye, spun about the
// view axis by angle degrees and scaled uniformly.
func modelView(angle, scale float32) math.Mat4 {
	return math.Translate(0, 0, -7).
		Mul(math.RotateZ(math.Radians(angle))).
		Mul(math.UniformScale(scale))
}
