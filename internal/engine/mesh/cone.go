package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/touchcone/pkg/math"
)

var (
	apex      = math.Vec3{X: 0, Y: 1, Z: 0}
	diskColor = math.Vec4{X: 0.75, Y: 0.75, Z: 0.75, W: 1}
	white     = math.Vec4{X: 1, Y: 1, Z: 1, W: 1}
)

// theta returns the angle of slice k. It is derived from k rather than
// accumulated so that regeneration is bit-for-bit identical.
func theta(k, slices int) float32 {
	return float32(k) * (2 * math32.Pi / float32(slices))
}

// rim returns the base-circle point at angle th.
func (p Params) rim(th float32) math.Vec3 {
	return math.Vec3{
		X: p.Radius * math32.Cos(th),
		Y: 1 - p.Height,
		Z: p.Radius * math32.Sin(th),
	}
}

// shade is the grayscale gradient |sin th| shared by an apex/rim pair.
func shade(th float32) math.Vec4 {
	b := math32.Abs(math32.Sin(th))
	return math.Vec4{X: b, Y: b, Z: b, W: 1}
}

// GenerateStrip builds the cone body as a triangle strip and the base as a
// triangle fan. The rim is walked Slices+1 times so the last slice closes
// onto the first.
func GenerateStrip(p Params) (*Strip, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.Slices
	m := &Strip{
		Body: make([]Vertex, 0, 2*(n+1)),
		Disk: make([]Vertex, 0, n+2),
	}

	// Fan pivot
	m.Disk = append(m.Disk, Vertex{
		Position: math.Vec3{X: 0, Y: 1 - p.Height, Z: 0},
		Color:    diskColor,
	})

	for k := 0; k <= n; k++ {
		th := theta(k, n)
		rim := p.rim(th)
		m.Disk = append(m.Disk, Vertex{Position: rim, Color: diskColor})

		color := shade(th)
		m.Body = append(m.Body,
			Vertex{Position: apex, Color: color},
			Vertex{Position: rim, Color: color},
		)
	}

	return m, nil
}

// GenerateIndexed builds the cone as shared vertices and an 8-bit triangle
// list. Vertices hold one apex/rim pair per slice followed by the disk centre.
//
// Body triangle for even offset i: (i, i+1, i+3) mod 2n.
// Disk triangle for odd offset i:  (centre, i, i+2) mod 2n.
func GenerateIndexed(p Params) (*Indexed, error) {
	if err := p.ValidateIndexed(); err != nil {
		return nil, err
	}

	n := p.Slices
	vertexCount := p.IndexedVertexCount()

	m := &Indexed{
		Vertices:       make([]Vertex, 0, vertexCount),
		BodyIndexCount: 3 * n,
		DiskIndexCount: 3 * n,
	}

	for k := 0; k < n; k++ {
		th := theta(k, n)
		color := shade(th)
		m.Vertices = append(m.Vertices,
			Vertex{Position: apex, Color: color},
			Vertex{Position: p.rim(th), Color: color},
		)
	}
	m.Vertices = append(m.Vertices, Vertex{
		Position: math.Vec3{X: 0, Y: 1 - p.Height, Z: 0},
		Color:    white,
	})

	wrap := 2 * n
	m.Indices = make([]uint8, 0, m.BodyIndexCount+m.DiskIndexCount)
	for i := 0; i < wrap; i += 2 {
		m.Indices = append(m.Indices,
			uint8(i),
			uint8((i+1)%wrap),
			uint8((i+3)%wrap),
		)
	}

	center := uint8(vertexCount - 1)
	for i := 1; i < wrap; i += 2 {
		m.Indices = append(m.Indices,
			center,
			uint8(i),
			uint8((i+2)%wrap),
		)
	}

	return m, nil
}

// Interleave packs vertices as position followed by color, VertexStride
// floats per vertex, ready for a GL array buffer.
func Interleave(vertices []Vertex) []float32 {
	buf := make([]float32, len(vertices)*VertexStride)
	rest := buf
	for _, v := range vertices {
		rest = v.Position.Write(rest)
		rest = v.Color.Write(rest)
	}
	return buf
}
