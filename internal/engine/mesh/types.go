// Package mesh builds the cone and disk vertex buffers drawn by the scene.
package mesh

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/touchcone/pkg/math"
)

// VertexStride is the number of float32 values per interleaved vertex.
const VertexStride = 7

// MaxIndexedVertices is the largest vertex count addressable by 8-bit indices.
const MaxIndexedVertices = 256

var (
	ErrTooFewSlices     = errors.New("mesh: slice count must be at least 3")
	ErrInvalidDimension = errors.New("mesh: radius and height must be positive")
	ErrIndexOverflow    = errors.New("mesh: vertex count exceeds 8-bit index range")
)

// Vertex is a colored mesh vertex.
type Vertex struct {
	Position math.Vec3
	Color    math.Vec4
}

// Params controls the cone geometry.
type Params struct {
	Slices int     `yaml:"slices"`
	Radius float32 `yaml:"radius"`
	Height float32 `yaml:"height"`
}

// DefaultParams returns the stock cone: 40 slices, radius 0.5, height 1.866.
func DefaultParams() Params {
	return Params{
		Slices: 40,
		Radius: 0.5,
		Height: 1.866,
	}
}

// Validate checks that the parameters describe a drawable cone.
func (p Params) Validate() error {
	if p.Slices < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewSlices, p.Slices)
	}
	if !(p.Radius > 0) || !(p.Height > 0) || math32.IsInf(p.Radius, 0) || math32.IsInf(p.Height, 0) {
		return fmt.Errorf("%w: radius=%v height=%v", ErrInvalidDimension, p.Radius, p.Height)
	}
	return nil
}

// IndexedVertexCount returns the number of vertices GenerateIndexed produces.
func (p Params) IndexedVertexCount() int {
	return 2*p.Slices + 1
}

// ValidateIndexed is Validate plus the 8-bit index limit of the indexed form,
// which caps Slices at 127.
func (p Params) ValidateIndexed() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if n := p.IndexedVertexCount(); n > MaxIndexedVertices {
		return fmt.Errorf("%w: %d slices need %d vertices, max %d", ErrIndexOverflow, p.Slices, n, MaxIndexedVertices)
	}
	return nil
}

// Strip is the non-indexed cone: a triangle strip body and a triangle fan cap.
type Strip struct {
	Body []Vertex
	Disk []Vertex
}

// Indexed is the indexed cone: shared vertices plus an 8-bit triangle list.
// Indices[:BodyIndexCount] cover the body, the remainder covers the disk.
type Indexed struct {
	Vertices       []Vertex
	Indices        []uint8
	BodyIndexCount int
	DiskIndexCount int
}

// BodyIndices returns the triangle indices of the cone body.
func (m *Indexed) BodyIndices() []uint8 {
	return m.Indices[:m.BodyIndexCount]
}

// DiskIndices returns the triangle indices of the disk cap.
func (m *Indexed) DiskIndices() []uint8 {
	return m.Indices[m.BodyIndexCount : m.BodyIndexCount+m.DiskIndexCount]
}

// Stats summarizes buffer sizes.
type Stats struct {
	BodyVertices int `yaml:"body_vertices"`
	DiskVertices int `yaml:"disk_vertices"`
	Vertices     int `yaml:"vertices"`
	BodyIndices  int `yaml:"body_indices"`
	DiskIndices  int `yaml:"disk_indices"`
}

// Stats returns the buffer sizes of the strip mesh.
func (m *Strip) Stats() Stats {
	return Stats{
		BodyVertices: len(m.Body),
		DiskVertices: len(m.Disk),
		Vertices:     len(m.Body) + len(m.Disk),
	}
}

// Stats returns the buffer sizes of the indexed mesh.
func (m *Indexed) Stats() Stats {
	return Stats{
		Vertices:    len(m.Vertices),
		BodyIndices: m.BodyIndexCount,
		DiskIndices: m.DiskIndexCount,
	}
}
