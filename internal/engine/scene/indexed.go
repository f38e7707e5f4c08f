package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/touchcone/internal/engine/mesh"
)

// indexedEngine draws shared cone vertices through an 8-bit index buffer.
// The disk is drawn with a constant white color.
type indexedEngine struct {
	base
	mesh *mesh.Indexed
}

func newIndexedEngine(params mesh.Params) *indexedEngine {
	return &indexedEngine{base: newBase(params, BackendIndexed)}
}

func (e *indexedEngine) Initialize(width, height int) error {
	m, err := mesh.GenerateIndexed(e.params)
	if err != nil {
		return fmt.Errorf("indexed mesh: %w", err)
	}
	e.mesh = m
	e.touch.SetPivot(width, height)

	e.log.Debug("indexed engine initialized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("body_indices", m.BodyIndexCount),
		zap.Int("disk_indices", m.DiskIndexCount),
	)
	return nil
}

func (e *indexedEngine) Render() Frame {
	if e.mesh == nil {
		return e.frame(nil)
	}
	white := diskWhite
	return e.frame([]DrawCall{
		{Name: "body", Primitive: Triangles, Vertices: e.mesh.Vertices, Indices: e.mesh.BodyIndices()},
		{Name: "disk", Primitive: Triangles, Vertices: e.mesh.Vertices, Indices: e.mesh.DiskIndices(), ConstantColor: &white},
	})
}
