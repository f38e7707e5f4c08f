package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/touchcone/internal/engine/mesh"
)

// stripEngine draws the cone as a triangle strip and its base as a fan.
type stripEngine struct {
	base
	mesh *mesh.Strip
}

func newStripEngine(params mesh.Params) *stripEngine {
	return &stripEngine{base: newBase(params, BackendStrip)}
}

func (e *stripEngine) Initialize(width, height int) error {
	m, err := mesh.GenerateStrip(e.params)
	if err != nil {
		return fmt.Errorf("strip mesh: %w", err)
	}
	e.mesh = m
	e.touch.SetPivot(width, height)

	e.log.Debug("strip engine initialized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("body_vertices", len(m.Body)),
		zap.Int("disk_vertices", len(m.Disk)),
	)
	return nil
}

func (e *stripEngine) Render() Frame {
	if e.mesh == nil {
		return e.frame(nil)
	}
	return e.frame([]DrawCall{
		{Name: "body", Primitive: TriangleStrip, Vertices: e.mesh.Body},
		{Name: "disk", Primitive: TriangleFan, Vertices: e.mesh.Disk},
	})
}
