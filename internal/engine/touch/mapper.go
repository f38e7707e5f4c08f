// Package touch maps screen-space finger positions to a cone rotation and scale.
package touch

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/touchcone/pkg/math"
)

const (
	// RestScale is the model scale while no finger is down.
	RestScale float32 = 1.0
	// PressedScale is the model scale while a finger is down.
	PressedScale float32 = 1.5
)

// State is a snapshot of the mapper.
type State struct {
	Angle float32 // degrees, in [-180, 180]
	Scale float32
	Pivot math.IVec2
}

// Mapper turns finger events into a rotation angle around a pivot point.
//
// The angle is a direct function of the finger's absolute position on a
// circle around the pivot, not of the drag delta: straight up is 0, the
// right half of the screen gives negative angles and the left half positive.
type Mapper struct {
	angle float32
	scale float32
	pivot math.IVec2
}

// NewMapper returns a mapper at rest with no rotation.
func NewMapper() *Mapper {
	return &Mapper{scale: RestScale}
}

// SetPivot centres the pivot on a viewport of the given size.
func (m *Mapper) SetPivot(width, height int) {
	m.pivot = math.IVec2{X: width / 2, Y: height / 2}
}

// FingerDown enlarges the model and aims it at loc.
func (m *Mapper) FingerDown(loc math.IVec2) error {
	m.scale = PressedScale
	return m.FingerMove(loc, loc)
}

// FingerMove aims the model at cur. The previous position is not used.
// A position on the pivot has no direction; the angle is then kept and an
// error wrapping math.ErrDegenerateVector is returned.
func (m *Mapper) FingerMove(_, cur math.IVec2) error {
	dir, err := cur.Sub(m.pivot).Float().TryNormalized()
	if err != nil {
		return fmt.Errorf("finger at pivot %v: %w", cur, err)
	}

	// Pixel Y grows downward.
	dir.Y = -dir.Y

	angle := math.Degrees(math32.Acos(clampUnit(dir.Y)))
	if dir.X > 0 {
		angle = -angle
	}
	m.angle = angle
	return nil
}

// FingerUp restores the rest scale. The rotation is kept.
func (m *Mapper) FingerUp(math.IVec2) {
	m.scale = RestScale
}

// Angle returns the rotation in degrees.
func (m *Mapper) Angle() float32 { return m.angle }

// Scale returns the current model scale.
func (m *Mapper) Scale() float32 { return m.scale }

// Pivot returns the pivot point in pixels.
func (m *Mapper) Pivot() math.IVec2 { return m.pivot }

// State returns a snapshot of the mapper.
func (m *Mapper) State() State {
	return State{Angle: m.angle, Scale: m.scale, Pivot: m.pivot}
}

// clampUnit guards acos against rounding just outside [-1, 1].
func clampUnit(x float32) float32 {
	return math32.Max(-1, math32.Min(1, x))
}
