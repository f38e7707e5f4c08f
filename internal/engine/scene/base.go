package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/touchcone/internal/engine/mesh"
	"github.com/Faultbox/touchcone/internal/engine/touch"
	"github.com/Faultbox/touchcone/internal/logger"
	"github.com/Faultbox/touchcone/pkg/math"
)

// base holds what both backends share: mesh parameters and touch state.
type base struct {
	params mesh.Params
	touch  *touch.Mapper
	log    *zap.Logger
}

func newBase(params mesh.Params, backend Backend) base {
	return base{
		params: params,
		touch:  touch.NewMapper(),
		log:    logger.Named("scene").With(zap.Stringer("backend", backend)),
	}
}

// frame returns a Frame with the shared projection and current model-view.
func (b *base) frame(draws []DrawCall) Frame {
	return Frame{
		ClearColor: clearColor,
		Projection: projection(),
		ModelView:  modelView(b.touch.Angle(), b.touch.Scale()),
		Draws:      draws,
	}
}

// UpdateAnimation is a no-op: the cone only moves in response to touch.
func (b *base) UpdateAnimation(float32) {}

// OnRotate is a no-op: device orientation does not affect the cone.
func (b *base) OnRotate(orientation DeviceOrientation) {
	b.log.Debug("orientation ignored", zap.Stringer("orientation", orientation))
}

func (b *base) OnFingerDown(location math.IVec2) {
	if err := b.touch.FingerDown(location); err != nil {
		b.log.Debug("finger down on pivot, rotation kept", zap.Error(err))
	}
}

func (b *base) OnFingerUp(location math.IVec2) {
	b.touch.FingerUp(location)
}

func (b *base) OnFingerMove(previous, location math.IVec2) {
	if err := b.touch.FingerMove(previous, location); err != nil {
		b.log.Debug("finger on pivot, rotation kept", zap.Error(err))
	}
}

// TouchState returns the rotation and scale driven by finger events.
func (b *base) TouchState() touch.State {
	return b.touch.State()
}
