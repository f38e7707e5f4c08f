package touch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/touchcone/pkg/math"
)

func TestTrackerSequence(t *testing.T) {
	var tr Tracker

	_, ok := tr.Drag(MousePointer, math.IVec2{X: 5, Y: 5})
	assert.False(t, ok, "motion without a press is ignored")

	assert.True(t, tr.Press(MousePointer, math.IVec2{X: 10, Y: 10}))
	assert.True(t, tr.Down())
	assert.False(t, tr.Press(MousePointer, math.IVec2{X: 11, Y: 11}), "second press while down")

	prev, ok := tr.Drag(MousePointer, math.IVec2{X: 12, Y: 14})
	assert.True(t, ok)
	assert.Equal(t, math.IVec2{X: 10, Y: 10}, prev)

	_, ok = tr.Drag(MousePointer, math.IVec2{X: 12, Y: 14})
	assert.False(t, ok, "no change in position")

	prev, ok = tr.Drag(MousePointer, math.IVec2{X: 20, Y: 14})
	assert.True(t, ok)
	assert.Equal(t, math.IVec2{X: 12, Y: 14}, prev)

	assert.True(t, tr.Release(MousePointer, math.IVec2{X: 20, Y: 14}))
	assert.False(t, tr.Down())
	assert.False(t, tr.Release(MousePointer, math.IVec2{X: 20, Y: 14}))
}

func TestTrackerFollowsFirstFinger(t *testing.T) {
	var tr Tracker
	const first, second PointerID = 7, 9

	assert.True(t, tr.Press(first, math.IVec2{X: 100, Y: 100}))
	assert.False(t, tr.Press(second, math.IVec2{X: 300, Y: 300}), "second finger down is ignored")

	_, ok := tr.Drag(second, math.IVec2{X: 310, Y: 310})
	assert.False(t, ok, "second finger motion is ignored")

	prev, ok := tr.Drag(first, math.IVec2{X: 120, Y: 100})
	assert.True(t, ok)
	assert.Equal(t, math.IVec2{X: 100, Y: 100}, prev, "position unaffected by the second finger")

	assert.False(t, tr.Release(second, math.IVec2{X: 310, Y: 310}), "second finger up does not end the drag")
	assert.True(t, tr.Down())
	id, ok := tr.Pointer()
	assert.True(t, ok)
	assert.Equal(t, first, id)

	_, ok = tr.Drag(MousePointer, math.IVec2{X: 1, Y: 1})
	assert.False(t, ok, "mouse motion does not move a finger drag")

	assert.True(t, tr.Release(first, math.IVec2{X: 120, Y: 100}))
	assert.False(t, tr.Down())

	// After release any pointer may start a new drag.
	assert.True(t, tr.Press(second, math.IVec2{X: 5, Y: 5}))
}
