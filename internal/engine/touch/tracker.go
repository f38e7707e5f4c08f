package touch

import "github.com/Faultbox/touchcone/pkg/math"

// PointerID identifies the source of pointer samples: a touch finger or the mouse.
type PointerID int64

// MousePointer is the PointerID used for the mouse.
const MousePointer PointerID = -1

// Tracker turns raw pointer samples (mouse buttons, motion, touch fingers)
// into down/move/up transitions with a previous position for each move.
// It follows a single pointer: the one that pressed first. Samples from any
// other pointer, and motion while nothing is down, are ignored.
type Tracker struct {
	down bool
	id   PointerID
	last math.IVec2
}

// Press starts a drag by pointer id at loc. It reports false if a drag is
// already active.
func (t *Tracker) Press(id PointerID, loc math.IVec2) bool {
	if t.down {
		return false
	}
	t.down = true
	t.id = id
	t.last = loc
	return true
}

// Drag moves the tracked pointer to loc and returns its previous position.
// It reports false when id is not being tracked or the position did not change.
func (t *Tracker) Drag(id PointerID, loc math.IVec2) (math.IVec2, bool) {
	if !t.tracking(id) || loc == t.last {
		return loc, false
	}
	prev := t.last
	t.last = loc
	return prev, true
}

// Release ends the drag of pointer id. It reports false if id is not being tracked.
func (t *Tracker) Release(id PointerID, loc math.IVec2) bool {
	if !t.tracking(id) {
		return false
	}
	t.down = false
	t.last = loc
	return true
}

// Down reports whether a drag is active.
func (t *Tracker) Down() bool { return t.down }

// Pointer returns the pointer being tracked and whether there is one.
func (t *Tracker) Pointer() (PointerID, bool) { return t.id, t.down }

func (t *Tracker) tracking(id PointerID) bool {
	return t.down && t.id == id
}
