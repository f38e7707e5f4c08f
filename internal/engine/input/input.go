// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/touchcone/internal/engine/touch"
	"github.com/Faultbox/touchcone/pkg/math"
)

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventFingerDown
	EventFingerMove
	EventFingerUp
)

// Event represents a processed input event.
// Locations are in window pixels with Y growing downward.
type Event struct {
	Type     EventType
	Key      sdl.Scancode
	Width    int
	Height   int
	Location math.IVec2
	Previous math.IVec2
}

// Input converts SDL mouse and touch events into finger events.
// The left mouse button acts as one more finger; the first pointer down
// owns the drag until it is released.
type Input struct {
	events  []Event
	pointer touch.Tracker
	width   int
	height  int
}

// New creates a new input handler for a window of the given size.
func New(width, height int) *Input {
	// Touch is handled directly; don't also receive it as a mouse.
	sdl.SetHint("SDL_TOUCH_MOUSE_EVENTS", "0")

	return &Input{
		events: make([]Event, 0, 16),
		width:  width,
		height: height,
	}
}

// Update polls SDL events and converts them to finger events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.width, i.height = int(e.Data1), int(e.Data2)
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  i.width,
					Height: i.height,
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			loc := math.IVec2{X: int(e.X), Y: int(e.Y)}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.press(touch.MousePointer, loc)
			} else {
				i.release(touch.MousePointer, loc)
			}

		case *sdl.MouseMotionEvent:
			i.drag(touch.MousePointer, math.IVec2{X: int(e.X), Y: int(e.Y)})

		case *sdl.TouchFingerEvent:
			loc := math.IVec2{
				X: int(e.X * float32(i.width)),
				Y: int(e.Y * float32(i.height)),
			}
			// Only the first finger down drives the drag.
			id := touch.PointerID(e.FingerID)
			switch e.Type {
			case sdl.FINGERDOWN:
				i.press(id, loc)
			case sdl.FINGERMOTION:
				i.drag(id, loc)
			case sdl.FINGERUP:
				i.release(id, loc)
			}
		}
	}

	return false
}

func (i *Input) press(id touch.PointerID, loc math.IVec2) {
	if i.pointer.Press(id, loc) {
		i.events = append(i.events, Event{Type: EventFingerDown, Location: loc})
	}
}

func (i *Input) drag(id touch.PointerID, loc math.IVec2) {
	if prev, ok := i.pointer.Drag(id, loc); ok {
		i.events = append(i.events, Event{Type: EventFingerMove, Previous: prev, Location: loc})
	}
}

func (i *Input) release(id touch.PointerID, loc math.IVec2) {
	if i.pointer.Release(id, loc) {
		i.events = append(i.events, Event{Type: EventFingerUp, Location: loc})
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
