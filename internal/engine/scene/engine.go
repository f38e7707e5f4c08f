// Package scene holds the cone renderers. Each backend turns the cone mesh
// and the touch state into a Frame of draw calls; no GL calls are made here.
package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/touchcone/internal/engine/mesh"
	"github.com/Faultbox/touchcone/pkg/math"
)

// ErrUnknownBackend is returned for a backend name or value that is not recognised.
var ErrUnknownBackend = errors.New("scene: unknown backend")

// Engine is the interface a platform driver uses to run a cone renderer.
// All methods are called from a single goroutine.
type Engine interface {
	// Initialize builds the mesh and centres the pivot on a viewport.
	// Calling it again (on resize) rebuilds both.
	Initialize(width, height int) error
	// Render returns the draw calls for the current state. It does not mutate the engine.
	Render() Frame
	// UpdateAnimation advances time-based animation by dt seconds.
	UpdateAnimation(dt float32)
	// OnRotate reacts to a device orientation change.
	OnRotate(orientation DeviceOrientation)
	OnFingerDown(location math.IVec2)
	OnFingerUp(location math.IVec2)
	OnFingerMove(previous, location math.IVec2)
}

// Backend selects an Engine implementation.
type Backend int

const (
	// BackendStrip draws a triangle-strip body and a triangle-fan cap.
	BackendStrip Backend = iota
	// BackendIndexed draws shared vertices through an 8-bit index buffer.
	BackendIndexed
)

var backendNames = map[Backend]string{
	BackendStrip:   "strip",
	BackendIndexed: "indexed",
}

// String returns the config name of the backend.
func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend converts a config name to a Backend.
func ParseBackend(name string) (Backend, error) {
	for b, n := range backendNames {
		if strings.EqualFold(name, n) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// MarshalText implements encoding.TextMarshaler.
func (b Backend) MarshalText() ([]byte, error) {
	if _, ok := backendNames[b]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Backend) UnmarshalText(text []byte) error {
	v, err := ParseBackend(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// CheckParams reports whether backend can draw a cone with params.
// The indexed backend is limited by its 8-bit index buffer.
func CheckParams(backend Backend, params mesh.Params) error {
	switch backend {
	case BackendStrip:
		return params.Validate()
	case BackendIndexed:
		return params.ValidateIndexed()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownBackend, int(backend))
	}
}

// New returns an uninitialized engine for the given backend.
func New(backend Backend, params mesh.Params) (Engine, error) {
	if err := CheckParams(backend, params); err != nil {
		return nil, err
	}
	switch backend {
	case BackendStrip:
		return newStripEngine(params), nil
	case BackendIndexed:
		return newIndexedEngine(params), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(backend))
	}
}

// DeviceOrientation is the physical orientation reported by the platform.
type DeviceOrientation int

const (
	OrientationUnknown DeviceOrientation = iota
	OrientationPortrait
	OrientationPortraitUpsideDown
	OrientationLandscapeLeft
	OrientationLandscapeRight
	OrientationFaceUp
	OrientationFaceDown
)

func (o DeviceOrientation) String() string {
	switch o {
	case OrientationPortrait:
		return "portrait"
	case OrientationPortraitUpsideDown:
		return "portrait-upside-down"
	case OrientationLandscapeLeft:
		return "landscape-left"
	case OrientationLandscapeRight:
		return "landscape-right"
	case OrientationFaceUp:
		return "face-up"
	case OrientationFaceDown:
		return "face-down"
	default:
		return "unknown"
	}
}
