package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/touchcone/internal/engine/mesh"
	"github.com/Faultbox/touchcone/internal/engine/touch"
	"github.com/Faultbox/touchcone/pkg/math"
)

var backends = []Backend{BackendStrip, BackendIndexed}

func newEngine(t *testing.T, b Backend) Engine {
	t.Helper()
	e, err := New(b, mesh.DefaultParams())
	require.NoError(t, err)
	require.NoError(t, e.Initialize(320, 480))
	return e
}

func touchState(e Engine) touch.State {
	return e.(interface{ TouchState() touch.State }).TouchState()
}

func TestStripFrame(t *testing.T) {
	f := newEngine(t, BackendStrip).Render()

	require.Len(t, f.Draws, 2)
	body, disk := f.Draws[0], f.Draws[1]

	assert.Equal(t, TriangleStrip, body.Primitive)
	assert.Len(t, body.Vertices, 82)
	assert.Nil(t, body.Indices)
	assert.Equal(t, 82, body.Count())

	assert.Equal(t, TriangleFan, disk.Primitive)
	assert.Len(t, disk.Vertices, 42)
	assert.Nil(t, disk.ConstantColor)
}

func TestIndexedFrame(t *testing.T) {
	f := newEngine(t, BackendIndexed).Render()

	require.Len(t, f.Draws, 2)
	body, disk := f.Draws[0], f.Draws[1]

	assert.Equal(t, Triangles, body.Primitive)
	assert.Len(t, body.Vertices, 81)
	assert.Len(t, body.Indices, 120)
	assert.Nil(t, body.ConstantColor)

	assert.Equal(t, Triangles, disk.Primitive)
	assert.Len(t, disk.Indices, 120)
	require.NotNil(t, disk.ConstantColor)
	assert.Equal(t, math.Vec4{X: 1, Y: 1, Z: 1, W: 1}, *disk.ConstantColor)
}

func TestFrameMatrices(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			f := newEngine(t, b).Render()

			assert.Equal(t, math.Vec4{X: 0.5, Y: 0.5, Z: 0.5, W: 1}, f.ClearColor)
			assert.Equal(t, math.Frustum(-1.6, 1.6, -2.4, 2.4, 5, 10), f.Projection)
			assert.Equal(t, math.Translate(0, 0, -7), f.ModelView)
		})
	}
}

func TestRenderBeforeInitialize(t *testing.T) {
	for _, b := range backends {
		e, err := New(b, mesh.DefaultParams())
		require.NoError(t, err)

		f := e.Render()
		assert.Empty(t, f.Draws, b.String())
		assert.Equal(t, math.Translate(0, 0, -7), f.ModelView)
	}
}

func TestRenderIsReadOnly(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			e := newEngine(t, b)
			e.OnFingerDown(math.IVec2{X: 10, Y: 10})

			before := touchState(e)
			first := e.Render()
			second := e.Render()

			assert.Equal(t, first, second)
			assert.Equal(t, before, touchState(e))
		})
	}
}

func TestFingerDrivesModelView(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			e := newEngine(t, b)
			pivot := math.IVec2{X: 160, Y: 240}
			right := pivot.Add(math.IVec2{X: 50, Y: 0})

			e.OnFingerDown(right)
			s := touchState(e)
			assert.Equal(t, pivot, s.Pivot)
			assert.Equal(t, touch.PressedScale, s.Scale)
			assert.InDelta(t, -90, s.Angle, 1e-4)

			// The apex swings to the right and grows with the scale.
			apex := e.Render().ModelView.TransformVec3(math.Vec3{X: 0, Y: 1, Z: 0})
			assert.InDelta(t, 1.5, apex.X, 1e-4)
			assert.InDelta(t, 0, apex.Y, 1e-4)
			assert.InDelta(t, -7, apex.Z, 1e-4)

			e.OnFingerUp(right)
			s = touchState(e)
			assert.Equal(t, float32(1), s.Scale)
			assert.InDelta(t, -90, s.Angle, 1e-4)
		})
	}
}

func TestFingerOnPivotKeepsAngle(t *testing.T) {
	e := newEngine(t, BackendStrip)
	pivot := math.IVec2{X: 160, Y: 240}

	e.OnFingerMove(pivot, pivot.Add(math.IVec2{X: -10, Y: 0}))
	before := touchState(e).Angle

	e.OnFingerMove(pivot, pivot)
	assert.Equal(t, before, touchState(e).Angle)
}

func TestReinitializeMovesPivot(t *testing.T) {
	e := newEngine(t, BackendIndexed)
	require.NoError(t, e.Initialize(1024, 768))

	assert.Equal(t, math.IVec2{X: 512, Y: 384}, touchState(e).Pivot)
	assert.Len(t, e.Render().Draws[0].Indices, 120)
}

func TestNoOpHooks(t *testing.T) {
	e := newEngine(t, BackendStrip)
	e.OnFingerMove(math.IVec2{}, math.IVec2{X: 0, Y: 240})
	before := e.Render()

	e.UpdateAnimation(0.016)
	e.OnRotate(OrientationLandscapeLeft)

	assert.Equal(t, before, e.Render())
}

func TestNewErrors(t *testing.T) {
	_, err := New(Backend(7), mesh.DefaultParams())
	assert.ErrorIs(t, err, ErrUnknownBackend)

	_, err = New(BackendStrip, mesh.Params{Slices: 1, Radius: 1, Height: 1})
	assert.ErrorIs(t, err, mesh.ErrTooFewSlices)

	p := mesh.DefaultParams()
	p.Slices = 200
	_, err = New(BackendIndexed, p)
	assert.ErrorIs(t, err, mesh.ErrIndexOverflow)

	// The strip backend has no index limit.
	e, err := New(BackendStrip, p)
	require.NoError(t, err)
	assert.NoError(t, e.Initialize(100, 100))
}

func TestCheckParams(t *testing.T) {
	p := mesh.DefaultParams()
	p.Slices = 127
	assert.NoError(t, CheckParams(BackendIndexed, p), "255 vertices fit 8-bit indices")

	p.Slices = 128
	assert.ErrorIs(t, CheckParams(BackendIndexed, p), mesh.ErrIndexOverflow)
	assert.NoError(t, CheckParams(BackendStrip, p))

	assert.ErrorIs(t, CheckParams(Backend(5), mesh.DefaultParams()), ErrUnknownBackend)
}

func TestParseBackend(t *testing.T) {
	b, err := ParseBackend("strip")
	require.NoError(t, err)
	assert.Equal(t, BackendStrip, b)

	b, err = ParseBackend("Indexed")
	require.NoError(t, err)
	assert.Equal(t, BackendIndexed, b)

	_, err = ParseBackend("vulkan")
	assert.ErrorIs(t, err, ErrUnknownBackend)

	assert.Equal(t, "Backend(9)", Backend(9).String())
}

func TestBackendYAML(t *testing.T) {
	type doc struct {
		Backend Backend `yaml:"backend"`
	}

	out, err := yaml.Marshal(doc{Backend: BackendIndexed})
	require.NoError(t, err)
	assert.Equal(t, "backend: indexed\n", string(out))

	var d doc
	require.NoError(t, yaml.Unmarshal([]byte("backend: strip\n"), &d))
	assert.Equal(t, BackendStrip, d.Backend)

	assert.Error(t, yaml.Unmarshal([]byte("backend: metal\n"), &d))
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "landscape-right", OrientationLandscapeRight.String())
	assert.Equal(t, "unknown", DeviceOrientation(42).String())
}
