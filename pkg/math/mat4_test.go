package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestUniformScale(t *testing.T) {
	m := UniformScale(1.5)

	if m[0] != 1.5 || m[5] != 1.5 || m[10] != 1.5 || m[15] != 1 {
		t.Errorf("UniformScale diagonal: got (%f, %f, %f, %f)", m[0], m[5], m[10], m[15])
	}
}

func TestTransformVec3(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformVec3(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestRotateZ90(t *testing.T) {
	m := RotateZ(float32(math.Pi / 2))
	got := m.TransformVec3(Vec3{1, 0, 0})

	// Counter-clockwise: X axis goes to Y axis
	if abs(got.X) > 0.001 || abs(got.Y-1) > 0.001 || abs(got.Z) > 0.001 {
		t.Errorf("RotateZ 90: got %v, want (0, 1, 0)", got)
	}
}

func TestMulOrder(t *testing.T) {
	// Translate * Scale scales first, then translates.
	m := Translate(0, 0, -7).Mul(UniformScale(2))
	got := m.TransformVec3(Vec3{1, 1, 1})

	want := Vec3{2, 2, -5}
	if got != want {
		t.Errorf("T*S: got %v, want %v", got, want)
	}
}

func TestFrustumDepthRange(t *testing.T) {
	m := Frustum(-1.6, 1.6, -2.4, 2.4, 5, 10)

	if m[11] != -1 || m[15] != 0 {
		t.Errorf("Frustum perspective row: got [11]=%f [15]=%f", m[11], m[15])
	}

	near := m.TransformVec3(Vec3{0, 0, -5})
	if near.Z != -1 {
		t.Errorf("near plane should map to -1, got %f", near.Z)
	}

	far := m.TransformVec3(Vec3{0, 0, -10})
	if far.Z != 1 {
		t.Errorf("far plane should map to 1, got %f", far.Z)
	}

	// Right edge of the near plane maps to the right edge of clip space.
	edge := m.TransformVec3(Vec3{1.6, 0, -5})
	if abs(edge.X-1) > 0.0001 {
		t.Errorf("right edge should map to x=1, got %f", edge.X)
	}
}

func TestAngles(t *testing.T) {
	if got := Degrees(Radians(90)); abs(got-90) > 0.0001 {
		t.Errorf("Degrees(Radians(90)) = %f", got)
	}
	if got := Radians(180); abs(got-float32(math.Pi)) > 0.0001 {
		t.Errorf("Radians(180) = %f, want pi", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
