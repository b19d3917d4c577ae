package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(3, 5, 10))
	assert.Equal(t, 10, Clamp(12, 5, 10))
	assert.Equal(t, 7, Clamp(7, 5, 10))
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(0), Lerp(0, 10, 0))
	assert.Equal(t, float32(10), Lerp(0, 10, 1))
	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))
}

func TestMat4IdentityMul(t *testing.T) {
	id := NewMat4Identity()
	translation := NewMat4Translation(Vec3{X: 1, Y: 2, Z: 3})

	assert.Equal(t, translation, id.Mul(translation))
	assert.Equal(t, translation, translation.Mul(id))
}

func TestMat4TranslationCompose(t *testing.T) {
	a := NewMat4Translation(Vec3{X: 1, Y: 0, Z: 0})
	b := NewMat4Translation(Vec3{X: 0, Y: 2, Z: 0})

	got := a.Mul(b)
	assert.Equal(t, float32(1), got.Data[12])
	assert.Equal(t, float32(2), got.Data[13])
	assert.Equal(t, float32(0), got.Data[14])
}

func TestMat4RotationZ(t *testing.T) {
	quarter := NewMat4RotationZ(float32(m.Pi / 2))

	// A quarter turn sends the X basis vector to Y.
	assert.InDelta(t, 0, quarter.Data[0], 1e-6)
	assert.InDelta(t, 1, quarter.Data[1], 1e-6)
	assert.InDelta(t, -1, quarter.Data[4], 1e-6)
	assert.InDelta(t, 0, quarter.Data[5], 1e-6)
}

func TestMat4Scale(t *testing.T) {
	scale := NewMat4Scale(Vec3{X: 2, Y: 3, Z: 4})
	point := NewMat4Translation(Vec3{X: 1, Y: 1, Z: 1})

	got := scale.Mul(point)
	assert.Equal(t, float32(2), got.Data[12])
	assert.Equal(t, float32(3), got.Data[13])
	assert.Equal(t, float32(4), got.Data[14])
}
