package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A 2x2 matrix in column-major order. */
type Mat2 struct {
	/** @brief The matrix elements */
	Data [4]float32
}

/** @brief A 3x3 matrix in column-major order. */
type Mat3 struct {
	/** @brief The matrix elements */
	Data [9]float32
}

/** @brief A 4x4 matrix in column-major order, typically used to represent object transformations. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

// NewMat2Identity returns the 2x2 identity matrix.
func NewMat2Identity() Mat2 {
	return Mat2{Data: [4]float32{
		1, 0,
		0, 1,
	}}
}

// NewMat3Identity returns the 3x3 identity matrix.
func NewMat3Identity() Mat3 {
	return Mat3{Data: [9]float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// NewMat4Identity returns the 4x4 identity matrix.
func NewMat4Identity() Mat4 {
	return Mat4{Data: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// NewMat4RotationZ builds a rotation of angle radians around the Z axis.
func NewMat4RotationZ(angle float32) Mat4 {
	c := Cos(angle)
	s := Sin(angle)
	m := NewMat4Identity()
	m.Data[0] = c
	m.Data[1] = s
	m.Data[4] = -s
	m.Data[5] = c
	return m
}

// NewMat4Translation builds a translation matrix from a position.
func NewMat4Translation(position Vec3) Mat4 {
	m := NewMat4Identity()
	m.Data[12] = position.X
	m.Data[13] = position.Y
	m.Data[14] = position.Z
	return m
}

// NewMat4Scale builds a scale matrix from per-axis factors.
func NewMat4Scale(scale Vec3) Mat4 {
	m := NewMat4Identity()
	m.Data[0] = scale.X
	m.Data[5] = scale.Y
	m.Data[10] = scale.Z
	return m
}

// Mul returns a * b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a.Data[k*4+row] * b.Data[col*4+k]
			}
			out.Data[col*4+row] = sum
		}
	}
	return out
}
