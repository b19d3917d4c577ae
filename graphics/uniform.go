package graphics

import (
	"github.com/spaghettifunk/opal/graphics/driver"
	"github.com/spaghettifunk/opal/graphics/math"
)

// UniformValue is the tagged variant of everything that can be uploaded
// to a program uniform: scalars, vectors and square matrices. Concrete
// types are defined below; the interface is closed.
type UniformValue interface {
	apply(d driver.Driver, location driver.UniformLocation)
	uniformType() string
}

// Float is a single float uniform.
type Float float32

func (v Float) apply(d driver.Driver, location driver.UniformLocation) {
	d.Uniform1f(location, float32(v))
}

func (v Float) uniformType() string { return "float" }

// Int is a single signed integer uniform, also used for sampler slots.
type Int int32

func (v Int) apply(d driver.Driver, location driver.UniformLocation) {
	d.Uniform1i(location, int32(v))
}

func (v Int) uniformType() string { return "int" }

// Uint is a single unsigned integer uniform.
type Uint uint32

func (v Uint) apply(d driver.Driver, location driver.UniformLocation) {
	d.Uniform1ui(location, uint32(v))
}

func (v Uint) uniformType() string { return "uint" }

// Bool is uploaded as an integer 0 or 1, as the device expects.
type Bool bool

func (v Bool) apply(d driver.Driver, location driver.UniformLocation) {
	var i int32
	if v {
		i = 1
	}
	d.Uniform1i(location, i)
}

func (v Bool) uniformType() string { return "bool" }

// Vec2 is a two-component float vector uniform.
type Vec2 math.Vec2

func (v Vec2) apply(d driver.Driver, location driver.UniformLocation) {
	d.UniformFloats(location, []float32{v.X, v.Y})
}

func (v Vec2) uniformType() string { return "vec2" }

// Vec3 is a three-component float vector uniform.
type Vec3 math.Vec3

func (v Vec3) apply(d driver.Driver, location driver.UniformLocation) {
	d.UniformFloats(location, []float32{v.X, v.Y, v.Z})
}

func (v Vec3) uniformType() string { return "vec3" }

// Vec4 is a four-component float vector uniform.
type Vec4 math.Vec4

func (v Vec4) apply(d driver.Driver, location driver.UniformLocation) {
	d.UniformFloats(location, []float32{v.X, v.Y, v.Z, v.W})
}

func (v Vec4) uniformType() string { return "vec4" }

// IVec2 is a two-component integer vector uniform.
type IVec2 [2]int32

func (v IVec2) apply(d driver.Driver, location driver.UniformLocation) {
	d.UniformInts(location, v[:])
}

func (v IVec2) uniformType() string { return "ivec2" }

// IVec3 is a three-component integer vector uniform.
type IVec3 [3]int32

func (v IVec3) apply(d driver.Driver, location driver.UniformLocation) {
	d.UniformInts(location, v[:])
}

func (v IVec3) uniformType() string { return "ivec3" }

// IVec4 is a four-component integer vector uniform.
type IVec4 [4]int32

func (v IVec4) apply(d driver.Driver, location driver.UniformLocation) {
	d.UniformInts(location, v[:])
}

func (v IVec4) uniformType() string { return "ivec4" }

// Mat2 is a 2x2 float matrix uniform in column-major order.
type Mat2 math.Mat2

func (v Mat2) apply(d driver.Driver, location driver.UniformLocation) {
	d.UniformMatrix(location, 2, v.Data[:])
}

func (v Mat2) uniformType() string { return "mat2" }

// Mat3 is a 3x3 float matrix uniform in column-major order.
type Mat3 math.Mat3

func (v Mat3) apply(d driver.Driver, location driver.UniformLocation) {
	d.UniformMatrix(location, 3, v.Data[:])
}

func (v Mat3) uniformType() string { return "mat3" }

// Mat4 is a 4x4 float matrix uniform in column-major order.
type Mat4 math.Mat4

func (v Mat4) apply(d driver.Driver, location driver.UniformLocation) {
	d.UniformMatrix(location, 4, v.Data[:])
}

func (v Mat4) uniformType() string { return "mat4" }
