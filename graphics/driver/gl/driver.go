/*
Package gl implements the driver interface on top of an OpenGL core
profile context via go-gl. A context must be current on the calling
thread before New is called, and every method must run on that same
thread; the graphics frontend enforces this.
*/
package gl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/spaghettifunk/opal/graphics/core"
	"github.com/spaghettifunk/opal/graphics/driver"
)

// Driver issues calls against the OpenGL context current on the
// creating thread.
type Driver struct {
	maxTextureUnits int32
	// held so the cgo callback trampoline never outlives its target
	debugCallback func(driver.ErrorInfo)
}

// New loads the OpenGL function pointers from the current context.
func New() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("loading OpenGL function pointers: %w", err)
	}

	d := &Driver{}
	gl.GetIntegerv(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS, &d.maxTextureUnits)

	core.LogInfo("OpenGL driver ready: %s, %s",
		gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.RENDERER)))

	return d, nil
}

func stageEnum(kind driver.StageKind) uint32 {
	switch kind {
	case driver.StageVertex:
		return gl.VERTEX_SHADER
	case driver.StageFragment:
		return gl.FRAGMENT_SHADER
	case driver.StageGeometry:
		return gl.GEOMETRY_SHADER
	}
	return 0
}

func bufferTarget(kind driver.BufferKind) uint32 {
	if kind == driver.BufferIndex {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func usageEnum(hint driver.UsageHint) uint32 {
	if hint == driver.UsageDynamic {
		return gl.DYNAMIC_DRAW
	}
	return gl.STATIC_DRAW
}

func componentEnum(c driver.ComponentType) uint32 {
	switch c {
	case driver.ComponentByte:
		return gl.BYTE
	case driver.ComponentUnsignedByte:
		return gl.UNSIGNED_BYTE
	case driver.ComponentShort:
		return gl.SHORT
	case driver.ComponentUnsignedShort:
		return gl.UNSIGNED_SHORT
	case driver.ComponentInt:
		return gl.INT
	case driver.ComponentUnsignedInt:
		return gl.UNSIGNED_INT
	case driver.ComponentHalfFloat:
		return gl.HALF_FLOAT
	case driver.ComponentFloat:
		return gl.FLOAT
	case driver.ComponentDouble:
		return gl.DOUBLE
	}
	return 0
}

func pixelEnums(format driver.PixelFormat) (internal int32, pixel uint32) {
	switch format {
	case driver.PixelR8:
		return gl.R8, gl.RED
	case driver.PixelRGB8:
		return gl.RGB8, gl.RGB
	default:
		return gl.RGBA8, gl.RGBA
	}
}

func wrapEnum(mode driver.WrapMode) int32 {
	switch mode {
	case driver.WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	case driver.WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	case driver.WrapClampToBorder:
		return gl.CLAMP_TO_BORDER
	default:
		return gl.REPEAT
	}
}

func filterEnum(mode driver.FilterMode) int32 {
	if mode == driver.FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func primitiveEnum(mode driver.PrimitiveKind) uint32 {
	switch mode {
	case driver.PrimitivePoints:
		return gl.POINTS
	case driver.PrimitiveLines:
		return gl.LINES
	default:
		return gl.TRIANGLES
	}
}

func indexEnum(kind driver.IndexType) uint32 {
	switch kind {
	case driver.IndexUnsignedByte:
		return gl.UNSIGNED_BYTE
	case driver.IndexUnsignedShort:
		return gl.UNSIGNED_SHORT
	default:
		return gl.UNSIGNED_INT
	}
}

// Shaders and programs.

func (d *Driver) CreateShader(kind driver.StageKind) driver.ShaderHandle {
	return driver.ShaderHandle(gl.CreateShader(stageEnum(kind)))
}

func (d *Driver) ShaderSource(shader driver.ShaderHandle, src string) {
	csources, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(uint32(shader), 1, csources, nil)
}

func (d *Driver) CompileShader(shader driver.ShaderHandle) (bool, string) {
	gl.CompileShader(uint32(shader))

	var status int32
	gl.GetShaderiv(uint32(shader), gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetShaderiv(uint32(shader), gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength)+1)
	gl.GetShaderInfoLog(uint32(shader), logLength, nil, gl.Str(infoLog))
	return false, strings.TrimRight(infoLog, "\x00")
}

func (d *Driver) DeleteShader(shader driver.ShaderHandle) {
	gl.DeleteShader(uint32(shader))
}

func (d *Driver) CreateProgram() driver.ProgramHandle {
	return driver.ProgramHandle(gl.CreateProgram())
}

func (d *Driver) AttachShader(program driver.ProgramHandle, shader driver.ShaderHandle) {
	gl.AttachShader(uint32(program), uint32(shader))
}

func (d *Driver) LinkProgram(program driver.ProgramHandle) (bool, string) {
	gl.LinkProgram(uint32(program))

	var status int32
	gl.GetProgramiv(uint32(program), gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetProgramiv(uint32(program), gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength)+1)
	gl.GetProgramInfoLog(uint32(program), logLength, nil, gl.Str(infoLog))
	return false, strings.TrimRight(infoLog, "\x00")
}

func (d *Driver) DeleteProgram(program driver.ProgramHandle) {
	gl.DeleteProgram(uint32(program))
}

func (d *Driver) UseProgram(program driver.ProgramHandle) {
	gl.UseProgram(uint32(program))
}

func (d *Driver) GetUniformLocation(program driver.ProgramHandle, name string) driver.UniformLocation {
	return driver.UniformLocation(gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00")))
}

func (d *Driver) Uniform1f(location driver.UniformLocation, v float32) {
	gl.Uniform1f(int32(location), v)
}

func (d *Driver) Uniform1i(location driver.UniformLocation, v int32) {
	gl.Uniform1i(int32(location), v)
}

func (d *Driver) Uniform1ui(location driver.UniformLocation, v uint32) {
	gl.Uniform1ui(int32(location), v)
}

func (d *Driver) UniformFloats(location driver.UniformLocation, v []float32) {
	switch len(v) {
	case 2:
		gl.Uniform2fv(int32(location), 1, &v[0])
	case 3:
		gl.Uniform3fv(int32(location), 1, &v[0])
	case 4:
		gl.Uniform4fv(int32(location), 1, &v[0])
	}
}

func (d *Driver) UniformInts(location driver.UniformLocation, v []int32) {
	switch len(v) {
	case 2:
		gl.Uniform2iv(int32(location), 1, &v[0])
	case 3:
		gl.Uniform3iv(int32(location), 1, &v[0])
	case 4:
		gl.Uniform4iv(int32(location), 1, &v[0])
	}
}

func (d *Driver) UniformMatrix(location driver.UniformLocation, dim int, v []float32) {
	switch dim {
	case 2:
		gl.UniformMatrix2fv(int32(location), 1, false, &v[0])
	case 3:
		gl.UniformMatrix3fv(int32(location), 1, false, &v[0])
	case 4:
		gl.UniformMatrix4fv(int32(location), 1, false, &v[0])
	}
}

// Buffers.

func (d *Driver) CreateBuffer() driver.BufferHandle {
	var id uint32
	gl.GenBuffers(1, &id)
	return driver.BufferHandle(id)
}

func (d *Driver) BindBuffer(kind driver.BufferKind, buffer driver.BufferHandle) {
	gl.BindBuffer(bufferTarget(kind), uint32(buffer))
}

func (d *Driver) BufferData(kind driver.BufferKind, size int, data []byte, hint driver.UsageHint) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(bufferTarget(kind), size, ptr, usageEnum(hint))
}

func (d *Driver) BufferSubData(kind driver.BufferKind, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(bufferTarget(kind), offset, len(data), gl.Ptr(data))
}

func (d *Driver) BufferGetSubData(kind driver.BufferKind, offset int, dst []byte) {
	if len(dst) == 0 {
		return
	}
	gl.GetBufferSubData(bufferTarget(kind), offset, len(dst), gl.Ptr(dst))
}

func (d *Driver) DeleteBuffer(buffer driver.BufferHandle) {
	id := uint32(buffer)
	gl.DeleteBuffers(1, &id)
}

// Vertex layouts.

func (d *Driver) CreateVertexArray() driver.LayoutHandle {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return driver.LayoutHandle(id)
}

func (d *Driver) BindVertexArray(layout driver.LayoutHandle) {
	gl.BindVertexArray(uint32(layout))
}

func (d *Driver) VertexAttribPointer(location uint32, componentCount int, componentType driver.ComponentType, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(location, int32(componentCount), componentEnum(componentType), normalized, int32(stride), uintptr(offset))
}

func (d *Driver) EnableVertexAttrib(location uint32) {
	gl.EnableVertexAttribArray(location)
}

func (d *Driver) DeleteVertexArray(layout driver.LayoutHandle) {
	id := uint32(layout)
	gl.DeleteVertexArrays(1, &id)
}

// Textures.

func (d *Driver) CreateTexture() driver.TextureHandle {
	var id uint32
	gl.GenTextures(1, &id)
	return driver.TextureHandle(id)
}

func (d *Driver) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
}

func (d *Driver) BindTexture(texture driver.TextureHandle) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(texture))
}

func (d *Driver) TexImage2D(width, height int, format driver.PixelFormat, pixels []byte) {
	internal, pixel := pixelEnums(format)

	// R8 and RGB8 rows are not 4-byte aligned in tightly packed input.
	if format.BytesPerPixel() != 4 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		defer gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}

	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(width), int32(height), 0, pixel, gl.UNSIGNED_BYTE, ptr)
}

func (d *Driver) TexWrap(mode driver.WrapMode) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapEnum(mode))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapEnum(mode))
}

func (d *Driver) TexFilter(mode driver.FilterMode) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterEnum(mode))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterEnum(mode))
}

func (d *Driver) GenerateMipmap() {
	gl.GenerateMipmap(gl.TEXTURE_2D)
}

func (d *Driver) MaxTextureUnits() int {
	return int(d.maxTextureUnits)
}

func (d *Driver) DeleteTexture(texture driver.TextureHandle) {
	id := uint32(texture)
	gl.DeleteTextures(1, &id)
}

// Draws.

func (d *Driver) DrawArrays(mode driver.PrimitiveKind, first, count int32) {
	gl.DrawArrays(primitiveEnum(mode), first, count)
}

func (d *Driver) DrawElements(mode driver.PrimitiveKind, count int32, kind driver.IndexType) {
	gl.DrawElements(primitiveEnum(mode), count, indexEnum(kind), gl.PtrOffset(0))
}

// Framebuffer state.

func (d *Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Driver) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Driver) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (d *Driver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}
