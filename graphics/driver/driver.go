/*
Package driver defines the capability surface the graphics frontend
expects from a device backend: create/delete/bind per object kind,
compile/link/status queries for shaders, upload and read-back for
buffers and textures, the two draw entry points and the error hooks.

Implementations wrap a live device context that is current on exactly
one thread. No method performs its own locking or thread checks; the
frontend owns that contract. All methods are assumed to either complete
or record a device error retrievable through the error hooks.
*/
package driver

// Driver is implemented by device backends (see the gl and headless
// subpackages). The frontend never calls the device directly; every
// operation flows through this interface.
type Driver interface {
	// Shaders and programs.
	CreateShader(kind StageKind) ShaderHandle
	ShaderSource(shader ShaderHandle, src string)
	CompileShader(shader ShaderHandle) (ok bool, infoLog string)
	DeleteShader(shader ShaderHandle)
	CreateProgram() ProgramHandle
	AttachShader(program ProgramHandle, shader ShaderHandle)
	LinkProgram(program ProgramHandle) (ok bool, infoLog string)
	DeleteProgram(program ProgramHandle)
	UseProgram(program ProgramHandle)

	// Uniforms. GetUniformLocation returns a negative location when the
	// linked program has no uniform with that name.
	GetUniformLocation(program ProgramHandle, name string) UniformLocation
	Uniform1f(location UniformLocation, v float32)
	Uniform1i(location UniformLocation, v int32)
	Uniform1ui(location UniformLocation, v uint32)
	UniformFloats(location UniformLocation, v []float32)
	UniformInts(location UniformLocation, v []int32)
	// UniformMatrix uploads a square dim x dim matrix in column-major
	// order; dim is 2, 3 or 4.
	UniformMatrix(location UniformLocation, dim int, v []float32)

	// Buffers. BufferData with nil data allocates size bytes of
	// undefined contents. All buffer operations act on the buffer
	// currently bound to the kind's target.
	CreateBuffer() BufferHandle
	BindBuffer(kind BufferKind, buffer BufferHandle)
	BufferData(kind BufferKind, size int, data []byte, hint UsageHint)
	BufferSubData(kind BufferKind, offset int, data []byte)
	BufferGetSubData(kind BufferKind, offset int, dst []byte)
	DeleteBuffer(buffer BufferHandle)

	// Vertex layouts. Attribute setup acts on the layout currently
	// bound, reading from the vertex buffer currently bound.
	CreateVertexArray() LayoutHandle
	BindVertexArray(layout LayoutHandle)
	VertexAttribPointer(location uint32, componentCount int, componentType ComponentType, normalized bool, stride, offset int)
	EnableVertexAttrib(location uint32)
	DeleteVertexArray(layout LayoutHandle)

	// Textures. Image upload and parameter setup act on the texture
	// currently bound to the active unit.
	CreateTexture() TextureHandle
	ActiveTexture(unit uint32)
	BindTexture(texture TextureHandle)
	TexImage2D(width, height int, format PixelFormat, pixels []byte)
	TexWrap(mode WrapMode)
	TexFilter(mode FilterMode)
	GenerateMipmap()
	// MaxTextureUnits reports the number of texture units the device
	// exposes; valid unit indices are [0, MaxTextureUnits).
	MaxTextureUnits() int
	DeleteTexture(texture TextureHandle)

	// Draws. DrawElements reads indices from the element buffer
	// currently bound to the active layout.
	DrawArrays(mode PrimitiveKind, first, count int32)
	DrawElements(mode PrimitiveKind, count int32, kind IndexType)

	// Framebuffer state.
	ClearColor(r, g, b, a float32)
	Clear()
	SetWireframe(enabled bool)
	Viewport(x, y, width, height int32)

	// Errors. SetDebugCallback reports false when the device has no
	// debug callback support; callers then fall back to GetError
	// polling. When supported, the callback fires synchronously on the
	// calling thread for every device-flagged error.
	SetDebugCallback(fn func(ErrorInfo)) bool
	GetError() (ErrorInfo, bool)
}
