/*
Package headless implements the driver interface entirely in memory.

The device records every state change and keeps buffer, texture and
uniform contents readable, so frontend logic can be exercised without a
window or a GPU. It mimics the bind-then-operate statefulness of a real
device: uploads and parameter changes act on whatever is currently
bound, and bindings persist until explicitly changed.

Shader "compilation" is a shallow scan: a stage fails when its source is
empty or contains an #error directive, and the uniform table of a linked
program is built from the uniform declarations found in the attached
sources. That is enough to make name lookup, compile failure and link
failure behave like the real thing in tests.
*/
package headless

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/opal/graphics/driver"
)

// DefaultTextureUnits is the number of texture units a fresh device
// exposes. Matches the minimum a desktop GL implementation guarantees
// for a single stage.
const DefaultTextureUnits = 16

type shaderObject struct {
	kind     driver.StageKind
	source   string
	compiled bool
}

type programObject struct {
	shaders  []driver.ShaderHandle
	linked   bool
	uniforms map[string]driver.UniformLocation
	values   map[driver.UniformLocation]any
	nextLoc  driver.UniformLocation
}

type bufferObject struct {
	data []byte
	hint driver.UsageHint
}

type attribPointer struct {
	ComponentCount int
	ComponentType  driver.ComponentType
	Normalized     bool
	Stride         int
	Offset         int
	Buffer         driver.BufferHandle
	Enabled        bool
}

type layoutObject struct {
	attribs map[uint32]*attribPointer
	element driver.BufferHandle
}

type textureObject struct {
	width   int
	height  int
	format  driver.PixelFormat
	pixels  []byte
	wrap    driver.WrapMode
	filter  driver.FilterMode
	mipmaps bool
}

// DrawCall records one dispatched draw for later inspection.
type DrawCall struct {
	Mode      driver.PrimitiveKind
	First     int32
	Count     int32
	Indexed   bool
	IndexKind driver.IndexType
	Program   driver.ProgramHandle
	Layout    driver.LayoutHandle
	Element   driver.BufferHandle
	Units     map[uint32]driver.TextureHandle
}

// Device is an in-memory driver.Driver. The zero value is not usable;
// create one with New. Like the real device it is single-threaded and
// performs no internal locking.
type Device struct {
	// TextureUnits is the unit count reported by MaxTextureUnits.
	TextureUnits int
	// DebugSupported controls whether SetDebugCallback succeeds; turn
	// it off to exercise the GetError polling fallback.
	DebugSupported bool
	// CompileHook, when set, overrides the built-in source scan for
	// compile results.
	CompileHook func(kind driver.StageKind, src string) (ok bool, infoLog string)

	nextHandle uint32

	shaders  map[driver.ShaderHandle]*shaderObject
	programs map[driver.ProgramHandle]*programObject
	buffers  map[driver.BufferHandle]*bufferObject
	layouts  map[driver.LayoutHandle]*layoutObject
	textures map[driver.TextureHandle]*textureObject

	boundProgram driver.ProgramHandle
	boundLayout  driver.LayoutHandle
	boundBuffers map[driver.BufferKind]driver.BufferHandle
	activeUnit   uint32
	boundUnits   map[uint32]driver.TextureHandle

	clearColor [4]float32
	clearCount int
	wireframe  bool
	viewport   [4]int32

	draws []DrawCall

	failNextLink string

	callback      func(driver.ErrorInfo)
	pendingErrors []driver.ErrorInfo
}

// New returns an empty device with default limits.
func New() *Device {
	return &Device{
		TextureUnits:   DefaultTextureUnits,
		DebugSupported: true,
		shaders:        make(map[driver.ShaderHandle]*shaderObject),
		programs:       make(map[driver.ProgramHandle]*programObject),
		buffers:        make(map[driver.BufferHandle]*bufferObject),
		layouts:        make(map[driver.LayoutHandle]*layoutObject),
		textures:       make(map[driver.TextureHandle]*textureObject),
		boundBuffers:   make(map[driver.BufferKind]driver.BufferHandle),
		boundUnits:     make(map[uint32]driver.TextureHandle),
	}
}

func (d *Device) handle() uint32 {
	d.nextHandle++
	return d.nextHandle
}

// Shaders and programs.

func (d *Device) CreateShader(kind driver.StageKind) driver.ShaderHandle {
	h := driver.ShaderHandle(d.handle())
	d.shaders[h] = &shaderObject{kind: kind}
	return h
}

func (d *Device) ShaderSource(shader driver.ShaderHandle, src string) {
	if s := d.shaders[shader]; s != nil {
		s.source = src
	}
}

func (d *Device) CompileShader(shader driver.ShaderHandle) (bool, string) {
	s := d.shaders[shader]
	if s == nil {
		return false, "no such shader object"
	}
	if d.CompileHook != nil {
		ok, infoLog := d.CompileHook(s.kind, s.source)
		s.compiled = ok
		return ok, infoLog
	}
	if strings.TrimSpace(s.source) == "" {
		s.compiled = false
		return false, "0:0: empty shader source"
	}
	for i, line := range strings.Split(s.source, "\n") {
		if strings.Contains(line, "#error") {
			s.compiled = false
			return false, fmt.Sprintf("0:%d: '#error' : %s", i+1, strings.TrimSpace(line))
		}
	}
	s.compiled = true
	return true, ""
}

func (d *Device) DeleteShader(shader driver.ShaderHandle) {
	delete(d.shaders, shader)
}

func (d *Device) CreateProgram() driver.ProgramHandle {
	h := driver.ProgramHandle(d.handle())
	d.programs[h] = &programObject{
		uniforms: make(map[string]driver.UniformLocation),
		values:   make(map[driver.UniformLocation]any),
	}
	return h
}

func (d *Device) AttachShader(program driver.ProgramHandle, shader driver.ShaderHandle) {
	if p := d.programs[program]; p != nil {
		p.shaders = append(p.shaders, shader)
	}
}

// FailNextLink makes the next LinkProgram call report failure with the
// given info log, simulating a device-side linkage error such as
// mismatched interface variables.
func (d *Device) FailNextLink(infoLog string) {
	d.failNextLink = infoLog
}

func (d *Device) LinkProgram(program driver.ProgramHandle) (bool, string) {
	p := d.programs[program]
	if p == nil {
		return false, "no such program object"
	}
	if d.failNextLink != "" {
		infoLog := d.failNextLink
		d.failNextLink = ""
		return false, infoLog
	}
	for _, sh := range p.shaders {
		s := d.shaders[sh]
		if s == nil || !s.compiled {
			return false, "attached shader object is not compiled"
		}
		for _, name := range parseUniformNames(s.source) {
			if _, ok := p.uniforms[name]; !ok {
				p.uniforms[name] = p.nextLoc
				p.nextLoc++
			}
		}
	}
	p.linked = true
	return true, ""
}

// parseUniformNames scans shading-language source for top-level
// `uniform <type> <name>;` declarations.
func parseUniformNames(src string) []string {
	var names []string
	for _, line := range strings.Split(src, "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) < 3 || fields[0] != "uniform" {
			continue
		}
		name := strings.TrimSuffix(fields[2], ";")
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (d *Device) DeleteProgram(program driver.ProgramHandle) {
	delete(d.programs, program)
}

func (d *Device) UseProgram(program driver.ProgramHandle) {
	d.boundProgram = program
}

func (d *Device) GetUniformLocation(program driver.ProgramHandle, name string) driver.UniformLocation {
	p := d.programs[program]
	if p == nil || !p.linked {
		return -1
	}
	loc, ok := p.uniforms[name]
	if !ok {
		return -1
	}
	return loc
}

func (d *Device) storeUniform(location driver.UniformLocation, v any) {
	if p := d.programs[d.boundProgram]; p != nil {
		p.values[location] = v
	}
}

func (d *Device) Uniform1f(location driver.UniformLocation, v float32) {
	d.storeUniform(location, v)
}

func (d *Device) Uniform1i(location driver.UniformLocation, v int32) {
	d.storeUniform(location, v)
}

func (d *Device) Uniform1ui(location driver.UniformLocation, v uint32) {
	d.storeUniform(location, v)
}

func (d *Device) UniformFloats(location driver.UniformLocation, v []float32) {
	d.storeUniform(location, append([]float32(nil), v...))
}

func (d *Device) UniformInts(location driver.UniformLocation, v []int32) {
	d.storeUniform(location, append([]int32(nil), v...))
}

func (d *Device) UniformMatrix(location driver.UniformLocation, dim int, v []float32) {
	d.storeUniform(location, append([]float32(nil), v...))
}

// Buffers.

func (d *Device) CreateBuffer() driver.BufferHandle {
	h := driver.BufferHandle(d.handle())
	d.buffers[h] = &bufferObject{}
	return h
}

func (d *Device) BindBuffer(kind driver.BufferKind, buffer driver.BufferHandle) {
	d.boundBuffers[kind] = buffer
	// Binding an element buffer while a layout is bound attaches it to
	// the layout, as on the real device.
	if kind == driver.BufferIndex && d.boundLayout != driver.InvalidHandle {
		if l := d.layouts[d.boundLayout]; l != nil {
			l.element = buffer
		}
	}
}

func (d *Device) boundBuffer(kind driver.BufferKind) *bufferObject {
	return d.buffers[d.boundBuffers[kind]]
}

func (d *Device) BufferData(kind driver.BufferKind, size int, data []byte, hint driver.UsageHint) {
	b := d.boundBuffer(kind)
	if b == nil {
		return
	}
	b.hint = hint
	b.data = make([]byte, size)
	copy(b.data, data)
}

func (d *Device) BufferSubData(kind driver.BufferKind, offset int, data []byte) {
	b := d.boundBuffer(kind)
	if b == nil || offset < 0 || offset+len(data) > len(b.data) {
		return
	}
	copy(b.data[offset:], data)
}

func (d *Device) BufferGetSubData(kind driver.BufferKind, offset int, dst []byte) {
	b := d.boundBuffer(kind)
	if b == nil || offset < 0 || offset+len(dst) > len(b.data) {
		return
	}
	copy(dst, b.data[offset:])
}

func (d *Device) DeleteBuffer(buffer driver.BufferHandle) {
	delete(d.buffers, buffer)
}

// Vertex layouts.

func (d *Device) CreateVertexArray() driver.LayoutHandle {
	h := driver.LayoutHandle(d.handle())
	d.layouts[h] = &layoutObject{attribs: make(map[uint32]*attribPointer)}
	return h
}

func (d *Device) BindVertexArray(layout driver.LayoutHandle) {
	d.boundLayout = layout
}

func (d *Device) VertexAttribPointer(location uint32, componentCount int, componentType driver.ComponentType, normalized bool, stride, offset int) {
	l := d.layouts[d.boundLayout]
	if l == nil {
		return
	}
	a := l.attribs[location]
	if a == nil {
		a = &attribPointer{}
		l.attribs[location] = a
	}
	a.ComponentCount = componentCount
	a.ComponentType = componentType
	a.Normalized = normalized
	a.Stride = stride
	a.Offset = offset
	a.Buffer = d.boundBuffers[driver.BufferVertex]
}

func (d *Device) EnableVertexAttrib(location uint32) {
	if l := d.layouts[d.boundLayout]; l != nil {
		if a := l.attribs[location]; a != nil {
			a.Enabled = true
		}
	}
}

func (d *Device) DeleteVertexArray(layout driver.LayoutHandle) {
	delete(d.layouts, layout)
}

// Textures.

func (d *Device) CreateTexture() driver.TextureHandle {
	h := driver.TextureHandle(d.handle())
	d.textures[h] = &textureObject{wrap: driver.WrapRepeat, filter: driver.FilterLinear}
	return h
}

func (d *Device) ActiveTexture(unit uint32) {
	d.activeUnit = unit
}

func (d *Device) BindTexture(texture driver.TextureHandle) {
	d.boundUnits[d.activeUnit] = texture
}

func (d *Device) boundTexture() *textureObject {
	return d.textures[d.boundUnits[d.activeUnit]]
}

func (d *Device) TexImage2D(width, height int, format driver.PixelFormat, pixels []byte) {
	t := d.boundTexture()
	if t == nil {
		return
	}
	t.width = width
	t.height = height
	t.format = format
	t.pixels = append([]byte(nil), pixels...)
}

func (d *Device) TexWrap(mode driver.WrapMode) {
	if t := d.boundTexture(); t != nil {
		t.wrap = mode
	}
}

func (d *Device) TexFilter(mode driver.FilterMode) {
	if t := d.boundTexture(); t != nil {
		t.filter = mode
	}
}

func (d *Device) GenerateMipmap() {
	if t := d.boundTexture(); t != nil {
		t.mipmaps = true
	}
}

func (d *Device) MaxTextureUnits() int {
	return d.TextureUnits
}

func (d *Device) DeleteTexture(texture driver.TextureHandle) {
	delete(d.textures, texture)
}

// Draws.

func (d *Device) record(call DrawCall) {
	call.Program = d.boundProgram
	call.Layout = d.boundLayout
	call.Units = make(map[uint32]driver.TextureHandle, len(d.boundUnits))
	for unit, tex := range d.boundUnits {
		call.Units[unit] = tex
	}
	if l := d.layouts[d.boundLayout]; l != nil {
		call.Element = l.element
	}
	d.draws = append(d.draws, call)
}

func (d *Device) DrawArrays(mode driver.PrimitiveKind, first, count int32) {
	d.record(DrawCall{Mode: mode, First: first, Count: count})
}

func (d *Device) DrawElements(mode driver.PrimitiveKind, count int32, kind driver.IndexType) {
	d.record(DrawCall{Mode: mode, Count: count, Indexed: true, IndexKind: kind})
}

// Framebuffer state.

func (d *Device) ClearColor(r, g, b, a float32) {
	d.clearColor = [4]float32{r, g, b, a}
}

func (d *Device) Clear() {
	d.clearCount++
}

func (d *Device) SetWireframe(enabled bool) {
	d.wireframe = enabled
}

func (d *Device) Viewport(x, y, width, height int32) {
	d.viewport = [4]int32{x, y, width, height}
}

// Errors.

func (d *Device) SetDebugCallback(fn func(driver.ErrorInfo)) bool {
	if !d.DebugSupported {
		return false
	}
	d.callback = fn
	return true
}

func (d *Device) GetError() (driver.ErrorInfo, bool) {
	if len(d.pendingErrors) == 0 {
		return driver.ErrorInfo{}, false
	}
	info := d.pendingErrors[0]
	d.pendingErrors = d.pendingErrors[1:]
	return info, true
}

// InjectError simulates a device-flagged error. With a debug callback
// installed the callback fires synchronously; otherwise the error is
// queued for GetError.
func (d *Device) InjectError(info driver.ErrorInfo) {
	if d.callback != nil {
		d.callback(info)
		return
	}
	d.pendingErrors = append(d.pendingErrors, info)
}

// Inspection helpers for tests.

// BufferBytes returns a copy of a buffer's stored contents, or nil when
// the buffer does not exist.
func (d *Device) BufferBytes(buffer driver.BufferHandle) []byte {
	b := d.buffers[buffer]
	if b == nil {
		return nil
	}
	return append([]byte(nil), b.data...)
}

// UniformValue returns the last value uploaded to a program uniform.
// Scalars come back as float32/int32/uint32, vectors and matrices as
// []float32 or []int32 copies.
func (d *Device) UniformValue(program driver.ProgramHandle, location driver.UniformLocation) (any, bool) {
	p := d.programs[program]
	if p == nil {
		return nil, false
	}
	v, ok := p.values[location]
	return v, ok
}

// BoundProgram returns the handle of the currently used program.
func (d *Device) BoundProgram() driver.ProgramHandle {
	return d.boundProgram
}

// BoundLayout returns the handle of the currently bound vertex layout.
func (d *Device) BoundLayout() driver.LayoutHandle {
	return d.boundLayout
}

// TextureAt returns the texture bound to the given unit.
func (d *Device) TextureAt(unit uint32) driver.TextureHandle {
	return d.boundUnits[unit]
}

// TextureState reports a texture's dimensions, format, sampling
// parameters and pixel contents.
func (d *Device) TextureState(texture driver.TextureHandle) (width, height int, format driver.PixelFormat, wrap driver.WrapMode, filter driver.FilterMode, pixels []byte, ok bool) {
	t := d.textures[texture]
	if t == nil {
		return 0, 0, 0, 0, 0, nil, false
	}
	return t.width, t.height, t.format, t.wrap, t.filter, append([]byte(nil), t.pixels...), true
}

// HasMipmaps reports whether GenerateMipmap ran for the texture.
func (d *Device) HasMipmaps(texture driver.TextureHandle) bool {
	t := d.textures[texture]
	return t != nil && t.mipmaps
}

// Draws returns all recorded draw calls in dispatch order.
func (d *Device) Draws() []DrawCall {
	return d.draws
}

// ClearState reports the last clear color and the number of clears.
func (d *Device) ClearState() ([4]float32, int) {
	return d.clearColor, d.clearCount
}

// Wireframe reports the current polygon fill mode.
func (d *Device) Wireframe() bool {
	return d.wireframe
}

// LayoutAttrib reports the attribute pointer recorded for a location on
// a layout.
func (d *Device) LayoutAttrib(layout driver.LayoutHandle, location uint32) (componentCount int, componentType driver.ComponentType, normalized bool, stride, offset int, buffer driver.BufferHandle, enabled, ok bool) {
	l := d.layouts[layout]
	if l == nil {
		return 0, 0, false, 0, 0, 0, false, false
	}
	a := l.attribs[location]
	if a == nil {
		return 0, 0, false, 0, 0, 0, false, false
	}
	return a.ComponentCount, a.ComponentType, a.Normalized, a.Stride, a.Offset, a.Buffer, a.Enabled, true
}
