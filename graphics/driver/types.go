package driver

// Opaque handles to device-side objects. A zero handle is never a live
// object; drivers hand out identifiers starting at 1.
type (
	ShaderHandle  uint32
	ProgramHandle uint32
	BufferHandle  uint32
	LayoutHandle  uint32
	TextureHandle uint32
)

// InvalidHandle is the zero value for every handle type.
const InvalidHandle = 0

// UniformLocation identifies a uniform slot within a linked program.
// A negative location means the uniform does not exist.
type UniformLocation int32

// StageKind identifies a programmable shader stage.
type StageKind int

const (
	StageVertex StageKind = iota
	StageFragment
	StageGeometry
)

func (s StageKind) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageGeometry:
		return "geometry"
	}
	return "unknown"
}

// BufferKind tags what a buffer object holds: raw vertex data or
// element/index data. The kind also selects the device binding target.
type BufferKind int

const (
	BufferVertex BufferKind = iota
	BufferIndex
)

func (b BufferKind) String() string {
	switch b {
	case BufferVertex:
		return "vertex"
	case BufferIndex:
		return "index"
	}
	return "unknown"
}

// UsageHint tells the device how often buffer contents are expected to
// change. It is a performance hint only and never affects semantics.
type UsageHint int

const (
	UsageStatic UsageHint = iota
	UsageDynamic
)

func (u UsageHint) String() string {
	switch u {
	case UsageStatic:
		return "static"
	case UsageDynamic:
		return "dynamic"
	}
	return "unknown"
}

// ComponentType is the scalar type of one vertex attribute component.
type ComponentType int

const (
	ComponentByte ComponentType = iota
	ComponentUnsignedByte
	ComponentShort
	ComponentUnsignedShort
	ComponentInt
	ComponentUnsignedInt
	ComponentHalfFloat
	ComponentFloat
	ComponentDouble
)

// Size returns the size in bytes of a single component.
func (c ComponentType) Size() int {
	switch c {
	case ComponentByte, ComponentUnsignedByte:
		return 1
	case ComponentShort, ComponentUnsignedShort, ComponentHalfFloat:
		return 2
	case ComponentInt, ComponentUnsignedInt, ComponentFloat:
		return 4
	case ComponentDouble:
		return 8
	}
	return 0
}

func (c ComponentType) String() string {
	switch c {
	case ComponentByte:
		return "byte"
	case ComponentUnsignedByte:
		return "unsigned byte"
	case ComponentShort:
		return "short"
	case ComponentUnsignedShort:
		return "unsigned short"
	case ComponentInt:
		return "int"
	case ComponentUnsignedInt:
		return "unsigned int"
	case ComponentHalfFloat:
		return "half float"
	case ComponentFloat:
		return "float"
	case ComponentDouble:
		return "double"
	}
	return "unknown"
}

// PixelFormat describes the layout of raw texture pixel data.
type PixelFormat int

const (
	PixelR8 PixelFormat = iota
	PixelRGB8
	PixelRGBA8
)

// BytesPerPixel returns the storage size of one pixel in the format.
func (p PixelFormat) BytesPerPixel() int {
	switch p {
	case PixelR8:
		return 1
	case PixelRGB8:
		return 3
	case PixelRGBA8:
		return 4
	}
	return 0
}

func (p PixelFormat) String() string {
	switch p {
	case PixelR8:
		return "r8"
	case PixelRGB8:
		return "rgb8"
	case PixelRGBA8:
		return "rgba8"
	}
	return "unknown"
}

// WrapMode controls texture sampling outside the [0,1] coordinate range.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapMirroredRepeat
	WrapClampToEdge
	WrapClampToBorder
)

func (w WrapMode) String() string {
	switch w {
	case WrapRepeat:
		return "repeat"
	case WrapMirroredRepeat:
		return "mirrored repeat"
	case WrapClampToEdge:
		return "clamp to edge"
	case WrapClampToBorder:
		return "clamp to border"
	}
	return "unknown"
}

// FilterMode controls texture sampling interpolation.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

func (f FilterMode) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterLinear:
		return "linear"
	}
	return "unknown"
}

// PrimitiveKind selects how vertices are assembled during a draw.
type PrimitiveKind int

const (
	PrimitivePoints PrimitiveKind = iota
	PrimitiveLines
	PrimitiveTriangles
)

func (p PrimitiveKind) String() string {
	switch p {
	case PrimitivePoints:
		return "points"
	case PrimitiveLines:
		return "lines"
	case PrimitiveTriangles:
		return "triangles"
	}
	return "unknown"
}

// IndexType is the scalar type of indices in an element buffer.
type IndexType int

const (
	IndexUnsignedByte IndexType = iota
	IndexUnsignedShort
	IndexUnsignedInt
)

// Size returns the size in bytes of a single index.
func (i IndexType) Size() int {
	switch i {
	case IndexUnsignedByte:
		return 1
	case IndexUnsignedShort:
		return 2
	case IndexUnsignedInt:
		return 4
	}
	return 0
}

func (i IndexType) String() string {
	switch i {
	case IndexUnsignedByte:
		return "unsigned byte"
	case IndexUnsignedShort:
		return "unsigned short"
	case IndexUnsignedInt:
		return "unsigned int"
	}
	return "unknown"
}

// ErrorInfo carries a device-reported error as delivered by the debug
// callback or polled through GetError. Source, Kind and Severity are the
// device's own enum values, passed through untranslated.
type ErrorInfo struct {
	Source   uint32
	Kind     uint32
	ID       uint32
	Severity uint32
	Message  string
}
