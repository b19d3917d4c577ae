package graphics

import (
	"github.com/spaghettifunk/opal/graphics/core"
	"github.com/spaghettifunk/opal/graphics/driver"
)

// Buffer owns a device-resident memory block tagged by usage kind. Its
// contents change only through the explicit Upload, Update, Resize and
// Clear operations; nothing resizes it implicitly.
type Buffer struct {
	ctx       *Context
	handle    driver.BufferHandle
	kind      driver.BufferKind
	hint      driver.UsageHint
	length    int
	epoch     uint64
	destroyed bool
}

// CreateBuffer creates a buffer of the given usage kind with a static
// usage hint. When data is non-nil it is uploaded immediately and sets
// the buffer's length.
func (c *Context) CreateBuffer(kind driver.BufferKind, data []byte) (*Buffer, error) {
	return c.CreateBufferWithHint(kind, driver.UsageStatic, data)
}

// CreateBufferWithHint is CreateBuffer with an explicit usage hint for
// frequently rewritten buffers.
func (c *Context) CreateBufferWithHint(kind driver.BufferKind, hint driver.UsageHint, data []byte) (*Buffer, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	handle := c.drv.CreateBuffer()
	b := &Buffer{ctx: c, handle: handle, kind: kind, hint: hint, epoch: c.epoch}

	c.drv.BindBuffer(kind, handle)
	c.drv.BufferData(kind, len(data), data, hint)
	b.length = len(data)

	core.LogDebug("created %s buffer %d with %d bytes (%s usage)", kind, handle, b.length, hint)
	return b, nil
}

// Kind returns the buffer's usage kind.
func (b *Buffer) Kind() driver.BufferKind {
	return b.kind
}

// Len returns the buffer's current length in bytes.
func (b *Buffer) Len() int {
	return b.length
}

func (b *Buffer) validate() error {
	if err := b.ctx.validateEpoch(b.epoch); err != nil {
		return err
	}
	if b.destroyed {
		return &DanglingReferenceError{What: b.kind.String() + " buffer"}
	}
	return nil
}

// Upload replaces the buffer's entire contents and resets its length to
// len(data).
func (b *Buffer) Upload(data []byte) error {
	if err := b.validate(); err != nil {
		return err
	}
	b.ctx.drv.BindBuffer(b.kind, b.handle)
	b.ctx.drv.BufferData(b.kind, len(data), data, b.hint)
	b.length = len(data)
	core.LogDebug("uploaded %d bytes to %s buffer %d", len(data), b.kind, b.handle)
	return nil
}

// Update writes data at the given byte offset. Writes past the current
// length fail with RangeError and leave the stored contents unchanged;
// the buffer is never grown implicitly. Grow with Resize first.
func (b *Buffer) Update(offset int, data []byte) error {
	if err := b.validate(); err != nil {
		return err
	}
	if offset < 0 || offset+len(data) > b.length {
		return &RangeError{Offset: offset, Size: len(data), Length: b.length}
	}
	b.ctx.drv.BindBuffer(b.kind, b.handle)
	b.ctx.drv.BufferSubData(b.kind, offset, data)
	return nil
}

// Read copies size bytes starting at offset into a fresh slice. Reads
// past the current length fail with RangeError.
func (b *Buffer) Read(offset, size int) ([]byte, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if offset < 0 || size < 0 || offset+size > b.length {
		return nil, &RangeError{Offset: offset, Size: size, Length: b.length}
	}
	dst := make([]byte, size)
	b.ctx.drv.BindBuffer(b.kind, b.handle)
	b.ctx.drv.BufferGetSubData(b.kind, offset, dst)
	return dst, nil
}

// Resize reallocates the buffer to length bytes. With preserve set the
// old contents are copied up to min(old, new) length and anything
// beyond is undefined; without it the whole contents are undefined,
// matching the device's reallocation semantics.
func (b *Buffer) Resize(length int, preserve bool) error {
	if err := b.validate(); err != nil {
		return err
	}
	if length < 0 {
		return &RangeError{Offset: 0, Size: length, Length: b.length}
	}

	b.ctx.drv.BindBuffer(b.kind, b.handle)

	var kept []byte
	if preserve {
		keep := b.length
		if length < keep {
			keep = length
		}
		if keep > 0 {
			kept = make([]byte, keep)
			b.ctx.drv.BufferGetSubData(b.kind, 0, kept)
		}
	}

	b.ctx.drv.BufferData(b.kind, length, nil, b.hint)
	if len(kept) > 0 {
		b.ctx.drv.BufferSubData(b.kind, 0, kept)
	}
	b.length = length

	core.LogDebug("resized %s buffer %d to %d bytes (preserve=%t)", b.kind, b.handle, length, preserve)
	return nil
}

// Clear zero-fills the buffer at its current length. Zero-fill was
// chosen over undefined contents so that reading after Clear is
// deterministic.
func (b *Buffer) Clear() error {
	if err := b.validate(); err != nil {
		return err
	}
	b.ctx.drv.BindBuffer(b.kind, b.handle)
	b.ctx.drv.BufferData(b.kind, b.length, make([]byte, b.length), b.hint)
	return nil
}

// Destroy releases the device buffer. Vertex layouts referencing the
// buffer are not touched; using them afterwards is detected at bind or
// draw time as a dangling reference.
func (b *Buffer) Destroy() error {
	if err := b.ctx.validateEpoch(b.epoch); err != nil {
		return err
	}
	if b.destroyed {
		return nil
	}
	b.ctx.drv.DeleteBuffer(b.handle)
	b.destroyed = true
	b.length = 0
	core.LogDebug("deleted %s buffer %d", b.kind, b.handle)
	return nil
}
