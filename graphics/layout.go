package graphics

import (
	"fmt"

	"github.com/spaghettifunk/opal/graphics/core"
	"github.com/spaghettifunk/opal/graphics/driver"
)

// Attribute describes how one shader input reads from a buffer: which
// location it feeds, the component layout, and where the bytes live.
// The Buffer reference is non-owning; the buffer must outlive any
// layout referencing it.
type Attribute struct {
	Location       uint32
	Buffer         *Buffer
	ComponentType  driver.ComponentType
	ComponentCount int
	Normalized     bool
	// Stride is the byte distance between consecutive vertices. Zero
	// means tightly packed.
	Stride int
	Offset int
}

// VertexLayout maps raw buffer bytes to a program's input attributes.
// It holds back-references to its source buffers, never ownership;
// destroying a referenced buffer is detected lazily at bind and draw
// time.
type VertexLayout struct {
	ctx       *Context
	handle    driver.LayoutHandle
	attribs   []Attribute
	epoch     uint64
	destroyed bool
}

// CreateVertexLayout creates an empty layout.
func (c *Context) CreateVertexLayout() (*VertexLayout, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	handle := c.drv.CreateVertexArray()
	core.LogDebug("created vertex layout %d", handle)
	return &VertexLayout{ctx: c, handle: handle, epoch: c.epoch}, nil
}

func (l *VertexLayout) validate() error {
	if err := l.ctx.validateEpoch(l.epoch); err != nil {
		return err
	}
	if l.destroyed {
		return &DanglingReferenceError{What: "vertex layout"}
	}
	return nil
}

// AddAttribute validates and registers one attribute, setting it up on
// the device immediately. Validation failures leave the layout exactly
// as it was: a location already present fails with
// DuplicateLocationError so one attribute can never silently shadow
// another, and malformed descriptions fail with LayoutError or
// WrongUsageKindError.
//
// Side effect: the layout and the attribute's buffer become the
// device's currently-bound layout and vertex buffer.
func (l *VertexLayout) AddAttribute(attrib Attribute) error {
	if err := l.validate(); err != nil {
		return err
	}

	if attrib.Buffer == nil {
		return &LayoutError{Reason: "attribute has no source buffer"}
	}
	if attrib.Buffer.kind != driver.BufferVertex {
		return &WrongUsageKindError{Want: driver.BufferVertex, Got: attrib.Buffer.kind}
	}
	if attrib.Buffer.destroyed {
		return &DanglingReferenceError{What: "vertex buffer"}
	}
	if attrib.ComponentCount < 1 || attrib.ComponentCount > 4 {
		return &LayoutError{Reason: fmt.Sprintf("component count %d not in range [1, 4]", attrib.ComponentCount)}
	}
	if minStride := attrib.ComponentCount * attrib.ComponentType.Size(); attrib.Stride != 0 && attrib.Stride < minStride {
		return &LayoutError{Reason: fmt.Sprintf("stride %d is below the %d bytes implied by %d x %s", attrib.Stride, minStride, attrib.ComponentCount, attrib.ComponentType)}
	}
	if attrib.Offset < 0 {
		return &LayoutError{Reason: fmt.Sprintf("negative byte offset %d", attrib.Offset)}
	}
	for _, existing := range l.attribs {
		if existing.Location == attrib.Location {
			return &DuplicateLocationError{Location: attrib.Location}
		}
	}

	l.ctx.drv.BindVertexArray(l.handle)
	l.ctx.drv.BindBuffer(driver.BufferVertex, attrib.Buffer.handle)
	l.ctx.drv.VertexAttribPointer(attrib.Location, attrib.ComponentCount, attrib.ComponentType, attrib.Normalized, attrib.Stride, attrib.Offset)
	l.ctx.drv.EnableVertexAttrib(attrib.Location)

	l.attribs = append(l.attribs, attrib)
	core.LogDebug("enabled attribute %d on layout %d (%d x %s from buffer %d)",
		attrib.Location, l.handle, attrib.ComponentCount, attrib.ComponentType, attrib.Buffer.handle)
	return nil
}

// Attributes returns the registered attribute descriptors in insertion
// order.
func (l *VertexLayout) Attributes() []Attribute {
	return append([]Attribute(nil), l.attribs...)
}

// checkDangling reports the first referenced buffer that has been
// destroyed since the attribute was added.
func (l *VertexLayout) checkDangling() error {
	for _, attrib := range l.attribs {
		if attrib.Buffer.destroyed {
			return &DanglingReferenceError{What: fmt.Sprintf("vertex buffer feeding attribute %d", attrib.Location)}
		}
	}
	return nil
}

// Bind makes the layout the currently-bound one; subsequent draws read
// its attribute bindings. A referenced buffer destroyed in the meantime
// fails with DanglingReferenceError.
func (l *VertexLayout) Bind() error {
	if err := l.validate(); err != nil {
		return err
	}
	if err := l.checkDangling(); err != nil {
		return err
	}
	l.ctx.drv.BindVertexArray(l.handle)
	l.ctx.boundLayout = l
	return nil
}

// Destroy releases the layout on the device. Source buffers are not
// owned and are left alone.
func (l *VertexLayout) Destroy() error {
	if err := l.ctx.validateEpoch(l.epoch); err != nil {
		return err
	}
	if l.destroyed {
		return nil
	}
	l.ctx.drv.DeleteVertexArray(l.handle)
	l.destroyed = true
	core.LogDebug("deleted vertex layout %d", l.handle)
	return nil
}
