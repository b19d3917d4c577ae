package graphics

import (
	"github.com/spaghettifunk/opal/graphics/driver"
)

// checkDrawState verifies the ambient bindings a draw depends on: a
// current program and a current vertex layout, neither destroyed, with
// no dangling buffer references in the layout.
func (c *Context) checkDrawState() error {
	if c.boundProgram == nil {
		return &NotBoundError{What: "program"}
	}
	if c.boundProgram.destroyed {
		return &DanglingReferenceError{What: "program"}
	}
	if c.boundLayout == nil {
		return &NotBoundError{What: "vertex layout"}
	}
	if c.boundLayout.destroyed {
		return &DanglingReferenceError{What: "vertex layout"}
	}
	return c.boundLayout.checkDangling()
}

// DrawArrays draws count consecutive vertices starting at first, read
// through the currently-bound layout by the currently-bound program. A
// missing binding fails with NotBoundError naming what is absent.
func (c *Context) DrawArrays(mode driver.PrimitiveKind, first, count int) error {
	if err := c.validate(); err != nil {
		return err
	}
	if err := c.checkDrawState(); err != nil {
		return err
	}
	c.drv.DrawArrays(mode, int32(first), int32(count))
	return nil
}

// DrawElements draws count indices of the given type from indexBuffer.
// The buffer must have the index usage kind; a vertex buffer here fails
// with WrongUsageKindError.
func (c *Context) DrawElements(mode driver.PrimitiveKind, indexBuffer *Buffer, count int, kind driver.IndexType) error {
	if err := c.validate(); err != nil {
		return err
	}
	if err := c.checkDrawState(); err != nil {
		return err
	}
	if indexBuffer == nil {
		return &NotBoundError{What: "index buffer"}
	}
	if indexBuffer.kind != driver.BufferIndex {
		return &WrongUsageKindError{Want: driver.BufferIndex, Got: indexBuffer.kind}
	}
	if indexBuffer.destroyed {
		return &DanglingReferenceError{What: "index buffer"}
	}

	c.drv.BindBuffer(driver.BufferIndex, indexBuffer.handle)
	c.drv.DrawElements(mode, int32(count), kind)
	return nil
}

// DrawArraysWithTextures binds each texture to the unit matching its
// slice index, then draws. The first texture lands on unit 0, the
// second on unit 1, and so on.
func (c *Context) DrawArraysWithTextures(mode driver.PrimitiveKind, first, count int, textures []*Texture) error {
	if err := c.bindTextureSlice(textures); err != nil {
		return err
	}
	return c.DrawArrays(mode, first, count)
}

// DrawElementsWithTextures is DrawElements with the texture-slice
// binding of DrawArraysWithTextures.
func (c *Context) DrawElementsWithTextures(mode driver.PrimitiveKind, indexBuffer *Buffer, count int, kind driver.IndexType, textures []*Texture) error {
	if err := c.bindTextureSlice(textures); err != nil {
		return err
	}
	return c.DrawElements(mode, indexBuffer, count, kind)
}

func (c *Context) bindTextureSlice(textures []*Texture) error {
	if err := c.validate(); err != nil {
		return err
	}
	for i, t := range textures {
		if t == nil {
			return &NotBoundError{What: "texture"}
		}
		if err := t.BindToUnit(uint32(i)); err != nil {
			return err
		}
	}
	return nil
}
