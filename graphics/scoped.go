package graphics

import (
	"github.com/spaghettifunk/opal/graphics/driver"
)

// Scoped binding helpers. Ambient binding state normally persists until
// explicitly changed, which makes composing independent drawing
// routines error-prone. These helpers run a function with a binding
// active and restore the previous binding on every exit path, early
// returns and errors included.

// WithProgram binds the program, runs fn, and restores the previously
// bound program (or the unbound state) afterwards.
func (c *Context) WithProgram(p *Program, fn func() error) error {
	if err := c.validate(); err != nil {
		return err
	}

	previous := c.boundProgram
	if err := p.Use(); err != nil {
		return err
	}
	defer func() {
		if previous != nil && !previous.destroyed {
			_ = previous.Use()
			return
		}
		c.drv.UseProgram(driver.InvalidHandle)
		c.boundProgram = nil
	}()

	return fn()
}

// WithLayout binds the layout, runs fn, and restores the previously
// bound layout (or the unbound state) afterwards.
func (c *Context) WithLayout(l *VertexLayout, fn func() error) error {
	if err := c.validate(); err != nil {
		return err
	}

	previous := c.boundLayout
	if err := l.Bind(); err != nil {
		return err
	}
	defer func() {
		if previous != nil && !previous.destroyed {
			_ = previous.Bind()
			return
		}
		c.drv.BindVertexArray(driver.InvalidHandle)
		c.boundLayout = nil
	}()

	return fn()
}

// WithTexture binds the texture to the unit, runs fn, and restores the
// texture previously on that unit (or the unbound state) afterwards.
func (c *Context) WithTexture(unit uint32, t *Texture, fn func() error) error {
	if err := c.validate(); err != nil {
		return err
	}

	previous := c.boundTextures[unit]
	if err := t.BindToUnit(unit); err != nil {
		return err
	}
	defer func() {
		if previous != nil && !previous.destroyed {
			_ = previous.BindToUnit(unit)
			return
		}
		c.drv.ActiveTexture(unit)
		c.drv.BindTexture(driver.InvalidHandle)
		delete(c.boundTextures, unit)
	}()

	return fn()
}
