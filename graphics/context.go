/*
Package graphics is a safety layer over an immediate-mode graphics
device. It replaces the device's implicit bind-then-operate state with
explicit handles — programs, buffers, vertex layouts, textures — whose
validity is checked at every operation.

All handles are created from a Context, the capability token proving a
device context is current on the calling thread. Destroying the Context
invalidates every handle created from it. Ambient binding state (the
current program, layout and texture units) persists until explicitly
changed, exactly as on the underlying device; nothing is reset between
frames.
*/
package graphics

import (
	"sync/atomic"

	"github.com/spaghettifunk/opal/graphics/core"
	"github.com/spaghettifunk/opal/graphics/driver"
)

// contextEpoch tags each context generation so handles from a destroyed
// context can be told apart from live ones.
var contextEpoch atomic.Uint64

// Context owns a device driver and the ambient binding state scoped to
// it. A Context is pinned to the goroutine that created it, which must
// stay locked to the OS thread holding the device context; operations
// from any other goroutine fail with ContextError.
type Context struct {
	drv         driver.Driver
	epoch       uint64
	goroutineID uint64
	destroyed   bool

	boundProgram  *Program
	boundLayout   *VertexLayout
	boundTextures map[uint32]*Texture

	errorCallback     func(driver.ErrorInfo)
	callbackInstalled bool
}

// NewContext wraps a live device driver. The device context must
// already be current on the calling thread.
func NewContext(drv driver.Driver) (*Context, error) {
	if drv == nil {
		return nil, &ContextError{Reason: "nil driver"}
	}
	c := &Context{
		drv:           drv,
		epoch:         contextEpoch.Add(1),
		goroutineID:   core.GoroutineID(),
		boundTextures: make(map[uint32]*Texture),
	}
	core.LogDebug("created graphics context (epoch %d)", c.epoch)
	return c, nil
}

// Destroy invalidates the context and every handle created from it.
// The device context itself is torn down by whoever created it; after
// Destroy all operations fail with ContextError.
func (c *Context) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	contextEpoch.Add(1)
	core.LogDebug("destroyed graphics context (epoch %d)", c.epoch)
}

// Driver exposes the underlying driver, for collaborators that need
// direct device access such as window-system integration.
func (c *Context) Driver() driver.Driver {
	return c.drv
}

func (c *Context) validate() error {
	if c.destroyed {
		return &ContextError{Reason: "context destroyed"}
	}
	if id := core.GoroutineID(); id != c.goroutineID {
		return &ContextError{Reason: "operation issued from a goroutine that does not hold the context"}
	}
	return nil
}

// validateEpoch guards operations on a handle created from this
// context: the context must be live and the handle's epoch current.
func (c *Context) validateEpoch(epoch uint64) error {
	if err := c.validate(); err != nil {
		return err
	}
	if epoch != c.epoch {
		return &ContextError{Reason: "handle epoch is stale"}
	}
	return nil
}

// Clear clears the color buffer with the given color. Channel values
// are expected in [0, 1].
func (c *Context) Clear(r, g, b, a float32) error {
	if err := c.validate(); err != nil {
		return err
	}
	c.drv.ClearColor(r, g, b, a)
	c.drv.Clear()
	return nil
}

// SetWireframe toggles drawing everything as lines instead of filled
// faces.
func (c *Context) SetWireframe(enabled bool) error {
	if err := c.validate(); err != nil {
		return err
	}
	c.drv.SetWireframe(enabled)
	return nil
}

// SetViewport sets the device viewport rectangle.
func (c *Context) SetViewport(x, y, width, height int32) error {
	if err := c.validate(); err != nil {
		return err
	}
	c.drv.Viewport(x, y, width, height)
	return nil
}

// SetErrorCallback registers fn to be invoked synchronously, on the
// context thread, whenever the device flags an error. It replaces any
// previous callback. On devices without callback support the
// registration is kept but errors are only observable through
// PollError; the return value reports which mode is active.
func (c *Context) SetErrorCallback(fn func(driver.ErrorInfo)) (installed bool, err error) {
	if err := c.validate(); err != nil {
		return false, err
	}
	c.errorCallback = fn
	if !c.callbackInstalled {
		c.callbackInstalled = c.drv.SetDebugCallback(c.dispatchError)
		if c.callbackInstalled {
			core.LogDebug("device debug callback installed")
		} else {
			core.LogWarn("device has no debug callback support, falling back to error polling")
		}
	}
	return c.callbackInstalled, nil
}

func (c *Context) dispatchError(info driver.ErrorInfo) {
	core.LogError("device error: source=%d type=%d id=%d severity=%d - %s",
		info.Source, info.Kind, info.ID, info.Severity, info.Message)
	if c.errorCallback != nil {
		c.errorCallback(info)
	}
}

// PollError drains one pending device error. It is the fallback for
// devices without debug callback support; callers needing strict
// correlation should poll immediately after each suspect call.
func (c *Context) PollError() (driver.ErrorInfo, bool) {
	if err := c.validate(); err != nil {
		return driver.ErrorInfo{}, false
	}
	return c.drv.GetError()
}
