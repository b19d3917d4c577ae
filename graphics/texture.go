package graphics

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/opal/graphics/core"
	"github.com/spaghettifunk/opal/graphics/driver"
)

// Texture owns device-resident 2D image data. Contents change only by
// full replacement through Upload; there is no sub-region update.
type Texture struct {
	ctx       *Context
	handle    driver.TextureHandle
	name      string
	width     int
	height    int
	format    driver.PixelFormat
	wrap      driver.WrapMode
	filter    driver.FilterMode
	epoch     uint64
	destroyed bool
}

// CreateTexture2D uploads tightly packed pixel data of the given
// dimensions and format. The pixel length must equal
// width*height*bytes-per-pixel exactly; anything else fails with
// SizeMismatchError and no texture is created. Sampling defaults to
// repeat wrapping with linear filtering.
func (c *Context) CreateTexture2D(width, height int, format driver.PixelFormat, pixels []byte) (*Texture, error) {
	return c.CreateNamedTexture2D(uuid.New().String(), width, height, format, pixels)
}

// CreateNamedTexture2D is CreateTexture2D with a caller-chosen debug
// name instead of a generated one.
func (c *Context) CreateNamedTexture2D(name string, width, height int, format driver.PixelFormat, pixels []byte) (*Texture, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	want := width * height * format.BytesPerPixel()
	if len(pixels) != want || width <= 0 || height <= 0 {
		return nil, &SizeMismatchError{Want: want, Got: len(pixels)}
	}

	handle := c.drv.CreateTexture()
	t := &Texture{
		ctx:    c,
		handle: handle,
		name:   name,
		width:  width,
		height: height,
		format: format,
		wrap:   driver.WrapRepeat,
		filter: driver.FilterLinear,
		epoch:  c.epoch,
	}

	c.drv.BindTexture(handle)
	c.drv.TexImage2D(width, height, format, pixels)
	c.drv.TexWrap(t.wrap)
	c.drv.TexFilter(t.filter)

	core.LogDebug("created texture '%s' (%d): %dx%d %s", name, handle, width, height, format)
	return t, nil
}

// Name returns the texture's debug name.
func (t *Texture) Name() string {
	return t.name
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Format returns the pixel format the texture was created with.
func (t *Texture) Format() driver.PixelFormat {
	return t.format
}

func (t *Texture) validate() error {
	if err := t.ctx.validateEpoch(t.epoch); err != nil {
		return err
	}
	if t.destroyed {
		return &DanglingReferenceError{What: "texture"}
	}
	return nil
}

// Upload replaces the full image. Dimensions and format stay fixed, so
// the pixel length must match the creation-time size.
func (t *Texture) Upload(pixels []byte) error {
	if err := t.validate(); err != nil {
		return err
	}
	want := t.width * t.height * t.format.BytesPerPixel()
	if len(pixels) != want {
		return &SizeMismatchError{Want: want, Got: len(pixels)}
	}
	t.ctx.drv.BindTexture(t.handle)
	t.ctx.drv.TexImage2D(t.width, t.height, t.format, pixels)
	return nil
}

// SetSampling sets the wrap and filter modes. Side effect: the texture
// becomes the one bound on the device's active unit.
func (t *Texture) SetSampling(wrap driver.WrapMode, filter driver.FilterMode) error {
	if err := t.validate(); err != nil {
		return err
	}
	t.ctx.drv.BindTexture(t.handle)
	t.ctx.drv.TexWrap(wrap)
	t.ctx.drv.TexFilter(filter)
	t.wrap = wrap
	t.filter = filter
	return nil
}

// GenerateMipmaps builds the mipmap chain from the current image.
func (t *Texture) GenerateMipmaps() error {
	if err := t.validate(); err != nil {
		return err
	}
	t.ctx.drv.BindTexture(t.handle)
	t.ctx.drv.GenerateMipmap()
	return nil
}

// BindToUnit binds the texture to a texture unit slot consumed by a
// program's sampler uniform. Unit indices at or beyond the device limit
// (see MaxTextureUnits) fail with UnitRangeError. The binding persists
// until another texture takes the unit.
func (t *Texture) BindToUnit(unit uint32) error {
	if err := t.validate(); err != nil {
		return err
	}
	max := t.ctx.drv.MaxTextureUnits()
	if int(unit) >= max {
		return &UnitRangeError{Unit: unit, Max: max}
	}
	t.ctx.drv.ActiveTexture(unit)
	t.ctx.drv.BindTexture(t.handle)
	t.ctx.boundTextures[unit] = t
	return nil
}

// MaxTextureUnits reports the number of texture units the device
// exposes.
func (c *Context) MaxTextureUnits() int {
	return c.drv.MaxTextureUnits()
}

// Destroy releases the device texture.
func (t *Texture) Destroy() error {
	if err := t.ctx.validateEpoch(t.epoch); err != nil {
		return err
	}
	if t.destroyed {
		return nil
	}
	t.ctx.drv.DeleteTexture(t.handle)
	t.destroyed = true
	core.LogDebug("deleted texture '%s' (%d)", t.name, t.handle)
	return nil
}
