package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/opal/graphics/driver"
	"github.com/spaghettifunk/opal/graphics/driver/headless"
)

// drawFixture builds the full state a draw needs: a used program and a
// bound layout with one position attribute.
func drawFixture(t *testing.T) (*Context, *headless.Device, *Program, *VertexLayout) {
	t.Helper()
	ctx, dev := newTestContext(t)

	prog := linkTestProgram(t, ctx)
	require.NoError(t, prog.Use())

	vertices, err := ctx.CreateBuffer(driver.BufferVertex, make([]byte, 36))
	require.NoError(t, err)

	layout, err := ctx.CreateVertexLayout()
	require.NoError(t, err)
	require.NoError(t, layout.AddAttribute(Attribute{
		Location:       0,
		Buffer:         vertices,
		ComponentType:  driver.ComponentFloat,
		ComponentCount: 3,
	}))
	require.NoError(t, layout.Bind())

	return ctx, dev, prog, layout
}

func TestDrawArrays(t *testing.T) {
	ctx, dev, prog, layout := drawFixture(t)

	require.NoError(t, ctx.DrawArrays(driver.PrimitiveTriangles, 0, 3))

	draws := dev.Draws()
	require.Len(t, draws, 1)
	assert.Equal(t, driver.PrimitiveTriangles, draws[0].Mode)
	assert.Equal(t, int32(0), draws[0].First)
	assert.Equal(t, int32(3), draws[0].Count)
	assert.False(t, draws[0].Indexed)
	assert.Equal(t, prog.handle, draws[0].Program)
	assert.Equal(t, layout.handle, draws[0].Layout)
}

func TestDrawArraysNoProgram(t *testing.T) {
	ctx, _ := newTestContext(t)

	err := ctx.DrawArrays(driver.PrimitiveTriangles, 0, 3)
	var notBound *NotBoundError
	require.ErrorAs(t, err, &notBound)
	assert.Equal(t, "program", notBound.What)
}

func TestDrawArraysNoLayout(t *testing.T) {
	ctx, _ := newTestContext(t)
	prog := linkTestProgram(t, ctx)
	require.NoError(t, prog.Use())

	err := ctx.DrawArrays(driver.PrimitiveTriangles, 0, 3)
	var notBound *NotBoundError
	require.ErrorAs(t, err, &notBound)
	assert.Equal(t, "vertex layout", notBound.What)
}

func TestDrawArraysDestroyedProgram(t *testing.T) {
	ctx, dev, prog, _ := drawFixture(t)

	require.NoError(t, prog.Destroy())

	var danglingErr *DanglingReferenceError
	require.ErrorAs(t, ctx.DrawArrays(driver.PrimitiveTriangles, 0, 3), &danglingErr)
	assert.Empty(t, dev.Draws())
}

func TestDrawArraysDanglingAttributeBuffer(t *testing.T) {
	ctx, dev, _, layout := drawFixture(t)

	require.NoError(t, layout.Attributes()[0].Buffer.Destroy())

	var danglingErr *DanglingReferenceError
	require.ErrorAs(t, ctx.DrawArrays(driver.PrimitiveTriangles, 0, 3), &danglingErr)
	assert.Empty(t, dev.Draws())
}

func TestDrawElements(t *testing.T) {
	ctx, dev, _, layout := drawFixture(t)

	indices, err := ctx.CreateBuffer(driver.BufferIndex, []byte{0, 1, 2, 0, 2, 3})
	require.NoError(t, err)

	require.NoError(t, ctx.DrawElements(driver.PrimitiveTriangles, indices, 6, driver.IndexUnsignedByte))

	draws := dev.Draws()
	require.Len(t, draws, 1)
	assert.True(t, draws[0].Indexed)
	assert.Equal(t, int32(6), draws[0].Count)
	assert.Equal(t, driver.IndexUnsignedByte, draws[0].IndexKind)
	assert.Equal(t, indices.handle, draws[0].Element)
	assert.Equal(t, layout.handle, draws[0].Layout)
}

func TestDrawElementsWrongBufferKind(t *testing.T) {
	ctx, dev, _, _ := drawFixture(t)

	vertices, err := ctx.CreateBuffer(driver.BufferVertex, make([]byte, 6))
	require.NoError(t, err)

	err = ctx.DrawElements(driver.PrimitiveTriangles, vertices, 6, driver.IndexUnsignedByte)
	var usageErr *WrongUsageKindError
	require.ErrorAs(t, err, &usageErr)
	assert.Equal(t, driver.BufferIndex, usageErr.Want)
	assert.Equal(t, driver.BufferVertex, usageErr.Got)
	assert.Empty(t, dev.Draws())
}

func TestDrawElementsNilOrDestroyedIndexBuffer(t *testing.T) {
	ctx, dev, _, _ := drawFixture(t)

	var notBound *NotBoundError
	require.ErrorAs(t, ctx.DrawElements(driver.PrimitiveTriangles, nil, 3, driver.IndexUnsignedShort), &notBound)
	assert.Equal(t, "index buffer", notBound.What)

	indices, err := ctx.CreateBuffer(driver.BufferIndex, make([]byte, 6))
	require.NoError(t, err)
	require.NoError(t, indices.Destroy())

	var danglingErr *DanglingReferenceError
	require.ErrorAs(t, ctx.DrawElements(driver.PrimitiveTriangles, indices, 3, driver.IndexUnsignedShort), &danglingErr)
	assert.Empty(t, dev.Draws())
}

func TestDrawArraysWithTextures(t *testing.T) {
	ctx, dev, _, _ := drawFixture(t)

	first, err := ctx.CreateTexture2D(1, 1, driver.PixelRGBA8, make([]byte, 4))
	require.NoError(t, err)
	second, err := ctx.CreateTexture2D(1, 1, driver.PixelRGBA8, make([]byte, 4))
	require.NoError(t, err)

	require.NoError(t, ctx.DrawArraysWithTextures(driver.PrimitiveTriangles, 0, 3, []*Texture{first, second}))

	draws := dev.Draws()
	require.Len(t, draws, 1)
	assert.Equal(t, first.handle, draws[0].Units[0])
	assert.Equal(t, second.handle, draws[0].Units[1])
}

func TestDrawWithTexturesErrors(t *testing.T) {
	ctx, dev, _, _ := drawFixture(t)
	dev.TextureUnits = 1

	tex, err := ctx.CreateTexture2D(1, 1, driver.PixelRGBA8, make([]byte, 4))
	require.NoError(t, err)
	overflow, err := ctx.CreateTexture2D(1, 1, driver.PixelRGBA8, make([]byte, 4))
	require.NoError(t, err)

	var notBound *NotBoundError
	require.ErrorAs(t, ctx.DrawArraysWithTextures(driver.PrimitiveTriangles, 0, 3, []*Texture{nil}), &notBound)

	// The second texture lands on unit 1, past the device limit.
	var unitErr *UnitRangeError
	require.ErrorAs(t, ctx.DrawArraysWithTextures(driver.PrimitiveTriangles, 0, 3, []*Texture{tex, overflow}), &unitErr)
	assert.Empty(t, dev.Draws())
}
