package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/opal/graphics/driver"
	"github.com/spaghettifunk/opal/graphics/driver/headless"
)

func newTestLayout(t *testing.T) (*Context, *headless.Device, *VertexLayout, *Buffer) {
	t.Helper()
	ctx, dev := newTestContext(t)
	layout, err := ctx.CreateVertexLayout()
	require.NoError(t, err)
	buf, err := ctx.CreateBuffer(driver.BufferVertex, make([]byte, 96))
	require.NoError(t, err)
	return ctx, dev, layout, buf
}

func TestAddAttribute(t *testing.T) {
	_, _, layout, buf := newTestLayout(t)

	err := layout.AddAttribute(Attribute{
		Location:       0,
		Buffer:         buf,
		ComponentType:  driver.ComponentFloat,
		ComponentCount: 3,
		Stride:         24,
		Offset:         0,
	})
	require.NoError(t, err)

	err = layout.AddAttribute(Attribute{
		Location:       1,
		Buffer:         buf,
		ComponentType:  driver.ComponentFloat,
		ComponentCount: 3,
		Stride:         24,
		Offset:         12,
	})
	require.NoError(t, err)

	require.Len(t, layout.Attributes(), 2)
}

func TestAddAttributeRecordedOnDevice(t *testing.T) {
	_, dev, layout, buf := newTestLayout(t)

	require.NoError(t, layout.AddAttribute(Attribute{
		Location:       2,
		Buffer:         buf,
		ComponentType:  driver.ComponentUnsignedByte,
		ComponentCount: 4,
		Normalized:     true,
		Stride:         20,
		Offset:         16,
	}))

	count, componentType, normalized, stride, offset, handle, enabled, ok := dev.LayoutAttrib(layout.handle, 2)
	require.True(t, ok)
	assert.Equal(t, 4, count)
	assert.Equal(t, driver.ComponentUnsignedByte, componentType)
	assert.True(t, normalized)
	assert.Equal(t, 20, stride)
	assert.Equal(t, 16, offset)
	assert.Equal(t, buf.handle, handle)
	assert.True(t, enabled)
}

func TestAddAttributeInvalidComponentCount(t *testing.T) {
	_, _, layout, buf := newTestLayout(t)

	var layoutErr *LayoutError
	for _, count := range []int{0, 5, -1} {
		err := layout.AddAttribute(Attribute{
			Location:       0,
			Buffer:         buf,
			ComponentType:  driver.ComponentFloat,
			ComponentCount: count,
		})
		require.ErrorAs(t, err, &layoutErr)
	}
	assert.Empty(t, layout.Attributes())
}

func TestAddAttributeStrideBelowMinimum(t *testing.T) {
	_, _, layout, buf := newTestLayout(t)

	err := layout.AddAttribute(Attribute{
		Location:       0,
		Buffer:         buf,
		ComponentType:  driver.ComponentFloat,
		ComponentCount: 3,
		Stride:         8, // 3 floats need 12
	})
	var layoutErr *LayoutError
	require.ErrorAs(t, err, &layoutErr)

	// Zero means tightly packed and is always fine.
	require.NoError(t, layout.AddAttribute(Attribute{
		Location:       0,
		Buffer:         buf,
		ComponentType:  driver.ComponentFloat,
		ComponentCount: 3,
		Stride:         0,
	}))
}

func TestAddAttributeDuplicateLocation(t *testing.T) {
	_, _, layout, buf := newTestLayout(t)

	attrib := Attribute{
		Location:       3,
		Buffer:         buf,
		ComponentType:  driver.ComponentFloat,
		ComponentCount: 2,
	}
	require.NoError(t, layout.AddAttribute(attrib))
	before := layout.Attributes()

	err := layout.AddAttribute(attrib)
	var dupErr *DuplicateLocationError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, uint32(3), dupErr.Location)

	// The second call must not have changed the attribute set.
	assert.Equal(t, before, layout.Attributes())
}

func TestAddAttributeWrongBufferKind(t *testing.T) {
	ctx, _, layout, _ := newTestLayout(t)

	indexBuf, err := ctx.CreateBuffer(driver.BufferIndex, make([]byte, 12))
	require.NoError(t, err)

	err = layout.AddAttribute(Attribute{
		Location:       0,
		Buffer:         indexBuf,
		ComponentType:  driver.ComponentFloat,
		ComponentCount: 3,
	})
	var usageErr *WrongUsageKindError
	require.ErrorAs(t, err, &usageErr)
	assert.Equal(t, driver.BufferVertex, usageErr.Want)
	assert.Equal(t, driver.BufferIndex, usageErr.Got)
}

func TestLayoutBind(t *testing.T) {
	_, dev, layout, buf := newTestLayout(t)

	require.NoError(t, layout.AddAttribute(Attribute{
		Location:       0,
		Buffer:         buf,
		ComponentType:  driver.ComponentFloat,
		ComponentCount: 3,
	}))
	require.NoError(t, layout.Bind())
	assert.Equal(t, layout.handle, dev.BoundLayout())
}

func TestLayoutBindDanglingBuffer(t *testing.T) {
	_, _, layout, buf := newTestLayout(t)

	require.NoError(t, layout.AddAttribute(Attribute{
		Location:       0,
		Buffer:         buf,
		ComponentType:  driver.ComponentFloat,
		ComponentCount: 3,
	}))
	require.NoError(t, buf.Destroy())

	var danglingErr *DanglingReferenceError
	require.ErrorAs(t, layout.Bind(), &danglingErr)
}

func TestLayoutDestroy(t *testing.T) {
	_, _, layout, buf := newTestLayout(t)

	require.NoError(t, layout.Destroy())

	var danglingErr *DanglingReferenceError
	require.ErrorAs(t, layout.Bind(), &danglingErr)
	require.ErrorAs(t, layout.AddAttribute(Attribute{
		Location:       0,
		Buffer:         buf,
		ComponentType:  driver.ComponentFloat,
		ComponentCount: 3,
	}), &danglingErr)
}
