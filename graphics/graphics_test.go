package graphics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/opal/graphics/driver"
	"github.com/spaghettifunk/opal/graphics/driver/headless"
)

const testVertexSrc = `#version 410 core
layout(location = 0) in vec3 position;
uniform mat4 model;
void main() {
	gl_Position = model * vec4(position, 1.0);
}`

const testFragmentSrc = `#version 410 core
out vec4 color;
uniform vec4 tint;
uniform float alpha;
uniform int colormap;
void main() {
	color = vec4(tint.rgb, alpha);
}`

func newTestContext(t *testing.T) (*Context, *headless.Device) {
	t.Helper()
	dev := headless.New()
	ctx, err := NewContext(dev)
	require.NoError(t, err)
	return ctx, dev
}

func linkTestProgram(t *testing.T, ctx *Context) *Program {
	t.Helper()
	vert, err := ctx.CompileStage(testVertexSrc, driver.StageVertex)
	require.NoError(t, err)
	frag, err := ctx.CompileStage(testFragmentSrc, driver.StageFragment)
	require.NoError(t, err)
	prog, err := ctx.LinkProgram(vert, frag)
	require.NoError(t, err)
	return prog
}
