package graphics

import (
	"os"

	"github.com/spaghettifunk/opal/graphics/core"
	"github.com/spaghettifunk/opal/graphics/driver"
)

// ShaderStage is one compiled shader stage, consumed by LinkProgram.
// After a successful link the stage may be destroyed; the device keeps
// the linked code.
type ShaderStage struct {
	ctx       *Context
	handle    driver.ShaderHandle
	kind      driver.StageKind
	epoch     uint64
	destroyed bool
}

// CompileStage compiles shading-language source text for the given
// stage kind. On failure the returned CompileError carries the device's
// diagnostic log and no stage object is created.
func (c *Context) CompileStage(src string, kind driver.StageKind) (*ShaderStage, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	handle := c.drv.CreateShader(kind)
	c.drv.ShaderSource(handle, src)
	ok, infoLog := c.drv.CompileShader(handle)
	if !ok {
		c.drv.DeleteShader(handle)
		return nil, &CompileError{Kind: kind, Log: infoLog}
	}

	core.LogDebug("compiled %s shader %d", kind, handle)
	return &ShaderStage{ctx: c, handle: handle, kind: kind, epoch: c.epoch}, nil
}

// CompileStageFile reads source text from a file and compiles it. The
// stage kind is always the caller's choice; the file extension carries
// no meaning here.
func (c *Context) CompileStageFile(path string, kind driver.StageKind) (*ShaderStage, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.CompileStage(string(src), kind)
}

// Kind returns the stage kind this shader was compiled for.
func (s *ShaderStage) Kind() driver.StageKind {
	return s.kind
}

// Destroy releases the stage object on the device.
func (s *ShaderStage) Destroy() error {
	if err := s.ctx.validateEpoch(s.epoch); err != nil {
		return err
	}
	if s.destroyed {
		return nil
	}
	s.ctx.drv.DeleteShader(s.handle)
	s.destroyed = true
	core.LogDebug("deleted %s shader %d", s.kind, s.handle)
	return nil
}

// Program is a linked, executable pipeline object with a cached uniform
// name table.
type Program struct {
	ctx       *Context
	handle    driver.ProgramHandle
	uniforms  map[string]driver.UniformLocation
	epoch     uint64
	destroyed bool
}

// LinkProgram links the given stages into a program. At least one
// vertex and one fragment stage are required; anything less fails with
// LinkError before touching the device, as does a device-reported
// linkage failure.
func (c *Context) LinkProgram(stages ...*ShaderStage) (*Program, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	var hasVertex, hasFragment bool
	for _, stage := range stages {
		if err := c.validateEpoch(stage.epoch); err != nil {
			return nil, err
		}
		if stage.destroyed {
			return nil, &DanglingReferenceError{What: stage.kind.String() + " shader stage"}
		}
		switch stage.kind {
		case driver.StageVertex:
			hasVertex = true
		case driver.StageFragment:
			hasFragment = true
		}
	}
	if !hasVertex || !hasFragment {
		return nil, &LinkError{Log: "program requires at least one vertex and one fragment stage"}
	}

	handle := c.drv.CreateProgram()
	for _, stage := range stages {
		c.drv.AttachShader(handle, stage.handle)
	}
	ok, infoLog := c.drv.LinkProgram(handle)
	if !ok {
		c.drv.DeleteProgram(handle)
		return nil, &LinkError{Log: infoLog}
	}

	core.LogDebug("linked program %d from %d stages", handle, len(stages))
	return &Program{
		ctx:      c,
		handle:   handle,
		uniforms: make(map[string]driver.UniformLocation),
		epoch:    c.epoch,
	}, nil
}

// Use makes the program the currently-bound one. The binding persists
// until another program is used.
func (p *Program) Use() error {
	if err := p.ctx.validateEpoch(p.epoch); err != nil {
		return err
	}
	if p.destroyed {
		return &DanglingReferenceError{What: "program"}
	}
	p.ctx.drv.UseProgram(p.handle)
	p.ctx.boundProgram = p
	return nil
}

// SetUniform uploads a value to the named uniform. The name is resolved
// to a device location on first use and cached. A name absent from the
// linked program fails with UniformError rather than being silently
// ignored.
//
// Binding policy: the device offers no enforcement of its own, so
// SetUniform binds the program first when it is not the current one.
func (p *Program) SetUniform(name string, value UniformValue) error {
	if err := p.ctx.validateEpoch(p.epoch); err != nil {
		return err
	}
	if p.destroyed {
		return &DanglingReferenceError{What: "program"}
	}

	if p.ctx.boundProgram != p {
		if err := p.Use(); err != nil {
			return err
		}
	}

	location, ok := p.uniforms[name]
	if !ok {
		location = p.ctx.drv.GetUniformLocation(p.handle, name)
		if location < 0 {
			return &UniformError{Name: name}
		}
		p.uniforms[name] = location
	}

	value.apply(p.ctx.drv, location)
	core.LogDebug("set uniform '%s' (location %d) on program %d to %s", name, location, p.handle, value.uniformType())
	return nil
}

// Destroy releases the program on the device. The ambient binding is
// left untouched; a subsequent draw against the destroyed program is
// reported as a dangling reference.
func (p *Program) Destroy() error {
	if err := p.ctx.validateEpoch(p.epoch); err != nil {
		return err
	}
	if p.destroyed {
		return nil
	}
	p.ctx.drv.DeleteProgram(p.handle)
	p.destroyed = true
	core.LogDebug("deleted program %d", p.handle)
	return nil
}
