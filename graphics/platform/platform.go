// Package platform owns window-system integration: it creates the
// window, makes the device context current on the calling thread and
// pumps events. Everything above it only ever sees a driver.Driver.
package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/opal/graphics/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type Platform struct {
	Window *glfw.Window
}

func New() (*Platform, error) {
	return &Platform{
		Window: nil,
	}, nil
}

// Startup initializes GLFW and opens a window with a 4.6 core profile
// context current on the calling thread.
func (p *Platform) Startup(applicationName string, width, height int) error {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, applicationName, nil, nil)
	if err != nil {
		core.LogError("failed to create window: %s", err)
		return err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	p.Window = window

	return nil
}

func (p *Platform) Shutdown() error {
	glfw.Terminate()
	return nil
}

// Run drives the frame loop until the window closes. The callback draws
// one frame; buffer swap and event polling happen here.
func (p *Platform) Run(frame func() error) error {
	for !p.Window.ShouldClose() {
		if err := frame(); err != nil {
			return err
		}
		p.Window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}
