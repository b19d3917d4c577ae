package gl

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/spaghettifunk/opal/graphics/driver"
)

// SetDebugCallback installs fn as the device debug message callback.
// Output is forced synchronous so the callback fires on the calling
// thread before the offending call returns.
func (d *Driver) SetDebugCallback(fn func(driver.ErrorInfo)) bool {
	d.debugCallback = fn

	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		if gltype != gl.DEBUG_TYPE_ERROR {
			return
		}
		if d.debugCallback != nil {
			d.debugCallback(driver.ErrorInfo{
				Source:   source,
				Kind:     gltype,
				ID:       id,
				Severity: severity,
				Message:  message,
			})
		}
	}, nil)

	return true
}

// GetError drains one entry from the device error queue.
func (d *Driver) GetError() (driver.ErrorInfo, bool) {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return driver.ErrorInfo{}, false
	}
	return driver.ErrorInfo{
		Kind:    code,
		Message: errorString(code),
	}, true
}

func errorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case gl.STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	}
	return "unknown error"
}
