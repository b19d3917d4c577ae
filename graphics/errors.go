package graphics

import (
	"fmt"

	"github.com/spaghettifunk/opal/graphics/driver"
)

// The error types below are the full failure taxonomy of the layer.
// Every operation that can fail returns one of these; none of them is
// retried internally and none of them terminates the process. Match
// with errors.As.

// CompileError reports a shader stage that failed to compile, carrying
// the device's diagnostic log.
type CompileError struct {
	Kind driver.StageKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Kind, e.Log)
}

// LinkError reports a program that failed to link, either because the
// stage set is incomplete or because the device rejected the linkage.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// UniformError reports a uniform name that does not exist in the linked
// program.
type UniformError struct {
	Name string
}

func (e *UniformError) Error() string {
	return fmt.Sprintf("could not find uniform with name '%s'", e.Name)
}

// RangeError reports a buffer update that would write past the buffer's
// current length.
type RangeError struct {
	Offset int
	Size   int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("update of %d bytes at offset %d exceeds buffer length %d", e.Size, e.Offset, e.Length)
}

// LayoutError reports an invalid vertex attribute description.
type LayoutError struct {
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("invalid vertex attribute: %s", e.Reason)
}

// DuplicateLocationError reports a second attribute added at a location
// already present in the layout.
type DuplicateLocationError struct {
	Location uint32
}

func (e *DuplicateLocationError) Error() string {
	return fmt.Sprintf("attribute location %d is already present in the layout", e.Location)
}

// SizeMismatchError reports pixel data whose length does not match the
// declared texture dimensions and format.
type SizeMismatchError struct {
	Want int
	Got  int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("pixel data is %d bytes, dimensions and format require %d", e.Got, e.Want)
}

// UnitRangeError reports a texture unit index beyond the device limit.
type UnitRangeError struct {
	Unit uint32
	Max  int
}

func (e *UnitRangeError) Error() string {
	return fmt.Sprintf("texture unit %d exceeds device limit of %d units", e.Unit, e.Max)
}

// NotBoundError reports a draw issued without a required binding,
// naming what is missing.
type NotBoundError struct {
	What string
}

func (e *NotBoundError) Error() string {
	return fmt.Sprintf("draw requires a bound %s", e.What)
}

// WrongUsageKindError reports a buffer used against its usage kind,
// such as a vertex buffer passed as an index source.
type WrongUsageKindError struct {
	Want driver.BufferKind
	Got  driver.BufferKind
}

func (e *WrongUsageKindError) Error() string {
	return fmt.Sprintf("operation requires a %s buffer, got a %s buffer", e.Want, e.Got)
}

// ContextError reports an operation against a destroyed context, a
// stale handle epoch or the wrong goroutine.
type ContextError struct {
	Reason string
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("context violation: %s", e.Reason)
}

// DanglingReferenceError reports a non-owning reference whose target
// was destroyed, detected lazily at bind or draw time.
type DanglingReferenceError struct {
	What string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("reference to destroyed %s", e.What)
}
