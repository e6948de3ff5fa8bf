package gpu

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrContextExists is returned by New while another Context is still alive.
var ErrContextExists = errors.New("gpu context already exists")

// ResourceAllocationError is returned when the driver did not hand out a
// texture name.
type ResourceAllocationError struct {
	// Code is the GL error reported after the allocation, if any.
	Code uint32
}

func (e *ResourceAllocationError) Error() string {
	if e.Code == GLNoError {
		return "allocate texture: driver returned no texture name"
	}

	return "allocate texture: " + ErrorName(e.Code)
}

// ImageDecodeError wraps the reason an image file could not be decoded.
type ImageDecodeError struct {
	Path string
	Err  error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("decode image %q: %s", e.Path, e.Err)
}

func (e *ImageDecodeError) Unwrap() error {
	return e.Err
}

// ImageLayoutError is returned when the dimensions of an image do not fit the
// layout of the target it is uploaded to.
type ImageLayoutError struct {
	Target Target
	Width  int
	Height int
	Reason string
}

func (e *ImageLayoutError) Error() string {
	return fmt.Sprintf("image of %dx%d does not fit %s: %s", e.Width, e.Height, e.Target, e.Reason)
}

// UnsupportedTargetError is returned when a texture of the given target can
// not be filled with pixel data from client memory.
type UnsupportedTargetError struct {
	Target Target
}

func (e *UnsupportedTargetError) Error() string {
	return fmt.Sprintf("target %s can not be loaded from an image", e.Target)
}

// DriverError is an error the driver reported through its error queue after
// an operation.
type DriverError struct {
	Op   string
	Code uint32
}

func (e *DriverError) Error() string {
	return e.Op + ": " + ErrorName(e.Code)
}

// ErrorName returns the symbolic name of a GL error code.
func ErrorName(code uint32) string {
	switch code {
	case GLNoError:
		return "GL_NO_ERROR"
	case GLInvalidEnum:
		return "GL_INVALID_ENUM"
	case GLInvalidValue:
		return "GL_INVALID_VALUE"
	case GLInvalidOperation:
		return "GL_INVALID_OPERATION"
	case GLStackOverflow:
		return "GL_STACK_OVERFLOW"
	case GLStackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case GLOutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case GLInvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "GL error 0x" + strconv.FormatUint(uint64(code), 16)
	}
}
