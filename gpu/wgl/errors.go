// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory is returned when a GPU object cannot be allocated.
	ErrOutOfMemory = errors.New("wgl: out of memory")
	// ErrUnsupportedPresentMode is returned by Configure for present
	// modes other than PresentModeFifo and PresentModeMailbox.
	ErrUnsupportedPresentMode = errors.New("wgl: unsupported present mode")
	ErrInvalidExtent          = errors.New("wgl: invalid surface extent")
	ErrUnsupportedFormat      = errors.New("wgl: unsupported surface format")
	ErrMissingExtension       = errors.New("wgl: required extension is unsupported")
	ErrVersionTooOld          = errors.New("wgl: OpenGL version too old")
	ErrNotConfigured          = errors.New("wgl: surface is not configured")
	ErrUnsupportedPlatform    = errors.New("wgl: unsupported platform")
)

// InstanceError is a fatal error from instance creation. Err carries
// the platform error code, if any.
type InstanceError struct {
	Message string
	Err     error
}

func (e *InstanceError) Error() string {
	if e.Err == nil {
		return "wgl: " + e.Message
	}
	return fmt.Sprintf("wgl: %s: %v", e.Message, e.Err)
}

func (e *InstanceError) Unwrap() error { return e.Err }

// ContextError reports a failure to create a native OpenGL context.
type ContextError struct {
	Message string
	Err     error
}

func (e *ContextError) Error() string {
	if e.Err == nil {
		return "wgl: " + e.Message
	}
	return fmt.Sprintf("wgl: %s: %v", e.Message, e.Err)
}

func (e *ContextError) Unwrap() error { return e.Err }

// SurfaceError is a recoverable error from a surface operation. The
// surface stays usable and the operation may be retried.
type SurfaceError struct {
	Message string
	Err     error
}

func (e *SurfaceError) Error() string {
	if e.Err == nil {
		return "wgl: surface: " + e.Message
	}
	return fmt.Sprintf("wgl: surface: %s: %v", e.Message, e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }

// surfaceErr logs and returns a SurfaceError.
func surfaceErr(msg string, err error) error {
	if err != nil {
		Logger().Error(msg, "err", err)
	} else {
		Logger().Error(msg)
	}
	return &SurfaceError{Message: msg, Err: err}
}
