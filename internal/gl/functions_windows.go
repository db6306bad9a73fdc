// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

func (f *Functions) call(proc uintptr, args ...uintptr) uintptr {
	if proc == 0 {
		panic("gl: entry point not loaded")
	}
	r, _, _ := syscall.SyscallN(proc, args...)
	return r
}

func (f *Functions) BindFramebuffer(target Enum, fb Framebuffer) {
	f.call(f.glBindFramebuffer, uintptr(target), uintptr(fb.V))
}

func (f *Functions) BindRenderbuffer(target Enum, rb Renderbuffer) {
	f.call(f.glBindRenderbuffer, uintptr(target), uintptr(rb.V))
}

func (f *Functions) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask Enum, filter Enum) {
	f.call(f.glBlitFramebuffer,
		uintptr(sx0), uintptr(sy0), uintptr(sx1), uintptr(sy1),
		uintptr(dx0), uintptr(dy0), uintptr(dx1), uintptr(dy1),
		uintptr(mask), uintptr(filter))
}

func (f *Functions) CreateFramebuffer() Framebuffer {
	var fb uint32
	f.call(f.glGenFramebuffers, 1, uintptr(unsafe.Pointer(&fb)))
	runtime.KeepAlive(&fb)
	return Framebuffer{uint(fb)}
}

func (f *Functions) CreateRenderbuffer() Renderbuffer {
	var rb uint32
	f.call(f.glGenRenderbuffers, 1, uintptr(unsafe.Pointer(&rb)))
	runtime.KeepAlive(&rb)
	return Renderbuffer{uint(rb)}
}

// DebugMessageCallback installs cb as the GL_KHR_debug message callback.
// It does nothing if the entry point is missing.
func (f *Functions) DebugMessageCallback(cb func(DebugMessage)) {
	if f.glDebugMessageCallback == 0 {
		return
	}
	f.debug = cb
	if f.debugCallback == 0 {
		f.debugCallback = windows.NewCallback(f.onDebugMessage)
	}
	f.call(f.glDebugMessageCallback, f.debugCallback, 0)
}

func (f *Functions) onDebugMessage(source, typ, id, severity, length, message, user uintptr) uintptr {
	if f.debug == nil || message == 0 {
		return 0
	}
	var msg string
	if n := int32(length); n >= 0 {
		msg = string(unsafe.Slice((*byte)(unsafe.Pointer(message)), n))
	} else {
		msg = windows.BytePtrToString((*byte)(unsafe.Pointer(message)))
	}
	f.debug(DebugMessage{
		Source:   Enum(source),
		Type:     Enum(typ),
		ID:       uint(id),
		Severity: Enum(severity),
		Message:  msg,
	})
	return 0
}

func (f *Functions) DeleteFramebuffer(fb Framebuffer) {
	v := uint32(fb.V)
	f.call(f.glDeleteFramebuffers, 1, uintptr(unsafe.Pointer(&v)))
	runtime.KeepAlive(&v)
}

func (f *Functions) DeleteRenderbuffer(rb Renderbuffer) {
	v := uint32(rb.V)
	f.call(f.glDeleteRenderbuffers, 1, uintptr(unsafe.Pointer(&v)))
	runtime.KeepAlive(&v)
}

func (f *Functions) Enable(cap Enum) {
	f.call(f.glEnable, uintptr(cap))
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, renderbuffertarget Enum, rb Renderbuffer) {
	f.call(f.glFramebufferRenderbuffer, uintptr(target), uintptr(attachment), uintptr(renderbuffertarget), uintptr(rb.V))
}

func (f *Functions) GetError() Enum {
	return Enum(f.call(f.glGetError))
}

func (f *Functions) GetInteger(pname Enum) int {
	var v int32
	f.call(f.glGetIntegerv, uintptr(pname), uintptr(unsafe.Pointer(&v)))
	runtime.KeepAlive(&v)
	return int(v)
}

func (f *Functions) GetString(name Enum) string {
	r := f.call(f.glGetString, uintptr(name))
	if r == 0 {
		return ""
	}
	return windows.BytePtrToString((*byte)(unsafe.Pointer(r)))
}

// GetStringi returns the empty string if glGetStringi is not available.
func (f *Functions) GetStringi(name Enum, index int) string {
	if f.glGetStringi == 0 {
		return ""
	}
	r := f.call(f.glGetStringi, uintptr(name), uintptr(index))
	if r == 0 {
		return ""
	}
	return windows.BytePtrToString((*byte)(unsafe.Pointer(r)))
}

func (f *Functions) RenderbufferStorage(target, internalformat Enum, width, height int) {
	f.call(f.glRenderbufferStorage, uintptr(target), uintptr(internalformat), uintptr(width), uintptr(height))
}
