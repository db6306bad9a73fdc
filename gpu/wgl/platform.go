// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"gioui.org/wgl/internal/gl"
	"gioui.org/wgl/internal/windows"
)

type (
	hmodule uintptr
	hwnd    uintptr
	hdc     uintptr
	hglrc   uintptr
)

// Functions is the OpenGL function table of a context.
type Functions interface {
	BindFramebuffer(target gl.Enum, fb gl.Framebuffer)
	BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer)
	BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask gl.Enum, filter gl.Enum)
	CreateFramebuffer() gl.Framebuffer
	CreateRenderbuffer() gl.Renderbuffer
	DebugMessageCallback(cb func(gl.DebugMessage))
	DeleteFramebuffer(fb gl.Framebuffer)
	DeleteRenderbuffer(rb gl.Renderbuffer)
	Enable(cap gl.Enum)
	FramebufferRenderbuffer(target, attachment, renderbuffertarget gl.Enum, rb gl.Renderbuffer)
	GetError() gl.Enum
	GetInteger(pname gl.Enum) int
	GetString(name gl.Enum) string
	GetStringi(name gl.Enum, index int) string
	RenderbufferStorage(target, internalformat gl.Enum, width, height int)
}

// wglExtra is the WGL extension function table. It is resolved through
// wglGetProcAddress and therefore only valid while a context is current.
type wglExtra interface {
	// Extensions returns the wglGetExtensionsStringARB result, or the
	// empty string if the entry point is missing.
	Extensions(dc hdc) string
	CanCreateContextAttribs() bool
	CreateContextAttribs(dc hdc, share hglrc, attribs []int32) (hglrc, error)
	CanSwapInterval() bool
	SwapInterval(interval int) error
}

// platform is the boundary to the native windowing and WGL entry points.
// Every method is a synchronous native call.
type platform interface {
	LoadLibrary(name string) (hmodule, error)
	ModuleHandle() (hmodule, error)
	// ProcAddress resolves through wglGetProcAddress.
	ProcAddress(name string) uintptr
	// ModuleProcAddress resolves through the module export table.
	ModuleProcAddress(mod hmodule, name string) uintptr

	RegisterClass(inst hmodule, name string) error
	CreateHiddenWindow(inst hmodule, class string) (hwnd, error)
	GetDC(w hwnd) (hdc, error)
	ReleaseDC(w hwnd, dc hdc)

	ChoosePixelFormat(dc hdc, pfd *windows.PixelFormatDescriptor) (int, error)
	// GetPixelFormat returns 0 and the error code if dc has no pixel format.
	GetPixelFormat(dc hdc) (int, error)
	SetPixelFormat(dc hdc, index int, pfd *windows.PixelFormatDescriptor) error
	DescribePixelFormat(dc hdc, index int, pfd *windows.PixelFormatDescriptor) error

	CreateContext(dc hdc) (hglrc, error)
	DeleteContext(ctx hglrc) error
	MakeCurrent(dc hdc, ctx hglrc) error
	CurrentContext() hglrc
	ShareLists(src, dst hglrc) error
	SwapBuffers(dc hdc) error

	LoadExtra(load gl.Loader) wglExtra
	LoadFunctions(load gl.Loader) (Functions, error)
}

// functionLoader returns the two stage loader for the OpenGL entry
// points: extension functions through wglGetProcAddress, the OpenGL 1.1
// core through the opengl32.dll export table.
func functionLoader(p platform, mod hmodule) gl.Loader {
	return gl.Chain(
		p.ProcAddress,
		func(name string) uintptr {
			return p.ModuleProcAddress(mod, name)
		},
	)
}
