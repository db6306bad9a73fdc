// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	syscall "golang.org/x/sys/windows"

	"gioui.org/wgl/internal/gl"
	"gioui.org/wgl/internal/windows"
)

type win32 struct{}

func defaultPlatform() (platform, error) {
	return win32{}, nil
}

// wndProc is shared by every hidden window class.
var wndProc = syscall.NewCallback(func(w syscall.Handle, msg uint32, wparam, lparam uintptr) uintptr {
	return windows.DefWindowProc(w, msg, wparam, lparam)
})

func (win32) LoadLibrary(name string) (hmodule, error) {
	h, err := syscall.LoadLibraryEx(name, 0, syscall.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return 0, fmt.Errorf("LoadLibraryEx(%s) failed: %w", name, err)
	}
	return hmodule(h), nil
}

func (win32) ModuleHandle() (hmodule, error) {
	h, err := windows.GetModuleHandle()
	return hmodule(h), err
}

func (win32) ProcAddress(name string) uintptr {
	return windows.WglGetProcAddress(name)
}

func (win32) ModuleProcAddress(mod hmodule, name string) uintptr {
	p, err := syscall.GetProcAddress(syscall.Handle(mod), name)
	if err != nil {
		return 0
	}
	return p
}

func (win32) RegisterClass(inst hmodule, name string) error {
	cname, err := syscall.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	cls := windows.WndClassEx{
		CbSize:        uint32(unsafe.Sizeof(windows.WndClassEx{})),
		Style:         windows.CS_OWNDC,
		LpfnWndProc:   wndProc,
		HInstance:     uintptr(inst),
		LpszClassName: cname,
	}
	_, err = windows.RegisterClassEx(&cls)
	return err
}

func (win32) CreateHiddenWindow(inst hmodule, class string) (hwnd, error) {
	cname, err := syscall.UTF16PtrFromString(class)
	if err != nil {
		return 0, err
	}
	// No WS_VISIBLE.
	w, err := windows.CreateWindowEx(0, cname, cname, 0, 0, 0, 1, 1, 0, 0, syscall.Handle(inst), 0)
	return hwnd(w), err
}

func (win32) GetDC(w hwnd) (hdc, error) {
	dc, err := windows.GetDC(syscall.Handle(w))
	return hdc(dc), err
}

func (win32) ReleaseDC(w hwnd, dc hdc) {
	windows.ReleaseDC(syscall.Handle(w), syscall.Handle(dc))
}

func (win32) ChoosePixelFormat(dc hdc, pfd *windows.PixelFormatDescriptor) (int, error) {
	return windows.ChoosePixelFormat(syscall.Handle(dc), pfd)
}

func (win32) GetPixelFormat(dc hdc) (int, error) {
	return windows.GetPixelFormat(syscall.Handle(dc))
}

func (win32) SetPixelFormat(dc hdc, index int, pfd *windows.PixelFormatDescriptor) error {
	return windows.SetPixelFormat(syscall.Handle(dc), index, pfd)
}

func (win32) DescribePixelFormat(dc hdc, index int, pfd *windows.PixelFormatDescriptor) error {
	return windows.DescribePixelFormat(syscall.Handle(dc), index, pfd)
}

func (win32) CreateContext(dc hdc) (hglrc, error) {
	ctx, err := windows.WglCreateContext(syscall.Handle(dc))
	return hglrc(ctx), err
}

func (win32) DeleteContext(ctx hglrc) error {
	return windows.WglDeleteContext(syscall.Handle(ctx))
}

func (win32) MakeCurrent(dc hdc, ctx hglrc) error {
	return windows.WglMakeCurrent(syscall.Handle(dc), syscall.Handle(ctx))
}

func (win32) CurrentContext() hglrc {
	return hglrc(windows.WglGetCurrentContext())
}

func (win32) ShareLists(src, dst hglrc) error {
	return windows.WglShareLists(syscall.Handle(src), syscall.Handle(dst))
}

func (win32) SwapBuffers(dc hdc) error {
	return windows.SwapBuffers(syscall.Handle(dc))
}

func (win32) LoadExtra(load gl.Loader) wglExtra {
	return &wglProcs{
		getExtensionsString:  load("wglGetExtensionsStringARB"),
		createContextAttribs: load("wglCreateContextAttribsARB"),
		swapInterval:         load("wglSwapIntervalEXT"),
	}
}

func (win32) LoadFunctions(load gl.Loader) (Functions, error) {
	f, err := gl.Load(load)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// wglProcs holds the WGL extension entry points.
type wglProcs struct {
	getExtensionsString  uintptr
	createContextAttribs uintptr
	swapInterval         uintptr
}

func (w *wglProcs) Extensions(dc hdc) string {
	if w.getExtensionsString == 0 {
		return ""
	}
	r, _ := windows.Call(w.getExtensionsString, uintptr(dc))
	if r == 0 {
		return ""
	}
	return syscall.BytePtrToString((*byte)(unsafe.Pointer(r)))
}

func (w *wglProcs) CanCreateContextAttribs() bool {
	return w.createContextAttribs != 0
}

func (w *wglProcs) CreateContextAttribs(dc hdc, share hglrc, attribs []int32) (hglrc, error) {
	if w.createContextAttribs == 0 {
		return 0, errors.New("wglCreateContextAttribsARB not loaded")
	}
	a := &attribs[0]
	r, err := windows.Call(w.createContextAttribs, uintptr(dc), uintptr(share), uintptr(unsafe.Pointer(a)))
	runtime.KeepAlive(a)
	if r == 0 {
		return 0, fmt.Errorf("wglCreateContextAttribsARB failed: %w", err)
	}
	return hglrc(r), nil
}

func (w *wglProcs) CanSwapInterval() bool {
	return w.swapInterval != 0
}

func (w *wglProcs) SwapInterval(interval int) error {
	if w.swapInterval == 0 {
		return errors.New("wglSwapIntervalEXT not loaded")
	}
	r, err := windows.Call(w.swapInterval, uintptr(interval))
	if r == 0 {
		return fmt.Errorf("wglSwapIntervalEXT failed: %w", err)
	}
	return nil
}
