// SPDX-License-Identifier: Unlicense OR MIT

//go:build windows
// +build windows

package windows

import (
	"fmt"
	"runtime"
	"unsafe"

	syscall "golang.org/x/sys/windows"
)

var (
	kernel32          = syscall.NewLazySystemDLL("kernel32.dll")
	_GetModuleHandleW = kernel32.NewProc("GetModuleHandleW")

	user32            = syscall.NewLazySystemDLL("user32.dll")
	_CreateWindowEx   = user32.NewProc("CreateWindowExW")
	_DefWindowProc    = user32.NewProc("DefWindowProcW")
	_DestroyWindow    = user32.NewProc("DestroyWindow")
	_GetDC            = user32.NewProc("GetDC")
	_RegisterClassExW = user32.NewProc("RegisterClassExW")
	_ReleaseDC        = user32.NewProc("ReleaseDC")

	gdi32                = syscall.NewLazySystemDLL("gdi32.dll")
	_ChoosePixelFormat   = gdi32.NewProc("ChoosePixelFormat")
	_DescribePixelFormat = gdi32.NewProc("DescribePixelFormat")
	_GetPixelFormat      = gdi32.NewProc("GetPixelFormat")
	_SetPixelFormat      = gdi32.NewProc("SetPixelFormat")
	_SwapBuffers         = gdi32.NewProc("SwapBuffers")

	opengl32              = syscall.NewLazySystemDLL("opengl32.dll")
	_wglCreateContext     = opengl32.NewProc("wglCreateContext")
	_wglDeleteContext     = opengl32.NewProc("wglDeleteContext")
	_wglGetCurrentContext = opengl32.NewProc("wglGetCurrentContext")
	_wglGetProcAddress    = opengl32.NewProc("wglGetProcAddress")
	_wglMakeCurrent       = opengl32.NewProc("wglMakeCurrent")
	_wglShareLists        = opengl32.NewProc("wglShareLists")
)

func GetModuleHandle() (syscall.Handle, error) {
	h, _, err := _GetModuleHandleW.Call(uintptr(0))
	if h == 0 {
		return 0, fmt.Errorf("GetModuleHandleW failed: %w", err)
	}
	return syscall.Handle(h), nil
}

func RegisterClassEx(cls *WndClassEx) (uint16, error) {
	a, _, err := _RegisterClassExW.Call(uintptr(unsafe.Pointer(cls)))
	runtime.KeepAlive(cls)
	if a == 0 {
		return 0, fmt.Errorf("RegisterClassExW failed: %w", err)
	}
	return uint16(a), nil
}

func CreateWindowEx(dwExStyle uint32, lpClassName, lpWindowName *uint16, dwStyle uint32, x, y, w, h int32, hWndParent, hMenu, hInstance syscall.Handle, lpParam uintptr) (syscall.Handle, error) {
	hwnd, _, err := _CreateWindowEx.Call(
		uintptr(dwExStyle),
		uintptr(unsafe.Pointer(lpClassName)),
		uintptr(unsafe.Pointer(lpWindowName)),
		uintptr(dwStyle),
		uintptr(x), uintptr(y),
		uintptr(w), uintptr(h),
		uintptr(hWndParent),
		uintptr(hMenu),
		uintptr(hInstance),
		lpParam)
	runtime.KeepAlive(lpClassName)
	runtime.KeepAlive(lpWindowName)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowEx failed: %w", err)
	}
	return syscall.Handle(hwnd), nil
}

func DefWindowProc(hwnd syscall.Handle, msg uint32, wparam, lparam uintptr) uintptr {
	r, _, _ := _DefWindowProc.Call(uintptr(hwnd), uintptr(msg), wparam, lparam)
	return r
}

func DestroyWindow(hwnd syscall.Handle) {
	_DestroyWindow.Call(uintptr(hwnd))
}

func GetDC(hwnd syscall.Handle) (syscall.Handle, error) {
	hdc, _, err := _GetDC.Call(uintptr(hwnd))
	if hdc == 0 {
		return 0, fmt.Errorf("GetDC failed: %w", err)
	}
	return syscall.Handle(hdc), nil
}

func ReleaseDC(hwnd, hdc syscall.Handle) {
	_ReleaseDC.Call(uintptr(hwnd), uintptr(hdc))
}

func ChoosePixelFormat(hdc syscall.Handle, pfd *PixelFormatDescriptor) (int, error) {
	r, _, err := _ChoosePixelFormat.Call(uintptr(hdc), uintptr(unsafe.Pointer(pfd)))
	runtime.KeepAlive(pfd)
	if r == 0 {
		return 0, fmt.Errorf("ChoosePixelFormat failed: %w", err)
	}
	return int(r), nil
}

func DescribePixelFormat(hdc syscall.Handle, index int, pfd *PixelFormatDescriptor) error {
	r, _, err := _DescribePixelFormat.Call(uintptr(hdc), uintptr(index), unsafe.Sizeof(*pfd), uintptr(unsafe.Pointer(pfd)))
	runtime.KeepAlive(pfd)
	if r == 0 {
		return fmt.Errorf("DescribePixelFormat failed: %w", err)
	}
	return nil
}

// GetPixelFormat returns 0 and the error code if hdc has no pixel format.
func GetPixelFormat(hdc syscall.Handle) (int, error) {
	r, _, err := _GetPixelFormat.Call(uintptr(hdc))
	if r == 0 {
		return 0, fmt.Errorf("GetPixelFormat failed: %w", err)
	}
	return int(r), nil
}

func SetPixelFormat(hdc syscall.Handle, index int, pfd *PixelFormatDescriptor) error {
	r, _, err := _SetPixelFormat.Call(uintptr(hdc), uintptr(index), uintptr(unsafe.Pointer(pfd)))
	runtime.KeepAlive(pfd)
	if r == 0 {
		return fmt.Errorf("SetPixelFormat failed: %w", err)
	}
	return nil
}

func SwapBuffers(hdc syscall.Handle) error {
	r, _, err := _SwapBuffers.Call(uintptr(hdc))
	if r == 0 {
		return fmt.Errorf("SwapBuffers failed: %w", err)
	}
	return nil
}

func WglCreateContext(hdc syscall.Handle) (syscall.Handle, error) {
	r, _, err := _wglCreateContext.Call(uintptr(hdc))
	if r == 0 {
		return 0, fmt.Errorf("wglCreateContext failed: %w", err)
	}
	return syscall.Handle(r), nil
}

func WglDeleteContext(ctx syscall.Handle) error {
	r, _, err := _wglDeleteContext.Call(uintptr(ctx))
	if r == 0 {
		return fmt.Errorf("wglDeleteContext failed: %w", err)
	}
	return nil
}

func WglGetCurrentContext() syscall.Handle {
	r, _, _ := _wglGetCurrentContext.Call()
	return syscall.Handle(r)
}

// WglGetProcAddress returns 0 for entry points the current context does
// not provide. Some drivers return small sentinel values instead of NULL.
func WglGetProcAddress(name string) uintptr {
	cname, err := syscall.BytePtrFromString(name)
	if err != nil {
		return 0
	}
	r, _, _ := _wglGetProcAddress.Call(uintptr(unsafe.Pointer(cname)))
	runtime.KeepAlive(cname)
	switch r {
	case 1, 2, 3, ^uintptr(0):
		return 0
	}
	return r
}

func WglMakeCurrent(hdc, ctx syscall.Handle) error {
	r, _, err := _wglMakeCurrent.Call(uintptr(hdc), uintptr(ctx))
	if r == 0 {
		return fmt.Errorf("wglMakeCurrent failed: %w", err)
	}
	return nil
}

func WglShareLists(ctx1, ctx2 syscall.Handle) error {
	r, _, err := _wglShareLists.Call(uintptr(ctx1), uintptr(ctx2))
	if r == 0 {
		return fmt.Errorf("wglShareLists failed: %w", err)
	}
	return nil
}
