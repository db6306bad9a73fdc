// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"unsafe"

	syscall "golang.org/x/sys/windows"

	"gioui.org/wgl/gpu/wgl"
	"gioui.org/wgl/internal/windows"
)

type window struct {
	hwnd syscall.Handle
}

var wndProc = syscall.NewCallback(func(w syscall.Handle, msg uint32, wparam, lparam uintptr) uintptr {
	return windows.DefWindowProc(w, msg, wparam, lparam)
})

func newWindow(title string, width, height int) (*window, error) {
	inst, err := windows.GetModuleHandle()
	if err != nil {
		return nil, err
	}
	cname, err := syscall.UTF16PtrFromString("wglinfo window")
	if err != nil {
		return nil, err
	}
	cls := windows.WndClassEx{
		CbSize:        uint32(unsafe.Sizeof(windows.WndClassEx{})),
		Style:         windows.CS_OWNDC,
		LpfnWndProc:   wndProc,
		HInstance:     uintptr(inst),
		LpszClassName: cname,
	}
	if _, err := windows.RegisterClassEx(&cls); err != nil {
		return nil, err
	}
	wname, err := syscall.UTF16PtrFromString(title)
	if err != nil {
		return nil, err
	}
	hwnd, err := windows.CreateWindowEx(0,
		cname,
		wname,
		windows.WS_OVERLAPPEDWINDOW|windows.WS_VISIBLE,
		windows.CW_USEDEFAULT, windows.CW_USEDEFAULT,
		int32(width), int32(height),
		0,
		0,
		inst,
		0)
	if err != nil {
		return nil, err
	}
	return &window{hwnd: hwnd}, nil
}

func (w *window) handle() wgl.Win32WindowHandle {
	return wgl.Win32WindowHandle{HWND: uintptr(w.hwnd)}
}

func (w *window) destroy() {
	windows.DestroyWindow(w.hwnd)
}
