// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"fmt"
	"sync"
	"unsafe"

	"gioui.org/wgl/internal/windows"
)

// deviceOnce memoizes the device context of a hidden window, used to
// bootstrap the shared context. The window class, window and device
// context are never released: they cannot be destroyed from another
// thread than the one that created them, and there is one per process.
type deviceOnce struct {
	once sync.Once
	dc   hdc
	err  error
}

// globalDevice is the process wide device context.
var globalDevice deviceOnce

// classTag provides an address unique to this copy of the package, so
// that independently linked copies register distinct window classes.
var classTag byte

func (d *deviceOnce) get(p platform) (hdc, error) {
	d.once.Do(func() {
		d.dc, d.err = createDeviceContext(p)
	})
	return d.dc, d.err
}

func deviceClassName() string {
	return fmt.Sprintf("gioui wgl device class %x", uintptr(unsafe.Pointer(&classTag)))
}

func createDeviceContext(p platform) (hdc, error) {
	inst, err := p.ModuleHandle()
	if err != nil {
		return 0, &InstanceError{Message: "unable to get executable instance", Err: err}
	}
	name := deviceClassName()
	if err := p.RegisterClass(inst, name); err != nil {
		return 0, &InstanceError{Message: "unable to register window class", Err: err}
	}
	// Hidden, since the window is never shown.
	w, err := p.CreateHiddenWindow(inst, name)
	if err != nil {
		return 0, &InstanceError{Message: "unable to create hidden instance window", Err: err}
	}
	dc, err := p.GetDC(w)
	if err != nil {
		return 0, &InstanceError{Message: "unable to create memory device", Err: err}
	}
	if _, err := setupPixelFormat(p, dc); err != nil {
		return 0, err
	}
	Logger().Debug("created global device context", "class", name)
	return dc, nil
}

// setupPixelFormat selects a double buffered RGBA pixel format for dc,
// unless dc already has it, and verifies that the result supports OpenGL.
// It returns the pixel format index of dc.
func setupPixelFormat(p platform, dc hdc) (int, error) {
	format := windows.PixelFormatDescriptor{
		Version:   1,
		Flags:     windows.PFD_DRAW_TO_WINDOW | windows.PFD_SUPPORT_OPENGL | windows.PFD_DOUBLEBUFFER,
		PixelType: windows.PFD_TYPE_RGBA,
		ColorBits: 8,
	}
	format.Size = uint16(unsafe.Sizeof(format))

	index, err := p.ChoosePixelFormat(dc, &format)
	if err != nil {
		return 0, &InstanceError{Message: "unable to choose pixel format", Err: err}
	}
	// A device context without a pixel format reports 0.
	current, _ := p.GetPixelFormat(dc)
	if index != current {
		if err := p.SetPixelFormat(dc, index, &format); err != nil {
			return 0, &InstanceError{Message: "unable to set pixel format", Err: err}
		}
	}
	index, err = p.GetPixelFormat(dc)
	if err != nil {
		return 0, &InstanceError{Message: "unable to get pixel format index", Err: err}
	}
	if err := p.DescribePixelFormat(dc, index, &format); err != nil {
		return 0, &InstanceError{Message: "unable to read pixel format", Err: err}
	}
	if format.Flags&windows.PFD_SUPPORT_OPENGL == 0 || format.PixelType != windows.PFD_TYPE_RGBA {
		return 0, &InstanceError{Message: "unsuitable pixel format"}
	}
	return index, nil
}

// deviceContextHandle is a window device context released by release.
type deviceContextHandle struct {
	p      platform
	window hwnd
	device hdc
}

func getDC(p platform, w hwnd) (*deviceContextHandle, error) {
	dc, err := p.GetDC(w)
	if err != nil {
		return nil, err
	}
	return &deviceContextHandle{p: p, window: w, device: dc}, nil
}

func (h *deviceContextHandle) release() {
	h.p.ReleaseDC(h.window, h.device)
}
