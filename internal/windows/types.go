// SPDX-License-Identifier: Unlicense OR MIT

// Package windows contains the Win32, GDI and WGL bindings used by the
// WGL backend. The types and constants are available on every platform
// so that platform independent code can describe pixel formats.
package windows

type PixelFormatDescriptor struct {
	Size           uint16
	Version        uint16
	Flags          uint32
	PixelType      uint8
	ColorBits      uint8
	RedBits        uint8
	RedShift       uint8
	GreenBits      uint8
	GreenShift     uint8
	BlueBits       uint8
	BlueShift      uint8
	AlphaBits      uint8
	AlphaShift     uint8
	AccumBits      uint8
	AccumRedBits   uint8
	AccumGreenBits uint8
	AccumBlueBits  uint8
	AccumAlphaBits uint8
	DepthBits      uint8
	StencilBits    uint8
	AuxBuffers     uint8
	LayerType      uint8
	Reserved       uint8
	LayerMask      uint32
	VisibleMask    uint32
	DamageMask     uint32
}

type WndClassEx struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CnClsExtra    int32
	CbWndExtra    int32
	HInstance     uintptr
	HIcon         uintptr
	HCursor       uintptr
	HbrBackground uintptr
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       uintptr
}

const (
	CS_OWNDC = 0x0020

	CW_USEDEFAULT = -2147483648

	WS_OVERLAPPEDWINDOW = 0x00CF0000
	WS_VISIBLE          = 0x10000000

	PFD_DOUBLEBUFFER   = 0x00000001
	PFD_DRAW_TO_WINDOW = 0x00000004
	PFD_SUPPORT_OPENGL = 0x00000020
	PFD_TYPE_RGBA      = 0

	WGL_CONTEXT_CORE_PROFILE_BIT_ARB = 0x00000001
	WGL_CONTEXT_DEBUG_BIT_ARB        = 0x00000001
	WGL_CONTEXT_FLAGS_ARB            = 0x2094
	WGL_CONTEXT_PROFILE_MASK_ARB     = 0x9126
)
