// SPDX-License-Identifier: Unlicense OR MIT

// Package gl holds the OpenGL enums, object names and function table used
// by the WGL backend.
package gl

type Enum uint

const (
	COLOR_ATTACHMENT0           = 0x8ce0
	COLOR_BUFFER_BIT            = 0x4000
	DEBUG_OUTPUT                = 0x92e0
	DEBUG_SEVERITY_HIGH         = 0x9146
	DEBUG_SEVERITY_LOW          = 0x9148
	DEBUG_SEVERITY_MEDIUM       = 0x9147
	DEBUG_SEVERITY_NOTIFICATION = 0x826b
	DRAW_FRAMEBUFFER            = 0x8ca9
	EXTENSIONS                  = 0x1f03
	FRAMEBUFFER_SRGB            = 0x8db9
	MAX_TEXTURE_SIZE            = 0xd33
	NEAREST                     = 0x2600
	NUM_EXTENSIONS              = 0x821d
	OUT_OF_MEMORY               = 0x0505
	READ_FRAMEBUFFER            = 0x8ca8
	RENDERBUFFER                = 0x8d41
	RENDERER                    = 0x1f01
	RGBA                        = 0x1908
	RGBA8                       = 0x8058
	SRGB8_ALPHA8                = 0x8c43
	UNSIGNED_BYTE               = 0x1401
	VENDOR                      = 0x1f00
	VERSION                     = 0x1f02
)
