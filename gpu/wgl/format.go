// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"github.com/gogpu/gputypes"

	"gioui.org/wgl/internal/gl"
)

// SampleType is the shader sample type of a texture format.
type SampleType uint8

const (
	SampleTypeFloat SampleType = iota
	SampleTypeUnfilterableFloat
	SampleTypeUint
	SampleTypeSint
	SampleTypeDepth
)

// TextureFormatDesc describes how a texture format maps to OpenGL.
type TextureFormatDesc struct {
	Internal   gl.Enum
	External   gl.Enum
	DataType   gl.Enum
	SampleType SampleType
}

// FormatDescriber looks up the OpenGL representation of texture formats.
// It reports false for formats it cannot represent.
type FormatDescriber interface {
	DescribeTextureFormat(format gputypes.TextureFormat) (TextureFormatDesc, bool)
}

// DefaultFormats describes the color formats a swapchain can use.
var DefaultFormats FormatDescriber = formatTable{
	gputypes.TextureFormatRGBA8Unorm:     {Internal: gl.RGBA8, External: gl.RGBA, DataType: gl.UNSIGNED_BYTE},
	gputypes.TextureFormatBGRA8Unorm:     {Internal: gl.RGBA8, External: gl.RGBA, DataType: gl.UNSIGNED_BYTE},
	gputypes.TextureFormatRGBA8UnormSrgb: {Internal: gl.SRGB8_ALPHA8, External: gl.RGBA, DataType: gl.UNSIGNED_BYTE},
	gputypes.TextureFormatBGRA8UnormSrgb: {Internal: gl.SRGB8_ALPHA8, External: gl.RGBA, DataType: gl.UNSIGNED_BYTE},
}

type formatTable map[gputypes.TextureFormat]TextureFormatDesc

func (t formatTable) DescribeTextureFormat(format gputypes.TextureFormat) (TextureFormatDesc, bool) {
	d, ok := t[format]
	return d, ok
}
