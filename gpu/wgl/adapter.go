// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"github.com/gogpu/gputypes"

	"gioui.org/wgl/internal/gl"
)

// AdapterInfo describes the driver behind the shared context.
type AdapterInfo struct {
	Vendor   string
	Renderer string
	Version  gl.Version
	// MaxTextureSize bounds surface extents.
	MaxTextureSize int
	Extensions     gl.ExtensionSet
}

// Adapter is the single adapter backed by the shared context.
type Adapter struct {
	ctx  *AdapterContext
	info AdapterInfo
}

// EnumerateAdapters returns the shared context as an adapter, or nothing
// if its OpenGL version is older than 3.3 or cannot be determined.
func (i *Instance) EnumerateAdapters() []*Adapter {
	var info AdapterInfo
	ok := false
	i.ctx.Do(func(f Functions) error {
		info, ok = queryAdapterInfo(f)
		return nil
	})
	if !ok {
		return nil
	}
	Logger().Info("exposing adapter",
		"vendor", info.Vendor,
		"renderer", info.Renderer,
		"version", info.Version.String(),
	)
	return []*Adapter{{ctx: i.ctx.clone(), info: info}}
}

func queryAdapterInfo(f Functions) (AdapterInfo, bool) {
	verStr := f.GetString(gl.VERSION)
	v, err := gl.ParseVersion(verStr)
	if err != nil {
		Logger().Warn("unable to parse OpenGL version", "version", verStr, "err", err)
		return AdapterInfo{}, false
	}
	if v.ES || !v.AtLeast(3, 3) {
		Logger().Warn("OpenGL version too old for an adapter", "version", verStr)
		return AdapterInfo{}, false
	}
	return AdapterInfo{
		Vendor:         f.GetString(gl.VENDOR),
		Renderer:       f.GetString(gl.RENDERER),
		Version:        v,
		MaxTextureSize: f.GetInteger(gl.MAX_TEXTURE_SIZE),
		Extensions:     contextExtensions(f, v),
	}, true
}

func (a *Adapter) Info() AdapterInfo {
	return a.info
}

// Open returns a device on the adapter using the DefaultFormats table.
func (a *Adapter) Open() *AdapterDevice {
	return &AdapterDevice{ctx: a.ctx.clone(), formats: DefaultFormats}
}

// Release releases the adapter's reference to the shared context.
func (a *Adapter) Release() {
	a.ctx.Release()
}

// SurfaceCapabilities describes what s can be configured with, or nil if s
// cannot present.
type SurfaceCapabilities struct {
	Formats      []gputypes.TextureFormat
	PresentModes []PresentMode
	MinExtent    gputypes.Extent3D
	MaxExtent    gputypes.Extent3D
}

func (a *Adapter) SurfaceCapabilities(s *Surface) *SurfaceCapabilities {
	if !s.presentable {
		return nil
	}
	var formats []gputypes.TextureFormat
	if s.SupportsSRGB() {
		formats = append(formats, gputypes.TextureFormatRGBA8UnormSrgb, gputypes.TextureFormatBGRA8UnormSrgb)
	}
	formats = append(formats, gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm)
	maxSize := uint32(a.info.MaxTextureSize)
	return &SurfaceCapabilities{
		Formats:      formats,
		PresentModes: []PresentMode{PresentModeFifo, PresentModeMailbox},
		MinExtent:    gputypes.Extent3D{Width: 1, Height: 1, DepthOrArrayLayers: 1},
		MaxExtent:    gputypes.Extent3D{Width: maxSize, Height: maxSize, DepthOrArrayLayers: 1},
	}
}

// Device is what a Surface needs from a logical device.
type Device interface {
	FormatDescriber
	Context() *AdapterContext
}

// AdapterDevice is a device opened on an Adapter.
type AdapterDevice struct {
	ctx     *AdapterContext
	formats FormatDescriber
}

func (d *AdapterDevice) Context() *AdapterContext {
	return d.ctx
}

func (d *AdapterDevice) DescribeTextureFormat(format gputypes.TextureFormat) (TextureFormatDesc, bool) {
	return d.formats.DescribeTextureFormat(format)
}

// Release releases the device's reference to the shared context.
func (d *AdapterDevice) Release() {
	d.ctx.Release()
}
