// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"

	"gioui.org/wgl/internal/gl"
)

// PresentMode selects how buffer swaps synchronize with the display.
type PresentMode uint8

const (
	PresentModeAutoVsync PresentMode = iota
	PresentModeAutoNoVsync
	// PresentModeFifo waits for vertical blank.
	PresentModeFifo
	PresentModeFifoRelaxed
	PresentModeImmediate
	// PresentModeMailbox swaps without waiting.
	PresentModeMailbox
)

func (m PresentMode) String() string {
	switch m {
	case PresentModeAutoVsync:
		return "AutoVsync"
	case PresentModeAutoNoVsync:
		return "AutoNoVsync"
	case PresentModeFifo:
		return "Fifo"
	case PresentModeFifoRelaxed:
		return "FifoRelaxed"
	case PresentModeImmediate:
		return "Immediate"
	case PresentModeMailbox:
		return "Mailbox"
	default:
		return fmt.Sprintf("PresentMode(%d)", uint8(m))
	}
}

// swapInterval maps a present mode to a wglSwapIntervalEXT interval.
func swapInterval(m PresentMode) (int, error) {
	switch m {
	case PresentModeFifo:
		return 1, nil
	case PresentModeMailbox:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedPresentMode, m)
	}
}

// minSurfaceVersion is the oldest OpenGL with framebuffer blits.
var minSurfaceVersion = gl.Version{Major: 3, Minor: 0}

// SurfaceConfiguration configures a Surface.
type SurfaceConfiguration struct {
	Extent      gputypes.Extent3D
	Format      gputypes.TextureFormat
	PresentMode PresentMode
}

// Surface presents to a window. A configured surface owns a swapchain:
// an off-screen renderbuffer blitted to the window by Present.
type Surface struct {
	p           platform
	window      hwnd
	presentable bool
	swapchain   *swapchain
	srgbCapable bool
	ctx         *AdapterContext
}

type swapchain struct {
	// context shares objects with the shared context.
	context      *wglContext
	gl           Functions
	framebuffer  gl.Framebuffer
	renderbuffer gl.Renderbuffer
	// The window size may differ from the configured extent.
	extent     gputypes.Extent3D
	format     gputypes.TextureFormat
	formatDesc TextureFormatDesc
}

// SurfaceTexture is the swapchain renderbuffer exposed as a texture.
type SurfaceTexture struct {
	Renderbuffer    gl.Renderbuffer
	Format          gputypes.TextureFormat
	FormatDesc      TextureFormatDesc
	Size            gputypes.Extent3D
	MipLevelCount   uint32
	ArrayLayerCount uint32
}

// AcquiredSurfaceTexture is the result of AcquireTexture.
type AcquiredSurfaceTexture struct {
	Texture    *SurfaceTexture
	Suboptimal bool
}

// SupportsSRGB reports whether the surface can present sRGB content.
func (s *Surface) SupportsSRGB() bool {
	return s.srgbCapable
}

// Configured reports whether s has a swapchain.
func (s *Surface) Configured() bool {
	return s.swapchain != nil
}

// Configure replaces the swapchain of s with one matching cfg. The
// existing swapchain is deleted first, so on failure s is left
// unconfigured. An unsupported present mode, extent or format is reported
// without any further native call.
func (s *Surface) Configure(dev Device, cfg *SurfaceConfiguration) (err error) {
	s.Unconfigure(dev)

	interval, err := swapInterval(cfg.PresentMode)
	if err != nil {
		return surfaceErr("unsupported present mode", err)
	}
	if cfg.Extent.Width == 0 || cfg.Extent.Height == 0 {
		return surfaceErr(fmt.Sprintf("extent %dx%d", cfg.Extent.Width, cfg.Extent.Height), ErrInvalidExtent)
	}
	desc, ok := dev.DescribeTextureFormat(cfg.Format)
	if !ok {
		return surfaceErr(fmt.Sprintf("format %v", cfg.Format), ErrUnsupportedFormat)
	}

	lock, err := dev.Context().lockErr()
	if err != nil {
		return surfaceErr("unable to make the shared OpenGL context current", err)
	}
	defer lock.Release()
	shared := lock.inner
	f := lock.Functions()
	rb := f.CreateRenderbuffer()
	if !rb.Valid() {
		return surfaceErr("internal swapchain renderbuffer creation failed", ErrOutOfMemory)
	}
	var surfaceContext *wglContext
	defer func() {
		if err == nil {
			return
		}
		// Delete through the shared context, which owns the renderbuffer.
		if err := shared.ctx.makeCurrent(shared.device); err != nil {
			Logger().Error("unable to make the shared OpenGL context current", "err", err)
		}
		f.DeleteRenderbuffer(rb)
		if surfaceContext != nil {
			surfaceContext.destroy()
		}
	}()
	f.BindRenderbuffer(gl.RENDERBUFFER, rb)
	f.RenderbufferStorage(gl.RENDERBUFFER, desc.Internal, int(cfg.Extent.Width), int(cfg.Extent.Height))
	if f.GetError() == gl.OUT_OF_MEMORY {
		return surfaceErr("internal swapchain renderbuffer storage failed", ErrOutOfMemory)
	}

	dc, err := getDC(s.p, s.window)
	if err != nil {
		return surfaceErr("unable to get the device context from window", err)
	}
	defer dc.release()

	if _, err := setupPixelFormat(s.p, dc.device); err != nil {
		return surfaceErr("unable to setup surface pixel format", err)
	}

	h, err := s.p.CreateContext(dc.device)
	if err != nil {
		return surfaceErr("unable to create surface OpenGL context",
			&ContextError{Message: "unable to create surface OpenGL context", Err: err})
	}
	surfaceContext = &wglContext{p: s.p, handle: h}

	if err := s.p.ShareLists(shared.ctx.handle, surfaceContext.handle); err != nil {
		return surfaceErr("unable to share objects between OpenGL contexts", err)
	}
	if err := surfaceContext.makeCurrent(dc.device); err != nil {
		return surfaceErr("unable to make the surface OpenGL context current", err)
	}

	extra := s.p.LoadExtra(s.p.ProcAddress)
	exts := gl.ParseExtensions(extra.Extensions(dc.device))
	if !exts.Has("WGL_EXT_swap_control") || !extra.CanSwapInterval() {
		return surfaceErr("WGL_EXT_swap_control is unsupported", ErrMissingExtension)
	}
	if err := extra.SwapInterval(interval); err != nil {
		return surfaceErr("unable to set swap interval", err)
	}

	sf, err := s.p.LoadFunctions(functionLoader(s.p, shared.module))
	if err != nil {
		return surfaceErr("unable to load surface OpenGL functions", err)
	}
	// Framebuffer blits need OpenGL 3.0.
	verStr := sf.GetString(gl.VERSION)
	version, err := gl.ParseVersion(verStr)
	if err != nil {
		return surfaceErr("unable to parse surface context OpenGL version", err)
	}
	if !version.AtLeast(minSurfaceVersion.Major, minSurfaceVersion.Minor) {
		return surfaceErr(fmt.Sprintf("surface context OpenGL version (%d.%d) too old", version.Major, version.Minor), ErrVersionTooOld)
	}

	fb := sf.CreateFramebuffer()
	if !fb.Valid() {
		return surfaceErr("internal swapchain framebuffer creation failed", ErrOutOfMemory)
	}
	sf.BindFramebuffer(gl.READ_FRAMEBUFFER, fb)
	sf.FramebufferRenderbuffer(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, rb)
	sf.BindRenderbuffer(gl.RENDERBUFFER, gl.Renderbuffer{})
	sf.BindFramebuffer(gl.READ_FRAMEBUFFER, gl.Framebuffer{})

	// Draw to the window, read from the swapchain image.
	sf.BindFramebuffer(gl.DRAW_FRAMEBUFFER, gl.Framebuffer{})
	sf.BindFramebuffer(gl.READ_FRAMEBUFFER, fb)

	s.swapchain = &swapchain{
		context:      surfaceContext,
		gl:           sf,
		framebuffer:  fb,
		renderbuffer: rb,
		extent:       gputypes.Extent3D{Width: cfg.Extent.Width, Height: cfg.Extent.Height, DepthOrArrayLayers: 1},
		format:       cfg.Format,
		formatDesc:   desc,
	}
	Logger().Debug("configured surface",
		"width", cfg.Extent.Width,
		"height", cfg.Extent.Height,
		"present_mode", cfg.PresentMode.String(),
	)
	return nil
}

// Unconfigure deletes the swapchain of s, if any.
func (s *Surface) Unconfigure(dev Device) {
	s.unconfigure(dev.Context())
}

func (s *Surface) unconfigure(ctx *AdapterContext) {
	sc := s.swapchain
	if sc == nil {
		return
	}
	s.swapchain = nil
	lock := ctx.lockExclusive()
	defer lock.Release()
	sc.destroy(s.p, s.window, lock.inner)
}

// destroy deletes the swapchain objects. The caller holds the lock.
func (sc *swapchain) destroy(p platform, window hwnd, shared *sharedContext) {
	// Framebuffers are not shared between contexts.
	if dc, err := getDC(p, window); err != nil {
		Logger().Warn("unable to get the device context from window", "err", err)
	} else {
		if err := sc.context.makeCurrent(dc.device); err != nil {
			Logger().Warn("unable to make the surface OpenGL context current", "err", err)
		} else {
			sc.gl.DeleteFramebuffer(sc.framebuffer)
		}
		dc.release()
	}
	if err := shared.ctx.makeCurrent(shared.device); err != nil {
		Logger().Error("unable to make the shared OpenGL context current", "err", err)
	} else {
		shared.gl.DeleteRenderbuffer(sc.renderbuffer)
	}
	sc.context.destroy()
}

// Present blits the swapchain image to the window and swaps buffers.
// The texture belongs to the swapchain and is not consumed.
func (s *Surface) Present(dev Device, _ *SurfaceTexture) error {
	sc := s.swapchain
	if sc == nil {
		return surfaceErr("present", ErrNotConfigured)
	}
	dc, err := getDC(s.p, s.window)
	if err != nil {
		return surfaceErr("unable to get the device context from window", err)
	}
	defer dc.release()

	// The swapchain context shares objects with the shared context, which
	// is not made current here.
	lock := dev.Context().lockExclusive()
	defer lock.Release()

	if err := sc.context.makeCurrent(dc.device); err != nil {
		return surfaceErr("unable to make the surface OpenGL context current", err)
	}

	// Rendering is Y-flipped relative to presentation, so is the blit.
	w, h := int(sc.extent.Width), int(sc.extent.Height)
	sc.gl.BlitFramebuffer(
		0, h, w, 0,
		0, 0, w, h,
		gl.COLOR_BUFFER_BIT, gl.NEAREST,
	)

	if err := s.p.SwapBuffers(dc.device); err != nil {
		return surfaceErr("unable to swap buffers", err)
	}
	return nil
}

// AcquireTexture returns the swapchain image. The driver does the actual
// buffering, so the timeout is ignored and the result is never suboptimal.
func (s *Surface) AcquireTexture(_ time.Duration) (*AcquiredSurfaceTexture, error) {
	sc := s.swapchain
	if sc == nil {
		return nil, surfaceErr("acquire texture", ErrNotConfigured)
	}
	return &AcquiredSurfaceTexture{
		Texture: &SurfaceTexture{
			Renderbuffer:    sc.renderbuffer,
			Format:          sc.format,
			FormatDesc:      sc.formatDesc,
			Size:            sc.extent,
			MipLevelCount:   1,
			ArrayLayerCount: 1,
		},
	}, nil
}

// DiscardTexture does nothing; the swapchain keeps the renderbuffer.
func (s *Surface) DiscardTexture(*SurfaceTexture) {}
