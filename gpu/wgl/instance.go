// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"fmt"
	"runtime"

	"gioui.org/wgl/internal/gl"
	"gioui.org/wgl/internal/windows"
)

const openGLLibrary = "opengl32.dll"

// Instance owns the shared OpenGL context of the backend.
type Instance struct {
	name        string
	p           platform
	ctx         *AdapterContext
	srgbCapable bool
	debugOutput bool
	profile     string
}

// Win32WindowHandle identifies a native window.
type Win32WindowHandle struct {
	HWND uintptr
}

// NewInstance creates the shared OpenGL context. It returns
// ErrUnsupportedPlatform on platforms without WGL.
func NewInstance(desc InstanceDescriptor) (*Instance, error) {
	p, err := defaultPlatform()
	if err != nil {
		return nil, err
	}
	return newInstance(p, &globalDevice, desc)
}

func newInstance(p platform, device *deviceOnce, desc InstanceDescriptor) (inst *Instance, err error) {
	// The contexts created below are current on this thread only.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	module, err := p.LoadLibrary(openGLLibrary)
	if err != nil {
		return nil, &InstanceError{Message: "unable to load the OpenGL library", Err: err}
	}
	dc, err := device.get(p)
	if err != nil {
		return nil, err
	}

	h, err := p.CreateContext(dc)
	if err != nil {
		return nil, &ContextError{Message: "unable to create initial OpenGL context", Err: err}
	}
	context := &wglContext{p: p, handle: h}
	defer func() {
		if err != nil {
			context.unmakeCurrent()
			context.destroy()
		}
	}()
	if err := context.makeCurrent(dc); err != nil {
		return nil, &InstanceError{Message: "unable to set initial OpenGL context as current", Err: err}
	}

	extra := p.LoadExtra(p.ProcAddress)
	exts := gl.ParseExtensions(extra.Extensions(dc))

	profile := "legacy"
	if exts.Has("WGL_ARB_create_context_profile") && extra.CanCreateContextAttribs() {
		var flags int32
		if desc.Flags&InstanceFlagDebug != 0 {
			flags = windows.WGL_CONTEXT_DEBUG_BIT_ARB
		}
		attribs := []int32{
			windows.WGL_CONTEXT_PROFILE_MASK_ARB, windows.WGL_CONTEXT_CORE_PROFILE_BIT_ARB,
			windows.WGL_CONTEXT_FLAGS_ARB, flags,
			0,
		}
		h, err := extra.CreateContextAttribs(dc, 0, attribs)
		if err != nil {
			return nil, &ContextError{Message: "unable to create OpenGL context", Err: err}
		}
		legacy := context
		context = &wglContext{p: p, handle: h}
		legacy.unmakeCurrent()
		legacy.destroy()
		profile = "core"
	} else {
		Logger().Debug("WGL_ARB_create_context_profile unavailable, using legacy context")
	}

	if err := context.makeCurrent(dc); err != nil {
		return nil, &InstanceError{Message: "unable to set OpenGL context as current", Err: err}
	}

	f, err := p.LoadFunctions(functionLoader(p, module))
	if err != nil {
		return nil, &InstanceError{Message: "unable to load OpenGL functions", Err: err}
	}
	// An unknown version only disables the features that depend on it;
	// EnumerateAdapters declines to expose such a context.
	verStr := f.GetString(gl.VERSION)
	version, verErr := gl.ParseVersion(verStr)
	if verErr != nil {
		Logger().Warn("unable to parse OpenGL version", "version", verStr, "err", verErr)
	}
	glExts := contextExtensions(f, version)

	// The extension string of the final context may differ.
	extra = p.LoadExtra(p.ProcAddress)
	exts = gl.ParseExtensions(extra.Extensions(dc))

	srgb := exts.Has("WGL_EXT_framebuffer_sRGB") ||
		exts.Has("WGL_ARB_framebuffer_sRGB") ||
		glExts.Has("GL_ARB_framebuffer_sRGB")
	if srgb {
		f.Enable(gl.FRAMEBUFFER_SRGB)
	}

	debugOutput := false
	if desc.Flags&InstanceFlagValidation != 0 && verErr == nil && supportsDebug(version, glExts) {
		Logger().Info("enabling GL debug output")
		f.Enable(gl.DEBUG_OUTPUT)
		f.DebugMessageCallback(logDebugMessage)
		debugOutput = true
	}

	if err := context.unmakeCurrent(); err != nil {
		return nil, &InstanceError{Message: "unable to unset the current WGL context", Err: err}
	}

	Logger().Info("created WGL instance",
		"name", desc.Name,
		"profile", profile,
		"version", verStr,
		"srgb", srgb,
	)
	return &Instance{
		name:        desc.Name,
		p:           p,
		ctx:         newAdapterContext(newSharedContext(p, module, dc, f, context)),
		srgbCapable: srgb,
		debugOutput: debugOutput,
		profile:     profile,
	}, nil
}

// Context returns the shared context handle of the instance. The handle
// is owned by the instance.
func (i *Instance) Context() *AdapterContext {
	return i.ctx
}

// SupportsSRGB reports whether the shared context writes sRGB framebuffers.
func (i *Instance) SupportsSRGB() bool {
	return i.srgbCapable
}

// Profile returns "core" for contexts created through
// WGL_ARB_create_context_profile, "legacy" otherwise.
func (i *Instance) Profile() string {
	return i.profile
}

// DebugOutput reports whether GL debug output is enabled.
func (i *Instance) DebugOutput() bool {
	return i.debugOutput
}

// WGLExtensions returns the WGL extensions of the global device context.
func (i *Instance) WGLExtensions() gl.ExtensionSet {
	l := i.ctx.Lock()
	defer l.Release()
	extra := i.p.LoadExtra(i.p.ProcAddress)
	return gl.ParseExtensions(extra.Extensions(l.inner.device))
}

// CreateSurface returns a surface presenting to the window identified
// by handle, which must be a Win32WindowHandle.
func (i *Instance) CreateSurface(handle any) (*Surface, error) {
	w, ok := handle.(Win32WindowHandle)
	if !ok {
		return nil, &InstanceError{Message: fmt.Sprintf("unsupported window: %T", handle)}
	}
	if w.HWND == 0 {
		return nil, &InstanceError{Message: "invalid window handle"}
	}
	return &Surface{
		p:           i.p,
		window:      hwnd(w.HWND),
		presentable: true,
		srgbCapable: i.srgbCapable,
		ctx:         i.ctx.clone(),
	}, nil
}

// DestroySurface unconfigures s and releases its reference to the
// shared context.
func (i *Instance) DestroySurface(s *Surface) {
	s.unconfigure(s.ctx)
	s.ctx.Release()
}

// Release releases the instance's reference to the shared context.
func (i *Instance) Release() {
	i.ctx.Release()
}
