// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"gioui.org/wgl/internal/gl"
	"gioui.org/wgl/internal/windows"
)

// fakePlatform simulates the native entry points. The current context is
// tracked globally rather than per thread; the adapter lock serializes
// every access in the tests.
type fakePlatform struct {
	mu sync.Mutex

	calls  map[string]int
	next   uintptr
	module hmodule

	live    map[hglrc]bool
	deleted map[hglrc]int
	current hglrc
	// madeCurrent lists every context successfully made current.
	madeCurrent []hglrc

	dcs          map[hwnd]hdc
	pixelFormats map[hdc]int
	chooseIndex  int
	unsuitable   bool
	classes      []string
	dcsOut       int

	procs       map[string]uintptr
	moduleProcs map[string]uintptr
	resolved    map[string]uintptr
	moduleArg   hmodule

	loadLibraryErr   error
	registerErr      error
	getDCErr         error
	createContextErr error
	makeCurrentErr   error
	shareErr         error
	swapErr          error
	loadFunctionsErr error

	extra *fakeExtra
	gl    *fakeGL
	// nextFunctions is handed out by LoadFunctions before gl.
	nextFunctions []*fakeGL
}

func newFakePlatform() *fakePlatform {
	p := &fakePlatform{
		calls:        make(map[string]int),
		next:         0x100,
		live:         make(map[hglrc]bool),
		deleted:      make(map[hglrc]int),
		dcs:          make(map[hwnd]hdc),
		pixelFormats: make(map[hdc]int),
		chooseIndex:  7,
		procs:        make(map[string]uintptr),
		moduleProcs:  make(map[string]uintptr),
		resolved:     make(map[string]uintptr),
		gl:           newFakeGL("4.6.0 NVIDIA 551.23"),
	}
	p.extra = &fakeExtra{
		p:          p,
		exts:       "WGL_ARB_extensions_string WGL_ARB_create_context WGL_ARB_create_context_profile WGL_EXT_swap_control WGL_EXT_framebuffer_sRGB",
		canAttribs: true,
		canSwap:    true,
	}
	return p
}

func (p *fakePlatform) handle() uintptr {
	p.next++
	return p.next
}

func (p *fakePlatform) record(name string) {
	p.calls[name]++
}

// count returns the number of calls to the named method.
func (p *fakePlatform) count(name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[name]
}

// totalCalls returns the number of native calls so far.
func (p *fakePlatform) totalCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.calls {
		n += c
	}
	return n + p.gl.totalCalls()
}

func (p *fakePlatform) liveContexts() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.live)
}

func (p *fakePlatform) deleteCount(ctx hglrc) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.deleted[ctx]
}

// madeCurrentSince returns the contexts made current after the first n.
func (p *fakePlatform) madeCurrentSince(n int) []hglrc {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]hglrc(nil), p.madeCurrent[n:]...)
}

func (p *fakePlatform) madeCurrentCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.madeCurrent)
}

func (p *fakePlatform) currentContext() hglrc {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *fakePlatform) LoadLibrary(name string) (hmodule, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("LoadLibrary")
	if p.loadLibraryErr != nil {
		return 0, p.loadLibraryErr
	}
	p.module = hmodule(p.handle())
	return p.module, nil
}

func (p *fakePlatform) ModuleHandle() (hmodule, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("ModuleHandle")
	return 0x400000, nil
}

func (p *fakePlatform) ProcAddress(name string) uintptr {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.procs[name]
}

func (p *fakePlatform) ModuleProcAddress(mod hmodule, name string) uintptr {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.moduleArg = mod
	return p.moduleProcs[name]
}

func (p *fakePlatform) RegisterClass(inst hmodule, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("RegisterClass")
	if p.registerErr != nil {
		return p.registerErr
	}
	p.classes = append(p.classes, name)
	return nil
}

func (p *fakePlatform) CreateHiddenWindow(inst hmodule, class string) (hwnd, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("CreateHiddenWindow")
	return hwnd(p.handle()), nil
}

func (p *fakePlatform) GetDC(w hwnd) (hdc, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("GetDC")
	if p.getDCErr != nil {
		return 0, p.getDCErr
	}
	dc, ok := p.dcs[w]
	if !ok {
		dc = hdc(p.handle())
		p.dcs[w] = dc
	}
	p.dcsOut++
	return dc, nil
}

func (p *fakePlatform) ReleaseDC(w hwnd, dc hdc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("ReleaseDC")
	p.dcsOut--
}

func (p *fakePlatform) outstandingDCs() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dcsOut
}

func (p *fakePlatform) ChoosePixelFormat(dc hdc, pfd *windows.PixelFormatDescriptor) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("ChoosePixelFormat")
	return p.chooseIndex, nil
}

func (p *fakePlatform) GetPixelFormat(dc hdc) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("GetPixelFormat")
	if idx := p.pixelFormats[dc]; idx != 0 {
		return idx, nil
	}
	return 0, errors.New("no pixel format")
}

func (p *fakePlatform) SetPixelFormat(dc hdc, index int, pfd *windows.PixelFormatDescriptor) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("SetPixelFormat")
	if cur := p.pixelFormats[dc]; cur != 0 && cur != index {
		return errors.New("pixel format already set")
	}
	p.pixelFormats[dc] = index
	return nil
}

func (p *fakePlatform) DescribePixelFormat(dc hdc, index int, pfd *windows.PixelFormatDescriptor) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("DescribePixelFormat")
	*pfd = windows.PixelFormatDescriptor{
		Version:   1,
		Flags:     windows.PFD_DRAW_TO_WINDOW | windows.PFD_SUPPORT_OPENGL | windows.PFD_DOUBLEBUFFER,
		PixelType: windows.PFD_TYPE_RGBA,
		ColorBits: 32,
	}
	if p.unsuitable {
		pfd.Flags &^= windows.PFD_SUPPORT_OPENGL
	}
	return nil
}

func (p *fakePlatform) newContext() hglrc {
	h := hglrc(p.handle())
	p.live[h] = true
	return h
}

func (p *fakePlatform) CreateContext(dc hdc) (hglrc, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("CreateContext")
	if p.createContextErr != nil {
		return 0, p.createContextErr
	}
	return p.newContext(), nil
}

func (p *fakePlatform) DeleteContext(ctx hglrc) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("DeleteContext")
	p.deleted[ctx]++
	if !p.live[ctx] {
		return fmt.Errorf("invalid context %#x", ctx)
	}
	delete(p.live, ctx)
	if p.current == ctx {
		p.current = 0
	}
	return nil
}

func (p *fakePlatform) MakeCurrent(dc hdc, ctx hglrc) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("MakeCurrent")
	if ctx == 0 {
		p.current = 0
		return nil
	}
	if p.makeCurrentErr != nil {
		return p.makeCurrentErr
	}
	if !p.live[ctx] {
		return fmt.Errorf("invalid context %#x", ctx)
	}
	p.current = ctx
	p.madeCurrent = append(p.madeCurrent, ctx)
	return nil
}

func (p *fakePlatform) CurrentContext() hglrc {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *fakePlatform) ShareLists(src, dst hglrc) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("ShareLists")
	return p.shareErr
}

func (p *fakePlatform) SwapBuffers(dc hdc) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("SwapBuffers")
	return p.swapErr
}

func (p *fakePlatform) LoadExtra(load gl.Loader) wglExtra {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("LoadExtra")
	return p.extra
}

func (p *fakePlatform) LoadFunctions(load gl.Loader) (Functions, error) {
	for _, name := range []string{"glGetString", "glBlitFramebuffer"} {
		addr := load(name)
		p.mu.Lock()
		p.resolved[name] = addr
		p.mu.Unlock()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("LoadFunctions")
	if p.loadFunctionsErr != nil {
		return nil, p.loadFunctionsErr
	}
	if len(p.nextFunctions) > 0 {
		f := p.nextFunctions[0]
		p.nextFunctions = p.nextFunctions[1:]
		return f, nil
	}
	return p.gl, nil
}

type fakeExtra struct {
	p *fakePlatform

	exts       string
	canAttribs bool
	attribsErr error
	attribs    [][]int32
	canSwap    bool
	swapErr    error
	intervals  []int
}

func (e *fakeExtra) Extensions(dc hdc) string {
	return e.exts
}

func (e *fakeExtra) CanCreateContextAttribs() bool {
	return e.canAttribs
}

func (e *fakeExtra) CreateContextAttribs(dc hdc, share hglrc, attribs []int32) (hglrc, error) {
	p := e.p
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("CreateContextAttribs")
	e.attribs = append(e.attribs, append([]int32(nil), attribs...))
	if e.attribsErr != nil {
		return 0, e.attribsErr
	}
	return p.newContext(), nil
}

func (e *fakeExtra) CanSwapInterval() bool {
	return e.canSwap
}

func (e *fakeExtra) SwapInterval(interval int) error {
	p := e.p
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("SwapInterval")
	if e.swapErr != nil {
		return e.swapErr
	}
	e.intervals = append(e.intervals, interval)
	return nil
}

type blit struct {
	src, dst     [4]int
	mask, filter gl.Enum
}

// fakeGL is an OpenGL function table over in-memory objects.
type fakeGL struct {
	mu sync.Mutex

	calls      map[string]int
	version    string
	vendor     string
	renderer   string
	exts       []string
	maxTexture int

	next          uint
	renderbuffers map[uint]bool
	framebuffers  map[uint]bool
	deletedRB     map[uint]int
	deletedFB     map[uint]int
	storage       map[uint][3]int
	bindings      map[gl.Enum]uint
	attachments   map[uint]uint
	boundRB       uint

	storageErr   gl.Enum
	failCreateRB bool
	failCreateFB bool

	enabled map[gl.Enum]bool
	debugCB func(gl.DebugMessage)
	blits   []blit
}

func newFakeGL(version string) *fakeGL {
	return &fakeGL{
		calls:         make(map[string]int),
		version:       version,
		vendor:        "NVIDIA Corporation",
		renderer:      "NVIDIA GeForce RTX 4070/PCIe/SSE2",
		exts:          []string{"GL_ARB_framebuffer_sRGB", "GL_KHR_debug", "GL_ARB_texture_storage"},
		maxTexture:    16384,
		renderbuffers: make(map[uint]bool),
		framebuffers:  make(map[uint]bool),
		deletedRB:     make(map[uint]int),
		deletedFB:     make(map[uint]int),
		storage:       make(map[uint][3]int),
		bindings:      make(map[gl.Enum]uint),
		attachments:   make(map[uint]uint),
		enabled:       make(map[gl.Enum]bool),
	}
}

func (f *fakeGL) record(name string) {
	f.calls[name]++
}

func (f *fakeGL) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeGL) isEnabled(cap gl.Enum) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enabled[cap]
}

func (f *fakeGL) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("BindFramebuffer")
	f.bindings[target] = fb.V
}

func (f *fakeGL) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("BindRenderbuffer")
	f.boundRB = rb.V
}

func (f *fakeGL) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask gl.Enum, filter gl.Enum) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("BlitFramebuffer")
	f.blits = append(f.blits, blit{
		src:    [4]int{sx0, sy0, sx1, sy1},
		dst:    [4]int{dx0, dy0, dx1, dy1},
		mask:   mask,
		filter: filter,
	})
}

func (f *fakeGL) CreateFramebuffer() gl.Framebuffer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateFramebuffer")
	if f.failCreateFB {
		return gl.Framebuffer{}
	}
	f.next++
	f.framebuffers[f.next] = true
	return gl.Framebuffer{V: f.next}
}

func (f *fakeGL) CreateRenderbuffer() gl.Renderbuffer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateRenderbuffer")
	if f.failCreateRB {
		return gl.Renderbuffer{}
	}
	f.next++
	f.renderbuffers[f.next] = true
	return gl.Renderbuffer{V: f.next}
}

func (f *fakeGL) DebugMessageCallback(cb func(gl.DebugMessage)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DebugMessageCallback")
	f.debugCB = cb
}

func (f *fakeGL) DeleteFramebuffer(fb gl.Framebuffer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteFramebuffer")
	f.deletedFB[fb.V]++
	delete(f.framebuffers, fb.V)
}

func (f *fakeGL) DeleteRenderbuffer(rb gl.Renderbuffer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteRenderbuffer")
	f.deletedRB[rb.V]++
	delete(f.renderbuffers, rb.V)
}

func (f *fakeGL) Enable(cap gl.Enum) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Enable")
	f.enabled[cap] = true
}

func (f *fakeGL) FramebufferRenderbuffer(target, attachment, renderbuffertarget gl.Enum, rb gl.Renderbuffer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("FramebufferRenderbuffer")
	f.attachments[f.bindings[target]] = rb.V
}

func (f *fakeGL) GetError() gl.Enum {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetError")
	err := f.storageErr
	f.storageErr = 0
	return err
}

func (f *fakeGL) GetInteger(pname gl.Enum) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetInteger")
	switch pname {
	case gl.NUM_EXTENSIONS:
		return len(f.exts)
	case gl.MAX_TEXTURE_SIZE:
		return f.maxTexture
	}
	return 0
}

func (f *fakeGL) GetString(name gl.Enum) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetString")
	switch name {
	case gl.VERSION:
		return f.version
	case gl.VENDOR:
		return f.vendor
	case gl.RENDERER:
		return f.renderer
	case gl.EXTENSIONS:
		return strings.Join(f.exts, " ")
	}
	return ""
}

func (f *fakeGL) GetStringi(name gl.Enum, index int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetStringi")
	if name != gl.EXTENSIONS || index >= len(f.exts) {
		return ""
	}
	return f.exts[index]
}

func (f *fakeGL) RenderbufferStorage(target, internalformat gl.Enum, width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("RenderbufferStorage")
	f.storage[f.boundRB] = [3]int{int(internalformat), width, height}
}
