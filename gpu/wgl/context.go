// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"time"
)

// contextLockTimeout bounds the wait for the shared context. A lock held
// this long is not being released: a deadlock, not contention.
const contextLockTimeout = time.Second

// wglContext owns a native OpenGL context. Whether it is current is
// per-thread state of the platform and is never recorded here.
type wglContext struct {
	p      platform
	handle hglrc
}

func (c *wglContext) makeCurrent(dc hdc) error {
	return c.p.MakeCurrent(dc, c.handle)
}

// unmakeCurrent releases the context current on the calling thread, if any.
func (c *wglContext) unmakeCurrent() error {
	if c.p.CurrentContext() == 0 {
		return nil
	}
	return c.p.MakeCurrent(0, 0)
}

func (c *wglContext) destroy() {
	if c.handle == 0 {
		return
	}
	if err := c.p.DeleteContext(c.handle); err != nil {
		Logger().Error("failed to delete WGL context", "err", err)
	}
	c.handle = 0
}

// sharedContext is the state guarded by the adapter context lock. Every
// field but sem, timeout and refs is only accessed with sem held.
type sharedContext struct {
	sem     chan struct{}
	timeout time.Duration
	refs    atomic.Int32

	p      platform
	module hmodule
	device hdc
	gl     Functions
	ctx    *wglContext
}

func newSharedContext(p platform, module hmodule, device hdc, f Functions, ctx *wglContext) *sharedContext {
	return &sharedContext{
		sem:     make(chan struct{}, 1),
		timeout: contextLockTimeout,
		p:       p,
		module:  module,
		device:  device,
		gl:      f,
		ctx:     ctx,
	}
}

func (s *sharedContext) acquire() {
	t := time.NewTimer(s.timeout)
	defer t.Stop()
	select {
	case s.sem <- struct{}{}:
	case <-t.C:
		panic("wgl: could not lock adapter context; this is most likely a deadlock")
	}
}

func (s *sharedContext) release() {
	<-s.sem
}

// AdapterContext is a reference counted handle to the shared OpenGL
// context. Access to the context is serialized by Lock. The native
// context is deleted when the last handle is released.
type AdapterContext struct {
	inner    *sharedContext
	released atomic.Bool
}

func newAdapterContext(s *sharedContext) *AdapterContext {
	s.refs.Store(1)
	return &AdapterContext{inner: s}
}

// clone returns a new handle to the same shared context.
func (c *AdapterContext) clone() *AdapterContext {
	if c.released.Load() {
		panic("wgl: use of released adapter context")
	}
	c.inner.refs.Add(1)
	return &AdapterContext{inner: c.inner}
}

// Release drops this handle. Releasing twice is a no-op.
func (c *AdapterContext) Release() {
	if !c.released.CompareAndSwap(false, true) {
		return
	}
	if c.inner.refs.Add(-1) > 0 {
		return
	}
	s := c.inner
	s.acquire()
	defer s.release()
	Logger().Debug("destroying shared WGL context")
	s.ctx.destroy()
}

// Lock waits for exclusive access to the shared context and makes it
// current on the calling thread. It panics if the lock is not acquired
// within a second, or if the context cannot be made current. The
// goroutine stays locked to its OS thread until the returned lock is
// released.
func (c *AdapterContext) Lock() *ContextLock {
	l, err := c.lockErr()
	if err != nil {
		panic(fmt.Errorf("wgl: unable to make the shared context current: %w", err))
	}
	return l
}

// lockErr is like Lock but returns make-current failures.
func (c *AdapterContext) lockErr() (*ContextLock, error) {
	l := c.lockExclusive()
	s := l.inner
	if err := s.ctx.makeCurrent(s.device); err != nil {
		l.Release()
		return nil, err
	}
	return l, nil
}

// lockExclusive takes the lock without making any context current.
func (c *AdapterContext) lockExclusive() *ContextLock {
	if c.released.Load() {
		panic("wgl: use of released adapter context")
	}
	s := c.inner
	s.acquire()
	runtime.LockOSThread()
	return &ContextLock{inner: s}
}

// Do calls fn with the shared context locked and current.
func (c *AdapterContext) Do(fn func(f Functions) error) error {
	l := c.Lock()
	defer l.Release()
	return fn(l.Functions())
}

// RawContext returns the native context handle (HGLRC).
func (c *AdapterContext) RawContext() uintptr {
	s := c.inner
	s.acquire()
	defer s.release()
	return uintptr(s.ctx.handle)
}

// ContextLock is exclusive access to the shared context.
type ContextLock struct {
	inner    *sharedContext
	released bool
}

// Functions returns the function table of the shared context.
func (l *ContextLock) Functions() Functions {
	return l.inner.gl
}

// Release makes no context current on the calling thread, whichever
// context that was, and gives up the lock. It must be called from the
// goroutine that called Lock.
func (l *ContextLock) Release() {
	if l.released {
		return
	}
	l.released = true
	if err := l.inner.ctx.unmakeCurrent(); err != nil {
		Logger().Error("unable to unset the current WGL context", "err", err)
	}
	runtime.UnlockOSThread()
	l.inner.release()
}
