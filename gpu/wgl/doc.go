// SPDX-License-Identifier: Unlicense OR MIT

/*
Package wgl implements an OpenGL presentation backend for Windows on
top of WGL.

All OpenGL work happens on a single shared context created by
NewInstance. The context is bound to a hidden window whose device
context lives for the rest of the process. Access is serialized by
AdapterContext.Lock, which makes the context current on the calling
thread and panics if the lock cannot be acquired within a second.

Windows are presented through a Surface. Configuring a surface creates
a swapchain: a renderbuffer owned by the shared context, and a second
context on the window device context sharing objects with the first.
Present blits the renderbuffer to the window, flipping it vertically,
and swaps buffers.

Logging goes through log/slog and is disabled until SetLogger is called.
*/
package wgl
