// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Framebuffer  struct{ V uint }
	Renderbuffer struct{ V uint }
)

func (f Framebuffer) Valid() bool {
	return f.V != 0
}

func (r Renderbuffer) Valid() bool {
	return r.V != 0
}

// DebugMessage is a message delivered by the GL_KHR_debug callback.
type DebugMessage struct {
	Source   Enum
	Type     Enum
	ID       uint
	Severity Enum
	Message  string
}
