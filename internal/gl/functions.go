// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"sort"
)

// Functions is an OpenGL function table bound to the entry points of
// one context. The methods are implemented for windows only.
type Functions struct {
	glBindFramebuffer         uintptr
	glBindRenderbuffer        uintptr
	glBlitFramebuffer         uintptr
	glDebugMessageCallback    uintptr
	glDeleteFramebuffers      uintptr
	glDeleteRenderbuffers     uintptr
	glEnable                  uintptr
	glFramebufferRenderbuffer uintptr
	glGenFramebuffers         uintptr
	glGenRenderbuffers        uintptr
	glGetError                uintptr
	glGetIntegerv             uintptr
	glGetString               uintptr
	glGetStringi              uintptr
	glRenderbufferStorage     uintptr

	debug         func(DebugMessage)
	debugCallback uintptr
}

// requiredProcs are the OpenGL 1.1 entry points every context exports.
// Everything else is resolved on a best effort basis and checked by
// the caller against the context version.
var requiredProcs = []string{
	"glEnable",
	"glGetError",
	"glGetIntegerv",
	"glGetString",
}

// Load resolves the function table through load.
func Load(load Loader) (*Functions, error) {
	f := new(Functions)
	procs := f.procs()
	for name, p := range procs {
		*p = load(name)
	}
	var missing []string
	for _, name := range requiredProcs {
		if *procs[name] == 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("gl: failed to resolve %v", missing)
	}
	return f, nil
}

// Loaded reports whether the named entry point was resolved.
func (f *Functions) Loaded(name string) bool {
	p, ok := f.procs()[name]
	return ok && *p != 0
}

func (f *Functions) procs() map[string]*uintptr {
	return map[string]*uintptr{
		"glBindFramebuffer":         &f.glBindFramebuffer,
		"glBindRenderbuffer":        &f.glBindRenderbuffer,
		"glBlitFramebuffer":         &f.glBlitFramebuffer,
		"glDebugMessageCallback":    &f.glDebugMessageCallback,
		"glDeleteFramebuffers":      &f.glDeleteFramebuffers,
		"glDeleteRenderbuffers":     &f.glDeleteRenderbuffers,
		"glEnable":                  &f.glEnable,
		"glFramebufferRenderbuffer": &f.glFramebufferRenderbuffer,
		"glGenFramebuffers":         &f.glGenFramebuffers,
		"glGenRenderbuffers":        &f.glGenRenderbuffers,
		"glGetError":                &f.glGetError,
		"glGetIntegerv":             &f.glGetIntegerv,
		"glGetString":               &f.glGetString,
		"glGetStringi":              &f.glGetStringi,
		"glRenderbufferStorage":     &f.glRenderbufferStorage,
	}
}
