// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"context"
	"log/slog"

	"gioui.org/wgl/internal/gl"
)

// supportsDebug reports whether the context provides GL debug output.
func supportsDebug(v gl.Version, exts gl.ExtensionSet) bool {
	if exts.Has("GL_KHR_debug") {
		return true
	}
	if v.ES {
		return v.AtLeast(3, 2)
	}
	return v.AtLeast(4, 3)
}

func debugLevel(severity gl.Enum) slog.Level {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		return slog.LevelError
	case gl.DEBUG_SEVERITY_MEDIUM:
		return slog.LevelWarn
	case gl.DEBUG_SEVERITY_LOW:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func logDebugMessage(m gl.DebugMessage) {
	Logger().Log(context.Background(), debugLevel(m.Severity), "GL: "+m.Message,
		"source", m.Source,
		"type", m.Type,
		"id", m.ID,
	)
}

// contextExtensions returns the extensions of the current context: the
// indexed list on OpenGL 3 and later, GL_EXTENSIONS otherwise.
func contextExtensions(f Functions, v gl.Version) gl.ExtensionSet {
	if v.AtLeast(3, 0) {
		exts := make(gl.ExtensionSet)
		n := f.GetInteger(gl.NUM_EXTENSIONS)
		for i := 0; i < n; i++ {
			exts.Add(f.GetStringi(gl.EXTENSIONS, i))
		}
		if len(exts) > 0 {
			return exts
		}
	}
	return gl.ParseExtensions(f.GetString(gl.EXTENSIONS))
}
