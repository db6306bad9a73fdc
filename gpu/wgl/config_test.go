// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"gioui.org/wgl/internal/gl"
)

func TestInstanceFlagsFromEnv(t *testing.T) {
	tests := []struct {
		debug, validation string
		in, want          InstanceFlags
	}{
		{"", "", 0, 0},
		{"1", "", 0, InstanceFlagDebug},
		{"true", "TRUE", 0, InstanceFlagDebug | InstanceFlagValidation},
		{"0", "false", InstanceFlagDebug | InstanceFlagValidation, 0},
		{"yes", "", InstanceFlagValidation, InstanceFlagValidation},
	}
	for _, test := range tests {
		t.Setenv("WGPU_DEBUG", test.debug)
		t.Setenv("WGPU_VALIDATION", test.validation)
		assert.Equal(t, test.want, InstanceFlagsFromEnv(test.in), "WGPU_DEBUG=%q WGPU_VALIDATION=%q", test.debug, test.validation)
	}
}

func TestSupportsDebug(t *testing.T) {
	none := gl.ExtensionSet{}
	khr := gl.ParseExtensions("GL_KHR_debug")
	assert.True(t, supportsDebug(gl.Version{Major: 4, Minor: 3}, none))
	assert.False(t, supportsDebug(gl.Version{Major: 4, Minor: 2}, none))
	assert.True(t, supportsDebug(gl.Version{Major: 3, Minor: 3}, khr))
	assert.True(t, supportsDebug(gl.Version{Major: 3, Minor: 2, ES: true}, none))
	assert.False(t, supportsDebug(gl.Version{Major: 3, Minor: 1, ES: true}, none))
}

func TestDebugMessageLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { SetLogger(nil) })

	logDebugMessage(gl.DebugMessage{Severity: gl.DEBUG_SEVERITY_NOTIFICATION, Message: "buffer detailed info"})
	assert.Empty(t, buf.String())

	logDebugMessage(gl.DebugMessage{Severity: gl.DEBUG_SEVERITY_HIGH, ID: 1282, Message: "invalid operation"})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "GL: invalid operation")
	assert.Contains(t, buf.String(), "id=1282")
}

func TestDebugLevel(t *testing.T) {
	assert.Equal(t, slog.LevelError, debugLevel(gl.DEBUG_SEVERITY_HIGH))
	assert.Equal(t, slog.LevelWarn, debugLevel(gl.DEBUG_SEVERITY_MEDIUM))
	assert.Equal(t, slog.LevelInfo, debugLevel(gl.DEBUG_SEVERITY_LOW))
	assert.Equal(t, slog.LevelDebug, debugLevel(gl.DEBUG_SEVERITY_NOTIFICATION))
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestErrorMessages(t *testing.T) {
	err := &InstanceError{Message: "unable to register window class"}
	assert.Equal(t, "wgl: unable to register window class", err.Error())
	serr := &SurfaceError{Message: "present", Err: ErrNotConfigured}
	assert.Equal(t, "wgl: surface: present: wgl: surface is not configured", serr.Error())
	assert.ErrorIs(t, serr, ErrNotConfigured)
}
