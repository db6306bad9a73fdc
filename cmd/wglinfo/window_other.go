// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows
// +build !windows

package main

import (
	"errors"

	"gioui.org/wgl/gpu/wgl"
)

type window struct{}

func newWindow(title string, width, height int) (*window, error) {
	return nil, errors.New("windows can only be opened on Windows")
}

func (w *window) handle() wgl.Win32WindowHandle {
	return wgl.Win32WindowHandle{}
}

func (w *window) destroy() {}
