// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows
// +build !windows

package wgl

func defaultPlatform() (platform, error) {
	return nil, ErrUnsupportedPlatform
}
