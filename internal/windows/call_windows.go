// SPDX-License-Identifier: Unlicense OR MIT

package windows

import (
	"syscall"
)

// Call calls the function at proc, such as an entry point returned by
// wglGetProcAddress. It returns the result and the last error.
func Call(proc uintptr, args ...uintptr) (uintptr, error) {
	r, _, err := syscall.SyscallN(proc, args...)
	return r, err
}
