// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"strings"
)

// Version is a parsed GL_VERSION string.
type Version struct {
	Major, Minor int
	// ES is set for OpenGL ES contexts.
	ES bool
	// Vendor is the driver specific remainder, if any.
	Vendor string
}

// AtLeast reports whether v is major.minor or newer.
func (v Version) AtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

func (v Version) String() string {
	if v.ES {
		return fmt.Sprintf("OpenGL ES %d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion parses GL_VERSION strings such as "4.6.0 NVIDIA 531.79",
// "3.3 (Core Profile) Mesa 23.0" or "OpenGL ES 3.2 build 1.0".
func ParseVersion(s string) (Version, error) {
	var v Version
	rest := strings.TrimSpace(s)
	for _, prefix := range []string{"OpenGL ES-CM ", "OpenGL ES-CL ", "OpenGL ES "} {
		if strings.HasPrefix(rest, prefix) {
			v.ES = true
			rest = strings.TrimPrefix(rest, prefix)
			break
		}
	}
	num := rest
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		num, v.Vendor = rest[:i], strings.TrimSpace(rest[i+1:])
	}
	// Only major.minor matter; a release number may follow.
	parts := strings.SplitN(num, ".", 3)
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("gl: failed to parse version (%q)", s)
	}
	if _, err := fmt.Sscanf(parts[0], "%d", &v.Major); err != nil {
		return Version{}, fmt.Errorf("gl: failed to parse major version (%q): %w", s, err)
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &v.Minor); err != nil {
		return Version{}, fmt.Errorf("gl: failed to parse minor version (%q): %w", s, err)
	}
	return v, nil
}
