// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// ExtensionSet is a set of extension names.
type ExtensionSet map[string]struct{}

// ParseExtensions splits a space delimited extension string such as the
// result of glGetString(GL_EXTENSIONS) or wglGetExtensionsStringARB.
func ParseExtensions(s string) ExtensionSet {
	set := make(ExtensionSet)
	for _, e := range strings.Fields(s) {
		set[e] = struct{}{}
	}
	return set
}

// Has reports whether ext is in the set.
func (s ExtensionSet) Has(ext string) bool {
	_, ok := s[ext]
	return ok
}

// HasAny reports whether at least one of exts is in the set.
func (s ExtensionSet) HasAny(exts ...string) bool {
	for _, e := range exts {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// Add inserts the extensions in exts.
func (s ExtensionSet) Add(exts ...string) {
	for _, e := range exts {
		if e != "" {
			s[e] = struct{}{}
		}
	}
}

// Sorted returns the extension names in lexical order.
func (s ExtensionSet) Sorted() []string {
	names := maps.Keys(s)
	sort.Strings(names)
	return names
}
