// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Loader resolves an entry point by name. A zero result means the entry
// point is not available from that source.
type Loader func(name string) uintptr

// Chain returns a Loader that tries each loader in order and returns the
// first non-zero address.
func Chain(loaders ...Loader) Loader {
	return func(name string) uintptr {
		for _, l := range loaders {
			if l == nil {
				continue
			}
			if p := l(name); p != 0 {
				return p
			}
		}
		return 0
	}
}
