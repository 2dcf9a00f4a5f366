// Package fsutil groups packages that produce source files.
//
// Subpackages:
//   - generator: Generator interface and the C table generator
package fsutil
