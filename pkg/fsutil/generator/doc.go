// Package generator provides an interface for generating source code from parsed models.
//
// Key functionality:
//   - Generator[T, Options]: Generic interface for content generation
//   - Generate: Transform model into string representation
//
// Subpackages:
//   - ctable: C lookup table generator for extension to MIME type pairs
package generator
