package ctable

import (
	"errors"
	"fmt"

	"github.com/devantler-tech/mimegen/pkg/registry"
)

// ErrLiteralEncoding is matched by every LiteralEncodingError.
var ErrLiteralEncoding = errors.New("value cannot be encoded as a C string literal")

// Field names reported by LiteralEncodingError.
const (
	FieldExtension = "extension"
	FieldMIMEType  = "mime type"
)

// LiteralEncodingError reports a value that has no C string literal form.
// Field and Pair are set when the value came from a registry pair.
type LiteralEncodingError struct {
	Field  string
	Pair   registry.Pair
	Value  string
	Offset int
}

// Error implements the error interface.
func (e *LiteralEncodingError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: NUL byte at offset %d of %q", ErrLiteralEncoding, e.Offset, e.Value)
	}

	return fmt.Sprintf(
		"%s: %s %q of pair (%q, %q) has a NUL byte at offset %d",
		ErrLiteralEncoding,
		e.Field,
		e.Value,
		e.Pair.Extension,
		e.Pair.MIMEType,
		e.Offset,
	)
}

// Unwrap returns ErrLiteralEncoding so callers can match with errors.Is.
func (e *LiteralEncodingError) Unwrap() error {
	return ErrLiteralEncoding
}
