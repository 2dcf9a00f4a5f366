package registry

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
)

// Registry is an open registry file.
type Registry struct {
	path string
	file *os.File
}

// Open opens the registry file at path.
// A missing, unreadable or non-regular file fails with ErrIOUnavailable.
func Open(path string) (*Registry, error) {
	path = filepath.Clean(path)

	//nolint:gosec // G304: the registry path is fixed by the caller.
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOUnavailable, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()

		return nil, fmt.Errorf("%w: %w", ErrIOUnavailable, err)
	}

	if info.IsDir() {
		_ = file.Close()

		return nil, fmt.Errorf("%w: %s is a directory", ErrIOUnavailable, path)
	}

	return &Registry{path: path, file: file}, nil
}

// Path returns the cleaned path the registry was opened from.
func (r *Registry) Path() string {
	return r.path
}

// Pairs streams the registry's pairs. The sequence reads the file and can be ranged once.
func (r *Registry) Pairs() iter.Seq2[Pair, error] {
	return Parse(r.file)
}

// Close closes the underlying file.
func (r *Registry) Close() error {
	err := r.file.Close()
	if err != nil {
		return fmt.Errorf("failed to close registry %s: %w", r.path, err)
	}

	return nil
}
