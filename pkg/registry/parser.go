package registry

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// DefaultPath is the registry file read by the generator, relative to the working directory.
const DefaultPath = "mime.types"

const (
	initialLineBuffer = 64 * 1024
	maxLineLength     = 1024 * 1024
)

// Pair associates a file extension with its MIME type.
type Pair struct {
	Extension string
	MIMEType  string
}

// Parse returns a one-pass sequence of the pairs read from reader, in source order.
//
// Lines without extensions and comment lines yield nothing. A read failure is yielded
// once, wrapped in ErrIOUnavailable, and ends the sequence.
func Parse(reader io.Reader) iter.Seq2[Pair, error] {
	return func(yield func(Pair, error) bool) {
		scanner := bufio.NewScanner(reader)
		scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineLength)

		for scanner.Scan() {
			mimeType, extensions, ok := ParseLine(scanner.Text())
			if !ok {
				continue
			}

			for _, extension := range extensions {
				if !yield(Pair{Extension: extension, MIMEType: mimeType}, nil) {
					return
				}
			}
		}

		err := scanner.Err()
		if err != nil {
			yield(Pair{}, fmt.Errorf("%w: %w", ErrIOUnavailable, err))
		}
	}
}

// ParseLine splits a registry line into its MIME type and extension tokens.
// Semicolons are dropped before splitting on whitespace.
//
// The boolean is false when the line contributes no pairs: blank lines, lines holding
// only a MIME type, and lines whose first token starts with '#'.
func ParseLine(line string) (string, []string, bool) {
	fields := strings.Fields(strings.ReplaceAll(line, ";", ""))
	if len(fields) < 2 || strings.HasPrefix(fields[0], "#") {
		return "", nil, false
	}

	return fields[0], fields[1:], true
}
