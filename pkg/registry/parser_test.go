package registry_test

import (
	"errors"
	"io"
	"iter"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/devantler-tech/mimegen/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errReadFailed = errors.New("disk on fire")

func collectPairs(t *testing.T, pairs iter.Seq2[registry.Pair, error]) []registry.Pair {
	t.Helper()

	var result []registry.Pair

	for pair, err := range pairs {
		require.NoError(t, err)

		result = append(result, pair)
	}

	return result
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []registry.Pair
	}{
		{
			name:  "mime type with two extensions and trailing semicolon",
			input: "text/html html htm;",
			expected: []registry.Pair{
				{Extension: "html", MIMEType: "text/html"},
				{Extension: "htm", MIMEType: "text/html"},
			},
		},
		{
			name:     "single extension",
			input:    "application/json json",
			expected: []registry.Pair{{Extension: "json", MIMEType: "application/json"}},
		},
		{
			name:     "mime type without extensions",
			input:    "application/octet-stream",
			expected: nil,
		},
		{
			name:     "mime type with semicolon only",
			input:    "application/octet-stream;",
			expected: nil,
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "blank lines",
			input:    "\n   \n\t\n",
			expected: nil,
		},
		{
			name:     "comment line",
			input:    "# text/html html htm",
			expected: nil,
		},
		{
			name:  "semicolon after mime type field",
			input: "text/css; css",
			expected: []registry.Pair{
				{Extension: "css", MIMEType: "text/css"},
			},
		},
		{
			name:  "surrounding whitespace and tabs",
			input: "    image/jpeg\t\tjpeg   jpg ;   ",
			expected: []registry.Pair{
				{Extension: "jpeg", MIMEType: "image/jpeg"},
				{Extension: "jpg", MIMEType: "image/jpeg"},
			},
		},
		{
			name:  "crlf line endings",
			input: "image/gif gif;\r\nimage/png png;\r\n",
			expected: []registry.Pair{
				{Extension: "gif", MIMEType: "image/gif"},
				{Extension: "png", MIMEType: "image/png"},
			},
		},
		{
			name:  "order is preserved across lines",
			input: "X a b\nY c\n",
			expected: []registry.Pair{
				{Extension: "a", MIMEType: "X"},
				{Extension: "b", MIMEType: "X"},
				{Extension: "c", MIMEType: "Y"},
			},
		},
		{
			name:  "tokens are taken verbatim",
			input: "not-a-mime-type .dotted UPPER",
			expected: []registry.Pair{
				{Extension: ".dotted", MIMEType: "not-a-mime-type"},
				{Extension: "UPPER", MIMEType: "not-a-mime-type"},
			},
		},
		{
			name:  "duplicate extensions are kept in encounter order",
			input: "text/xml xml\napplication/xml xml\n",
			expected: []registry.Pair{
				{Extension: "xml", MIMEType: "text/xml"},
				{Extension: "xml", MIMEType: "application/xml"},
			},
		},
		{
			name:  "nginx block wrapper",
			input: "types {\n    text/plain txt;\n}\n",
			expected: []registry.Pair{
				{Extension: "{", MIMEType: "types"},
				{Extension: "txt", MIMEType: "text/plain"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			pairs := collectPairs(t, registry.Parse(strings.NewReader(test.input)))

			assert.Equal(t, test.expected, pairs)
		})
	}
}

func TestParseYieldsOnePairPerExtensionToken(t *testing.T) {
	t.Parallel()

	extensions := []string{"a", "b", "c", "d", "e", "f", "g"}

	for count := range len(extensions) + 1 {
		line := "application/x-test " + strings.Join(extensions[:count], " ")

		pairs := collectPairs(t, registry.Parse(strings.NewReader(line)))

		require.Len(t, pairs, count)

		for index, pair := range pairs {
			assert.Equal(t, "application/x-test", pair.MIMEType)
			assert.Equal(t, extensions[index], pair.Extension)
		}
	}
}

func TestParseLongLine(t *testing.T) {
	t.Parallel()

	extensions := make([]string, 20000)
	for index := range extensions {
		extensions[index] = "ext"
	}

	line := "application/x-long " + strings.Join(extensions, " ")
	require.Greater(t, len(line), 64*1024)

	pairs := collectPairs(t, registry.Parse(strings.NewReader(line)))

	assert.Len(t, pairs, len(extensions))
}

func TestParseStopsWhenConsumerBreaks(t *testing.T) {
	t.Parallel()

	seen := 0

	for range registry.Parse(strings.NewReader("text/html html htm shtml\ntext/css css\n")) {
		seen++
		if seen == 2 {
			break
		}
	}

	assert.Equal(t, 2, seen)
}

func TestParseReadFailure(t *testing.T) {
	t.Parallel()

	reader := io.MultiReader(
		strings.NewReader("text/html html htm;\n"),
		iotest.ErrReader(errReadFailed),
	)

	var (
		pairs []registry.Pair
		errs  []error
	)

	for pair, err := range registry.Parse(reader) {
		if err != nil {
			errs = append(errs, err)

			continue
		}

		pairs = append(pairs, pair)
	}

	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], registry.ErrIOUnavailable)
	require.ErrorIs(t, errs[0], errReadFailed)
	assert.Len(t, pairs, 2)
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		line               string
		expectedMIMEType   string
		expectedExtensions []string
		expectedOK         bool
	}{
		{"extensions", "video/mp4 mp4 m4v;", "video/mp4", []string{"mp4", "m4v"}, true},
		{"only mime type", "video/mp4", "", nil, false},
		{"empty", "", "", nil, false},
		{"only semicolons", ";;;", "", nil, false},
		{"comment", "#video/mp4 mp4", "", nil, false},
		{"hash inside token", "video/x#y mp4", "video/x#y", []string{"mp4"}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mimeType, extensions, ok := registry.ParseLine(test.line)

			assert.Equal(t, test.expectedOK, ok)
			assert.Equal(t, test.expectedMIMEType, mimeType)
			assert.Equal(t, test.expectedExtensions, extensions)
		})
	}
}
