package ctable

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/devantler-tech/mimegen/pkg/fsutil/generator"
	"github.com/devantler-tech/mimegen/pkg/registry"
)

// Default names written into the generated table.
const (
	DefaultStructName = "MIME"
	DefaultTableName  = "MIME_TYPES"
)

const (
	entryIndent = "    "
	sentinel    = entryIndent + "{ NULL, NULL }\n"
	footer      = "};\n"
)

// Options configures the names written into the table header.
// Zero values fall back to DefaultStructName, DefaultTableName and registry.DefaultPath.
type Options struct {
	// StructName is the C struct tag of an entry.
	StructName string
	// TableName is the name of the array.
	TableName string
	// Source is the registry named in the generated-code banner.
	Source string
}

// Generator renders a pair sequence into a static C lookup table.
type Generator struct{}

var _ generator.Generator[iter.Seq2[registry.Pair, error], Options] = (*Generator)(nil)

// NewGenerator creates a new C table generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders pairs in the order received, followed by a { NULL, NULL } sentinel.
// The first error yielded by pairs aborts generation, as does any value QuoteC rejects;
// no partial table is returned.
func (g *Generator) Generate(pairs iter.Seq2[registry.Pair, error], opts Options) (string, error) {
	opts = opts.withDefaults()

	var builder strings.Builder

	writeHeader(&builder, opts)

	for pair, err := range pairs {
		if err != nil {
			return "", fmt.Errorf("failed to read registry pairs: %w", err)
		}

		entry, err := renderEntry(pair)
		if err != nil {
			return "", err
		}

		builder.WriteString(entry)
	}

	builder.WriteString(sentinel)
	builder.WriteString(footer)

	return builder.String(), nil
}

func (o Options) withDefaults() Options {
	if o.StructName == "" {
		o.StructName = DefaultStructName
	}

	if o.TableName == "" {
		o.TableName = DefaultTableName
	}

	if o.Source == "" {
		o.Source = registry.DefaultPath
	}

	return o
}

func writeHeader(builder *strings.Builder, opts Options) {
	builder.WriteString("/* Code generated by mimegen from " + opts.Source + ". DO NOT EDIT. */\n\n")
	builder.WriteString("static struct " + opts.StructName + " {\n")
	builder.WriteString(entryIndent + "const char* ext;\n")
	builder.WriteString(entryIndent + "const char* mime;\n")
	builder.WriteString("} " + opts.TableName + "[] = {\n")
}

// renderEntry formats one array entry, attributing encoding failures to the pair.
func renderEntry(pair registry.Pair) (string, error) {
	extension, err := quoteField(pair, FieldExtension, pair.Extension)
	if err != nil {
		return "", err
	}

	mimeType, err := quoteField(pair, FieldMIMEType, pair.MIMEType)
	if err != nil {
		return "", err
	}

	return entryIndent + "{ " + extension + ", " + mimeType + " },\n", nil
}

func quoteField(pair registry.Pair, field, value string) (string, error) {
	quoted, err := QuoteC(value)
	if err == nil {
		return quoted, nil
	}

	var encodingErr *LiteralEncodingError
	if errors.As(err, &encodingErr) {
		encodingErr.Field = field
		encodingErr.Pair = pair
	}

	return "", err
}
