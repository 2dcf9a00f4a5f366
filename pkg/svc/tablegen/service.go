package tablegen

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/devantler-tech/mimegen/pkg/fsutil/generator/ctable"
	"github.com/devantler-tech/mimegen/pkg/registry"
	"github.com/devantler-tech/mimegen/pkg/utils/notify"
)

// Summary describes a generated table.
type Summary struct {
	// Entries is the number of table entries, excluding the sentinel.
	Entries int
	// MIMETypes is the number of distinct MIME types.
	MIMETypes int
	// Duplicates is the number of entries whose extension was already in the table.
	Duplicates int
}

// Option configures a Service.
type Option func(*Service)

// WithInput overrides the registry path.
func WithInput(path string) Option {
	return func(s *Service) {
		s.input = path
	}
}

// WithWarnings sets where duplicate-extension warnings are written.
func WithWarnings(writer io.Writer) Option {
	return func(s *Service) {
		s.warnings = writer
	}
}

// Service generates the C table from a registry file.
type Service struct {
	input     string
	warnings  io.Writer
	generator *ctable.Generator
}

// New creates a Service reading registry.DefaultPath and discarding warnings.
func New(opts ...Option) *Service {
	service := &Service{
		input:     registry.DefaultPath,
		warnings:  io.Discard,
		generator: ctable.NewGenerator(),
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

// Generate reads the registry and writes the complete table to out.
// Nothing is written to out unless the whole table was generated.
func (s *Service) Generate(out io.Writer) (Summary, error) {
	reg, err := registry.Open(s.input)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to open registry: %w", err)
	}

	defer func() { _ = reg.Close() }()

	tracker := newTracker(s.warnings)

	table, err := s.generator.Generate(tracker.observe(reg.Pairs()), ctable.Options{Source: s.input})
	if err != nil {
		return Summary{}, fmt.Errorf("failed to generate table from %s: %w", reg.Path(), err)
	}

	_, err = io.WriteString(out, table)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to write table: %w", err)
	}

	return tracker.summary(), nil
}

// tracker counts pairs as they stream past and warns about repeated extensions.
type tracker struct {
	warnings   io.Writer
	first      map[string]registry.Pair
	mimeTypes  map[string]struct{}
	entries    int
	duplicates int
}

func newTracker(warnings io.Writer) *tracker {
	return &tracker{
		warnings:  warnings,
		first:     make(map[string]registry.Pair),
		mimeTypes: make(map[string]struct{}),
	}
}

func (t *tracker) observe(pairs iter.Seq2[registry.Pair, error]) iter.Seq2[registry.Pair, error] {
	return func(yield func(registry.Pair, error) bool) {
		for pair, err := range pairs {
			if err == nil {
				t.record(pair)
			}

			if !yield(pair, err) {
				return
			}
		}
	}
}

func (t *tracker) record(pair registry.Pair) {
	t.entries++
	t.mimeTypes[pair.MIMEType] = struct{}{}

	key := strings.ToLower(pair.Extension)

	first, seen := t.first[key]
	if !seen {
		t.first[key] = pair

		return
	}

	t.duplicates++

	notify.Warningf(
		t.warnings,
		"extension %q is mapped to %q again; lookups resolve to %q from the earlier entry",
		pair.Extension,
		pair.MIMEType,
		first.MIMEType,
	)
}

func (t *tracker) summary() Summary {
	return Summary{
		Entries:    t.entries,
		MIMETypes:  len(t.mimeTypes),
		Duplicates: t.duplicates,
	}
}
