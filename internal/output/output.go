// Package output writes a decomposed duration in the format chosen on the
// command line.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sgaunet/millisecond/pkg/duration"
)

// ErrUnknownFormat is returned by [ParseFormat] for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is the shape of the written result.
type Format string

const (
	// FormatText writes plain text lines.
	FormatText Format = "text"
	// FormatYAML writes a YAML document with the fields, the components and the text.
	FormatYAML Format = "yaml"
)

// ParseFormat resolves "text" or "yaml" (case-insensitive).
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatYAML:
		return f, nil
	default:
		return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Options controls how a duration is written.
type Options struct {
	Style  duration.Style
	Merge  bool
	Format Format
	// Components writes one component per line instead of a single joined line.
	// Ignored by FormatYAML, which always lists components.
	Components bool
}

// document is the YAML view of a duration.
type document struct {
	Duration   duration.Duration `yaml:"duration"`
	Components []component       `yaml:"components"`
	Text       string            `yaml:"text"`
}

type component struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
}

// Write renders d to w according to opts.
func Write(w io.Writer, d duration.Duration, opts Options) error {
	switch opts.Format {
	case FormatYAML:
		return writeYAML(w, d, opts)
	case FormatText, "":
		return writeText(w, d, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(opts.Format))
	}
}

func writeText(w io.Writer, d duration.Duration, opts Options) error {
	if !opts.Components {
		if _, err := fmt.Fprintln(w, d.Format(opts.Style, opts.Merge)); err != nil {
			return fmt.Errorf("failed to write duration: %w", err)
		}
		return nil
	}

	for _, c := range d.Components(opts.Merge) {
		if _, err := fmt.Fprintln(w, c.Text(opts.Style)); err != nil {
			return fmt.Errorf("failed to write component: %w", err)
		}
	}
	return nil
}

func writeYAML(w io.Writer, d duration.Duration, opts Options) error {
	parts := d.Components(opts.Merge)
	doc := document{
		Duration:   d,
		Components: make([]component, len(parts)),
		Text:       d.Format(opts.Style, opts.Merge),
	}
	for i, c := range parts {
		doc.Components[i] = component{Kind: c.Kind.String(), Text: c.Text(opts.Style)}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush yaml: %w", err)
	}
	return nil
}
