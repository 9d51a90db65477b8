package dfrepr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedType   = errors.New("unsupported column type")
	ErrInvalidLimits     = errors.New("invalid display limits")
	ErrLengthMismatch    = errors.New("length mismatch")
)

// Format represents an output format for DataFrame rendering.
type Format string

const (
	Text     Format = "text"
	HTML     Format = "html"
	LaTeX    Format = "latex"
	CSV      Format = "csv"
	Markdown Format = "markdown"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

var formats = []Format{Text, HTML, LaTeX, CSV, Markdown, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders df in format f and writes the result to w. Every format is
// derived from the same Grid: identical truncation decisions and cell text,
// differing only in markup.
func Write(w io.Writer, f Format, df *DataFrame, limits Limits) error {
	if err := limits.Validate(); err != nil {
		return err
	}
	if f == Text {
		s, err := df.Render(limits)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s+"\n")
		return err
	}
	g, err := BuildGrid(df, limits)
	if err != nil {
		return err
	}
	switch f {
	case HTML:
		return writeHTML(w, g)
	case LaTeX:
		return writeLaTeX(w, g)
	case CSV:
		return writeCSV(w, g)
	case Markdown:
		return writeMarkdown(w, g)
	case JSON:
		return writeJSON(w, g)
	case YAML:
		return writeYAML(w, g)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders df in format f and returns the bytes.
func Marshal(f Format, df *DataFrame, limits Limits) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, df, limits); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
