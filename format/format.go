package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names an output encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an output format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (must be 'json' or 'yaml')", name)
	}
}

// Write encodes v to w in the given format. Names accepted by ParseFormat
// are normalized; anything else is written as JSON.
func Write(w io.Writer, f Format, v any) error {
	if parsed, err := ParseFormat(string(f)); err == nil {
		f = parsed
	}
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
}

// String is Write into a string
func String(f Format, v any) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
