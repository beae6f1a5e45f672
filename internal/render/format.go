package render

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects the output encoding.
type Format string

const (
	// Text renders aligned human-readable lines.
	Text Format = "text"
	// YAML renders a YAML document.
	YAML Format = "yaml"
	// JSON renders a JSON object.
	JSON Format = "json"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts "text", "yaml"/"yml" and "json"; empty means Text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return Text, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Options control what a renderer shows.
type Options struct {
	// Format is the output encoding.
	Format Format
	// Detailed adds the LT, GA and LR ranges next to marathon pace.
	Detailed bool
}
