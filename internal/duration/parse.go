package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator splits hours, minutes and seconds.
const Separator = ":"

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute

	// maxSegmentBits keeps H*3600 well inside int64.
	maxSegmentBits = 32
)

var (
	// ErrInvalid is wrapped by every parse failure.
	ErrInvalid = errors.New("invalid duration")
	// ErrEmpty is returned for blank input.
	ErrEmpty = fmt.Errorf("%w: empty input", ErrInvalid)
	// ErrSegmentCount is returned when the input is not MM:SS or HH:MM:SS.
	ErrSegmentCount = fmt.Errorf("%w: expected MM:SS or HH:MM:SS", ErrInvalid)
	// ErrNotNumeric is returned when a segment is not a non-negative whole number.
	ErrNotNumeric = fmt.Errorf("%w: segment is not a whole number", ErrInvalid)
)

// Parse converts text into total elapsed seconds.
func Parse(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmpty
	}

	parts := strings.Split(text, Separator)

	var hours, minutes, seconds int64

	var err error

	switch len(parts) {
	case 2: // "mm:ss"
		if minutes, err = parseSegment(parts[0]); err != nil {
			return 0, fmt.Errorf("minutes %q: %w", parts[0], err)
		}

		if seconds, err = parseSegment(parts[1]); err != nil {
			return 0, fmt.Errorf("seconds %q: %w", parts[1], err)
		}
	case 3: // "hh:mm:ss"
		if hours, err = parseSegment(parts[0]); err != nil {
			return 0, fmt.Errorf("hours %q: %w", parts[0], err)
		}

		if minutes, err = parseSegment(parts[1]); err != nil {
			return 0, fmt.Errorf("minutes %q: %w", parts[1], err)
		}

		if seconds, err = parseSegment(parts[2]); err != nil {
			return 0, fmt.Errorf("seconds %q: %w", parts[2], err)
		}
	default:
		return 0, fmt.Errorf("%d segments: %w", len(parts), ErrSegmentCount)
	}

	return hours*secondsPerHour + minutes*secondsPerMinute + seconds, nil
}

// parseSegment accepts one or more ASCII digits and nothing else.
func parseSegment(s string) (int64, error) {
	if s == "" {
		return 0, ErrNotNumeric
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrNotNumeric
		}
	}

	v, err := strconv.ParseUint(s, 10, maxSegmentBits)
	if err != nil {
		return 0, ErrNotNumeric
	}

	return int64(v), nil
}

// Reason returns a short label for a parse failure, suitable for metrics.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmpty):
		return "empty"
	case errors.Is(err, ErrSegmentCount):
		return "segment_count"
	case errors.Is(err, ErrNotNumeric):
		return "not_numeric"
	default:
		return "other"
	}
}

// Format renders total seconds as "H:MM:SS". Negative input is treated as zero.
func Format(total int64) string {
	if total < 0 {
		total = 0
	}

	return fmt.Sprintf("%d:%02d:%02d", total/secondsPerHour, total%secondsPerHour/secondsPerMinute, total%secondsPerMinute)
}
