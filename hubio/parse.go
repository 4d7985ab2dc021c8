// Copyright 2025 The HUBsim Authors. All rights reserved.

// Package hubio parses and prints the textual interchange forms of hub
// values and generates the CSV operation tables used to validate
// hardware implementations of the format.
package hubio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	hub "github.com/HUBformat/HUBsim"
)

// ErrInvalidFormat reports malformed textual input. Callers match it
// with errors.Is.
var ErrInvalidFormat = errors.New("invalid format")

// ParseBinary parses a binary word with optional '|' field separators.
// Both spellings are accepted: the packed width-digit word, and the
// width+1-digit rendering of BinaryString, whose fraction carries the
// explicit hub bit (the trailing digit, dropped when packing).
func ParseBinary(s string) (hub.Value, error) {
	digits := strings.ReplaceAll(s, "|", "")
	width := hub.DefaultFormat().Width()
	switch len(digits) {
	case width:
	case width + 1:
		digits = digits[:width]
	default:
		return 0, fmt.Errorf("%w: %q: want %d or %d binary digits, got %d", ErrInvalidFormat, s, width, width+1, len(digits))
	}
	word, err := strconv.ParseUint(digits, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
	}
	return hub.FromPacked(word), nil
}

// ParseHex parses a packed word written in hex, with or without a 0x
// prefix. Words wider than the packed layout are rejected rather than
// silently truncated.
func ParseHex(s string) (hub.Value, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(digits) == 0 {
		return 0, fmt.Errorf("%w: %q: empty word", ErrInvalidFormat, s)
	}
	word, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
	}
	width := hub.DefaultFormat().Width()
	if width < 64 && word >= 1<<uint(width) {
		return 0, fmt.Errorf("%w: %q: word wider than %d bits", ErrInvalidFormat, s, width)
	}
	return hub.FromPacked(word), nil
}

// ParseDecimal parses an ordinary decimal number and quantizes it.
func ParseDecimal(s string) (hub.Value, error) {
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
	}
	return hub.FromFloat64(d), nil
}

// Parse picks the representation from the spelling: a 0x prefix means
// hex, exactly width binary digits (pipes allowed) mean binary, anything
// else is decimal.
func Parse(s string) (hub.Value, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return ParseHex(s)
	}
	digits := strings.ReplaceAll(s, "|", "")
	width := hub.DefaultFormat().Width()
	if (len(digits) == width || len(digits) == width+1) && strings.Trim(digits, "01") == "" {
		return ParseBinary(s)
	}
	return ParseDecimal(s)
}
