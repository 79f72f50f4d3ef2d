// Package input resolves the text to proofread from a command-line argument
// or standard input.
package input

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoText is returned when neither the argument nor stdin yields text.
var ErrNoText = errors.New("no text to correct")

// Resolve returns text verbatim when it is non-empty; stdin is not read in
// that case. Otherwise it reads stdin to EOF and returns the content with
// leading and trailing whitespace trimmed. A nil stdin is treated as empty.
func Resolve(text string, stdin io.Reader) (string, error) {
	if text != "" {
		return text, nil
	}

	if stdin == nil {
		return "", nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("input: read stdin: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Require is Resolve that reports an empty result as ErrNoText.
func Require(text string, stdin io.Reader) (string, error) {
	s, err := Resolve(text, stdin)
	if err != nil {
		return "", err
	}

	if s == "" {
		return "", ErrNoText
	}

	return s, nil
}
