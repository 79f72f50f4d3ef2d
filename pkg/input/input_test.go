package input_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/germanamz/proofread/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingReader records whether it was read.
type countingReader struct {
	r     *strings.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestResolve_ArgumentVerbatim(t *testing.T) {
	stdin := &countingReader{r: strings.NewReader("from stdin")}

	got, err := input.Resolve("  keep  spacing \n", stdin)
	require.NoError(t, err)

	assert.Equal(t, "  keep  spacing \n", got)
	assert.Zero(t, stdin.reads, "stdin must not be consumed when an argument is given")
}

func TestResolve_StdinTrimmed(t *testing.T) {
	got, err := input.Resolve("", strings.NewReader("\n\t Привет как дела \n\n"))
	require.NoError(t, err)
	assert.Equal(t, "Привет как дела", got)
}

func TestResolve_StdinMultiline(t *testing.T) {
	got, err := input.Resolve("", strings.NewReader("first line\nsecond line\n"))
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", got)
}

func TestResolve_Empty(t *testing.T) {
	tests := []struct {
		name  string
		stdin *strings.Reader
	}{
		{"empty", strings.NewReader("")},
		{"whitespace", strings.NewReader(" \n\t ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := input.Resolve("", tt.stdin)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestResolve_NilStdin(t *testing.T) {
	got, err := input.Resolve("", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolve_ReadError(t *testing.T) {
	_, err := input.Resolve("", failingReader{})
	assert.ErrorContains(t, err, "input: read stdin: broken pipe")
}

func TestRequire(t *testing.T) {
	got, err := input.Require("", strings.NewReader("text"))
	require.NoError(t, err)
	assert.Equal(t, "text", got)

	_, err = input.Require("", strings.NewReader("   "))
	assert.ErrorIs(t, err, input.ErrNoText)
}
