package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/germanamz/proofread/pkg/config"
	"github.com/germanamz/proofread/pkg/input"
	"github.com/germanamz/proofread/pkg/modeladapter"
	"github.com/germanamz/proofread/pkg/providers/openai"
	"github.com/mattn/go-runewidth"
)

// maxBodyWidth caps how many terminal cells of an error body are shown.
const maxBodyWidth = 2000

// describe maps an error to the single diagnostic line printed on stderr.
func describe(err error) string {
	var (
		statusErr    *modeladapter.StatusError
		transportErr *modeladapter.TransportError
		malformedErr *openai.MalformedResponseError
	)

	switch {
	case errors.Is(err, input.ErrNoText):
		return "error: no text to correct"
	case errors.Is(err, config.ErrMissingAPIKey):
		return fmt.Sprintf("error: environment variable %s is not set", config.EnvAPIKey)
	case errors.As(err, &statusErr):
		return fmt.Sprintf("error: HTTP %d: %s", statusErr.StatusCode, truncateBody(statusErr.Body))
	case errors.As(err, &transportErr):
		return fmt.Sprintf("error: request failed: %v", transportErr.Err)
	case errors.As(err, &malformedErr):
		return fmt.Sprintf("error: unexpected API response: %v", malformedErr)
	default:
		return fmt.Sprintf("error: %v", err)
	}
}

// truncateBody trims body and shortens it to maxBodyWidth terminal cells.
func truncateBody(body string) string {
	return runewidth.Truncate(strings.TrimSpace(body), maxBodyWidth, "...")
}
