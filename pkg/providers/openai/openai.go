// Package openai provides a correction client for the OpenAI Chat Completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/germanamz/proofread/pkg/correction"
	"github.com/germanamz/proofread/pkg/modeladapter"
)

// DefaultBaseURL is the public OpenAI API endpoint.
const DefaultBaseURL = "https://api.openai.com"

const completionsPath = "/v1/chat/completions"

// MalformedResponseError is returned when a 2xx response does not have the
// choices[0].message.content shape.
type MalformedResponseError struct {
	Missing string // What was absent or unreadable, e.g. "choices".
	Err     error  // Underlying decode error, if any.
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Missing, e.Err)
	}
	return fmt.Sprintf("missing %s", e.Missing)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// Adapter sends correction requests to the OpenAI Chat Completions API.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter. The baseURL should be "https://api.openai.com"
// (no trailing slash).
func New(baseURL, apiKey, model string) *Adapter {
	a := &Adapter{}
	a.BaseURL = strings.TrimRight(baseURL, "/")
	a.Auth = modeladapter.Auth{Key: apiKey}
	a.Name = model

	return a
}

// Correct sends text with the fixed proofreading instruction and returns the
// first choice's content, trimmed. It makes exactly one attempt.
//
// Errors are *modeladapter.StatusError, *modeladapter.TransportError or
// *MalformedResponseError, each wrapped with an "openai:" prefix.
func (a *Adapter) Correct(ctx context.Context, text string) (correction.Result, error) {
	req := buildRequest(correction.NewRequest(text, a.Name, a.Temperature))

	var resp apiResponse
	if err := a.PostJSON(ctx, completionsPath, req, &resp); err != nil {
		var decodeErr *modeladapter.DecodeError
		if errors.As(err, &decodeErr) {
			err = &MalformedResponseError{Missing: "response body", Err: decodeErr.Err}
		}
		return correction.Result{}, fmt.Errorf("openai: %w", err)
	}

	content, err := resp.content()
	if err != nil {
		return correction.Result{}, fmt.Errorf("openai: %w", err)
	}

	result := correction.Result{Text: strings.TrimSpace(content)}
	if resp.Usage != nil {
		result.Usage = correction.Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		}
	}

	a.Log().Debug("completion received",
		"model", a.Name,
		"input_tokens", result.Usage.InputTokens,
		"output_tokens", result.Usage.OutputTokens,
	)

	return result, nil
}

// --- request types ---

type apiRequest struct {
	Model       string       `json:"model"`
	Temperature float64      `json:"temperature"`
	Messages    []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- response types ---

// Pointers distinguish absent keys from zero values.
type apiResponse struct {
	Choices *[]apiChoice `json:"choices"`
	Usage   *apiUsage    `json:"usage"`
}

type apiChoice struct {
	Message *apiRespMessage `json:"message"`
}

type apiRespMessage struct {
	Content *string `json:"content"`
}

type apiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// --- conversion helpers ---

func buildRequest(r correction.Request) apiRequest {
	req := apiRequest{
		Model:       r.Model,
		Temperature: r.Temperature,
		Messages:    make([]apiMessage, len(r.Messages)),
	}

	for i, m := range r.Messages {
		req.Messages[i] = apiMessage{Role: m.Role.String(), Content: m.Content}
	}

	return req
}

func (r apiResponse) content() (string, error) {
	if r.Choices == nil {
		return "", &MalformedResponseError{Missing: "choices"}
	}

	if len(*r.Choices) == 0 {
		return "", &MalformedResponseError{Missing: "choices[0]"}
	}

	msg := (*r.Choices)[0].Message
	if msg == nil {
		return "", &MalformedResponseError{Missing: "choices[0].message"}
	}

	if msg.Content == nil {
		return "", &MalformedResponseError{Missing: "choices[0].message.content"}
	}

	return *msg.Content, nil
}
