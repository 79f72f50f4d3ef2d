package modeladapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single call when no client or timeout is configured.
const DefaultTimeout = 60 * time.Second

// Auth holds authentication settings for an LLM provider API.
type Auth struct {
	Key    string // API key value.
	Header string // Header name (default: "Authorization").
	Scheme string // Scheme prefix (default: "Bearer" when Header is "Authorization").
}

// ModelAdapter holds shared state for completion adapters. Embed it in
// concrete provider structs to get HTTP helpers, auth and custom headers.
type ModelAdapter struct {
	Name        string            // Model identifier (e.g. "gpt-4.1-mini").
	Temperature float64           // Sampling temperature.
	Auth        Auth              // Authentication settings.
	BaseURL     string            // API base URL (no trailing slash).
	Client      *http.Client      // HTTP client; falls back to one bounded by Timeout.
	Timeout     time.Duration     // Upper bound per call when Client is nil (default: DefaultTimeout).
	Headers     map[string]string // Extra headers applied to every request.
	Logger      *slog.Logger      // Optional; nil discards.
}

// New creates a ModelAdapter with the given settings.
// A nil client falls back to a client bounded by Timeout at call time.
func New(baseURL string, auth Auth, client *http.Client) ModelAdapter {
	return ModelAdapter{
		Auth:    auth,
		BaseURL: baseURL,
		Client:  client,
	}
}

func (a *ModelAdapter) httpClient() *http.Client {
	if a.Client != nil {
		return a.Client
	}

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{Timeout: timeout}
}

// Log returns the configured logger, or one that discards everything.
func (a *ModelAdapter) Log() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}

	return slog.New(slog.DiscardHandler)
}

// NewRequest builds an *http.Request with the base URL, auth, and custom
// headers already applied.
func (a *ModelAdapter) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	url := a.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	if a.Auth.Key != "" {
		header := a.Auth.Header
		if header == "" {
			header = "Authorization"
		}

		value := a.Auth.Key
		if header == "Authorization" {
			scheme := a.Auth.Scheme
			if scheme == "" {
				scheme = "Bearer"
			}

			value = scheme + " " + value
		} else if a.Auth.Scheme != "" {
			value = a.Auth.Scheme + " " + value
		}

		req.Header.Set(header, value)
	}

	for k, v := range a.Headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// Do sends the request using the configured HTTP client. Failures are
// reported as *TransportError.
func (a *ModelAdapter) Do(req *http.Request) (*http.Response, error) {
	resp, err := a.httpClient().Do(req) //nolint:gosec // URL is built from trusted BaseURL config, not user input.
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return resp, nil
}

// PostJSON marshals payload as JSON, sends a single POST to the given path,
// checks for a 2xx status, and unmarshals the response body into dest.
// If dest is nil the response body is discarded after the status check.
//
// A non-2xx status yields *StatusError, a network failure *TransportError and
// an undecodable body *DecodeError.
func (a *ModelAdapter) PostJSON(ctx context.Context, path string, payload any, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := a.NewRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	log := a.Log().With("method", req.Method, "url", req.URL.String())
	log.Debug("sending request", "bytes", len(body))

	start := time.Now()

	resp, err := a.Do(req)
	if err != nil {
		log.Debug("request failed", "error", err, "elapsed", time.Since(start))
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	log.Debug("received response", "status", resp.StatusCode, "bytes", len(respBody), "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if dest == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, dest); err != nil {
		return &DecodeError{Err: err}
	}

	return nil
}
