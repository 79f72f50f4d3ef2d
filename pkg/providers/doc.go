// Package providers groups the completion adapters.
//
// Sub-packages:
//   - [github.com/germanamz/proofread/pkg/providers/openai] — OpenAI Chat Completions
//
// Shared HTTP plumbing lives in [github.com/germanamz/proofread/pkg/modeladapter].
package providers
