// Package chats holds the provider-agnostic vocabulary of chat completion
// requests.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/proofread/pkg/chats/role] — message roles (system, user, assistant)
//
// No provider or API code is included; adapters build on it.
package chats
