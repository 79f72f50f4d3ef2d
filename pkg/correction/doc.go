// Package correction builds the provider-agnostic request for a single
// proofreading call and holds its result.
//
// A [Request] always carries exactly two messages: the fixed [SystemPrompt]
// followed by the user's text. Adapters translate it to their wire format.
package correction
