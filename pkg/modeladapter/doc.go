// Package modeladapter holds the HTTP plumbing shared by completion
// adapters.
//
// It contains the embeddable [ModelAdapter] base struct (auth, custom
// headers, timeout, JSON POST helper) and the transport-level error types
// [StatusError], [TransportError] and [DecodeError]. Provider-specific wire
// formats live in separate packages that import modeladapter.
package modeladapter
