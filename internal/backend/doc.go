// Package backend maps backend names to pricing implementations.
//
// The registry is an explicit table constructed once at process start
// and passed to whoever needs it; there is no global mutable state. An
// unknown name resolves to ErrUnknownBackend, which callers treat as
// skip-and-log rather than abort.
package backend
