// Package wire implements an incremental, suspendable byte-level parser for
// MIME multipart messages (RFC 2045/2046).
//
// Every entry point here is pure and non-blocking: it never reads from an
// io.Reader and never retains a goroutine across a call. When the supplied
// bytes are insufficient to make progress, the parser returns a result
// carrying a continuation (Resume) instead of blocking; the caller feeds it
// more bytes and gets back either another continuation or a finished result.
// Resuming a continuation with zero new bytes is a caller error
// (ErrEmptyContinuation) — there is no end-of-input signal in this package,
// because the wire protocol has none; callers that reach true EOF without a
// terminating boundary must report that themselves.
package wire
