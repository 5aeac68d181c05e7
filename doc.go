// Package gleamhttp provides an incremental, suspendable byte-level parser
// for MIME multipart messages (RFC 2045/2046), together with a
// Content-Disposition/RFC 2045 parameter tokenizer and a small HTTP method
// and scheme enum.
//
// The streaming core lives in package wire: it operates on raw byte slices
// and never blocks on I/O. When given insufficient input to make progress,
// it returns a continuation the caller resumes once more bytes arrive, which
// makes it suitable for driving from a network reader one read() at a time.
//
// Package message provides a more convenient, non-streaming API that is
// independent of wire: message.Opaque and message.Multipart model a parsed
// message as either an opaque body or a tree of sub-parts, and message.Parse
// reads a whole io.Reader with its own bufio.Scanner-based splitter.
// message.Buffer does the reverse, assembling a message.Opaque or
// message.Multipart (or a combination) for serialization. For transforming
// an existing message, message.Parse followed by editing the returned
// header and rewriting the body via message.Buffer covers most cases;
// round-tripping is preserved byte-for-byte wherever the parsed structure
// isn't modified.
//
// Header access comes in two layers: message/header provides the high-level
// header.Header type with semantic accessors (GetDate, GetFrom,
// GetContentType, ...), while message/header/field provides low-level access
// to individual field.Field values for callers that need it.
package gleamhttp
