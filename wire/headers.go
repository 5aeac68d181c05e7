package wire

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Header is a single parsed header field: a lowercased name and its folded
// value, with any line-folding whitespace collapsed to a single space.
type Header struct {
	Name  string
	Value string
}

// HeadersContinuation resumes a suspended header-block parse with more
// bytes. extra must be non-empty.
type HeadersContinuation func(extra []byte) (HeadersResult, error)

// HeadersResult is the outcome of a (partial) header-block parse.
//
// When Done is true, Headers and Remaining are valid: Headers holds every
// field parsed (in source order) and Remaining holds everything in the
// buffer after the header block's terminating blank line. When Done is
// false, Resume is valid: call it with more bytes to continue.
type HeadersResult struct {
	Done      bool
	Headers   []Header
	Remaining []byte
	Resume    HeadersContinuation
}

// ParseHeaders parses the preamble (if any), the recognized boundary, and
// the header block of the multipart part that follows it. boundary is the
// delimiter text without its leading "--".
//
// Per RFC 2046 §5.1.1, a part's header block always begins right after a
// boundary line has been recognized, and recognizing that boundary line may
// first require skipping a preamble (any text before the first boundary,
// which has no defined meaning and is discarded).
func ParseHeaders(data []byte, boundary string) (HeadersResult, error) {
	marker := boundaryMarker(boundary)
	if Buffer(data).HasPrefix(marker) {
		return afterBoundaryMarker(data[len(marker):], boundary)
	}
	return skipPreamble(data, boundary)
}

// skipPreamble scans forward for CRLF + "--boundary" and dispatches to the
// after-boundary logic once found, discarding everything before it as
// preamble text per RFC 2046 §5.1.1. A bytes.Index search stands in for a
// byte-by-byte scan without changing suspension semantics: nothing past what
// has actually been fed is ever examined.
func skipPreamble(data []byte, boundary string) (HeadersResult, error) {
	delim := preambleDelimiter(boundary)
	if idx := bytes.Index(data, delim); idx >= 0 {
		return afterBoundaryMarker(data[idx+len(delim):], boundary)
	}
	pending := clone(data)
	return HeadersResult{Resume: func(extra []byte) (HeadersResult, error) {
		if len(extra) == 0 {
			return HeadersResult{}, ErrEmptyContinuation
		}
		return ParseHeaders(concat(pending, extra), boundary)
	}}, nil
}

// afterBoundaryMarker examines the two bytes following a recognized
// "--boundary" marker: "--" means this is the terminal boundary and the part
// list is over; CRLF means a header block follows.
func afterBoundaryMarker(rest []byte, boundary string) (HeadersResult, error) {
	if len(rest) < 2 {
		pending := clone(rest)
		return HeadersResult{Resume: func(extra []byte) (HeadersResult, error) {
			if len(extra) == 0 {
				return HeadersResult{}, ErrEmptyContinuation
			}
			return afterBoundaryMarker(concat(pending, extra), boundary)
		}}, nil
	}
	switch {
	case rest[0] == DASH && rest[1] == DASH:
		return HeadersResult{Done: true, Remaining: rest[2:]}, nil
	case rest[0] == CR && rest[1] == LF:
		return headerLines(rest, nil)
	default:
		return HeadersResult{}, ErrBadBoundaryTrailer
	}
}

// headerLines walks the header block one field at a time, per RFC 5322 §2.2.
// It is always entered with the cursor sitting on the CRLF that terminates
// the previous line (the boundary's own trailing CRLF, the first time
// through): a second CRLF immediately following means the header block is
// empty, otherwise the first CRLF is consumed and the name loop begins for
// the first header.
func headerLines(data []byte, headers []Header) (HeadersResult, error) {
	if Buffer(data).HasPrefix(crlfcrlf) {
		return HeadersResult{Done: true, Headers: headers, Remaining: data[4:]}, nil
	}
	if len(data) >= 2 && data[0] == CR && data[1] == LF {
		if len(data) < 4 {
			return suspendHeaderLines(data, headers), nil
		}
		return nameLoop(data[2:], headers)
	}
	if len(data) == 0 || (len(data) == 1 && data[0] == CR) {
		return suspendHeaderLines(data, headers), nil
	}
	return HeadersResult{}, ErrMalformedHeaderBlock
}

func suspendHeaderLines(data []byte, headers []Header) HeadersResult {
	pending := clone(data)
	return HeadersResult{Resume: func(extra []byte) (HeadersResult, error) {
		if len(extra) == 0 {
			return HeadersResult{}, ErrEmptyContinuation
		}
		return headerLines(concat(pending, extra), headers)
	}}
}

// nameLoop reads a header name up to its terminating colon, skipping any
// leading folding whitespace first. Reaching the header block's terminating
// blank line before a colon is a malformed header line.
func nameLoop(data []byte, headers []Header) (HeadersResult, error) {
	skip := 0
	for skip < len(data) && isFoldingSpace(data[skip]) {
		skip++
	}
	body := data[skip:]

	colonAt := bytes.IndexByte(body, COLON)
	endAt := bytes.Index(body, crlfcrlf)
	switch {
	case colonAt >= 0 && (endAt < 0 || colonAt < endAt):
		name := clone(body[:colonAt])
		return valueLoop(body[colonAt+1:], headers, name, nil, true)
	case endAt >= 0 && (colonAt < 0 || endAt < colonAt):
		return HeadersResult{}, ErrMalformedHeaderBlock
	default:
		pending := clone(data)
		return HeadersResult{Resume: func(extra []byte) (HeadersResult, error) {
			if len(extra) == 0 {
				return HeadersResult{}, ErrEmptyContinuation
			}
			return nameLoop(concat(pending, extra), headers)
		}}, nil
	}
}

// valueLoop reads a header value, following RFC 5322 §2.2.3 line folding: a
// CRLF followed by folding whitespace continues the same value, joined with
// a single space in place of the fold ("one two", not "onetwo").
//
// stripLeading is true at the start of a value and immediately after a
// fold, where leading folding whitespace is discarded rather than kept.
func valueLoop(data []byte, headers []Header, name []byte, acc []byte, stripLeading bool) (HeadersResult, error) {
	if stripLeading {
		skip := 0
		for skip < len(data) && isFoldingSpace(data[skip]) {
			skip++
		}
		data = data[skip:]
		if len(data) == 0 {
			return HeadersResult{Resume: func(extra []byte) (HeadersResult, error) {
				if len(extra) == 0 {
					return HeadersResult{}, ErrEmptyContinuation
				}
				return valueLoop(extra, headers, name, acc, true)
			}}, nil
		}
	}

	pos := 0
	for {
		crAt := bytes.IndexByte(data[pos:], CR)
		if crAt < 0 {
			acc = append(acc, data[pos:]...)
			return suspendValueLoop(nil, headers, name, acc), nil
		}
		crAt += pos

		if len(data)-crAt < 4 {
			acc = append(acc, data[pos:crAt]...)
			return suspendValueLoop(data[crAt:], headers, name, acc), nil
		}
		if data[crAt+1] != LF {
			// a lone CR not forming CRLF is just a value byte
			acc = append(acc, data[pos:crAt+1]...)
			pos = crAt + 1
			continue
		}

		switch {
		case data[crAt+2] == CR && data[crAt+3] == LF:
			acc = append(acc, data[pos:crAt]...)
			return commitHeaderAndEndBlock(headers, name, acc, data[crAt+4:])
		case isFoldingSpace(data[crAt+2]):
			acc = append(acc, data[pos:crAt]...)
			acc = append(acc, SP)
			return valueLoop(data[crAt+3:], headers, name, acc, true)
		default:
			acc = append(acc, data[pos:crAt]...)
			hdr, err := commitHeader(name, acc)
			if err != nil {
				return HeadersResult{}, err
			}
			return nameLoop(data[crAt+2:], append(headers, hdr))
		}
	}
}

func suspendValueLoop(pending []byte, headers []Header, name []byte, acc []byte) HeadersResult {
	p := clone(pending)
	return HeadersResult{Resume: func(extra []byte) (HeadersResult, error) {
		if len(extra) == 0 {
			return HeadersResult{}, ErrEmptyContinuation
		}
		return valueLoop(concat(p, extra), headers, name, acc, false)
	}}
}

func commitHeaderAndEndBlock(headers []Header, name, value, remaining []byte) (HeadersResult, error) {
	hdr, err := commitHeader(name, value)
	if err != nil {
		return HeadersResult{}, err
	}
	return HeadersResult{Done: true, Headers: append(headers, hdr), Remaining: remaining}, nil
}

func commitHeader(name, value []byte) (Header, error) {
	if !utf8.Valid(name) || !utf8.Valid(value) {
		return Header{}, ErrNotUTF8
	}
	return Header{Name: strings.ToLower(string(name)), Value: string(value)}, nil
}
