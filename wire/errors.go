package wire

import "errors"

var (
	// ErrEmptyContinuation is returned when a continuation is resumed with
	// zero new bytes. A continuation always needs at least one more byte to
	// make progress; feeding it nothing is a caller bug, not end of input.
	ErrEmptyContinuation = errors.New("wire: resumed continuation with no new bytes")

	// ErrBadBoundaryTrailer is returned when the two bytes following a
	// recognized boundary are neither "--" (terminal boundary) nor CRLF
	// (header block follows).
	ErrBadBoundaryTrailer = errors.New("wire: malformed bytes following boundary")

	// ErrMalformedHeaderBlock is returned when the header-lines loop hits
	// the end of the header block before finding a colon for the header
	// currently being scanned.
	ErrMalformedHeaderBlock = errors.New("wire: malformed header line (colon missing before end of block)")

	// ErrNotUTF8 is returned when a header name or value is not valid UTF-8.
	// This is the only validation the core parser performs on header text.
	ErrNotUTF8 = errors.New("wire: header name or value is not valid UTF-8")
)
