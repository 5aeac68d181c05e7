package wire

// BodyContinuation resumes a suspended body parse with more bytes. extra
// must be non-empty.
type BodyContinuation func(extra []byte) (BodyResult, error)

// BodyResult is the outcome of a (partial) part-body parse.
//
// When Suspended is true, Chunk holds the bytes newly confirmed to belong
// to the body since the last result (possibly empty) and Resume is valid.
// The concatenation of every Chunk yielded across resumptions, followed by
// the final (non-suspended) Chunk, is the complete part body.
//
// When Suspended is false, the body is finished: Chunk holds its last
// segment, and Done reports whether the boundary that ended it was the
// terminal "--boundary--" (true) or an ordinary "--boundary" separating
// another part (false). For an ordinary boundary, Remaining holds
// everything from that "--boundary" marker onward; for the terminal one,
// it holds the bytes after the closing "--boundary--" (the epilogue).
type BodyResult struct {
	Chunk     []byte
	Suspended bool
	Done      bool
	Remaining []byte
	Resume    BodyContinuation
}

// ParseBody parses a part body up to (but not including) the next boundary
// marker. boundary is the delimiter text without its leading "--".
//
// Entry precondition: data is positioned at the start of a part body
// (immediately after the header block's terminating blank line, or
// immediately after ParseHeaders returned Done with no headers for a
// boundary-only entry).
func ParseBody(data []byte, boundary string) (BodyResult, error) {
	marker := boundaryMarker(boundary)
	if Buffer(data).HasPrefix(marker) {
		return BodyResult{Remaining: data}, nil
	} else if Buffer(marker).HasPrefix(data) {
		pending := clone(data)
		return BodyResult{Suspended: true, Resume: func(extra []byte) (BodyResult, error) {
			if len(extra) == 0 {
				return BodyResult{}, ErrEmptyContinuation
			}
			return ParseBody(concat(pending, extra), boundary)
		}}, nil
	}
	return bodyLoop(data, boundary, nil)
}

// bodyLoop scans for CRLF + "--boundary", the delimiter line RFC 2046 §5.1.1
// uses to end a part body, requiring len(boundary)+6 bytes of lookahead from
// any candidate match (4 for the delimiter itself, 2 more to tell a terminal
// "--" from a CRLF starting the next part's headers) before committing to a
// decision.
func bodyLoop(data []byte, boundary string, acc []byte) (BodyResult, error) {
	delim := crlfBoundaryMarker(boundary)
	need := len(boundary) + 6
	pos := 0
	for {
		if Buffer(data).Len()-pos < need {
			tail := clone(data[pos:])
			chunk := acc
			return BodyResult{Chunk: chunk, Suspended: true, Resume: func(extra []byte) (BodyResult, error) {
				if len(extra) == 0 {
					return BodyResult{}, ErrEmptyContinuation
				}
				return bodyLoop(concat(tail, extra), boundary, nil)
			}}, nil
		}
		if Buffer(data[pos:]).HasPrefix(delim) {
			after := data[pos+len(delim):]
			switch {
			case after[0] == CR && after[1] == LF:
				return BodyResult{Chunk: acc, Remaining: data[pos+2:]}, nil
			case after[0] == DASH && after[1] == DASH:
				return BodyResult{Chunk: acc, Done: true, Remaining: after[2:]}, nil
			default:
				acc = append(acc, data[pos], data[pos+1])
				pos += 2
				continue
			}
		}
		acc = append(acc, data[pos])
		pos++
	}
}
