package field

import (
	"bytes"
	"fmt"
)

// BadStartError reports that header text began with a line that cannot
// start a header field block: either a continuation line (one starting with
// folding whitespace, which has no preceding field to attach to) or a line
// with no colon at all. It is recoverable: ParseLines drops the offending
// line (including its trailing line break) and keeps going, returning this
// alongside whatever lines it did manage to parse.
type BadStartError struct {
	BadStart []byte
}

func (e *BadStartError) Error() string {
	return fmt.Sprintf("header text starts with a line that cannot begin a field: %q", e.BadStart)
}

// Line is the raw bytes of one logical header field: a "name: body" line
// together with any folded continuation lines, joined by lb, before it has
// been split into name and body.
type Line []byte

// Lines is a sequence of logical header lines.
type Lines []Line

// ParseLines splits raw header text m into logical lines on lb, joining any
// physical line that starts with SP or HTAB onto the preceding logical
// line, per RFC 5322 folding.
//
// If the text begins with a line that cannot start a field block (a
// continuation line, or a line with no colon at all), that line is dropped
// and reported via a *BadStartError rather than aborting the whole parse;
// every other line is still parsed and returned.
func ParseLines(m []byte, lb []byte) (Lines, error) {
	if len(m) == 0 {
		return nil, nil
	}

	physical := bytes.Split(m, lb)
	for n := len(physical); n > 0 && len(physical[n-1]) == 0; n = len(physical) {
		physical = physical[:n-1]
	}

	var lines Lines
	var badStart error
	for _, p := range physical {
		isContinuation := len(p) > 0 && (p[0] == ' ' || p[0] == '\t')
		if len(lines) == 0 && (isContinuation || !bytes.ContainsRune(p, ':')) {
			if badStart == nil {
				bad := append([]byte(nil), p...)
				bad = append(bad, lb...)
				badStart = &BadStartError{BadStart: bad}
			}
			continue
		}
		if isContinuation {
			joined := make([]byte, 0, len(lines[len(lines)-1])+len(lb)+len(p))
			joined = append(joined, lines[len(lines)-1]...)
			joined = append(joined, lb...)
			joined = append(joined, p...)
			lines[len(lines)-1] = joined
			continue
		}
		lines = append(lines, append([]byte(nil), p...))
	}

	return lines, badStart
}

// Parse converts one logical line into a Field, splitting it at the first
// colon and collapsing folded continuations in the body into single
// spaces. Raw is always set to the unmodified line, so an untouched field
// round-trips exactly.
func Parse(l Line, lb []byte) *Field {
	f := &Field{Raw: append([]byte(nil), l...)}

	colon := bytes.IndexByte(l, ':')
	if colon < 0 {
		return f
	}

	f.name = string(bytes.TrimSpace(l[:colon]))
	f.body = collapseFolds(bytes.TrimLeft(l[colon+1:], " \t"), lb)
	return f
}

func collapseFolds(body, lb []byte) string {
	var out []byte
	i := 0
	for i < len(body) {
		if bytes.HasPrefix(body[i:], lb) {
			j := i + len(lb)
			if j < len(body) && (body[j] == ' ' || body[j] == '\t') {
				for j < len(body) && (body[j] == ' ' || body[j] == '\t') {
					j++
				}
				out = append(out, ' ')
				i = j
				continue
			}
		}
		out = append(out, body[i])
		i++
	}
	return string(out)
}
