// Package disposition parses the Content-Disposition header and, more
// generally, any RFC 2045 "type; name=value; ..." parameter list, preserving
// parameter order rather than collapsing it into a map.
package disposition

import (
	"errors"
	"strings"
)

// ErrUnterminatedQuote is returned when a quoted parameter value is not
// closed before the end of the header text.
var ErrUnterminatedQuote = errors.New("disposition: unterminated quoted parameter value")

// ErrMissingEquals is returned when a parameter name is not followed by '='.
var ErrMissingEquals = errors.New("disposition: missing '=' in parameter")

// Parameter is a single (name, value) pair, in source order. Name is
// lowercased; Value preserves case.
type Parameter struct {
	Name  string
	Value string
}

// Disposition is a parsed Content-Disposition (or any RFC 2045 "type;
// params" header): a lowercased type and its parameters in source order.
type Disposition struct {
	Type       string
	Parameters []Parameter
}

// Parameter returns the value of the named parameter (case-insensitive) and
// whether it was present.
func (d Disposition) Parameter(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, p := range d.Parameters {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Parse tokenizes h into a disposition type and its ordered parameters.
// Operates on runes rather than raw bytes so multi-byte characters inside
// quoted or unquoted values survive intact.
func Parse(h string) (Disposition, error) {
	r := []rune(h)
	i, n := 0, len(r)

	typeStart := i
	for i < n && r[i] != ' ' && r[i] != '\t' && r[i] != ';' {
		i++
	}
	d := Disposition{Type: strings.ToLower(string(r[typeStart:i]))}
	if i >= n {
		return d, nil
	}

	for {
		for i < n && (r[i] == ';' || r[i] == ' ' || r[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}

		nameStart := i
		for i < n && r[i] != '=' {
			i++
		}
		if i >= n {
			return Disposition{}, ErrMissingEquals
		}
		name := strings.ToLower(string(r[nameStart:i]))
		i++ // skip '='

		var value string
		if i < n && r[i] == '"' {
			i++
			var b strings.Builder
			closed := false
			for i < n {
				switch r[i] {
				case '\\':
					if i+1 >= n {
						return Disposition{}, ErrUnterminatedQuote
					}
					b.WriteRune(r[i+1])
					i += 2
				case '"':
					i++
					closed = true
				default:
					b.WriteRune(r[i])
					i++
				}
				if closed {
					break
				}
			}
			if !closed {
				return Disposition{}, ErrUnterminatedQuote
			}
			value = b.String()
		} else {
			valueStart := i
			for i < n && r[i] != ';' && r[i] != ' ' && r[i] != '\t' {
				i++
			}
			value = string(r[valueStart:i])
		}

		d.Parameters = append(d.Parameters, Parameter{Name: name, Value: value})
	}

	return d, nil
}

// String serializes d back into canonical "type; name=value" form, quoting
// any value that contains a token-breaking character.
func (d Disposition) String() string {
	var b strings.Builder
	b.WriteString(d.Type)
	for _, p := range d.Parameters {
		b.WriteString("; ")
		b.WriteString(p.Name)
		b.WriteByte('=')
		if needsQuoting(p.Value) {
			b.WriteByte('"')
			b.WriteString(strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(p.Value))
			b.WriteByte('"')
		} else {
			b.WriteString(p.Value)
		}
	}
	return b.String()
}

func needsQuoting(v string) bool {
	if v == "" {
		return true
	}
	for _, c := range v {
		if c == ' ' || c == '\t' || c == ';' || c == '"' || c == '\\' {
			return true
		}
	}
	return false
}
