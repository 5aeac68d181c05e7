// Package httpenum provides the trivial HTTP Method and Scheme enums:
// string <-> enum mapping with no RFC 7230 token-grammar validation.
package httpenum

import (
	"errors"
	"strings"
)

// ErrUnknownMethod is returned by ParseMethod for any text that is not one
// of the nine standard verbs. Non-standard-but-syntactically-valid tokens
// are rejected rather than accepted as an "other" method, matching the
// stricter of the two behaviors the source leaves as an open TODO.
var ErrUnknownMethod = errors.New("httpenum: unknown method")

// Method is an HTTP request method.
type Method int

const (
	Connect Method = iota
	Delete
	Get
	Head
	Options
	Patch
	Post
	Put
	Trace
)

var methodNames = map[Method]string{
	Connect: "connect",
	Delete:  "delete",
	Get:     "get",
	Head:    "head",
	Options: "options",
	Patch:   "patch",
	Post:    "post",
	Put:     "put",
	Trace:   "trace",
}

var methodsByName = func() map[string]Method {
	m := make(map[string]Method, len(methodNames))
	for method, name := range methodNames {
		m[name] = method
	}
	return m
}()

// ParseMethod parses a method name case-insensitively. Only the nine
// standard verbs are accepted.
func ParseMethod(s string) (Method, error) {
	m, ok := methodsByName[strings.ToLower(s)]
	if !ok {
		return 0, ErrUnknownMethod
	}
	return m, nil
}

// String returns the lowercase method name.
func (m Method) String() string {
	return methodNames[m]
}
