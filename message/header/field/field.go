// Package field represents a single header field: a name, a body, and
// (optionally) the raw bytes it was parsed from, which take priority during
// serialization so an unmodified field round-trips byte-for-byte.
package field

// Field is a single header field. Name and Body hold the logical content;
// Raw, when non-nil, holds the exact bytes this field was parsed from and
// is written verbatim in place of Name/Body until either is changed via
// SetName or SetBody.
type Field struct {
	name, body string
	Raw        []byte
}

// New creates a field with the given name and body. Raw is unset, so the
// field is serialized by folding name and body through the header's
// FoldEncoding.
func New(name, body string) *Field {
	return &Field{name: name, body: body}
}

// Name returns the field's name.
func (f *Field) Name() string { return f.name }

// SetName changes the field's name and clears any raw-bytes override.
func (f *Field) SetName(name string) {
	f.name = name
	f.Raw = nil
}

// Body returns the field's body (unfolded, with folding whitespace
// collapsed to single spaces).
func (f *Field) Body() string { return f.body }

// SetBody changes the field's body and clears any raw-bytes override.
func (f *Field) SetBody(body string) {
	f.body = body
	f.Raw = nil
}

// SetRaw sets the exact bytes to emit for this field, overriding folding of
// Name/Body until one of them is changed.
func (f *Field) SetRaw(raw []byte) {
	f.Raw = raw
}

// Bytes returns the bytes to emit for this field: Raw if set, otherwise
// "name: body" unfolded.
func (f *Field) Bytes() []byte {
	if f.Raw != nil {
		return f.Raw
	}
	return []byte(f.name + ": " + f.body)
}

// String returns the same content as Bytes, as a string.
func (f *Field) String() string {
	return string(f.Bytes())
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	clone := &Field{name: f.name, body: f.body}
	if f.Raw != nil {
		clone.Raw = make([]byte, len(f.Raw))
		copy(clone.Raw, f.Raw)
	}
	return clone
}
