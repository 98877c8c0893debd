package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// Target names repeat heavily across dependency edges, so interning them
// makes node identity comparisons cheap and map keys compact.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	return is.h.Value()
}
