package config

import "strings"

// KeyPath is an ordered list of keys identifying a node in the document.
type KeyPath []string

// Keys builds a KeyPath from its arguments.
func Keys(keys ...string) KeyPath {
	return KeyPath(keys)
}

// ParseKeyPath splits a dotted key such as "server.port".
// An empty string is the empty path, which addresses the whole document.
func ParseKeyPath(dotted string) KeyPath {
	if dotted == "" {
		return KeyPath{}
	}
	return KeyPath(strings.Split(dotted, "."))
}

// String joins the keys with dots.
func (p KeyPath) String() string {
	return strings.Join(p, ".")
}

// Fallback selects what Get does when a key is missing.
//
// The zero value is Strict: the lookup fails with KEY_NOT_FOUND. A Fallback
// built with Or carries a value, which may be nil, returned verbatim instead.
type Fallback struct {
	value any
	set   bool
}

// Strict makes a missing key an error.
var Strict = Fallback{}

// Or returns value on a missing key. Or(nil) is a valid fallback.
func Or(value any) Fallback {
	return Fallback{value: value, set: true}
}

// IsStrict reports whether a miss is an error.
func (f Fallback) IsStrict() bool {
	return !f.set
}

// Value returns the carried fallback value.
func (f Fallback) Value() any {
	return f.value
}
