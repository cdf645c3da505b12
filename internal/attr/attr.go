// Package attr reads and writes a single named extended attribute on
// filesystem paths.
//
// The attribute value is treated as opaque bytes. Parsing the value into
// tags is the job of the tagset and store packages; this package only knows
// whether an attribute exists, what bytes it holds, and how to replace or
// delete them.
package attr

import "errors"

// DefaultName is the attribute used when no other name is configured.
// Linux only permits unprivileged writes in the "user." namespace.
const DefaultName = "user.tags"

var (
	// ErrNotSet is returned by Remove when the attribute does not exist.
	ErrNotSet = errors.New("attribute not set")
	// ErrUnsupported is returned when the filesystem or platform has no
	// extended attribute support.
	ErrUnsupported = errors.New("extended attributes not supported")
)

// Accessor provides raw access to one attribute across many paths.
type Accessor interface {
	// Get returns the attribute value. ok is false when the attribute is
	// absent; that is not an error.
	Get(path string) (value []byte, ok bool, err error)

	// Set overwrites the attribute unconditionally.
	Set(path string, value []byte) error

	// Remove deletes the attribute. Returns ErrNotSet if it does not exist.
	Remove(path string) error

	// Name returns the attribute name this accessor operates on.
	Name() string
}
