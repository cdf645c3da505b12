// Package store persists tag sets in a filesystem extended attribute.
//
// The store is the only layer that touches the attribute's bytes. It decodes
// them as UTF-8, splits them into tags via tagset, and writes them back in a
// single overwrite. Validation, normalisation and events belong to the
// tagging service above it.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/jpl-au/ftag/internal/attr"
	"github.com/jpl-au/ftag/internal/tagset"
)

// ErrInvalidEncoding is returned when a stored value is not valid UTF-8.
var ErrInvalidEncoding = errors.New("stored tags are not valid UTF-8")

// Store reads and writes tag sets through an attribute accessor.
type Store struct {
	attrs attr.Accessor
}

// New returns a store over the given accessor.
func New(a attr.Accessor) *Store {
	return &Store{attrs: a}
}

// Attribute returns the name of the extended attribute holding tags.
func (s *Store) Attribute() string {
	return s.attrs.Name()
}

// Raw returns the stored value for path. An absent attribute and an empty
// value both yield "".
func (s *Store) Raw(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, ok, err := s.attrs.Get(path)
	if err != nil {
		return "", err
	}
	if !ok || len(b) == 0 {
		return "", nil
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%s on %s: %w", s.attrs.Name(), path, ErrInvalidEncoding)
	}
	return string(b), nil
}

// Tags returns the stored tags for path in stored order.
func (s *Store) Tags(ctx context.Context, path string) ([]string, error) {
	raw, err := s.Raw(ctx, path)
	if err != nil {
		return nil, err
	}
	return tagset.Parse(raw), nil
}

// Write replaces the stored tags for path. An empty sequence writes an empty
// value; the attribute is never deleted.
func (s *Store) Write(ctx context.Context, path string, tags []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.attrs.Set(path, []byte(tagset.Serialise(tags)))
}

// MarshalJSON renders v as indented JSON for tool and CLI output.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
