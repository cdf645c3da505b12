// tag.go implements tag string validation.
//
// The stored form joins tags with commas and has no escaping, so a tag
// containing a comma would split into two tags on the next read. Those are
// rejected when written. Empty tags are rejected for the same reason: they
// produce ",," or a trailing comma in the stored value.

package validate

import (
	"fmt"
	"strings"
)

// Tag validates a tag string before it is stored.
func Tag(t string) error {
	if t == "" {
		return fmt.Errorf("%w: empty tag", ErrInvalidTag)
	}
	if strings.Contains(t, ",") {
		return fmt.Errorf("%w: %q contains a comma", ErrInvalidTag, t)
	}
	if strings.ContainsRune(t, 0) {
		return fmt.Errorf("%w: null byte in tag", ErrInvalidTag)
	}
	return nil
}

// Tags validates every tag, returning the first failure.
func Tags(tags []string) error {
	for _, t := range tags {
		if err := Tag(t); err != nil {
			return err
		}
	}
	return nil
}
