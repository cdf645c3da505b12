package validate

import (
	"fmt"
	"strings"
)

// Path validates a filesystem path supplied on the command line or by an MCP
// client. The path is not cleaned: find prints descendants relative to the
// path exactly as given.
func Path(p string) error {
	if p == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.ContainsRune(p, 0) {
		return fmt.Errorf("%w: null byte in path", ErrInvalidPath)
	}
	return nil
}

// Attribute validates an extended attribute name.
func Attribute(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAttribute)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: null byte in name", ErrInvalidAttribute)
	}
	if strings.ContainsAny(name, " \t\n") {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidAttribute, name)
	}
	return nil
}
