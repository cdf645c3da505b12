// xattr.go implements Accessor on top of the operating system's extended
// attributes.
//
// Errors from github.com/pkg/xattr wrap the underlying errno. ENOATTR (ENODATA
// on Linux) means "absent" and is folded into the ok result of Get; ENOTSUP
// is translated to ErrUnsupported so callers can branch with errors.Is.
// Everything else, including ENOENT for missing paths, is passed through
// wrapped so fs.ErrNotExist checks keep working.

package attr

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/pkg/xattr"
)

// Xattr reads and writes one extended attribute name.
type Xattr struct {
	name string
}

var _ Accessor = (*Xattr)(nil)

// NewXattr returns an accessor for the named attribute. An empty name selects
// DefaultName.
func NewXattr(name string) *Xattr {
	if name == "" {
		name = DefaultName
	}
	return &Xattr{name: name}
}

// Name returns the attribute name.
func (x *Xattr) Name() string { return x.name }

// Get reads the attribute value. Symlinks are followed.
func (x *Xattr) Get(path string) ([]byte, bool, error) {
	v, err := xattr.Get(path, x.name)
	if err != nil {
		if errors.Is(err, xattr.ENOATTR) {
			return nil, false, nil
		}
		return nil, false, x.wrap("get", path, err)
	}
	return v, true, nil
}

// Set overwrites the attribute value.
func (x *Xattr) Set(path string, value []byte) error {
	if err := xattr.Set(path, x.name, value); err != nil {
		return x.wrap("set", path, err)
	}
	return nil
}

// Remove deletes the attribute.
func (x *Xattr) Remove(path string) error {
	if err := xattr.Remove(path, x.name); err != nil {
		if errors.Is(err, xattr.ENOATTR) {
			return fmt.Errorf("remove %s on %s: %w", x.name, path, ErrNotSet)
		}
		return x.wrap("remove", path, err)
	}
	return nil
}

// wrap annotates err and maps unsupported-filesystem errnos onto ErrUnsupported.
func (x *Xattr) wrap(op, path string, err error) error {
	if errors.Is(err, syscall.ENOTSUP) || errors.Is(err, syscall.EOPNOTSUPP) {
		return fmt.Errorf("%s %s on %s: %w", op, x.name, path, ErrUnsupported)
	}
	return fmt.Errorf("%s %s on %s: %w", op, x.name, path, err)
}
