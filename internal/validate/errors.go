// errors.go defines sentinel errors for validation failures.

package validate

import "errors"

var (
	ErrInvalidPath      = errors.New("invalid path")
	ErrInvalidTag       = errors.New("invalid tag")
	ErrInvalidAttribute = errors.New("invalid attribute name")
)
