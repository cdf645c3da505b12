// Package validate provides input validation for ftag's domain types.
//
// Validation is minimal. Tags are free-form labels; the rules reject only
// what would corrupt the stored comma-joined list or could never be written
// to an extended attribute.
//
// All validation errors wrap one of the sentinel errors in errors.go. Use
// errors.Is for checking:
//
//	if errors.Is(err, validate.ErrInvalidTag) {
//	    // handle invalid tag
//	}
package validate
