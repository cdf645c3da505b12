// Package glob provides glob pattern matching for paths found by find.
//
// Extends filepath.Match with ** support for matching any path segments.
// This enables patterns like "docs/**" to match every entry under docs/,
// regardless of nesting depth. Paths are compared with forward slashes.
package glob

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate reports whether pattern is well formed.
func Validate(pattern string) error {
	for _, part := range strings.Split(filepath.ToSlash(pattern), "**") {
		if _, err := filepath.Match(strings.Trim(part, "/"), ""); err != nil {
			return fmt.Errorf("glob %q: %w", pattern, err)
		}
	}
	return nil
}

// Match reports whether path matches the glob pattern.
// Supports standard glob patterns (*, ?) plus ** for matching any path segments.
// A pattern without a slash also matches the final element of path.
// Returns an error if the pattern is malformed.
func Match(pattern, path string) (bool, error) {
	pattern = filepath.ToSlash(pattern)
	path = filepath.ToSlash(path)

	// Handle ** (match any path segments)
	if strings.Contains(pattern, "**") {
		parts := strings.Split(pattern, "**")
		if len(parts) == 2 {
			prefix := strings.TrimSuffix(parts[0], "/")
			suffix := strings.TrimPrefix(parts[1], "/")

			if prefix != "" && path != prefix && !strings.HasPrefix(path, prefix+"/") {
				return false, nil
			}
			if suffix == "" {
				return true, nil
			}
			// Match suffix as a glob pattern against all path segments
			segments := strings.Split(path, "/")
			for i := range segments {
				tail := strings.Join(segments[i:], "/")
				m, err := filepath.Match(suffix, tail)
				if err != nil {
					return false, err
				}
				if m {
					return true, nil
				}
			}
			return false, nil
		}
	}

	matched, err := filepath.Match(pattern, path)
	if err != nil {
		return false, err
	}
	if matched || strings.Contains(pattern, "/") {
		return matched, nil
	}

	// Try matching just the final element
	_, base := splitLast(path)
	return filepath.Match(pattern, base)
}

func splitLast(path string) (dir, base string) {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}
