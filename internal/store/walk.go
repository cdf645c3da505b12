// walk.go implements the recursive traversal used by find.
//
// Traversal is depth-first in lexical order via filepath.WalkDir. A root that
// is a symlink to a directory is followed; symlinked directories below it are
// not. Failing to stat the root is returned; errors on anything else
// (permission denied, entries vanishing mid-walk) skip that entry, and for
// directories its subtree, and the walk continues.
//
// Descendant paths are built by appending to root exactly as given, so a
// walk of "." yields "./a" rather than "a".

package store

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// WalkFunc is called for every entry reached by Walk, including root.
type WalkFunc func(path string, d fs.DirEntry) error

// Walk visits root and all of its descendants.
// It returns the number of entries that were skipped because of errors.
func (s *Store) Walk(ctx context.Context, root string, fn WalkFunc) (skipped int, err error) {
	walkRoot, err := resolveRoot(root)
	if err != nil {
		return 0, err
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	err = filepath.WalkDir(walkRoot, func(p string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if p == walkRoot {
			p = root
		} else if rel, err := filepath.Rel(walkRoot, p); err == nil {
			p = prefix + rel
		}
		if walkErr != nil {
			if p == root && d == nil {
				return walkErr
			}
			skipped++
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		return fn(p, d)
	})
	return skipped, err
}

// resolveRoot returns the path to hand to WalkDir. A symlink to a directory
// gets a trailing separator so that WalkDir descends through it.
func resolveRoot(root string) (string, error) {
	info, err := os.Lstat(root)
	if err != nil {
		return "", err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return root, nil
	}
	target, err := os.Stat(root)
	if err != nil || !target.IsDir() {
		// Broken links and links to files are visited as single entries.
		return root, nil
	}
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root, nil
	}
	return root + string(filepath.Separator), nil
}
