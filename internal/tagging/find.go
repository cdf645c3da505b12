// find.go implements recursive tag search.
//
// The search tags are joined into one regular expression alternation and
// matched against each entry's raw stored value, not against individual
// tags. "ork" therefore matches inside "work", and by default a tag such as
// "a.c" is a pattern that also matches "abc". FindOptions.Literal quotes
// each tag first.

package tagging

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jpl-au/ftag/internal/glob"
	"github.com/jpl-au/ftag/internal/service"
	"github.com/jpl-au/ftag/internal/store"
	"github.com/jpl-au/ftag/internal/tagset"
	"github.com/jpl-au/ftag/internal/validate"
)

// Pattern compiles the alternation of tags. It returns nil when tags is
// empty, and Find then reports every stored tag instead of the empty matches
// an empty expression would produce.
func Pattern(tags []string, literal bool) (*regexp.Regexp, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	parts := tags
	if literal {
		parts = make([]string, len(tags))
		for i, t := range tags {
			parts[i] = regexp.QuoteMeta(t)
		}
	}
	expr := strings.Join(parts, "|")
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	return re, nil
}

// Find walks root, returning every tagged entry whose stored value matches.
//
// Failing to read root's own attribute is an error. Below root, entries
// whose attribute cannot be read are skipped. A stored value that is not
// UTF-8 is always an error. Entries whose path is not UTF-8 are skipped, and
// so is everything beneath them.
func (s *Service) Find(ctx context.Context, root string, tags []string, opts service.FindOptions) (service.FindResult, error) {
	result := service.FindResult{Root: root, Matches: []service.Match{}}
	if err := validate.Path(root); err != nil {
		return result, err
	}

	re, err := Pattern(tags, opts.Literal)
	if err != nil {
		return result, err
	}
	if opts.Name != "" {
		if err := glob.Validate(opts.Name); err != nil {
			return result, err
		}
	}

	skipped, err := s.store.Walk(ctx, root, func(p string, d fs.DirEntry) error {
		if !utf8.ValidString(p) {
			result.Skipped++
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		named := opts.Name == "" || nameMatches(opts.Name, root, p)
		if !named && p != root {
			return nil
		}
		raw, err := s.store.Raw(ctx, p)
		if err != nil {
			if p == root || errors.Is(err, store.ErrInvalidEncoding) || ctx.Err() != nil {
				return err
			}
			result.Skipped++
			return nil
		}
		if raw == "" || !named {
			return nil
		}

		var matched []string
		if re == nil {
			matched = tagset.Parse(raw)
		} else {
			matched = re.FindAllString(raw, -1)
		}
		if len(matched) > 0 {
			result.Matches = append(result.Matches, service.Match{Path: p, Tags: matched})
		}
		return nil
	})
	result.Skipped += skipped
	if err != nil {
		return result, fmt.Errorf("find %s: %w", root, err)
	}
	return result, nil
}

// nameMatches reports whether p, relative to root, matches the glob pattern.
// The root itself is matched by its own base name.
func nameMatches(pattern, root, p string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == "." {
		rel = filepath.Base(p)
	}
	ok, err := glob.Match(pattern, rel)
	return err == nil && ok
}
