// Package find provides recursive tag search for the CLI layer.
//
// This wraps the service.Find method with output formatting, separating the
// search logic from presentation. Each matching path is printed followed by
// the matched substrings of its stored tags, indented two spaces.
package find

import (
	"context"
	"io"

	"github.com/jpl-au/ftag/internal/format"
	"github.com/jpl-au/ftag/internal/service"
)

// Options configures a search operation.
type Options struct {
	Literal   bool   // Match tags literally instead of as regular expressions
	Name      string // Only consider entries whose relative path matches this glob
	PathsOnly bool   // Only output paths
}

// Result contains the outcome of a search operation.
type Result = service.FindResult

// Run searches root for tags and writes output to w.
func Run(ctx context.Context, w io.Writer, svc service.Service, root string, tags []string, opts Options) (Result, error) {
	result, err := svc.Find(ctx, root, tags, service.FindOptions{Literal: opts.Literal, Name: opts.Name})
	if err != nil {
		return result, err
	}

	if opts.PathsOnly {
		err = format.Paths(w, result.Matches)
	} else {
		err = format.Matches(w, result.Matches)
	}
	return result, err
}
