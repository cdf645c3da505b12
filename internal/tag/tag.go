// Package tag provides tagging operations for the CLI layer.
//
// This package orchestrates set/rm/ls operations, handling both the service
// calls and output formatting. Set and remove are silent on success; a dry
// run prints the change as a diff instead of writing it.

package tag

import (
	"context"
	"io"

	"github.com/jpl-au/ftag/internal/format"
	"github.com/jpl-au/ftag/internal/service"
)

// Options configures a set or remove.
type Options struct {
	DryRun bool   // Print the change instead of writing it
	Colour bool   // Colourise dry-run diffs
	Source string // Origin of the change, passed to event handlers
}

// Result contains the outcome of a tag operation.
type Result struct {
	Path    string   `json:"path"`
	Action  string   `json:"action,omitempty"`
	Tags    []string `json:"tags"`
	Added   []string `json:"added,omitempty"`
	Removed []string `json:"removed,omitempty"`
	DryRun  bool     `json:"dry_run,omitempty"`
}

func fromChange(action string, c service.Change) Result {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return Result{
		Path:    c.Path,
		Action:  action,
		Tags:    tags,
		Added:   c.Added,
		Removed: c.Removed,
		DryRun:  c.DryRun,
	}
}

// Set adds tags to path.
func Set(ctx context.Context, w io.Writer, svc service.Service, path string, tags []string, opts Options) (Result, error) {
	c, err := svc.Set(ctx, path, tags, service.Options{DryRun: opts.DryRun, Source: opts.Source})
	if err != nil {
		return Result{Path: path, Action: "set"}, err
	}
	result := fromChange("set", c)
	if opts.DryRun {
		return result, format.Preview(w, c, opts.Colour)
	}
	return result, nil
}

// Remove removes tags from path.
func Remove(ctx context.Context, w io.Writer, svc service.Service, path string, tags []string, opts Options) (Result, error) {
	c, err := svc.Remove(ctx, path, tags, service.Options{DryRun: opts.DryRun, Source: opts.Source})
	if err != nil {
		return Result{Path: path, Action: "remove"}, err
	}
	result := fromChange("remove", c)
	if opts.DryRun {
		return result, format.Preview(w, c, opts.Colour)
	}
	return result, nil
}

// List prints the tags stored on path, one per line.
func List(ctx context.Context, w io.Writer, svc service.Service, path string) (Result, error) {
	result := Result{Path: path, Tags: []string{}}

	tags, err := svc.List(ctx, path)
	if err != nil {
		return result, err
	}
	if tags != nil {
		result.Tags = tags
	}
	return result, format.Tags(w, tags)
}
