// Package service defines the shared interface for tag operations.
// Commands, MCP tools and extensions depend on this interface rather than
// the concrete tagging service, enabling tests with in-memory attributes.
package service

import "context"

// Service defines all tag operations.
//
// Use tagging.New to obtain an implementation.
//
// Example:
//
//	svc := tagging.New(attr.NewXattr(cfg.Attribute()))
//	tags, err := svc.List(ctx, "notes.txt")
type Service interface {
	// Attribute returns the extended attribute name tags are stored under.
	Attribute() string

	// List returns the stored tags for path in stored order. An untagged
	// path yields no tags and no error.
	List(ctx context.Context, path string) ([]string, error)

	// Set lower-cases each tag and appends those not already stored, then
	// writes the result back in a single overwrite. Tags containing commas,
	// empty tags and tags with null bytes are rejected before anything is
	// read or written.
	Set(ctx context.Context, path string, tags []string, opts Options) (Change, error)

	// Remove drops every stored tag that literally equals one of tags. Input
	// is not lower-cased, so "FOO" does not remove a stored "foo". The
	// filtered set is written back in a single overwrite, even when empty.
	Remove(ctx context.Context, path string, tags []string, opts Options) (Change, error)

	// Find walks root and its descendants, matching each entry's stored value
	// against an alternation of tags. Entries whose attribute cannot be read
	// are skipped and counted.
	Find(ctx context.Context, root string, tags []string, opts FindOptions) (FindResult, error)
}

// Options configures a Set or Remove.
type Options struct {
	DryRun bool   // Compute the change without writing it
	Source string // Origin of the change ("cli", "mcp"), carried on events
}

// Change describes the outcome of a Set or Remove.
type Change struct {
	Path    string   `json:"path"`
	Before  []string `json:"-"`
	Tags    []string `json:"tags"`
	Added   []string `json:"added,omitempty"`
	Removed []string `json:"removed,omitempty"`
	DryRun  bool     `json:"dry_run,omitempty"`
}

// FindOptions configures a Find.
type FindOptions struct {
	// Literal escapes regular expression metacharacters in each tag. When
	// false the tags are joined as raw patterns, so "a.c" also matches "abc".
	Literal bool

	// Name restricts matches to entries whose path relative to root matches
	// this glob. "**" matches any number of path segments.
	Name string
}

// Match is one entry found by Find with the substrings of its stored value
// that matched.
type Match struct {
	Path string   `json:"path"`
	Tags []string `json:"tags"`
}

// FindResult contains the matches of a Find in walk order.
type FindResult struct {
	Root    string  `json:"root"`
	Matches []Match `json:"matches"`
	Skipped int     `json:"skipped,omitempty"`
}
