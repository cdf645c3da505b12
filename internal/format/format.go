// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// business logic while this package handles presentation.
package format

import (
	"fmt"
	"io"

	"github.com/jpl-au/ftag/internal/diff"
	"github.com/jpl-au/ftag/internal/service"
)

// matchIndent prefixes each matched tag beneath its path.
const matchIndent = "  "

// Tags prints one tag per line.
func Tags(w io.Writer, tags []string) error {
	for _, t := range tags {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

// Matches prints each matching path followed by its matched tags, indented.
func Matches(w io.Writer, matches []service.Match) error {
	for _, m := range matches {
		if _, err := fmt.Fprintln(w, m.Path); err != nil {
			return err
		}
		for _, t := range m.Tags {
			if _, err := fmt.Fprintln(w, matchIndent+t); err != nil {
				return err
			}
		}
	}
	return nil
}

// Paths prints just the matching paths, one per line.
func Paths(w io.Writer, matches []service.Match) error {
	for _, m := range matches {
		if _, err := fmt.Fprintln(w, m.Path); err != nil {
			return err
		}
	}
	return nil
}

// Preview prints the stored and proposed tags of a dry-run change as a diff.
func Preview(w io.Writer, c service.Change, colour bool) error {
	r := diff.Lines(c.Before, c.Tags, c.Path+" (stored)", c.Path+" (proposed)")
	_, err := fmt.Fprint(w, r.Format(colour))
	return err
}
