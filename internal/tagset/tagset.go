// Package tagset converts between the stored attribute string and an ordered
// sequence of tags.
//
// A tag set is stored as the tags joined with commas, in insertion order.
// Parsing does no trimming: " foo" and "foo" are different tags. Only Merge
// normalises its input; Filter compares literally, so removing "FOO" does not
// remove a stored "foo".
package tagset

import (
	"slices"
	"strings"
)

// Separator joins tags in the stored value.
const Separator = ","

// Parse splits a stored value into tags. An empty value yields no tags.
func Parse(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, Separator)
}

// Serialise joins tags into the stored form.
func Serialise(tags []string) string {
	return strings.Join(tags, Separator)
}

// Normalise returns the canonical form of a tag.
func Normalise(tag string) string {
	return strings.ToLower(tag)
}

// Merge appends each normalised tag from add that is not already in stored.
// It returns the new sequence and the tags that were appended, in order.
// stored is not modified.
func Merge(stored, add []string) (result, added []string) {
	result = slices.Clone(stored)
	for _, t := range add {
		t = Normalise(t)
		if slices.Contains(result, t) {
			continue
		}
		result = append(result, t)
		added = append(added, t)
	}
	return result, added
}

// Filter drops every stored tag that appears literally in remove.
// It returns the kept tags and the tags that were dropped, in stored order.
func Filter(stored, remove []string) (result, removed []string) {
	for _, t := range stored {
		if slices.Contains(remove, t) {
			removed = append(removed, t)
			continue
		}
		result = append(result, t)
	}
	return result, removed
}
