// Package path resolves the positional arguments shared by the tag commands.
//
// Every tag command takes an optional path followed by zero or more tags:
//
//	ftag set              # path ".", no tags
//	ftag set notes.txt    # path "notes.txt", no tags
//	ftag set notes.txt a  # path "notes.txt", tags ["a"]
//
// The first positional argument is always the path. The default is applied
// per invocation rather than held in package state.
package path

// Default is the path used when none is given.
const Default = "."

// Split separates command arguments into the target path and its tags.
func Split(args []string) (string, []string) {
	if len(args) == 0 {
		return Default, nil
	}
	return OrDefault(args[0]), args[1:]
}

// OrDefault returns p, or Default when p is empty.
func OrDefault(p string) string {
	if p == "" {
		return Default
	}
	return p
}
