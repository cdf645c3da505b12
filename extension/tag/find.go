// find.go implements the "ftag find" command.

package tag

import (
	"fmt"

	"github.com/jpl-au/ftag/cmd"
	"github.com/jpl-au/ftag/extension"
	"github.com/jpl-au/ftag/internal/find"
	"github.com/jpl-au/ftag/internal/log"
	"github.com/jpl-au/ftag/internal/path"
	"github.com/spf13/cobra"
)

func (e *Extension) newFindCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "find [path] [tags...]",
		Short: "Search a directory tree for tagged files",
		Long: `Walk path (default ".") and every entry beneath it, printing each entry
whose stored tags match any of the given tags, followed by the matching
text indented beneath it.

Tags are regular expressions matched anywhere in the stored value, so
"ork" matches "work" and "a.c" matches "abc". Use --literal to match tags
as plain text. With no tags, every tagged entry is listed.

  ftag find . work          # entries tagged with anything containing "work"
  ftag find src 'urgent|p1' # alternation
  ftag find --literal . c++ # literal match
  ftag find --name '*.pdf' . # only PDFs`,
		RunE: e.runFind,
	}
	c.Flags().Bool(extension.FlagLiteral, false, "Match tags as plain text instead of regular expressions")
	c.Flags().String(extension.FlagName, "", "Only consider entries whose path below the root matches this glob (supports **)")
	c.Flags().Bool(extension.FlagPaths, false, "Only print matching paths")
	return c
}

func (e *Extension) runFind(c *cobra.Command, args []string) error {
	ctx := c.Context()
	root, tags := path.Split(args)

	literal := e.cfg.FindLiteral()
	if c.Flags().Changed(extension.FlagLiteral) {
		literal, _ = c.Flags().GetBool(extension.FlagLiteral)
	}
	name, _ := c.Flags().GetString(extension.FlagName)
	pathsOnly, _ := c.Flags().GetBool(extension.FlagPaths)

	l := log.Event("tag:find", "find").
		Author(cmd.Author()).
		Path(root).
		Attribute(e.svc.Attribute()).
		Detail("tags", tags).
		Detail("literal", literal).
		Detail("name", name)

	result, err := find.Run(ctx, writer(), e.svc, root, tags, find.Options{Literal: literal, Name: name, PathsOnly: pathsOnly})
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("find %q: %w", root, err))
	}

	l.Detail("matches", len(result.Matches)).
		Detail("skipped", result.Skipped).
		Write(nil)

	return cmd.PrintJSON(result)
}
