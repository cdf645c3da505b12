// set.go implements the "ftag set", "ftag rm" and "ftag ls" commands.

package tag

import (
	"fmt"

	"github.com/jpl-au/ftag/cmd"
	"github.com/jpl-au/ftag/extension"
	"github.com/jpl-au/ftag/internal/log"
	"github.com/jpl-au/ftag/internal/path"
	"github.com/jpl-au/ftag/internal/tag"
	"github.com/spf13/cobra"
)

func (e *Extension) newSetCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "set [path] [tags...]",
		Short: "Add tags to a file or directory",
		Long: `Add tags to path (default "."). Tags are lower-cased and appended in
order; tags already present are left alone. Tags may not contain commas.

  ftag set notes.txt work urgent
  ftag set --dry-run notes.txt home   # show the change without writing it`,
		RunE: e.runSet,
	}
	c.Flags().Bool(extension.FlagDryRun, false, "Show the change without writing it")
	return c
}

func (e *Extension) newRmCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "rm [path] [tags...]",
		Short: "Remove tags from a file or directory",
		Long: `Remove tags from path (default "."). Tags are compared exactly as given,
without lower-casing, so "rm notes.txt FOO" leaves a stored "foo" in place.
Removing the last tag leaves an empty attribute behind.

  ftag rm notes.txt urgent`,
		RunE: e.runRm,
	}
	c.Flags().Bool(extension.FlagDryRun, false, "Show the change without writing it")
	return c
}

func (e *Extension) newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [path]",
		Short: "List the tags of a file or directory",
		Long:  `Print the tags stored on path (default "."), one per line, in the order they were added.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  e.runLs,
	}
}

func (e *Extension) runSet(c *cobra.Command, args []string) error {
	ctx := c.Context()
	p, tags := path.Split(args)
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)

	l := log.Event("tag:set", "set").
		Author(cmd.Author()).
		Path(p).
		Attribute(e.svc.Attribute()).
		Detail("tags", tags)
	if dryRun {
		l.Detail("dry_run", true)
	}

	result, err := tag.Set(ctx, writer(), e.svc, p, tags, tag.Options{DryRun: dryRun, Colour: cmd.Colour(), Source: "cli"})
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("set %q: %w", p, err))
	}

	l.Detail("added", result.Added).Write(nil)

	return cmd.PrintJSON(result)
}

func (e *Extension) runRm(c *cobra.Command, args []string) error {
	ctx := c.Context()
	p, tags := path.Split(args)
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)

	l := log.Event("tag:rm", "remove").
		Author(cmd.Author()).
		Path(p).
		Attribute(e.svc.Attribute()).
		Detail("tags", tags)
	if dryRun {
		l.Detail("dry_run", true)
	}

	result, err := tag.Remove(ctx, writer(), e.svc, p, tags, tag.Options{DryRun: dryRun, Colour: cmd.Colour(), Source: "cli"})
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("rm %q: %w", p, err))
	}

	l.Detail("removed", result.Removed).Write(nil)

	return cmd.PrintJSON(result)
}

func (e *Extension) runLs(c *cobra.Command, args []string) error {
	ctx := c.Context()
	p, _ := path.Split(args)

	l := log.Event("tag:ls", "list").
		Author(cmd.Author()).
		Path(p).
		Attribute(e.svc.Attribute())

	result, err := tag.List(ctx, writer(), e.svc, p)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("ls %q: %w", p, err))
	}

	l.Detail("count", len(result.Tags)).Write(nil)

	return cmd.PrintJSON(result)
}
