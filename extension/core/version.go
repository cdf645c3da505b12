// version.go implements the version command.

package core

import (
	"fmt"

	"github.com/jpl-au/ftag/cmd"
	"github.com/jpl-au/ftag/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the build tag, build time, git commit, Go version and platform.

With --short only the build tag is printed, which suits scripts that check
for a minimum ftag release.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.Get()
			short, _ := c.Flags().GetBool("short")
			switch {
			case cmd.JSON() && short:
				return cmd.PrintJSON(map[string]string{"build_tag": version.Short()})
			case cmd.JSON():
				return cmd.PrintJSON(info)
			case short:
				fmt.Fprintln(cmd.Out(), version.Short())
			default:
				fmt.Fprint(cmd.Out(), info.String())
			}
			return nil
		},
	}
	c.Flags().Bool("short", false, "Print only the build tag")
	return c
}
