// Package tag provides the tag extension for ftag.
// It registers commands: find, ls, set, rm.
package tag

import (
	"io"

	"github.com/jpl-au/ftag/cmd"
	"github.com/jpl-au/ftag/extension"
	"github.com/jpl-au/ftag/internal/config"
	"github.com/jpl-au/ftag/internal/log"
	"github.com/jpl-au/ftag/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the tag extension.
type Extension struct {
	svc service.Service
	cfg *config.Config
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.EventHandler  = (*Extension)(nil)
)

// Name returns "tag" - this extension provides the tagging commands.
func (e *Extension) Name() string { return "tag" }

// Init receives the shared service and config from the extension context.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the tagging commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newFindCmd(),
		e.newLsCmd(),
		e.newSetCmd(),
		e.newRmCmd(),
	}
}

// MCPTools returns nil - MCP tagging tools are in internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// HandleEvent records each individual tag change in the audit log. The
// command's own entry covers the invocation; these entries make per-tag
// history queryable.
func (e *Extension) HandleEvent(_ extension.Context, evt extension.Event) error {
	ev, ok := evt.(extension.TagEvent)
	if !ok {
		return nil
	}
	log.Event("tag:observed_"+string(ev.EventType()), "event").
		Path(ev.Path).
		Attribute(e.attribute()).
		Detail("tag", ev.Tag).
		Detail("source", ev.Source).
		Write(nil)
	return nil
}

func (e *Extension) attribute() string {
	if e.svc == nil {
		return ""
	}
	return e.svc.Attribute()
}

// writer returns where human-readable output goes: discarded when the
// result is printed as JSON instead.
func writer() io.Writer {
	if cmd.JSON() {
		return io.Discard
	}
	return cmd.Out()
}
