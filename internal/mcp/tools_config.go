// tools_config.go implements the MCP tool for reading configuration.
//
// Config is read-only over MCP. The attribute name is fixed when the server
// starts, so changing it from a client would silently diverge from what the
// running server uses.

package mcp

import (
	"context"

	"github.com/jpl-au/ftag/internal/config"
	"github.com/jpl-au/ftag/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// configGet handles ftag_config_get tool calls.
func (h *handlers) configGet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Event("mcp:config_get", "get").Author("mcp").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	key := getString(req, "key", "")
	if key == "" {
		log.Event("mcp:config_get", "list").Author("mcp").Write(nil)
		return jsonResult(map[string]any{
			"config":    cfg.All(),
			"attribute": h.svc.Attribute(),
		})
	}

	v, err := cfg.Get(key)

	log.Event("mcp:config_get", "get").Author("mcp").Detail("key", key).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]string{key: v})
}
