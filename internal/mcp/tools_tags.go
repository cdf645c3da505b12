// tools_tags.go implements MCP tools for tagging operations.
//
// Design: Tag operations are idempotent - adding an existing tag or removing
// a tag that is not present succeeds. This simplifies LLM workflows that may
// not track current tag state.

package mcp

import (
	"context"

	"github.com/jpl-au/ftag/internal/log"
	"github.com/jpl-au/ftag/internal/path"
	"github.com/jpl-au/ftag/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
)

// listTags handles ftag_list tool calls.
func (h *handlers) listTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	tags, err := h.svc.List(ctx, p)

	log.Event("mcp:list", "list").Author("mcp").Path(p).Attribute(h.svc.Attribute()).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if tags == nil {
		tags = []string{}
	}

	return jsonResult(map[string]any{"path": p, "tags": tags})
}

// setTags handles ftag_set tool calls.
func (h *handlers) setTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	tags := getStrings(req, "tags")
	dryRun := getBool(req, "dry_run", false)

	change, err := h.svc.Set(ctx, p, tags, service.Options{DryRun: dryRun, Source: "mcp"})

	log.Event("mcp:set", "set").Author("mcp").Path(p).Attribute(h.svc.Attribute()).
		Detail("tags", tags).Detail("dry_run", dryRun).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(change)
}

// removeTags handles ftag_remove tool calls.
func (h *handlers) removeTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	tags := getStrings(req, "tags")
	dryRun := getBool(req, "dry_run", false)

	change, err := h.svc.Remove(ctx, p, tags, service.Options{DryRun: dryRun, Source: "mcp"})

	log.Event("mcp:remove", "remove").Author("mcp").Path(p).Attribute(h.svc.Attribute()).
		Detail("tags", tags).Detail("dry_run", dryRun).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(change)
}

// findTags handles ftag_find tool calls.
func (h *handlers) findTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root := path.OrDefault(getString(req, "path", ""))
	tags := getStrings(req, "tags")
	literal := getBool(req, "literal", h.literal)
	name := getString(req, "name", "")

	result, err := h.svc.Find(ctx, root, tags, service.FindOptions{Literal: literal, Name: name})

	log.Event("mcp:find", "find").Author("mcp").Path(root).Attribute(h.svc.Attribute()).
		Detail("tags", tags).Detail("matches", len(result.Matches)).Detail("skipped", result.Skipped).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(result)
}
