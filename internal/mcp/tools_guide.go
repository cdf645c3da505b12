// tools_guide.go implements the ftag_guide tool.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/ftag/guide"
	"github.com/jpl-au/ftag/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getGuide returns a guide page, prefixed with the attribute this server
// reads and writes. An unknown topic returns the topic index.
func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:guide", "read").
		Author("mcp").
		Attribute(h.svc.Attribute()).
		Detail("topic", topic).
		Write(err)

	if err != nil {
		topics, listErr := guide.Topics()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            fmt.Sprintf("no guide topic %q", topic),
			"available_topics": topics,
		})
	}

	header := fmt.Sprintf("> This server stores tags in the `%s` extended attribute.\n\n", h.svc.Attribute())
	return mcp.NewToolResultText(header + content), nil
}
