// Copyright (c) Microsoft. All rights reserved.

package mcptool

import (
	"context"
	"encoding/json"

	"github.com/microsoft/commerce-agents/agentic"
)

// remoteTool is an [agentic.Tool] backed by one tool on a connected MCP
// server. Results arrive as text, which suits a model-facing tool; a
// protocol failure surfaces as an invocation error.
type remoteTool struct {
	client      *Client
	name        string
	description string
	schema      json.RawMessage
}

var _ agentic.Tool = (*remoteTool)(nil)

func (t *remoteTool) Name() string                { return t.name }
func (t *remoteTool) Description() string         { return t.description }
func (t *remoteTool) Parameters() json.RawMessage { return t.schema }

func (t *remoteTool) Invoke(ctx context.Context, args json.RawMessage) (any, error) {
	text, err := t.client.callTool(ctx, t.name, args)
	if err != nil {
		return nil, &agentic.ToolError{
			ToolName: t.name,
			Message:  err.Error(),
			Err:      agentic.ErrToolExecution,
		}
	}
	return text, nil
}

// Tools discovers the server's advertised tools and wraps each one for
// registration in an [agentic.Registry].
func (c *Client) Tools(ctx context.Context) ([]agentic.Tool, error) {
	infos, err := c.listTools(ctx)
	if err != nil {
		return nil, err
	}

	tools := make([]agentic.Tool, 0, len(infos))
	for _, info := range infos {
		tools = append(tools, &remoteTool{
			client:      c,
			name:        info.Name,
			description: info.Description,
			schema:      info.InputSchema,
		})
	}
	return tools, nil
}
