// Copyright (c) Microsoft. All rights reserved.

// Package toolserver exposes [agentic.Tool] collections over the Model
// Context Protocol on stdio, so other processes can call the commerce
// content tools.
package toolserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/microsoft/commerce-agents/agentic"
)

// Server bridges a set of registered tools onto an MCP stdio server.
type Server struct {
	server *server.MCPServer
	logger *slog.Logger
}

// New creates a Server advertising the given tools. Tool schemas are
// translated from their JSON Schema parameter declarations.
func New(name, version string, tools []agentic.Tool, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		server: server.NewMCPServer(
			name,
			version,
			server.WithToolCapabilities(true),
			server.WithLogging(),
		),
		logger: logger,
	}

	for _, tool := range tools {
		mcpTool, err := toMCPTool(tool)
		if err != nil {
			return nil, fmt.Errorf("tool %q: %w", tool.Name(), err)
		}
		s.server.AddTool(mcpTool, s.makeHandler(tool))
		logger.Debug("registered tool", "name", tool.Name())
	}

	s.server.AddNotificationHandler(s.handleNotification)

	return s, nil
}

// toMCPTool translates a tool declaration into the MCP wire shape.
func toMCPTool(t agentic.Tool) (mcp.Tool, error) {
	var schema struct {
		Type       string                 `json:"type"`
		Properties map[string]interface{} `json:"properties"`
		Required   []string               `json:"required"`
	}
	if params := t.Parameters(); len(params) > 0 {
		if err := json.Unmarshal(params, &schema); err != nil {
			return mcp.Tool{}, fmt.Errorf("parse parameter schema: %w", err)
		}
	}
	if schema.Type == "" {
		schema.Type = "object"
	}

	return mcp.Tool{
		Name:        t.Name(),
		Description: t.Description(),
		InputSchema: mcp.ToolInputSchema{
			Type:       schema.Type,
			Properties: schema.Properties,
			Required:   schema.Required,
		},
	}, nil
}

// makeHandler adapts a tool invocation to the MCP call contract. Results
// are rendered as text content; strings pass through, everything else is
// JSON-encoded.
func (s *Server) makeHandler(t agentic.Tool) func(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
	return func(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
		raw, err := json.Marshal(arguments)
		if err != nil {
			return nil, fmt.Errorf("marshal arguments: %w", err)
		}

		s.logger.Debug("tool call", "name", t.Name(), "arguments", string(raw))

		result, err := t.Invoke(context.Background(), raw)
		if err != nil {
			s.logger.Warn("tool call failed", "name", t.Name(), "error", err)
			return nil, err
		}

		text, err := renderResult(result)
		if err != nil {
			return nil, fmt.Errorf("render result: %w", err)
		}

		return &mcp.CallToolResult{
			Content: []interface{}{
				mcp.TextContent{
					Type: "text",
					Text: text,
				},
			},
		}, nil
	}
}

func renderResult(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *Server) handleNotification(notification mcp.JSONRPCNotification) {
	s.logger.Debug("notification", "method", notification.Method)
}

// Serve runs the server on stdin/stdout until the stream closes.
func (s *Server) Serve() error {
	s.logger.Info("starting MCP tool server")
	if err := server.ServeStdio(s.server); err != nil {
		return fmt.Errorf("serve stdio: %w", err)
	}
	s.logger.Info("MCP tool server stopped")
	return nil
}
