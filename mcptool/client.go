// Copyright (c) Microsoft. All rights reserved.

// Package mcptool connects to a Model Context Protocol server over stdio
// and exposes its tools as [agentic.Tool] values, so remote capabilities
// participate in the dispatch loop like local functions.
package mcptool

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
)

// request is a JSON-RPC 2.0 request frame.
type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// response is a JSON-RPC 2.0 response frame.
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
	Method  string          `json:"method,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// toolInfo is one entry of a tools/list result.
type toolInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// callResult is the result of a tools/call request.
type callResult struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	IsError bool `json:"isError,omitempty"`
}

// Client talks JSON-RPC to an MCP server over a line-delimited stream,
// usually the stdin/stdout of a subprocess started with [Connect].
type Client struct {
	stdin  io.WriteCloser
	stdout io.ReadCloser
	cmd    *exec.Cmd
	logger *slog.Logger

	mu       sync.Mutex
	nextID   int64
	respChan chan *response
}

// Connect starts the given command and performs the MCP initialize
// handshake over its stdio.
func Connect(ctx context.Context, command string, args []string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.DebugContext(ctx, "starting MCP server process", "command", command, "args", args)

	cmd := exec.CommandContext(ctx, command, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("create stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		stdin.Close()
		return nil, fmt.Errorf("create stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, fmt.Errorf("start command: %w", err)
	}
	logger.DebugContext(ctx, "MCP server process started", "pid", cmd.Process.Pid)

	c := newClient(stdin, stdout, logger)
	c.cmd = cmd

	if err := c.initialize(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("initialize: %w", err)
	}
	return c, nil
}

// newClient wires a client onto an existing stream pair. Tests use this
// with in-memory pipes.
func newClient(stdin io.WriteCloser, stdout io.ReadCloser, logger *slog.Logger) *Client {
	c := &Client{
		stdin:    stdin,
		stdout:   stdout,
		logger:   logger,
		nextID:   1,
		respChan: make(chan *response, 1),
	}
	go c.readResponses()
	return c
}

// readResponses pumps response frames off the stream. Non-JSON lines and
// notifications are skipped; only frames carrying a result or error are
// forwarded.
func (c *Client) readResponses() {
	reader := bufio.NewReader(c.stdout)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err != io.EOF {
				c.logger.Warn("read response", "error", err)
			}
			close(c.respChan)
			return
		}
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var resp response
		if err := json.Unmarshal(line, &resp); err != nil {
			// Stray startup output on stdout; skip it.
			continue
		}

		if resp.Method != "" {
			c.logger.Debug("notification", "method", resp.Method)
			continue
		}
		if resp.Result == nil && resp.Error == nil {
			continue
		}
		c.respChan <- &resp
	}
}

// roundTrip sends one request and waits for the matching response.
func (c *Client) roundTrip(ctx context.Context, method string, params any) (json.RawMessage, error) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	req := request{JSONRPC: "2.0", ID: id, Method: method, Params: params}

	data, err := json.Marshal(req)
	if err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	_, err = c.stdin.Write(append(data, '\n'))
	c.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}

	c.logger.DebugContext(ctx, "request sent", "method", method, "id", id)

	for {
		select {
		case resp, ok := <-c.respChan:
			if !ok {
				return nil, fmt.Errorf("%s: connection closed", method)
			}
			if resp.ID != id {
				// Stale response from an abandoned request; drop it.
				continue
			}
			if resp.Error != nil {
				return nil, fmt.Errorf("%s: %w", method, resp.Error)
			}
			return resp.Result, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// initialize performs the MCP handshake.
func (c *Client) initialize(ctx context.Context) error {
	params := map[string]any{
		"protocolVersion": "1.0.0",
		"capabilities":    map[string]any{"experimental": map[string]any{}},
		"clientInfo": map[string]any{
			"name":    "commerce-agents",
			"version": "0.1.0",
		},
	}
	_, err := c.roundTrip(ctx, "initialize", params)
	return err
}

// listTools queries the server for its advertised tools.
func (c *Client) listTools(ctx context.Context) ([]toolInfo, error) {
	result, err := c.roundTrip(ctx, "tools/list", map[string]any{})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Tools []toolInfo `json:"tools"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		return nil, fmt.Errorf("tools/list: parse result: %w", err)
	}
	return parsed.Tools, nil
}

// callTool invokes a remote tool and returns its text content.
func (c *Client) callTool(ctx context.Context, name string, args json.RawMessage) (string, error) {
	params := map[string]any{
		"name":      name,
		"arguments": args,
	}
	result, err := c.roundTrip(ctx, "tools/call", params)
	if err != nil {
		return "", err
	}

	var parsed callResult
	if err := json.Unmarshal(result, &parsed); err != nil {
		return "", fmt.Errorf("tools/call: parse result: %w", err)
	}

	var b strings.Builder
	for _, item := range parsed.Content {
		if item.Type == "" || item.Type == "text" {
			b.WriteString(item.Text)
		}
	}
	if parsed.IsError {
		return "", fmt.Errorf("tools/call %s: %s", name, b.String())
	}
	return b.String(), nil
}

// Close tears down the stream and, when the client owns a subprocess,
// waits for it to exit.
func (c *Client) Close() error {
	c.logger.Debug("closing MCP client")

	c.stdin.Close()
	c.stdout.Close()

	if c.cmd != nil {
		if err := c.cmd.Wait(); err != nil {
			return fmt.Errorf("wait for server process: %w", err)
		}
	}
	return nil
}
