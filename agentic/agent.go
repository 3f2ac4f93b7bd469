// Copyright (c) Microsoft. All rights reserved.

package agentic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Agent is the top-level conversational agent. It composes a [ChatClient]
// with a tool [Registry], instructions and middleware, and drives the
// dispatch loop on every run.
//
// Create one with [NewAgent] and functional options:
//
//	agent := agentic.NewAgent(client,
//	    agentic.WithName("copywriter"),
//	    agentic.WithInstructions("You are an e-shop marketing copywriter."),
//	    agentic.WithTools(productTool, discountTool),
//	)
type Agent struct {
	id             string
	name           string
	description    string
	client         ChatClient
	instructions   string
	registry       *Registry
	pendingTools   []Tool
	defaultOptions *ChatOptions
	loopConfig     LoopConfig
	agentMW        []AgentMiddleware
	chatMW         []ChatMiddleware
	functionMW     []FunctionMiddleware
	initErr        error
}

// AgentOption configures an [Agent] via [NewAgent].
type AgentOption func(*Agent)

// WithName sets the agent's display name.
func WithName(name string) AgentOption {
	return func(a *Agent) { a.name = name }
}

// WithDescription sets the agent's description.
func WithDescription(desc string) AgentOption {
	return func(a *Agent) { a.description = desc }
}

// WithInstructions sets the system instructions for the agent.
func WithInstructions(instructions string) AgentOption {
	return func(a *Agent) { a.instructions = instructions }
}

// WithTools registers tools with the agent's registry. A duplicate name
// surfaces as an [ErrInitialization] failure on the first Run.
func WithTools(tools ...Tool) AgentOption {
	return func(a *Agent) { a.pendingTools = append(a.pendingTools, tools...) }
}

// WithRegistry shares a pre-built registry with the agent. Tools added
// through [WithTools] are registered on top of it.
func WithRegistry(r *Registry) AgentOption {
	return func(a *Agent) { a.registry = r }
}

// WithDefaultOptions sets default [ChatOptions] for all requests.
func WithDefaultOptions(opts *ChatOptions) AgentOption {
	return func(a *Agent) { a.defaultOptions = opts }
}

// WithLoopConfig overrides the default [LoopConfig] for the dispatch loop.
func WithLoopConfig(cfg LoopConfig) AgentOption {
	return func(a *Agent) { a.loopConfig = cfg }
}

// WithAgentMiddleware adds [AgentMiddleware] to the agent pipeline.
func WithAgentMiddleware(mws ...AgentMiddleware) AgentOption {
	return func(a *Agent) { a.agentMW = append(a.agentMW, mws...) }
}

// WithChatMiddleware adds [ChatMiddleware] around every model round-trip.
func WithChatMiddleware(mws ...ChatMiddleware) AgentOption {
	return func(a *Agent) { a.chatMW = append(a.chatMW, mws...) }
}

// WithFunctionMiddleware adds [FunctionMiddleware] to the tool invocation pipeline.
func WithFunctionMiddleware(mws ...FunctionMiddleware) AgentOption {
	return func(a *Agent) { a.functionMW = append(a.functionMW, mws...) }
}

// NewAgent creates an Agent with the given [ChatClient] and options.
func NewAgent(client ChatClient, opts ...AgentOption) *Agent {
	a := &Agent{
		id:         uuid.NewString(),
		client:     client,
		loopConfig: DefaultLoopConfig(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.registry == nil {
		a.registry = NewRegistry()
	}
	if err := a.registry.Register(a.pendingTools...); err != nil {
		a.initErr = err
	}
	a.pendingTools = nil
	return a
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() string { return a.id }

// Name returns the agent's display name.
func (a *Agent) Name() string { return a.name }

// Description returns the agent's description.
func (a *Agent) Description() string { return a.description }

// Registry returns the agent's tool registry.
func (a *Agent) Registry() *Registry { return a.registry }

// RunOption configures a single [Agent.Run] call.
type RunOption func(*runConfig)

type runConfig struct {
	options *ChatOptions
}

// WithRunOptions provides per-call [ChatOptions] overrides.
func WithRunOptions(opts *ChatOptions) RunOption {
	return func(c *runConfig) { c.options = opts }
}

// Run sends messages to the agent and blocks until the model produces a
// final answer with no further tool requests, executing requested tools
// in between.
//
// Terminal failures wrap [ErrExecution]; use errors.As with
// [MaxIterationsError] to recover the conversation after exhaustion, and
// errors.Is with [ErrCancelled] to distinguish a caller abort.
func (a *Agent) Run(ctx context.Context, messages []Message, opts ...RunOption) (*AgentResponse, error) {
	if a.initErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, a.initErr)
	}

	cfg := &runConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	wrapped := chainAgentMiddleware(a.handleRun, a.agentMW...)

	req := &AgentRequest{
		Messages: messages,
		Options:  cfg.options,
	}
	return wrapped(ctx, req)
}

// handleRun is the innermost agent handler, below the agent middleware.
func (a *Agent) handleRun(ctx context.Context, req *AgentRequest) (*AgentResponse, error) {
	chatOpts := a.prepareChatOptions(req.Options)
	conv := NewConversation(PrependInstructions(req.Messages, chatOpts.Instructions)...)

	slog.DebugContext(ctx, "agent run",
		"agent_id", a.id,
		"agent_name", a.name,
		"message_count", conv.Len(),
		"tool_count", len(chatOpts.Tools),
	)

	chat := chainChatMiddleware(a.client.Response, a.chatMW...)

	var chatResp *ChatResponse
	var err error
	if a.registry.Len() > 0 {
		chatResp, err = runToolLoop(ctx, chat, conv, a.registry, chatOpts, a.loopConfig, a.functionMW)
	} else {
		chatResp, err = chat(ctx, conv.Messages(), chatOpts)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecution, err)
	}

	return &AgentResponse{
		Messages:   chatResp.Messages,
		ResponseID: chatResp.ResponseID,
		AgentID:    a.id,
		Usage:      chatResp.Usage,
		Extra:      chatResp.Extra,
		Raw:        chatResp.Raw,
	}, nil
}

func (a *Agent) prepareChatOptions(override *ChatOptions) *ChatOptions {
	opts := MergeChatOptions(a.defaultOptions, override)

	opts.Tools = a.registry.Tools()

	if a.instructions != "" {
		if opts.Instructions != "" {
			opts.Instructions = a.instructions + "\n" + opts.Instructions
		} else {
			opts.Instructions = a.instructions
		}
	}
	return opts
}
