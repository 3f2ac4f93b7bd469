// Copyright (c) Microsoft. All rights reserved.

package agentic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// LoopConfig controls the tool dispatch loop.
type LoopConfig struct {
	// MaxIterations is the maximum number of model round-trips. It bounds
	// round-trips only; a single round-trip may carry any number of tool
	// calls. Default: 10.
	MaxIterations int

	// MaxConsecutiveErrors is the number of consecutive failed tool
	// invocations tolerated before the loop aborts. Resolution failures
	// (unknown name, bad arguments) count toward it too. Default: 3.
	MaxConsecutiveErrors int

	// IncludeDetailedErrors includes full tool execution error text in
	// the result sent back to the model. When false, a generic message is
	// used. Resolution failures always carry their reason, so the model
	// can correct the name or arguments on the next turn.
	IncludeDetailedErrors bool
}

// DefaultLoopConfig returns the default configuration.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		MaxIterations:        10,
		MaxConsecutiveErrors: 3,
	}
}

// runToolLoop drives the model until it answers without requesting tools.
//
// Each iteration sends the full conversation, inspects the response for
// function calls, dispatches every call in the order listed (appending
// one tool-role message per call), and goes around again. The assistant
// message carrying the requests is appended verbatim before any result,
// so the model's own record of what it asked for is preserved. A response
// with no calls is the final answer and the only success exit.
//
// Resolution and invocation failures fold into error-shaped result
// payloads rather than aborting the run; only a run of consecutive
// failures, context cancellation, a transport error, or budget
// exhaustion terminate the loop with an error.
func runToolLoop(
	ctx context.Context,
	chat ChatHandler,
	conv *Conversation,
	registry *Registry,
	opts *ChatOptions,
	config LoopConfig,
	fnMiddleware []FunctionMiddleware,
) (*ChatResponse, error) {
	if config.MaxIterations <= 0 {
		config.MaxIterations = 10
	}
	if config.MaxConsecutiveErrors <= 0 {
		config.MaxConsecutiveErrors = 3
	}

	invoke := chainFunctionMiddleware(func(ctx context.Context, t Tool, args json.RawMessage) (any, error) {
		return t.Invoke(ctx, args)
	}, fnMiddleware...)

	consecutiveErrors := 0

	for iteration := 0; iteration < config.MaxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		resp, err := chat(ctx, conv.Messages(), opts)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
			}
			return nil, err
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			return resp, nil
		}

		slog.DebugContext(ctx, "dispatching tool calls",
			"iteration", iteration,
			"call_count", len(calls),
		)

		// The requesting message(s) go in first, verbatim.
		conv.Append(resp.Messages...)

		for _, call := range calls {
			result, dispatchErr := dispatchCall(ctx, registry, invoke, call)
			if dispatchErr != nil {
				if ctx.Err() != nil {
					return nil, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
				}
				consecutiveErrors++
				slog.WarnContext(ctx, "tool dispatch failed",
					"tool", call.Name,
					"error", dispatchErr,
					"consecutive_errors", consecutiveErrors,
				)
				if consecutiveErrors >= config.MaxConsecutiveErrors {
					return nil, fmt.Errorf("%w: %d consecutive tool failures, last: %w",
						ErrToolExecution, consecutiveErrors, dispatchErr)
				}
				conv.Append(NewToolMessage(call.CallID, errorPayload(dispatchErr, config.IncludeDetailedErrors)))
				continue
			}

			consecutiveErrors = 0
			conv.Append(NewToolMessage(call.CallID, result))
		}
	}

	return nil, &MaxIterationsError{
		Iterations:   config.MaxIterations,
		Conversation: conv.Messages(),
	}
}

// dispatchCall resolves one requested call against the registry and runs
// it through the function middleware chain.
func dispatchCall(ctx context.Context, registry *Registry, invoke FunctionHandler, call *FunctionCallContent) (any, error) {
	tool, err := registry.Resolve(call.Name, json.RawMessage(call.Arguments))
	if err != nil {
		return nil, err
	}
	return invoke(ctx, tool, json.RawMessage(call.Arguments))
}

// errorPayload shapes a dispatch failure into a result value the model
// can see and react to.
func errorPayload(err error, detailed bool) map[string]any {
	var te *ToolError
	switch {
	case errors.Is(err, ErrUnknownTool):
		if errors.As(err, &te) {
			return map[string]any{"error": fmt.Sprintf("unknown tool: %s", te.ToolName)}
		}
		return map[string]any{"error": "unknown tool"}
	case errors.Is(err, ErrInvalidArguments):
		return map[string]any{"error": fmt.Sprintf("invalid arguments: %v", err)}
	case detailed:
		return map[string]any{"error": err.Error()}
	default:
		return map[string]any{"error": "tool invocation failed"}
	}
}
