// Copyright (c) Microsoft. All rights reserved.

package agentic

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrAgent is the base error for agent-related failures.
	ErrAgent = errors.New("agent error")

	// ErrInitialization indicates an agent configuration or setup failure.
	ErrInitialization = fmt.Errorf("%w: initialization", ErrAgent)

	// ErrExecution indicates a runtime failure during an agent run.
	ErrExecution = fmt.Errorf("%w: execution", ErrAgent)

	// ErrMaxIterations indicates the dispatch loop exhausted its round-trip
	// budget without the model producing a tool-free answer. The concrete
	// error is a [MaxIterationsError] carrying the final conversation.
	ErrMaxIterations = fmt.Errorf("%w: max iterations", ErrExecution)

	// ErrCancelled indicates the caller aborted the run via context
	// cancellation or deadline.
	ErrCancelled = fmt.Errorf("%w: cancelled", ErrExecution)

	// ErrEngine is the base error for chat backend failures.
	ErrEngine = errors.New("engine error")

	// ErrContentFilter indicates the request was rejected by a content filter.
	ErrContentFilter = fmt.Errorf("%w: content filter", ErrEngine)

	// ErrInvalidRequest indicates the request was malformed or invalid.
	ErrInvalidRequest = fmt.Errorf("%w: invalid request", ErrEngine)

	// ErrInvalidResponse indicates the backend returned an unexpected response.
	ErrInvalidResponse = fmt.Errorf("%w: invalid response", ErrEngine)

	// ErrAuth indicates an authentication or authorization failure.
	ErrAuth = fmt.Errorf("%w: authentication", ErrEngine)

	// ErrTool is the base error for tool-related failures.
	ErrTool = errors.New("tool error")

	// ErrDuplicateTool indicates a registration under a name already in use.
	ErrDuplicateTool = fmt.Errorf("%w: duplicate name", ErrTool)

	// ErrUnknownTool indicates a dispatch naming a tool absent from the registry.
	ErrUnknownTool = fmt.Errorf("%w: unknown tool", ErrTool)

	// ErrInvalidArguments indicates arguments that fail the tool's
	// declared parameter schema.
	ErrInvalidArguments = fmt.Errorf("%w: invalid arguments", ErrTool)

	// ErrToolExecution indicates a failure inside a tool implementation.
	ErrToolExecution = fmt.Errorf("%w: execution", ErrTool)
)

// EngineError provides rich context for chat backend failures.
// Use errors.As to extract it from a wrapped error chain.
type EngineError struct {
	StatusCode int
	Message    string
	Code       string
	Err        error
}

func (e *EngineError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("engine error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("engine error %d: %s", e.StatusCode, e.Message)
}

func (e *EngineError) Unwrap() error { return e.Err }

// ToolError provides context for tool registration and dispatch failures.
type ToolError struct {
	ToolName string
	Message  string
	Err      error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("tool %q: %s", e.ToolName, e.Message)
}

func (e *ToolError) Unwrap() error { return e.Err }

// MaxIterationsError is the terminal failure of a dispatch loop that
// performed its full round-trip budget without converging. Conversation
// holds the complete message sequence at the point of exhaustion, for
// diagnosis.
type MaxIterationsError struct {
	Iterations   int
	Conversation []Message
}

func (e *MaxIterationsError) Error() string {
	return fmt.Sprintf("no final answer after %d round-trips", e.Iterations)
}

func (e *MaxIterationsError) Unwrap() error { return ErrMaxIterations }
