// Copyright (c) Microsoft. All rights reserved.

package agentic

import (
	"context"
	"encoding/json"
	"sync"
)

// Registry is the fixed mapping from tool name to invocable capability.
// It is built once at startup, after which it is effectively read-only
// and safe to share across concurrently running agents.
//
// Tool order is registration order and is stable for the lifetime of the
// registry, so the schema list advertised to the model is identical on
// every round-trip.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Tool
	order  []Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Tool)}
}

// Register adds tools to the registry. It fails with [ErrDuplicateTool]
// if a name is already taken; tools preceding the duplicate stay
// registered.
func (r *Registry) Register(tools ...Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range tools {
		name := t.Name()
		if name == "" {
			return &ToolError{ToolName: name, Message: "empty name", Err: ErrTool}
		}
		if _, exists := r.byName[name]; exists {
			return &ToolError{ToolName: name, Message: "already registered", Err: ErrDuplicateTool}
		}
		r.byName[name] = t
		r.order = append(r.order, t)
	}
	return nil
}

// Tools returns the registered tools in registration order. The returned
// slice is a copy; successive calls within one process observe the same
// order.
func (r *Registry) Tools() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cp := make([]Tool, len(r.order))
	copy(cp, r.order)
	return cp
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Resolve looks up a tool by name and validates raw arguments against its
// declared schema. It fails with [ErrUnknownTool] or [ErrInvalidArguments];
// both are dispatch-contract violations, distinct from a tool returning a
// business-level error value.
func (r *Registry) Resolve(name string, args json.RawMessage) (Tool, error) {
	r.mu.RLock()
	t, ok := r.byName[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &ToolError{ToolName: name, Message: "not registered", Err: ErrUnknownTool}
	}
	if err := validateArguments(name, t.Parameters(), args); err != nil {
		return nil, err
	}
	return t, nil
}

// Dispatch resolves a tool by name, validates the arguments, and invokes
// it. The result value may itself encode a business failure (for example
// a "not found" payload); that is a successful dispatch.
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) (any, error) {
	t, err := r.Resolve(name, args)
	if err != nil {
		return nil, err
	}
	return t.Invoke(ctx, args)
}
