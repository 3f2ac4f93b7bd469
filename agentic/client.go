// Copyright (c) Microsoft. All rights reserved.

package agentic

import "context"

// ChatClient is the interface for the external reasoning engine.
// Provider packages (e.g., openai) implement this interface.
//
// A call blocks until the model returns one complete assistant message,
// which may carry text, tool call requests, or both. Transport, auth and
// malformed-response failures are returned as errors wrapping the
// [ErrEngine] family; the dispatch loop never retries them itself.
type ChatClient interface {
	Response(ctx context.Context, messages []Message, opts *ChatOptions) (*ChatResponse, error)
}
