// Copyright (c) Microsoft. All rights reserved.

package agentic

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v5"
)

// RetryMiddleware returns a [ChatMiddleware] that retries transient
// engine failures with exponential backoff. Only rate limiting (429) and
// server-side errors (5xx) are retried; everything else is permanent.
// maxTries counts the initial attempt.
//
// The dispatch loop itself never retries; attach this to an agent or
// client when the caller wants a retry policy at the transport boundary.
func RetryMiddleware(maxTries uint) ChatMiddleware {
	return func(next ChatHandler) ChatHandler {
		return func(ctx context.Context, messages []Message, opts *ChatOptions) (*ChatResponse, error) {
			operation := func() (*ChatResponse, error) {
				resp, err := next(ctx, messages, opts)
				if err != nil && !retryable(err) {
					return nil, backoff.Permanent(err)
				}
				return resp, err
			}
			return backoff.Retry(ctx, operation,
				backoff.WithBackOff(backoff.NewExponentialBackOff()),
				backoff.WithMaxTries(maxTries),
			)
		}
	}
}

func retryable(err error) bool {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.StatusCode == 429 || ee.StatusCode >= 500
	}
	return false
}
