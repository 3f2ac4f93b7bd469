// Copyright (c) Microsoft. All rights reserved.

// Package ecommerce holds the commerce domain behind the agents: the
// product catalog, brand guidelines, and deterministic content checks,
// plus [agentic.Tool] wrappers exposing them to a model.
//
// Lookups report business outcomes in the result payload rather than as
// Go errors. A missing product yields {"error": "Product not found"} so
// the model can react to it inside the conversation.
package ecommerce
