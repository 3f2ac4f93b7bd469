// Copyright (c) Microsoft. All rights reserved.

// Package agentic provides the core building blocks for tool-calling
// agents: a conversation data model, a tool registry, and the bounded
// dispatch loop that drives a chat model until it produces a final
// answer with no further tool requests.
//
// # Quick Start
//
// Create a ChatClient (e.g., from the openai package) and build an Agent:
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"), openai.WithModel("gpt-4o"))
//
//	agent := agentic.NewAgent(client,
//	    agentic.WithName("copywriter"),
//	    agentic.WithInstructions("You are an e-shop marketing copywriter."),
//	    agentic.WithTools(productTool, discountTool),
//	)
//
//	resp, err := agent.Run(ctx, []agentic.Message{
//	    agentic.NewUserMessage("Write a campaign text for product 202."),
//	})
//
// # Architecture
//
//   - [Message] and [Conversation]: the append-only conversation state
//     exchanged with the model. Message bodies are polymorphic [Content]
//     values; tool requests and results are [FunctionCallContent] and
//     [FunctionResultContent].
//   - [Registry]: the fixed name → tool mapping advertised to the model
//     and used to dispatch requested calls, with argument validation at
//     the boundary.
//   - [Agent]: composes a [ChatClient] with a registry, instructions and
//     middleware, and runs the dispatch loop.
//   - Middleware: three levels (Agent, Chat, Function) for cross-cutting
//     concerns such as logging and transport retries.
//
// # Tools
//
// Use [NewTypedTool] for type-safe tools with automatic JSON Schema
// generation:
//
//	type ProductArgs struct {
//	    ProductID string `json:"product_id" jsonschema:"description=Product ID such as '101',required"`
//	}
//
//	tool := agentic.NewTypedTool("get_product_info", "Get product information.",
//	    func(ctx context.Context, args ProductArgs) (any, error) {
//	        return ecommerce.ProductInfo(args.ProductID), nil
//	    },
//	)
//
// # Loop semantics
//
// One iteration of the loop is a single model round-trip. A response
// that requests tools has every request dispatched in the order listed,
// each producing exactly one tool-role message, all appended before the
// next round-trip. A response with no tool requests ends the loop. After
// [LoopConfig.MaxIterations] round-trips without convergence the agent
// fails with a [MaxIterationsError] carrying the full conversation.
// Unknown tool names and malformed arguments never abort the loop; they
// fold into error-shaped tool results the model can react to.
package agentic
