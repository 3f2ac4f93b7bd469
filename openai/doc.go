// Copyright (c) Microsoft. All rights reserved.

// Package openai provides an [agentic.ChatClient] implementation for the
// OpenAI Chat Completions API.
//
// Create a client and pass it to [agentic.NewAgent]:
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"),
//	    openai.WithModel("gpt-4o"),
//	)
//
//	agent, err := agentic.NewAgent(client)
//
// The client supports tool/function calling and all standard ChatOptions.
// Backend failures are reported as [agentic.EngineError] values wrapping
// the [agentic.ErrEngine] sentinel family, so callers can branch with
// errors.Is and recover details with errors.As.
//
// # Configuration
//
// Use functional options to configure the client:
//
//   - [WithModel]: set the default model
//   - [WithBaseURL]: override the API endpoint (e.g., Azure OpenAI)
//   - [WithAzureCredential]: authenticate with an Azure AD credential
//   - [WithOrganization]: set the OpenAI organization header
//   - [WithHTTPClient]: provide a custom http.Client
//   - [WithHeaders]: add custom headers to every request
//
// # Testing
//
// The client uses an unexported transport interface internally.
// For testing, provide a mock http.Client via [WithHTTPClient]
// with a custom RoundTripper.
package openai
