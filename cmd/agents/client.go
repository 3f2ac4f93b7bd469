// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/microsoft/commerce-agents/openai"
)

// newChatClient creates an OpenAI-compatible client, choosing between
// Azure AI Foundry and direct OpenAI based on which environment
// variables are set.
//
// Usage with OpenAI:
//
//	export OPENAI_API_KEY=sk-...
//
// Usage with Azure AI Foundry:
//
//	export AZURE_FOUNDRY_ENDPOINT=https://<project>.services.ai.azure.com/openai/deployments/<deployment>
//	export AZURE_FOUNDRY_KEY=<your-key>           # omit to use Azure AD auth
//	export AZURE_FOUNDRY_MODEL=gpt-4o             # optional
func newChatClient(model string) (*openai.Client, error) {
	// Azure AI Foundry — uses the OpenAI-compatible endpoint.
	if endpoint := os.Getenv("AZURE_FOUNDRY_ENDPOINT"); endpoint != "" {
		key := os.Getenv("AZURE_FOUNDRY_KEY")
		if m := os.Getenv("AZURE_FOUNDRY_MODEL"); m != "" {
			model = m
		}

		// If no key provided, use Azure AD authentication.
		if key == "" {
			cred, err := azidentity.NewDefaultAzureCredential(nil)
			if err != nil {
				return nil, fmt.Errorf("create Azure credential: %w", err)
			}
			return openai.New("", // empty key when using Azure AD
				openai.WithBaseURL(endpoint),
				openai.WithModel(model),
				openai.WithAzureCredential(cred),
			), nil
		}

		return openai.New(key,
			openai.WithBaseURL(endpoint),
			openai.WithModel(model),
			openai.WithHeaders(map[string]string{
				"api-key": key, // Azure uses api-key header instead of Bearer token
			}),
		), nil
	}

	// Direct OpenAI
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("set OPENAI_API_KEY or AZURE_FOUNDRY_ENDPOINT")
	}
	return openai.New(apiKey,
		openai.WithModel(model),
	), nil
}
