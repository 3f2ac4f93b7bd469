// Copyright (c) Microsoft. All rights reserved.

package agentic

// ToolChoice controls how the model selects tools.
type ToolChoice string

const (
	ToolChoiceAuto     ToolChoice = "auto"
	ToolChoiceRequired ToolChoice = "required"
	ToolChoiceNone     ToolChoice = "none"
)

// ToolChoiceFunction returns a ToolChoice that forces the model to call
// the named function.
func ToolChoiceFunction(name string) ToolChoice {
	return ToolChoice("function:" + name)
}

// ChatOptions configures a single chat completion request.
// Pointer fields use nil to represent "unset" (use provider default).
type ChatOptions struct {
	ModelID      string
	Temperature  *float64
	TopP         *float64
	MaxTokens    *int
	Stop         []string
	Seed         *int
	Tools        []Tool
	ToolChoice   ToolChoice
	Instructions string
	User         string
	Metadata     map[string]string

	// Extra holds provider-specific options not covered by standard fields.
	Extra map[string]any
}

// MergeChatOptions produces a new ChatOptions by overlaying override values
// onto base. Nil or zero-value fields in override do not overwrite base.
// Instructions are concatenated; Metadata and Extra are merged with
// override keys winning. Tools are merged by name, base order first.
func MergeChatOptions(base, override *ChatOptions) *ChatOptions {
	if base == nil {
		if override == nil {
			return &ChatOptions{}
		}
		cp := *override
		return &cp
	}
	if override == nil {
		cp := *base
		return &cp
	}

	merged := *base

	if override.ModelID != "" {
		merged.ModelID = override.ModelID
	}
	if override.Temperature != nil {
		merged.Temperature = override.Temperature
	}
	if override.TopP != nil {
		merged.TopP = override.TopP
	}
	if override.MaxTokens != nil {
		merged.MaxTokens = override.MaxTokens
	}
	if len(override.Stop) > 0 {
		merged.Stop = override.Stop
	}
	if override.Seed != nil {
		merged.Seed = override.Seed
	}
	if override.ToolChoice != "" {
		merged.ToolChoice = override.ToolChoice
	}
	if override.User != "" {
		merged.User = override.User
	}

	if override.Instructions != "" {
		if merged.Instructions != "" {
			merged.Instructions += "\n" + override.Instructions
		} else {
			merged.Instructions = override.Instructions
		}
	}

	if len(override.Tools) > 0 {
		byName := make(map[string]Tool, len(merged.Tools)+len(override.Tools))
		for _, t := range merged.Tools {
			byName[t.Name()] = t
		}
		seen := make(map[string]bool, len(byName))
		tools := make([]Tool, 0, len(byName)+len(override.Tools))
		for _, t := range override.Tools {
			byName[t.Name()] = t
		}
		for _, t := range merged.Tools {
			tools = append(tools, byName[t.Name()])
			seen[t.Name()] = true
		}
		for _, t := range override.Tools {
			if !seen[t.Name()] {
				tools = append(tools, t)
				seen[t.Name()] = true
			}
		}
		merged.Tools = tools
	}

	if len(override.Metadata) > 0 {
		meta := make(map[string]string, len(base.Metadata)+len(override.Metadata))
		for k, v := range base.Metadata {
			meta[k] = v
		}
		for k, v := range override.Metadata {
			meta[k] = v
		}
		merged.Metadata = meta
	}

	if len(override.Extra) > 0 {
		extra := make(map[string]any, len(base.Extra)+len(override.Extra))
		for k, v := range base.Extra {
			extra[k] = v
		}
		for k, v := range override.Extra {
			extra[k] = v
		}
		merged.Extra = extra
	}

	return &merged
}
