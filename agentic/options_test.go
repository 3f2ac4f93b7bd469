// Copyright (c) Microsoft. All rights reserved.

package agentic_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/microsoft/commerce-agents/agentic"
)

func toolNames(tools []agentic.Tool) []string {
	var names []string
	for _, t := range tools {
		names = append(names, t.Name())
	}
	return names
}

func TestMergeChatOptions_NilOperands(t *testing.T) {
	if got := agentic.MergeChatOptions(nil, nil); got == nil {
		t.Fatal("nil result")
	}

	base := &agentic.ChatOptions{ModelID: "gpt-4o"}
	got := agentic.MergeChatOptions(base, nil)
	if got.ModelID != "gpt-4o" {
		t.Errorf("ModelID = %q", got.ModelID)
	}
	if got == base {
		t.Error("result must be a copy")
	}

	got = agentic.MergeChatOptions(nil, &agentic.ChatOptions{ModelID: "gpt-4o-mini"})
	if got.ModelID != "gpt-4o-mini" {
		t.Errorf("ModelID = %q", got.ModelID)
	}
}

func TestMergeChatOptions_OverrideWins(t *testing.T) {
	baseTemp, overrideTemp := 0.2, 0.9
	topP := 0.95
	base := &agentic.ChatOptions{
		ModelID:     "gpt-4o",
		Temperature: &baseTemp,
		TopP:        &topP,
		User:        "service-a",
	}
	override := &agentic.ChatOptions{
		Temperature: &overrideTemp,
		ToolChoice:  agentic.ToolChoiceNone,
	}

	got := agentic.MergeChatOptions(base, override)
	if got.ModelID != "gpt-4o" {
		t.Errorf("ModelID = %q", got.ModelID)
	}
	if *got.Temperature != 0.9 {
		t.Errorf("Temperature = %v", *got.Temperature)
	}
	if got.TopP == nil || *got.TopP != 0.95 {
		t.Errorf("TopP = %v", got.TopP)
	}
	if got.ToolChoice != agentic.ToolChoiceNone {
		t.Errorf("ToolChoice = %q", got.ToolChoice)
	}
	if got.User != "service-a" {
		t.Errorf("User = %q", got.User)
	}
	if *base.Temperature != 0.2 {
		t.Error("merge mutated base")
	}
}

func TestMergeChatOptions_InstructionsConcatenate(t *testing.T) {
	got := agentic.MergeChatOptions(
		&agentic.ChatOptions{Instructions: "Be accurate."},
		&agentic.ChatOptions{Instructions: "Be brief."},
	)
	if got.Instructions != "Be accurate.\nBe brief." {
		t.Errorf("Instructions = %q", got.Instructions)
	}

	got = agentic.MergeChatOptions(
		&agentic.ChatOptions{},
		&agentic.ChatOptions{Instructions: "Be brief."},
	)
	if got.Instructions != "Be brief." {
		t.Errorf("Instructions = %q", got.Instructions)
	}
}

func TestMergeChatOptions_ToolsMergeByName(t *testing.T) {
	base := &agentic.ChatOptions{Tools: []agentic.Tool{
		constTool("a", "base-a"),
		constTool("b", "base-b"),
	}}
	override := &agentic.ChatOptions{Tools: []agentic.Tool{
		constTool("b", "override-b"),
		constTool("c", "override-c"),
	}}

	got := agentic.MergeChatOptions(base, override)

	// Base order first, overridden entries replaced, new entries appended.
	if diff := cmp.Diff([]string{"a", "b", "c"}, toolNames(got.Tools)); diff != "" {
		t.Fatalf("names (-want +got):\n%s", diff)
	}
	result, err := got.Tools[1].Invoke(context.Background(), nil)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if result != "override-b" {
		t.Errorf("tool b = %v, want the override's implementation", result)
	}
}

func TestMergeChatOptions_MapsMergeWithoutMutatingBase(t *testing.T) {
	base := &agentic.ChatOptions{
		Metadata: map[string]string{"env": "test", "team": "commerce"},
		Extra:    map[string]any{"logprobs": true},
	}
	override := &agentic.ChatOptions{
		Metadata: map[string]string{"env": "prod"},
		Extra:    map[string]any{"seed_mode": "strict"},
	}

	got := agentic.MergeChatOptions(base, override)
	wantMeta := map[string]string{"env": "prod", "team": "commerce"}
	if diff := cmp.Diff(wantMeta, got.Metadata); diff != "" {
		t.Errorf("Metadata (-want +got):\n%s", diff)
	}
	if got.Extra["logprobs"] != true || got.Extra["seed_mode"] != "strict" {
		t.Errorf("Extra = %v", got.Extra)
	}
	if base.Metadata["env"] != "test" {
		t.Error("merge mutated base.Metadata")
	}
}

func TestToolChoiceFunction(t *testing.T) {
	if got := agentic.ToolChoiceFunction("get_discount"); got != agentic.ToolChoice("function:get_discount") {
		t.Errorf("got %q", got)
	}
}
