// Copyright (c) Microsoft. All rights reserved.

package pipeline_test

import (
	"context"
	"strings"
	"testing"

	"github.com/microsoft/commerce-agents/agentic"
	"github.com/microsoft/commerce-agents/ecommerce"
	"github.com/microsoft/commerce-agents/pipeline"
)

// scriptedClient returns canned responses in order and records the
// requests it saw.
type scriptedClient struct {
	responses []*agentic.ChatResponse
	calls     [][]agentic.Message
}

func (c *scriptedClient) Response(ctx context.Context, messages []agentic.Message, opts *agentic.ChatOptions) (*agentic.ChatResponse, error) {
	c.calls = append(c.calls, messages)
	if len(c.responses) == 0 {
		return textResponse("out of script"), nil
	}
	resp := c.responses[0]
	c.responses = c.responses[1:]
	return resp, nil
}

func textResponse(text string) *agentic.ChatResponse {
	return &agentic.ChatResponse{
		Messages:     []agentic.Message{agentic.NewAssistantMessage(text)},
		FinishReason: agentic.FinishReasonStop,
	}
}

func toolCallResponse(callID, name, args string) *agentic.ChatResponse {
	return &agentic.ChatResponse{
		Messages: []agentic.Message{{
			Role: agentic.RoleAssistant,
			Contents: agentic.Contents{&agentic.FunctionCallContent{
				CallID:    callID,
				Name:      name,
				Arguments: args,
			}},
		}},
		FinishReason: agentic.FinishReasonToolCalls,
	}
}

const approvedReport = `=== QUALITY VALIDATION REPORT ===

- FACT CONSISTENCY: pass
- BRAND COMPLIANCE: pass

DECISION: APPROVED
QUALITY SCORE: 91`

const revisionReport = `=== QUALITY VALIDATION REPORT ===

- BRAND COMPLIANCE: forbidden term found

DECISION: NEEDS REVISION

FEEDBACK:
Remove the word unbreakable.`

func TestPipeline_Run(t *testing.T) {
	client := &scriptedClient{
		responses: []*agentic.ChatResponse{
			// Research: one catalog lookup, then the brief.
			toolCallResponse("call_1", "get_product_catalog", `{"product_id":"PROD001"}`),
			textResponse("BRIEF: wireless mouse, 16000 DPI, 70 hour battery"),
			// Copywriting: straight to content.
			textResponse("=== PRODUCT TITLE ===\nUltraGrip Pro Wireless Mouse"),
			// Quality control: one compliance check, then the report.
			toolCallResponse("call_2", "check_brand_compliance", `{"content":"UltraGrip Pro Wireless Mouse","forbidden_terms":["unbreakable"]}`),
			textResponse(approvedReport),
		},
	}

	p, err := pipeline.New(client, ecommerce.ContentTools(ecommerce.DemoCatalog()), nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := p.Run(context.Background(), "Create marketing content for product PROD001")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Decision != pipeline.DecisionApproved {
		t.Errorf("Decision = %q", result.Decision)
	}
	if result.Revised {
		t.Error("Revised = true, want false")
	}
	if !strings.Contains(result.Brief, "16000 DPI") {
		t.Errorf("Brief = %q", result.Brief)
	}
	if !strings.Contains(result.Content, "UltraGrip") {
		t.Errorf("Content = %q", result.Content)
	}
	if !strings.Contains(result.Report, "QUALITY SCORE: 91") {
		t.Errorf("Report = %q", result.Report)
	}

	// 5 model calls total: 2 research, 1 copywriting, 2 quality control.
	if len(client.calls) != 5 {
		t.Errorf("model calls = %d, want 5", len(client.calls))
	}

	// The copywriting stage gets the brief as user input in a fresh
	// conversation: a system message plus one user message.
	copyCall := client.calls[2]
	if len(copyCall) != 2 {
		t.Fatalf("copywriting messages = %d", len(copyCall))
	}
	if copyCall[0].Role != agentic.RoleSystem {
		t.Errorf("first message role = %q", copyCall[0].Role)
	}
	if !strings.Contains(copyCall[1].Text(), "BRIEF: wireless mouse") {
		t.Errorf("copywriting input = %q", copyCall[1].Text())
	}

	// The research tool call was dispatched against the shared registry.
	researchCall := client.calls[1]
	last := researchCall[len(researchCall)-1]
	if last.Role != agentic.RoleTool {
		t.Fatalf("last research message role = %q", last.Role)
	}
	fr, ok := last.Contents[0].(*agentic.FunctionResultContent)
	if !ok {
		t.Fatalf("content type = %T", last.Contents[0])
	}
	if text, _ := fr.Result.(string); !strings.Contains(text, "UltraGrip Pro Wireless Mouse") {
		t.Errorf("tool result = %v", fr.Result)
	}
}

func TestPipeline_RevisionPass(t *testing.T) {
	client := &scriptedClient{
		responses: []*agentic.ChatResponse{
			textResponse("BRIEF: bamboo mug, 350ml capacity"),
			textResponse("This unbreakable mug lasts forever"),
			textResponse(revisionReport),
			// Revision pass, then re-review.
			textResponse("This sturdy bamboo mug holds 350ml"),
			textResponse(approvedReport),
		},
	}

	p, err := pipeline.New(client, ecommerce.ContentTools(ecommerce.DemoCatalog()), nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := p.Run(context.Background(), "Create marketing content for product PROD002")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !result.Revised {
		t.Error("Revised = false, want true")
	}
	if result.Decision != pipeline.DecisionApproved {
		t.Errorf("Decision = %q", result.Decision)
	}
	if !strings.Contains(result.Content, "sturdy bamboo mug") {
		t.Errorf("Content = %q", result.Content)
	}

	// The revision prompt carries the brief, the rejected draft, and the
	// quality feedback.
	revisionCall := client.calls[3]
	input := revisionCall[len(revisionCall)-1].Text()
	for _, want := range []string{"BRIEF: bamboo mug", "unbreakable mug", "Remove the word unbreakable"} {
		if !strings.Contains(input, want) {
			t.Errorf("revision input missing %q:\n%s", want, input)
		}
	}
}

func TestPipeline_RevisionVerdictStands(t *testing.T) {
	// A second rejection is final; no third copywriting pass.
	client := &scriptedClient{
		responses: []*agentic.ChatResponse{
			textResponse("BRIEF: bamboo mug"),
			textResponse("miracle product that cures boredom"),
			textResponse("DECISION: REJECTED"),
			textResponse("still a miracle product"),
			textResponse("DECISION: REJECTED"),
		},
	}

	p, err := pipeline.New(client, ecommerce.ContentTools(ecommerce.DemoCatalog()), nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := p.Run(context.Background(), "Create marketing content for product PROD002")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Decision != pipeline.DecisionRejected {
		t.Errorf("Decision = %q", result.Decision)
	}
	if !result.Revised {
		t.Error("Revised = false, want true")
	}
	if len(client.calls) != 5 {
		t.Errorf("model calls = %d, want 5", len(client.calls))
	}
}

func TestParseDecision(t *testing.T) {
	tests := []struct {
		name   string
		report string
		want   pipeline.Decision
	}{
		{"approved", approvedReport, pipeline.DecisionApproved},
		{"needs revision", revisionReport, pipeline.DecisionNeedsRevision},
		{"rejected", "DECISION: REJECTED\nbad content", pipeline.DecisionRejected},
		{"lowercase verdict", "decision is pending\nDECISION: approved", pipeline.DecisionApproved},
		{"missing", "no verdict here", pipeline.DecisionUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := pipeline.ParseDecision(tc.report); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
