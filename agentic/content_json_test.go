// Copyright (c) Microsoft. All rights reserved.

package agentic_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/microsoft/commerce-agents/agentic"
)

func TestContentJSON_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		content  agentic.Content
		wantType string
	}{
		{"text", &agentic.TextContent{Text: "hello"}, `"$type":"text"`},
		{"error", &agentic.ErrorContent{Message: "denied", ErrorCode: "content_filter"}, `"$type":"error"`},
		{"function call", &agentic.FunctionCallContent{CallID: "c1", Name: "get_discount", Arguments: `{"product_id":"202"}`}, `"$type":"functionCall"`},
		{"usage", &agentic.UsageContent{Usage: agentic.UsageDetails{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}}, `"$type":"usage"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := agentic.MarshalContentJSON(tc.content)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if !strings.Contains(string(data), tc.wantType) {
				t.Errorf("envelope = %s", data)
			}

			back, err := agentic.UnmarshalContentJSON(data)
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			redata, err := agentic.MarshalContentJSON(back)
			if err != nil {
				t.Fatalf("remarshal: %v", err)
			}
			if string(data) != string(redata) {
				t.Errorf("round trip changed envelope:\n  first:  %s\n  second: %s", data, redata)
			}
		})
	}
}

func TestContentJSON_FunctionCallArguments(t *testing.T) {
	data, err := agentic.MarshalContentJSON(&agentic.FunctionCallContent{
		CallID:    "c1",
		Name:      "get_product_info",
		Arguments: `{"product_id":"101"}`,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	back, err := agentic.UnmarshalContentJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	fc := back.(*agentic.FunctionCallContent)
	if fc.CallID != "c1" || fc.Name != "get_product_info" {
		t.Errorf("call = %+v", fc)
	}

	// Arguments survive as raw JSON, not a re-encoded object.
	var args map[string]string
	if err := json.Unmarshal([]byte(fc.Arguments), &args); err != nil {
		t.Fatalf("arguments not valid JSON: %v", err)
	}
	if args["product_id"] != "101" {
		t.Errorf("arguments = %q", fc.Arguments)
	}
}

func TestContentJSON_UnknownType(t *testing.T) {
	if _, err := agentic.UnmarshalContentJSON([]byte(`{"$type":"hologram"}`)); err == nil {
		t.Error("expected error for unknown $type")
	}
	if _, err := agentic.UnmarshalContentJSON([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed envelope")
	}
}

func TestContents_MessageRoundTrip(t *testing.T) {
	msg := agentic.Message{
		Role: agentic.RoleAssistant,
		Contents: agentic.Contents{
			&agentic.TextContent{Text: "Looking that up."},
			&agentic.FunctionCallContent{CallID: "c1", Name: "get_discount", Arguments: `{"product_id":"202"}`},
		},
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back agentic.Message
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Role != agentic.RoleAssistant || len(back.Contents) != 2 {
		t.Fatalf("back = %+v", back)
	}
	if back.Text() != "Looking that up." {
		t.Errorf("Text = %q", back.Text())
	}
	calls := back.FunctionCalls()
	if len(calls) != 1 || calls[0].Name != "get_discount" {
		t.Errorf("calls = %+v", calls)
	}
}
