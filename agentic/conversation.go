// Copyright (c) Microsoft. All rights reserved.

package agentic

import "fmt"

// Conversation is the ordered, append-only message sequence owned by one
// in-flight agent run. Insertion order is conversational order and is
// never rewritten; the dispatch loop only ever appends.
//
// A Conversation is not safe for concurrent use. Each run owns its
// conversation exclusively and discards it when the run ends.
type Conversation struct {
	messages []Message
}

// NewConversation creates a conversation seeded with the given messages.
func NewConversation(messages ...Message) *Conversation {
	c := &Conversation{}
	c.Append(messages...)
	return c
}

// Append adds messages to the end of the conversation.
func (c *Conversation) Append(messages ...Message) {
	c.messages = append(c.messages, messages...)
}

// Messages returns a copy of the message sequence in insertion order.
func (c *Conversation) Messages() []Message {
	cp := make([]Message, len(c.messages))
	copy(cp, c.messages)
	return cp
}

// Len returns the number of messages in the conversation.
func (c *Conversation) Len() int { return len(c.messages) }

// Validate checks the tool linkage invariant: every tool-role message
// must reference, via its result CallID, a function call that appears in
// an earlier assistant message.
func (c *Conversation) Validate() error {
	seen := make(map[string]bool)
	for i, m := range c.messages {
		switch m.Role {
		case RoleAssistant:
			for _, fc := range m.FunctionCalls() {
				seen[fc.CallID] = true
			}
		case RoleTool:
			for _, content := range m.Contents {
				fr, ok := content.(*FunctionResultContent)
				if !ok {
					continue
				}
				if !seen[fr.CallID] {
					return fmt.Errorf("message %d: tool result %q has no preceding function call", i, fr.CallID)
				}
			}
		}
	}
	return nil
}
