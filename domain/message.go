// Package domain contains core concepts of the assistant.
// This file defines Message exchanges and conversation history rules.
// Messages are immutable once appended to a History.
package domain

import (
	"strings"
	"time"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message represents a single exchange in a conversation.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// NewUserMessage builds a user message stamped with the current time.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content, CreatedAt: time.Now().UTC()}
}

// NewAssistantMessage builds an assistant message stamped with the current time.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content, CreatedAt: time.Now().UTC()}
}

// IsBlank reports whether the content is empty once trimmed.
func (m Message) IsBlank() bool {
	return strings.TrimSpace(m.Content) == ""
}
