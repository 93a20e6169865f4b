package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Conversation is an exportable snapshot of a chat session.
type Conversation struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Messages  History   `json:"messages"`
}

// NewConversation snapshots the given history with a fresh identifier.
func NewConversation(history History) Conversation {
	return Conversation{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		Messages:  history,
	}
}

// ExportJSON serializes the conversation for archival.
func (c Conversation) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("conversation export: %w", err)
	}
	return data, nil
}

// ImportConversation restores a conversation previously produced by ExportJSON.
func ImportConversation(data []byte) (Conversation, error) {
	var c Conversation
	if err := json.Unmarshal(data, &c); err != nil {
		return Conversation{}, fmt.Errorf("conversation import: %w", err)
	}
	return c, nil
}

// ExportFilename builds the archive name, e.g. conversation_20250131_154210.json.
func (c Conversation) ExportFilename() string {
	return fmt.Sprintf("conversation_%s.json", c.Timestamp.Format("20060102_150405"))
}
