package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pharmabot/domain"
)

func TestConversation_ExportImportRoundTrip(t *testing.T) {
	req := require.New(t)

	history := domain.History{
		domain.NewUserMessage("Quels sont les effets secondaires du paracétamol ?"),
		domain.NewAssistantMessage("Les effets secondaires possibles incluent des réactions cutanées rares."),
		domain.NewUserMessage("Et la posologie ?"),
	}
	conversation := domain.NewConversation(history)

	data, err := conversation.ExportJSON()
	req.NoError(err)

	restored, err := domain.ImportConversation(data)
	req.NoError(err)
	req.Equal(conversation.ID, restored.ID)
	req.Len(restored.Messages, 3)

	// L'ordre et les rôles survivent au passage par le JSON.
	for i, msg := range restored.Messages {
		req.Equal(history[i].Role, msg.Role)
		req.Equal(history[i].Content, msg.Content)
	}
}

func TestConversation_ImportRejectsGarbage(t *testing.T) {
	req := require.New(t)

	_, err := domain.ImportConversation([]byte("pas du json"))
	req.Error(err)
	req.Contains(err.Error(), "conversation import")
}

func TestConversation_ExportFilename(t *testing.T) {
	req := require.New(t)

	conversation := domain.NewConversation(nil)
	conversation.Timestamp = time.Date(2025, 1, 31, 15, 42, 10, 0, time.UTC)

	req.Equal("conversation_20250131_154210.json", conversation.ExportFilename())
}
