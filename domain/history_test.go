package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pharmabot/domain"
)

func TestHistory_Tail(t *testing.T) {
	req := require.New(t)

	history := domain.History{}
	for _, content := range []string{"un", "deux", "trois", "quatre"} {
		history = history.Append(domain.NewUserMessage(content))
	}

	tail := history.Tail(2)
	req.Len(tail, 2)
	req.Equal("trois", tail[0].Content)
	req.Equal("quatre", tail[1].Content)

	req.Len(history.Tail(10), 4)
	req.Len(history.Tail(0), 4)
}

func TestHistory_AppendDoesNotMutateOriginal(t *testing.T) {
	req := require.New(t)

	original := domain.History{domain.NewUserMessage("bonjour")}
	extended := original.Append(domain.NewAssistantMessage("Bonjour !"))

	req.Len(original, 1)
	req.Len(extended, 2)
	req.Equal(domain.RoleAssistant, extended[1].Role)
}

func TestHistory_UserContents(t *testing.T) {
	req := require.New(t)

	history := domain.History{
		domain.NewUserMessage("question 1"),
		domain.NewAssistantMessage("réponse 1"),
		domain.NewUserMessage("question 2"),
	}

	req.Equal([]string{"question 1", "question 2"}, history.UserContents())
}

func TestHistory_LastAssistant(t *testing.T) {
	req := require.New(t)

	history := domain.History{
		domain.NewUserMessage("question 1"),
		domain.NewAssistantMessage("réponse 1"),
		domain.NewAssistantMessage("réponse 2"),
		domain.NewUserMessage("question 2"),
	}

	last, ok := history.LastAssistant()
	req.True(ok)
	req.Equal("réponse 2", last.Content)

	_, ok = domain.History{domain.NewUserMessage("seule")}.LastAssistant()
	req.False(ok)
}
