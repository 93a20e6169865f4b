package canned

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pharmabot/domain"
	"pharmabot/domain/profiles"
)

func TestTable_Lookup(t *testing.T) {
	table := NewTable(profiles.Pharma())

	tests := []struct {
		name     string
		message  string
		expected string
		hit      bool
	}{
		{
			name:     "Greeting",
			message:  "bonjour",
			expected: "Bonjour! Comment puis-je vous aider aujourd'hui?",
			hit:      true,
		},
		{
			name:     "Greeting with casing and spaces",
			message:  "  Bonjour  ",
			expected: "Bonjour! Comment puis-je vous aider aujourd'hui?",
			hit:      true,
		},
		{
			name:     "Thanks",
			message:  "merci",
			expected: "De rien! N'hésitez pas si vous avez d'autres questions.",
			hit:      true,
		},
		{
			name:    "Topic keyword",
			message: "quelles sont les contre-indications courantes ?",
			hit:     true,
		},
		{
			name:    "No rule",
			message: "comment fonctionne l'amoxicilline ?",
			hit:     false,
		},
		{
			name:    "Empty message",
			message: "   ",
			hit:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			reply, ok := table.Lookup(tt.message, nil)
			req.Equal(tt.hit, ok)
			if tt.expected != "" {
				req.Equal(tt.expected, reply)
			}
		})
	}
}

// Une salutation reste identique quel que soit l'historique.
func TestTable_GreetingIgnoresHistory(t *testing.T) {
	req := require.New(t)
	table := NewTable(profiles.Pharma())

	history := domain.History{
		domain.NewUserMessage("bonjour"),
		domain.NewAssistantMessage("Bonjour! Comment puis-je vous aider aujourd'hui?"),
	}
	reply, ok := table.Lookup("bonjour", history)
	req.True(ok)
	req.Equal("Bonjour! Comment puis-je vous aider aujourd'hui?", reply)
}

func TestTable_RepeatGuard(t *testing.T) {
	req := require.New(t)
	profile := profiles.Pharma()
	table := NewTable(profile)

	question := "quelle est la capitale du médicament ?"
	history := domain.History{
		domain.NewUserMessage(question),
		domain.NewAssistantMessage("une première réponse"),
	}

	reply, ok := table.Lookup(question, history)
	req.True(ok)
	req.Equal(profile.RepeatReplies[0], reply)

	// Deuxième répétition : l'autre déflexion est servie.
	history = history.Append(domain.NewUserMessage(question))
	history = history.Append(domain.NewAssistantMessage(reply))
	second, ok := table.Lookup(question, history)
	req.True(ok)
	req.Equal(profile.RepeatReplies[1], second)
}

func TestTable_RepeatGuardOnlyInspectsTrailingWindow(t *testing.T) {
	req := require.New(t)
	table := NewTable(profiles.Pharma())

	question := "parlez-moi de la pharmacovigilance"
	history := domain.History{
		domain.NewUserMessage(question),
		domain.NewAssistantMessage("réponse ancienne"),
		domain.NewUserMessage("autre question"),
		domain.NewAssistantMessage("autre réponse"),
		domain.NewUserMessage("encore une question"),
		domain.NewAssistantMessage("encore une réponse"),
	}

	// La question initiale est sortie de la fenêtre des 4 derniers messages.
	_, ok := table.Lookup(question, history)
	req.False(ok)
}

func TestTable_ExactTopicRule(t *testing.T) {
	req := require.New(t)
	table := NewTable(profiles.CV())

	reply, ok := table.Lookup("cv", nil)
	req.True(ok)
	req.Contains(reply, "Je peux vous aider avec votre CV!")

	// Le déclencheur exact ne doit pas matcher en sous-chaîne.
	_, ok = table.Lookup("je veux améliorer mon parcours", nil)
	req.False(ok)
}
