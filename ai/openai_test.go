package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"pharmabot/domain"
	pherrors "pharmabot/errors"
)

func TestOpenAI_Generate(t *testing.T) {
	req := require.New(t)

	var captured chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("Bearer sk-test", r.Header.Get("Authorization"))
		req.NoError(json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "  Le paracétamol est un antalgique.  "}},
			},
		})
	}))
	defer server.Close()

	backend := NewOpenAI("sk-test", "gpt-3.5-turbo", server.Client())
	backend.endpoint = server.URL
	req.True(backend.Available())

	// 12 tours d'historique : seuls les 10 derniers partent vers l'API.
	var history domain.History
	for i := 0; i < 12; i++ {
		history = history.Append(domain.NewUserMessage(fmt.Sprintf("question %d", i)))
	}

	reply, err := backend.Generate(context.Background(), Request{
		Message: "posologie du paracétamol ?",
		History: history,
		System:  "contexte système",
	})
	req.NoError(err)
	req.Equal("Le paracétamol est un antalgique.", reply)

	req.Equal("gpt-3.5-turbo", captured.Model)
	req.InDelta(0.7, captured.Temperature, 0.001)
	req.InDelta(0.9, captured.TopP, 0.001)
	req.Equal(500, captured.MaxTokens)
	// system + 10 tours d'historique + message courant.
	req.Len(captured.Messages, 12)
	req.Equal("system", captured.Messages[0].Role)
	req.Equal("question 2", captured.Messages[1].Content)
	req.Equal("posologie du paracétamol ?", captured.Messages[11].Content)
}

func TestOpenAI_WithoutKeyIsUnavailable(t *testing.T) {
	req := require.New(t)

	backend := NewOpenAI("", "", nil)
	req.False(backend.Available())

	_, err := backend.Generate(context.Background(), Request{Message: "bonjour"})
	req.ErrorIs(err, pherrors.ErrBackendUnavailable)
}

func TestOpenAI_ServerErrorWrapsGenerationFailed(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	backend := NewOpenAI("sk-test", "", server.Client())
	backend.endpoint = server.URL

	_, err := backend.Generate(context.Background(), Request{Message: "posologie ?"})
	req.ErrorIs(err, pherrors.ErrGenerationFailed)
}
