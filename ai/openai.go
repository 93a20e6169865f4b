package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"pharmabot/domain"
	pherrors "pharmabot/errors"
)

const (
	openAIDefaultEndpoint = "https://api.openai.com/v1/chat/completions"
	openAIDefaultModel    = "gpt-3.5-turbo"

	openAITemperature = 0.7
	openAITopP        = 0.9
	openAIMaxTokens   = 500
	openAIHistoryTail = 10
)

// OpenAI calls the chat-completions endpoint.
type OpenAI struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

func NewOpenAI(apiKey, model string, client *http.Client) *OpenAI {
	if model == "" {
		model = openAIDefaultModel
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenAI{apiKey: apiKey, model: model, endpoint: openAIDefaultEndpoint, httpClient: client}
}

func (o *OpenAI) Name() string  { return "openai" }
func (o *OpenAI) Model() string { return o.model }

// Available is false without an API key, the backend is then skipped.
func (o *OpenAI) Available() bool { return o.apiKey != "" }

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
	TopP        float64                 `json:"top_p"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

func (o *OpenAI) Generate(ctx context.Context, req Request) (string, error) {
	if !o.Available() {
		return "", pherrors.ErrBackendUnavailable
	}

	messages := []chatCompletionMessage{{Role: "system", Content: req.System}}
	for _, msg := range req.History.Tail(openAIHistoryTail) {
		if msg.Content == "" {
			continue
		}
		if msg.Role != domain.RoleUser && msg.Role != domain.RoleAssistant {
			continue
		}
		messages = append(messages, chatCompletionMessage{Role: string(msg.Role), Content: msg.Content})
	}
	messages = append(messages, chatCompletionMessage{Role: "user", Content: req.Message})

	payload := chatCompletionRequest{
		Model:       o.model,
		Messages:    messages,
		Temperature: openAITemperature,
		MaxTokens:   openAIMaxTokens,
		TopP:        openAITopP,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", pherrors.ErrGenerationFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", pherrors.ErrGenerationFailed, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", pherrors.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: openai: %s", pherrors.ErrGenerationFailed, resp.Status)
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: openai: %v", pherrors.ErrGenerationFailed, err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("%w: openai: empty choices", pherrors.ErrGenerationFailed)
	}
	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}
