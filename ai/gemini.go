package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pharmabot/domain"
	pherrors "pharmabot/errors"
)

const (
	geminiDefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

	geminiTemperature     = 0.7
	geminiTopK            = 40
	geminiTopP            = 0.95
	geminiMaxOutputTokens = 500
	geminiHistoryTail     = 5
	geminiTimeout         = 30 * time.Second
)

// Gemini appelle l'API REST generateContent directement, sans SDK.
// Le prompt est assemblé en texte plat avec les tours préfixés.
type Gemini struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewGemini(apiKey string, client *http.Client) *Gemini {
	if client == nil {
		client = &http.Client{Timeout: geminiTimeout}
	}
	return &Gemini{apiKey: apiKey, endpoint: geminiDefaultEndpoint, httpClient: client}
}

func (g *Gemini) Name() string  { return "gemini" }
func (g *Gemini) Model() string { return "gemini-pro" }

func (g *Gemini) Available() bool { return g.apiKey != "" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	if !g.Available() {
		return "", pherrors.ErrBackendUnavailable
	}

	prompt := g.buildPrompt(req)

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     geminiTemperature,
			TopK:            geminiTopK,
			TopP:            geminiTopP,
			MaxOutputTokens: geminiMaxOutputTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", pherrors.ErrGenerationFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+"?key="+g.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", pherrors.ErrGenerationFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", pherrors.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: gemini: %s", pherrors.ErrGenerationFailed, resp.Status)
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: gemini: %v", pherrors.ErrGenerationFailed, err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: gemini: empty candidates", pherrors.ErrGenerationFailed)
	}
	return strings.TrimSpace(decoded.Candidates[0].Content.Parts[0].Text), nil
}

func (g *Gemini) buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString(req.System)
	b.WriteString("\n\n")
	for _, msg := range req.History.Tail(geminiHistoryTail) {
		if msg.Content == "" {
			continue
		}
		switch msg.Role {
		case domain.RoleUser:
			fmt.Fprintf(&b, "Utilisateur: %s\n", msg.Content)
		case domain.RoleAssistant:
			fmt.Fprintf(&b, "Assistant: %s\n", msg.Content)
		}
	}
	fmt.Fprintf(&b, "Utilisateur: %s\nAssistant:", req.Message)
	return b.String()
}
