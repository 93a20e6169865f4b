package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"pharmabot/domain"
	pherrors "pharmabot/errors"
)

// State suit le cycle de chargement du modèle local.
type State int32

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

const (
	localDefaultEndpoint = "http://localhost:11434"

	// Réglages conservateurs : le modèle local divague plus vite que
	// les APIs distantes, on réduit la température et la longueur.
	localTemperature = 0.3
	localTopP        = 0.85
	localMaxTokens   = 200
	localHistoryTail = 5
)

// Local drives an Ollama-style endpoint. Load probes the server and
// picks the primary model when present, the fallback model otherwise.
type Local struct {
	endpoint      string
	primaryModel  string
	fallbackModel string
	httpClient    *http.Client
	log           *slog.Logger

	mu     sync.RWMutex
	state  State
	active string
}

func NewLocal(endpoint, primaryModel, fallbackModel string, client *http.Client, log *slog.Logger) *Local {
	if endpoint == "" {
		endpoint = localDefaultEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Local{
		endpoint:      strings.TrimRight(endpoint, "/"),
		primaryModel:  primaryModel,
		fallbackModel: fallbackModel,
		httpClient:    client,
		log:           log,
	}
}

func (l *Local) Name() string { return "local" }

func (l *Local) Model() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.active != "" {
		return l.active
	}
	return l.primaryModel
}

func (l *Local) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *Local) Available() bool {
	return l.State() == StateReady
}

type localTagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Load probes the local server and resolves which model to use.
// It is idempotent, a second call after success is a no-op.
func (l *Local) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.state == StateReady || l.state == StateLoading {
		l.mu.Unlock()
		return nil
	}
	l.state = StateLoading
	l.mu.Unlock()

	model, err := l.probe(ctx)
	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state = StateFailed
		l.log.Warn("local backend unavailable", "endpoint", l.endpoint, "error", err)
		return fmt.Errorf("%w: %v", pherrors.ErrModelNotReady, err)
	}
	l.state = StateReady
	l.active = model
	l.log.Info("local backend ready", "endpoint", l.endpoint, "model", model)
	return nil
}

func (l *Local) probe(ctx context.Context) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint+"/api/tags", nil)
	if err != nil {
		return "", err
	}
	resp, err := l.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("probe: %s", resp.Status)
	}

	var tags localTagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return "", err
	}
	for _, m := range tags.Models {
		if m.Name == l.primaryModel {
			return l.primaryModel, nil
		}
	}
	for _, m := range tags.Models {
		if m.Name == l.fallbackModel {
			l.log.Warn("primary model missing, using fallback",
				"primary", l.primaryModel, "fallback", l.fallbackModel)
			return l.fallbackModel, nil
		}
	}
	return "", fmt.Errorf("no usable model among %d installed", len(tags.Models))
}

type localGenerateRequest struct {
	Model   string       `json:"model"`
	Prompt  string       `json:"prompt"`
	Stream  bool         `json:"stream"`
	Options localOptions `json:"options"`
}

type localOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
}

type localGenerateResponse struct {
	Response string `json:"response"`
}

func (l *Local) Generate(ctx context.Context, req Request) (string, error) {
	if !l.Available() {
		return "", pherrors.ErrModelNotReady
	}

	payload := localGenerateRequest{
		Model:  l.Model(),
		Prompt: l.buildPrompt(req),
		Stream: false,
		Options: localOptions{
			Temperature: localTemperature,
			TopP:        localTopP,
			NumPredict:  localMaxTokens,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: local: %v", pherrors.ErrGenerationFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: local: %v", pherrors.ErrGenerationFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := l.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: local: %v", pherrors.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: local: %s", pherrors.ErrGenerationFailed, resp.Status)
	}

	var decoded localGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: local: %v", pherrors.ErrGenerationFailed, err)
	}
	return strings.TrimSpace(decoded.Response), nil
}

func (l *Local) buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString(req.System)
	b.WriteString("\n\n")
	for _, msg := range req.History.Tail(localHistoryTail) {
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
