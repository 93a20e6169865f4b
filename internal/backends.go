package internal

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"pharmabot/ai"
)

// Backends assemble les générateurs dans l'ordre de priorité du
// pipeline. L'échec du chargement local n'est pas fatal : le backend
// reste indisponible et le pipeline sert ses réponses déterministes.
func Backends(ctx context.Context, cfg Config, log *slog.Logger) []ai.Generator {
	var remote ai.Generator
	switch strings.ToLower(cfg.APIType) {
	case "gemini":
		remote = ai.NewGemini(cfg.GeminiAPIKey, &http.Client{Timeout: cfg.RemoteTimeout})
	default:
		remote = ai.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, &http.Client{Timeout: cfg.RemoteTimeout})
	}

	local := ai.NewLocal(cfg.LocalEndpoint, cfg.LocalModel, cfg.LocalFallbackModel,
		&http.Client{Timeout: cfg.LocalTimeout}, log)
	if err := local.Load(ctx); err != nil {
		log.Warn("local backend not loaded", "error", err)
	}

	if cfg.PreferRemote {
		return []ai.Generator{remote, local}
	}
	return []ai.Generator{local, remote}
}
