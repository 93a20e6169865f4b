// Package http est le shell web : un routeur chi au-dessus du
// ChatService, avec les sémantiques d'erreur du contrat /chat.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"pharmabot/domain"
	"pharmabot/observability"
	"pharmabot/runtime"
	"pharmabot/services"
)

// apologyReply part au client en 200 quand la génération ne rend rien,
// plutôt qu'un 5xx, pour ne pas casser la conversation côté UI.
const apologyReply = "Désolé, je n'ai pas pu générer de réponse. Veuillez réessayer."

type Handler struct {
	service  services.IChatService
	validate *validator.Validate
	log      *slog.Logger
}

func NewHandler(service services.IChatService, log *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

type historyEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message string         `json:"message" validate:"required"`
	History []historyEntry `json:"history" validate:"omitempty,dive"`
}

type chatUsage struct {
	Model  string `json:"model"`
	Tokens int    `json:"tokens"`
}

type chatResponse struct {
	Reply string    `json:"reply"`
	Usage chatUsage `json:"usage"`
}

type healthResponse struct {
	Status      string                      `json:"status"`
	ModelLoaded bool                        `json:"model_loaded"`
	ModelType   string                      `json:"model_type"`
	Backends    []string                    `json:"backends"`
	Stats       observability.PipelineStats `json:"stats"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Health répond toujours 200, même sans aucun backend configuré.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	backends := h.service.Backends()
	names := make([]string, 0, len(backends))
	modelType := "none"
	for i, b := range backends {
		names = append(names, b.Name())
		if i == 0 {
			modelType = b.Name()
		}
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "healthy",
		ModelLoaded: len(backends) > 0,
		ModelType:   modelType,
		Backends:    names,
		Stats:       h.service.Stats(),
	})
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil || strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "Message cannot be empty"})
		return
	}

	history := make(domain.History, 0, len(req.History))
	for _, entry := range req.History {
		history = append(history, domain.Message{Role: domain.Role(entry.Role), Content: entry.Content})
	}

	reply := h.service.Reply(r.Context(), req.Message, history)

	// Sans backend, seules les réponses déterministes valent un 200.
	// Un repli sans aucun moyen de générer signale un service dégradé.
	if reply.Source == runtime.SourceFallback && !h.service.Ready() {
		writeJSON(w, http.StatusServiceUnavailable,
			errorResponse{Detail: "Model not loaded yet. Please wait a few moments and try again."})
		return
	}

	text := reply.Text
	if text == "" {
		text = apologyReply
	}
	writeJSON(w, http.StatusOK, chatResponse{
		Reply: text,
		Usage: chatUsage{
			Model:  h.usageModel(reply),
			Tokens: len(strings.Fields(text)),
		},
	})
}

func (h *Handler) usageModel(reply runtime.Reply) string {
	if reply.Model != "" {
		return reply.Model
	}
	if backends := h.service.Backends(); len(backends) > 0 {
		return backends[0].Model()
	}
	return "none"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
