//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=../mocks/mock_generator.go -package=mocks

// Package ai contient les backends de génération : clients HTTP pour
// OpenAI et Gemini, et un backend local de type Ollama avec machine à
// états de chargement. L'orchestrateur les essaie dans l'ordre de
// priorité et ne considère que les backends disponibles.
package ai

import (
	"context"

	"pharmabot/domain"
)

// Request carries everything a backend needs to produce a candidate.
type Request struct {
	Message string
	History domain.History
	System  string
}

// Generator is one text-generation backend.
// Available reports whether the backend is usable right now; an
// unavailable backend is silently skipped, never an error.
type Generator interface {
	Name() string
	Model() string
	Available() bool
	Generate(ctx context.Context, req Request) (string, error)
}
