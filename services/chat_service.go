// Package services expose les façades consommées par les deux shells,
// HTTP et interactif, au-dessus du pipeline.
package services

import (
	"context"

	"pharmabot/ai"
	"pharmabot/domain"
	"pharmabot/observability"
	"pharmabot/runtime"
)

type IChatService interface {
	Reply(ctx context.Context, message string, history domain.History) runtime.Reply
	Ready() bool
	Backends() []ai.Generator
	Stats() observability.PipelineStats
}

// ChatService is a thin facade, one pipeline execution per call.
type ChatService struct {
	orchestrator *runtime.Orchestrator
	monitor      *observability.Monitor
}

func NewChatService(o *runtime.Orchestrator, monitor *observability.Monitor) *ChatService {
	return &ChatService{orchestrator: o, monitor: monitor}
}

func (s *ChatService) Reply(ctx context.Context, message string, history domain.History) runtime.Reply {
	return s.orchestrator.Respond(ctx, message, history)
}

// Ready reports whether at least one generation backend is usable.
// Les réponses déterministes restent servies même quand c'est faux.
func (s *ChatService) Ready() bool {
	return len(s.orchestrator.AvailableBackends()) > 0
}

func (s *ChatService) Backends() []ai.Generator {
	return s.orchestrator.AvailableBackends()
}

func (s *ChatService) Stats() observability.PipelineStats {
	return s.monitor.Snapshot()
}
