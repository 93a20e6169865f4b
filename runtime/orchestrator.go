// Package runtime pilote le pipeline d'admission des réponses : tables
// fixes et base de connaissances d'abord, backends de génération
// ensuite, repli déterministe en dernier. Chaque chemin se termine par
// une réponse non vide.
package runtime

import (
	"context"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"pharmabot/ai"
	"pharmabot/canned"
	"pharmabot/classify"
	"pharmabot/domain"
	"pharmabot/knowledge"
	"pharmabot/observability"
	"pharmabot/validate"
)

// Source identifie l'étape du pipeline qui a produit la réponse.
type Source string

const (
	SourceEmpty     Source = "empty"
	SourceCanned    Source = "canned"
	SourceSpecific  Source = "specific"
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

// Reply is the pipeline outcome handed to the shells.
// Backend and Model are set only when Source is SourceGenerated.
type Reply struct {
	Text    string
	Source  Source
	Backend string
	Model   string
}

// mentionedWindow borne l'analyse du contexte conversationnel.
const mentionedWindow = 5

type Orchestrator struct {
	log        *slog.Logger
	profile    domain.Profile
	classifier *classify.Classifier
	canned     *canned.Table
	knowledge  *knowledge.Base
	validator  *validate.Validator
	backends   []ai.Generator
	monitor    *observability.Monitor
	attempts   int
}

// NewOrchestrator assembles the pipeline. backends are tried in slice
// order; attemptsPerBackend below 1 is clamped to 1.
func NewOrchestrator(log *slog.Logger, profile domain.Profile, classifier *classify.Classifier,
	table *canned.Table, base *knowledge.Base, validator *validate.Validator,
	backends []ai.Generator, monitor *observability.Monitor, attemptsPerBackend int) *Orchestrator {
	if attemptsPerBackend < 1 {
		attemptsPerBackend = 1
	}
	return &Orchestrator{
		log:        log,
		profile:    profile,
		classifier: classifier,
		canned:     table,
		knowledge:  base,
		validator:  validator,
		backends:   backends,
		monitor:    monitor,
		attempts:   attemptsPerBackend,
	}
}

// AvailableBackends lists the backends usable right now.
func (o *Orchestrator) AvailableBackends() []ai.Generator {
	return lo.Filter(o.backends, func(g ai.Generator, _ int) bool { return g.Available() })
}

// Respond runs the full pipeline for one user message.
func (o *Orchestrator) Respond(ctx context.Context, message string, history domain.History) Reply {
	o.monitor.IncrRequests()

	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{Text: o.profile.EmptyReply, Source: SourceEmpty}
	}

	// Une entrée de table est terminale, elle ne passe jamais par un
	// backend, même hors domaine.
	if text, ok := o.canned.Lookup(message, history); ok {
		o.monitor.IncrCannedHits()
		return Reply{Text: text, Source: SourceCanned}
	}

	if !o.classifier.InDomain(message) {
		o.monitor.IncrFallbacks()
		return Reply{Text: o.fallback(message, false), Source: SourceFallback}
	}

	entity, _ := o.classifier.Entity(message)
	aspect := o.classifier.Aspect(message)
	window := history.Tail(mentionedWindow)
	mentioned := o.knowledge.MentionedDrugs(lo.Map(window, func(m domain.Message, _ int) string { return m.Content }))
	if answer, ok := o.knowledge.Answer(ctx, message, entity, aspect, mentioned); ok {
		o.monitor.IncrSpecificHits()
		return Reply{Text: answer, Source: SourceSpecific}
	}

	req := ai.Request{Message: message, History: history, System: o.profile.SystemContext}
	for _, backend := range o.backends {
		if !backend.Available() {
			continue
		}
		for attempt := 1; attempt <= o.attempts; attempt++ {
			candidate, err := backend.Generate(ctx, req)
			if err != nil {
				o.monitor.IncrBackendErrors()
				o.log.Warn("generation failed", "backend", backend.Name(), "attempt", attempt, "error", err)
				continue
			}
			if reason := o.validator.Check(candidate); reason != validate.ReasonNone {
				o.monitor.IncrRejected()
				o.log.Info("candidate rejected", "backend", backend.Name(), "reason", string(reason))
				continue
			}
			o.monitor.IncrGenerated()
			return Reply{
				Text:    strings.TrimSpace(candidate),
				Source:  SourceGenerated,
				Backend: backend.Name(),
				Model:   backend.Model(),
			}
		}
	}

	o.monitor.IncrFallbacks()
	return Reply{Text: o.fallback(message, true), Source: SourceFallback}
}
