// Package canned resolves fixed replies for recognized trigger phrases.
// Rules are ordered and deterministic, a hit short-circuits generation.
package canned

import (
	"strings"

	"github.com/samber/lo"

	"pharmabot/domain"
)

// repeatWindow bounds how far back the repetition guard looks.
const repeatWindow = 4

// Table evaluates the profile's canned rules, first match wins.
type Table struct {
	profile domain.Profile
}

func NewTable(profile domain.Profile) *Table {
	return &Table{profile: profile}
}

// Lookup returns the canned reply for a message, if any rule matches.
// A re-asked question gets a deflection instead of the same text again.
func (t *Table) Lookup(message string, history domain.History) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(message))
	if trimmed == "" {
		return "", false
	}

	// Les salutations restent fixes quel que soit l'historique.
	if lo.Contains(t.profile.Greetings, trimmed) {
		return t.profile.GreetingReply, true
	}
	if lo.Contains(t.profile.Thanks, trimmed) {
		return t.profile.ThanksReply, true
	}

	if reply, ok := t.repeatGuard(trimmed, history); ok {
		return reply, true
	}

	for _, topic := range t.profile.Topics {
		if topic.Exact {
			if lo.Contains(topic.Keywords, trimmed) {
				return topic.Reply, true
			}
			continue
		}
		for _, keyword := range topic.Keywords {
			if strings.Contains(trimmed, keyword) {
				return topic.Reply, true
			}
		}
	}
	return "", false
}

// repeatGuard inspects the trailing history window. Best effort: a
// rephrased question will slip through, a legitimate repeat will not.
func (t *Table) repeatGuard(trimmed string, history domain.History) (string, bool) {
	if len(t.profile.RepeatReplies) == 0 {
		return "", false
	}
	tail := history.Tail(repeatWindow)

	alreadyAsked := lo.ContainsBy(tail, func(m domain.Message) bool {
		return m.Role == domain.RoleUser && strings.ToLower(strings.TrimSpace(m.Content)) == trimmed
	})
	if !alreadyAsked {
		return "", false
	}

	alreadyDeflected := lo.ContainsBy(tail, func(m domain.Message) bool {
		return m.Role == domain.RoleAssistant && m.Content == t.profile.RepeatReplies[0]
	})
	if alreadyDeflected && len(t.profile.RepeatReplies) > 1 {
		return t.profile.RepeatReplies[1], true
	}
	return t.profile.RepeatReplies[0], true
}
