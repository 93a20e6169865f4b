package runtime

import (
	"fmt"
	"strings"

	"pharmabot/classify"
)

// fallback est le nœud terminal du pipeline, il ne peut pas échouer.
// Hors domaine : redirection fixe. En domaine : question de
// clarification ciblée sur les groupes de mots-clés reconnus, sinon
// menu générique des capacités, sinon paraphrase du message.
func (o *Orchestrator) fallback(message string, inDomain bool) string {
	if !inDomain && o.profile.OffDomainReply != "" {
		return o.profile.OffDomainReply
	}
	if o.profile.KeywordFormat != "" {
		if labels := o.matchedGroups(message); len(labels) > 0 {
			return fmt.Sprintf(o.profile.KeywordFormat, strings.Join(labels, ", "))
		}
	}
	if o.profile.GenericReply != "" {
		return o.profile.GenericReply
	}
	return fmt.Sprintf(o.profile.FallbackFormat, message)
}

func (o *Orchestrator) matchedGroups(message string) []string {
	normalized := classify.Normalize(message)
	var labels []string
	for _, group := range o.profile.FallbackGroups {
		for _, keyword := range group.Keywords {
			if strings.Contains(normalized, classify.Normalize(keyword)) {
				labels = append(labels, group.Label)
				break
			}
		}
	}
	return labels
}
