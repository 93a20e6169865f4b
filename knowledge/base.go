// Package knowledge serves pre-written domain answers: medication
// records keyed by entity and aspect, and topic paragraphs on trials,
// regulation, pharmacovigilance, devices and biotech. Absent entries
// let the pipeline fall through to generation or fallback.
package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"pharmabot/classify"
)

const interactionsBody = "Les interactions médicamenteuses sont des modifications de l'effet d'un médicament " +
	"lorsqu'il est pris avec un autre médicament, aliment, ou complément.\n\n" +
	"Types d'interactions :\n" +
	"• Pharmacocinétiques : modification de l'absorption, distribution, métabolisme, ou élimination\n" +
	"• Pharmacodynamiques : modification de l'effet au niveau des récepteurs\n" +
	"• Interactions avec les aliments : certains médicaments doivent être pris à jeun ou avec les repas\n" +
	"• Interactions avec l'alcool : peuvent augmenter les effets secondaires\n\n" +
	"Exemples courants :\n" +
	"• Anticoagulants + AINS = risque de saignement accru\n" +
	"• Statines + certains antibiotiques = risque de myopathie\n" +
	"• IPP + certains médicaments = réduction de l'absorption\n\n" +
	"IMPORTANT : avant de prendre plusieurs médicaments ensemble, consultez toujours un pharmacien ou un médecin."

// Base is built once at startup and read-only afterwards.
type Base struct {
	drugs   map[string]Drug
	entries []Entry
	idx     *index
	log     *slog.Logger
}

// NewBase indexes the static records into an in-memory search index.
func NewBase(log *slog.Logger) (*Base, error) {
	byKey := lo.KeyBy(drugs, func(d Drug) string { return d.Key })

	docs := make([]indexedDoc, 0, len(drugs)+len(entries))
	for _, d := range drugs {
		docs = append(docs, indexedDoc{
			id:   "drug/" + d.Key,
			kind: "drug",
			key:  d.Key,
			text: d.Key + " " + d.Name + " " + d.Class + " " + strings.Join(d.Indications, " "),
		})
	}
	for _, e := range entries {
		docs = append(docs, indexedDoc{
			id:   "entry/" + e.Key,
			kind: "entry",
			key:  e.Key,
			text: e.Title + " " + strings.Join(e.Keywords, " "),
		})
	}

	idx, err := newIndex(docs)
	if err != nil {
		return nil, fmt.Errorf("knowledge base: %w", err)
	}
	return &Base{drugs: byKey, entries: entries, idx: idx, log: log}, nil
}

func (b *Base) Close() error {
	return b.idx.Close()
}

// Answer resolves a pre-written reply for the message, if one exists.
// entity is the drug name extracted by the classifier, empty when none.
// mentioned lists drugs named earlier in the conversation window.
func (b *Base) Answer(ctx context.Context, message, entity string, aspect classify.Aspect, mentioned []string) (string, bool) {
	lower := strings.ToLower(message)

	if entity != "" {
		if drug, ok := b.resolveDrug(entity); ok {
			return b.drugAnswer(drug, aspect, mentioned), true
		}
		// Entité inconnue de la table : le moteur de recherche tente
		// une correspondance partielle avant d'abandonner.
		kind, key, found, err := b.idx.search(ctx, strings.ToLower(entity))
		if err != nil {
			b.log.Warn("knowledge search failed", "entity", entity, "error", err)
		}
		if found {
			switch kind {
			case "drug":
				return b.drugAnswer(b.drugs[key], aspect, mentioned), true
			case "entry":
				if entry, ok := b.entry(key); ok {
					return entry.Body, true
				}
			}
		}
		// Pas de fiche : une question de mécanisme reçoit quand même
		// le gabarit de la classe déduite du nom.
		if aspect == classify.AspectMechanism {
			return inferClass(entity).mechanismAnswer(entity), true
		}
	}

	for _, entry := range b.entries {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return entry.Body, true
			}
		}
	}
	return "", false
}

// MentionedDrugs relève les médicaments connus cités dans les tours
// récents de la conversation, dans l'ordre de la table.
func (b *Base) MentionedDrugs(texts []string) []string {
	var names []string
	for _, drug := range drugs {
		for _, text := range texts {
			if strings.Contains(classify.Normalize(text), drug.Key) {
				names = appendDrugName(names, drug.Name)
				break
			}
		}
	}
	return names
}

func (b *Base) resolveDrug(entity string) (Drug, bool) {
	key := classify.Normalize(entity)
	if drug, ok := b.drugs[key]; ok {
		return drug, true
	}
	for drugKey, drug := range b.drugs {
		if strings.Contains(key, drugKey) || strings.Contains(drugKey, key) {
			return drug, true
		}
	}
	return Drug{}, false
}

func (b *Base) entry(key string) (Entry, bool) {
	return lo.Find(b.entries, func(e Entry) bool { return e.Key == key })
}

func (b *Base) drugAnswer(drug Drug, aspect classify.Aspect, mentioned []string) string {
	switch aspect {
	case classify.AspectMechanism:
		return fmt.Sprintf("%s (%s)\n\nMécanisme d'action :\n%s", drug.Name, drug.Class, drug.Mechanism)

	case classify.AspectSideEffects:
		return fmt.Sprintf("Effets secondaires de %s :\n\n%s\n\nLes effets graves sont rares. "+
			"En cas d'effets indésirables persistants, consultez un professionnel de santé.",
			drug.Name, bullets(drug.SideEffects))

	case classify.AspectDosage:
		return fmt.Sprintf("Posologie de %s :\n\n%s\n\nLa posologie exacte doit être déterminée par un "+
			"professionnel de santé selon l'indication, l'âge, le poids, et les conditions médicales du patient.",
			drug.Name, drug.Posology)

	case classify.AspectIndications:
		return fmt.Sprintf("Indications de %s :\n\n%s", drug.Name, bullets(drug.Indications))

	case classify.AspectInteractions:
		names := appendDrugName(mentioned, drug.Name)
		answer := interactionsBody
		if len(names) >= 2 {
			answer += fmt.Sprintf("\n\nConcernant %s : avant de prendre ces médicaments ensemble, "+
				"consultez absolument un pharmacien ou un médecin pour vérifier les interactions spécifiques.",
				strings.Join(names, ", "))
		}
		return answer

	case classify.AspectComparison:
		names := appendDrugName(mentioned, drug.Name)
		if len(names) >= 2 {
			return fmt.Sprintf("Comparaison entre %s :\n\n"+
				"Les différences entre médicaments dépendent de plusieurs facteurs :\n"+
				"• Classe thérapeutique : mécanismes d'action différents\n"+
				"• Efficacité : peut varier selon la condition traitée\n"+
				"• Effets secondaires : profils différents\n"+
				"• Posologie : dosages et fréquences différents\n"+
				"• Interactions et contre-indications : peuvent varier\n\n"+
				"Pour une comparaison détaillée, consultez un professionnel de santé qui pourra évaluer "+
				"votre situation spécifique.", strings.Join(names, ", "))
		}
		return "Pour comparer des médicaments, j'aurais besoin de connaître les noms des médicaments à comparer. " +
			"Pouvez-vous me les donner ?"

	case classify.AspectSafety:
		return fmt.Sprintf("Sécurité de %s :\n\n"+
			"La sécurité d'un médicament est évaluée à plusieurs niveaux :\n"+
			"1. Développement : tests précliniques et cliniques rigoureux\n"+
			"2. Autorisation : évaluation par les agences réglementaires (ANSM, EMA, FDA)\n"+
			"3. Surveillance : pharmacovigilance post-commercialisation\n\n"+
			"Facteurs de sécurité : respect de la posologie prescrite, prise en compte des contre-indications, "+
			"gestion des interactions médicamenteuses, surveillance des effets secondaires.\n\n"+
			"Pour des informations spécifiques sur la sécurité de %s, consultez la notice du médicament "+
			"ou un professionnel de santé.", drug.Name, drug.Name)

	default:
		effects := drug.SideEffects
		if len(effects) > 3 {
			effects = effects[:3]
		}
		return fmt.Sprintf("%s (%s)\n\nIndications principales :\n%s\n\nPosologie typique : %s\n\n"+
			"Effets secondaires fréquents :\n%s\n\nMécanisme d'action : %s\n\n"+
			"La posologie exacte doit être déterminée par un professionnel de santé.",
			drug.Name, drug.Class, bullets(drug.Indications), drug.Posology, bullets(effects), drug.Mechanism)
	}
}

func bullets(items []string) string {
	lines := lo.Map(items, func(item string, _ int) string { return "• " + item })
	return strings.Join(lines, "\n")
}

func appendDrugName(mentioned []string, name string) []string {
	if lo.Contains(mentioned, name) {
		return mentioned
	}
	return append(append([]string{}, mentioned...), name)
}
