package classify

import "regexp"

// Aspect is the facet of a question about a domain entity.
type Aspect string

const (
	AspectGeneral      Aspect = "general"
	AspectMechanism    Aspect = "mechanism"
	AspectSideEffects  Aspect = "side_effects"
	AspectDosage       Aspect = "dosage"
	AspectIndications  Aspect = "indications"
	AspectInteractions Aspect = "interactions"
	AspectComparison   Aspect = "comparison"
	AspectSafety       Aspect = "safety"
)

type aspectPatterns struct {
	aspect   Aspect
	patterns []*regexp.Regexp
}

// Ordre de priorité : le premier motif qui matche gagne.
var aspects = []aspectPatterns{
	{AspectMechanism, compileAll(
		`comment\s+(fonctionne|marche|agit)`,
		`how\s+(does|do)\s+.*\s+(work|function)`,
		`m[ée]canisme\s+d'?action`,
		`mechanism\s+of\s+action`,
		`comment\s+[çc]a\s+marche`,
		`pourquoi\s+.*\s+fonctionne`,
	)},
	{AspectSideEffects, compileAll(
		`effets?\s+(secondaires?|ind[ée]sirables?)`,
		`side\s+effects?`,
		`effets?\s+adverses?`,
		`quels?\s+effets?`,
		`risque`,
		`danger`,
		`contre-indication`,
	)},
	{AspectDosage, compileAll(
		`posologie`,
		`dosage`,
		`\bdose\b`,
		`combien\s+(prendre|utiliser|de\s+mg|de\s+ml)`,
		`how\s+much`,
		`how\s+many`,
		`fr[ée]quence`,
		`pendant\s+combien`,
	)},
	{AspectIndications, compileAll(
		`pour\s+quoi`,
		`pour\s+quelle`,
		`indication`,
		`utilis[ée]?\s+pour`,
		`used\s+for`,
		`traitement\s+de`,
		`treatment\s+of`,
		`contre\s+quoi`,
	)},
	{AspectInteractions, compileAll(
		`interaction`,
		`peut\s+(prendre|utiliser)\s+avec`,
		`compatible`,
		`compatibilit[ée]`,
		`associer`,
		`prendre\s+en\s+m[êe]me\s+temps`,
		`take\s+with`,
	)},
	{AspectComparison, compileAll(
		`diff[ée]rence\s+entre`,
		`difference\s+between`,
		`comparer`,
		`compare`,
		`\bvs\b`,
		`versus`,
		`meilleur`,
		`better`,
		`plus\s+efficace`,
	)},
	{AspectSafety, compileAll(
		`s[ée]curit[ée]`,
		`safety`,
		`\bs[ûu]r\b`,
		`\bsafe\b`,
		`risque`,
		`\brisk\b`,
		`dangereux`,
		`dangerous`,
	)},
	{AspectGeneral, compileAll(
		`c'?est\s+quoi`,
		`qu'?est\s+(ce\s+que|ce\s+qu')`,
		`what\s+is`,
		`d[ée]finition`,
		`explique`,
		`explain`,
		`parle\s+moi\s+de`,
		`tell\s+me\s+about`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		out[i] = regexp.MustCompile(expr)
	}
	return out
}

// Aspect detects the question facet of a message. Defaults to general.
func (c *Classifier) Aspect(message string) Aspect {
	normalized := string(normalizeRunes([]rune(message)))
	for _, group := range aspects {
		for _, pattern := range group.patterns {
			if pattern.MatchString(normalized) {
				return group.aspect
			}
		}
	}
	return AspectGeneral
}
