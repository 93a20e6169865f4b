// Package classify decides whether a message belongs to the configured
// domain, which question aspect it carries, and which entity it names.
package classify

import (
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"pharmabot/domain"
)

// Classifier is built once per profile and safe for concurrent use.
type Classifier struct {
	profile  domain.Profile
	domains  *goahocorasick.Machine
	offTopic *goahocorasick.Machine
}

// NewClassifier compiles the profile keyword lists into Aho-Corasick automatons.
func NewClassifier(profile domain.Profile) (*Classifier, error) {
	domains, err := buildMachine(profile.DomainKeywords)
	if err != nil {
		return nil, err
	}
	offTopic, err := buildMachine(profile.OffTopicKeywords)
	if err != nil {
		return nil, err
	}
	return &Classifier{profile: profile, domains: domains, offTopic: offTopic}, nil
}

// InDomain reports whether a message is relevant to the configured domain.
// Profiles without a domain restriction accept everything.
func (c *Classifier) InDomain(message string) bool {
	if !c.profile.RestrictDomain {
		return true
	}
	normalized := normalizeRunes([]rune(message))
	if len(normalized) == 0 {
		return false
	}
	if matches(c.domains, normalized) {
		return true
	}
	// Question tournée vers le domaine, sans mot-clé explicite
	return c.hasQuestionWord(normalized) && c.hasContextTerm(normalized)
}

// RelatedOutput applies the domain keyword set to a generated candidate.
func (c *Classifier) RelatedOutput(text string) bool {
	if !c.profile.CheckOutputDomain {
		return true
	}
	return matches(c.domains, normalizeRunes([]rune(text)))
}

// OffTopic reports whether a text trips the off-topic rejection list.
func (c *Classifier) OffTopic(text string) bool {
	return matches(c.offTopic, normalizeRunes([]rune(text)))
}

func (c *Classifier) hasQuestionWord(normalized []rune) bool {
	return containsAnyNormalized(normalized, c.profile.QuestionWords)
}

func (c *Classifier) hasContextTerm(normalized []rune) bool {
	return containsAnyNormalized(normalized, c.profile.ContextTerms)
}

// Normalize lowercases a text and folds the accented characters,
// the same preparation applied to every keyword match.
func Normalize(text string) string {
	return string(normalizeRunes([]rune(text)))
}

func buildMachine(keywords []string) (*goahocorasick.Machine, error) {
	if len(keywords) == 0 {
		return nil, nil
	}
	patterns := make([][]rune, len(keywords))
	for i, keyword := range keywords {
		patterns[i] = normalizeRunes([]rune(keyword))
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return m, nil
}

func matches(m *goahocorasick.Machine, normalized []rune) bool {
	if m == nil || len(normalized) == 0 {
		return false
	}
	return len(m.MultiPatternSearch(normalized, true)) > 0
}

func containsAnyNormalized(normalized []rune, terms []string) bool {
	text := string(normalized)
	for _, term := range terms {
		if strings.Contains(text, string(normalizeRunes([]rune(term)))) {
			return true
		}
	}
	return false
}

// normalizeRunes lower-cases and folds accented characters so that
// "Pénicilline" and "penicilline" land on the same pattern.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		out = append(out, foldRune(unicode.ToLower(r)))
	}
	return out
}

func foldRune(r rune) rune {
	switch r {
	case 'à', 'â', 'ä':
		return 'a'
	case 'é', 'è', 'ê', 'ë':
		return 'e'
	case 'î', 'ï':
		return 'i'
	case 'ô', 'ö':
		return 'o'
	case 'ù', 'û', 'ü':
		return 'u'
	case 'ç':
		return 'c'
	case 'œ':
		return 'o'
	default:
		return r
	}
}
