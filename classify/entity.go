package classify

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Entity extracts a probable drug name from the message. Detection is
// heuristic: a marker word followed by a candidate, or a word carrying a
// typical pharmaceutical suffix.
func (c *Classifier) Entity(message string) (string, bool) {
	normalized := string(normalizeRunes([]rune(message)))
	// Les élisions françaises collent l'article au nom (l'amoxicilline).
	normalized = strings.NewReplacer("'", " ", "’", " ").Replace(normalized)
	words := strings.Fields(normalized)
	words = lo.Map(words, func(w string, _ int) string { return trimPunct(w) })

	for i, word := range words {
		if !lo.Contains(c.profile.EntityMarkers, word) {
			continue
		}
		if i+1 < len(words) && len(words[i+1]) > 3 && isAlphabetic(words[i+1]) {
			return capitalize(words[i+1]), true
		}
	}

	for _, word := range words {
		if len(word) <= 4 || !isAlphabetic(word) {
			continue
		}
		if lo.Contains(c.profile.EntityStopwords, word) {
			continue
		}
		for _, suffix := range c.profile.EntitySuffixes {
			if strings.HasSuffix(word, suffix) {
				return capitalize(word), true
			}
		}
	}
	return "", false
}

func trimPunct(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isAlphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(word) > 0
}

func capitalize(word string) string {
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
