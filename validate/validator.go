// Package validate filtre les réponses générées avant de les montrer à
// l'utilisateur. Un candidat incohérent (charabia, boucles de mots,
// ponctuation pure, dérive hors domaine) est rejeté et la génération
// passe au backend suivant ou au repli déterministe.
package validate

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"

	"pharmabot/classify"
)

type Reason string

const (
	ReasonNone             Reason = ""
	ReasonTooShort         Reason = "too_short"
	ReasonTooLong          Reason = "too_long"
	ReasonLowAlpha         Reason = "low_alpha_ratio"
	ReasonCharRun          Reason = "char_run"
	ReasonSymbolRun        Reason = "symbol_run"
	ReasonWordEcho         Reason = "word_echo"
	ReasonConsonantRuns    Reason = "consonant_runs"
	ReasonNoCommonWords    Reason = "no_common_words"
	ReasonFewDistinctChars Reason = "few_distinct_chars"
	ReasonLowWordVariety   Reason = "low_word_variety"
	ReasonPunctuationOnly  Reason = "punctuation_only"
	ReasonPhraseLoop       Reason = "phrase_loop"
	ReasonOffTopic         Reason = "off_topic"
	ReasonNotFrench        Reason = "not_french"
	ReasonUnrelated        Reason = "unrelated_output"
)

const (
	minLength             = 3
	maxLength             = 500
	minAlphaRatio         = 0.5
	charRunLength         = 4
	charRunShare          = 0.3
	maxSymbolRun          = 5
	maxWordEcho           = 3
	wordEchoTextLimit     = 10
	maxConsonantRun       = 5
	consonantWordMinLen   = 5
	maxGibberishRatio     = 0.4
	commonWordExemptLimit = 8
	minDistinctChars      = 3
	minUniqueWordRatio    = 0.3
	phraseLoopMinWords    = 6
	languageCheckMinWords = 8
)

// commonWords ancre les textes longs dans du français ou de l'anglais
// réel. Un candidat de plus de huit mots sans aucun de ces mots-outils
// est presque toujours du bruit de sampling.
var commonWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"je", "tu", "il", "elle", "nous", "vous", "ils", "elles",
		"le", "la", "les", "un", "une", "des",
		"et", "ou", "mais", "donc", "car", "parce",
		"que", "qui", "quoi", "comment", "pourquoi", "où",
		"bonjour", "salut", "merci", "oui", "non",
		"i", "you", "he", "she", "we", "they",
		"the", "a", "an", "and", "or", "but",
		"hello", "hi", "thanks", "yes", "no",
		"cv", "curriculum", "vitae", "peux", "peut", "peuvent",
		"aide", "aider", "savoir", "sais", "savez",
		"votre", "vos", "mon", "ma", "mes",
		"avec", "sans", "pour", "dans", "sur", "sous",
	} {
		commonWords[w] = struct{}{}
	}
}

// Validator accepts or rejects generated candidates for one profile.
type Validator struct {
	classifier *classify.Classifier
	strict     bool
}

// NewValidator wires the profile classifier used for the output-domain
// and off-topic checks. strict enables the phrase-loop rule.
func NewValidator(classifier *classify.Classifier, strict bool) *Validator {
	return &Validator{classifier: classifier, strict: strict}
}

// Check runs every rule in order and returns the first failure.
// ReasonNone means the candidate may be shown to the user.
func (v *Validator) Check(text string) Reason {
	text = strings.TrimSpace(text)

	if reason := wellFormed(text); reason != ReasonNone {
		return reason
	}
	if reason := repetitive(text, v.strict); reason != ReasonNone {
		return reason
	}
	if v.classifier.OffTopic(text) {
		return ReasonOffTopic
	}
	if !v.classifier.RelatedOutput(text) {
		return ReasonUnrelated
	}
	if len(strings.Fields(text)) > languageCheckMinWords {
		// Les noms de molécules faussent la détection, on ne rejette
		// que sur un verdict fiable.
		info := whatlanggo.Detect(text)
		if info.IsReliable() && info.Lang != whatlanggo.Fra && info.Lang != whatlanggo.Eng {
			return ReasonNotFrench
		}
	}
	return ReasonNone
}

// Accept is the boolean form of Check.
func (v *Validator) Accept(text string) bool {
	return v.Check(text) == ReasonNone
}

func wellFormed(text string) Reason {
	runes := []rune(text)
	if len(runes) < minLength {
		return ReasonTooShort
	}
	if len(runes) > maxLength {
		return ReasonTooLong
	}

	alpha := 0
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			alpha++
		}
	}
	if float64(alpha)/float64(len(runes)) < minAlphaRatio {
		return ReasonLowAlpha
	}

	if hasDominantCharRun(runes) {
		return ReasonCharRun
	}
	if longestSymbolRun(runes) > maxSymbolRun {
		return ReasonSymbolRun
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) >= 3 && len(words) < wordEchoTextLimit {
		counts := map[string]int{}
		for _, w := range words {
			counts[w]++
			if counts[w] > maxWordEcho {
				return ReasonWordEcho
			}
		}
	}

	if gibberishRatio(strings.Fields(text)) > maxGibberishRatio {
		return ReasonConsonantRuns
	}

	if len(words) > commonWordExemptLimit && !containsCommonWord(words) {
		return ReasonNoCommonWords
	}
	return ReasonNone
}

func repetitive(text string, strict bool) Reason {
	compact := []rune(strings.ReplaceAll(text, " ", ""))

	distinct := map[rune]struct{}{}
	for _, r := range compact {
		distinct[r] = struct{}{}
	}
	if len(distinct) < minDistinctChars {
		return ReasonFewDistinctChars
	}

	words := strings.Fields(text)
	if len(words) > 0 {
		unique := map[string]struct{}{}
		for _, w := range words {
			unique[w] = struct{}{}
		}
		if float64(len(unique)) < float64(len(words))*minUniqueWordRatio {
			return ReasonLowWordVariety
		}
	}

	if len(compact) > 0 && punctuationOnly(compact) {
		return ReasonPunctuationOnly
	}

	if strict && len(words) >= phraseLoopMinWords && hasPhraseLoop(words) {
		return ReasonPhraseLoop
	}
	return ReasonNone
}

// hasDominantCharRun rejette les traînées comme "aaaaa" ou ",,,,,"
// quand le caractère répété occupe plus de 30% du texte.
func hasDominantCharRun(runes []rune) bool {
	for i := 0; i+charRunLength <= len(runes); i++ {
		r := runes[i]
		run := true
		for j := 1; j < charRunLength; j++ {
			if runes[i+j] != r {
				run = false
				break
			}
		}
		if !run {
			continue
		}
		total := 0
		for _, c := range runes {
			if c == r {
				total++
			}
		}
		if float64(total) > float64(len(runes))*charRunShare {
			return true
		}
	}
	return false
}

func longestSymbolRun(runes []rune) int {
	longest, current := 0, 0
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			current = 0
			continue
		}
		current++
		if current > longest {
			longest = current
		}
	}
	return longest
}

// gibberishRatio counts words whose letters run more than five
// consonants deep, a cheap signal for random sequences like "xqzvdv".
func gibberishRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	invalid := 0
	for _, word := range words {
		clean := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, word)
		if len([]rune(clean)) <= consonantWordMinLen {
			continue
		}
		if longestConsonantRun(clean) > maxConsonantRun {
			invalid++
		}
	}
	return float64(invalid) / float64(len(words))
}

func longestConsonantRun(word string) int {
	longest, current := 0, 0
	for _, r := range word {
		if unicode.IsLetter(r) && !isVowel(r) {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func containsCommonWord(words []string) bool {
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:")
		if _, ok := commonWords[w]; ok {
			return true
		}
	}
	return false
}

func punctuationOnly(runes []rune) bool {
	for _, r := range runes {
		if !strings.ContainsRune(".,!?;:", r) {
			return false
		}
	}
	return true
}

// hasPhraseLoop détecte une suite de trois mots qui revient plus d'une
// fois, typique du sampling qui tourne en boucle ("cv? cv? cv? ...").
func hasPhraseLoop(words []string) bool {
	seen := map[string]struct{}{}
	for i := 0; i+3 <= len(words); i++ {
		phrase := strings.Join(words[i:i+3], " ")
		if _, ok := seen[phrase]; ok {
			return true
		}
		seen[phrase] = struct{}{}
	}
	return false
}
