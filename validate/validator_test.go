package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pharmabot/classify"
	"pharmabot/domain/profiles"
)

func newTestValidator(t *testing.T, strict bool) *Validator {
	t.Helper()
	profile, err := profiles.ByName("pharma")
	require.NoError(t, err)
	classifier, err := classify.NewClassifier(profile)
	require.NoError(t, err)
	return NewValidator(classifier, strict)
}

func TestValidator_Check(t *testing.T) {
	validator := newTestValidator(t, false)

	tests := []struct {
		name   string
		text   string
		reason Reason
	}{
		{
			name:   "Coherent pharma answer passes",
			text:   "Le paracétamol est un antalgique utilisé pour traiter la douleur et la fièvre.",
			reason: ReasonNone,
		},
		{
			name:   "Too short",
			text:   "ok",
			reason: ReasonTooShort,
		},
		{
			name:   "Too long",
			text:   strings.Repeat("le médicament agit sur la douleur ", 20),
			reason: ReasonTooLong,
		},
		{
			name:   "Punctuation soup fails the alphabetic ratio",
			text:   ",,,,,,",
			reason: ReasonLowAlpha,
		},
		{
			name:   "Dominant character run",
			text:   "aaaaaaaaaa oui",
			reason: ReasonCharRun,
		},
		{
			name:   "Long symbol run",
			text:   "le traitement agit #!?#!?# sur la douleur et la fièvre du patient",
			reason: ReasonSymbolRun,
		},
		{
			name:   "Word echoed in a short text",
			text:   "dose dose dose dose le soir",
			reason: ReasonWordEcho,
		},
		{
			name:   "Consonant gibberish",
			text:   "xqzvdvpq cvbnpqrt wqzxcvbn",
			reason: ReasonConsonantRuns,
		},
		{
			name: "Long text without any function word",
			text: "traitement antibiotique infection bactérienne posologie adulte matin soir surveillance " +
				"prescription renouvellement pharmacie",
			reason: ReasonNoCommonWords,
		},
		{
			name:   "Pure punctuation with spacing",
			text:   ".  ,  !  ;  :  ?",
			reason: ReasonPunctuationOnly,
		},
		{
			name:   "Off-topic drift",
			text:   "Voici une excellente recette de cuisine pour votre dîner de ce soir.",
			reason: ReasonOffTopic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.reason, validator.Check(tt.text))
			req.Equal(tt.reason == ReasonNone, validator.Accept(tt.text))
		})
	}
}

func TestValidator_PhraseLoopOnlyWhenStrict(t *testing.T) {
	req := require.New(t)
	text := "le médicament agit bien le médicament agit bien le médicament agit bien"

	lenient := newTestValidator(t, false)
	req.Equal(ReasonNone, lenient.Check(text))

	strict := newTestValidator(t, true)
	req.Equal(ReasonPhraseLoop, strict.Check(text))
}

func TestValidator_UnrelatedOutputRejectedForRestrictedProfile(t *testing.T) {
	req := require.New(t)
	validator := newTestValidator(t, false)

	// Bien formé et en français, mais sans aucun terme du domaine.
	req.Equal(ReasonUnrelated, validator.Check("Je vous souhaite une très bonne journée avec le soleil."))
}

func TestValidator_ShortTextsExemptFromCommonWordRule(t *testing.T) {
	req := require.New(t)
	validator := newTestValidator(t, false)

	req.Equal(ReasonNone, validator.Check("posologie adulte du traitement antibiotique"))
}

func TestValidator_LanguageGate(t *testing.T) {
	req := require.New(t)
	validator := newTestValidator(t, false)

	// Une langue étrangère détectée avec fiabilité est rejetée.
	req.Equal(ReasonNotFrench, validator.Check(
		"El medicamento se utiliza para tratar infecciones bacterianas y reducir la fiebre en los pacientes adultos."))

	// Un texte français chargé de noms de molécules reste accepté.
	req.Equal(ReasonNone, validator.Check(
		"Le paracétamol, l'ibuprofène et l'amoxicilline sont des médicaments courants contre la douleur et la fièvre."))
}
