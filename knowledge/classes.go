package knowledge

import (
	"fmt"
	"strings"

	"pharmabot/classify"
)

// DrugClass décrit une classe thérapeutique inférée du nom d'un
// médicament absent des fiches. markers se compare au nom normalisé.
// Body attend deux arguments indexés : le nom puis le mécanisme.
type DrugClass struct {
	Key      string
	Markers  []string
	Specific string
	Body     string
}

// Classes ordonnées, la première dont un marqueur matche gagne. La
// classe par défaut ferme la liste avec des marqueurs vides.
var drugClasses = []DrugClass{
	{
		Key:      "antibiotic",
		Markers:  []string{"cilline", "mycin", "cycline", "floxacine"},
		Specific: "inhibe la croissance ou tue les bactéries en ciblant des structures spécifiques",
		Body: "Les antibiotiques comme %[1]s fonctionnent en ciblant des structures spécifiques des bactéries :\n\n" +
			"• Inhibition de la synthèse de la paroi cellulaire : empêche la formation de la paroi, " +
			"entraînant la lyse bactérienne (pénicillines, céphalosporines)\n" +
			"• Inhibition de la synthèse protéique : bloque la production de protéines essentielles (macrolides, tétracyclines)\n" +
			"• Inhibition de la réplication de l'ADN : empêche la division bactérienne (quinolones)\n" +
			"• Inhibition du métabolisme : bloque des voies métaboliques essentielles (sulfamides)\n\n" +
			"%[1]s appartient à la classe des antibiotiques, ce qui signifie qu'il %[2]s.\n\n" +
			"Le mécanisme exact peut varier selon la souche bactérienne et la résistance. " +
			"Consultez un professionnel de santé pour des informations spécifiques.",
	},
	{
		Key:      "anti_inflammatory",
		Markers:  []string{"profene", "coxib", "diclofenac"},
		Specific: "inhibe les enzymes COX, réduisant la production de prostaglandines inflammatoires",
		Body: "Les anti-inflammatoires comme %[1]s fonctionnent en réduisant l'inflammation :\n\n" +
			"• Inhibition des enzymes COX : bloque la cyclooxygénase (COX-1 et/ou COX-2), " +
			"réduisant la production de prostaglandines inflammatoires\n" +
			"• Réduction de la douleur : les prostaglandines sont impliquées dans la transmission de la douleur\n" +
			"• Réduction de la fièvre : action sur le centre de régulation de la température\n" +
			"• Réduction de l'inflammation : diminue le gonflement, la rougeur, et la chaleur\n\n" +
			"%[1]s %[2]s.\n\n" +
			"Les AINS peuvent avoir des effets secondaires digestifs. Consultez un professionnel de santé.",
	},
	{
		Key:      "analgesic",
		Markers:  []string{"paracetamol", "acetaminophen"},
		Specific: "inhibe la cyclooxygénase dans le système nerveux central",
		Body: "Les analgésiques comme %[1]s fonctionnent pour soulager la douleur :\n\n" +
			"• Action centrale : agissent sur le système nerveux central pour réduire la perception de la douleur\n" +
			"• Inhibition des prostaglandines : réduit les médiateurs de la douleur\n" +
			"• Modulation des récepteurs : interagit avec les récepteurs de la douleur\n\n" +
			"%[1]s %[2]s.\n\n" +
			"Respectez la posologie recommandée pour éviter les effets secondaires.",
	},
	{
		Key:      "default",
		Specific: "agit selon un mécanisme spécifique à sa classe",
		Body: "%[1]s fonctionne selon un mécanisme d'action spécifique à sa classe thérapeutique : il %[2]s.\n\n" +
			"Le mécanisme d'action dépend de plusieurs facteurs :\n" +
			"• La cible moléculaire du médicament\n" +
			"• La voie d'administration\n" +
			"• La pharmacocinétique (absorption, distribution, métabolisme, élimination)\n" +
			"• Les interactions avec d'autres substances\n\n" +
			"Pour connaître le mécanisme précis de %[1]s, consultez la notice du médicament " +
			"ou un professionnel de santé.",
	},
}

// inferClass résout une classe thérapeutique depuis le nom seul.
func inferClass(name string) DrugClass {
	normalized := classify.Normalize(name)
	for _, class := range drugClasses {
		for _, marker := range class.Markers {
			if strings.Contains(normalized, marker) {
				return class
			}
		}
	}
	return drugClasses[len(drugClasses)-1]
}

func (c DrugClass) mechanismAnswer(name string) string {
	return fmt.Sprintf(c.Body, name, c.Specific)
}
