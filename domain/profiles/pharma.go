package profiles

import "pharmabot/domain"

const pharmaSystemContext = `Tu es un assistant spécialisé dans le domaine pharmaceutique et de la santé (Pharma/MedTech).
Tu aides les utilisateurs avec des questions sur les médicaments, les dispositifs médicaux, la recherche pharmaceutique,
la réglementation, les essais cliniques, et les innovations en santé.
Tu dois TOUJOURS répondre en français et être précis et professionnel.`

const pharmaOffDomainReply = "Je suis spécialisé uniquement dans le domaine pharmaceutique et de la santé (Pharma/MedTech). " +
	"Je peux vous aider avec des questions sur les médicaments, les dispositifs médicaux, les essais cliniques, " +
	"la réglementation, et la recherche pharmaceutique. Comment puis-je vous aider dans ce domaine?"

const pharmaKeywordFormat = "Je comprends que votre question concerne le domaine pharmaceutique et de la santé, spécifiquement : %s.\n\n" +
	"Bien que je n'aie pas d'informations détaillées spécifiques sur votre question exacte, voici des ressources utiles :\n\n" +
	"Pour obtenir des informations précises :\n" +
	"• Consultez les notices officielles des médicaments ou dispositifs médicaux\n" +
	"• Contactez un pharmacien ou un professionnel de santé\n" +
	"• Consultez les bases de données officielles :\n" +
	"  - ANSM (France) : www.ansm.sante.fr\n" +
	"  - EMA (Europe) : www.ema.europa.eu\n" +
	"  - FDA (USA) : www.fda.gov\n\n" +
	"Je peux vous aider avec :\n" +
	"• Questions générales sur les médicaments (mécanismes, effets, posologie)\n" +
	"• Informations sur les essais cliniques et leurs phases\n" +
	"• Explications sur la réglementation pharmaceutique\n" +
	"• Questions sur la pharmacovigilance et la sécurité\n" +
	"• Informations sur la biotechnologie pharmaceutique\n\n" +
	"Pouvez-vous reformuler votre question de manière plus spécifique ?"

const pharmaGenericReply = "Je comprends que vous posez une question sur le domaine pharmaceutique et de la santé (Pharma/MedTech).\n\n" +
	"Je peux vous aider avec des questions sur :\n" +
	"• Médicaments et principes actifs (mécanismes, effets, posologie, indications)\n" +
	"• Dispositifs médicaux (MedTech) et leur classification\n" +
	"• Essais cliniques et recherche pharmaceutique\n" +
	"• Réglementation (FDA, EMA, ANSM, AMM)\n" +
	"• Pharmacovigilance et sécurité des médicaments\n" +
	"• Biotechnologie pharmaceutique (médicaments biologiques, biosimilaires, thérapies géniques)\n\n" +
	"Pour des informations très spécifiques :\n" +
	"• Consultez les notices officielles\n" +
	"• Contactez un pharmacien ou un professionnel de santé\n" +
	"• Consultez les bases de données officielles (ANSM, EMA, FDA)\n\n" +
	"Pouvez-vous reformuler votre question de manière plus précise sur l'un de ces domaines ?"

const pharmaContraindicationsReply = "Les contre-indications sont des situations où un médicament ne doit pas être utilisé " +
	"en raison d'un risque accru d'effets indésirables.\n\n" +
	"Contre-indications courantes :\n" +
	"• Allergies : allergie connue au médicament ou à ses composants\n" +
	"• Grossesse et allaitement : certains médicaments sont contre-indiqués\n" +
	"• Insuffisance rénale ou hépatique sévère : adaptation de la posologie ou contre-indication\n" +
	"• Interactions médicamenteuses : certains médicaments ne doivent pas être pris ensemble\n" +
	"• Conditions médicales préexistantes\n" +
	"• Âge : certains médicaments sont contre-indiqués chez les enfants ou personnes âgées\n\n" +
	"Exemples :\n" +
	"• Pénicillines : contre-indiquées en cas d'allergie aux bêta-lactamines\n" +
	"• AINS : contre-indiqués en cas d'insuffisance rénale sévère, ulcère gastrique actif\n" +
	"• Statines : contre-indiquées en cas de maladie hépatique active\n\n" +
	"Pour connaître les contre-indications d'un médicament spécifique, consultez la notice du médicament ou un professionnel de santé."

const pharmaResearchReply = "Le développement d'un nouveau médicament suit un processus long et rigoureux :\n\n" +
	"1. Découverte (2-5 ans) : identification de cibles thérapeutiques, découverte de molécules candidates\n" +
	"2. Développement préclinique (1-2 ans) : tests de toxicité, études de pharmacocinétique\n" +
	"3. Essais cliniques (5-10 ans) :\n" +
	"• Phase I : sécurité et tolérance (20-100 volontaires)\n" +
	"• Phase II : efficacité préliminaire (100-300 patients)\n" +
	"• Phase III : confirmation efficacité/sécurité (1000-3000 patients)\n" +
	"• Phase IV : surveillance post-commercialisation\n" +
	"4. Autorisation réglementaire (1-2 ans) : dossier d'AMM soumis aux agences (FDA, EMA, ANSM)\n" +
	"5. Commercialisation et surveillance : pharmacovigilance continue\n\n" +
	"Coût total : généralement 1-2 milliards d'euros et 10-15 ans de développement.\n" +
	"Taux de succès : seulement 1 molécule sur 10 000 testées arrive sur le marché."

// Pharma is the Pharmaceutique & Santé (Pharma/MedTech) variant.
func Pharma() domain.Profile {
	return domain.Profile{
		Name:          "pharma",
		Domain:        "Pharmaceutique & Santé (Pharma/MedTech)",
		SystemContext: pharmaSystemContext,

		Greetings:     []string{"bonjour", "salut", "hello", "hi"},
		GreetingReply: "Bonjour! Comment puis-je vous aider aujourd'hui?",
		Thanks:        []string{"merci", "thanks", "thank you"},
		ThanksReply:   "De rien! N'hésitez pas si vous avez d'autres questions.",
		EmptyReply: "Je n'ai pas compris votre message. Pouvez-vous reformuler votre question " +
			"concernant le domaine pharmaceutique et de la santé (Pharma/MedTech)?",
		Topics: []domain.TopicRule{
			{
				Name:     "contre-indications",
				Keywords: []string{"contre-indication", "contraindication", "interdit de prendre"},
				Reply:    pharmaContraindicationsReply,
			},
			{
				Name:     "recherche",
				Keywords: []string{"r&d", "nouveau médicament", "nouveau medicament", "développement d'un médicament"},
				Reply:    pharmaResearchReply,
			},
		},
		RepeatReplies: []string{
			"Vous venez de me poser cette question. Souhaitez-vous que je précise un point particulier de ma réponse précédente?",
			"Nous tournons en rond : je vous ai déjà répondu sur ce sujet. Essayez de reformuler ou de préciser votre question.",
		},

		RestrictDomain: true,
		DomainKeywords: []string{
			"médicament", "medicament", "drug", "molecule", "principe actif", "posologie", "dosage",
			"antibiotique", "antibiotic", "amoxicilline", "amoxicillin", "paracétamol", "paracetamol",
			"aspirine", "aspirin", "ibuprofène", "ibuprofen", "pillule", "comprimé", "gélule",
			"pénicilline", "penicillin", "effet secondaire", "side effect", "effet indésirable",
			"dispositif médical", "dispositif medical", "medical device", "medtech",
			"essai clinique", "clinical trial", "étude clinique", "phase",
			"réglementation", "regulation", "fda", "ema", "ansm", "amm",
			"recherche", "research", "développement", "development", "r&d",
			"pharmacovigilance", "sécurité", "safety", "surveillance",
			"biotechnologie", "biotechnology", "biotech", "biologique", "biologic",
			"santé", "health", "médical", "medical", "thérapeutique", "therapeutic", "thérapie",
			"fonctionne", "fonctionnement", "comment", "how", "mécanisme", "mechanism", "action",
		},
		OffTopicKeywords: []string{
			"recette", "cuisine", "football", "match de foot", "championnat", "météo",
			"horoscope", "bitcoin", "crypto-monnaie", "jeu vidéo", "film préféré", "série télé",
		},
		QuestionWords: []string{"comment", "pourquoi", "quoi", "quel", "quelle", "quels", "quelles", "que", "qu'est", "what", "how", "why"},
		ContextTerms:  []string{"traitement", "infection", "maladie", "symptôme", "symptome", "patient", "ordonnance", "pharmacie", "vaccin"},

		EntityMarkers:   []string{"médicament", "medicament", "drug", "principe", "actif"},
		EntitySuffixes:  []string{"ine", "ol", "ide", "ate", "azole", "mycin"},
		EntityStopwords: []string{"dose", "prise", "fois"},

		OffDomainReply: pharmaOffDomainReply,
		FallbackFormat: "Je comprends que vous dites '%s'. Pouvez-vous me donner plus de détails ou reformuler votre question?",
		KeywordFormat:  pharmaKeywordFormat,
		GenericReply:   pharmaGenericReply,
		FallbackGroups: []domain.KeywordGroup{
			{Label: "médicament", Keywords: []string{"médicament", "medicament", "drug"}},
			{Label: "dispositif médical", Keywords: []string{"dispositif", "device", "medtech"}},
			{Label: "essai clinique", Keywords: []string{"essai", "clinical trial", "phase"}},
			{Label: "réglementation", Keywords: []string{"réglementation", "reglementation", "regulation", "fda", "ema", "ansm"}},
			{Label: "pharmacovigilance", Keywords: []string{"pharmacovigilance", "effet indésirable", "effet indesirable"}},
			{Label: "biotechnologie", Keywords: []string{"biotechnologie", "biotech", "biologique"}},
		},

		CheckOutputDomain: true,
	}
}
