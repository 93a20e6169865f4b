package profiles

import "pharmabot/domain"

const cvSystemContext = `Tu es un assistant spécialisé dans la rédaction de CV et de lettres de motivation.
Tu aides les utilisateurs à structurer, rédiger et améliorer leur candidature.
Tu dois TOUJOURS répondre en français, de manière claire et bienveillante.`

// CV is the CV / lettre de motivation variant. It accepts any subject,
// so the domain restriction and the output relatedness check stay off.
func CV() domain.Profile {
	return domain.Profile{
		Name:          "cv",
		Domain:        "CV & Lettre de motivation",
		SystemContext: cvSystemContext,

		Greetings:     []string{"bonjour", "salut", "hello", "hi"},
		GreetingReply: "Bonjour! Comment puis-je vous aider aujourd'hui?",
		Thanks:        []string{"merci", "thanks", "thank you"},
		ThanksReply:   "De rien! N'hésitez pas si vous avez d'autres questions.",
		EmptyReply:    "Je n'ai pas compris votre message. Pouvez-vous reformuler?",
		Topics: []domain.TopicRule{
			{
				Name:     "cv",
				Keywords: []string{"cv", "c.v.", "curriculum vitae", "cv?"},
				Reply: "Je peux vous aider avec votre CV! Que souhaitez-vous savoir? " +
					"Par exemple, je peux vous aider à rédiger une section ou à améliorer votre présentation.",
				Exact: true,
			},
		},
		RepeatReplies: []string{
			"Vous venez de me poser cette question. Souhaitez-vous que je précise un point particulier de ma réponse précédente?",
			"Nous tournons en rond : je vous ai déjà répondu sur ce sujet. Essayez de reformuler ou de préciser votre question.",
		},

		RestrictDomain: false,
		DomainKeywords: []string{
			"cv", "curriculum", "vitae", "lettre", "motivation", "candidature",
			"entretien", "recruteur", "recrutement", "expérience", "experience",
			"compétence", "competence", "diplôme", "diplome", "poste", "emploi",
		},

		EntityMarkers:   nil,
		EntitySuffixes:  nil,
		EntityStopwords: nil,

		FallbackFormat: "Je comprends que vous dites '%s'. Pouvez-vous me donner plus de détails ou reformuler votre question?",

		CheckOutputDomain: false,
	}
}
