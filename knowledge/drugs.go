package knowledge

// Drug is one pre-written medication record.
type Drug struct {
	Key         string
	Name        string
	Class       string
	Indications []string
	Posology    string
	SideEffects []string
	Mechanism   string
}

// Fiches médicaments servies sans passer par un backend de génération.
var drugs = []Drug{
	{
		Key:   "famotidine",
		Name:  "Famotidine (Famodine)",
		Class: "Antagoniste des récepteurs H2",
		Indications: []string{
			"Traitement des ulcères gastriques et duodénaux",
			"Réduction de l'acidité gastrique (reflux gastro-œsophagien)",
			"Prévention des ulcères de stress",
			"Traitement du syndrome de Zollinger-Ellison",
		},
		Posology: "20-40 mg, 1 à 2 fois par jour selon l'indication",
		SideEffects: []string{
			"Troubles digestifs : nausées, diarrhée, constipation",
			"Maux de tête, vertiges",
			"Fatigue, somnolence",
			"Rarement : réactions allergiques, troubles hépatiques",
		},
		Mechanism: "Inhibe les récepteurs H2 de l'histamine, réduisant ainsi la sécrétion d'acide gastrique",
	},
	{
		Key:   "omeprazole",
		Name:  "Oméprazole",
		Class: "Inhibiteur de la pompe à protons (IPP)",
		Indications: []string{
			"Traitement des ulcères gastriques et duodénaux",
			"Reflux gastro-œsophagien",
			"Syndrome de Zollinger-Ellison",
			"Éradication de Helicobacter pylori",
		},
		Posology: "20-40 mg par jour, généralement le matin à jeun",
		SideEffects: []string{
			"Troubles digestifs : nausées, diarrhée, constipation",
			"Maux de tête",
			"Rarement : carence en vitamine B12, fractures osseuses",
		},
		Mechanism: "Inhibe de manière irréversible la pompe à protons (H+/K+-ATPase) dans les cellules pariétales gastriques",
	},
	{
		Key:   "amoxicilline",
		Name:  "Amoxicilline",
		Class: "Antibiotique bêta-lactamine (pénicilline)",
		Indications: []string{
			"Infections respiratoires : pneumonie, bronchite, sinusite",
			"Infections urinaires : cystite, pyélonéphrite",
			"Infections cutanées et des tissus mous",
			"Infections dentaires et buccales",
			"Otite moyenne",
			"Infections gynécologiques",
		},
		Posology: "Adultes : 500 mg à 1 g, 3 fois par jour. Enfants : 20-50 mg/kg/jour en 3 prises",
		SideEffects: []string{
			"Troubles digestifs : nausées, vomissements, diarrhée",
			"Réactions cutanées : éruptions, urticaire",
			"Réactions allergiques (plus rares) : anaphylaxie chez les personnes allergiques aux pénicillines",
			"Candidose buccale ou vaginale (surinfection fongique)",
		},
		Mechanism: "Inhibe la synthèse de la paroi cellulaire bactérienne en se liant aux protéines de liaison aux pénicillines (PBP), entraînant la lyse et la mort des bactéries",
	},
	{
		Key:   "penicilline",
		Name:  "Pénicilline",
		Class: "Antibiotique bêta-lactamine",
		Indications: []string{
			"Infections à streptocoques",
			"Syphilis",
			"Infections cutanées",
			"Prophylaxie de la fièvre rhumatismale",
		},
		Posology: "Varie selon l'indication et la forme (orale, injectable)",
		SideEffects: []string{
			"Réactions allergiques (fréquentes)",
			"Diarrhée",
			"Nausées",
			"Rarement : anaphylaxie",
		},
		Mechanism: "Inhibe la synthèse de la paroi cellulaire bactérienne en bloquant les enzymes de transpeptidation",
	},
	{
		Key:   "paracetamol",
		Name:  "Paracétamol (Acétaminophène)",
		Class: "Analgésique et antipyrétique",
		Indications: []string{
			"Douleur légère à modérée",
			"Fièvre",
			"Maux de tête",
			"Douleurs dentaires",
		},
		Posology: "Adultes : 500-1000 mg, 3-4 fois par jour (max 4g/jour). Enfants : 10-15 mg/kg toutes les 4-6h",
		SideEffects: []string{
			"Rare aux doses thérapeutiques",
			"Surdosage : hépatotoxicité sévère, insuffisance hépatique",
		},
		Mechanism: "Inhibe la cyclooxygénase (COX) dans le système nerveux central, réduisant la synthèse de prostaglandines impliquées dans la douleur et la fièvre",
	},
	{
		Key:   "ibuprofene",
		Name:  "Ibuprofène",
		Class: "Anti-inflammatoire non stéroïdien (AINS)",
		Indications: []string{
			"Douleur légère à modérée",
			"Inflammation",
			"Fièvre",
			"Arthrite, rhumatismes",
		},
		Posology: "200-400 mg, 3-4 fois par jour (max 1200-2400 mg/jour selon indication)",
		SideEffects: []string{
			"Troubles digestifs : nausées, douleurs abdominales, ulcères gastriques",
			"Maux de tête, vertiges",
			"Risque cardiovasculaire (à long terme)",
			"Insuffisance rénale (à fortes doses)",
		},
		Mechanism: "Inhibe les enzymes COX-1 et COX-2, réduisant la synthèse de prostaglandines impliquées dans l'inflammation, la douleur et la fièvre",
	},
	{
		Key:   "metformine",
		Name:  "Metformine",
		Class: "Biguanide antidiabétique",
		Indications: []string{
			"Diabète de type 2",
			"Prévention du diabète de type 2 (chez patients à risque)",
		},
		Posology: "500-1000 mg, 2-3 fois par jour (max 2550 mg/jour)",
		SideEffects: []string{
			"Troubles digestifs : nausées, diarrhée, goût métallique",
			"Acidose lactique (rare mais grave)",
			"Carence en vitamine B12 (à long terme)",
		},
		Mechanism: "Réduit la production hépatique de glucose, améliore la sensibilité à l'insuline, et réduit l'absorption intestinale du glucose",
	},
	{
		Key:   "atorvastatine",
		Name:  "Atorvastatine",
		Class: "Statine (inhibiteur de l'HMG-CoA réductase)",
		Indications: []string{
			"Hypercholestérolémie",
			"Prévention des événements cardiovasculaires",
			"Syndrome coronarien aigu",
		},
		Posology: "10-80 mg une fois par jour, généralement le soir",
		SideEffects: []string{
			"Douleurs musculaires, myopathie",
			"Troubles hépatiques (élévation des transaminases)",
			"Rarement : rhabdomyolyse",
			"Troubles digestifs",
		},
		Mechanism: "Inhibe l'enzyme HMG-CoA réductase, réduisant ainsi la synthèse du cholestérol dans le foie et augmentant l'expression des récepteurs LDL",
	},
}
