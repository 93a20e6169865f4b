package knowledge

// Entry is one pre-written paragraph on a domain topic other than a
// medication: essais cliniques, réglementation, pharmacovigilance,
// dispositifs médicaux, biotechnologie.
type Entry struct {
	Key      string
	Category string
	Title    string
	Keywords []string
	Body     string
}

var entries = []Entry{
	{
		Key:      "phase_iv",
		Category: "clinical_trial",
		Title:    "Phase IV",
		Keywords: []string{"phase iv", "phase 4", "post-commercialisation"},
		Body: "Phase IV (post-commercialisation)\n\nObjectif : surveillance à long terme après autorisation\n" +
			"Participants : plusieurs milliers de patients\n" +
			"Durée : plusieurs années\n" +
			"Focus : effets secondaires rares, efficacité en conditions réelles",
	},
	{
		Key:      "phase_iii",
		Category: "clinical_trial",
		Title:    "Phase III",
		Keywords: []string{"phase iii", "phase 3"},
		Body: "Phase III\n\nObjectif : confirmer l'efficacité et la sécurité\n" +
			"Participants : 1000-3000 patients ou plus\n" +
			"Durée : 1-4 ans\n" +
			"Focus : efficacité vs placebo/traitement standard, profil de sécurité complet",
	},
	{
		Key:      "phase_ii",
		Category: "clinical_trial",
		Title:    "Phase II",
		Keywords: []string{"phase ii", "phase 2"},
		Body: "Phase II\n\nObjectif : évaluer l'efficacité préliminaire et la posologie\n" +
			"Participants : 100-300 patients\n" +
			"Durée : plusieurs mois à 2 ans\n" +
			"Focus : efficacité, dose optimale, effets secondaires",
	},
	{
		Key:      "phase_i",
		Category: "clinical_trial",
		Title:    "Phase I",
		Keywords: []string{"phase i", "phase 1"},
		Body: "Phase I\n\nObjectif : évaluer la sécurité et la tolérance\n" +
			"Participants : 20-100 volontaires sains ou patients\n" +
			"Durée : quelques mois\n" +
			"Focus : dosage, pharmacocinétique, effets secondaires",
	},
	{
		Key:      "essai_clinique",
		Category: "clinical_trial",
		Title:    "Essai clinique",
		Keywords: []string{"essai clinique", "clinical trial", "étude clinique", "etude clinique"},
		Body: "Un essai clinique est une étude scientifique réalisée chez l'humain pour évaluer " +
			"l'efficacité et la sécurité d'un médicament, dispositif médical, ou traitement.\n\n" +
			"Phases :\n" +
			"• Phase I : évaluer la sécurité et la tolérance\n" +
			"• Phase II : évaluer l'efficacité préliminaire et la posologie\n" +
			"• Phase III : confirmer l'efficacité et la sécurité\n" +
			"• Phase IV : surveillance à long terme après autorisation\n\n" +
			"Méthodologie : randomisation, double aveugle, contrôle par placebo, groupe témoin.",
	},
	{
		Key:      "fda",
		Category: "regulation",
		Title:    "FDA",
		Keywords: []string{"fda"},
		Body: "FDA (Food and Drug Administration, États-Unis)\n\n" +
			"Agence fédérale réglementant les médicaments, dispositifs médicaux, aliments, et cosmétiques.\n\n" +
			"Processus d'autorisation :\n" +
			"• NDA : New Drug Application, pour nouveaux médicaments\n" +
			"• ANDA : pour médicaments génériques\n" +
			"• BLA : pour produits biologiques\n" +
			"• PMA : pour dispositifs médicaux de classe III\n" +
			"• 510(k) : notification pré-commercialisation pour dispositifs médicaux",
	},
	{
		Key:      "ema",
		Category: "regulation",
		Title:    "EMA",
		Keywords: []string{"ema"},
		Body: "EMA (European Medicines Agency, Union Européenne)\n\n" +
			"Agence européenne d'évaluation des médicaments.\n\n" +
			"Procédures d'autorisation : centralisée (tous les États membres), décentralisée, " +
			"reconnaissance mutuelle, nationale.\n\n" +
			"Comités : CHMP (médicaments humains), COMP (médicaments orphelins), PDCO (médicaments pédiatriques).",
	},
	{
		Key:      "ansm",
		Category: "regulation",
		Title:    "ANSM",
		Keywords: []string{"ansm"},
		Body: "ANSM (Agence Nationale de Sécurité du Médicament et des produits de santé, France)\n\n" +
			"Autorité compétente pour l'évaluation, l'autorisation et la surveillance des médicaments " +
			"et dispositifs médicaux en France.\n\n" +
			"Responsabilités : autorisation de mise sur le marché (AMM), évaluation des dispositifs médicaux, " +
			"pharmacovigilance et matériovigilance, inspection des établissements pharmaceutiques, " +
			"contrôle de la publicité des médicaments.",
	},
	{
		Key:      "amm",
		Category: "regulation",
		Title:    "AMM",
		Keywords: []string{"amm", "autorisation de mise sur le marché", "autorisation de mise sur le marche"},
		Body: "AMM (Autorisation de Mise sur le Marché)\n\n" +
			"Autorisation administrative nécessaire pour commercialiser un médicament.\n\n" +
			"Dossier : qualité (composition, fabrication, contrôle), sécurité (données précliniques), " +
			"efficacité (essais cliniques phases I, II, III), plan de gestion des risques (RMP).\n\n" +
			"Durée de validité : 5 ans renouvelable, puis illimitée après réévaluation.",
	},
	{
		Key:      "pharmacovigilance",
		Category: "pharmacovigilance",
		Title:    "Pharmacovigilance",
		Keywords: []string{"pharmacovigilance", "effet indésirable", "effet indesirable", "signalement"},
		Body: "Pharmacovigilance\n\n" +
			"Science et activités relatives à la détection, l'évaluation, la compréhension et la prévention " +
			"des effets indésirables des médicaments.\n\n" +
			"Objectifs :\n" +
			"• Détecter les effets indésirables rares ou à long terme\n" +
			"• Identifier les nouveaux risques\n" +
			"• Évaluer le rapport bénéfice/risque\n" +
			"• Prendre des mesures correctives (modification notice, restriction, retrait)\n\n" +
			"Signalement : professionnels de santé, patients et fabricants déclarent tout effet indésirable " +
			"suspecté, sous 15 jours pour les effets graves.",
	},
	{
		Key:      "materiovigilance",
		Category: "pharmacovigilance",
		Title:    "Matériovigilance",
		Keywords: []string{"matériovigilance", "materiovigilance"},
		Body: "Matériovigilance\n\n" +
			"Surveillance des incidents et risques liés aux dispositifs médicaux.\n\n" +
			"Objectifs : détecter les dysfonctionnements des dispositifs médicaux, identifier les risques " +
			"pour la sécurité des patients, prendre des mesures correctives (rappel, modification, retrait).",
	},
	{
		Key:      "dispositif_medical",
		Category: "medical_device",
		Title:    "Dispositif médical",
		Keywords: []string{"dispositif médical", "dispositif medical", "medical device", "medtech"},
		Body: "Un dispositif médical est tout instrument, appareil, équipement, logiciel, implant, réactif, " +
			"matériau ou autre article destiné par le fabricant à être utilisé chez l'homme à des fins médicales.\n\n" +
			"Classes :\n" +
			"• Classe I : risque faible (fauteuil roulant, béquilles, lunettes de vue)\n" +
			"• Classe IIa : risque moyen-faible (lentilles de contact, appareils auditifs)\n" +
			"• Classe IIb : risque moyen-élevé (préservatifs, seringues)\n" +
			"• Classe III : risque élevé (implants cardiaques, stents coronariens, prothèses de hanche)\n\n" +
			"Réglementation : Règlement (UE) 2017/745 (MDR) en Europe, FDA 510(k) ou PMA aux États-Unis, " +
			"ANSM en France. Le marquage CE atteste de la conformité aux exigences essentielles.",
	},
	{
		Key:      "implant",
		Category: "medical_device",
		Title:    "Implant",
		Keywords: []string{"implant", "prothèse", "prothese", "pacemaker", "stent"},
		Body: "Implant\n\n" +
			"Dispositif médical implantable conçu pour être placé à l'intérieur ou à la surface du corps humain.\n\n" +
			"Exemples : implants cardiaques (pacemakers, défibrillateurs), prothèses articulaires (hanche, genou), " +
			"stents coronariens, implants dentaires, implants mammaires.\n\n" +
			"Surveillance post-commercialisation obligatoire, traçabilité, registres d'implants.",
	},
	{
		Key:      "biotechnologie",
		Category: "biotech",
		Title:    "Biotechnologie",
		Keywords: []string{"biotechnologie", "biotech"},
		Body: "Biotechnologie pharmaceutique\n\n" +
			"Utilisation d'organismes vivants ou de leurs composants pour produire des médicaments " +
			"ou des technologies médicales.\n\n" +
			"Applications :\n" +
			"• Production de médicaments biologiques (protéines recombinantes, anticorps monoclonaux)\n" +
			"• Thérapies géniques\n" +
			"• Thérapies cellulaires\n" +
			"• Vaccins recombinants",
	},
	{
		Key:      "medicament_biologique",
		Category: "biotech",
		Title:    "Médicament biologique",
		Keywords: []string{"médicament biologique", "medicament biologique", "biologique", "biologic"},
		Body: "Médicament biologique\n\n" +
			"Médicament produit à partir de sources biologiques (cellules, organismes vivants).\n\n" +
			"Exemples : insuline recombinante, anticorps monoclonaux (trastuzumab, rituximab), " +
			"hormones de croissance, facteurs de coagulation, vaccins (hépatite B, HPV).\n\n" +
			"Caractéristiques : molécules complexes difficiles à caractériser complètement, variabilité " +
			"naturelle du processus de production, risque de réactions immunitaires.",
	},
	{
		Key:      "biosimilaire",
		Category: "biotech",
		Title:    "Biosimilaire",
		Keywords: []string{"biosimilaire", "biosimilar"},
		Body: "Biosimilaire\n\n" +
			"Médicament biologique similaire à un médicament biologique de référence déjà autorisé.\n\n" +
			"Exigences : similitude démontrée en termes de qualité, sécurité et efficacité, études " +
			"comparatives avec le médicament de référence, évaluation spécifique de l'immunogénicité.\n\n" +
			"Avantages : réduction des coûts, accès élargi aux traitements, concurrence sur le marché.",
	},
	{
		Key:      "therapie_genique",
		Category: "biotech",
		Title:    "Thérapie génique",
		Keywords: []string{"thérapie génique", "therapie genique", "gene therapy"},
		Body: "Thérapie génique\n\n" +
			"Technique thérapeutique consistant à introduire du matériel génétique dans les cellules " +
			"d'un patient pour traiter une maladie.\n\n" +
			"Approches : remplacement de gène défectueux, inactivation de gène pathogène, introduction " +
			"de nouveau gène thérapeutique.\n\n" +
			"Vecteurs : virus modifiés (adénovirus, lentivirus, AAV), vecteurs non viraux (liposomes, nanoparticules).\n\n" +
			"Applications : maladies génétiques rares, cancers, maladies dégénératives.",
	},
	{
		Key:      "therapie_cellulaire",
		Category: "biotech",
		Title:    "Thérapie cellulaire",
		Keywords: []string{"thérapie cellulaire", "therapie cellulaire", "car-t", "cellules souches"},
		Body: "Thérapie cellulaire\n\n" +
			"Utilisation de cellules vivantes comme traitement médical.\n\n" +
			"Types : cellules souches hématopoïétiques pour greffes de moelle osseuse, CAR-T cells " +
			"(Chimeric Antigen Receptor T-cells) pour cancers, cellules mésenchymateuses pour réparation tissulaire.",
	},
}
