package faq

import "github.com/leasemint/dataroom/internal/i18n"

// defaultEntries is the built-in FAQ copy, used when the asset root carries
// no faq/<lang>.yml override. Answers are markdown.
var defaultEntries = map[i18n.Language][]Entry{
	i18n.LangEN: {
		{
			Question: "What is LeaseMint?",
			Answer:   "LeaseMint is an AI-powered fintech platform that transforms long-term rental contracts into secure, bank-financed and investor-funded cash-flow assets. It allows landlords to receive rent upfront, tenants to access housing via credit rather than guarantees, and investors to finance rental cash flows with predictable yields.",
		},
		{
			Question: "What problem does LeaseMint solve?",
			Answer:   "The long-term rental market is structurally inefficient:\n\n- Landlords face payment risk and cash-flow constraints\n- Tenants struggle with guarantor requirements and upfront costs\n- Investors lack access to secured, yield-generating residential assets\n\nLeaseMint solves this by securing the rental cash flow itself, rather than underwriting isolated tenant risk.",
		},
		{
			Question: "How does LeaseMint work?",
			Answer:   "1. A property is validated and listed on LeaseMint\n2. A tenant is pre-qualified using AI-driven KYC and scoring\n3. A dual contract is created: a standard rental contract and a financing contract covering the rent\n4. Investors fund the lease\n5. The landlord is paid upfront\n6. The tenant pays a structured monthly amount\n7. Investors receive yield over time",
		},
		{
			Question: "Who are LeaseMint's users?",
			Answer:   "LeaseMint operates a three-sided marketplace:\n\n- Tenants (students, expatriates, young professionals)\n- Landlords (private owners, coliving operators, residences)\n- Investors (retail and institutional)",
		},
		{
			Question: "Why is LeaseMint different from a traditional rental platform?",
			Answer:   "LeaseMint is not a listing platform. It is a financial infrastructure layer that:\n\n- Securitizes rental cash flows\n- Integrates KYC, credit, and payments\n- Enables upfront rent payment and secondary liquidity",
		},
		{
			Question: "How does LeaseMint reduce risk?",
			Answer:   "Risk is reduced through:\n\n- AI-driven tenant scoring and KYC\n- Property fair-value assessment\n- Diversified investor funding\n- Contractual separation of usage and financing\n- Automated monitoring and compliance workflows",
		},
		{
			Question: "What returns do investors get?",
			Answer:   "Investors finance rental contracts and earn:\n\n- 10-12% target annual yield (depending on contract)\n- Exposure to residential rental cash flows\n- Optional liquidity via a secondary market\n\nMinimum investment starts from small tickets (e.g. €50).",
		},
		{
			Question: "Is LeaseMint compliant?",
			Answer:   "Compliance is a core design principle:\n\n- Full KYC/AML processes\n- GDPR-compliant data handling\n- Progressive legal structuring aligned with EU regulations\n- Legal review of dual-contract architecture",
		},
		{
			Question: "What is tokenized in LeaseMint?",
			Answer:   "LeaseMint tokenizes usage rights and investment rights, not property ownership:\n\n- Usage tokens represent time-based occupancy rights\n- Investment tokens represent cash-flow entitlement\n\nThis enables transparency, traceability, and secondary market liquidity.",
		},
		{
			Question: "What is the business model?",
			Answer:   "LeaseMint generates revenue through:\n\n- Structuring fees\n- Service and management fees\n- Financing and servicing margins\n- Potential white-label licensing",
		},
		{
			Question: "What is the go-to-market strategy?",
			Answer:   "Phase 1 focuses on student housing in France, where demand is structural and guarantor issues are acute.\n\nPhase 2 expands to Europe and young professionals.\n\nPhase 3 targets broader residential and international markets.",
		},
		{
			Question: "What stage is LeaseMint at?",
			Answer:   "LeaseMint is in early stage / pre-seed, with:\n\n- MVP under development\n- Initial legal and banking validations\n- Pilot cities identified\n- Fundraising in progress to accelerate execution",
		},
		{
			Question: "Why now?",
			Answer:   "- Structural housing shortages\n- Increasing regulation of short-term rentals\n- Rising demand for alternative credit models\n- Maturity of AI, fintech and tokenization infrastructure",
		},
	},
	i18n.LangFR: {
		{
			Question: "Qu'est-ce que LeaseMint ?",
			Answer:   "LeaseMint est une plateforme fintech alimentée par l'IA qui transforme les contrats de location longue durée en actifs de flux de trésorerie sécurisés, financés par les banques et les investisseurs. Elle permet aux propriétaires de recevoir le loyer à l'avance, aux locataires d'accéder au logement via le crédit plutôt que des garanties, et aux investisseurs de financer des flux locatifs avec des rendements prévisibles.",
		},
		{
			Question: "Quel problème LeaseMint résout-il ?",
			Answer:   "Le marché de la location longue durée est structurellement inefficace :\n\n- Les propriétaires font face au risque d'impayés et aux contraintes de trésorerie\n- Les locataires peinent avec les exigences de garants et les coûts initiaux\n- Les investisseurs n'ont pas accès aux actifs résidentiels sécurisés générant du rendement\n\nLeaseMint résout cela en sécurisant le flux de trésorerie locatif lui-même, plutôt que de souscrire un risque locataire isolé.",
		},
		{
			Question: "Comment fonctionne LeaseMint ?",
			Answer:   "1. Un bien est validé et listé sur LeaseMint\n2. Un locataire est pré-qualifié via KYC et scoring pilotés par l'IA\n3. Un double contrat est créé : un contrat de location standard et un contrat de financement couvrant le loyer\n4. Les investisseurs financent le bail\n5. Le propriétaire est payé à l'avance\n6. Le locataire paie un montant mensuel structuré\n7. Les investisseurs reçoivent le rendement dans le temps",
		},
		{
			Question: "Qui sont les utilisateurs de LeaseMint ?",
			Answer:   "LeaseMint opère un marché à trois faces :\n\n- Locataires (étudiants, expatriés, jeunes professionnels)\n- Propriétaires (particuliers, opérateurs de coliving, résidences)\n- Investisseurs (particuliers et institutionnels)",
		},
		{
			Question: "Pourquoi LeaseMint est-il différent d'une plateforme locative traditionnelle ?",
			Answer:   "LeaseMint n'est pas une plateforme d'annonces. C'est une couche d'infrastructure financière qui :\n\n- Sécurise les flux de trésorerie locatifs\n- Intègre KYC, crédit et paiements\n- Permet le paiement du loyer à l'avance et la liquidité secondaire",
		},
		{
			Question: "Comment LeaseMint réduit-il le risque ?",
			Answer:   "Le risque est réduit grâce à :\n\n- Scoring locataire et KYC pilotés par l'IA\n- Évaluation de la juste valeur du bien\n- Financement diversifié par les investisseurs\n- Séparation contractuelle de l'usage et du financement\n- Workflows automatisés de suivi et de conformité",
		},
		{
			Question: "Quels rendements obtiennent les investisseurs ?",
			Answer:   "Les investisseurs financent des contrats de location et gagnent :\n\n- 10-12% de rendement annuel cible (selon le contrat)\n- Exposition aux flux de trésorerie locatifs résidentiels\n- Liquidité optionnelle via un marché secondaire\n\nL'investissement minimum commence à partir de petits tickets (ex. 50€).",
		},
		{
			Question: "LeaseMint est-il conforme ?",
			Answer:   "La conformité est un principe de conception fondamental :\n\n- Processus KYC/AML complets\n- Traitement des données conforme au RGPD\n- Structuration juridique progressive alignée sur les réglementations européennes\n- Revue juridique de l'architecture à double contrat",
		},
		{
			Question: "Qu'est-ce qui est tokenisé dans LeaseMint ?",
			Answer:   "LeaseMint tokenise les droits d'usage et les droits d'investissement, pas la propriété immobilière :\n\n- Les tokens d'usage représentent les droits d'occupation basés sur le temps\n- Les tokens d'investissement représentent le droit aux flux de trésorerie\n\nCela permet la transparence, la traçabilité et la liquidité sur le marché secondaire.",
		},
		{
			Question: "Quel est le modèle économique ?",
			Answer:   "LeaseMint génère des revenus via :\n\n- Frais de structuration\n- Frais de service et de gestion\n- Marges de financement et de gestion\n- Licence en marque blanche potentielle",
		},
		{
			Question: "Quelle est la stratégie de mise sur le marché ?",
			Answer:   "La phase 1 se concentre sur le logement étudiant en France, où la demande est structurelle et les problèmes de garants aigus.\n\nLa phase 2 s'étend à l'Europe et aux jeunes professionnels.\n\nLa phase 3 cible des marchés résidentiels plus larges et internationaux.",
		},
		{
			Question: "À quel stade en est LeaseMint ?",
			Answer:   "LeaseMint est en phase early stage / pre-seed, avec :\n\n- MVP en développement\n- Validations juridiques et bancaires initiales\n- Villes pilotes identifiées\n- Levée de fonds en cours pour accélérer l'exécution",
		},
		{
			Question: "Pourquoi maintenant ?",
			Answer:   "- Pénuries structurelles de logements\n- Régulation croissante des locations de courte durée\n- Demande croissante de modèles de crédit alternatifs\n- Maturité de l'IA, de la fintech et de l'infrastructure de tokenisation",
		},
	},
}
