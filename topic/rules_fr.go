package topic

// frenchRules is the routing table shared by the CGI and BOFiP corpora.
//
// Order is deliberate and load-bearing: specific regimes (plus-values,
// location meublée) come before the broad income-tax rules that their
// queries would otherwise fall into. First match wins.
var frenchRules = []Rule{
	{
		Name: "plus_value_immobiliere",
		MatchTerms: []string{
			"plus-value immobilière", "plus value immobilière",
			"plus-values immobilières", "plus values immobilières",
			"résidence secondaire", "vente immobilière",
			"vente d'un bien", "vente de ma maison", "vendre mon appartement",
		},
		EnhancedQuery: "article 150 U CGI plus-value immobilière cession exonération résidence principale abattement durée de détention",
		Keywords: []string{
			"plus-value", "immobilière", "cession", "150", "abattement",
			"exonération", "résidence", "détention",
		},
	},
	{
		Name: "plus_value_mobiliere",
		MatchTerms: []string{
			"plus-value mobilière", "plus value mobilière",
			"cession de titres", "vente d'actions", "vente de parts sociales",
			"plus-values sur titres", "stock-options",
		},
		EnhancedQuery: "article 150-0 A CGI plus-values cession valeurs mobilières droits sociaux prélèvement forfaitaire unique",
		Keywords: []string{
			"plus-value", "mobilière", "titres", "cession", "150-0",
			"valeurs", "actions",
		},
	},
	{
		Name: "location_meublee",
		MatchTerms: []string{
			"lmnp", "lmp", "location meublée", "loueur en meublé",
			"meublé de tourisme", "airbnb",
		},
		EnhancedQuery: "article 155 CGI location meublée non professionnelle bénéfices industriels commerciaux micro-BIC abattement",
		Keywords: []string{
			"meublée", "location", "loueur", "micro-bic", "bénéfices",
			"abattement",
		},
	},
	{
		Name: "micro_entreprise",
		MatchTerms: []string{
			"micro-entreprise", "micro entreprise", "auto-entrepreneur",
			"auto entrepreneur", "micro-bic", "micro-bnc", "micro-fiscal",
		},
		EnhancedQuery: "article 50-0 CGI régime micro-entreprise micro-BIC micro-BNC seuils chiffre d'affaires abattement forfaitaire",
		Keywords: []string{
			"micro", "régime", "seuils", "chiffre", "abattement",
			"forfaitaire", "50-0",
		},
	},
	{
		Name: "flat_tax_dividendes",
		MatchTerms: []string{
			"flat tax", "pfu", "prélèvement forfaitaire unique",
			"dividende", "dividendes", "revenus de capitaux",
		},
		EnhancedQuery: "article 200 A CGI prélèvement forfaitaire unique 30 % revenus capitaux mobiliers dividendes option barème",
		Keywords: []string{
			"prélèvement", "forfaitaire", "unique", "dividendes", "capitaux",
			"200", "12,8",
		},
	},
	{
		Name: "assurance_vie",
		MatchTerms: []string{
			"assurance-vie", "assurance vie", "rachat d'un contrat",
			"contrat de capitalisation",
		},
		EnhancedQuery: "article 125-0 A CGI assurance-vie rachat produits contrat huit ans abattement prélèvement libératoire",
		Keywords: []string{
			"assurance-vie", "rachat", "contrat", "produits", "abattement",
			"125-0",
		},
	},
	{
		Name: "ifi",
		MatchTerms: []string{
			"ifi", "impôt sur la fortune", "fortune immobilière",
		},
		EnhancedQuery: "article 964 CGI impôt sur la fortune immobilière patrimoine seuil 1 300 000 euros barème",
		Keywords: []string{
			"fortune", "immobilière", "patrimoine", "seuil", "barème", "964",
		},
	},
	{
		Name: "quotient_familial",
		MatchTerms: []string{
			"quotient familial", "parts fiscales", "demi-part",
			"nombre de parts",
		},
		EnhancedQuery: "article 194 CGI quotient familial nombre de parts charges de famille plafonnement",
		Keywords: []string{
			"quotient", "familial", "parts", "charges", "plafonnement", "194",
		},
	},
	{
		Name: "prelevements_sociaux",
		MatchTerms: []string{
			"csg", "crds", "prélèvements sociaux", "prélèvement social",
		},
		EnhancedQuery: "prélèvements sociaux CSG CRDS taux 17,2 % revenus du patrimoine produits de placement",
		Keywords: []string{
			"csg", "crds", "prélèvements", "sociaux", "patrimoine", "17,2",
		},
	},
	{
		Name: "succession_donation",
		MatchTerms: []string{
			"succession", "donation", "héritage", "droits de mutation",
			"hériter",
		},
		EnhancedQuery: "article 777 CGI droits de mutation à titre gratuit succession donation barème abattement ligne directe",
		Keywords: []string{
			"succession", "donation", "mutation", "abattement", "barème",
			"777",
		},
	},
	{
		Name: "credit_reduction_impot",
		MatchTerms: []string{
			"crédit d'impôt", "réduction d'impôt", "dons aux œuvres",
			"dons aux associations",
		},
		EnhancedQuery: "article 200 CGI réduction d'impôt dons crédit d'impôt dépenses plafond revenu imposable",
		Keywords: []string{
			"réduction", "crédit", "dons", "plafond", "dépenses", "200",
		},
	},
	{
		Name: "domicile_fiscal",
		MatchTerms: []string{
			"domicile fiscal", "résident fiscal", "résidence fiscale",
			"non-résident", "expatrié",
		},
		EnhancedQuery: "article 4 B CGI domicile fiscal en France foyer séjour principal activité professionnelle centre intérêts économiques",
		Keywords: []string{
			"domicile", "fiscal", "foyer", "séjour", "résident", "4 b",
		},
	},
	{
		Name: "tva",
		MatchTerms: []string{
			"tva", "taxe sur la valeur ajoutée",
		},
		EnhancedQuery: "article 256 CGI taxe sur la valeur ajoutée livraisons de biens prestations de services taux franchise en base",
		Keywords: []string{
			"tva", "taxe", "valeur", "ajoutée", "taux", "franchise", "256",
		},
	},
	// Broad income-tax rule last among the French topics: "impôt sur le
	// revenu" appears in many queries the specific rules above should own.
	{
		Name: "bareme_ir",
		MatchTerms: []string{
			"tmi", "tranche marginale", "taux marginal", "barème",
			"tranche d'imposition", "tranches d'imposition",
			"impôt sur le revenu",
		},
		EnhancedQuery: "article 197 CGI barème progressif impôt sur le revenu tranches taux marginal imposition",
		Keywords: []string{
			"tmi", "tranche", "barème", "progressif", "taux", "marginal",
			"197",
		},
	},
}
