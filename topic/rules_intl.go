package topic

// Routing tables for the non-French jurisdictions. Smaller corpora, smaller
// tables; the same first-match-wins evaluation applies.

var andorraRules = []Rule{
	{
		Name: "ad_irpf",
		MatchTerms: []string{
			"irpf", "impost sobre la renda", "impôt sur le revenu andorran",
			"revenu andorre",
		},
		EnhancedQuery: "impost sobre la renda de les persones físiques Andorre taux 10 % tranche exonérée résident fiscal",
		Keywords: []string{
			"irpf", "renda", "andorre", "taux", "exonérée", "résident",
		},
	},
	{
		Name: "ad_societats",
		MatchTerms: []string{
			"impost de societats", "société andorrane", "is andorran",
		},
		EnhancedQuery: "impost sobre societats Andorre taux 10 % bénéfices base de tributació",
		Keywords: []string{
			"societats", "société", "bénéfices", "taux", "andorre",
		},
	},
	{
		Name: "ad_residence",
		MatchTerms: []string{
			"résidence andorre", "résident andorran", "residència",
			"s'installer en andorre",
		},
		EnhancedQuery: "résidence fiscale Andorre residència passiva activa 183 jours permis critères",
		Keywords: []string{
			"résidence", "andorre", "183", "jours", "permis",
		},
	},
}

var switzerlandRules = []Rule{
	{
		Name: "ch_ifd",
		MatchTerms: []string{
			"ifd", "impôt fédéral direct", "lifd", "barème fédéral",
		},
		EnhancedQuery: "loi sur l'impôt fédéral direct LIFD barème revenu imposable personnes physiques taux",
		Keywords: []string{
			"fédéral", "direct", "lifd", "barème", "revenu", "taux",
		},
	},
	{
		Name: "ch_impot_source",
		MatchTerms: []string{
			"impôt à la source", "frontalier", "permis b", "permis g",
		},
		EnhancedQuery: "impôt à la source Suisse travailleurs étrangers frontaliers barème prélèvement employeur",
		Keywords: []string{
			"source", "frontalier", "barème", "prélèvement", "employeur",
		},
	},
	{
		Name: "ch_pilier",
		MatchTerms: []string{
			"pilier 3a", "troisième pilier", "3ème pilier", "prévoyance",
		},
		EnhancedQuery: "prévoyance individuelle liée pilier 3a déduction revenu imposable plafond cotisations",
		Keywords: []string{
			"pilier", "prévoyance", "déduction", "plafond", "cotisations",
		},
	},
	{
		Name: "ch_fortune",
		MatchTerms: []string{
			"impôt sur la fortune suisse", "fortune cantonale",
		},
		EnhancedQuery: "impôt cantonal sur la fortune patrimoine net barème cantonal taux",
		Keywords: []string{
			"fortune", "cantonal", "patrimoine", "barème", "taux",
		},
	},
}

var luxembourgRules = []Rule{
	{
		Name: "lu_classes",
		MatchTerms: []string{
			"classe d'impôt", "classes d'impôt", "classe 1a", "classe 2",
		},
		EnhancedQuery: "classes d'impôt Luxembourg 1 1a 2 état civil barème retenue",
		Keywords: []string{
			"classe", "impôt", "luxembourg", "barème", "retenue",
		},
	},
	{
		Name: "lu_lir",
		MatchTerms: []string{
			"lir", "loi de l'impôt sur le revenu", "revenu luxembourg",
		},
		EnhancedQuery: "loi concernant l'impôt sur le revenu LIR Luxembourg revenu imposable ajusté barème",
		Keywords: []string{
			"lir", "luxembourg", "revenu", "imposable", "barème",
		},
	},
	{
		Name: "lu_frontalier",
		MatchTerms: []string{
			"frontalier luxembourg", "frontaliers luxembourgeois",
			"télétravail luxembourg",
		},
		EnhancedQuery: "travailleurs frontaliers Luxembourg convention fiscale seuil jours télétravail imposition",
		Keywords: []string{
			"frontalier", "convention", "seuil", "jours", "télétravail",
		},
	},
}
