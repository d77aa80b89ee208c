package synonym

// Builtin vocabularies curated from the DrugAge dataset. Canonical
// identifiers are the dataset keys; aliases cover trade names, chemical
// names, abbreviations, and common misspellings seen in user queries.

// DefaultDrugVocabulary returns the curated drug alias sets,
// keyed by canonical compound name
func DefaultDrugVocabulary() map[string][]string {
	return map[string][]string{
		"rapamycin": {
			"sirolimus", "rapa", "rapamune", "ay-22989", "wy-090217",
			"cci-779", "temsirolimus", "everolimus", "ridaforolimus",
		},
		"metformin": {
			"glucophage", "met", "dimethylbiguanide", "n,n-dimethylbiguanide",
			"1,1-dimethylbiguanide", "metformin hydrochloride",
		},
		"resveratrol": {
			"res", "trans-resveratrol", "cis-resveratrol", "piceatannol",
		},
		"aspirin": {
			"acetylsalicylic acid", "asa", "asp", "acetylsalicylate",
			"2-acetoxybenzoic acid", "salicylic acid acetate",
		},
		"curcumin": {
			"curcuma longa", "turmeric", "diferuloylmethane",
		},
		"lithium": {
			"lithium chloride", "licl", "lithium carbonate", "lithium citrate",
			"lithium acetate", "lithium sulfate",
		},
		"caffeine": {
			"caf", "1,3,7-trimethylxanthine", "coffee", "theine", "guaranine",
			"methyltheobromine",
		},
		"spermidine": {
			"spd", "n-(3-aminopropyl)-1,4-butanediamine", "1,5,10-triazadecane",
			"n-(3-aminopropyl)butane-1,4-diamine",
		},
		"nicotinamide": {
			"nam", "niacinamide", "vitamin b3", "pyridine-3-carboxamide",
			"nicotinic acid amide", "3-pyridinecarboxamide",
		},
		"quercetin": {
			"quercetol", "sophoretin", "meletin", "xanthaurine",
		},
		"epigallocatechin-3-gallate": {
			"egcg", "epigallocatechin gallate", "catechin", "camellia sinensis",
			"green tea", "green tea extract", "gtee", "polyphenol",
		},
		"caloric restriction": {
			"cr", "dietary restriction", "calorie restriction",
			"food restriction", "undernutrition", "caloric restriction mimetic",
		},
		"n-acetyl-l-cysteine": {
			"nac", "n-acetylcysteine", "acetylcysteine", "n-acetyl cysteine",
			"mucomyst", "acetadote",
		},
		"hydroxytyrosol": {
			"ht", "3,4-dihydroxyphenylethanol", "dopet", "3,4-dhpea",
		},
		"vitamin d": {
			"cholecalciferol", "vitamin d3", "calcitriol",
			"1,25-dihydroxyvitamin d3", "ergocalciferol", "vitamin d2",
		},
		"vitamin e": {
			"tocopherol", "alpha-tocopherol", "vitamin e acetate", "tocotrienol",
		},
		"vitamin c": {
			"ascorbic acid", "ascorbate", "l-ascorbic acid", "vitamin c sodium",
		},
		"coenzyme q10": {
			"coq10", "ubiquinone", "ubiquinol", "coenzyme q", "q10",
		},
		"omega-3": {
			"fish oil", "epa", "dha", "eicosapentaenoic acid",
			"docosahexaenoic acid", "omega 3", "n-3 fatty acids",
		},
		"melatonin": {
			"mt", "n-acetyl-5-methoxytryptamine", "mel",
			"5-methoxy-n-acetyltryptamine",
		},
	}
}

// DefaultOrganismVocabulary returns the curated organism alias sets,
// keyed by canonical binomial name. Common names, abbreviations, and lab
// strain names all resolve to the binomial.
func DefaultOrganismVocabulary() map[string][]string {
	return map[string][]string{
		"mus musculus": {
			"mouse", "mice", "house mouse", "laboratory mouse",
			"c57bl/6", "balb/c", "dba/2", "c3h", "fvb", "nude mouse",
		},
		"rattus norvegicus": {
			"rat", "rats", "norway rat", "brown rat",
			"wistar", "sprague-dawley", "fischer 344", "lewis rat",
		},
		"caenorhabditis elegans": {
			"c. elegans", "c elegans", "c.elegans", "worm", "worms",
			"nematode", "roundworm", "elegans",
		},
		"drosophila melanogaster": {
			"drosophila", "d. melanogaster", "d.melanogaster",
			"fruit fly", "fly", "flies", "vinegar fly",
		},
		"saccharomyces cerevisiae": {
			"yeast", "s. cerevisiae", "s.cerevisiae", "baker's yeast",
			"budding yeast", "saccharomyces",
		},
		"homo sapiens": {
			"human", "humans", "h. sapiens", "h.sapiens",
			"human cells", "human tissue", "clinical",
		},
		"danio rerio": {
			"zebrafish", "zebra fish", "zebra-fish", "d. rerio", "d.rerio",
		},
		"nothobranchius guentheri": {
			"killifish", "n. guentheri", "n.guentheri", "annual fish",
			"turquoise killifish",
		},
	}
}

// DefaultEffectSynonyms maps informal effect-related terms to their
// canonical form. Used by query keyword detection, not by the Matcher.
func DefaultEffectSynonyms() map[string]string {
	return map[string]string{
		"life span":           "lifespan",
		"longevity":           "lifespan",
		"survival":            "lifespan",
		"lifespan extension":  "lifespan",
		"life extension":      "lifespan",
		"longevity extension": "lifespan",
		"survival time":       "lifespan",

		"ageing":              "aging",
		"senescence":          "aging",
		"cellular aging":      "aging",
		"biological aging":    "aging",
		"chronological aging": "aging",
		"replicative aging":   "aging",

		"impact":       "effect",
		"influence":    "effect",
		"result":       "effect",
		"outcome":      "effect",
		"response":     "effect",
		"change":       "effect",
		"modification": "effect",
		"alteration":   "effect",

		"prolong":    "extend",
		"increase":   "extend",
		"enhance":    "extend",
		"improve":    "extend",
		"boost":      "extend",
		"augment":    "extend",
		"amplify":    "extend",
		"strengthen": "extend",

		"percentage":      "percent",
		"%":               "percent",
		"percent change":  "percent",
		"relative change": "percent",
		"fold change":     "percent",
		"ratio":           "percent",
	}
}

// DefaultTables builds the builtin drug and organism tables.
// Panics on invalid builtin data, which would be a programming error.
func DefaultTables() (*Table, *Table) {
	drugs, err := NewTable(DomainDrug, DefaultDrugVocabulary())
	if err != nil {
		panic(err)
	}
	organisms, err := NewTable(DomainOrganism, DefaultOrganismVocabulary())
	if err != nil {
		panic(err)
	}
	return drugs, organisms
}
