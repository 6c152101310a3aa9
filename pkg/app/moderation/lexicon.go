package moderation

import (
	domain "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
)

// Normalization drops non-ASCII letters from both the lexicon and the input, so
// accented words are listed as written with accents and again as typed without.
var defaultTerms = map[domain.Category][]string{
	domain.CategoryProfanity: {
		// english
		"fuck", "fucking", "fucked", "fucker", "motherfucker", "shit", "bullshit", "bitch",
		"bastard", "asshole", "ass", "dick", "cunt", "wanker", "twat", "bollocks", "stfu",
		// spanish
		"puta", "puto", "mierda", "pendejo", "pendeja", "cabron", "cabrón", "gilipollas", "joder", "hijo de puta",
		// portuguese
		"caralho", "porra", "merda", "filho da puta", "foda se", "foda-se",
		// french
		"merde", "putain", "connard", "connasse", "salope", "salopard", "encule", "enculé",
		// german
		"scheisse", "scheiße", "arschloch", "wichser", "fotze",
		// italian
		"cazzo", "stronzo", "vaffanculo", "minchia", "coglione",
		// filipino
		"putang ina", "tangina", "gago", "ulol", "tarantado",
		// romanized korean
		"sibal", "ssibal", "shibal", "gaesaekki", "byeongsin",
		// romanized japanese
		"kuso", "kusoyaro",
		// romanized chinese
		"cao ni ma", "tamade", "shabi",
		// romanized hindi
		"chutiya", "madarchod", "behenchod", "bhenchod", "gandu",
	},
	domain.CategoryHateSpeech: {
		"nigger", "nigga", "faggot", "fag", "retard", "kike", "spic", "chink", "tranny",
		"maricon", "maricón", "sudaca", "negrata",
	},
	domain.CategorySexual: {
		"porn", "porno", "pussy", "cock", "blowjob", "dildo", "hentai", "buceta", "puki",
	},
	domain.CategoryDrugs: {
		"cocaine", "cocaina", "cocaína", "heroin", "heroina", "heroína", "methamphetamine", "meth", "fentanyl",
	},
	domain.CategoryTerrorism: {
		"suicide bomber", "terrorist attack", "car bomb",
	},
	domain.CategoryViolence: {
		"rape", "rapist",
	},
}

// term order inside the lexicon, which is also the order of detected words
var defaultTermOrder = []domain.Category{
	domain.CategoryProfanity,
	domain.CategoryHateSpeech,
	domain.CategorySexual,
	domain.CategoryDrugs,
	domain.CategoryTerrorism,
	domain.CategoryViolence,
}

var defaultPatterns = []Pattern{
	// threats and self-harm
	{Expr: `\bkill\s+(your|ur)\s*self\b`, Category: domain.CategoryViolence},
	{Expr: `\bkys\b`, Category: domain.CategoryViolence},
	{Expr: `\bgo\s+die\b`, Category: domain.CategoryViolence},
	{Expr: `\b(hope|wish)\s+(you|u)\s+die\b`, Category: domain.CategoryViolence},
	{Expr: `\b(i\s*'?m\s+going\s+to|i\s*'?ll|i\s+will|gonna)\s+(kill|hurt|murder|stab|shoot)\s+(you|u|him|her|them|everyone)\b`, Category: domain.CategoryViolence},
	{Expr: `\b(cut|hurt|kill)\s+myself\b`, Category: domain.CategoryViolence},
	{Expr: `\bshoot\s+up\s+(the|a|my|your)\s+school\b`, Category: domain.CategoryViolence},
	{Expr: `\bte\s+voy\s+a\s+matar\b`, Category: domain.CategoryViolence},
	{Expr: `\bpapatayin\s+kita\b`, Category: domain.CategoryViolence},
	// extremism
	{Expr: `\b(make|build|plant)\s+an?\s+bomb\b`, Category: domain.CategoryTerrorism},
	{Expr: `\bjoin\s+(isis|al[\s-]?qaeda)\b`, Category: domain.CategoryTerrorism},
	// hate
	{Expr: `\bgo\s+back\s+to\s+your\s+(own\s+)?country\b`, Category: domain.CategoryHateSpeech},
	// drugs
	{Expr: `\b(buy|sell|selling|buying)\s+(weed|coke|cocaine|heroin|meth|drugs)\b`, Category: domain.CategoryDrugs},
	// sexual
	{Expr: `\bsend\s+(me\s+)?(your\s+)?nudes\b`, Category: domain.CategorySexual},
	// bullying
	{Expr: `\bnobody\s+(likes|loves)\s+you\b`, Category: domain.CategoryProfanity},
	{Expr: `\byou\s*('re|\s+are)\s+(so\s+)?(worthless|pathetic)\b`, Category: domain.CategoryProfanity},
}

// DefaultLexicon returns a fresh copy of the built-in multilingual lexicon.
func DefaultLexicon() Lexicon {
	var terms []Term
	for _, category := range defaultTermOrder {
		for _, word := range defaultTerms[category] {
			terms = append(terms, Term{Word: word, Category: category})
		}
	}
	patterns := make([]Pattern, len(defaultPatterns))
	copy(patterns, defaultPatterns)
	return Lexicon{Terms: terms, Patterns: patterns}
}
