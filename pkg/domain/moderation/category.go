package moderation

// Category tags every lexicon term and threat pattern with the kind of
// content it catches.
type Category string

const (
	CategoryViolence   Category = "violence"
	CategoryTerrorism  Category = "terrorism"
	CategoryHateSpeech Category = "hate_speech"
	CategoryDrugs      Category = "drugs"
	CategorySexual     Category = "sexual"
	CategoryProfanity  Category = "profanity"
)

// categoryPriority is the order used to pick the user-facing message when
// several categories are detected in the same text. Lower wins.
var categoryPriority = map[Category]int{
	CategoryViolence:   0,
	CategoryTerrorism:  1,
	CategoryHateSpeech: 2,
	CategoryDrugs:      3,
	CategorySexual:     4,
	CategoryProfanity:  5,
}

func (c Category) Valid() bool {
	_, ok := categoryPriority[c]
	return ok
}

// Outranks reports whether c takes precedence over other. Unknown categories
// rank below every known one.
func (c Category) Outranks(other Category) bool {
	pc, ok := categoryPriority[c]
	if !ok {
		return false
	}
	po, ok := categoryPriority[other]
	if !ok {
		return true
	}
	return pc < po
}
