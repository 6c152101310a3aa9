package moderation

import (
	"fmt"
	"regexp"
	"strings"

	domain "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
)

type MatchSource string

const (
	SourceLexicon MatchSource = "lexicon"
	SourcePattern MatchSource = "pattern"
)

// Term is a single disallowed word or phrase. Words go through Normalize
// before matching, the same as input text, and are reported lowercased as
// written.
type Term struct {
	Word     string          `mapstructure:"word" json:"word"`
	Category domain.Category `mapstructure:"category" json:"category"`
}

// Pattern is a phrase-level regular expression evaluated case-insensitively
// against the raw input.
type Pattern struct {
	Expr     string          `mapstructure:"expr" json:"expr"`
	Category domain.Category `mapstructure:"category" json:"category"`
}

type Lexicon struct {
	Terms    []Term    `mapstructure:"terms" json:"terms"`
	Patterns []Pattern `mapstructure:"patterns" json:"patterns"`
}

type Match struct {
	Term     string          `json:"term"`
	Category domain.Category `json:"category"`
	Source   MatchSource     `json:"source"`
}

type compiledTerm struct {
	term Term
	re   *regexp.Regexp
}

type compiledPattern struct {
	pattern Pattern
	re      *regexp.Regexp
}

// Classifier decides whether text contains disallowed content. It holds no
// mutable state after construction and is safe for concurrent use.
type Classifier struct {
	terms    []compiledTerm
	patterns []compiledPattern
}

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

func NewClassifier(lexicon Lexicon) (*Classifier, error) {
	c := &Classifier{
		terms:    make([]compiledTerm, 0, len(lexicon.Terms)),
		patterns: make([]compiledPattern, 0, len(lexicon.Patterns)),
	}

	for _, t := range lexicon.Terms {
		word := Normalize(t.Word)
		if word == "" {
			return nil, fmt.Errorf("lexicon term %q is empty after normalization", t.Word)
		}
		if !t.Category.Valid() {
			return nil, fmt.Errorf("lexicon term %q has unknown category %q", t.Word, t.Category)
		}
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(word) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("failed to compile lexicon term %q: %w", t.Word, err)
		}
		c.terms = append(c.terms, compiledTerm{
			term: Term{Word: strings.ToLower(strings.TrimSpace(t.Word)), Category: t.Category},
			re:   re,
		})
	}

	for _, p := range lexicon.Patterns {
		if !p.Category.Valid() {
			return nil, fmt.Errorf("pattern %q has unknown category %q", p.Expr, p.Category)
		}
		re, err := regexp.Compile(`(?i)` + p.Expr)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern '%s': %w", p.Expr, err)
		}
		c.patterns = append(c.patterns, compiledPattern{pattern: p, re: re})
	}

	return c, nil
}

func MustNewClassifier(lexicon Lexicon) *Classifier {
	c, err := NewClassifier(lexicon)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize lowercases text, drops everything that is not a word character or
// whitespace, and collapses whitespace runs into single spaces.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	stripped := nonWordRe.ReplaceAllString(lowered, "")
	collapsed := whitespaceRe.ReplaceAllString(stripped, " ")
	return strings.TrimSpace(collapsed)
}

func (c *Classifier) ContainsProfanity(text string) bool {
	normalized := Normalize(text)
	for _, t := range c.terms {
		if t.re.MatchString(normalized) {
			return true
		}
	}
	for _, p := range c.patterns {
		if p.re.MatchString(text) {
			return true
		}
	}
	return false
}

// DetectedProfanity returns the matched lexicon words followed by the matched
// pattern substrings.
func (c *Classifier) DetectedProfanity(text string) []string {
	matches := c.Detect(text)
	words := make([]string, 0, len(matches))
	for _, m := range matches {
		words = append(words, m.Term)
	}
	return words
}

// Detect is DetectedProfanity with the category and source of every hit.
// Lexicon hits come first in lexicon order, then pattern hits in pattern
// order. The two sources are not de-duplicated against each other.
func (c *Classifier) Detect(text string) []Match {
	var matches []Match

	normalized := Normalize(text)
	if normalized != "" {
		for _, t := range c.terms {
			if t.re.MatchString(normalized) {
				matches = append(matches, Match{
					Term:     t.term.Word,
					Category: t.term.Category,
					Source:   SourceLexicon,
				})
			}
		}
	}

	for _, p := range c.patterns {
		if found := p.re.FindString(text); found != "" {
			matches = append(matches, Match{
				Term:     found,
				Category: p.pattern.Category,
				Source:   SourcePattern,
			})
		}
	}

	return matches
}

// TopCategory returns the highest-priority category among matches and false
// when there are none.
func TopCategory(matches []Match) (domain.Category, bool) {
	if len(matches) == 0 {
		return "", false
	}
	top := matches[0].Category
	for _, m := range matches[1:] {
		if m.Category.Outranks(top) {
			top = m.Category
		}
	}
	return top, true
}
