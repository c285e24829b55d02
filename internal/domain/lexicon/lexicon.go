// Package lexicon defines the controlled vocabularies used for symptom
// extraction.  Each symptom dimension (plant part, weather, growth stage,
// region) owns a closed set of canonical terms plus a list of synonym rules
// that normalise colloquial phrasing onto those terms.
package lexicon

import (
	"sort"

	"github.com/turtacn/WheatGuard-Intelligence/pkg/errors"
)

// Dimension identifies one of the four symptom vocabularies.
type Dimension string

const (
	DimensionPlantPart   Dimension = "plant_part"
	DimensionWeather     Dimension = "weather"
	DimensionGrowthStage Dimension = "growth_stage"
	DimensionRegion      Dimension = "region"
)

// Dimensions returns all symptom dimensions in their canonical order.
func Dimensions() []Dimension {
	return []Dimension{DimensionPlantPart, DimensionWeather, DimensionGrowthStage, DimensionRegion}
}

// Valid reports whether d is one of the four known dimensions.
func (d Dimension) Valid() bool {
	switch d {
	case DimensionPlantPart, DimensionWeather, DimensionGrowthStage, DimensionRegion:
		return true
	}
	return false
}

// Rule maps one or more trigger phrases onto canonical vocabulary terms.
//
// A rule with a single trigger and a single canonical term is a plain synonym
// (叶尖 → 叶片).  A rule with multiple canonical terms is a compound phrase
// that expands into several terms at once (高温干旱 → 高温, 干旱).  A Grouped
// rule bundles interchangeable triggers; grouped matches additionally require
// a context check so that negated mentions are discarded.
type Rule struct {
	Triggers  []string
	Canonical []string
	Grouped   bool
}

// Compound reports whether the rule expands a single phrase into multiple
// canonical terms.
func (r Rule) Compound() bool {
	return !r.Grouped && len(r.Canonical) > 1
}

// Lexicon is the immutable vocabulary of a single dimension.
type Lexicon struct {
	dimension Dimension
	terms     map[string]struct{}
	// byLength holds the vocabulary sorted by descending rune length so that
	// longer terms always match before their prefixes (叶片 before 叶).
	byLength []string
	rules    []Rule
	// synonyms indexes non-grouped rules by trigger for O(1) remapping.
	synonyms map[string][]string
}

// newLexicon validates and indexes one dimension's vocabulary and rules.
func newLexicon(dim Dimension, vocabulary []string, rules []Rule) (*Lexicon, error) {
	terms := make(map[string]struct{}, len(vocabulary))
	for _, term := range vocabulary {
		terms[term] = struct{}{}
	}

	byLength := make([]string, len(vocabulary))
	copy(byLength, vocabulary)
	sort.Slice(byLength, func(i, j int) bool {
		li, lj := len([]rune(byLength[i])), len([]rune(byLength[j]))
		if li != lj {
			return li > lj
		}
		return byLength[i] < byLength[j]
	})

	synonyms := make(map[string][]string)
	for _, rule := range rules {
		if len(rule.Triggers) == 0 || len(rule.Canonical) == 0 {
			return nil, errors.New(errors.ErrCodeLexiconRuleInvalid,
				"synonym rule must have at least one trigger and one canonical term")
		}
		for _, canonical := range rule.Canonical {
			if _, ok := terms[canonical]; !ok {
				return nil, errors.New(errors.ErrCodeLexiconRuleInvalid,
					"canonical term not in vocabulary").WithDetail(string(dim) + ": " + canonical)
			}
		}
		if !rule.Grouped {
			for _, trigger := range rule.Triggers {
				synonyms[trigger] = rule.Canonical
			}
		}
	}

	return &Lexicon{
		dimension: dim,
		terms:     terms,
		byLength:  byLength,
		rules:     rules,
		synonyms:  synonyms,
	}, nil
}

// Dimension returns the dimension this lexicon belongs to.
func (l *Lexicon) Dimension() Dimension { return l.dimension }

// Contains reports whether term is a canonical vocabulary term.
func (l *Lexicon) Contains(term string) bool {
	_, ok := l.terms[term]
	return ok
}

// TermsByLength returns the vocabulary ordered longest-first.  The returned
// slice must not be modified.
func (l *Lexicon) TermsByLength() []string { return l.byLength }

// Rules returns the synonym rules.  The returned slice must not be modified.
func (l *Lexicon) Rules() []Rule { return l.rules }

// Remap returns the canonical terms a non-grouped trigger maps to, or nil
// when the trigger has no synonym rule.
func (l *Lexicon) Remap(trigger string) []string { return l.synonyms[trigger] }

// Size returns the number of canonical terms.
func (l *Lexicon) Size() int { return len(l.terms) }

// Set bundles the lexicons of all four dimensions and enforces that no term
// appears in more than one vocabulary.
type Set struct {
	byDim map[Dimension]*Lexicon
}

// NewSet builds a Set from per-dimension vocabularies and rules, failing fast
// on overlapping vocabularies or invalid rules.
func NewSet(vocabularies map[Dimension][]string, rules map[Dimension][]Rule) (*Set, error) {
	byDim := make(map[Dimension]*Lexicon, len(vocabularies))
	owner := make(map[string]Dimension)

	for _, dim := range Dimensions() {
		vocab, ok := vocabularies[dim]
		if !ok {
			return nil, errors.New(errors.ErrCodeLexiconUnknownDimension,
				"missing vocabulary for dimension").WithDetail(string(dim))
		}
		for _, term := range vocab {
			if prev, dup := owner[term]; dup {
				return nil, errors.New(errors.ErrCodeLexiconTermOverlap,
					"term belongs to multiple dimensions").
					WithDetail(term + ": " + string(prev) + ", " + string(dim))
			}
			owner[term] = dim
		}
		lex, err := newLexicon(dim, vocab, rules[dim])
		if err != nil {
			return nil, err
		}
		byDim[dim] = lex
	}

	return &Set{byDim: byDim}, nil
}

// Default returns the built-in wheat disease lexicon set.  The built-in data
// is static and validated by tests, so construction cannot fail.
func Default() *Set {
	set, err := NewSet(defaultVocabularies(), defaultRules())
	if err != nil {
		panic(err)
	}
	return set
}

// Lexicon returns the lexicon for dim, or an error for unknown dimensions.
func (s *Set) Lexicon(dim Dimension) (*Lexicon, error) {
	lex, ok := s.byDim[dim]
	if !ok {
		return nil, errors.New(errors.ErrCodeLexiconUnknownDimension,
			"unknown symptom dimension").WithDetail(string(dim))
	}
	return lex, nil
}

//Personal.AI order the ending
