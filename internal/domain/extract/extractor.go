// Package extract implements rule-based keyword extraction over the symptom
// lexicons.  Matching is plain substring containment on the raw runes; no
// segmentation or statistical model is involved, so behaviour is fully
// deterministic and auditable.
//
// Two modes share one engine:
//
//   - strict mode is used during knowledge-graph ingestion, where source
//     fields are long descriptive passages.  It runs a compound pre-pass,
//     longest-match with erasure, a synonym-group pass with a negation
//     window, and conflict rules.
//   - chat mode is used on short grower utterances.  It is simple
//     containment with synonym remapping and deliberately skips erasure,
//     negation, and conflict handling.
package extract

import (
	"sort"
	"strings"

	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/lexicon"
)

// contextRunes is the radius, in runes, of the context window inspected
// around a synonym-group match.
const contextRunes = 5

// negationWords cancel a synonym-group match when they appear inside its
// context window.
var negationWords = []string{"不", "没有", "无", "未"}

// exclusiveWeatherPair holds the mutually exclusive weather terms; only the
// one mentioned first in the text survives.
var exclusiveWeatherPair = [2]string{"高温", "低温"}

// orderedGrowthStages are stages that cannot co-occur in one report; the
// earliest mention in the text wins.
var orderedGrowthStages = map[string]struct{}{
	"苗期": {}, "拔节期": {}, "抽穗期": {}, "灌浆期": {},
}

// Clean normalises raw input: surrounding whitespace is trimmed and internal
// runs of whitespace (including newlines) collapse to a single space.
func Clean(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Extractor extracts canonical lexicon terms from free text.
type Extractor struct {
	set    *lexicon.Set
	strict bool
}

// NewStrict returns an extractor in strict (ingestion) mode.
func NewStrict(set *lexicon.Set) *Extractor {
	return &Extractor{set: set, strict: true}
}

// NewChat returns an extractor in chat (conversation) mode.
func NewChat(set *lexicon.Set) *Extractor {
	return &Extractor{set: set, strict: false}
}

// Strict reports whether the extractor runs in strict mode.
func (e *Extractor) Strict() bool { return e.strict }

// Extract returns the canonical terms of dim found in text, sorted
// lexicographically.  Empty or unmatched text yields an empty result; the
// only error condition is an unknown dimension.
func (e *Extractor) Extract(text string, dim lexicon.Dimension) ([]string, error) {
	lex, err := e.set.Lexicon(dim)
	if err != nil {
		return nil, err
	}

	cleaned := Clean(text)
	if cleaned == "" {
		return nil, nil
	}

	var found map[string]struct{}
	if e.strict {
		found = extractStrict(cleaned, lex)
	} else {
		found = extractChat(cleaned, lex)
	}

	out := make([]string, 0, len(found))
	for term := range found {
		out = append(out, term)
	}
	sort.Strings(out)
	return out, nil
}

// extractChat matches vocabulary terms by containment and remaps matched
// terms through their synonym rules.  No erasure or negation handling.
func extractChat(text string, lex *lexicon.Lexicon) map[string]struct{} {
	found := make(map[string]struct{})
	for _, term := range lex.TermsByLength() {
		if !strings.Contains(text, term) {
			continue
		}
		if mapped := lex.Remap(term); mapped != nil {
			for _, m := range mapped {
				found[m] = struct{}{}
			}
			continue
		}
		found[term] = struct{}{}
	}
	return found
}

// extractStrict runs the four-phase ingestion pipeline.
func extractStrict(text string, lex *lexicon.Lexicon) map[string]struct{} {
	found := make(map[string]struct{})

	// Phase 1: compound phrases expand before single terms can shadow them.
	for _, rule := range lex.Rules() {
		if !rule.Compound() {
			continue
		}
		for _, trigger := range rule.Triggers {
			if strings.Contains(text, trigger) {
				for _, term := range rule.Canonical {
					found[term] = struct{}{}
				}
				break
			}
		}
	}

	// Phase 2: longest-match with erasure.  Matched terms are removed from
	// the working text so shorter terms cannot re-match inside them
	// (叶片 consumes its runes before 叶 is tried).
	working := text
	for _, term := range lex.TermsByLength() {
		if strings.Contains(working, term) {
			found[term] = struct{}{}
			working = strings.ReplaceAll(working, term, "")
		}
	}

	// Phase 3: synonym groups over the erased remainder, guarded by the
	// negation window.
	for _, rule := range lex.Rules() {
		if !rule.Grouped {
			continue
		}
		for _, trigger := range rule.Triggers {
			idx := strings.Index(working, trigger)
			if idx < 0 {
				continue
			}
			if contextAllows(working, idx, trigger) {
				for _, term := range rule.Canonical {
					found[term] = struct{}{}
				}
			}
		}
	}

	applyConflictRules(found, text)
	return found
}

// contextAllows inspects contextRunes runes either side of the match and
// rejects it when a negation word is present.
func contextAllows(text string, byteIdx int, trigger string) bool {
	before := []rune(text[:byteIdx])
	if len(before) > contextRunes {
		before = before[len(before)-contextRunes:]
	}
	after := []rune(text[byteIdx+len(trigger):])
	if len(after) > contextRunes {
		after = after[:contextRunes]
	}
	context := string(before) + trigger + string(after)
	for _, neg := range negationWords {
		if strings.Contains(context, neg) {
			return false
		}
	}
	return true
}

// textPos returns the first position of term in text for ordering purposes.
// Terms introduced through synonym triggers may not appear literally; those
// rank after every literal mention.
func textPos(text, term string) int {
	if idx := strings.Index(text, term); idx >= 0 {
		return idx
	}
	return len(text) + 1
}

// applyConflictRules drops contradictory terms, keeping whichever was
// mentioned first in the cleaned input text.
func applyConflictRules(found map[string]struct{}, text string) {
	// 高温 and 低温 cannot both hold.
	hot, cold := exclusiveWeatherPair[0], exclusiveWeatherPair[1]
	_, hasHot := found[hot]
	_, hasCold := found[cold]
	if hasHot && hasCold {
		if textPos(text, hot) < textPos(text, cold) {
			delete(found, cold)
		} else {
			delete(found, hot)
		}
	}

	// Sequential growth stages: keep only the earliest mention.
	var stages []string
	for term := range found {
		if _, ok := orderedGrowthStages[term]; ok {
			stages = append(stages, term)
		}
	}
	if len(stages) > 1 {
		first := stages[0]
		for _, s := range stages[1:] {
			if textPos(text, s) < textPos(text, first) {
				first = s
			}
		}
		for _, s := range stages {
			if s != first {
				delete(found, s)
			}
		}
	}
}

//Personal.AI order the ending
