// Package symptom turns free-form grower utterances into structured symptom
// fingerprints.  It layers sentence splitting and cross-dimension collection
// on top of the chat-mode extractor.
package symptom

import (
	"sort"
	"strings"

	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/extract"
	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/lexicon"
	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

// sentenceDelimiters split an utterance into independently scanned clauses.
var sentenceDelimiters = []rune{'，', '。'}

// Normalizer extracts symptom fingerprints from conversational text.
type Normalizer struct {
	extractor *extract.Extractor
}

// NewNormalizer builds a Normalizer over the given lexicon set.  The chat
// extraction mode is always used; strict mode is reserved for ingestion.
func NewNormalizer(set *lexicon.Set) *Normalizer {
	return &Normalizer{extractor: extract.NewChat(set)}
}

// splitSentences breaks text on the Chinese comma and full stop.  Empty
// fragments are dropped.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		for _, d := range sentenceDelimiters {
			if r == d {
				return true
			}
		}
		return false
	})
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ExtractSymptoms scans every sentence of the utterance across all four
// dimensions and returns the union as a Fingerprint.  Dimensions with no
// matches stay absent.  The function is total: any input, including empty
// text, yields a valid (possibly empty) Fingerprint.
func (n *Normalizer) ExtractSymptoms(text string) types.Fingerprint {
	var fp types.Fingerprint
	if strings.TrimSpace(text) == "" {
		return fp
	}

	collected := make(map[lexicon.Dimension]map[string]struct{}, 4)
	for _, dim := range lexicon.Dimensions() {
		collected[dim] = make(map[string]struct{})
	}

	for _, sentence := range splitSentences(text) {
		for _, dim := range lexicon.Dimensions() {
			// Dimension is always valid here, so Extract cannot fail.
			terms, err := n.extractor.Extract(sentence, dim)
			if err != nil {
				continue
			}
			for _, term := range terms {
				collected[dim][term] = struct{}{}
			}
		}
	}

	fp.PlantPart = toTerms(collected[lexicon.DimensionPlantPart])
	fp.Weather = toTerms(collected[lexicon.DimensionWeather])
	fp.GrowthStage = toTerms(collected[lexicon.DimensionGrowthStage])
	fp.Region = toTerms(collected[lexicon.DimensionRegion])
	return fp
}

// toTerms converts a term set to sorted Terms, nil when empty.
func toTerms(set map[string]struct{}) types.Terms {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for term := range set {
		out = append(out, term)
	}
	// Sort for stable JSON output and deterministic tests.
	sort.Strings(out)
	return types.Terms(out)
}

//Personal.AI order the ending
