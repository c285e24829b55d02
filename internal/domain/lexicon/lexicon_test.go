package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/WheatGuard-Intelligence/pkg/errors"
)

func TestDefault_BuildsWithoutPanic(t *testing.T) {
	assert.NotPanics(t, func() { Default() })
}

func TestDefault_AllDimensionsPresent(t *testing.T) {
	set := Default()
	for _, dim := range Dimensions() {
		lex, err := set.Lexicon(dim)
		require.NoError(t, err)
		assert.Greater(t, lex.Size(), 0, "dimension %s must have terms", dim)
		assert.Equal(t, dim, lex.Dimension())
	}
}

func TestDefault_VocabulariesAreDisjoint(t *testing.T) {
	seen := map[string]Dimension{}
	set := Default()
	for _, dim := range Dimensions() {
		lex, err := set.Lexicon(dim)
		require.NoError(t, err)
		for _, term := range lex.TermsByLength() {
			prev, dup := seen[term]
			assert.False(t, dup, "term %q in both %s and %s", term, prev, dim)
			seen[term] = dim
		}
	}
}

func TestLexicon_TermsByLength_LongestFirst(t *testing.T) {
	set := Default()
	lex, err := set.Lexicon(DimensionPlantPart)
	require.NoError(t, err)

	terms := lex.TermsByLength()
	for i := 1; i < len(terms); i++ {
		assert.GreaterOrEqual(t,
			len([]rune(terms[i-1])), len([]rune(terms[i])),
			"vocabulary must be sorted by descending rune length")
	}
}

func TestLexicon_Contains(t *testing.T) {
	set := Default()
	lex, err := set.Lexicon(DimensionWeather)
	require.NoError(t, err)

	assert.True(t, lex.Contains("高温"))
	assert.True(t, lex.Contains("高温高湿"))
	assert.False(t, lex.Contains("温度高"), "triggers are not vocabulary terms")
	assert.False(t, lex.Contains("叶片"), "terms from other dimensions are excluded")
}

func TestLexicon_Remap(t *testing.T) {
	set := Default()
	lex, err := set.Lexicon(DimensionPlantPart)
	require.NoError(t, err)

	assert.Equal(t, []string{"叶片"}, lex.Remap("叶尖"))
	assert.Equal(t, []string{"茎秆"}, lex.Remap("基部"))
	assert.Nil(t, lex.Remap("叶片"), "canonical terms without a rule remap to nothing")
}

func TestLexicon_Remap_CompoundExpandsToMultiple(t *testing.T) {
	set := Default()
	lex, err := set.Lexicon(DimensionWeather)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"高温", "干旱"}, lex.Remap("高温干旱"))
}

func TestSet_UnknownDimension(t *testing.T) {
	set := Default()
	_, err := set.Lexicon(Dimension("soil"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLexiconUnknownDimension))
}

func TestNewSet_RejectsOverlappingVocabularies(t *testing.T) {
	vocab := defaultVocabularies()
	vocab[DimensionWeather] = append(vocab[DimensionWeather], "叶片")

	_, err := NewSet(vocab, defaultRules())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLexiconTermOverlap))
}

func TestNewSet_RejectsCanonicalOutsideVocabulary(t *testing.T) {
	rules := defaultRules()
	rules[DimensionRegion] = []Rule{
		{Triggers: []string{"江南"}, Canonical: []string{"不存在的地区"}},
	}

	_, err := NewSet(defaultVocabularies(), rules)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLexiconRuleInvalid))
}

func TestNewSet_RejectsEmptyRule(t *testing.T) {
	rules := defaultRules()
	rules[DimensionRegion] = []Rule{{}}

	_, err := NewSet(defaultVocabularies(), rules)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLexiconRuleInvalid))
}

func TestRule_Compound(t *testing.T) {
	assert.True(t, Rule{Triggers: []string{"高温干旱"}, Canonical: []string{"高温", "干旱"}}.Compound())
	assert.False(t, Rule{Triggers: []string{"叶"}, Canonical: []string{"叶片"}}.Compound())
	assert.False(t, Rule{Triggers: []string{"出苗", "发苗"}, Canonical: []string{"出苗期"}, Grouped: true}.Compound())
}

func TestDimension_Valid(t *testing.T) {
	assert.True(t, DimensionPlantPart.Valid())
	assert.True(t, DimensionRegion.Valid())
	assert.False(t, Dimension("pest").Valid())
}

//Personal.AI order the ending
