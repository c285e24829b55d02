package diagnosis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerms_MarshalSingleton(t *testing.T) {
	b, err := json.Marshal(Terms{"叶片"})
	require.NoError(t, err)
	assert.JSONEq(t, `"叶片"`, string(b))
}

func TestTerms_MarshalMultiple(t *testing.T) {
	b, err := json.Marshal(Terms{"高温", "潮湿"})
	require.NoError(t, err)
	assert.JSONEq(t, `["高温","潮湿"]`, string(b))
}

func TestTerms_UnmarshalString(t *testing.T) {
	var terms Terms
	require.NoError(t, json.Unmarshal([]byte(`"麦穗"`), &terms))
	assert.Equal(t, Terms{"麦穗"}, terms)
}

func TestTerms_UnmarshalArray(t *testing.T) {
	var terms Terms
	require.NoError(t, json.Unmarshal([]byte(`["苗期","灌浆期"]`), &terms))
	assert.Equal(t, Terms{"苗期", "灌浆期"}, terms)
}

func TestTerms_UnmarshalInvalid(t *testing.T) {
	var terms Terms
	assert.Error(t, json.Unmarshal([]byte(`42`), &terms))
}

func TestFingerprint_RoundTrip(t *testing.T) {
	fp := Fingerprint{
		PlantPart: Terms{"叶片"},
		Weather:   Terms{"高温", "潮湿"},
	}
	b, err := json.Marshal(fp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"plant_part":"叶片","weather":["高温","潮湿"]}`, string(b))

	var got Fingerprint
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, fp, got)
}

func TestFingerprint_IsEmpty(t *testing.T) {
	assert.True(t, Fingerprint{}.IsEmpty())
	assert.False(t, Fingerprint{Region: Terms{"华北"}}.IsEmpty())
}

func TestFingerprint_Merge_NewWins(t *testing.T) {
	current := Fingerprint{PlantPart: Terms{"麦穗"}}
	history := Fingerprint{PlantPart: Terms{"叶片"}, Weather: Terms{"阴雨"}}

	merged := current.Merge(history)

	assert.Equal(t, Terms{"麦穗"}, merged.PlantPart, "current turn overrides history")
	assert.Equal(t, Terms{"阴雨"}, merged.Weather, "history fills the gap")
	assert.Empty(t, merged.GrowthStage)
}

func TestFingerprint_Merge_DoesNotMutateInputs(t *testing.T) {
	current := Fingerprint{}
	history := Fingerprint{Region: Terms{"河南"}}

	_ = current.Merge(history)

	assert.True(t, current.IsEmpty())
	assert.Equal(t, Terms{"河南"}, history.Region)
}

//Personal.AI order the ending
