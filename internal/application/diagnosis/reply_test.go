package diagnosis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

func TestSummarizeCollected_Empty(t *testing.T) {
	got := summarizeCollected(types.Fingerprint{})
	assert.Equal(t, "目前还没有收集到任何症状信息。", got)
}

func TestSummarizeCollected_PartialDimensions(t *testing.T) {
	fp := types.Fingerprint{
		PlantPart: types.Terms{"叶片", "麦穗"},
		Weather:   types.Terms{"高温"},
	}
	got := summarizeCollected(fp)
	assert.Contains(t, got, "目前已经收集到的信息：")
	assert.Contains(t, got, "发病部位：叶片、麦穗")
	assert.Contains(t, got, "气象条件：高温")
	assert.Contains(t, got, "还需要补充：生育期, 种植区")
}

func TestSummarizeCollected_AllDimensions(t *testing.T) {
	fp := types.Fingerprint{
		PlantPart:   types.Terms{"麦穗"},
		Weather:     types.Terms{"阴雨"},
		GrowthStage: types.Terms{"抽穗期"},
		Region:      types.Terms{"河南"},
	}
	got := summarizeCollected(fp)
	assert.NotContains(t, got, "还需要补充")
}

func TestBuildDiagnosisReply_NoCandidates_MissingDimensions(t *testing.T) {
	fp := types.Fingerprint{PlantPart: types.Terms{"叶片"}}
	got := buildDiagnosisReply(nil, fp)
	assert.Contains(t, got, "根据您提供的信息：")
	assert.Contains(t, got, "发病部位：叶片")
	assert.Contains(t, got, "暂时无法确定具体病害。请补充气象条件、生育期、种植区等信息")
}

func TestBuildDiagnosisReply_NoCandidates_AllDimensionsPresent(t *testing.T) {
	fp := types.Fingerprint{
		PlantPart:   types.Terms{"麦穗"},
		Weather:     types.Terms{"阴雨"},
		GrowthStage: types.Terms{"抽穗期"},
		Region:      types.Terms{"河南"},
	}
	got := buildDiagnosisReply(nil, fp)
	assert.Contains(t, got, "暂时没有找到完全匹配的病害。请补充更多具体的症状表现")
}

func TestBuildDiagnosisReply_SingleCandidate(t *testing.T) {
	fp := types.Fingerprint{PlantPart: types.Terms{"麦穗"}}
	candidates := []types.DiseaseCandidate{
		{Name: "小麦赤霉病", Description: "穗部霉层", ControlMethod: "喷施多菌灵"},
	}
	got := buildDiagnosisReply(candidates, fp)
	assert.Contains(t, got, "诊断结果为小麦赤霉病。")
	assert.Contains(t, got, "病害特征：穗部霉层")
	assert.Contains(t, got, "防治建议：喷施多菌灵")
}

func TestBuildDiagnosisReply_MultipleCandidates_TruncatesDescription(t *testing.T) {
	long := strings.Repeat("症", 150)
	fp := types.Fingerprint{PlantPart: types.Terms{"叶片"}}
	candidates := []types.DiseaseCandidate{
		{Name: "小麦赤霉病", Description: long},
		{Name: "小麦白粉病", Description: "叶面白色粉状物"},
	}
	got := buildDiagnosisReply(candidates, fp)
	assert.Contains(t, got, "可能的病害有：")
	assert.Contains(t, got, "1. 小麦赤霉病")
	assert.Contains(t, got, strings.Repeat("症", 100)+"...")
	assert.NotContains(t, got, strings.Repeat("症", 101))
	assert.Contains(t, got, "2. 小麦白粉病")
	assert.Contains(t, got, "主要特征: 叶面白色粉状物...")
}

//Personal.AI order the ending
