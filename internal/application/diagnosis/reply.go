package diagnosis

import (
	"fmt"
	"strings"

	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

// descriptionRunes bounds the per-candidate description excerpt in the
// multi-candidate reply.
const descriptionRunes = 100

// fallbackReply is returned when no symptom information could be collected
// from the conversation.
const fallbackReply = "很抱歉，暂时无法理解您的问题。请告诉我小麦的发病情况，包括：\n" +
	"1. 从哪个部位开始发病\n" +
	"2. 发病时的气象条件\n" +
	"3. 发病的生育期\n" +
	"4. 小麦的种植区"

// dimensionLabels pairs the fingerprint dimensions with their display names,
// in presentation order.
func dimensionLabels(fp types.Fingerprint) []struct {
	label string
	terms types.Terms
} {
	return []struct {
		label string
		terms types.Terms
	}{
		{"发病部位", fp.PlantPart},
		{"气象条件", fp.Weather},
		{"生育期", fp.GrowthStage},
		{"种植区", fp.Region},
	}
}

// collectedInfo renders the present dimensions as "label：terms" fragments.
func collectedInfo(fp types.Fingerprint) []string {
	var info []string
	for _, d := range dimensionLabels(fp) {
		if len(d.terms) > 0 {
			info = append(info, d.label+"："+strings.Join(d.terms, "、"))
		}
	}
	return info
}

// missingDimensions names the dimensions with no collected terms.
func missingDimensions(fp types.Fingerprint) []string {
	var missing []string
	for _, d := range dimensionLabels(fp) {
		if len(d.terms) == 0 {
			missing = append(missing, d.label)
		}
	}
	return missing
}

// summarizeCollected renders the collected-information summary that precedes
// every diagnosis reply.
func summarizeCollected(fp types.Fingerprint) string {
	if fp.IsEmpty() {
		return "目前还没有收集到任何症状信息。"
	}
	summary := "目前已经收集到的信息："
	if info := collectedInfo(fp); len(info) > 0 {
		summary += "\n" + strings.Join(info, "，")
	}
	if missing := missingDimensions(fp); len(missing) > 0 {
		summary += "\n\n还需要补充：" + strings.Join(missing, ", ")
	}
	return summary
}

// buildDiagnosisReply renders the diagnosis section of the reply from the
// candidate list and the fingerprint it was matched against.
func buildDiagnosisReply(candidates []types.DiseaseCandidate, fp types.Fingerprint) string {
	info := collectedInfo(fp)

	if len(candidates) == 0 {
		reply := "根据您提供的信息："
		if len(info) > 0 {
			reply += "\n" + strings.Join(info, "，")
		}
		if missing := missingDimensions(fp); len(missing) > 0 {
			reply += "\n\n暂时无法确定具体病害。请补充" + strings.Join(missing, "、") +
				"等信息，以便我更准确地判断。"
		} else {
			reply += "\n\n暂时没有找到完全匹配的病害。请补充更多具体的症状表现，以便我更准确地判断。"
		}
		return reply
	}

	if len(candidates) == 1 {
		d := candidates[0]
		reply := "根据您提供的信息："
		reply += "\n" + strings.Join(info, "，")
		reply += fmt.Sprintf("\n\n诊断结果为%s。", d.Name)
		reply += "\n病害特征：" + d.Description
		reply += "\n防治建议：" + d.ControlMethod
		return reply
	}

	reply := "根据目前掌握的信息："
	reply += "\n" + strings.Join(info, "，")
	reply += "\n\n可能的病害有："
	for i, d := range candidates {
		reply += fmt.Sprintf("\n%d. %s", i+1, d.Name)
		reply += "\n   主要特征: " + truncateRunes(d.Description, descriptionRunes) + "..."
	}
	reply += "\n\n请补充更多信息，以便我更准确地判断。"
	return reply
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

//Personal.AI order the ending
